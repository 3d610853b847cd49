package controller

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/utkugunce/volleysim/model"
)

func (c *controller) ListLeagues() []*model.LeagueInfo {
	return model.Leagues
}

// GetLeague returns the cached league, fetching it on first use. The returned
// league already has admin-verified results applied over the fetched fixture,
// so standings and projections never disagree with what an admin corrected.
func (c *controller) GetLeague(ctx context.Context, leagueID string) (*model.League, error) {
	info := model.ParseLeague(leagueID)
	if info == nil {
		return nil, fmt.Errorf("unknown league: %s", leagueID)
	}

	c.mu.RLock()
	l, ok := c.leagues[leagueID]
	c.mu.RUnlock()
	if ok {
		return l, nil
	}

	return c.refreshLeague(ctx, info)
}

// RefreshLeagues refetches every known league. Fetch errors don't abort the
// loop; leagues that fail keep their cached copy and the first error is
// returned after everything has been attempted.
func (c *controller) RefreshLeagues(ctx context.Context) error {
	var firstErr error
	for _, info := range model.Leagues {
		if _, err := c.refreshLeague(ctx, info); err != nil {
			log.Printf("error refreshing league %s: %v", info.ID, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (c *controller) refreshLeague(ctx context.Context, info *model.LeagueInfo) (*model.League, error) {
	l, err := c.tvf.LoadLeague(ctx, info)
	if err != nil {
		return nil, fmt.Errorf("error loading league %s: %w", info.ID, err)
	}

	if err := c.applyVerifiedResults(ctx, l); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.leagues[info.ID] = l
	c.mu.Unlock()
	return l, nil
}

// applyVerifiedResults overlays admin-entered results onto the fetched data.
// A verified result marks its match as played with its score and folds the
// outcome into the two teams' roster numbers, since the standings calculator
// trusts the roster for anything played. Correcting an already played match
// backs the source's outcome out first. Results that don't match any fixture
// match, or whose score doesn't resolve, are ignored.
func (c *controller) applyVerifiedResults(ctx context.Context, l *model.League) error {
	results, err := c.db.ListResults(ctx, l.Info.ID)
	if err != nil {
		return fmt.Errorf("error listing verified results for %s: %w", l.Info.ID, err)
	}
	if len(results) == 0 {
		return nil
	}

	type pairing struct{ group, home, away string }
	byPair := make(map[pairing]*model.VerifiedResult, len(results))
	for i := range results {
		r := &results[i]
		byPair[pairing{
			group: r.Group,
			home:  model.CanonicalName(r.HomeTeam),
			away:  model.CanonicalName(r.AwayTeam),
		}] = r
	}

	byName := make(map[string]*model.Team, len(l.Teams))
	for i := range l.Teams {
		byName[model.CanonicalName(l.Teams[i].Name)] = &l.Teams[i]
	}

	for i := range l.Fixture {
		m := &l.Fixture[i]
		r, ok := byPair[pairing{
			group: m.Group,
			home:  model.CanonicalName(m.HomeTeam),
			away:  model.CanonicalName(m.AwayTeam),
		}]
		if !ok {
			continue
		}
		outcome, ok := model.ResolveOutcome(r.Score)
		if !ok {
			continue
		}

		home := byName[model.CanonicalName(m.HomeTeam)]
		away := byName[model.CanonicalName(m.AwayTeam)]
		if home == nil || away == nil {
			continue
		}

		if m.Played {
			if old, ok := model.ResolveOutcome(m.Score); ok {
				unapplyOutcome(home, away, old)
			}
		}
		applyOutcome(home, away, outcome)

		m.Played = true
		m.Score = r.Score
	}
	return nil
}

func (c *controller) RunPeriodicLeagueRefresh(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := c.RefreshLeagues(ctx); err != nil {
				log.Printf("%v", err)
			}
			cancel()
		}
	}
}
