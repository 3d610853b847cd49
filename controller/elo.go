package controller

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/utkugunce/volleysim/model"
)

const (
	eloBase = 1200.0
	eloK    = 32.0
)

func (c *controller) GetRatings(ctx context.Context, leagueID, group string) (map[string]float64, error) {
	l, err := c.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error getting league %s: %w", leagueID, err)
	}

	return EstimateRatings(l.GroupTeams(group), l.GroupFixture(group)), nil
}

func (c *controller) AutoFillScenario(ctx context.Context, leagueID, group string, seed int64) (model.Overrides, error) {
	l, err := c.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error getting league %s: %w", leagueID, err)
	}

	roster := l.GroupTeams(group)
	fixture := l.GroupFixture(group)
	overrides := AutoFillOverrides(roster, fixture, rand.New(rand.NewSource(seed)))

	if err := c.db.SaveScenario(ctx, leagueID, group, overrides, c.clock.Now()); err != nil {
		return nil, fmt.Errorf("error saving auto-filled scenario: %w", err)
	}
	return overrides, nil
}

// EstimateRatings derives a relative-strength rating per team from the
// played matches, in fixture order. Every team starts at 1200 and moves by
// the logistic expected-score formula with a fixed K. A win is a full win
// no matter how close the sets were; this is a ranking signal for biasing
// predictions, not a certified rating.
func EstimateRatings(roster []model.Team, fixture []model.Match) map[string]float64 {
	byKey := make(map[string]*float64, len(roster))
	for i := range roster {
		v := eloBase
		byKey[model.CanonicalName(roster[i].Name)] = &v
	}

	for i := range fixture {
		m := &fixture[i]
		if !m.Played {
			continue
		}
		outcome, ok := model.ResolveOutcome(m.Score)
		if !ok {
			continue
		}

		home := byKey[model.CanonicalName(m.HomeTeam)]
		away := byKey[model.CanonicalName(m.AwayTeam)]
		if home == nil || away == nil {
			continue
		}

		expected := expectedScore(*home, *away)
		if outcome.HomeWin {
			*home += eloK * (1 - expected)
			*away -= eloK * (1 - expected)
		} else {
			*home -= eloK * expected
			*away += eloK * expected
		}
	}

	ratings := make(map[string]float64, len(roster))
	for i := range roster {
		name := roster[i].Name
		if r := byKey[model.CanonicalName(name)]; r != nil {
			ratings[name] = *r
		}
	}
	return ratings
}

// expectedScore is the standard logistic expectation for the first side.
func expectedScore(home, away float64) float64 {
	return 1 / (1 + math.Pow(10, (away-home)/400))
}

// AutoFillOverrides predicts a score for every open match, biased by the
// Elo estimate: the stronger side wins more often, and the bigger the gap
// the more lopsided the predicted set score.
func AutoFillOverrides(roster []model.Team, fixture []model.Match, rnd *rand.Rand) model.Overrides {
	ratings := EstimateRatings(roster, fixture)
	byKey := make(map[string]float64, len(ratings))
	for name, r := range ratings {
		byKey[model.CanonicalName(name)] = r
	}

	overrides := make(model.Overrides)
	for i := range fixture {
		m := &fixture[i]
		if m.Played {
			continue
		}
		home, okH := byKey[model.CanonicalName(m.HomeTeam)]
		away, okA := byKey[model.CanonicalName(m.AwayTeam)]
		if !okH || !okA {
			continue
		}

		p := expectedScore(home, away)
		homeWin := rnd.Float64() < p
		margin := p
		if !homeWin {
			margin = 1 - p
		}

		overrides[model.MatchKey(m.HomeTeam, m.AwayTeam)] = predictScore(homeWin, margin, rnd)
	}
	return overrides
}

// predictScore picks a set score for the winning side: dominant favorites
// sweep more often, coin-flip matches go long.
func predictScore(homeWin bool, margin float64, rnd *rand.Rand) string {
	r := rnd.Float64()
	var loserSets int
	switch {
	case r < margin:
		loserSets = 0
	case r < margin+(1-margin)/2:
		loserSets = 1
	default:
		loserSets = 2
	}

	if homeWin {
		return fmt.Sprintf("3-%d", loserSets)
	}
	return fmt.Sprintf("%d-3", loserSets)
}
