package controller

import (
	"context"
	"fmt"
	"slices"

	"github.com/utkugunce/volleysim/model"
)

func (c *controller) GetStandings(ctx context.Context, leagueID, group string, overrides model.Overrides) ([]model.Team, error) {
	l, err := c.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error getting league %s: %w", leagueID, err)
	}

	return ComputeStandings(l.GroupTeams(group), l.GroupFixture(group), overrides), nil
}

// ComputeStandings folds a roster, its fixture and a set of hypothetical
// scores into sorted standings. The inputs are never mutated: every roster
// entry is cloned before anything is applied, and calling with an empty
// override map reproduces the current standings.
//
// Played matches are skipped entirely; their results are already baked into
// the roster numbers by the data source. A match contributes nothing when it
// has no override, the override doesn't resolve to a valid outcome, or either
// team name fails to join against the roster.
func ComputeStandings(roster []model.Team, fixture []model.Match, overrides model.Overrides) []model.Team {
	working := make(map[string]*model.Team, len(roster))
	order := make([]string, 0, len(roster))
	for i := range roster {
		key := model.CanonicalName(roster[i].Name)
		if _, ok := working[key]; ok {
			continue
		}
		working[key] = roster[i].Clone()
		order = append(order, key)
	}

	for i := range fixture {
		m := &fixture[i]
		if m.Played {
			continue
		}

		score, ok := overrides.Lookup(m)
		if !ok {
			continue
		}
		outcome, ok := model.ResolveOutcome(score)
		if !ok {
			continue
		}

		home := working[model.CanonicalName(m.HomeTeam)]
		away := working[model.CanonicalName(m.AwayTeam)]
		if home == nil || away == nil {
			continue
		}

		applyOutcome(home, away, outcome)
	}

	// Emit in roster order so that ties past the last sort key keep the
	// source ordering.
	result := make([]model.Team, 0, len(order))
	for _, key := range order {
		result = append(result, *working[key])
	}
	return SortStandings(result)
}

func applyOutcome(home, away *model.Team, o model.Outcome) {
	home.Played++
	away.Played++
	home.Points += o.HomePoints
	away.Points += o.AwayPoints
	home.SetsWon += o.HomeSets
	home.SetsLost += o.AwaySets
	away.SetsWon += o.AwaySets
	away.SetsLost += o.HomeSets
	if o.HomeWin {
		home.Wins++
	} else {
		away.Wins++
	}
}

// unapplyOutcome backs a previously counted result out of the roster
// numbers, the exact inverse of applyOutcome.
func unapplyOutcome(home, away *model.Team, o model.Outcome) {
	home.Played--
	away.Played--
	home.Points -= o.HomePoints
	away.Points -= o.AwayPoints
	home.SetsWon -= o.HomeSets
	home.SetsLost -= o.AwaySets
	away.SetsWon -= o.AwaySets
	away.SetsLost -= o.HomeSets
	if o.HomeWin {
		home.Wins--
	} else {
		away.Wins--
	}
}

// SortStandings orders teams by wins, then points, then set ratio, all
// descending. Teams still tied after set ratio keep their relative input
// order; no further tie-break is applied.
func SortStandings(teams []model.Team) []model.Team {
	sorted := slices.Clone(teams)
	slices.SortStableFunc(sorted, func(a, b model.Team) int {
		if a.Wins != b.Wins {
			return b.Wins - a.Wins
		}
		if a.Points != b.Points {
			return b.Points - a.Points
		}
		ar, br := a.SetRatio(), b.SetRatio()
		if ar > br {
			return -1
		}
		if ar < br {
			return 1
		}
		return 0
	})
	return sorted
}
