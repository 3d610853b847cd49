package controller

import (
	"context"
	"fmt"

	"github.com/utkugunce/volleysim/model"
)

func (c *controller) GetScenarioDiff(ctx context.Context, leagueID, group string, overrides model.Overrides) ([]model.TeamDiff, error) {
	l, err := c.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error getting league %s: %w", leagueID, err)
	}

	roster := l.GroupTeams(group)
	fixture := l.GroupFixture(group)

	base := ComputeStandings(roster, fixture, nil)
	target := ComputeStandings(roster, fixture, overrides)
	return DiffStandings(base, target), nil
}

// DiffStandings compares two sorted standings snapshots team by team. Rank is
// the 1-based position; RankDiff = baseRank - targetRank, so a team that
// climbed from 5th to 3rd gets +2. Teams in target that are missing from base
// are skipped.
func DiffStandings(base, target []model.Team) []model.TeamDiff {
	baseRank := make(map[string]int, len(base))
	baseTeam := make(map[string]*model.Team, len(base))
	for i := range base {
		key := model.CanonicalName(base[i].Name)
		baseRank[key] = i + 1
		baseTeam[key] = &base[i]
	}

	diffs := make([]model.TeamDiff, 0, len(target))
	for i := range target {
		key := model.CanonicalName(target[i].Name)
		rank, ok := baseRank[key]
		if !ok {
			continue
		}
		b := baseTeam[key]
		diffs = append(diffs, model.TeamDiff{
			Name:      target[i].Name,
			RankDiff:  rank - (i + 1),
			PointDiff: target[i].Points - b.Points,
			WinDiff:   target[i].Wins - b.Wins,
		})
	}
	return diffs
}
