package controller

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/utkugunce/volleysim/db"
	"github.com/utkugunce/volleysim/model"
)

// Stage override maps are saved as scenarios under these group IDs, one map
// per stage, so that editing a quarterfinal prediction never leaks into the
// semifinal map.
func stageScenarioID(stage string) string {
	return "playoffs:" + stage
}

func (c *controller) GetPlayoffPicture(ctx context.Context, leagueID string) (*model.PlayoffPicture, error) {
	l, err := c.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error getting league %s: %w", leagueID, err)
	}

	picture := &model.PlayoffPicture{League: l.Info}

	// Seed standings per group, with each group's saved scenario applied so
	// that regular-season what-ifs carry through into the projection.
	seeds := make([]model.PlayoffGroup, 0, len(l.Info.Groups))
	for _, group := range l.Info.Groups {
		overrides, err := c.loadScenario(ctx, leagueID, group)
		if err != nil {
			return nil, err
		}
		standings := ComputeStandings(l.GroupTeams(group), l.GroupFixture(group), overrides)
		seeds = append(seeds, StandingsGroup(group, standings))
	}

	switch l.Info.Format {
	case model.FormatGroups:
		current := seeds
		for _, rule := range l.Info.Stages {
			overrides, err := c.loadScenario(ctx, leagueID, stageScenarioID(rule.Stage))
			if err != nil {
				return nil, err
			}
			current = ApplyStageOverrides(GenerateStage(current, rule), overrides, rule.Stage)
			picture.Stages = append(picture.Stages, model.PlayoffStage{Name: rule.Stage, Groups: current})
		}
	case model.FormatSeries:
		overrides, err := c.loadScenario(ctx, leagueID, stageScenarioID("bracket"))
		if err != nil {
			return nil, err
		}
		standings := teamsOf(seeds[0])
		for _, rule := range l.Info.Brackets {
			picture.Brackets = append(picture.Brackets, GenerateBracket(standings, rule, overrides))
		}
	}

	return picture, nil
}

// loadScenario returns the saved override map for a group, or nil when none
// has been saved yet.
func (c *controller) loadScenario(ctx context.Context, leagueID, group string) (model.Overrides, error) {
	overrides, err := c.db.GetScenario(ctx, leagueID, group)
	if err != nil {
		if errors.Is(err, db.ErrScenarioNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return overrides, nil
}

// StandingsGroup wraps sorted standings as a playoff source group, seeding
// teams in standings order.
func StandingsGroup(name string, standings []model.Team) model.PlayoffGroup {
	g := model.PlayoffGroup{Name: name, Teams: make([]model.SeededTeam, 0, len(standings))}
	for i, t := range standings {
		g.Teams = append(g.Teams, model.SeededTeam{Team: t, Seed: i + 1, SourceGroup: name})
	}
	return g
}

func teamsOf(g model.PlayoffGroup) []model.Team {
	teams := make([]model.Team, 0, len(g.Teams))
	for _, st := range g.Teams {
		teams = append(teams, st.Team)
	}
	return teams
}

// GenerateStage forms the next playoff stage: the top TakeTop teams of every
// source group, ordered by aggregate rank (rank within group first, then the
// standings comparator across groups), distributed snake-style into
// PoolCount balanced pools. Carried teams start the new stage with zeroed
// records; only the synthetic intra-pool fixture counts there.
func GenerateStage(source []model.PlayoffGroup, rule model.StageRule) []model.PlayoffGroup {
	type candidate struct {
		team        model.Team
		sourceGroup string
		groupRank   int
	}

	candidates := make([]candidate, 0, len(source)*rule.TakeTop)
	for _, g := range source {
		n := rule.TakeTop
		if n > len(g.Teams) {
			n = len(g.Teams)
		}
		for i := 0; i < n; i++ {
			candidates = append(candidates, candidate{
				team:        g.Teams[i].Team,
				sourceGroup: g.Name,
				groupRank:   i,
			})
		}
	}

	// Aggregate seeding: 1st places of all groups first, ordered among
	// themselves by the standings keys, then all 2nd places, and so on.
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		if a.groupRank != b.groupRank {
			return a.groupRank - b.groupRank
		}
		return compareRecords(a.team, b.team)
	})

	pools := make([]model.PlayoffGroup, rule.PoolCount)
	for i := range pools {
		pools[i] = model.PlayoffGroup{
			Name:  fmt.Sprintf("%s %c Grubu", rule.PoolPrefix, 'A'+i),
			Stage: rule.Stage,
		}
	}
	if rule.PoolCount == 1 {
		pools[0].Name = fmt.Sprintf("%s Grubu", rule.PoolPrefix)
	}

	for i, cand := range candidates {
		row := i / rule.PoolCount
		col := i % rule.PoolCount
		if row%2 == 1 {
			col = rule.PoolCount - 1 - col
		}

		team := cand.team
		team.Group = pools[col].Name
		team.Played, team.Wins, team.Points, team.SetsWon, team.SetsLost = 0, 0, 0, 0, 0

		pools[col].Teams = append(pools[col].Teams, model.SeededTeam{
			Team:        team,
			Seed:        i + 1,
			SourceGroup: cand.sourceGroup,
		})
	}

	return pools
}

func compareRecords(a, b model.Team) int {
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
}

// ApplyStageOverrides recomputes each pool's internal standings from its
// synthetic double round-robin fixture and the stage's override map,
// reordering the pool while keeping seed and provenance with each team.
// A pool with no applicable overrides keeps its seed order.
func ApplyStageOverrides(groups []model.PlayoffGroup, overrides model.Overrides, stageKey string) []model.PlayoffGroup {
	result := make([]model.PlayoffGroup, 0, len(groups))
	for _, g := range groups {
		fixture := StageFixture(g, stageKey)
		standings := ComputeStandings(teamsOf(g), fixture, overrides)

		byName := make(map[string]model.SeededTeam, len(g.Teams))
		for _, st := range g.Teams {
			byName[model.CanonicalName(st.Name)] = st
		}

		ordered := model.PlayoffGroup{Name: g.Name, Stage: g.Stage, Teams: make([]model.SeededTeam, 0, len(standings))}
		for _, t := range standings {
			st := byName[model.CanonicalName(t.Name)]
			st.Team = t
			ordered.Teams = append(ordered.Teams, st)
		}
		result = append(result, ordered)
	}
	return result
}

// StageFixture builds the double round-robin fixture implied by a playoff
// pool: every unordered pair of its teams exactly once with each side at
// home, matching the regular season's double round-robin convention. Match
// IDs are stage-scoped so series of different stages never collide.
func StageFixture(g model.PlayoffGroup, stageKey string) []model.Match {
	n := len(g.Teams)
	fixture := make([]model.Match, 0, n*(n-1))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			home, away := g.Teams[i].Name, g.Teams[j].Name
			fixture = append(fixture,
				model.Match{
					ID:       stageKey + "|" + model.MatchKey(home, away),
					Group:    g.Name,
					HomeTeam: home,
					AwayTeam: away,
				},
				model.Match{
					ID:       stageKey + "|" + model.MatchKey(away, home),
					Group:    g.Name,
					HomeTeam: away,
					AwayTeam: home,
				},
			)
		}
	}
	return fixture
}

// GenerateBracket computes one elimination cohort: semifinals seeded 1v4 and
// 2v3 within the cohort, winners to the final, losers to the third-place
// series. A missing seed leaves its slot nil and everything downstream stays
// undecided.
func GenerateBracket(standings []model.Team, rule model.BracketRule, overrides model.Overrides) *model.Bracket {
	seed := func(i int) *model.SeededTeam {
		idx := rule.Offset + i
		if idx >= len(standings) {
			return nil
		}
		t := standings[idx]
		return &model.SeededTeam{Team: t, Seed: idx + 1, SourceGroup: t.Group}
	}

	b := &model.Bracket{Name: rule.Name}
	b.Semifinals[0] = ResolveSeries(rule.Prefix+"-sf1", seed(0), seed(3), rule.SemiLength, overrides)
	b.Semifinals[1] = ResolveSeries(rule.Prefix+"-sf2", seed(1), seed(2), rule.SemiLength, overrides)
	b.Final = ResolveSeries(rule.Prefix+"-final", b.Semifinals[0].Winner, b.Semifinals[1].Winner, rule.FinalLength, overrides)
	b.ThirdPlace = ResolveSeries(rule.Prefix+"-third", b.Semifinals[0].Loser, b.Semifinals[1].Loser, rule.SemiLength, overrides)
	return b
}

// ResolveSeries counts per-game wins for a best-of-length series from the
// override map, with games keyed matchID-m1, matchID-m2, ... The series
// resolves as soon as one side reaches ceil(length/2) wins; games recorded
// past that point are ignored. Either side nil means the series cannot
// resolve at all.
func ResolveSeries(matchID string, home, away *model.SeededTeam, length int, overrides model.Overrides) model.Series {
	s := model.Series{MatchID: matchID, Home: home, Away: away, Length: length}
	if home == nil || away == nil {
		return s
	}

	need := length/2 + 1
	for game := 1; game <= length; game++ {
		score, ok := overrides[model.GameKey(matchID, game)]
		if !ok {
			continue
		}
		outcome, ok := model.ResolveOutcome(score)
		if !ok {
			continue
		}

		if outcome.HomeWin {
			s.HomeWins++
		} else {
			s.AwayWins++
		}

		if s.HomeWins == need {
			s.Winner, s.Loser = home, away
			break
		}
		if s.AwayWins == need {
			s.Winner, s.Loser = away, home
			break
		}
	}
	return s
}
