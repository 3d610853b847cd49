package model

// League formats. Groups leagues run multi-group regular seasons that feed
// quarterfinal/semifinal/final playoff pools; series leagues are a single
// table that feeds seeded best-of-N brackets.
const (
	FormatGroups = "groups"
	FormatSeries = "series"
)

// LeagueInfo is the static description of a league the service tracks.
type LeagueInfo struct {
	ID       string
	Name     string
	Format   string
	Groups   []string
	Stages   []StageRule   // groups format only
	Brackets []BracketRule // series format only
}

var (
	LeagueEfeler = &LeagueInfo{
		ID:     "efeler-ligi",
		Name:   "Efeler Ligi",
		Format: FormatSeries,
		Groups: []string{"Efeler Ligi"},
		Brackets: []BracketRule{
			{Name: "Şampiyonluk", Offset: 0, Prefix: "po", SemiLength: 3, FinalLength: 5},
			{Name: "5.-8. Sıralama", Offset: 4, Prefix: "p5", SemiLength: 3, FinalLength: 3},
		},
	}

	LeagueSultanlar = &LeagueInfo{
		ID:     "sultanlar-ligi",
		Name:   "Sultanlar Ligi",
		Format: FormatSeries,
		Groups: []string{"Sultanlar Ligi"},
		Brackets: []BracketRule{
			{Name: "Şampiyonluk", Offset: 0, Prefix: "po", SemiLength: 3, FinalLength: 5},
			{Name: "5.-8. Sıralama", Offset: 4, Prefix: "p5", SemiLength: 3, FinalLength: 3},
		},
	}

	LeagueErkekler1 = &LeagueInfo{
		ID:     "1-lig-erkekler",
		Name:   "Erkekler 1. Ligi",
		Format: FormatGroups,
		Groups: []string{"A Grubu", "B Grubu"},
		Stages: []StageRule{
			{Stage: "quarterfinal", TakeTop: 4, PoolCount: 2, PoolPrefix: "Çeyrek Final"},
			{Stage: "semifinal", TakeTop: 2, PoolCount: 1, PoolPrefix: "Yarı Final"},
			{Stage: "final", TakeTop: 2, PoolCount: 1, PoolPrefix: "Final"},
		},
	}

	LeagueKadinlar1 = &LeagueInfo{
		ID:     "1-lig-kadinlar",
		Name:   "Kadınlar 1. Ligi",
		Format: FormatGroups,
		Groups: []string{"A Grubu", "B Grubu"},
		Stages: []StageRule{
			{Stage: "quarterfinal", TakeTop: 4, PoolCount: 2, PoolPrefix: "Çeyrek Final"},
			{Stage: "semifinal", TakeTop: 2, PoolCount: 1, PoolPrefix: "Yarı Final"},
			{Stage: "final", TakeTop: 2, PoolCount: 1, PoolPrefix: "Final"},
		},
	}
)

var Leagues = []*LeagueInfo{
	LeagueEfeler,
	LeagueSultanlar,
	LeagueErkekler1,
	LeagueKadinlar1,
}

// ParseLeague returns the registered league with the given ID, or nil.
func ParseLeague(id string) *LeagueInfo {
	for _, l := range Leagues {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// League is a league's full data set as of the last refresh: the roster and
// fixture for every group, verified results already applied.
type League struct {
	Info    *LeagueInfo
	Teams   []Team
	Fixture []Match
}

// GroupTeams returns the roster entries belonging to one group.
func (l *League) GroupTeams(group string) []Team {
	teams := make([]Team, 0, len(l.Teams))
	for _, t := range l.Teams {
		if t.Group == group {
			teams = append(teams, t)
		}
	}
	return teams
}

// GroupFixture returns the fixture entries belonging to one group.
func (l *League) GroupFixture(group string) []Match {
	matches := make([]Match, 0, len(l.Fixture))
	for _, m := range l.Fixture {
		if m.Group == group {
			matches = append(matches, m)
		}
	}
	return matches
}
