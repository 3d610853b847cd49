package controller

import (
	"testing"

	"github.com/utkugunce/volleysim/model"
)

func sourceGroups() []model.PlayoffGroup {
	a := model.PlayoffGroup{Name: "A Grubu"}
	for i, e := range []struct {
		name string
		wins int
	}{{"A1", 8}, {"A2", 6}, {"A3", 4}, {"A4", 2}, {"A5", 0}} {
		a.Teams = append(a.Teams, model.SeededTeam{
			Team: model.Team{Name: e.name, Group: "A Grubu", Wins: e.wins, Points: e.wins * 3},
			Seed: i + 1, SourceGroup: "A Grubu",
		})
	}
	b := model.PlayoffGroup{Name: "B Grubu"}
	for i, e := range []struct {
		name string
		wins int
	}{{"B1", 7}, {"B2", 5}, {"B3", 3}, {"B4", 1}, {"B5", 0}} {
		b.Teams = append(b.Teams, model.SeededTeam{
			Team: model.Team{Name: e.name, Group: "B Grubu", Wins: e.wins, Points: e.wins * 3},
			Seed: i + 1, SourceGroup: "B Grubu",
		})
	}
	return []model.PlayoffGroup{a, b}
}

func TestGenerateStage_snakeSeeding(t *testing.T) {
	rule := model.StageRule{Stage: "quarterfinal", TakeTop: 4, PoolCount: 2, PoolPrefix: "Çeyrek Final"}
	pools := GenerateStage(sourceGroups(), rule)

	if len(pools) != 2 {
		t.Fatalf("expected 2 pools, got %d", len(pools))
	}
	if pools[0].Name != "Çeyrek Final A Grubu" || pools[1].Name != "Çeyrek Final B Grubu" {
		t.Errorf("unexpected pool names: %s, %s", pools[0].Name, pools[1].Name)
	}

	// Aggregate order is A1,B1,A2,B2,A3,B3,A4,B4 (rank first, record as the
	// tie-break across groups). Snake distribution: seeds 1,4,5,8 in the
	// first pool and 2,3,6,7 in the second.
	names := func(g model.PlayoffGroup) []string {
		out := make([]string, 0, len(g.Teams))
		for _, st := range g.Teams {
			out = append(out, st.Name)
		}
		return out
	}
	wantFirst := []string{"A1", "B2", "A3", "B4"}
	wantSecond := []string{"B1", "A2", "B3", "A4"}
	for i, n := range wantFirst {
		if names(pools[0])[i] != n {
			t.Fatalf("pool 1 - expected %v, got %v", wantFirst, names(pools[0]))
		}
	}
	for i, n := range wantSecond {
		if names(pools[1])[i] != n {
			t.Fatalf("pool 2 - expected %v, got %v", wantSecond, names(pools[1]))
		}
	}

	// Seeds are global across the stage and stats reset for the new stage.
	if pools[0].Teams[0].Seed != 1 || pools[1].Teams[0].Seed != 2 || pools[0].Teams[1].Seed != 4 {
		t.Errorf("unexpected seeds: %+v, %+v", pools[0].Teams, pools[1].Teams)
	}
	for _, pool := range pools {
		for _, st := range pool.Teams {
			if st.Wins != 0 || st.Points != 0 || st.Played != 0 {
				t.Errorf("expected zeroed stats entering the stage, got %+v", st.Team)
			}
			if st.Group != pool.Name {
				t.Errorf("expected team group %q, got %q", pool.Name, st.Group)
			}
		}
	}

	// Provenance survives the move.
	if pools[0].Teams[1].SourceGroup != "B Grubu" {
		t.Errorf("expected SourceGroup to be preserved, got %q", pools[0].Teams[1].SourceGroup)
	}
}

func TestGenerateStage_singlePool(t *testing.T) {
	rule := model.StageRule{Stage: "semifinal", TakeTop: 2, PoolCount: 1, PoolPrefix: "Yarı Final"}
	pools := GenerateStage(sourceGroups(), rule)

	if len(pools) != 1 || pools[0].Name != "Yarı Final Grubu" {
		t.Fatalf("expected single pool named 'Yarı Final Grubu', got %+v", pools)
	}
	if len(pools[0].Teams) != 4 {
		t.Errorf("expected 4 teams, got %d", len(pools[0].Teams))
	}
}

func TestGenerateStage_shortGroup(t *testing.T) {
	short := []model.PlayoffGroup{{
		Name: "A Grubu",
		Teams: []model.SeededTeam{
			{Team: model.Team{Name: "Only", Group: "A Grubu"}, Seed: 1, SourceGroup: "A Grubu"},
		},
	}}
	rule := model.StageRule{Stage: "quarterfinal", TakeTop: 4, PoolCount: 1, PoolPrefix: "Çeyrek Final"}
	pools := GenerateStage(short, rule)
	if len(pools[0].Teams) != 1 {
		t.Errorf("expected a group shorter than TakeTop to contribute what it has, got %+v", pools[0].Teams)
	}
}

func TestStageFixture_doubleRoundRobin(t *testing.T) {
	g := model.PlayoffGroup{
		Name: "Yarı Final Grubu",
		Teams: []model.SeededTeam{
			{Team: model.Team{Name: "X"}},
			{Team: model.Team{Name: "Y"}},
			{Team: model.Team{Name: "Z"}},
		},
	}
	fixture := StageFixture(g, "semifinal")

	if len(fixture) != 6 {
		t.Fatalf("expected 6 matches for 3 teams, got %d", len(fixture))
	}
	seen := make(map[string]bool)
	for _, m := range fixture {
		seen[m.HomeTeam+"|"+m.AwayTeam] = true
		if m.Played {
			t.Errorf("synthetic fixture match marked played: %+v", m)
		}
		if m.Group != "Yarı Final Grubu" {
			t.Errorf("unexpected group: %q", m.Group)
		}
	}
	for _, pair := range []string{"X|Y", "Y|X", "X|Z", "Z|X", "Y|Z", "Z|Y"} {
		if !seen[pair] {
			t.Errorf("missing pairing %s", pair)
		}
	}
}

func TestApplyStageOverrides(t *testing.T) {
	rule := model.StageRule{Stage: "semifinal", TakeTop: 2, PoolCount: 1, PoolPrefix: "Yarı Final"}
	pools := GenerateStage(sourceGroups(), rule)

	// Without overrides the pool keeps seed order.
	same := ApplyStageOverrides(pools, nil, "semifinal")
	if same[0].Teams[0].Name != pools[0].Teams[0].Name {
		t.Errorf("expected unchanged order without overrides")
	}

	// Give the lowest seed wins over everyone.
	last := pools[0].Teams[len(pools[0].Teams)-1].Name
	overrides := make(model.Overrides)
	for _, st := range pools[0].Teams {
		if st.Name == last {
			continue
		}
		overrides[model.MatchKey(last, st.Name)] = "3-0"
		overrides[model.MatchKey(st.Name, last)] = "0-3"
	}

	reordered := ApplyStageOverrides(pools, overrides, "semifinal")
	if reordered[0].Teams[0].Name != last {
		t.Errorf("expected %s to lead the pool after sweeping it, got %s", last, reordered[0].Teams[0].Name)
	}
	// Seed and provenance ride along with the reordering.
	if reordered[0].Teams[0].Seed != pools[0].Teams[len(pools[0].Teams)-1].Seed {
		t.Errorf("expected original seed to be preserved")
	}
}

func TestResolveSeries(t *testing.T) {
	home := &model.SeededTeam{Team: model.Team{Name: "Fenerbahçe"}, Seed: 1}
	away := &model.SeededTeam{Team: model.Team{Name: "Halkbank"}, Seed: 4}

	tests := map[string]struct {
		overrides model.Overrides
		homeWins  int
		awayWins  int
		winner    *model.SeededTeam
	}{
		"no games": {
			overrides: nil,
			homeWins:  0, awayWins: 0, winner: nil,
		},
		"split after two": {
			overrides: model.Overrides{
				"po-sf1-m1": "3-0",
				"po-sf1-m2": "1-3",
			},
			homeWins: 1, awayWins: 1, winner: nil,
		},
		"home sweeps": {
			overrides: model.Overrides{
				"po-sf1-m1": "3-2",
				"po-sf1-m2": "3-1",
			},
			homeWins: 2, awayWins: 0, winner: home,
		},
		"away takes the decider": {
			overrides: model.Overrides{
				"po-sf1-m1": "0-3",
				"po-sf1-m2": "3-0",
				"po-sf1-m3": "2-3",
			},
			homeWins: 1, awayWins: 2, winner: away,
		},
		"games past the clinch ignored": {
			overrides: model.Overrides{
				"po-sf1-m1": "3-0",
				"po-sf1-m2": "3-0",
				"po-sf1-m3": "0-3",
			},
			homeWins: 2, awayWins: 0, winner: home,
		},
		"invalid game skipped": {
			overrides: model.Overrides{
				"po-sf1-m1": "nonsense",
				"po-sf1-m2": "3-0",
				"po-sf1-m3": "3-1",
			},
			homeWins: 2, awayWins: 0, winner: home,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			s := ResolveSeries("po-sf1", home, away, 3, tc.overrides)
			if s.HomeWins != tc.homeWins || s.AwayWins != tc.awayWins {
				t.Errorf("expected %d-%d, got %d-%d", tc.homeWins, tc.awayWins, s.HomeWins, s.AwayWins)
			}
			if s.Winner != tc.winner {
				t.Errorf("unexpected winner: %+v", s.Winner)
			}
		})
	}
}

func TestResolveSeries_nilSide(t *testing.T) {
	home := &model.SeededTeam{Team: model.Team{Name: "X"}}
	s := ResolveSeries("po-final", home, nil, 5, model.Overrides{"po-final-m1": "3-0"})
	if s.HomeWins != 0 || s.Winner != nil {
		t.Errorf("a series with an undecided side must not resolve: %+v", s)
	}
}

func TestGenerateBracket(t *testing.T) {
	standings := []model.Team{
		{Name: "S1"}, {Name: "S2"}, {Name: "S3"}, {Name: "S4"},
		{Name: "S5"}, {Name: "S6"}, {Name: "S7"}, {Name: "S8"},
	}
	rule := model.BracketRule{Name: "Şampiyonluk", Offset: 0, Prefix: "po", SemiLength: 3, FinalLength: 5}

	overrides := model.Overrides{
		// S1 beats S4 in two.
		"po-sf1-m1": "3-0",
		"po-sf1-m2": "3-1",
		// S3 upsets S2 in three.
		"po-sf2-m1": "3-0",
		"po-sf2-m2": "0-3",
		"po-sf2-m3": "1-3",
		// Final: S1 up 2-1, not clinched at best-of-5.
		"po-final-m1": "3-0",
		"po-final-m2": "2-3",
		"po-final-m3": "3-2",
	}

	b := GenerateBracket(standings, rule, overrides)

	if b.Semifinals[0].Home.Name != "S1" || b.Semifinals[0].Away.Name != "S4" {
		t.Errorf("expected 1v4 semifinal, got %s v %s", b.Semifinals[0].Home.Name, b.Semifinals[0].Away.Name)
	}
	if b.Semifinals[1].Home.Name != "S2" || b.Semifinals[1].Away.Name != "S3" {
		t.Errorf("expected 2v3 semifinal, got %s v %s", b.Semifinals[1].Home.Name, b.Semifinals[1].Away.Name)
	}

	if b.Final.Home.Name != "S1" || b.Final.Away.Name != "S3" {
		t.Errorf("expected S1 v S3 final, got %+v", b.Final)
	}
	if b.Final.Winner != nil {
		t.Errorf("final should still be open at 2-1 in a best-of-5, got winner %+v", b.Final.Winner)
	}
	if b.ThirdPlace.Home.Name != "S4" || b.ThirdPlace.Away.Name != "S2" {
		t.Errorf("expected semifinal losers in the third-place series, got %+v", b.ThirdPlace)
	}
}

func TestGenerateBracket_offsetCohort(t *testing.T) {
	standings := []model.Team{
		{Name: "S1"}, {Name: "S2"}, {Name: "S3"}, {Name: "S4"},
		{Name: "S5"}, {Name: "S6"}, {Name: "S7"}, {Name: "S8"},
	}
	rule := model.BracketRule{Name: "5.-8. Sıralama", Offset: 4, Prefix: "p5", SemiLength: 3, FinalLength: 3}

	b := GenerateBracket(standings, rule, nil)
	if b.Semifinals[0].Home.Name != "S5" || b.Semifinals[0].Away.Name != "S8" {
		t.Errorf("expected 5v8, got %s v %s", b.Semifinals[0].Home.Name, b.Semifinals[0].Away.Name)
	}
	if b.Semifinals[0].Home.Seed != 5 {
		t.Errorf("expected global seed 5, got %d", b.Semifinals[0].Home.Seed)
	}
	if b.Final.Home != nil || b.Final.Winner != nil {
		t.Errorf("expected an empty final with no games played, got %+v", b.Final)
	}
}

func TestGenerateBracket_missingSeeds(t *testing.T) {
	standings := []model.Team{{Name: "S1"}, {Name: "S2"}, {Name: "S3"}}
	rule := model.BracketRule{Name: "Şampiyonluk", Offset: 0, Prefix: "po", SemiLength: 3, FinalLength: 5}

	b := GenerateBracket(standings, rule, nil)
	if b.Semifinals[0].Away != nil {
		t.Errorf("expected missing seed 4 to leave a nil slot, got %+v", b.Semifinals[0].Away)
	}
	if b.Semifinals[1].Home.Name != "S2" || b.Semifinals[1].Away.Name != "S3" {
		t.Errorf("expected 2v3 to still form, got %+v", b.Semifinals[1])
	}
}
