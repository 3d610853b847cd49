package controller

import (
	"reflect"
	"testing"

	"github.com/utkugunce/volleysim/model"
)

func testRoster() []model.Team {
	return []model.Team{
		{Name: "Fenerbahçe", Group: "Efeler Ligi", Played: 2, Wins: 2, Points: 6, SetsWon: 6, SetsLost: 1},
		{Name: "Ziraat Bankkart", Group: "Efeler Ligi", Played: 2, Wins: 1, Points: 3, SetsWon: 4, SetsLost: 3},
		{Name: "Halkbank", Group: "Efeler Ligi", Played: 2, Wins: 1, Points: 3, SetsWon: 3, SetsLost: 4},
		{Name: "Galatasaray", Group: "Efeler Ligi", Played: 2, Wins: 0, Points: 0, SetsWon: 1, SetsLost: 6},
	}
}

func testFixture() []model.Match {
	return []model.Match{
		{ID: "m1", Group: "Efeler Ligi", HomeTeam: "Fenerbahçe", AwayTeam: "Halkbank", Played: true, Score: "3-1"},
		{ID: "m2", Group: "Efeler Ligi", HomeTeam: "Ziraat Bankkart", AwayTeam: "Galatasaray", Played: false},
		{ID: "m3", Group: "Efeler Ligi", HomeTeam: "Halkbank", AwayTeam: "Galatasaray", Played: false},
	}
}

func TestComputeStandings_noOverrides(t *testing.T) {
	roster := testRoster()
	got := ComputeStandings(roster, testFixture(), nil)

	// No overrides means standings match the roster numbers, sorted.
	want := SortStandings(roster)
	if !reflect.DeepEqual(want, got) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestComputeStandings_overrideApplied(t *testing.T) {
	overrides := model.Overrides{
		"Ziraat Bankkart|Galatasaray": "2-3",
	}
	got := ComputeStandings(testRoster(), testFixture(), overrides)

	var gs, zb model.Team
	for _, team := range got {
		switch team.Name {
		case "Galatasaray":
			gs = team
		case "Ziraat Bankkart":
			zb = team
		}
	}

	// 2-3 gives the away side the win, 2 points, home 1 point.
	if gs.Wins != 1 || gs.Points != 2 || gs.Played != 3 || gs.SetsWon != 4 || gs.SetsLost != 8 {
		t.Errorf("unexpected away team after override: %+v", gs)
	}
	if zb.Wins != 1 || zb.Points != 4 || zb.Played != 3 || zb.SetsWon != 6 || zb.SetsLost != 6 {
		t.Errorf("unexpected home team after override: %+v", zb)
	}
}

func TestComputeStandings_playedMatchImmune(t *testing.T) {
	// An override for a match that is already played must not double-count.
	overrides := model.Overrides{
		"Fenerbahçe|Halkbank": "0-3",
	}
	got := ComputeStandings(testRoster(), testFixture(), overrides)
	want := ComputeStandings(testRoster(), testFixture(), nil)
	if !reflect.DeepEqual(want, got) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestComputeStandings_skipsBadInput(t *testing.T) {
	overrides := model.Overrides{
		"Ziraat Bankkart|Galatasaray": "5-0",     // not a volleyball score
		"Halkbank|Galatasaray":        "garbage", // unparseable
		"Nobody|Galatasaray":          "3-0",     // unknown team
	}
	got := ComputeStandings(testRoster(), testFixture(), overrides)
	want := ComputeStandings(testRoster(), testFixture(), nil)
	if !reflect.DeepEqual(want, got) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestComputeStandings_inputsNotMutated(t *testing.T) {
	roster := testRoster()
	fixture := testFixture()
	overrides := model.Overrides{"Ziraat Bankkart|Galatasaray": "3-0"}

	ComputeStandings(roster, fixture, overrides)

	if !reflect.DeepEqual(testRoster(), roster) {
		t.Errorf("roster was mutated: %+v", roster)
	}
	if !reflect.DeepEqual(testFixture(), fixture) {
		t.Errorf("fixture was mutated: %+v", fixture)
	}
	if len(overrides) != 1 {
		t.Errorf("overrides were mutated: %+v", overrides)
	}
}

func TestComputeStandings_normalizedNames(t *testing.T) {
	// The fixture spells the team differently than the roster.
	roster := []model.Team{
		{Name: "İstanbul Gençlik", Group: "A"},
		{Name: "Ankara DSİ", Group: "A"},
	}
	fixture := []model.Match{
		{ID: "m1", Group: "A", HomeTeam: "ISTANBUL GENCLIK", AwayTeam: "ankara dsi"},
	}
	overrides := model.Overrides{"ISTANBUL GENCLIK|ankara dsi": "3-2"}

	got := ComputeStandings(roster, fixture, overrides)
	if got[0].Name != "İstanbul Gençlik" || got[0].Wins != 1 || got[0].Points != 2 {
		t.Errorf("expected normalized join to apply the override, got %+v", got)
	}
	if got[1].Points != 1 {
		t.Errorf("expected loser of 3-2 to take a point, got %+v", got[1])
	}
}

func TestSortStandings(t *testing.T) {
	teams := []model.Team{
		{Name: "D", Wins: 1, Points: 3, SetsWon: 3, SetsLost: 3},
		{Name: "A", Wins: 2, Points: 5, SetsWon: 6, SetsLost: 4},
		{Name: "B", Wins: 2, Points: 5, SetsWon: 6, SetsLost: 3},
		{Name: "C", Wins: 2, Points: 4, SetsWon: 6, SetsLost: 2},
	}

	got := SortStandings(teams)
	wantOrder := []string{"B", "A", "C", "D"}
	for i, name := range wantOrder {
		if got[i].Name != name {
			t.Fatalf("position %d - expected %s, got %s", i+1, name, got[i].Name)
		}
	}

	// Input slice order is untouched.
	if teams[0].Name != "D" {
		t.Errorf("input slice was reordered: %+v", teams)
	}
}

func TestSortStandings_tiesKeepInputOrder(t *testing.T) {
	teams := []model.Team{
		{Name: "First", Wins: 1, Points: 3, SetsWon: 3, SetsLost: 1},
		{Name: "Second", Wins: 1, Points: 3, SetsWon: 3, SetsLost: 1},
		{Name: "Third", Wins: 1, Points: 3, SetsWon: 3, SetsLost: 1},
	}

	got := SortStandings(teams)
	for i, team := range teams {
		if got[i].Name != team.Name {
			t.Errorf("tied teams reordered, position %d - expected %s, got %s", i, team.Name, got[i].Name)
		}
	}
}
