package model

// Team is one roster entry in a league group. The Played/Wins/Points and set
// counters reflect results as of the data source's last update; hypothetical
// results are only ever applied to copies.
type Team struct {
	Name     string
	Group    string
	Played   int
	Wins     int
	Points   int
	SetsWon  int
	SetsLost int
}

func (t *Team) Clone() *Team {
	c := *t
	return &c
}

// SetRatio is setsWon / max(setsLost, 1). A team that has not won or lost a
// single set ranks with ratio 0, not 1.
func (t *Team) SetRatio() float64 {
	if t.SetsWon == 0 && t.SetsLost == 0 {
		return 0
	}
	if t.SetsLost == 0 {
		return float64(t.SetsWon)
	}
	return float64(t.SetsWon) / float64(t.SetsLost)
}

// TeamDiff describes how one team moved between two standings snapshots.
// RankDiff is positive when the team improved its position.
type TeamDiff struct {
	Name      string
	RankDiff  int
	PointDiff int
	WinDiff   int
}
