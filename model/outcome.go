package model

import (
	"strconv"
	"strings"
)

// Outcome is the structured result of a volleyball match derived from a set
// score. League points follow the match-points convention: a 3-0 or 3-1 win
// is worth 3 points to the winner and 0 to the loser, a 3-2 win is worth 2
// points to the winner and 1 to the loser.
type Outcome struct {
	HomeSets   int
	AwaySets   int
	HomePoints int
	AwayPoints int
	HomeWin    bool
}

// ResolveOutcome parses a set-score string like "3-1" into an Outcome. The
// winner must have exactly 3 sets and the loser 0-2; everything else returns
// ok=false so callers can skip the entry rather than fail.
func ResolveOutcome(score string) (Outcome, bool) {
	parts := strings.Split(strings.TrimSpace(score), "-")
	if len(parts) != 2 {
		return Outcome{}, false
	}

	home, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Outcome{}, false
	}
	away, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Outcome{}, false
	}

	o := Outcome{HomeSets: home, AwaySets: away}
	switch {
	case home == 3 && (away == 0 || away == 1):
		o.HomePoints, o.AwayPoints, o.HomeWin = 3, 0, true
	case home == 3 && away == 2:
		o.HomePoints, o.AwayPoints, o.HomeWin = 2, 1, true
	case away == 3 && home == 2:
		o.HomePoints, o.AwayPoints = 1, 2
	case away == 3 && (home == 0 || home == 1):
		o.HomePoints, o.AwayPoints = 0, 3
	default:
		return Outcome{}, false
	}

	return o, true
}
