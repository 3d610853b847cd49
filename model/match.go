package model

import "fmt"

// Match is a fixture entry. Teams are referenced by name, not by key; the
// names are joined to roster entries via CanonicalName. A played match's
// Score is final and is never subject to an override.
type Match struct {
	ID       string // optional opaque key, used by some data sources
	Group    string
	HomeTeam string
	AwayTeam string
	Played   bool
	Score    string // set iff Played
	Date     string // display only
	Time     string // display only
}

// MatchKey builds the canonical override-map key for a match. All new
// overrides are written under this key.
func MatchKey(home, away string) string {
	return home + "|" + away
}

// legacySeparator is the join convention older saved scenarios used.
const legacySeparator = " - "

// GameKey is the override-map key for game n (1-based) of a playoff series.
func GameKey(matchID string, game int) string {
	return fmt.Sprintf("%s-m%d", matchID, game)
}

// Overrides maps a match key to a hypothetical set-score string like "3-1".
// The computation core treats it as read-only.
type Overrides map[string]string

// Lookup finds the override for a match, accepting the canonical key, the
// legacy separator convention, and the match's opaque ID. This is the only
// place that knows about the legacy key shapes.
func (o Overrides) Lookup(m *Match) (string, bool) {
	if len(o) == 0 {
		return "", false
	}
	if s, ok := o[MatchKey(m.HomeTeam, m.AwayTeam)]; ok {
		return s, true
	}
	if s, ok := o[m.HomeTeam+legacySeparator+m.AwayTeam]; ok {
		return s, true
	}
	if m.ID != "" {
		if s, ok := o[m.ID]; ok {
			return s, true
		}
	}
	return "", false
}

func (o Overrides) Clone() Overrides {
	if o == nil {
		return nil
	}
	c := make(Overrides, len(o))
	for k, v := range o {
		c[k] = v
	}
	return c
}
