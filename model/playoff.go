package model

// SeededTeam is a team carried into a playoff stage, with its seed in that
// stage and the group it came from (shown in the UI next to the team name).
type SeededTeam struct {
	Team
	Seed        int
	SourceGroup string
}

// PlayoffGroup is one pool within a playoff stage for round-robin formats.
// Teams are kept in standings order.
type PlayoffGroup struct {
	Name  string
	Stage string
	Teams []SeededTeam
}

// StageRule describes how one playoff stage is formed from the previous
// stage's standings: the top TakeTop of every source group, seeded by
// aggregate rank into PoolCount pools.
type StageRule struct {
	Stage      string
	TakeTop    int
	PoolCount  int
	PoolPrefix string
}

// Series is a best-of-N playoff tie. Winner and Loser stay nil until one
// side reaches the required number of game wins; a nil Home or Away means
// the slot is still TBD and the series can never resolve.
type Series struct {
	MatchID  string
	Home     *SeededTeam
	Away     *SeededTeam
	Length   int
	HomeWins int
	AwayWins int
	Winner   *SeededTeam
	Loser    *SeededTeam
}

// BracketRule describes one elimination bracket cohort: Offset 0 runs ranks
// 1-4, Offset 4 runs ranks 5-8 in an identical, fully independent shape.
type BracketRule struct {
	Name        string
	Offset      int
	Prefix      string // match ID prefix for override keys
	SemiLength  int
	FinalLength int
}

// Bracket is the fixed semifinals -> final + third-place shape.
type Bracket struct {
	Name       string
	Semifinals [2]Series
	Final      Series
	ThirdPlace Series
}

// PlayoffStage is one computed stage of a round-robin playoff pipeline.
type PlayoffStage struct {
	Name   string
	Groups []PlayoffGroup
}

// PlayoffPicture is everything the playoff page renders. Groups-format
// leagues fill Stages; series-format leagues fill Brackets.
type PlayoffPicture struct {
	League   *LeagueInfo
	Stages   []PlayoffStage
	Brackets []*Bracket
}
