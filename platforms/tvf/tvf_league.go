package tvf

import "github.com/utkugunce/volleysim/model"

// Wire format of the league JSON feed.
type tvfLeague struct {
	ID      string     `json:"id"`
	Teams   []tvfTeam  `json:"teams"`
	Fixture []tvfMatch `json:"fixture"`
}

type tvfTeam struct {
	Name     string `json:"name"`
	Group    string `json:"group"`
	Played   int    `json:"played"`
	Wins     int    `json:"wins"`
	Points   int    `json:"points"`
	SetsWon  int    `json:"setsWon"`
	SetsLost int    `json:"setsLost"`
}

type tvfMatch struct {
	ID       string `json:"id"`
	Group    string `json:"group"`
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`
	Played   bool   `json:"played"`
	Score    string `json:"score"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

func (l *tvfLeague) toLeague(info *model.LeagueInfo) *model.League {
	result := &model.League{
		Info:    info,
		Teams:   make([]model.Team, 0, len(l.Teams)),
		Fixture: make([]model.Match, 0, len(l.Fixture)),
	}
	for _, t := range l.Teams {
		if t.Name == "" {
			continue
		}
		result.Teams = append(result.Teams, model.Team{
			Name:     t.Name,
			Group:    t.Group,
			Played:   t.Played,
			Wins:     t.Wins,
			Points:   t.Points,
			SetsWon:  t.SetsWon,
			SetsLost: t.SetsLost,
		})
	}
	for _, m := range l.Fixture {
		if m.HomeTeam == "" || m.AwayTeam == "" {
			continue
		}
		result.Fixture = append(result.Fixture, model.Match{
			ID:       m.ID,
			Group:    m.Group,
			HomeTeam: m.HomeTeam,
			AwayTeam: m.AwayTeam,
			Played:   m.Played,
			Score:    m.Score,
			Date:     m.Date,
			Time:     m.Time,
		})
	}
	return result
}
