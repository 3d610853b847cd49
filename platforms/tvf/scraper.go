package tvf

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/utkugunce/volleysim/model"
)

func (c *client) scrapeLeague(ctx context.Context, info *model.LeagueInfo) (*model.League, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/leagues/%s", c.url, info.ID), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return parseLeagueHTML(resp.Body, info)
}

// parseLeagueHTML reads a league page laid out as repeated sections: a group
// header followed by that group's standings table and fixture table. Rows
// that don't look like data rows (headers, spacers) are skipped rather than
// failing the whole page.
func parseLeagueHTML(r io.Reader, info *model.LeagueInfo) (*model.League, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing league page: %w", err)
	}

	result := &model.League{Info: info}
	currentGroup := ""

	doc.Find(".group-header, table.standings, table.fixture").Each(func(i int, s *goquery.Selection) {
		switch {
		case s.HasClass("group-header"):
			currentGroup = strings.TrimSpace(s.Text())
		case s.HasClass("standings"):
			s.Find("tr").Each(func(j int, tr *goquery.Selection) {
				if t, ok := parseStandingsRow(tr, currentGroup); ok {
					result.Teams = append(result.Teams, t)
				}
			})
		case s.HasClass("fixture"):
			s.Find("tr").Each(func(j int, tr *goquery.Selection) {
				if m, ok := parseFixtureRow(tr, currentGroup); ok {
					result.Fixture = append(result.Fixture, m)
				}
			})
		}
	})

	if len(result.Teams) == 0 {
		return nil, fmt.Errorf("no teams found on league page for %s", info.ID)
	}
	return result, nil
}

// Standings rows: team, played, wins, points, sets won, sets lost.
func parseStandingsRow(tr *goquery.Selection, group string) (model.Team, bool) {
	cells := tr.Find("td")
	if cells.Length() < 6 {
		return model.Team{}, false
	}

	name := strings.TrimSpace(cells.Eq(0).Text())
	if name == "" {
		return model.Team{}, false
	}
	played, err := strconv.Atoi(strings.TrimSpace(cells.Eq(1).Text()))
	if err != nil {
		// Header rows repeat the column labels inside td elements.
		return model.Team{}, false
	}

	t := model.Team{Name: name, Group: group, Played: played}
	t.Wins, _ = strconv.Atoi(strings.TrimSpace(cells.Eq(2).Text()))
	t.Points, _ = strconv.Atoi(strings.TrimSpace(cells.Eq(3).Text()))
	t.SetsWon, _ = strconv.Atoi(strings.TrimSpace(cells.Eq(4).Text()))
	t.SetsLost, _ = strconv.Atoi(strings.TrimSpace(cells.Eq(5).Text()))
	return t, true
}

// Fixture rows: date, time, home team, score, away team. A non-empty score
// cell marks the match as played.
func parseFixtureRow(tr *goquery.Selection, group string) (model.Match, bool) {
	cells := tr.Find("td")
	if cells.Length() < 5 {
		return model.Match{}, false
	}

	home := strings.TrimSpace(cells.Eq(2).Text())
	away := strings.TrimSpace(cells.Eq(4).Text())
	if home == "" || away == "" {
		return model.Match{}, false
	}

	m := model.Match{
		Group:    group,
		HomeTeam: home,
		AwayTeam: away,
		Date:     strings.TrimSpace(cells.Eq(0).Text()),
		Time:     strings.TrimSpace(cells.Eq(1).Text()),
		Score:    strings.TrimSpace(cells.Eq(3).Text()),
	}
	if id, ok := tr.Attr("data-match-id"); ok {
		m.ID = id
	}
	if _, ok := model.ResolveOutcome(m.Score); ok {
		m.Played = true
	}
	return m, true
}
