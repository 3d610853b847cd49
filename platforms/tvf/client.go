package tvf

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/utkugunce/volleysim/model"
)

const TVFURL = "https://www.tvf.org.tr"

type Client interface {
	LoadLeague(ctx context.Context, info *model.LeagueInfo) (*model.League, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New() (Client, error) {
	c := &client{
		url: TVFURL,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}
	return c, nil
}

func NewForTest(url string) Client {
	return &client{
		url:        url,
		httpClient: http.DefaultClient,
	}
}

// LoadLeague fetches a league's roster and fixture. The JSON feed is the
// primary source; some leagues are only published as HTML fixture tables,
// so a feed miss falls back to scraping the league page.
func (c *client) LoadLeague(ctx context.Context, info *model.LeagueInfo) (*model.League, error) {
	l, err := c.loadLeagueFeed(ctx, info)
	if err == nil {
		return l, nil
	}

	l, scrapeErr := c.scrapeLeague(ctx, info)
	if scrapeErr != nil {
		return nil, fmt.Errorf("error loading league %s: feed: %w, scrape: %v", info.ID, err, scrapeErr)
	}
	return l, nil
}

func (c *client) loadLeagueFeed(ctx context.Context, info *model.LeagueInfo) (*model.League, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/api/v1/leagues/%s", c.url, info.ID), nil)
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

	var parsed tvfLeague
	err = json.NewDecoder(resp.Body).Decode(&parsed)
	if err != nil {
		return nil, fmt.Errorf("error parsing league feed: %w", err)
	}

	return parsed.toLeague(info), nil
}
