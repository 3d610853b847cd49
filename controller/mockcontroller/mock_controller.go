package mockcontroller

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/utkugunce/volleysim/model"
)

type C struct {
	mock.Mock
}

func (c *C) ListLeagues() []*model.LeagueInfo {
	args := c.Called()

	var res []*model.LeagueInfo
	if args.Get(0) != nil {
		res = args.Get(0).([]*model.LeagueInfo)
	}
	return res
}

func (c *C) GetLeague(ctx context.Context, leagueID string) (*model.League, error) {
	args := c.Called(ctx, leagueID)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}
	return l, args.Error(1)
}

func (c *C) RefreshLeagues(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) RunPeriodicLeagueRefresh(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}

func (c *C) GetStandings(ctx context.Context, leagueID, group string, overrides model.Overrides) ([]model.Team, error) {
	args := c.Called(ctx, leagueID, group, overrides)

	var res []model.Team
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Team)
	}
	return res, args.Error(1)
}

func (c *C) GetScenarioDiff(ctx context.Context, leagueID, group string, overrides model.Overrides) ([]model.TeamDiff, error) {
	args := c.Called(ctx, leagueID, group, overrides)

	var res []model.TeamDiff
	if args.Get(0) != nil {
		res = args.Get(0).([]model.TeamDiff)
	}
	return res, args.Error(1)
}

func (c *C) GetPlayoffPicture(ctx context.Context, leagueID string) (*model.PlayoffPicture, error) {
	args := c.Called(ctx, leagueID)

	var res *model.PlayoffPicture
	if args.Get(0) != nil {
		res = args.Get(0).(*model.PlayoffPicture)
	}
	return res, args.Error(1)
}

func (c *C) GetRatings(ctx context.Context, leagueID, group string) (map[string]float64, error) {
	args := c.Called(ctx, leagueID, group)

	var res map[string]float64
	if args.Get(0) != nil {
		res = args.Get(0).(map[string]float64)
	}
	return res, args.Error(1)
}

func (c *C) AutoFillScenario(ctx context.Context, leagueID, group string, seed int64) (model.Overrides, error) {
	args := c.Called(ctx, leagueID, group, seed)

	var res model.Overrides
	if args.Get(0) != nil {
		res = args.Get(0).(model.Overrides)
	}
	return res, args.Error(1)
}

func (c *C) GetScenario(ctx context.Context, leagueID, group string) (model.Overrides, error) {
	args := c.Called(ctx, leagueID, group)

	var res model.Overrides
	if args.Get(0) != nil {
		res = args.Get(0).(model.Overrides)
	}
	return res, args.Error(1)
}

func (c *C) ListSavedScenarios(ctx context.Context, leagueID string) ([]model.ScenarioInfo, error) {
	args := c.Called(ctx, leagueID)

	var res []model.ScenarioInfo
	if args.Get(0) != nil {
		res = args.Get(0).([]model.ScenarioInfo)
	}
	return res, args.Error(1)
}

func (c *C) SaveScenario(ctx context.Context, leagueID, group string, overrides model.Overrides) error {
	args := c.Called(ctx, leagueID, group, overrides)
	return args.Error(0)
}

func (c *C) DeleteScenario(ctx context.Context, leagueID, group string) error {
	args := c.Called(ctx, leagueID, group)
	return args.Error(0)
}

func (c *C) ExportScenario(ctx context.Context, leagueID, group string) (*model.ScenarioFile, error) {
	args := c.Called(ctx, leagueID, group)

	var res *model.ScenarioFile
	if args.Get(0) != nil {
		res = args.Get(0).(*model.ScenarioFile)
	}
	return res, args.Error(1)
}

func (c *C) ImportScenario(ctx context.Context, leagueID, group string, r io.Reader) (model.Overrides, error) {
	args := c.Called(ctx, leagueID, group, r)

	var res model.Overrides
	if args.Get(0) != nil {
		res = args.Get(0).(model.Overrides)
	}
	return res, args.Error(1)
}

func (c *C) SaveVerifiedResult(ctx context.Context, result *model.VerifiedResult) error {
	args := c.Called(ctx, result)
	return args.Error(0)
}
