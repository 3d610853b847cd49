package mockdb

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/utkugunce/volleysim/model"
)

type DB struct {
	mock.Mock
}

func (db *DB) GetScenario(ctx context.Context, leagueID, group string) (model.Overrides, error) {
	args := db.Called(ctx, leagueID, group)

	var o model.Overrides
	if args.Get(0) != nil {
		o = args.Get(0).(model.Overrides)
	}

	return o, args.Error(1)
}

func (db *DB) SaveScenario(ctx context.Context, leagueID, group string, overrides model.Overrides, updated time.Time) error {
	args := db.Called(ctx, leagueID, group, overrides, updated)
	return args.Error(0)
}

func (db *DB) DeleteScenario(ctx context.Context, leagueID, group string) error {
	args := db.Called(ctx, leagueID, group)
	return args.Error(0)
}

func (db *DB) ListScenarios(ctx context.Context, leagueID string) ([]model.ScenarioInfo, error) {
	args := db.Called(ctx, leagueID)

	var r []model.ScenarioInfo
	if args.Get(0) != nil {
		r = args.Get(0).([]model.ScenarioInfo)
	}
	return r, args.Error(1)
}

func (db *DB) SaveResult(ctx context.Context, result *model.VerifiedResult) error {
	args := db.Called(ctx, result)
	return args.Error(0)
}

func (db *DB) ListResults(ctx context.Context, leagueID string) ([]model.VerifiedResult, error) {
	args := db.Called(ctx, leagueID)

	var r []model.VerifiedResult
	if args.Get(0) != nil {
		r = args.Get(0).([]model.VerifiedResult)
	}
	return r, args.Error(1)
}
