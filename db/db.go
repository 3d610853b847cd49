package db

import (
	"context"
	"time"

	"github.com/utkugunce/volleysim/model"
)

type DB interface {
	GetScenario(ctx context.Context, leagueID, group string) (model.Overrides, error)
	SaveScenario(ctx context.Context, leagueID, group string, overrides model.Overrides, updated time.Time) error
	DeleteScenario(ctx context.Context, leagueID, group string) error
	// Lists saved scenario metadata for a league, most recently updated first.
	// The override maps themselves are returned by GetScenario().
	ListScenarios(ctx context.Context, leagueID string) ([]model.ScenarioInfo, error)

	SaveResult(ctx context.Context, result *model.VerifiedResult) error
	ListResults(ctx context.Context, leagueID string) ([]model.VerifiedResult, error)
}
