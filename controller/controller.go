package controller

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/utkugunce/volleysim/db"
	"github.com/utkugunce/volleysim/model"
	"github.com/utkugunce/volleysim/platforms/tvf"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	ListLeagues() []*model.LeagueInfo
	// Returns the league's roster and fixture with admin-verified results
	// already applied, so every computation below starts from the same view.
	GetLeague(ctx context.Context, leagueID string) (*model.League, error)
	RefreshLeagues(ctx context.Context) error
	RunPeriodicLeagueRefresh(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)

	GetStandings(ctx context.Context, leagueID, group string, overrides model.Overrides) ([]model.Team, error)
	GetScenarioDiff(ctx context.Context, leagueID, group string, overrides model.Overrides) ([]model.TeamDiff, error)
	GetPlayoffPicture(ctx context.Context, leagueID string) (*model.PlayoffPicture, error)
	GetRatings(ctx context.Context, leagueID, group string) (map[string]float64, error)
	// Fills every open match of the group with an Elo-biased prediction.
	// The seed makes the fill reproducible for a given league state.
	AutoFillScenario(ctx context.Context, leagueID, group string, seed int64) (model.Overrides, error)

	GetScenario(ctx context.Context, leagueID, group string) (model.Overrides, error)
	ListSavedScenarios(ctx context.Context, leagueID string) ([]model.ScenarioInfo, error)
	SaveScenario(ctx context.Context, leagueID, group string, overrides model.Overrides) error
	DeleteScenario(ctx context.Context, leagueID, group string) error
	ExportScenario(ctx context.Context, leagueID, group string) (*model.ScenarioFile, error)
	ImportScenario(ctx context.Context, leagueID, group string, r io.Reader) (model.Overrides, error)

	SaveVerifiedResult(ctx context.Context, result *model.VerifiedResult) error
}

type controller struct {
	clock clock.Clock
	tvf   tvf.Client
	db    db.DB

	mu      sync.RWMutex
	leagues map[string]*model.League // cache keyed by league ID
}

func New(clock clock.Clock, tvfClient tvf.Client, db db.DB) (C, error) {
	c := &controller{
		clock:   clock,
		tvf:     tvfClient,
		db:      db,
		leagues: make(map[string]*model.League),
	}
	return c, nil
}
