package controller

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/utkugunce/volleysim/model"
)

func (c *controller) GetScenario(ctx context.Context, leagueID, group string) (model.Overrides, error) {
	return c.loadScenario(ctx, leagueID, group)
}

func (c *controller) ListSavedScenarios(ctx context.Context, leagueID string) ([]model.ScenarioInfo, error) {
	infos, err := c.db.ListScenarios(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error listing scenarios for %s: %w", leagueID, err)
	}
	return infos, nil
}

func (c *controller) SaveScenario(ctx context.Context, leagueID, group string, overrides model.Overrides) error {
	if model.ParseLeague(leagueID) == nil {
		return fmt.Errorf("unknown league: %s", leagueID)
	}
	if len(overrides) == 0 {
		return errors.New("refusing to save an empty scenario")
	}
	if err := c.db.SaveScenario(ctx, leagueID, group, overrides, c.clock.Now()); err != nil {
		return fmt.Errorf("error saving scenario %s/%s: %w", leagueID, group, err)
	}
	return nil
}

func (c *controller) DeleteScenario(ctx context.Context, leagueID, group string) error {
	if err := c.db.DeleteScenario(ctx, leagueID, group); err != nil {
		return fmt.Errorf("error deleting scenario %s/%s: %w", leagueID, group, err)
	}
	return nil
}

// ExportScenario wraps the saved override map in the versioned file envelope,
// stamped with the current completion state of the group's fixture.
func (c *controller) ExportScenario(ctx context.Context, leagueID, group string) (*model.ScenarioFile, error) {
	overrides, err := c.loadScenario(ctx, leagueID, group)
	if err != nil {
		return nil, err
	}
	if len(overrides) == 0 {
		return nil, fmt.Errorf("no scenario saved for %s/%s", leagueID, group)
	}

	l, err := c.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error getting league %s: %w", leagueID, err)
	}

	fixture := l.GroupFixture(group)
	completed := 0
	for i := range fixture {
		if fixture[i].Played {
			completed++
		}
	}

	return &model.ScenarioFile{
		Version:   model.ScenarioFileVersion,
		League:    leagueID,
		Timestamp: c.clock.Now(),
		GroupID:   group,
		Overrides: overrides,
		Metadata: model.ScenarioMetadata{
			CompletedMatches: completed,
			TotalMatches:     len(fixture),
		},
	}, nil
}

// ImportScenario parses an exported scenario file, saves its override map
// under the given league and group, and returns the map. The file's own
// league/group fields are informational only; the import target wins.
func (c *controller) ImportScenario(ctx context.Context, leagueID, group string, r io.Reader) (model.Overrides, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading scenario file: %w", err)
	}

	f, err := model.ParseScenarioFile(data)
	if err != nil {
		return nil, err
	}

	if err := c.SaveScenario(ctx, leagueID, group, f.Overrides); err != nil {
		return nil, err
	}
	return f.Overrides, nil
}

// SaveVerifiedResult stores an admin-entered score and drops the league's
// cache so the next read picks the correction up.
func (c *controller) SaveVerifiedResult(ctx context.Context, result *model.VerifiedResult) error {
	if model.ParseLeague(result.LeagueID) == nil {
		return fmt.Errorf("unknown league: %s", result.LeagueID)
	}
	if _, ok := model.ResolveOutcome(result.Score); !ok {
		return fmt.Errorf("invalid volleyball score: %q", result.Score)
	}

	result.Verified = true
	result.Updated = c.clock.Now()
	if err := c.db.SaveResult(ctx, result); err != nil {
		return fmt.Errorf("error saving verified result: %w", err)
	}

	c.mu.Lock()
	delete(c.leagues, result.LeagueID)
	c.mu.Unlock()
	return nil
}
