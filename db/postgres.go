package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/utkugunce/volleysim/model"
)

var (
	ErrScenarioNotFound error = errors.New("scenario not found")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

// scenarioKey is the storage key for a saved override map. Earlier versions
// joined league and group with an underscore, which is ambiguous for group
// names containing one; rows found under the old key are rewritten to the
// new one on read.
func scenarioKey(leagueID, group string) string {
	return leagueID + "/" + group
}

func legacyScenarioKey(leagueID, group string) string {
	return leagueID + "_" + group
}

func (db *postgresDB) GetScenario(ctx context.Context, leagueID, group string) (model.Overrides, error) {
	overrides, err := db.getScenarioByKey(ctx, scenarioKey(leagueID, group))
	if err == nil {
		return overrides, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("error reading scenario %s/%s: %w", leagueID, group, err)
	}

	overrides, err = db.getScenarioByKey(ctx, legacyScenarioKey(leagueID, group))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrScenarioNotFound
		}
		return nil, fmt.Errorf("error reading scenario %s/%s: %w", leagueID, group, err)
	}

	if err := db.migrateScenarioKey(ctx, leagueID, group, overrides); err != nil {
		// The data is still usable under the old key.
		log.Printf("error migrating scenario key for %s/%s: %v", leagueID, group, err)
	}
	return overrides, nil
}

func (db *postgresDB) getScenarioByKey(ctx context.Context, key string) (model.Overrides, error) {
	const query = `SELECT overrides FROM scenarios WHERE key=@key`

	var overrides model.Overrides
	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"key": key})
	if err := row.Scan(&overrides); err != nil {
		return nil, err
	}
	return overrides, nil
}

func (db *postgresDB) migrateScenarioKey(ctx context.Context, leagueID, group string, overrides model.Overrides) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := saveScenarioTx(ctx, tx, leagueID, group, overrides, db.clock.Now()); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM scenarios WHERE key=@key`,
		pgx.NamedArgs{"key": legacyScenarioKey(leagueID, group)}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (db *postgresDB) SaveScenario(ctx context.Context, leagueID, group string, overrides model.Overrides, updated time.Time) error {
	if err := saveScenarioTx(ctx, db.pool, leagueID, group, overrides, updated); err != nil {
		return fmt.Errorf("error saving scenario %s/%s: %w", leagueID, group, err)
	}
	return nil
}

// execer covers both the pool and a transaction.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func saveScenarioTx(ctx context.Context, e execer, leagueID, group string, overrides model.Overrides, updated time.Time) error {
	const query = `INSERT INTO scenarios (key, league, group_id, overrides, updated)
		VALUES (@key, @league, @groupID, @overrides, @updated)
		ON CONFLICT (key) DO UPDATE SET overrides=EXCLUDED.overrides, updated=EXCLUDED.updated`

	args := pgx.NamedArgs{
		"key":       scenarioKey(leagueID, group),
		"league":    leagueID,
		"groupID":   group,
		"overrides": overrides,
		"updated": pgtype.Timestamptz{
			Time:             updated.UTC(),
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	_, err := e.Exec(ctx, query, args)
	return err
}

func (db *postgresDB) DeleteScenario(ctx context.Context, leagueID, group string) error {
	const query = `DELETE FROM scenarios WHERE key=@key OR key=@legacyKey`

	args := pgx.NamedArgs{
		"key":       scenarioKey(leagueID, group),
		"legacyKey": legacyScenarioKey(leagueID, group),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error deleting scenario %s/%s: %w", leagueID, group, err)
	}
	return nil
}

func (db *postgresDB) ListScenarios(ctx context.Context, leagueID string) ([]model.ScenarioInfo, error) {
	const query = `SELECT league, group_id, updated FROM scenarios
		WHERE league=@league ORDER BY updated DESC`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"league": leagueID})
	if err != nil {
		return nil, fmt.Errorf("error listing scenarios for %s: %w", leagueID, err)
	}

	results := make([]model.ScenarioInfo, 0, 8)
	for rows.Next() {
		var info model.ScenarioInfo
		var updated pgtype.Timestamptz
		if err := rows.Scan(&info.LeagueID, &info.GroupID, &updated); err != nil {
			return nil, fmt.Errorf("error scanning scenario info: %w", err)
		}
		info.Updated = updated.Time
		results = append(results, info)
	}

	return results, nil
}

func (db *postgresDB) SaveResult(ctx context.Context, result *model.VerifiedResult) error {
	const query = `INSERT INTO verified_results (league, group_id, home_team, away_team, score, verified, updated)
		VALUES (@league, @groupID, @homeTeam, @awayTeam, @score, @verified, @updated)
		ON CONFLICT (league, group_id, home_team, away_team)
			DO UPDATE SET score=EXCLUDED.score, verified=EXCLUDED.verified, updated=EXCLUDED.updated`

	updated := result.Updated
	if updated.IsZero() {
		updated = db.clock.Now()
	}

	args := pgx.NamedArgs{
		"league":   result.LeagueID,
		"groupID":  result.Group,
		"homeTeam": result.HomeTeam,
		"awayTeam": result.AwayTeam,
		"score":    result.Score,
		"verified": result.Verified,
		"updated": pgtype.Timestamptz{
			Time:             updated.UTC(),
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving verified result: %w", err)
	}
	return nil
}

func (db *postgresDB) ListResults(ctx context.Context, leagueID string) ([]model.VerifiedResult, error) {
	const query = `SELECT league, group_id, home_team, away_team, score, verified, updated
		FROM verified_results WHERE league=@league ORDER BY updated DESC`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"league": leagueID})
	if err != nil {
		return nil, fmt.Errorf("error listing verified results for %s: %w", leagueID, err)
	}

	results := make([]model.VerifiedResult, 0, 8)
	for rows.Next() {
		var r model.VerifiedResult
		var updated pgtype.Timestamptz
		if err := rows.Scan(&r.LeagueID, &r.Group, &r.HomeTeam, &r.AwayTeam, &r.Score, &r.Verified, &updated); err != nil {
			return nil, fmt.Errorf("error scanning verified result: %w", err)
		}
		r.Updated = updated.Time
		results = append(results, r)
	}

	return results, nil
}
