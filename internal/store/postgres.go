package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/rosterdesk/shift-planner/backend/internal/config"
	"github.com/rosterdesk/shift-planner/backend/internal/store/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Postgres keeps every entity in a single entities table: one row per entity,
// properties as JSONB. Named entities get a per-kind unique name, id-addressed
// entities draw their id from the table's sequence.
type Postgres struct {
	cfg    *config.Config
	dbpool *sql.DB
}

func NewPostgres(cfg *config.Config, dbpool *sql.DB) *Postgres {
	return &Postgres{
		cfg:    cfg,
		dbpool: dbpool,
	}
}

func (p *Postgres) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, p.dbpool, "."); err != nil {
		return err
	}

	return nil
}

func (p *Postgres) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, time.Duration(p.cfg.Database.QueryTimeout)*time.Second)
}

func (p *Postgres) Get(ctx context.Context, kind, name string) (Properties, error) {
	query := `
		SELECT properties FROM entities WHERE kind = $1 AND name = $2
	`

	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	var raw []byte
	if err := p.dbpool.QueryRowContext(ctx, query, kind, name).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return unmarshalProperties(raw)
}

func (p *Postgres) Put(ctx context.Context, kind, name string, props Properties) error {
	query := `
		INSERT INTO entities (kind, name, properties)
		VALUES ($1, $2, $3)
		ON CONFLICT (kind, name) WHERE name IS NOT NULL DO UPDATE SET properties = EXCLUDED.properties
	`

	raw, err := json.Marshal(props)
	if err != nil {
		return err
	}

	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	if _, err := p.dbpool.ExecContext(ctx, query, kind, name, raw); err != nil {
		return err
	}

	return nil
}

func (p *Postgres) GetByID(ctx context.Context, kind string, id int64) (Properties, error) {
	query := `
		SELECT properties FROM entities WHERE kind = $1 AND id = $2
	`

	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	var raw []byte
	if err := p.dbpool.QueryRowContext(ctx, query, kind, id).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return unmarshalProperties(raw)
}

func (p *Postgres) PutWithAutoID(ctx context.Context, kind string, props Properties) (int64, error) {
	query := `
		INSERT INTO entities (kind, properties)
		VALUES ($1, $2)
		RETURNING id
	`

	raw, err := json.Marshal(props)
	if err != nil {
		return 0, err
	}

	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	var id int64
	if err := p.dbpool.QueryRowContext(ctx, query, kind, raw).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

func (p *Postgres) UpdateByID(ctx context.Context, kind string, id int64, props Properties) error {
	query := `
		UPDATE entities SET properties = $3 WHERE kind = $1 AND id = $2
	`

	raw, err := json.Marshal(props)
	if err != nil {
		return err
	}

	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	result, err := p.dbpool.ExecContext(ctx, query, kind, id, raw)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (p *Postgres) DeleteByID(ctx context.Context, kind string, id int64) error {
	query := `
		DELETE FROM entities WHERE kind = $1 AND id = $2
	`

	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	result, err := p.dbpool.ExecContext(ctx, query, kind, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (p *Postgres) ListAll(ctx context.Context, kind string) ([]Entity, error) {
	query := `
		SELECT id, COALESCE(name, ''), properties FROM entities WHERE kind = $1 ORDER BY id
	`

	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	rows, err := p.dbpool.QueryContext(ctx, query, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntities(rows)
}

func (p *Postgres) ListByProperty(ctx context.Context, kind, property string, value any) ([]Entity, error) {
	query := `
		SELECT id, COALESCE(name, ''), properties FROM entities
		WHERE kind = $1 AND properties -> $2 = $3::jsonb
		ORDER BY id
	`

	rawValue, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	rows, err := p.dbpool.QueryContext(ctx, query, kind, property, rawValue)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntities(rows)
}

func scanEntities(rows *sql.Rows) ([]Entity, error) {
	entities := make([]Entity, 0)
	for rows.Next() {
		var entity Entity
		var raw []byte
		if err := rows.Scan(&entity.ID, &entity.Name, &raw); err != nil {
			return nil, err
		}

		props, err := unmarshalProperties(raw)
		if err != nil {
			return nil, err
		}
		entity.Properties = props

		entities = append(entities, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entities, nil
}

func unmarshalProperties(raw []byte) (Properties, error) {
	props := Properties{}
	if err := json.Unmarshal(raw, &props); err != nil {
		return nil, fmt.Errorf("malformed entity properties: %w", err)
	}
	return props, nil
}
