package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"

	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/theme"
	"github.com/akiftaseen/tool-set-app/modules/catalog/infrastructure/persistence/models"
	"github.com/akiftaseen/tool-set-app/pkg/composables"
)

var ErrThemeNotFound = errors.New("theme not found")

type PgThemeRepository struct{}

func NewThemeRepository() theme.Repository {
	return &PgThemeRepository{}
}

func (r *PgThemeRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM themes`).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count themes")
	}
	return count, nil
}

func (r *PgThemeRepository) GetAll(ctx context.Context) ([]*theme.Theme, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `SELECT id, name FROM themes ORDER BY name`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list themes")
	}
	defer rows.Close()

	var results []*theme.Theme
	for rows.Next() {
		var row models.Theme
		if err := rows.Scan(&row.ID, &row.Name); err != nil {
			return nil, errors.Wrap(err, "failed to scan theme")
		}
		results = append(results, toDomainTheme(&row))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *PgThemeRepository) GetByID(ctx context.Context, id uint) (*theme.Theme, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	var row models.Theme
	if err := tx.QueryRow(ctx, `SELECT id, name FROM themes WHERE id = $1`, id).
		Scan(&row.ID, &row.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrThemeNotFound
		}
		return nil, errors.Wrap(err, "failed to get theme")
	}
	return toDomainTheme(&row), nil
}

func (r *PgThemeRepository) GetOrCreate(ctx context.Context, name string) (*theme.Theme, bool, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, false, err
	}

	var row models.Theme
	err = tx.QueryRow(ctx, `SELECT id, name FROM themes WHERE name = $1`, name).
		Scan(&row.ID, &row.Name)
	if err == nil {
		return toDomainTheme(&row), false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, errors.Wrap(err, "failed to look up theme")
	}

	// DO NOTHING keeps a concurrent insert from aborting the surrounding
	// transaction; no row back means someone else won the race.
	err = tx.QueryRow(ctx, `
		INSERT INTO themes (name) VALUES ($1)
		ON CONFLICT (name) DO NOTHING
		RETURNING id, name
	`, name).Scan(&row.ID, &row.Name)
	if err == nil {
		return toDomainTheme(&row), true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, errors.Wrap(err, "failed to insert theme")
	}

	if err := tx.QueryRow(ctx, `SELECT id, name FROM themes WHERE name = $1`, name).
		Scan(&row.ID, &row.Name); err != nil {
		return nil, false, errors.Wrap(err, "failed to re-read theme after conflict")
	}
	return toDomainTheme(&row), false, nil
}
