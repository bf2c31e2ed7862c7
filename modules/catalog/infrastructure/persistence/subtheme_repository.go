package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"

	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/subtheme"
	"github.com/akiftaseen/tool-set-app/modules/catalog/infrastructure/persistence/models"
	"github.com/akiftaseen/tool-set-app/pkg/composables"
)

var ErrSubthemeNotFound = errors.New("subtheme not found")

type PgSubthemeRepository struct{}

func NewSubthemeRepository() subtheme.Repository {
	return &PgSubthemeRepository{}
}

func (r *PgSubthemeRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM subthemes`).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count subthemes")
	}
	return count, nil
}

func (r *PgSubthemeRepository) GetAllByTheme(ctx context.Context, themeID uint) ([]*subtheme.Subtheme, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
		SELECT id, theme_id, name FROM subthemes
		WHERE theme_id = $1
		ORDER BY name
	`, themeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subthemes")
	}
	defer rows.Close()

	var results []*subtheme.Subtheme
	for rows.Next() {
		var row models.Subtheme
		if err := rows.Scan(&row.ID, &row.ThemeID, &row.Name); err != nil {
			return nil, errors.Wrap(err, "failed to scan subtheme")
		}
		results = append(results, toDomainSubtheme(&row))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *PgSubthemeRepository) GetByID(ctx context.Context, id uint) (*subtheme.Subtheme, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	var row models.Subtheme
	if err := tx.QueryRow(ctx, `SELECT id, theme_id, name FROM subthemes WHERE id = $1`, id).
		Scan(&row.ID, &row.ThemeID, &row.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubthemeNotFound
		}
		return nil, errors.Wrap(err, "failed to get subtheme")
	}
	return toDomainSubtheme(&row), nil
}

func (r *PgSubthemeRepository) GetOrCreate(ctx context.Context, themeID uint, name string) (*subtheme.Subtheme, bool, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, false, err
	}

	const selectQuery = `SELECT id, theme_id, name FROM subthemes WHERE theme_id = $1 AND name = $2`

	var row models.Subtheme
	err = tx.QueryRow(ctx, selectQuery, themeID, name).
		Scan(&row.ID, &row.ThemeID, &row.Name)
	if err == nil {
		return toDomainSubtheme(&row), false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, errors.Wrap(err, "failed to look up subtheme")
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO subthemes (theme_id, name) VALUES ($1, $2)
		ON CONFLICT (theme_id, name) DO NOTHING
		RETURNING id, theme_id, name
	`, themeID, name).Scan(&row.ID, &row.ThemeID, &row.Name)
	if err == nil {
		return toDomainSubtheme(&row), true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, errors.Wrap(err, "failed to insert subtheme")
	}

	if err := tx.QueryRow(ctx, selectQuery, themeID, name).
		Scan(&row.ID, &row.ThemeID, &row.Name); err != nil {
		return nil, false, errors.Wrap(err, "failed to re-read subtheme after conflict")
	}
	return toDomainSubtheme(&row), false, nil
}
