package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"

	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/category"
	"github.com/akiftaseen/tool-set-app/modules/catalog/infrastructure/persistence/models"
	"github.com/akiftaseen/tool-set-app/pkg/composables"
)

var ErrCategoryNotFound = errors.New("category not found")

type PgCategoryRepository struct{}

func NewCategoryRepository() category.Repository {
	return &PgCategoryRepository{}
}

func (r *PgCategoryRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count categories")
	}
	return count, nil
}

func (r *PgCategoryRepository) GetAllBySubtheme(ctx context.Context, subthemeID uint) ([]*category.Category, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
		SELECT id, subtheme_id, name FROM categories
		WHERE subtheme_id = $1
		ORDER BY name
	`, subthemeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}
	defer rows.Close()

	var results []*category.Category
	for rows.Next() {
		var row models.Category
		if err := rows.Scan(&row.ID, &row.SubthemeID, &row.Name); err != nil {
			return nil, errors.Wrap(err, "failed to scan category")
		}
		results = append(results, toDomainCategory(&row))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *PgCategoryRepository) GetByID(ctx context.Context, id uint) (*category.Category, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	var row models.Category
	if err := tx.QueryRow(ctx, `SELECT id, subtheme_id, name FROM categories WHERE id = $1`, id).
		Scan(&row.ID, &row.SubthemeID, &row.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, errors.Wrap(err, "failed to get category")
	}
	return toDomainCategory(&row), nil
}

func (r *PgCategoryRepository) GetOrCreate(ctx context.Context, subthemeID uint, name string) (*category.Category, bool, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, false, err
	}

	const selectQuery = `SELECT id, subtheme_id, name FROM categories WHERE subtheme_id = $1 AND name = $2`

	var row models.Category
	err = tx.QueryRow(ctx, selectQuery, subthemeID, name).
		Scan(&row.ID, &row.SubthemeID, &row.Name)
	if err == nil {
		return toDomainCategory(&row), false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, errors.Wrap(err, "failed to look up category")
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO categories (subtheme_id, name) VALUES ($1, $2)
		ON CONFLICT (subtheme_id, name) DO NOTHING
		RETURNING id, subtheme_id, name
	`, subthemeID, name).Scan(&row.ID, &row.SubthemeID, &row.Name)
	if err == nil {
		return toDomainCategory(&row), true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, errors.Wrap(err, "failed to insert category")
	}

	if err := tx.QueryRow(ctx, selectQuery, subthemeID, name).
		Scan(&row.ID, &row.SubthemeID, &row.Name); err != nil {
		return nil, false, errors.Wrap(err, "failed to re-read category after conflict")
	}
	return toDomainCategory(&row), false, nil
}
