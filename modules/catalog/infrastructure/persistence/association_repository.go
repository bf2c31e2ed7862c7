package persistence

import (
	"context"
	"math/rand"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"

	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/association"
	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/name"
	"github.com/akiftaseen/tool-set-app/modules/catalog/infrastructure/persistence/models"
	"github.com/akiftaseen/tool-set-app/pkg/composables"
)

type PgAssociationRepository struct{}

func NewAssociationRepository() association.Repository {
	return &PgAssociationRepository{}
}

func (r *PgAssociationRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM name_categories`).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count associations")
	}
	return count, nil
}

func (r *PgAssociationRepository) Add(ctx context.Context, nameID, categoryID uint) (bool, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return false, err
	}

	tag, err := tx.Exec(ctx, `
		INSERT INTO name_categories (name_id, category_id) VALUES ($1, $2)
		ON CONFLICT (name_id, category_id) DO NOTHING
	`, nameID, categoryID)
	if err != nil {
		return false, errors.Wrap(err, "failed to insert association")
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PgAssociationRepository) Remove(ctx context.Context, nameID, categoryID uint) (bool, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return false, err
	}

	tag, err := tx.Exec(ctx, `
		DELETE FROM name_categories WHERE name_id = $1 AND category_id = $2
	`, nameID, categoryID)
	if err != nil {
		return false, errors.Wrap(err, "failed to delete association")
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PgAssociationRepository) CountForCategory(ctx context.Context, categoryID uint) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM name_categories WHERE category_id = $1
	`, categoryID).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count category members")
	}
	return count, nil
}

func (r *PgAssociationRepository) PickRandom(ctx context.Context, categoryID uint) (*name.Name, int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, 0, err
	}

	count, err := r.CountForCategory(ctx, categoryID)
	if err != nil {
		return nil, 0, err
	}
	if count == 0 {
		return nil, 0, nil
	}

	// Count first, then offset into a stable ordering. Cheap at catalog
	// sizes and keeps the pick uniform.
	var row models.Name
	if err := tx.QueryRow(ctx, `
		SELECT n.id, n.name
		FROM names n
		JOIN name_categories nc ON nc.name_id = n.id
		WHERE nc.category_id = $1
		ORDER BY n.id
		OFFSET $2
		LIMIT 1
	`, categoryID, rand.Int63n(count)).Scan(&row.ID, &row.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, nil
		}
		return nil, 0, errors.Wrap(err, "failed to pick random name")
	}
	return toDomainName(&row), count, nil
}
