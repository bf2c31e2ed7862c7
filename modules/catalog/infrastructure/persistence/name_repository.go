package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"

	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/name"
	"github.com/akiftaseen/tool-set-app/modules/catalog/infrastructure/persistence/models"
	"github.com/akiftaseen/tool-set-app/pkg/composables"
)

var ErrNameNotFound = errors.New("name not found")

type PgNameRepository struct{}

func NewNameRepository() name.Repository {
	return &PgNameRepository{}
}

func (r *PgNameRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM names`).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count names")
	}
	return count, nil
}

func (r *PgNameRepository) GetAll(ctx context.Context) ([]*name.Name, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `SELECT id, name FROM names ORDER BY name`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list names")
	}
	defer rows.Close()

	var results []*name.Name
	for rows.Next() {
		var row models.Name
		if err := rows.Scan(&row.ID, &row.Name); err != nil {
			return nil, errors.Wrap(err, "failed to scan name")
		}
		results = append(results, toDomainName(&row))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *PgNameRepository) GetByID(ctx context.Context, id uint) (*name.Name, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	var row models.Name
	if err := tx.QueryRow(ctx, `SELECT id, name FROM names WHERE id = $1`, id).
		Scan(&row.ID, &row.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNameNotFound
		}
		return nil, errors.Wrap(err, "failed to get name")
	}
	return toDomainName(&row), nil
}

func (r *PgNameRepository) GetOrCreate(ctx context.Context, value string) (*name.Name, bool, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, false, err
	}

	var row models.Name
	err = tx.QueryRow(ctx, `SELECT id, name FROM names WHERE name = $1`, value).
		Scan(&row.ID, &row.Name)
	if err == nil {
		return toDomainName(&row), false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, errors.Wrap(err, "failed to look up name")
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO names (name) VALUES ($1)
		ON CONFLICT (name) DO NOTHING
		RETURNING id, name
	`, value).Scan(&row.ID, &row.Name)
	if err == nil {
		return toDomainName(&row), true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, errors.Wrap(err, "failed to insert name")
	}

	if err := tx.QueryRow(ctx, `SELECT id, name FROM names WHERE name = $1`, value).
		Scan(&row.ID, &row.Name); err != nil {
		return nil, false, errors.Wrap(err, "failed to re-read name after conflict")
	}
	return toDomainName(&row), false, nil
}

func (r *PgNameRepository) Delete(ctx context.Context, id uint) (bool, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return false, err
	}

	// The schema cascades, but the links are removed explicitly so the
	// delete does not depend on constraint configuration.
	if _, err := tx.Exec(ctx, `DELETE FROM name_categories WHERE name_id = $1`, id); err != nil {
		return false, errors.Wrap(err, "failed to delete name associations")
	}
	tag, err := tx.Exec(ctx, `DELETE FROM names WHERE id = $1`, id)
	if err != nil {
		return false, errors.Wrap(err, "failed to delete name")
	}
	return tag.RowsAffected() > 0, nil
}
