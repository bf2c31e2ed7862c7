package category

import "context"

// Category is the leaf level of the hierarchy; names repeat freely across
// subthemes, uniqueness is scoped to the owning subtheme.
type Category struct {
	ID         uint
	SubthemeID uint
	Name       string
}

type Repository interface {
	Count(ctx context.Context) (int64, error)
	GetAllBySubtheme(ctx context.Context, subthemeID uint) ([]*Category, error)
	GetByID(ctx context.Context, id uint) (*Category, error)
	GetOrCreate(ctx context.Context, subthemeID uint, name string) (*Category, bool, error)
}
