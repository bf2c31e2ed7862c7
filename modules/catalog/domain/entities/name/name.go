package name

import "context"

// Name is a catalog entry. Names live in a flat global namespace and are
// linked to categories through the association table.
type Name struct {
	ID   uint
	Name string
}

type Repository interface {
	Count(ctx context.Context) (int64, error)
	GetAll(ctx context.Context) ([]*Name, error)
	GetByID(ctx context.Context, id uint) (*Name, error)
	GetOrCreate(ctx context.Context, name string) (*Name, bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
}
