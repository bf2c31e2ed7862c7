package theme

import "context"

// Theme is the root level of the classification hierarchy. Names are
// globally unique after normalization.
type Theme struct {
	ID   uint
	Name string
}

type Repository interface {
	Count(ctx context.Context) (int64, error)
	GetAll(ctx context.Context) ([]*Theme, error)
	GetByID(ctx context.Context, id uint) (*Theme, error)
	// GetOrCreate returns the theme with the given name, inserting it when
	// absent. The bool reports whether a new row was created.
	GetOrCreate(ctx context.Context, name string) (*Theme, bool, error)
}
