package subtheme

import "context"

// Subtheme belongs to exactly one theme; its name is unique within that
// theme only.
type Subtheme struct {
	ID      uint
	ThemeID uint
	Name    string
}

type Repository interface {
	Count(ctx context.Context) (int64, error)
	GetAllByTheme(ctx context.Context, themeID uint) ([]*Subtheme, error)
	GetByID(ctx context.Context, id uint) (*Subtheme, error)
	GetOrCreate(ctx context.Context, themeID uint, name string) (*Subtheme, bool, error)
}
