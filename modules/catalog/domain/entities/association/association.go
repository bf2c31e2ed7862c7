package association

import (
	"context"

	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/name"
)

// Repository manages the name-to-category links. The pair is the identity;
// there is no surrogate key.
type Repository interface {
	Count(ctx context.Context) (int64, error)
	// Add links a name to a category. Returns false when the link already
	// existed.
	Add(ctx context.Context, nameID, categoryID uint) (bool, error)
	// Remove unlinks a name from a category. Returns false when no such link
	// existed.
	Remove(ctx context.Context, nameID, categoryID uint) (bool, error)
	CountForCategory(ctx context.Context, categoryID uint) (int64, error)
	// PickRandom returns a uniformly random name linked to the category along
	// with the total number of linked names. A nil name with a zero count
	// means the category has no members.
	PickRandom(ctx context.Context, categoryID uint) (*name.Name, int64, error)
}
