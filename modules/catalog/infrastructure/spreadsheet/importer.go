package spreadsheet

import (
	"context"

	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/association"
	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/category"
	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/name"
	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/subtheme"
	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/theme"
)

// Summary reports what one import run did to the catalog.
type Summary struct {
	ThemesCreated       int `json:"themes_created"`
	SubthemesCreated    int `json:"subthemes_created"`
	CategoriesCreated   int `json:"categories_created"`
	NamesCreated        int `json:"names_created"`
	AssociationsCreated int `json:"associations_created"`
	ColumnsSkipped      int `json:"columns_skipped"`
	RowsSkipped         int `json:"rows_skipped"`
}

// Importer replays a workbook matrix into the catalog through the
// get-or-create repositories. It never deletes; re-running the same matrix is
// a no-op. The caller is responsible for wrapping the run in a transaction.
type Importer struct {
	themes       theme.Repository
	subthemes    subtheme.Repository
	categories   category.Repository
	names        name.Repository
	associations association.Repository
}

func NewImporter(
	themes theme.Repository,
	subthemes subtheme.Repository,
	categories category.Repository,
	names name.Repository,
	associations association.Repository,
) *Importer {
	return &Importer{
		themes:       themes,
		subthemes:    subthemes,
		categories:   categories,
		names:        names,
		associations: associations,
	}
}

func (i *Importer) Import(ctx context.Context, m *Matrix) (*Summary, error) {
	summary := &Summary{}
	cache := newResolverCache()

	// Pass 1: resolve every column to a category. A zero entry marks a
	// column whose header is incomplete; its cells are ignored.
	targets := make([]uint, m.Columns())
	for col := 0; col < m.Columns(); col++ {
		categoryID, ok, err := i.resolveColumn(ctx, cache, summary, col, m)
		if err != nil {
			return nil, err
		}
		if !ok {
			summary.ColumnsSkipped++
			continue
		}
		targets[col] = categoryID
	}

	// Pass 2: one name per labeled row, plus an association for every
	// marked cell under a resolved column.
	for row := 0; row < m.Rows(); row++ {
		nameLabel, ok := NormalizeLabel(m.NameLabels[row])
		if !ok {
			summary.RowsSkipped++
			continue
		}

		nameID, err := i.resolveName(ctx, cache, summary, nameLabel)
		if err != nil {
			return nil, err
		}

		for col, categoryID := range targets {
			if categoryID == 0 {
				continue
			}
			if _, marked := NormalizeLabel(m.Cells[row][col]); !marked {
				continue
			}
			if err := i.link(ctx, cache, summary, nameID, categoryID); err != nil {
				return nil, err
			}
		}
	}

	return summary, nil
}

// resolveColumn walks the three header labels of a column down the hierarchy.
// ok is false when any level is absent.
func (i *Importer) resolveColumn(ctx context.Context, cache *resolverCache, summary *Summary, col int, m *Matrix) (uint, bool, error) {
	themeLabel, ok := NormalizeLabel(m.Themes[col])
	if !ok {
		return 0, false, nil
	}
	subthemeLabel, ok := NormalizeLabel(m.Subthemes[col])
	if !ok {
		return 0, false, nil
	}
	categoryLabel, ok := NormalizeLabel(m.Categories[col])
	if !ok {
		return 0, false, nil
	}

	themeID, cached := cache.themes[rootKey{themeLabel}]
	if !cached {
		entity, created, err := i.themes.GetOrCreate(ctx, themeLabel)
		if err != nil {
			return 0, false, err
		}
		if created {
			summary.ThemesCreated++
		}
		themeID = entity.ID
		cache.themes[rootKey{themeLabel}] = themeID
	}

	subthemeID, cached := cache.subthemes[childKey{themeID, subthemeLabel}]
	if !cached {
		entity, created, err := i.subthemes.GetOrCreate(ctx, themeID, subthemeLabel)
		if err != nil {
			return 0, false, err
		}
		if created {
			summary.SubthemesCreated++
		}
		subthemeID = entity.ID
		cache.subthemes[childKey{themeID, subthemeLabel}] = subthemeID
	}

	categoryID, cached := cache.categories[childKey{subthemeID, categoryLabel}]
	if !cached {
		entity, created, err := i.categories.GetOrCreate(ctx, subthemeID, categoryLabel)
		if err != nil {
			return 0, false, err
		}
		if created {
			summary.CategoriesCreated++
		}
		categoryID = entity.ID
		cache.categories[childKey{subthemeID, categoryLabel}] = categoryID
	}

	return categoryID, true, nil
}

func (i *Importer) resolveName(ctx context.Context, cache *resolverCache, summary *Summary, label string) (uint, error) {
	if id, ok := cache.names[rootKey{label}]; ok {
		return id, nil
	}
	entity, created, err := i.names.GetOrCreate(ctx, label)
	if err != nil {
		return 0, err
	}
	if created {
		summary.NamesCreated++
	}
	cache.names[rootKey{label}] = entity.ID
	return entity.ID, nil
}

func (i *Importer) link(ctx context.Context, cache *resolverCache, summary *Summary, nameID, categoryID uint) error {
	key := pairKey{nameID, categoryID}
	if _, ok := cache.pairs[key]; ok {
		return nil
	}
	created, err := i.associations.Add(ctx, nameID, categoryID)
	if err != nil {
		return err
	}
	if created {
		summary.AssociationsCreated++
	}
	cache.pairs[key] = struct{}{}
	return nil
}
