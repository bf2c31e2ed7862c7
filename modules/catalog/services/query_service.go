package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/association"
	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/category"
	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/name"
	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/subtheme"
	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/theme"
	"github.com/akiftaseen/tool-set-app/modules/catalog/infrastructure/persistence"
)

// LabeledItem is a list entry for the cascading pickers. For subthemes and
// categories the label carries the full path, e.g. "Hand Tools - Cutting".
type LabeledItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// RandomName is the random-pick payload. A nil Name with a zero Count means
// the category is empty or unknown.
type RandomName struct {
	Name     *string `json:"name"`
	Count    int64   `json:"count"`
	Theme    string  `json:"theme,omitempty"`
	Subtheme string  `json:"subtheme,omitempty"`
	Category string  `json:"category,omitempty"`
}

// Stats carries row totals for the dashboard summary cards.
type Stats struct {
	Themes       int64 `json:"themes"`
	Subthemes    int64 `json:"subthemes"`
	Categories   int64 `json:"categories"`
	Names        int64 `json:"names"`
	Associations int64 `json:"associations"`
}

type QueryService struct {
	themes       theme.Repository
	subthemes    subtheme.Repository
	categories   category.Repository
	names        name.Repository
	associations association.Repository
}

func NewQueryService(
	themes theme.Repository,
	subthemes subtheme.Repository,
	categories category.Repository,
	names name.Repository,
	associations association.Repository,
) *QueryService {
	return &QueryService{
		themes:       themes,
		subthemes:    subthemes,
		categories:   categories,
		names:        names,
		associations: associations,
	}
}

func (s *QueryService) ListThemes(ctx context.Context) ([]LabeledItem, error) {
	themes, err := s.themes.GetAll(ctx)
	if err != nil {
		return nil, mapPgError(err)
	}

	items := make([]LabeledItem, 0, len(themes))
	for _, t := range themes {
		items = append(items, LabeledItem{ID: t.ID, Name: t.Name})
	}
	return items, nil
}

// ListSubthemes returns the subthemes of a theme labeled "<Theme> - <Sub>".
// An unknown theme yields an empty list.
func (s *QueryService) ListSubthemes(ctx context.Context, themeID uint) ([]LabeledItem, error) {
	parent, err := s.themes.GetByID(ctx, themeID)
	if err != nil {
		if errors.Is(err, persistence.ErrThemeNotFound) {
			return []LabeledItem{}, nil
		}
		return nil, mapPgError(err)
	}

	subthemes, err := s.subthemes.GetAllByTheme(ctx, themeID)
	if err != nil {
		return nil, mapPgError(err)
	}

	items := make([]LabeledItem, 0, len(subthemes))
	for _, st := range subthemes {
		items = append(items, LabeledItem{
			ID:   st.ID,
			Name: fmt.Sprintf("%s - %s", parent.Name, st.Name),
		})
	}
	return items, nil
}

// ListCategories returns the categories of a subtheme labeled
// "<Theme> - <Sub> - <Cat>". An unknown subtheme yields an empty list.
func (s *QueryService) ListCategories(ctx context.Context, subthemeID uint) ([]LabeledItem, error) {
	parent, err := s.subthemes.GetByID(ctx, subthemeID)
	if err != nil {
		if errors.Is(err, persistence.ErrSubthemeNotFound) {
			return []LabeledItem{}, nil
		}
		return nil, mapPgError(err)
	}

	root, err := s.themes.GetByID(ctx, parent.ThemeID)
	if err != nil {
		return nil, mapPgError(err)
	}

	categories, err := s.categories.GetAllBySubtheme(ctx, subthemeID)
	if err != nil {
		return nil, mapPgError(err)
	}

	items := make([]LabeledItem, 0, len(categories))
	for _, c := range categories {
		items = append(items, LabeledItem{
			ID:   c.ID,
			Name: fmt.Sprintf("%s - %s - %s", root.Name, parent.Name, c.Name),
		})
	}
	return items, nil
}

// PickRandomName draws a uniformly random name from a category along with the
// member count and the full hierarchy path. An empty or unknown category
// yields the empty result rather than an error.
func (s *QueryService) PickRandomName(ctx context.Context, categoryID uint) (*RandomName, error) {
	cat, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, persistence.ErrCategoryNotFound) {
			return &RandomName{}, nil
		}
		return nil, mapPgError(err)
	}

	picked, count, err := s.associations.PickRandom(ctx, categoryID)
	if err != nil {
		return nil, mapPgError(err)
	}
	if picked == nil {
		return &RandomName{}, nil
	}

	parent, err := s.subthemes.GetByID(ctx, cat.SubthemeID)
	if err != nil {
		return nil, mapPgError(err)
	}
	root, err := s.themes.GetByID(ctx, parent.ThemeID)
	if err != nil {
		return nil, mapPgError(err)
	}

	return &RandomName{
		Name:     &picked.Name,
		Count:    count,
		Theme:    root.Name,
		Subtheme: parent.Name,
		Category: cat.Name,
	}, nil
}

func (s *QueryService) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	var err error

	if stats.Themes, err = s.themes.Count(ctx); err != nil {
		return nil, mapPgError(err)
	}
	if stats.Subthemes, err = s.subthemes.Count(ctx); err != nil {
		return nil, mapPgError(err)
	}
	if stats.Categories, err = s.categories.Count(ctx); err != nil {
		return nil, mapPgError(err)
	}
	if stats.Names, err = s.names.Count(ctx); err != nil {
		return nil, mapPgError(err)
	}
	if stats.Associations, err = s.associations.Count(ctx); err != nil {
		return nil, mapPgError(err)
	}
	return stats, nil
}
