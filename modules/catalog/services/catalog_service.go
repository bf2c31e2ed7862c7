package services

import (
	"context"
	"net/http"

	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/association"
	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/category"
	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/name"
	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/subtheme"
	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/theme"
	"github.com/akiftaseen/tool-set-app/modules/catalog/infrastructure/spreadsheet"
	"github.com/akiftaseen/tool-set-app/pkg/composables"
	"github.com/akiftaseen/tool-set-app/pkg/eventbus"
)

const (
	StatusCreated = "created"
	StatusIgnored = "ignored"
	StatusDeleted = "deleted"
)

// MutationResult is the outcome of one admin mutation. Status distinguishes
// a write that changed the catalog from an idempotent repeat.
type MutationResult struct {
	Status string `json:"status"`
	ID     uint   `json:"id,omitempty"`
}

// CatalogService carries the admin mutations. Every mutation validates its
// input, runs in its own transaction and is safe to repeat.
type CatalogService struct {
	themes       theme.Repository
	subthemes    subtheme.Repository
	categories   category.Repository
	names        name.Repository
	associations association.Repository
	publisher    eventbus.EventBus
}

func NewCatalogService(
	themes theme.Repository,
	subthemes subtheme.Repository,
	categories category.Repository,
	names name.Repository,
	associations association.Repository,
	publisher eventbus.EventBus,
) *CatalogService {
	return &CatalogService{
		themes:       themes,
		subthemes:    subthemes,
		categories:   categories,
		names:        names,
		associations: associations,
		publisher:    publisher,
	}
}

func normalizeOrReject(raw, field string) (string, error) {
	label, ok := spreadsheet.NormalizeLabel(raw)
	if !ok {
		return "", newServiceError(http.StatusBadRequest, "CATALOG_INVALID_LABEL", field+" must not be blank", nil)
	}
	return label, nil
}

func requireID(id uint, field string) error {
	if id == 0 {
		return newServiceError(http.StatusBadRequest, "CATALOG_INVALID_REFERENCE", field+" is required", nil)
	}
	return nil
}

func (s *CatalogService) CreateTheme(ctx context.Context, rawName string) (*MutationResult, error) {
	label, err := normalizeOrReject(rawName, "name")
	if err != nil {
		return nil, err
	}

	var entity *theme.Theme
	var created bool
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		var err error
		entity, created, err = s.themes.GetOrCreate(txCtx, label)
		return err
	})
	if err != nil {
		return nil, mapPgError(err)
	}

	if created {
		s.publisher.Publish(&ThemeCreatedEvent{Theme: entity})
		return &MutationResult{Status: StatusCreated, ID: entity.ID}, nil
	}
	return &MutationResult{Status: StatusIgnored, ID: entity.ID}, nil
}

func (s *CatalogService) CreateSubtheme(ctx context.Context, themeID uint, rawName string) (*MutationResult, error) {
	if err := requireID(themeID, "theme_id"); err != nil {
		return nil, err
	}
	label, err := normalizeOrReject(rawName, "name")
	if err != nil {
		return nil, err
	}

	var entity *subtheme.Subtheme
	var created bool
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		var err error
		entity, created, err = s.subthemes.GetOrCreate(txCtx, themeID, label)
		return err
	})
	if err != nil {
		return nil, mapPgError(err)
	}

	if created {
		s.publisher.Publish(&SubthemeCreatedEvent{Subtheme: entity})
		return &MutationResult{Status: StatusCreated, ID: entity.ID}, nil
	}
	return &MutationResult{Status: StatusIgnored, ID: entity.ID}, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, subthemeID uint, rawName string) (*MutationResult, error) {
	if err := requireID(subthemeID, "subtheme_id"); err != nil {
		return nil, err
	}
	label, err := normalizeOrReject(rawName, "name")
	if err != nil {
		return nil, err
	}

	var entity *category.Category
	var created bool
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		var err error
		entity, created, err = s.categories.GetOrCreate(txCtx, subthemeID, label)
		return err
	})
	if err != nil {
		return nil, mapPgError(err)
	}

	if created {
		s.publisher.Publish(&CategoryCreatedEvent{Category: entity})
		return &MutationResult{Status: StatusCreated, ID: entity.ID}, nil
	}
	return &MutationResult{Status: StatusIgnored, ID: entity.ID}, nil
}

func (s *CatalogService) CreateName(ctx context.Context, rawName string) (*MutationResult, error) {
	label, err := normalizeOrReject(rawName, "name")
	if err != nil {
		return nil, err
	}

	var entity *name.Name
	var created bool
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		var err error
		entity, created, err = s.names.GetOrCreate(txCtx, label)
		return err
	})
	if err != nil {
		return nil, mapPgError(err)
	}

	if created {
		s.publisher.Publish(&NameCreatedEvent{Name: entity})
		return &MutationResult{Status: StatusCreated, ID: entity.ID}, nil
	}
	return &MutationResult{Status: StatusIgnored, ID: entity.ID}, nil
}

func (s *CatalogService) DeleteName(ctx context.Context, nameID uint) (*MutationResult, error) {
	if err := requireID(nameID, "name_id"); err != nil {
		return nil, err
	}

	var deleted bool
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		var err error
		deleted, err = s.names.Delete(txCtx, nameID)
		return err
	})
	if err != nil {
		return nil, mapPgError(err)
	}

	if deleted {
		s.publisher.Publish(&NameDeletedEvent{NameID: nameID})
		return &MutationResult{Status: StatusDeleted, ID: nameID}, nil
	}
	return &MutationResult{Status: StatusIgnored, ID: nameID}, nil
}

// ToggleAssociation links or unlinks a name and a category depending on
// checked. Repeating a toggle in the same direction is ignored.
func (s *CatalogService) ToggleAssociation(ctx context.Context, nameID, categoryID uint, checked bool) (*MutationResult, error) {
	if err := requireID(nameID, "name_id"); err != nil {
		return nil, err
	}
	if err := requireID(categoryID, "category_id"); err != nil {
		return nil, err
	}

	var changed bool
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		var err error
		if checked {
			changed, err = s.associations.Add(txCtx, nameID, categoryID)
		} else {
			changed, err = s.associations.Remove(txCtx, nameID, categoryID)
		}
		return err
	})
	if err != nil {
		return nil, mapPgError(err)
	}

	if !changed {
		return &MutationResult{Status: StatusIgnored}, nil
	}
	s.publisher.Publish(&AssociationToggledEvent{NameID: nameID, CategoryID: categoryID, Checked: checked})
	if checked {
		return &MutationResult{Status: StatusCreated}, nil
	}
	return &MutationResult{Status: StatusDeleted}, nil
}
