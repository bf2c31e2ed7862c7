package services

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/akiftaseen/tool-set-app/pkg/eventbus"
)

type svcFixture struct {
	themes       *memThemes
	subthemes    *memSubthemes
	categories   *memCategories
	names        *memNames
	associations *memAssociations
	bus          eventbus.EventBus
	catalog      *CatalogService
	queries      *QueryService
}

func newSvcFixture() *svcFixture {
	themes := newMemThemes()
	subthemes := newMemSubthemes()
	categories := newMemCategories()
	names := newMemNames()
	associations := newMemAssociations(names)
	bus := eventbus.NewEventPublisher(logrus.New())
	return &svcFixture{
		themes:       themes,
		subthemes:    subthemes,
		categories:   categories,
		names:        names,
		associations: associations,
		bus:          bus,
		catalog:      NewCatalogService(themes, subthemes, categories, names, associations, bus),
		queries:      NewQueryService(themes, subthemes, categories, names, associations),
	}
}

func TestCatalogService_CreateTheme(t *testing.T) {
	fx := newSvcFixture()
	ctx := txContext()

	var published []*ThemeCreatedEvent
	fx.bus.Subscribe(func(event *ThemeCreatedEvent) {
		published = append(published, event)
	})

	result, err := fx.catalog.CreateTheme(ctx, "  Hand Tools  ")
	require.NoError(t, err)
	require.Equal(t, StatusCreated, result.Status)
	require.NotZero(t, result.ID)
	require.Len(t, published, 1)
	require.Equal(t, "Hand Tools", published[0].Theme.Name)

	// Same label again is ignored, no second event.
	repeat, err := fx.catalog.CreateTheme(ctx, "Hand Tools")
	require.NoError(t, err)
	require.Equal(t, StatusIgnored, repeat.Status)
	require.Equal(t, result.ID, repeat.ID)
	require.Len(t, published, 1)
}

func TestCatalogService_CreateTheme_BlankName(t *testing.T) {
	fx := newSvcFixture()

	_, err := fx.catalog.CreateTheme(txContext(), "   ")
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, 400, svcErr.Status)
	require.Equal(t, "CATALOG_INVALID_LABEL", svcErr.Code)
}

func TestCatalogService_CreateSubtheme_RequiresThemeID(t *testing.T) {
	fx := newSvcFixture()

	_, err := fx.catalog.CreateSubtheme(txContext(), 0, "Cutting")
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, 400, svcErr.Status)
	require.Equal(t, "CATALOG_INVALID_REFERENCE", svcErr.Code)
}

func TestCatalogService_CreateHierarchy(t *testing.T) {
	fx := newSvcFixture()
	ctx := txContext()

	th, err := fx.catalog.CreateTheme(ctx, "Hand Tools")
	require.NoError(t, err)
	st, err := fx.catalog.CreateSubtheme(ctx, th.ID, "Cutting")
	require.NoError(t, err)
	cat, err := fx.catalog.CreateCategory(ctx, st.ID, "Saws")
	require.NoError(t, err)
	require.Equal(t, StatusCreated, cat.Status)

	items, err := fx.queries.ListCategories(ctx, st.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Hand Tools - Cutting - Saws", items[0].Name)
}

func TestCatalogService_DeleteName(t *testing.T) {
	fx := newSvcFixture()
	ctx := txContext()

	created, err := fx.catalog.CreateName(ctx, "Hacksaw")
	require.NoError(t, err)

	result, err := fx.catalog.DeleteName(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, StatusDeleted, result.Status)

	// Deleting again is ignored.
	repeat, err := fx.catalog.DeleteName(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, StatusIgnored, repeat.Status)
}

func TestCatalogService_ToggleAssociation(t *testing.T) {
	fx := newSvcFixture()
	ctx := txContext()

	on, err := fx.catalog.ToggleAssociation(ctx, 1, 1, true)
	require.NoError(t, err)
	require.Equal(t, StatusCreated, on.Status)

	again, err := fx.catalog.ToggleAssociation(ctx, 1, 1, true)
	require.NoError(t, err)
	require.Equal(t, StatusIgnored, again.Status)

	off, err := fx.catalog.ToggleAssociation(ctx, 1, 1, false)
	require.NoError(t, err)
	require.Equal(t, StatusDeleted, off.Status)

	offAgain, err := fx.catalog.ToggleAssociation(ctx, 1, 1, false)
	require.NoError(t, err)
	require.Equal(t, StatusIgnored, offAgain.Status)
}

func TestCatalogService_ToggleOffLeavesOtherLinksIntact(t *testing.T) {
	fx := newSvcFixture()
	ctx := txContext()

	// One name in two categories, another name in one of them.
	_, err := fx.catalog.ToggleAssociation(ctx, 1, 1, true)
	require.NoError(t, err)
	_, err = fx.catalog.ToggleAssociation(ctx, 1, 2, true)
	require.NoError(t, err)
	_, err = fx.catalog.ToggleAssociation(ctx, 2, 1, true)
	require.NoError(t, err)

	result, err := fx.catalog.ToggleAssociation(ctx, 1, 1, false)
	require.NoError(t, err)
	require.Equal(t, StatusDeleted, result.Status)

	remaining, err := fx.associations.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, remaining)

	stillLinked, err := fx.associations.Exists(ctx, 1, 2)
	require.NoError(t, err)
	require.True(t, stillLinked)
	stillLinked, err = fx.associations.Exists(ctx, 2, 1)
	require.NoError(t, err)
	require.True(t, stillLinked)
}
