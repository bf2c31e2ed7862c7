package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// seedHierarchy loads Hand Tools > Cutting > {Saws, Knives} with two names in
// Saws, skipping the admin surface.
func seedHierarchy(t *testing.T, fx *svcFixture) (themeID, subthemeID, sawsID, knivesID uint) {
	t.Helper()
	ctx := context.Background()

	th, _, err := fx.themes.GetOrCreate(ctx, "Hand Tools")
	require.NoError(t, err)
	st, _, err := fx.subthemes.GetOrCreate(ctx, th.ID, "Cutting")
	require.NoError(t, err)
	saws, _, err := fx.categories.GetOrCreate(ctx, st.ID, "Saws")
	require.NoError(t, err)
	knives, _, err := fx.categories.GetOrCreate(ctx, st.ID, "Knives")
	require.NoError(t, err)

	hacksaw, _, err := fx.names.GetOrCreate(ctx, "Hacksaw")
	require.NoError(t, err)
	coping, _, err := fx.names.GetOrCreate(ctx, "Coping Saw")
	require.NoError(t, err)
	_, err = fx.associations.Add(ctx, hacksaw.ID, saws.ID)
	require.NoError(t, err)
	_, err = fx.associations.Add(ctx, coping.ID, saws.ID)
	require.NoError(t, err)

	return th.ID, st.ID, saws.ID, knives.ID
}

func TestQueryService_ListThemes(t *testing.T) {
	fx := newSvcFixture()
	seedHierarchy(t, fx)
	ctx := context.Background()

	items, err := fx.queries.ListThemes(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Hand Tools", items[0].Name)
}

func TestQueryService_ListSubthemes_PathLabels(t *testing.T) {
	fx := newSvcFixture()
	themeID, _, _, _ := seedHierarchy(t, fx)

	items, err := fx.queries.ListSubthemes(context.Background(), themeID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Hand Tools - Cutting", items[0].Name)
}

func TestQueryService_ListSubthemes_UnknownTheme(t *testing.T) {
	fx := newSvcFixture()
	seedHierarchy(t, fx)

	items, err := fx.queries.ListSubthemes(context.Background(), 999)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestQueryService_ListCategories_PathLabels(t *testing.T) {
	fx := newSvcFixture()
	_, subthemeID, _, _ := seedHierarchy(t, fx)

	items, err := fx.queries.ListCategories(context.Background(), subthemeID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "Hand Tools - Cutting - Knives", items[0].Name)
	require.Equal(t, "Hand Tools - Cutting - Saws", items[1].Name)
}

func TestQueryService_ListCategories_UnknownSubtheme(t *testing.T) {
	fx := newSvcFixture()
	seedHierarchy(t, fx)

	items, err := fx.queries.ListCategories(context.Background(), 999)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestQueryService_PickRandomName(t *testing.T) {
	fx := newSvcFixture()
	_, _, sawsID, _ := seedHierarchy(t, fx)

	result, err := fx.queries.PickRandomName(context.Background(), sawsID)
	require.NoError(t, err)
	require.NotNil(t, result.Name)
	require.Contains(t, []string{"Hacksaw", "Coping Saw"}, *result.Name)
	require.EqualValues(t, 2, result.Count)
	require.Equal(t, "Hand Tools", result.Theme)
	require.Equal(t, "Cutting", result.Subtheme)
	require.Equal(t, "Saws", result.Category)
}

func TestQueryService_PickRandomName_EmptyCategory(t *testing.T) {
	fx := newSvcFixture()
	_, _, _, knivesID := seedHierarchy(t, fx)

	result, err := fx.queries.PickRandomName(context.Background(), knivesID)
	require.NoError(t, err)
	require.Nil(t, result.Name)
	require.Zero(t, result.Count)
	require.Empty(t, result.Theme)
}

func TestQueryService_PickRandomName_UnknownCategory(t *testing.T) {
	fx := newSvcFixture()
	seedHierarchy(t, fx)

	result, err := fx.queries.PickRandomName(context.Background(), 999)
	require.NoError(t, err)
	require.Nil(t, result.Name)
	require.Zero(t, result.Count)
}

func TestQueryService_Stats(t *testing.T) {
	fx := newSvcFixture()
	seedHierarchy(t, fx)

	stats, err := fx.queries.Stats(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 1, stats.Themes)
	require.EqualValues(t, 1, stats.Subthemes)
	require.EqualValues(t, 2, stats.Categories)
	require.EqualValues(t, 2, stats.Names)
	require.EqualValues(t, 2, stats.Associations)
}
