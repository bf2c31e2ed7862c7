package services

import (
	"context"
	"sort"

	"github.com/jackc/pgx/v5"

	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/category"
	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/name"
	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/subtheme"
	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/theme"
	"github.com/akiftaseen/tool-set-app/modules/catalog/infrastructure/persistence"
	"github.com/akiftaseen/tool-set-app/pkg/composables"
)

// stubTx satisfies pgx.Tx without a live connection. The in-memory fakes
// never touch it; it only lets InTx join instead of opening a transaction.
type stubTx struct {
	pgx.Tx
}

func txContext() context.Context {
	return composables.WithTx(context.Background(), stubTx{})
}

type parentKey struct {
	Parent uint
	Label  string
}

type linkKey struct {
	NameID     uint
	CategoryID uint
}

type memThemes struct {
	seq   uint
	items map[string]*theme.Theme
}

func newMemThemes() *memThemes {
	return &memThemes{items: map[string]*theme.Theme{}}
}

func (m *memThemes) Count(context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

func (m *memThemes) GetAll(context.Context) ([]*theme.Theme, error) {
	var out []*theme.Theme
	for _, t := range m.items {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memThemes) GetByID(_ context.Context, id uint) (*theme.Theme, error) {
	for _, t := range m.items {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, persistence.ErrThemeNotFound
}

func (m *memThemes) GetOrCreate(_ context.Context, label string) (*theme.Theme, bool, error) {
	if t, ok := m.items[label]; ok {
		return t, false, nil
	}
	m.seq++
	t := &theme.Theme{ID: m.seq, Name: label}
	m.items[label] = t
	return t, true, nil
}

type memSubthemes struct {
	seq   uint
	items map[parentKey]*subtheme.Subtheme
}

func newMemSubthemes() *memSubthemes {
	return &memSubthemes{items: map[parentKey]*subtheme.Subtheme{}}
}

func (m *memSubthemes) Count(context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

func (m *memSubthemes) GetAllByTheme(_ context.Context, themeID uint) ([]*subtheme.Subtheme, error) {
	var out []*subtheme.Subtheme
	for _, st := range m.items {
		if st.ThemeID == themeID {
			out = append(out, st)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memSubthemes) GetByID(_ context.Context, id uint) (*subtheme.Subtheme, error) {
	for _, st := range m.items {
		if st.ID == id {
			return st, nil
		}
	}
	return nil, persistence.ErrSubthemeNotFound
}

func (m *memSubthemes) GetOrCreate(_ context.Context, themeID uint, label string) (*subtheme.Subtheme, bool, error) {
	key := parentKey{themeID, label}
	if st, ok := m.items[key]; ok {
		return st, false, nil
	}
	m.seq++
	st := &subtheme.Subtheme{ID: m.seq, ThemeID: themeID, Name: label}
	m.items[key] = st
	return st, true, nil
}

type memCategories struct {
	seq   uint
	items map[parentKey]*category.Category
}

func newMemCategories() *memCategories {
	return &memCategories{items: map[parentKey]*category.Category{}}
}

func (m *memCategories) Count(context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

func (m *memCategories) GetAllBySubtheme(_ context.Context, subthemeID uint) ([]*category.Category, error) {
	var out []*category.Category
	for _, c := range m.items {
		if c.SubthemeID == subthemeID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memCategories) GetByID(_ context.Context, id uint) (*category.Category, error) {
	for _, c := range m.items {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, persistence.ErrCategoryNotFound
}

func (m *memCategories) GetOrCreate(_ context.Context, subthemeID uint, label string) (*category.Category, bool, error) {
	key := parentKey{subthemeID, label}
	if c, ok := m.items[key]; ok {
		return c, false, nil
	}
	m.seq++
	c := &category.Category{ID: m.seq, SubthemeID: subthemeID, Name: label}
	m.items[key] = c
	return c, true, nil
}

type memNames struct {
	seq   uint
	items map[string]*name.Name
}

func newMemNames() *memNames {
	return &memNames{items: map[string]*name.Name{}}
}

func (m *memNames) Count(context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

func (m *memNames) GetAll(context.Context) ([]*name.Name, error) {
	var out []*name.Name
	for _, n := range m.items {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memNames) GetByID(_ context.Context, id uint) (*name.Name, error) {
	for _, n := range m.items {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, persistence.ErrNameNotFound
}

func (m *memNames) GetOrCreate(_ context.Context, label string) (*name.Name, bool, error) {
	if n, ok := m.items[label]; ok {
		return n, false, nil
	}
	m.seq++
	n := &name.Name{ID: m.seq, Name: label}
	m.items[label] = n
	return n, true, nil
}

func (m *memNames) Delete(_ context.Context, id uint) (bool, error) {
	for label, n := range m.items {
		if n.ID == id {
			delete(m.items, label)
			return true, nil
		}
	}
	return false, nil
}

type memAssociations struct {
	names *memNames
	pairs map[linkKey]struct{}
}

func newMemAssociations(names *memNames) *memAssociations {
	return &memAssociations{names: names, pairs: map[linkKey]struct{}{}}
}

func (m *memAssociations) Count(context.Context) (int64, error) {
	return int64(len(m.pairs)), nil
}

func (m *memAssociations) Exists(_ context.Context, nameID, categoryID uint) (bool, error) {
	_, ok := m.pairs[linkKey{nameID, categoryID}]
	return ok, nil
}

func (m *memAssociations) Add(_ context.Context, nameID, categoryID uint) (bool, error) {
	key := linkKey{nameID, categoryID}
	if _, ok := m.pairs[key]; ok {
		return false, nil
	}
	m.pairs[key] = struct{}{}
	return true, nil
}

func (m *memAssociations) Remove(_ context.Context, nameID, categoryID uint) (bool, error) {
	key := linkKey{nameID, categoryID}
	if _, ok := m.pairs[key]; !ok {
		return false, nil
	}
	delete(m.pairs, key)
	return true, nil
}

func (m *memAssociations) CountForCategory(_ context.Context, categoryID uint) (int64, error) {
	var count int64
	for key := range m.pairs {
		if key.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (m *memAssociations) PickRandom(ctx context.Context, categoryID uint) (*name.Name, int64, error) {
	count, err := m.CountForCategory(ctx, categoryID)
	if err != nil || count == 0 {
		return nil, 0, err
	}
	var ids []uint
	for key := range m.pairs {
		if key.CategoryID == categoryID {
			ids = append(ids, key.NameID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	picked, err := m.names.GetByID(ctx, ids[0])
	if err != nil {
		return nil, 0, err
	}
	return picked, count, nil
}
