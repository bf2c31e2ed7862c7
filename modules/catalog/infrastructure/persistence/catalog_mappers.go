package persistence

import (
	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/category"
	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/name"
	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/subtheme"
	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/theme"
	"github.com/akiftaseen/tool-set-app/modules/catalog/infrastructure/persistence/models"
)

func toDomainTheme(row *models.Theme) *theme.Theme {
	return &theme.Theme{
		ID:   row.ID,
		Name: row.Name,
	}
}

func toDomainSubtheme(row *models.Subtheme) *subtheme.Subtheme {
	return &subtheme.Subtheme{
		ID:      row.ID,
		ThemeID: row.ThemeID,
		Name:    row.Name,
	}
}

func toDomainCategory(row *models.Category) *category.Category {
	return &category.Category{
		ID:         row.ID,
		SubthemeID: row.SubthemeID,
		Name:       row.Name,
	}
}

func toDomainName(row *models.Name) *name.Name {
	return &name.Name{
		ID:   row.ID,
		Name: row.Name,
	}
}
