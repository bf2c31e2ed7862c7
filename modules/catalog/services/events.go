package services

import (
	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/category"
	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/name"
	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/subtheme"
	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/theme"
	"github.com/akiftaseen/tool-set-app/modules/catalog/infrastructure/spreadsheet"
)

type ThemeCreatedEvent struct {
	Theme *theme.Theme
}

type SubthemeCreatedEvent struct {
	Subtheme *subtheme.Subtheme
}

type CategoryCreatedEvent struct {
	Category *category.Category
}

type NameCreatedEvent struct {
	Name *name.Name
}

type NameDeletedEvent struct {
	NameID uint
}

type AssociationToggledEvent struct {
	NameID     uint
	CategoryID uint
	Checked    bool
}

type ImportCompletedEvent struct {
	Summary *spreadsheet.Summary
}
