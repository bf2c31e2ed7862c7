package dtos

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/akiftaseen/tool-set-app/pkg/constants"
)

const (
	UpdateTypeToggle      = "toggle"
	UpdateTypeAddTheme    = "add_theme"
	UpdateTypeAddSubtheme = "add_subtheme"
	UpdateTypeAddCategory = "add_category"
	UpdateTypeAddName     = "add_name"
	UpdateTypeDeleteName  = "delete_name"
)

// AdminUpdateDTO is the discriminated payload of POST /admin/update. Which
// fields are required depends on Type; per-type checks happen in the
// controller after the shared validation here.
type AdminUpdateDTO struct {
	Type       string `json:"type" validate:"required,oneof=toggle add_theme add_subtheme add_category add_name delete_name"`
	Name       string `json:"name"`
	ThemeID    uint   `json:"theme_id"`
	SubthemeID uint   `json:"subtheme_id"`
	NameID     uint   `json:"name_id"`
	CategoryID uint   `json:"category_id"`
	Checked    bool   `json:"checked"`
}

func (d *AdminUpdateDTO) Ok() (map[string]string, bool) {
	errorMessages := map[string]string{}
	errs := constants.Validate.Struct(d)
	if errs == nil {
		return errorMessages, true
	}
	for _, err := range errs.(validator.ValidationErrors) {
		errorMessages[err.Field()] = fmt.Sprintf("%s failed on %s", err.Field(), err.Tag())
	}
	return errorMessages, false
}
