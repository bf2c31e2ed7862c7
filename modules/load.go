package modules

import (
	"github.com/akiftaseen/tool-set-app/modules/catalog"
	"github.com/akiftaseen/tool-set-app/pkg/application"
)

var BuiltInModules = []application.Module{
	catalog.NewModule(),
}

func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range externalModules {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
