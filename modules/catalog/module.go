package catalog

import (
	"github.com/akiftaseen/tool-set-app/modules/catalog/infrastructure/persistence"
	"github.com/akiftaseen/tool-set-app/modules/catalog/infrastructure/spreadsheet"
	"github.com/akiftaseen/tool-set-app/modules/catalog/presentation/controllers"
	"github.com/akiftaseen/tool-set-app/modules/catalog/services"
	"github.com/akiftaseen/tool-set-app/pkg/application"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct {
}

func (m *Module) Register(app application.Application) error {
	themes := persistence.NewThemeRepository()
	subthemes := persistence.NewSubthemeRepository()
	categories := persistence.NewCategoryRepository()
	names := persistence.NewNameRepository()
	associations := persistence.NewAssociationRepository()

	importer := spreadsheet.NewImporter(themes, subthemes, categories, names, associations)

	app.RegisterServices(
		services.NewQueryService(themes, subthemes, categories, names, associations),
		services.NewCatalogService(themes, subthemes, categories, names, associations, app.EventPublisher()),
		services.NewImportService(importer, themes, app.EventPublisher()),
	)
	app.RegisterControllers(
		controllers.NewCatalogAPIController(app),
		controllers.NewAdminAPIController(app),
	)
	return nil
}

func (m *Module) Name() string {
	return "catalog"
}
