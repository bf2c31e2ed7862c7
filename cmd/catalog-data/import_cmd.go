package main

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/akiftaseen/tool-set-app/migrations"
	"github.com/akiftaseen/tool-set-app/modules/catalog/infrastructure/persistence"
	"github.com/akiftaseen/tool-set-app/modules/catalog/infrastructure/spreadsheet"
	"github.com/akiftaseen/tool-set-app/modules/catalog/services"
	"github.com/akiftaseen/tool-set-app/pkg/composables"
	"github.com/akiftaseen/tool-set-app/pkg/configuration"
	"github.com/akiftaseen/tool-set-app/pkg/eventbus"
)

type importCmdOptions struct {
	file  string
	sheet string
	force bool
}

func newImportCmd() *cobra.Command {
	var opts importCmdOptions

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import the catalog hierarchy from an xlsx workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), opts)
		},
	}

	conf := configuration.Use()
	cmd.Flags().StringVar(&opts.file, "file", conf.Import.WorkbookPath, "Workbook path")
	cmd.Flags().StringVar(&opts.sheet, "sheet", conf.Import.SheetName, "Sheet name (default: first sheet)")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Import even when the catalog is already populated")

	return cmd
}

func runImport(ctx context.Context, opts importCmdOptions) error {
	if strings.TrimSpace(opts.file) == "" {
		return withCode(exitUsage, errors.New("--file is required"))
	}

	conf := configuration.Use()
	logger := conf.Logger()

	pool, err := pgxpool.New(ctx, conf.Database.ConnectionString())
	if err != nil {
		return withCode(exitDB, err)
	}
	defer pool.Close()

	if err := migrations.Up(ctx, pool); err != nil {
		return withCode(exitDB, err)
	}

	themes := persistence.NewThemeRepository()
	importer := spreadsheet.NewImporter(
		themes,
		persistence.NewSubthemeRepository(),
		persistence.NewCategoryRepository(),
		persistence.NewNameRepository(),
		persistence.NewAssociationRepository(),
	)
	svc := services.NewImportService(importer, themes, eventbus.NewEventPublisher(logger))

	ctx = composables.WithPool(ctx, pool)
	summary, err := svc.ImportFromFile(ctx, opts.file, services.ImportOptions{
		Sheet: opts.sheet,
		Force: opts.force,
	})
	if err != nil {
		if errors.Is(err, services.ErrAlreadyPopulated) {
			return writeJSONLine(map[string]any{
				"status": "skipped",
				"reason": "catalog already contains themes; pass --force to import anyway",
			})
		}
		if errors.Is(err, spreadsheet.ErrBadShape) {
			return withCode(exitValidation, err)
		}
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return withCode(exitValidation, err)
		}
		return withCode(exitDB, err)
	}

	return writeJSONLine(map[string]any{
		"status":  "ok",
		"summary": summary,
	})
}
