package services

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/akiftaseen/tool-set-app/modules/catalog/domain/entities/theme"
	"github.com/akiftaseen/tool-set-app/modules/catalog/infrastructure/spreadsheet"
	"github.com/akiftaseen/tool-set-app/pkg/composables"
	"github.com/akiftaseen/tool-set-app/pkg/eventbus"
)

// ErrAlreadyPopulated is returned when the populated guard stops an import.
// Pass Force to bypass the guard; the importer itself is idempotent.
var ErrAlreadyPopulated = errors.New("catalog already contains themes")

type ImportOptions struct {
	// Sheet selects a sheet by name; empty means the first sheet.
	Sheet string
	// Force bypasses the populated guard.
	Force bool
}

type ImportService struct {
	importer  *spreadsheet.Importer
	themes    theme.Repository
	publisher eventbus.EventBus
}

func NewImportService(importer *spreadsheet.Importer, themes theme.Repository, publisher eventbus.EventBus) *ImportService {
	return &ImportService{
		importer:  importer,
		themes:    themes,
		publisher: publisher,
	}
}

// ImportFromFile reads the workbook at path and replays it into the catalog
// in a single transaction. The populated guard runs before the workbook is
// opened, so a populated store short-circuits without touching the file.
// Any failure after that rolls back the whole run.
func (s *ImportService) ImportFromFile(ctx context.Context, path string, opts ImportOptions) (*spreadsheet.Summary, error) {
	if !opts.Force {
		count, err := s.themes.Count(ctx)
		if err != nil {
			return nil, mapPgError(err)
		}
		if count > 0 {
			return nil, ErrAlreadyPopulated
		}
	}

	matrix, err := spreadsheet.ReadWorkbook(path, opts.Sheet)
	if err != nil {
		return nil, err
	}

	var summary *spreadsheet.Summary
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		summary, err = s.importer.Import(txCtx, matrix)
		return err
	})
	if err != nil {
		return nil, mapPgError(err)
	}

	logger := composables.UseLogger(ctx)
	logger.WithFields(map[string]interface{}{
		"themes_created":       summary.ThemesCreated,
		"subthemes_created":    summary.SubthemesCreated,
		"categories_created":   summary.CategoriesCreated,
		"names_created":        summary.NamesCreated,
		"associations_created": summary.AssociationsCreated,
		"columns_skipped":      summary.ColumnsSkipped,
		"rows_skipped":         summary.RowsSkipped,
	}).Info("catalog import completed")

	s.publisher.Publish(&ImportCompletedEvent{Summary: summary})
	return summary, nil
}
