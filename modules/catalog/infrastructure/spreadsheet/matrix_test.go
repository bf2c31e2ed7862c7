package spreadsheet

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func saveWorkbook(t *testing.T, f *excelize.File) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestReadWorkbook_BasicLayout(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	require.NoError(t, f.SetCellValue(sheet, "B1", "Hand Tools"))
	require.NoError(t, f.SetCellValue(sheet, "C1", "Power Tools"))
	require.NoError(t, f.SetCellValue(sheet, "B2", "Cutting"))
	require.NoError(t, f.SetCellValue(sheet, "C2", "Drilling"))
	require.NoError(t, f.SetCellValue(sheet, "B3", "Saws"))
	require.NoError(t, f.SetCellValue(sheet, "C3", "Drills"))

	require.NoError(t, f.SetCellValue(sheet, "A4", "Hacksaw"))
	require.NoError(t, f.SetCellValue(sheet, "B4", "x"))
	require.NoError(t, f.SetCellValue(sheet, "A5", "Impact Driver"))
	require.NoError(t, f.SetCellValue(sheet, "C5", "x"))

	m, err := ReadWorkbook(saveWorkbook(t, f), "")
	require.NoError(t, err)

	require.Equal(t, []string{"Hand Tools", "Power Tools"}, m.Themes)
	require.Equal(t, []string{"Cutting", "Drilling"}, m.Subthemes)
	require.Equal(t, []string{"Saws", "Drills"}, m.Categories)
	require.Equal(t, []string{"Hacksaw", "Impact Driver"}, m.NameLabels)
	require.Equal(t, 2, m.Columns())
	require.Equal(t, 2, m.Rows())
	require.Equal(t, "x", m.Cells[0][0])
	require.Equal(t, "", m.Cells[0][1])
	require.Equal(t, "", m.Cells[1][0])
	require.Equal(t, "x", m.Cells[1][1])
}

func TestReadWorkbook_ExpandsMergedHeaders(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	// One theme spanning two columns, one subtheme spanning those columns.
	require.NoError(t, f.SetCellValue(sheet, "B1", "Hand Tools"))
	require.NoError(t, f.MergeCell(sheet, "B1", "C1"))
	require.NoError(t, f.SetCellValue(sheet, "B2", "Cutting"))
	require.NoError(t, f.MergeCell(sheet, "B2", "C2"))
	require.NoError(t, f.SetCellValue(sheet, "B3", "Saws"))
	require.NoError(t, f.SetCellValue(sheet, "C3", "Knives"))
	require.NoError(t, f.SetCellValue(sheet, "A4", "Hacksaw"))
	require.NoError(t, f.SetCellValue(sheet, "B4", "x"))

	m, err := ReadWorkbook(saveWorkbook(t, f), "")
	require.NoError(t, err)

	require.Equal(t, []string{"Hand Tools", "Hand Tools"}, m.Themes)
	require.Equal(t, []string{"Cutting", "Cutting"}, m.Subthemes)
	require.Equal(t, []string{"Saws", "Knives"}, m.Categories)
}

func TestReadWorkbook_SelectsSheetByName(t *testing.T) {
	f := excelize.NewFile()
	_, err := f.NewSheet("Catalog")
	require.NoError(t, err)

	require.NoError(t, f.SetCellValue("Catalog", "B1", "Hand Tools"))
	require.NoError(t, f.SetCellValue("Catalog", "B2", "Cutting"))
	require.NoError(t, f.SetCellValue("Catalog", "B3", "Saws"))
	require.NoError(t, f.SetCellValue("Catalog", "A4", "Hacksaw"))

	m, err := ReadWorkbook(saveWorkbook(t, f), "Catalog")
	require.NoError(t, err)
	require.Equal(t, []string{"Hand Tools"}, m.Themes)
	require.Equal(t, []string{"Hacksaw"}, m.NameLabels)
}

func TestReadWorkbook_RejectsTooFewRows(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "B1", "Hand Tools"))
	require.NoError(t, f.SetCellValue(sheet, "B2", "Cutting"))

	_, err := ReadWorkbook(saveWorkbook(t, f), "")
	require.ErrorIs(t, err, ErrBadShape)
}

func TestReadWorkbook_RejectsMissingDataColumns(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "just"))
	require.NoError(t, f.SetCellValue(sheet, "A2", "one"))
	require.NoError(t, f.SetCellValue(sheet, "A3", "column"))

	_, err := ReadWorkbook(saveWorkbook(t, f), "")
	require.ErrorIs(t, err, ErrBadShape)
}

func TestReadWorkbook_MissingFile(t *testing.T) {
	_, err := ReadWorkbook(filepath.Join(t.TempDir(), "absent.xlsx"), "")
	require.Error(t, err)
}
