package spreadsheet

import "strings"

// NormalizeLabel trims surrounding whitespace from a raw cell value. The
// second return is false when nothing remains, which the importer treats as
// an absent cell.
func NormalizeLabel(raw string) (string, bool) {
	label := strings.TrimSpace(raw)
	return label, label != ""
}
