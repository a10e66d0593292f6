package catalog

import (
	"path"
	"strings"
	"time"
	"unicode"
)

const periodDateLayout = "2006-01-02"

// ReportDisplayName derives a human-readable label from an artifact
// name: "model_performance.html" becomes "Model Performance".
func ReportDisplayName(name string) string {
	base := path.Base(name)
	stem := strings.TrimSuffix(base, path.Ext(base))

	words := strings.FieldsFunc(stem, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// PeriodDatesRange renders a period directory name
// ("2024-01-01_2024-01-31") as a dates range ("2024-01-01 - 2024-01-31").
// Names that do not follow the convention pass through unchanged, so a
// stray directory never breaks the period selector.
func PeriodDatesRange(period string) string {
	start, end, ok := strings.Cut(period, "_")
	if !ok {
		return period
	}
	if _, err := time.Parse(periodDateLayout, start); err != nil {
		return period
	}
	if _, err := time.Parse(periodDateLayout, end); err != nil {
		return period
	}
	return start + " - " + end
}
