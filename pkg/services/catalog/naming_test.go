package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"underscores", "data_drift.html", "Data Drift"},
		{"dashes", "model-performance.html", "Model Performance"},
		{"nested path", "model_performance/target_drift.html", "Target Drift"},
		{"no extension", "data_quality", "Data Quality"},
		{"single word", "predictions.html", "Predictions"},
		{"already capitalized", "Data_Drift.html", "Data Drift"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReportDisplayName(tt.input))
		})
	}
}

func TestPeriodDatesRange(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"valid period", "2024-01-01_2024-01-31", "2024-01-01 - 2024-01-31"},
		{"no separator", "2024-01-01", "2024-01-01"},
		{"invalid start date", "jan_2024-01-31", "jan_2024-01-31"},
		{"invalid end date", "2024-01-01_end", "2024-01-01_end"},
		{"unrelated name", "archive", "archive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PeriodDatesRange(tt.input))
		})
	}
}
