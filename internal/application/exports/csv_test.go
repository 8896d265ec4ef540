package exports

import (
	"bytes"
	"encoding/csv"
	"testing"

	"sitetrack-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectsCSV(t *testing.T) {
	var buf bytes.Buffer
	err := ProjectsCSV(&buf, []domain.Project{{
		JAN:      42,
		WorkName: "Bridge, span 2",
		Status:   "Work Stopped",
		Contract: domain.ContractInfo{ValueInternal: 10000000},
	}})
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, projectHeader, rows[0])
	assert.Equal(t, "42", rows[1][0])
	assert.Equal(t, "Bridge, span 2", rows[1][2])
	assert.Equal(t, "stopped", rows[1][4])
	assert.Equal(t, "10000000.00", rows[1][8])
}

func TestAlertsCSV(t *testing.T) {
	d := -4
	var buf bytes.Buffer
	err := AlertsCSV(&buf, []domain.Alert{
		{Severity: domain.SeverityCritical, Category: domain.CategoryDueDates, ProjectJAN: 7, DaysRemaining: &d},
		{Severity: domain.SeverityWarning, Category: domain.CategoryMissingDocs, ProjectJAN: 8},
	})
	require.NoError(t, err)
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "-4", rows[1][6])
	assert.Equal(t, "", rows[2][6])
}
