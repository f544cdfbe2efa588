package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthYearOf(t *testing.T) {
	m := domain.MonthYearOf(time.Date(2025, time.November, 30, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, "2025-11", m.String())
	assert.Equal(t, "NOVEMBER-2025", m.DisplayLabel())
}

func TestParseMonthYear(t *testing.T) {
	m, err := domain.ParseMonthYear("2024-02")
	require.NoError(t, err)
	assert.Equal(t, "2024-02", m.String())
	assert.Equal(t, "FEBRUARY-2024", m.DisplayLabel())

	for _, bad := range []string{"", "2024-13", "24-02", "2024/02", "2024-02-01"} {
		_, err := domain.ParseMonthYear(bad)
		assert.Error(t, err, bad)
	}
}

func TestMonthYear_JSONAndSQL(t *testing.T) {
	m := domain.NewMonthYear(2025, time.January)

	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `"2025-01"`, string(b))

	var decoded domain.MonthYear
	require.NoError(t, json.Unmarshal([]byte(`"2025-01"`), &decoded))
	assert.Equal(t, m, decoded)

	v, err := m.Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-01", v)

	var scanned domain.MonthYear
	require.NoError(t, scanned.Scan([]byte("2025-01")))
	assert.Equal(t, m, scanned)
	assert.Error(t, scanned.Scan(42))
}
