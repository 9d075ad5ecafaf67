package holidays

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/table-reservation/internal/domain"
)

func TestDefault_Japan(t *testing.T) {
	table := Default()

	assert.Equal(t, "JP", table.Locale)
	assert.NotEmpty(t, table.Version)

	jst := time.FixedZone("JST", 9*60*60)
	for date, want := range map[time.Time]bool{
		time.Date(2026, time.November, 3, 0, 0, 0, 0, jst): true,
		time.Date(2026, time.May, 6, 0, 0, 0, 0, jst):      true,
		time.Date(2026, time.November, 4, 0, 0, 0, 0, jst): false,
	} {
		got, err := table.IsPublicHoliday(date)
		require.NoError(t, err)
		assert.Equal(t, want, got, date.Format("2006-01-02"))
	}

	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), table.ValidFrom())
	assert.Equal(t, time.Date(2027, time.December, 31, 0, 0, 0, 0, time.UTC), table.ValidUntil())

	name, ok := table.Name(time.Date(2027, time.January, 1, 0, 0, 0, 0, jst))
	require.True(t, ok)
	assert.Equal(t, "元日", name)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holidays.toml")
	content := `
version = "test-1"
locale = "XX"

[[holiday]]
date = "2026-12-24"
name = "Shop anniversary"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1, table.Len())
	ok, err := table.IsPublicHoliday(time.Date(2026, time.December, 24, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, ok)

	// без valid_from/valid_until диапазон - полный год праздника
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), table.ValidFrom())
	assert.Equal(t, time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC), table.ValidUntil())
	_, err = table.IsPublicHoliday(time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, domain.ErrDateNotCovered)
}

func TestIsPublicHoliday_OutsideRange(t *testing.T) {
	table := Default()
	jst := time.FixedZone("JST", 9*60*60)

	// последний день таблицы еще покрыт
	ok, err := table.IsPublicHoliday(time.Date(2027, time.December, 31, 0, 0, 0, 0, jst))
	require.NoError(t, err)
	assert.False(t, ok)

	for _, date := range []time.Time{
		time.Date(2028, time.January, 1, 0, 0, 0, 0, jst),
		time.Date(2028, time.May, 3, 0, 0, 0, 0, jst),
		time.Date(2024, time.December, 31, 0, 0, 0, 0, jst),
	} {
		ok, err := table.IsPublicHoliday(date)
		assert.ErrorIs(t, err, domain.ErrDateNotCovered, date.Format("2006-01-02"))
		assert.False(t, ok)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not toml", content: "version = "},
		{name: "missing version", content: "locale = \"JP\""},
		{name: "bad date", content: "version = \"1\"\n[[holiday]]\ndate = \"26-1-1\"\nname = \"x\""},
		{name: "no holidays and no range", content: "version = \"1\""},
		{name: "inverted range", content: "version = \"1\"\nvalid_from = \"2027-01-01\"\nvalid_until = \"2026-12-31\""},
		{name: "holiday outside range", content: "version = \"1\"\nvalid_from = \"2026-01-01\"\nvalid_until = \"2026-12-31\"\n[[holiday]]\ndate = \"2027-01-01\"\nname = \"x\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			assert.ErrorIs(t, err, ErrInvalidTable)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrInvalidTable)
}
