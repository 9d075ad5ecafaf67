package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/table-reservation/internal/domain"
	"github.com/m04kA/table-reservation/internal/infra/holidays"
	"github.com/m04kA/table-reservation/pkg/types"
)

type holidaySet map[string]bool

func (h holidaySet) IsPublicHoliday(date time.Time) (bool, error) {
	return h[date.Format("2006-01-02")], nil
}

func TestClosedDayClassifier_IsClosed(t *testing.T) {
	cfg := shopConfig(types.MustTimeOfDay(17, 0), types.MustTimeOfDay(22, 0), 30)
	classifier := NewClosedDayClassifier(cfg, holidaySet{"2026-11-03": true})

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{name: "sunday is the weekly off-day", date: time.Date(2026, 3, 1, 0, 0, 0, 0, jst), want: true},
		{name: "monday is open", date: time.Date(2026, 3, 2, 0, 0, 0, 0, jst), want: false},
		{name: "saturday is open", date: time.Date(2026, 3, 7, 0, 0, 0, 0, jst), want: false},
		{name: "public holiday on a tuesday", date: time.Date(2026, 11, 3, 0, 0, 0, 0, jst), want: true},
		{
			// 2026-03-01 15:30 UTC is already Monday in Tokyo
			name: "date is read in the shop zone",
			date: time.Date(2026, 3, 1, 15, 30, 0, 0, time.UTC),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			closed, err := classifier.IsClosed(tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, closed)
		})
	}
}

func TestClosedDayClassifier_NoHolidayTable(t *testing.T) {
	cfg := shopConfig(types.MustTimeOfDay(17, 0), types.MustTimeOfDay(22, 0), 30)
	cfg.WeeklyOffDays = []time.Weekday{time.Monday, time.Tuesday}
	classifier := NewClosedDayClassifier(cfg, nil)

	for date, want := range map[time.Time]bool{
		time.Date(2026, 3, 2, 0, 0, 0, 0, jst): true,
		time.Date(2026, 3, 3, 0, 0, 0, 0, jst): true,
		time.Date(2026, 3, 1, 0, 0, 0, 0, jst): false,
	} {
		closed, err := classifier.IsClosed(date)
		require.NoError(t, err)
		assert.Equal(t, want, closed)
	}
}

func TestClosedDayClassifier_OutsideHolidayTable(t *testing.T) {
	cfg := shopConfig(types.MustTimeOfDay(17, 0), types.MustTimeOfDay(22, 0), 30)
	classifier := NewClosedDayClassifier(cfg, holidays.Default())

	closed, err := classifier.IsClosed(time.Date(2027, 1, 1, 0, 0, 0, 0, jst))
	require.NoError(t, err)
	assert.True(t, closed)

	// 2028-05-03 (среда) и 2028-01-01 за пределами встроенной таблицы
	for _, date := range []time.Time{
		time.Date(2028, 5, 3, 0, 0, 0, 0, jst),
		time.Date(2028, 1, 1, 0, 0, 0, 0, jst),
	} {
		closed, err := classifier.IsClosed(date)
		assert.ErrorIs(t, err, domain.ErrDateNotCovered)
		assert.False(t, closed)
	}

	// еженедельный выходной известен без таблицы
	closed, err = classifier.IsClosed(time.Date(2028, 5, 7, 0, 0, 0, 0, jst))
	require.NoError(t, err)
	assert.True(t, closed)
}
