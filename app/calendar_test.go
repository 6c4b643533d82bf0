package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthWeeksJanuary2025(t *testing.T) {
	weeks := MonthWeeks(2025, time.January)
	require.Len(t, weeks, 5)

	// 2025-01-01 是周三：前三格空白
	assert.Equal(t, [7]int{0, 0, 0, 1, 2, 3, 4}, weeks[0])
	// 最后一周止于周五（31 日），周六空白
	assert.Equal(t, [7]int{26, 27, 28, 29, 30, 31, 0}, weeks[4])
}

func TestMonthWeeksNoDuplicateOrSkippedDays(t *testing.T) {
	for _, tc := range []struct {
		year  int
		month time.Month
		days  int
	}{
		{2025, time.January, 31},
		{2024, time.February, 29},
		{2026, time.February, 28},
		{2025, time.June, 30},
		{2025, time.December, 31},
	} {
		weeks := MonthWeeks(tc.year, tc.month)
		seen := make(map[int]bool)
		for _, week := range weeks {
			for _, day := range week {
				if day == 0 {
					continue
				}
				assert.False(t, seen[day], "%d-%d day %d duplicated", tc.year, tc.month, day)
				seen[day] = true
			}
		}
		assert.Len(t, seen, tc.days, "%d-%d", tc.year, tc.month)
		for day := 1; day <= tc.days; day++ {
			assert.True(t, seen[day], "%d-%d day %d missing", tc.year, tc.month, day)
		}
	}
}

func TestMonthWeeksExactFit(t *testing.T) {
	// 2026 年 2 月从周日开始且只有 28 天：恰好 4 周，无空白格
	weeks := MonthWeeks(2026, time.February)
	require.Len(t, weeks, 4)
	for _, week := range weeks {
		for _, day := range week {
			assert.NotZero(t, day)
		}
	}
	assert.Equal(t, 1, weeks[0][0])
	assert.Equal(t, 28, weeks[3][6])
}

func TestClassifyDayHolidayOverridesWeekend(t *testing.T) {
	for col := 0; col < 7; col++ {
		assert.Equal(t, DayColorHolidayRed, ClassifyDay(col, true))
	}
}

func TestClassifyDayWeekendColumns(t *testing.T) {
	assert.Equal(t, DayColorSundayRed, ClassifyDay(0, false))
	assert.Equal(t, DayColorSaturdayBlue, ClassifyDay(6, false))
	for col := 1; col <= 5; col++ {
		assert.Equal(t, DayColorNormal, ClassifyDay(col, false))
	}
}
