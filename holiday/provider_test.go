package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHolidaysFixedDates2025(t *testing.T) {
	h := NewProvider(2025).GetHolidays()

	assert.Equal(t, "신정", h[Date{2025, time.January, 1}])
	assert.Equal(t, "삼일절", h[Date{2025, time.March, 1}])
	assert.Equal(t, "광복절", h[Date{2025, time.August, 15}])
	assert.Equal(t, "성탄절", h[Date{2025, time.December, 25}])
}

func TestGetHolidaysLunarDates2025(t *testing.T) {
	h := NewProvider(2025).GetHolidays()

	assert.Equal(t, "설날", h[Date{2025, time.January, 29}])
	assert.Equal(t, "설날 연휴", h[Date{2025, time.January, 28}])
	assert.Equal(t, "설날 연휴", h[Date{2025, time.January, 30}])
	assert.Equal(t, "추석", h[Date{2025, time.October, 6}])
	// 2025 年부처님오신날与어린이날同日，以阴历条目为准
	assert.NotEmpty(t, h[Date{2025, time.May, 5}])
}

func TestGetHolidaysMultipleYears(t *testing.T) {
	h := NewProvider(2024, 2025).GetHolidays()
	assert.Equal(t, "신정", h[Date{2024, time.January, 1}])
	assert.Equal(t, "설날", h[Date{2024, time.February, 10}])
	assert.Equal(t, "신정", h[Date{2025, time.January, 1}])
}

func TestGetHolidaysNeverFails(t *testing.T) {
	// 无年份：空映射
	require.NotNil(t, NewProvider().GetHolidays())
	assert.Empty(t, NewProvider().GetHolidays())

	// 非法年份被跳过
	assert.Empty(t, NewProvider(0, -3).GetHolidays())

	// 对照表之外的年份仍有公历固定节日
	h := NewProvider(2030).GetHolidays()
	assert.Equal(t, "신정", h[Date{2030, time.January, 1}])
	assert.Equal(t, "한글날", h[Date{2030, time.October, 9}])
}

func TestDateOf(t *testing.T) {
	d := DateOf(time.Date(2025, time.July, 4, 23, 59, 0, 0, time.Local))
	assert.Equal(t, Date{2025, time.July, 4}, d)
}
