package gui

import (
	"testing"
	"time"

	appctrl "kr-calendar/app"
	"kr-calendar/holiday"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestPopup 构建测试弹窗，“当天”固定为 2025-01-15
func newTestPopup(holidays map[holiday.Date]string) *CalendarPopup {
	a := test.NewApp()
	p := NewCalendarPopup(a, holidays)
	p.now = func() time.Time { return time.Date(2025, time.January, 15, 12, 0, 0, 0, time.Local) }
	return p
}

func TestShowMonthBuildsGrid(t *testing.T) {
	p := newTestPopup(nil)
	p.ShowMonth(2025, time.January, -1, -1)

	assert.True(t, p.Visible())
	year, month := p.Displayed()
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.January, month)

	// 2025 年 1 月：31 个日期格，5 周
	require.Len(t, p.dayCells, 31)
	weeks := appctrl.MonthWeeks(2025, time.January)
	require.Len(t, weeks, 5)

	// 网格 = 星期表头 7 格 + 每周 7 格（含空白占位）
	gridRow, ok := p.grid.Objects[1].(*fyne.Container)
	require.True(t, ok)
	assert.Len(t, gridRow.Objects, 7+len(weeks)*7)
}

func TestShowMonthWeekendColoring(t *testing.T) {
	p := newTestPopup(nil)
	p.ShowMonth(2025, time.January, -1, -1)

	// 2025-01-04 周六为蓝，2025-01-05 周日为红，工作日为默认色
	assert.Equal(t, colorDayBlue, p.dayCells[3].text.Color)
	assert.Equal(t, colorDayRed, p.dayCells[4].text.Color)
	assert.NotEqual(t, colorDayRed, p.dayCells[0].text.Color)
	assert.NotEqual(t, colorDayBlue, p.dayCells[0].text.Color)
}

func TestShowMonthHolidayOverridesWeekday(t *testing.T) {
	holidays := map[holiday.Date]string{
		{Year: 2025, Month: time.January, Day: 1}: "신정",
	}
	p := newTestPopup(holidays)
	p.ShowMonth(2025, time.January, -1, -1)

	// 2025-01-01 是周三，但因为是节假日仍渲染为红色
	assert.Equal(t, colorDayRed, p.dayCells[0].text.Color)
}

func TestShowMonthTodayHighlight(t *testing.T) {
	p := newTestPopup(nil)
	p.ShowMonth(2025, time.January, -1, -1)

	assert.Equal(t, colorTodayBG, p.dayCells[14].bg.FillColor)
	assert.NotEqual(t, colorTodayBG, p.dayCells[13].bg.FillColor)
}

func TestShowMonthCacheHit(t *testing.T) {
	p := newTestPopup(nil)
	p.ShowMonth(2025, time.January, -1, -1)
	built := p.grid

	// 相同年月：不重建网格（对象身份不变）
	p.ShowMonth(2025, time.January, 100, 100)
	assert.Same(t, built, p.grid)

	// 年月变化：重建
	p.ShowMonth(2025, time.February, -1, -1)
	assert.NotSame(t, built, p.grid)
	assert.Len(t, p.dayCells, 28)
}

func TestHideThenShowRestoresWithoutRebuild(t *testing.T) {
	p := newTestPopup(nil)
	p.ShowMonth(2025, time.January, -1, -1)
	built := p.grid

	p.Hide()
	assert.False(t, p.Visible())

	p.ShowMonth(2025, time.January, -1, -1)
	assert.True(t, p.Visible())
	assert.Same(t, built, p.grid)
}

func TestDestroyIdempotent(t *testing.T) {
	p := newTestPopup(nil)
	p.ShowMonth(2025, time.January, -1, -1)

	require.NotPanics(t, func() {
		p.Destroy()
		p.Destroy()
	})
	assert.True(t, p.Destroyed())
	assert.False(t, p.Visible())

	// 销毁后的请求被忽略
	p.ShowMonth(2025, time.March, -1, -1)
	assert.False(t, p.Visible())
}

func TestDispatcherFIFOFinalState(t *testing.T) {
	p := newTestPopup(nil)
	d := appctrl.NewDispatcher(func(f func()) { f() }, func() bool { return !p.Destroyed() })

	d.Enqueue(func() { p.ShowMonth(2025, time.January, -1, -1) })
	d.Enqueue(func() { p.Hide() })
	d.Enqueue(func() { p.ShowMonth(2025, time.February, -1, -1) })
	d.Drain()

	year, month := p.Displayed()
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.February, month)
	assert.True(t, p.Visible())
}
