package gui

import (
	"fmt"
	"image/color"
	"time"

	appctrl "kr-calendar/app"
	"kr-calendar/constants"
	"kr-calendar/holiday"
	"kr-calendar/logging"
	platformwin "kr-calendar/platform/win"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
)

// 日期单元格配色
var (
	colorDayRed  = color.NRGBA{R: 0xC0, G: 0x00, B: 0x00, A: 0xFF}
	colorDayBlue = color.NRGBA{R: 0x00, G: 0x60, B: 0xC0, A: 0xFF}
	colorTodayBG = color.NRGBA{R: 0xE8, G: 0xE8, B: 0xE8, A: 0xFF}
)

// CalendarPopup 月历悬浮弹窗
// 持有一个无边框置顶窗口，显示单个月份的 7 列网格。
// 网格只在显示的年月变化时重建；所有方法只允许在 GUI 线程调用，
// 其他线程经由动作队列提交请求。
type CalendarPopup struct {
	win      fyne.Window
	holidays map[holiday.Date]string

	// 当前已构建网格的年月（month 为 0 表示尚未构建）
	year  int
	month time.Month

	grid     *fyne.Container
	dayCells []*DayCell

	visible   bool
	destroyed bool

	// 当天日期来源（测试时可替换）
	now func() time.Time
}

// NewCalendarPopup 创建弹窗；窗口对象在整个生命周期中只创建一次
func NewCalendarPopup(a fyne.App, holidays map[holiday.Date]string) *CalendarPopup {
	w := a.NewWindow(constants.TextPopupName)
	w.SetFixedSize(true)
	return &CalendarPopup{win: w, holidays: holidays, now: time.Now}
}

// ShowMonth 显示指定月份的网格并移动到屏幕坐标 (x, y)
// x、y 为负时保持当前位置。与已显示年月相同（缓存命中）时不重建网格，
// 只重定位并恢复可见
func (p *CalendarPopup) ShowMonth(year int, month time.Month, x, y int) {
	if p.destroyed {
		return
	}
	if year == p.year && month == p.month && p.grid != nil {
		if x >= 0 && y >= 0 {
			platformwin.MovePopup(x, y)
		}
		p.win.Show()
		p.visible = true
		return
	}

	p.year = year
	p.month = month
	p.grid = p.buildGrid(year, month)
	p.win.SetContent(fynetooltip.AddWindowToolTipLayer(p.grid, p.win.Canvas()))
	p.win.Show()
	p.visible = true
	// 去边框/置顶/移动由 Win32 层异步完成（窗口句柄就绪后生效）
	platformwin.ApplyPopupStyle(x, y)
}

// buildGrid 重建月份网格：表头行、星期行、每周一行
func (p *CalendarPopup) buildGrid(year int, month time.Month) *fyne.Container {
	header := canvas.NewText(fmt.Sprintf("%d - %d", year, int(month)), theme.ForegroundColor())
	header.Alignment = fyne.TextAlignCenter
	header.TextStyle = fyne.TextStyle{Bold: true}

	cells := make([]fyne.CanvasObject, 0, 7*7)
	for _, name := range constants.WeekdayNames {
		cells = append(cells, widget.NewLabelWithStyle(name, fyne.TextAlignCenter, fyne.TextStyle{}))
	}

	today := holiday.DateOf(p.now())
	p.dayCells = nil
	for _, week := range appctrl.MonthWeeks(year, month) {
		for col, day := range week {
			if day == 0 {
				cells = append(cells, blankCell())
				continue
			}
			d := holiday.Date{Year: year, Month: month, Day: day}
			name, isHoliday := p.holidays[d]
			cell := NewDayCell(day, dayColor(appctrl.ClassifyDay(col, isHoliday)), d == today, name)
			p.dayCells = append(p.dayCells, cell)
			cells = append(cells, cell)
		}
	}
	return container.NewVBox(header, container.NewGridWithColumns(7, cells...))
}

// dayColor 将颜色分类映射为具体前景色
func dayColor(class appctrl.DayColorClass) color.Color {
	switch class {
	case appctrl.DayColorHolidayRed, appctrl.DayColorSundayRed:
		return colorDayRed
	case appctrl.DayColorSaturdayBlue:
		return colorDayBlue
	}
	return theme.ForegroundColor()
}

// Hide 隐藏弹窗但不销毁（网格保留，便于快速再次显示）
func (p *CalendarPopup) Hide() {
	if p.destroyed {
		return
	}
	p.win.Hide()
	p.visible = false
}

// Destroy 释放窗口资源；幂等，重复调用安全
func (p *CalendarPopup) Destroy() {
	defer logging.RecoverPanic("CalendarPopup.Destroy")
	if p.destroyed {
		return
	}
	p.destroyed = true
	p.visible = false
	fynetooltip.DestroyWindowToolTipLayer(p.win.Canvas())
	p.win.Close()
}

// Visible 返回弹窗当前是否可见
func (p *CalendarPopup) Visible() bool { return p.visible }

// Destroyed 返回弹窗是否已销毁
func (p *CalendarPopup) Destroyed() bool { return p.destroyed }

// Displayed 返回当前已构建网格的年月（月为 0 表示尚未构建）
func (p *CalendarPopup) Displayed() (int, time.Month) { return p.year, p.month }
