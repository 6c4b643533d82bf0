package gui

import (
	"image/color"
	"sync"
	"time"

	appctrl "kr-calendar/app"
	"kr-calendar/config"
	"kr-calendar/holiday"
	"kr-calendar/logging"
	platformwin "kr-calendar/platform/win"
	"kr-calendar/sys_utils"
	"kr-calendar/utils"

	"fyne.io/fyne/v2"
)

// 弹窗锚点相对屏幕右下角的偏移
const (
	anchorOffsetX = 300
	anchorOffsetY = 220
)

type trayAppState int

const (
	stateConstructed trayAppState = iota
	stateStarted
	stateStopped
)

// TrayApp 顶层编排器：托盘图标、菜单、悬停检测与月历弹窗的装配与生命周期
// 悬停源与托盘回调运行在后台线程，一律通过动作队列向 GUI 线程提交请求
type TrayApp struct {
	app fyne.App

	mu    sync.Mutex
	state trayAppState

	popup      *CalendarPopup
	dispatcher *appctrl.Dispatcher
	polling    appctrl.HoverSource
	native     appctrl.HoverSource
}

// NewTrayApp 创建编排器（constructed 状态）
func NewTrayApp(a fyne.App) *TrayApp {
	return &TrayApp{app: a}
}

// Start 装配并启动全部组件
// 依次：取节假日 → 建弹窗并初始显示当前月份 → 启动队列排空 →
// 启动轮询悬停 → 尽力启动原生托盘悬停 → 安装托盘菜单
func (t *TrayApp) Start() {
	t.mu.Lock()
	if t.state != stateConstructed {
		t.mu.Unlock()
		return
	}
	t.state = stateStarted
	t.mu.Unlock()

	// 节假日获取失败只会得到空映射，不会中断启动
	holidays := holiday.NewProvider(config.GetYears()...).GetHolidays()
	t.popup = NewCalendarPopup(t.app, holidays)

	now := time.Now()
	x, y := anchorPosition()
	t.popup.ShowMonth(now.Year(), now.Month(), x, y)

	t.dispatcher = appctrl.NewDispatcher(fyne.Do, func() bool { return !t.popup.Destroyed() })
	t.dispatcher.Start(config.GetDrainInterval())

	// 轮询悬停在两种模式下都运行：纯轮询模式下是唯一的检测器，
	// 原生模式下兜底覆盖“光标位于弹窗内”的场景
	t.polling = appctrl.NewPollingHoverSource(
		platformwin.HoverMetrics, t, config.GetPollInterval(), config.GetHoverDistancePx())
	_ = t.polling.Start()

	if config.GetNativeTrayEnabled() {
		native := platformwin.NewNativeHoverSource(t)
		if err := native.Start(); err != nil {
			logging.Error("native tray unavailable, polling only: " + err.Error())
		} else {
			t.native = native
		}
	}

	platformwin.SetupSystemTray(t.app, trayIconResource(), t.RequestToggle, func() {
		t.Stop()
		t.app.Quit()
	})
	logging.Info("tray app started")
}

// RequestShow 请求在锚点位置显示上次显示的月份（未显示过则为当前月份）
func (t *TrayApp) RequestShow() {
	t.enqueue(func() {
		year, month := t.displayTarget()
		x, y := anchorPosition()
		t.popup.ShowMonth(year, month, x, y)
	})
}

// RequestHide 请求隐藏弹窗
func (t *TrayApp) RequestHide() {
	t.enqueue(func() { t.popup.Hide() })
}

// RequestToggle 请求切换弹窗：可见则隐藏，否则在锚点位置显示
func (t *TrayApp) RequestToggle() {
	t.enqueue(func() {
		if t.popup.Visible() {
			t.popup.Hide()
			return
		}
		year, month := t.displayTarget()
		x, y := anchorPosition()
		t.popup.ShowMonth(year, month, x, y)
	})
}

// displayTarget 返回要显示的年月：优先上次显示的，未显示过取当前
func (t *TrayApp) displayTarget() (int, time.Month) {
	if year, month := t.popup.Displayed(); month != 0 {
		return year, month
	}
	now := time.Now()
	return now.Year(), now.Month()
}

// enqueue 将动作提交到队列；队列不可用时回退到 fyne.Do
func (t *TrayApp) enqueue(action func()) {
	appctrl.Enqueue(t.dispatcher, fyne.Do, action)
}

// Stop 有序停止（幂等）：停掉悬停源、移除托盘资源、经队列销毁弹窗
// 任一资源的清理失败都不阻止其余资源的清理
func (t *TrayApp) Stop() {
	t.mu.Lock()
	if t.state != stateStarted {
		t.mu.Unlock()
		return
	}
	t.state = stateStopped
	t.mu.Unlock()

	if t.polling != nil {
		t.polling.Stop()
	}
	if t.native != nil {
		t.native.Stop()
	}
	if t.popup != nil {
		popup := t.popup
		// 销毁动作入队后由排空循环在 GUI 线程执行；
		// 弹窗销毁后排空循环检测到 alive 为假而自行结束
		appctrl.Enqueue(t.dispatcher, fyne.Do, func() { popup.Destroy() })
	} else if t.dispatcher != nil {
		t.dispatcher.Stop()
	}
	logging.Info("tray app stopped")
}

// anchorPosition 计算弹窗锚点：屏幕右下角上方（任务栏之上）
func anchorPosition() (int, int) {
	sw, sh := sys_utils.ScreenSize()
	x := sw - anchorOffsetX
	if x < 10 {
		x = 10
	}
	y := sh - anchorOffsetY
	if y < 10 {
		y = 10
	}
	return x, y
}

// trayIconResource 由图标工厂生成托盘图标资源（无内置资源文件）
func trayIconResource() fyne.Resource {
	img := utils.IconImage(64, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	b, err := utils.EncodePNG(img)
	if err != nil {
		return nil
	}
	return fyne.NewStaticResource("krcalendar.png", b)
}
