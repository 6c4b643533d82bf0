package win

import (
	"kr-calendar/constants"

	"fyne.io/systray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// SetupSystemTray 初始化系统托盘菜单（显示日历/退出）并绑定操作
func SetupSystemTray(myApp fyne.App, icon fyne.Resource, onToggle, onQuit func()) {
	if d, ok := myApp.(desktop.App); ok {
		showItem := fyne.NewMenuItem(constants.TextTrayShow, onToggle)
		exitItem := fyne.NewMenuItem(constants.TextTrayExit, onQuit)
		d.SetSystemTrayMenu(fyne.NewMenu(constants.TextAppTitle, showItem, exitItem))
		if icon != nil {
			d.SetSystemTrayIcon(icon)
		}
		// 设置托盘悬停提示与标题（Windows/Mac 支持悬停提示文本显示）
		systray.SetTitle(constants.TextAppTitle)
		systray.SetTooltip(constants.TextTrayTip)
	}
}
