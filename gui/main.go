package gui

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"kr-calendar/config"
	"kr-calendar/constants"
	"kr-calendar/logging"
	platformwin "kr-calendar/platform/win"
	"kr-calendar/sys_utils"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

// Run 启动应用：装配托盘月历并阻塞在 GUI 事件循环
func Run() {
	defer logging.RecoverPanic("gui.Run")
	myApp := app.New()
	myApp.Settings().SetTheme(&customTheme{})
	config.Init()
	cfgDir, _ := os.UserConfigDir()
	baseCfg := filepath.Join(cfgDir, constants.TextAppTitle)
	_ = logging.Init(baseCfg)
	logging.Info("config loaded")

	// 单实例检查：同名进程已在运行时直接退出（计数包含自身）
	if exe, err := os.Executable(); err == nil {
		if n, err := sys_utils.CountProcessInstances(filepath.Base(exe)); err == nil && n > 1 {
			logging.Error("another instance is running, exiting")
			return
		}
	}

	platformwin.InitAutostartRegistration()

	if icon := trayIconResource(); icon != nil {
		myApp.SetIcon(icon)
	}

	trayApp := NewTrayApp(myApp)
	trayApp.Start()

	// 用户中断信号触发有序停止后退出事件循环
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer logging.RecoverPanic("signalWatcher")
		<-sig
		trayApp.Stop()
		fyne.Do(func() { myApp.Quit() })
	}()

	myApp.Run()
}
