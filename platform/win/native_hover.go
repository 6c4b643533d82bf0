package win

import (
	"errors"
	"image/color"
	"runtime"
	"sync"
	"syscall"
	"unsafe"

	appctrl "kr-calendar/app"
	"kr-calendar/constants"
	"kr-calendar/logging"
	"kr-calendar/utils"

	"github.com/lxn/win"
)

// 托盘图标回调消息号（原生托盘把鼠标事件投递到该消息）
const trayCallbackMsg = win.WM_USER + 20

// 辅助函数：lxn/win 未封装的 User32 调用
var (
	libUser32           = syscall.NewLazyDLL("user32.dll")
	procUnregisterClass = libUser32.NewProc("UnregisterClassW")
	procDestroyIcon     = libUser32.NewProc("DestroyIcon")
)

// NativeHoverSource 原生托盘悬停事件源
// 创建一个隐藏消息窗口并通过 Shell_NotifyIcon 注册托盘图标，
// 托盘上的鼠标移动/点击以窗口消息的形式送达：
//   - WM_MOUSEMOVE：请求显示，并armed一次性 TrackMouseEvent 离开跟踪
//   - WM_MOUSELEAVE：请求隐藏
//   - 左/右键按下：请求切换
//
// 所有请求只经由 Requester 转发（内部进动作队列），消息线程绝不触碰 GUI。
type NativeHoverSource struct {
	req appctrl.Requester

	mu        sync.Mutex
	hwnd      win.HWND
	hicon     win.HICON
	className *uint16
	stopped   bool
}

// NewNativeHoverSource 创建原生悬停源
func NewNativeHoverSource(req appctrl.Requester) *NativeHoverSource {
	return &NativeHoverSource{req: req}
}

// Start 在独立的消息线程上注册托盘图标并启动消息泵
// 平台能力缺失（注册失败）时返回错误，调用方回退到纯轮询模式
func (s *NativeHoverSource) Start() error {
	errCh := make(chan error, 1)
	go s.pump(errCh)
	return <-errCh
}

// pump 消息线程：窗口必须与 GetMessage 在同一 OS 线程上
func (s *NativeHoverSource) pump(errCh chan error) {
	runtime.LockOSThread()
	defer logging.RecoverPanic("NativeHoverSource.pump")
	if err := s.setup(); err != nil {
		errCh <- err
		return
	}
	errCh <- nil
	var msg win.MSG
	for {
		if ret := win.GetMessage(&msg, 0, 0, 0); ret <= 0 {
			return
		}
		win.TranslateMessage(&msg)
		win.DispatchMessage(&msg)
	}
}

// setup 注册窗口类、创建隐藏窗口并添加托盘图标
func (s *NativeHoverSource) setup() error {
	// 托盘图标先落盘为临时 .ico，加载后立即删除（无论成败）
	icoPath, cleanup, err := utils.WriteTempICO(utils.IconImage(64, color.NRGBA{R: 255, G: 255, B: 255, A: 255}))
	if err != nil {
		return err
	}
	defer cleanup()

	className, err := syscall.UTF16PtrFromString(constants.TextTrayClassName)
	if err != nil {
		return err
	}
	windowTitle, err := syscall.UTF16PtrFromString(constants.TextTrayWindowTitle)
	if err != nil {
		return err
	}

	var wc win.WNDCLASSEX
	wc.CbSize = uint32(unsafe.Sizeof(wc))
	wc.LpfnWndProc = syscall.NewCallback(s.wndProc)
	wc.HInstance = win.GetModuleHandle(nil)
	wc.LpszClassName = className
	if win.RegisterClassEx(&wc) == 0 {
		return errors.New("RegisterClassEx failed")
	}
	s.className = className

	hwnd := win.CreateWindowEx(0, className, windowTitle, 0, 0, 0, 0, 0, 0, 0, wc.HInstance, nil)
	if hwnd == 0 {
		s.unregisterClass()
		return errors.New("CreateWindowEx failed")
	}
	s.mu.Lock()
	s.hwnd = hwnd
	s.mu.Unlock()

	icoPtr, err := syscall.UTF16PtrFromString(icoPath)
	if err == nil {
		h := win.LoadImage(0, icoPtr, win.IMAGE_ICON, 0, 0, win.LR_LOADFROMFILE|win.LR_DEFAULTSIZE)
		s.hicon = win.HICON(h)
	}

	var nid win.NOTIFYICONDATA
	nid.CbSize = uint32(unsafe.Sizeof(nid))
	nid.HWnd = hwnd
	nid.UID = 1
	nid.UFlags = win.NIF_MESSAGE | win.NIF_ICON | win.NIF_TIP
	nid.UCallbackMessage = trayCallbackMsg
	nid.HIcon = s.hicon
	tip, _ := syscall.UTF16FromString(constants.TextAppTitle)
	copy(nid.SzTip[:], tip)
	if !win.Shell_NotifyIcon(win.NIM_ADD, &nid) {
		win.DestroyWindow(hwnd)
		s.unregisterClass()
		s.mu.Lock()
		s.hwnd = 0
		s.mu.Unlock()
		return errors.New("Shell_NotifyIcon NIM_ADD failed")
	}
	return nil
}

// wndProc 隐藏窗口的消息处理；每个分支只做请求转发
func (s *NativeHoverSource) wndProc(hwnd win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	switch msg {
	case trayCallbackMsg:
		switch lParam {
		case win.WM_MOUSEMOVE:
			s.request(func(r appctrl.Requester) { r.RequestShow() })
			s.trackLeave(hwnd)
		case win.WM_LBUTTONDOWN, win.WM_RBUTTONDOWN:
			s.request(func(r appctrl.Requester) { r.RequestToggle() })
		}
		return 0
	case win.WM_MOUSELEAVE:
		s.request(func(r appctrl.Requester) { r.RequestHide() })
		return 0
	case win.WM_DESTROY:
		s.removeIcon(hwnd)
		win.PostQuitMessage(0)
		return 0
	}
	return win.DefWindowProc(hwnd, msg, wParam, lParam)
}

// request 转发请求；回调中的任何 panic 都不允许离开消息循环
func (s *NativeHoverSource) request(f func(appctrl.Requester)) {
	defer logging.RecoverPanic("NativeHoverSource.request")
	if s.req != nil {
		f(s.req)
	}
}

// trackLeave 注册一次性的鼠标离开跟踪，离开时收到 WM_MOUSELEAVE
func (s *NativeHoverSource) trackLeave(hwnd win.HWND) {
	var tme win.TRACKMOUSEEVENT
	tme.CbSize = uint32(unsafe.Sizeof(tme))
	tme.DwFlags = win.TME_LEAVE
	tme.HwndTrack = hwnd
	win.TrackMouseEvent(&tme)
}

// removeIcon 从托盘移除图标（失败忽略）
func (s *NativeHoverSource) removeIcon(hwnd win.HWND) {
	var nid win.NOTIFYICONDATA
	nid.CbSize = uint32(unsafe.Sizeof(nid))
	nid.HWnd = hwnd
	nid.UID = 1
	win.Shell_NotifyIcon(win.NIM_DELETE, &nid)
}

// Stop 移除托盘资源并结束消息泵（幂等；每一步失败都不阻止后续清理）
func (s *NativeHoverSource) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	if s.hwnd != 0 {
		s.removeIcon(s.hwnd)
		// WM_CLOSE → DestroyWindow → WM_DESTROY → PostQuitMessage 结束消息泵
		win.PostMessage(s.hwnd, win.WM_CLOSE, 0, 0)
		s.hwnd = 0
	}
	if s.hicon != 0 {
		_, _, _ = procDestroyIcon.Call(uintptr(s.hicon))
		s.hicon = 0
	}
	s.unregisterClass()
}

// unregisterClass 注销窗口类（失败忽略；窗口可能尚未销毁完毕）
func (s *NativeHoverSource) unregisterClass() {
	if s.className == nil {
		return
	}
	_, _, _ = procUnregisterClass.Call(
		uintptr(unsafe.Pointer(s.className)),
		uintptr(win.GetModuleHandle(nil)),
	)
	s.className = nil
}
