package win

import (
	"syscall"
	"time"

	"kr-calendar/constants"
	"kr-calendar/logging"

	"github.com/lxn/win"
)

// findPopup 按窗口标题查找弹窗句柄（窗口可能尚未创建，返回 0）
func findPopup() win.HWND {
	ptr, err := syscall.UTF16PtrFromString(constants.TextPopupName)
	if err != nil {
		return 0
	}
	return win.FindWindow(nil, ptr)
}

// ApplyPopupStyle 异步等待弹窗句柄就绪后去除边框并置顶
// x、y 为非负时同时移动到该屏幕坐标；应用启动阶段句柄可能尚未就绪，
// 在限定次数内轮询重试
func ApplyPopupStyle(x, y int) {
	go func() {
		defer logging.RecoverPanic("ApplyPopupStyle")
		for i := 0; i < 20; i++ {
			hwnd := findPopup()
			if hwnd == 0 {
				time.Sleep(100 * time.Millisecond)
				continue
			}
			style := uint32(win.GetWindowLong(hwnd, win.GWL_STYLE))
			style &^= win.WS_CAPTION | win.WS_THICKFRAME | win.WS_MINIMIZEBOX | win.WS_MAXIMIZEBOX | win.WS_SYSMENU
			style |= win.WS_POPUP
			win.SetWindowLong(hwnd, win.GWL_STYLE, int32(style))
			flags := uint32(win.SWP_NOSIZE | win.SWP_FRAMECHANGED | win.SWP_NOACTIVATE | win.SWP_SHOWWINDOW)
			if x < 0 || y < 0 {
				flags |= win.SWP_NOMOVE
			}
			win.SetWindowPos(hwnd, win.HWND_TOPMOST, int32(x), int32(y), 0, 0, flags)
			return
		}
	}()
}

// MovePopup 将弹窗移动到指定屏幕坐标并保持置顶
func MovePopup(x, y int) bool {
	hwnd := findPopup()
	if hwnd == 0 {
		return false
	}
	return win.SetWindowPos(hwnd, win.HWND_TOPMOST, int32(x), int32(y), 0, 0,
		win.SWP_NOSIZE|win.SWP_NOACTIVATE|win.SWP_SHOWWINDOW)
}

// PopupBounds 返回弹窗的屏幕包围盒与可见状态
func PopupBounds() (x, y, w, h int, visible bool) {
	hwnd := findPopup()
	if hwnd == 0 {
		return 0, 0, 0, 0, false
	}
	if !win.IsWindowVisible(hwnd) {
		return 0, 0, 0, 0, false
	}
	var r win.RECT
	if !win.GetWindowRect(hwnd, &r) {
		return 0, 0, 0, 0, false
	}
	return int(r.Left), int(r.Top), int(r.Right - r.Left), int(r.Bottom - r.Top), true
}
