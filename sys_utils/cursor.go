package sys_utils

import (
	"errors"

	"github.com/lxn/win"
)

// CursorPos 返回当前光标的屏幕坐标
func CursorPos() (int, int, error) {
	var pt win.POINT
	if !win.GetCursorPos(&pt) {
		return 0, 0, errors.New("GetCursorPos failed")
	}
	return int(pt.X), int(pt.Y), nil
}

// ScreenSize 返回主显示器的宽高（像素）
func ScreenSize() (int, int) {
	return int(win.GetSystemMetrics(win.SM_CXSCREEN)), int(win.GetSystemMetrics(win.SM_CYSCREEN))
}
