package win

import (
	appctrl "kr-calendar/app"
	"kr-calendar/sys_utils"
)

// HoverMetrics 采集一次悬停判定所需的屏幕与弹窗指标
// 每次轮询重新采集，不做任何缓存
func HoverMetrics() (appctrl.HoverGeometry, error) {
	var g appctrl.HoverGeometry
	cx, cy, err := sys_utils.CursorPos()
	if err != nil {
		return g, err
	}
	g.CursorX, g.CursorY = cx, cy
	g.ScreenW, g.ScreenH = sys_utils.ScreenSize()
	g.PopupX, g.PopupY, g.PopupW, g.PopupH, g.PopupVisible = PopupBounds()
	return g, nil
}
