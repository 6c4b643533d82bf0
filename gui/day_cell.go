package gui

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
)

// 日期单元格的固定尺寸（弹窗需要紧凑的整体 footprint）
const (
	dayCellWidth  float32 = 34
	dayCellHeight float32 = 24
)

// DayCell 月历中的单个日期单元格
// 前景色由颜色分类决定；当天日期带高亮背景；
// 节假日单元格悬停显示节日名称（Tooltip）
type DayCell struct {
	ttwidget.ToolTipWidget
	text *canvas.Text
	bg   *canvas.Rectangle
}

// NewDayCell 创建日期单元格
// fg: 前景色；today: 是否为当天（高亮背景）；tip: 节日名称（为空不显示）
func NewDayCell(day int, fg color.Color, today bool, tip string) *DayCell {
	c := &DayCell{}
	c.text = canvas.NewText(strconv.Itoa(day), fg)
	c.text.Alignment = fyne.TextAlignCenter
	c.bg = canvas.NewRectangle(color.Transparent)
	if today {
		c.bg.FillColor = colorTodayBG
	}
	c.ExtendBaseWidget(c)
	if tip != "" {
		c.SetToolTip(tip)
	}
	return c
}

func (c *DayCell) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(c.bg, c.text))
}

func (c *DayCell) MinSize() fyne.Size {
	return fyne.NewSize(dayCellWidth, dayCellHeight)
}

// blankCell 月外空白格：透明占位，保持 7 列网格对齐
func blankCell() fyne.CanvasObject {
	rect := canvas.NewRectangle(color.Transparent)
	rect.SetMinSize(fyne.NewSize(dayCellWidth, dayCellHeight))
	return rect
}
