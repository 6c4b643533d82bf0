package constants

// 通用常量
const (
	TextAppTitle  = "KrCalendar"
	TextTrayShow  = "显示日历"
	TextTrayExit  = "退出"
	TextTrayTip   = "KrCalendar 韩国节假日月历"
	TextPopupName = "KrCalendarPopup"
)

// 原生托盘集成常量（隐藏消息窗口）
const (
	TextTrayClassName   = "KrCalendarTray"
	TextTrayWindowTitle = "KrCalendarHiddenWindow"
)

// 星期表头（周日开头，与日期单元格的列颜色规则保持一致）
var WeekdayNames = [7]string{"日", "一", "二", "三", "四", "五", "六"}
