package app

import "time"

// MonthWeeks 将指定月份展开为周日开头的周序列
// 每周固定 7 格，月外日期为 0（空白格）
func MonthWeeks(year int, month time.Month) [][7]int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	days := first.AddDate(0, 1, -1).Day()
	col := int(first.Weekday()) // 周日为 0，与列颜色规则一致

	var weeks [][7]int
	var week [7]int
	for day := 1; day <= days; day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = [7]int{}
			col = 0
		}
	}
	if col != 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

// DayColorClass 日期单元格的前景色分类
type DayColorClass int

const (
	DayColorNormal DayColorClass = iota
	DayColorSundayRed
	DayColorSaturdayBlue
	DayColorHolidayRed
)

// ClassifyDay 根据所在列与节假日标记计算颜色分类
// 节假日优先于周末列；col 为周日开头的列号（0=周日，6=周六）
func ClassifyDay(col int, isHoliday bool) DayColorClass {
	if isHoliday {
		return DayColorHolidayRed
	}
	switch col {
	case 0:
		return DayColorSundayRed
	case 6:
		return DayColorSaturdayBlue
	}
	return DayColorNormal
}
