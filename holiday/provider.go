// Package holiday 提供韩国法定节假日查询。
// 公历固定节日通过 rickar/cal 按年推算；阴历节日（설날/부처님오신날/추석）
// 没有可用的阴历推算库，使用内置对照表覆盖 2024-2027 年。
package holiday

import (
	"time"

	"github.com/rickar/cal/v2"
)

// Date 日历日期键（年月日，不含时区）
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf 取 time.Time 的日期部分作为键
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// 公历固定节日
var fixedHolidays = []*cal.Holiday{
	{Name: "신정", Month: time.January, Day: 1, Func: cal.CalcDayOfMonth},
	{Name: "삼일절", Month: time.March, Day: 1, Func: cal.CalcDayOfMonth},
	{Name: "어린이날", Month: time.May, Day: 5, Func: cal.CalcDayOfMonth},
	{Name: "현충일", Month: time.June, Day: 6, Func: cal.CalcDayOfMonth},
	{Name: "광복절", Month: time.August, Day: 15, Func: cal.CalcDayOfMonth},
	{Name: "개천절", Month: time.October, Day: 3, Func: cal.CalcDayOfMonth},
	{Name: "한글날", Month: time.October, Day: 9, Func: cal.CalcDayOfMonth},
	{Name: "성탄절", Month: time.December, Day: 25, Func: cal.CalcDayOfMonth},
}

// 阴历节日对照表（설날/추석 各含前后一天，共三天）
var lunarHolidays = map[int][]struct {
	Month time.Month
	Day   int
	Name  string
}{
	2024: {
		{time.February, 9, "설날 연휴"}, {time.February, 10, "설날"}, {time.February, 11, "설날 연휴"},
		{time.May, 15, "부처님오신날"},
		{time.September, 16, "추석 연휴"}, {time.September, 17, "추석"}, {time.September, 18, "추석 연휴"},
	},
	2025: {
		{time.January, 28, "설날 연휴"}, {time.January, 29, "설날"}, {time.January, 30, "설날 연휴"},
		{time.May, 5, "부처님오신날"},
		{time.October, 5, "추석 연휴"}, {time.October, 6, "추석"}, {time.October, 7, "추석 연휴"},
	},
	2026: {
		{time.February, 16, "설날 연휴"}, {time.February, 17, "설날"}, {time.February, 18, "설날 연휴"},
		{time.May, 24, "부처님오신날"},
		{time.September, 24, "추석 연휴"}, {time.September, 25, "추석"}, {time.September, 26, "추석 연휴"},
	},
	2027: {
		{time.February, 6, "설날 연휴"}, {time.February, 7, "설날"}, {time.February, 8, "설날 연휴"},
		{time.May, 13, "부처님오신날"},
		{time.September, 14, "추석 연휴"}, {time.September, 15, "추석"}, {time.September, 16, "추석 연휴"},
	},
}

// Provider 按年份集合提供节假日映射
type Provider struct {
	years []int
}

// NewProvider 创建节假日提供者
func NewProvider(years ...int) *Provider {
	return &Provider{years: years}
}

// GetHolidays 返回日期到节日名称的映射
// 该调用不会失败：无数据的年份只是不产生条目，最坏情况返回空映射
func (p *Provider) GetHolidays() map[Date]string {
	result := make(map[Date]string)
	for _, year := range p.years {
		if year <= 0 {
			continue
		}
		for _, h := range fixedHolidays {
			actual, _ := h.Calc(year)
			if actual.IsZero() {
				continue
			}
			result[DateOf(actual)] = h.Name
		}
		for _, l := range lunarHolidays[year] {
			result[Date{Year: year, Month: l.Month, Day: l.Day}] = l.Name
		}
	}
	return result
}
