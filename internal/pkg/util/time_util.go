package util

import "time"

// GetMidnight 返回给定时间当天的零点（保留原时区）。
// 限流的"今日"以服务器本地日界为准，统一在这里裁剪。
func GetMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MonthStart 返回给定时间所在自然月的起点
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// WeekStart 返回给定时间所在周的周一零点（ISO 周，周一为一周之始）
func WeekStart(t time.Time) time.Time {
	midnight := GetMidnight(t)
	weekday := int(midnight.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return midnight.AddDate(0, 0, -(weekday - 1))
}
