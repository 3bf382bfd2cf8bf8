package util

import (
	"testing"
	"time"
)

func TestGetMidnight(t *testing.T) {
	in := time.Date(2026, 3, 10, 23, 59, 59, 999, time.Local)
	want := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	if got := GetMidnight(in); !got.Equal(want) {
		t.Errorf("GetMidnight() = %v, want %v", got, want)
	}
}

func TestMonthStart(t *testing.T) {
	in := time.Date(2026, 3, 31, 8, 0, 0, 0, time.Local)
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	if got := MonthStart(in); !got.Equal(want) {
		t.Errorf("MonthStart() = %v, want %v", got, want)
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"周三回到周一",
			time.Date(2026, 3, 11, 10, 0, 0, 0, time.Local), // Wednesday
			time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local),
		},
		{
			"周一就是当天零点",
			time.Date(2026, 3, 9, 23, 0, 0, 0, time.Local),
			time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local),
		},
		{
			"周日归入上周一",
			time.Date(2026, 3, 15, 1, 0, 0, 0, time.Local), // Sunday
			time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekStart(tt.in); !got.Equal(tt.want) {
				t.Errorf("WeekStart() = %v, want %v", got, tt.want)
			}
		})
	}
}
