// Package analytics derives dashboard KPIs from the raw sale collection.
package analytics

import (
	"time"

	"github.com/salespulse/salespulse/internal/sales"
)

// KPISnapshot is the derived dashboard value. It has no identity beyond the
// inputs that produced it.
type KPISnapshot struct {
	TotalRevenue float64 `json:"totalRevenue"`
	SalesCount   int     `json:"salesCount"`
	TodayRevenue float64 `json:"todayRevenue"`
	MonthRevenue float64 `json:"monthRevenue"`
}

// Compute derives the snapshot from (list, now). Pure and deterministic;
// windows are closed intervals in loc's calendar. The today window is always
// contained in the month window for the same now.
func Compute(list []sales.Sale, now time.Time, loc *time.Location) KPISnapshot {
	if loc == nil {
		loc = time.UTC
	}
	dayStart, dayEnd := DayWindow(now, loc)
	monthStart, monthEnd := MonthWindow(now, loc)

	var snap KPISnapshot
	snap.SalesCount = len(list)
	for _, s := range list {
		snap.TotalRevenue += s.Amount
		if inWindow(s.Date, dayStart, dayEnd) {
			snap.TodayRevenue += s.Amount
		}
		if inWindow(s.Date, monthStart, monthEnd) {
			snap.MonthRevenue += s.Amount
		}
	}
	return snap
}

// DayWindow returns the inclusive [start, end] of now's calendar day in loc.
func DayWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}

// MonthWindow returns the inclusive [start, end] of now's calendar month in loc.
func MonthWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
