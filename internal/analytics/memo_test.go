package analytics

import (
	"testing"
	"time"

	"github.com/salespulse/salespulse/internal/sales"
)

func TestMemoReturnsCachedForSameCollection(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, manila)
	list := []sales.Sale{sale(100, now), sale(200, now.AddDate(0, -1, 0))}

	var m Memo
	first := m.Snapshot(list, now, manila)
	if first.TotalRevenue != 300 {
		t.Fatalf("expected total 300, got %.2f", first.TotalRevenue)
	}

	// Same collection identity: the cached snapshot comes back even with a
	// different now. Callers reset or swap the collection to recompute.
	later := now.AddDate(0, 1, 0)
	second := m.Snapshot(list, later, manila)
	if second != first {
		t.Fatalf("expected memoized snapshot, got %+v", second)
	}
}

func TestMemoRecomputesOnNewCollection(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, manila)
	var m Memo

	first := m.Snapshot([]sales.Sale{sale(100, now)}, now, manila)
	if first.TotalRevenue != 100 {
		t.Fatalf("expected total 100, got %.2f", first.TotalRevenue)
	}

	second := m.Snapshot([]sales.Sale{sale(100, now), sale(50, now)}, now, manila)
	if second.TotalRevenue != 150 {
		t.Fatalf("expected recompute on new collection, got %.2f", second.TotalRevenue)
	}
}

func TestMemoEmptyCollections(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, manila)
	var m Memo

	if snap := m.Snapshot(nil, now, manila); snap != (KPISnapshot{}) {
		t.Fatalf("expected zero snapshot, got %+v", snap)
	}
	if snap := m.Snapshot([]sales.Sale{}, now, manila); snap != (KPISnapshot{}) {
		t.Fatalf("expected zero snapshot for empty slice, got %+v", snap)
	}
}

func TestMemoReset(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, manila)
	list := []sales.Sale{sale(100, now)}

	var m Memo
	_ = m.Snapshot(list, now, manila)
	m.Reset()

	// After reset the same identity recomputes with the new now.
	nextMonth := now.AddDate(0, 1, 0)
	snap := m.Snapshot(list, nextMonth, manila)
	if snap.MonthRevenue != 0 {
		t.Fatalf("expected recompute after reset, got month %.2f", snap.MonthRevenue)
	}
	if snap.TotalRevenue != 100 {
		t.Fatalf("total should still sum all sales, got %.2f", snap.TotalRevenue)
	}
}
