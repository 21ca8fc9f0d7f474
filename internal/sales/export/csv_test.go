package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salespulse/salespulse/internal/sales"
)

func strptr(s string) *string { return &s }

func TestWriteSalesCSVRoundTrip(t *testing.T) {
	manila := time.FixedZone("PHT", 8*3600)
	list := []sales.Sale{
		{
			ID:       "a",
			Date:     time.Date(2026, time.August, 15, 9, 30, 0, 0, manila),
			Product:  "Premium Plan",
			Customer: strptr("Acme, Inc."),
			Amount:   12500.50,
			Status:   sales.StatusCompleted,
			Source:   "referral",
			Notes:    strptr(`asked for "NET 30"` + "\nfollow up next week"),
		},
		{
			ID:      "b",
			Date:    time.Date(2026, time.July, 1, 23, 59, 0, 0, manila),
			Product: "Starter Plan",
			Amount:  800,
			Status:  sales.StatusPending,
			Source:  "web",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSalesCSV(&buf, list, manila))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, Header, records[0])
	assert.Equal(t, []string{
		"2026-08-15", "Premium Plan", "Acme, Inc.", "12500.5", "completed", "referral",
		`asked for "NET 30"` + "\nfollow up next week",
	}, records[1])
	assert.Equal(t, []string{
		"2026-07-01", "Starter Plan", "", "800", "pending", "web", "",
	}, records[2])
}

func TestWriteSalesCSVPreservesInputOrder(t *testing.T) {
	base := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	list := []sales.Sale{
		{Product: "C", Date: base.AddDate(0, 0, 2), Status: sales.StatusCompleted, Source: "web"},
		{Product: "A", Date: base, Status: sales.StatusCompleted, Source: "web"},
		{Product: "B", Date: base.AddDate(0, 0, 1), Status: sales.StatusCompleted, Source: "web"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSalesCSV(&buf, list, time.UTC))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "C", records[1][1])
	assert.Equal(t, "A", records[2][1])
	assert.Equal(t, "B", records[3][1])
}

func TestWriteSalesCSVEmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSalesCSV(&buf, nil, time.UTC))
	assert.Equal(t, "Date,Product,Customer,Amount,Status,Source,Notes\n", buf.String())
}

func TestWriteSalesCSVDoesNotMutateInput(t *testing.T) {
	list := []sales.Sale{
		{Product: "A", Date: time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), Amount: 10, Status: sales.StatusPending, Source: "web"},
	}
	snapshot := list[0]

	var buf bytes.Buffer
	require.NoError(t, WriteSalesCSV(&buf, list, time.UTC))
	assert.Equal(t, snapshot, list[0])
}
