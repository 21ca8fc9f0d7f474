// Package export serialises sale collections into downloadable artifacts.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/salespulse/salespulse/internal/format"
	"github.com/salespulse/salespulse/internal/sales"
)

// DefaultFilename names the artifact when the caller does not.
const DefaultFilename = "sales_export.csv"

// Header is the fixed column order of the export.
var Header = []string{"Date", "Product", "Customer", "Amount", "Status", "Source", "Notes"}

// WriteSalesCSV serialises the collection to RFC-4180 CSV in input order.
// The input is never mutated. Dates render as ISO calendar dates in loc.
func WriteSalesCSV(w io.Writer, list []sales.Sale, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(Header); err != nil {
		return err
	}
	for _, s := range list {
		record := []string{
			format.Date(s.Date.In(loc), format.PatternISO),
			s.Product,
			deref(s.Customer),
			formatAmount(s.Amount),
			string(s.Status),
			s.Source,
			deref(s.Notes),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
