package sales

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// SaleStatus is the sale lifecycle value. The set is owned by the intake
// flow; storage and aggregation treat it as opaque.
type SaleStatus string

const (
	StatusPending   SaleStatus = "pending"
	StatusCompleted SaleStatus = "completed"
	StatusRefunded  SaleStatus = "refunded"
)

// Sale represents one recorded transaction. Records are read-only once
// written; aggregation and export never mutate them.
type Sale struct {
	ID        string     `json:"id" db:"id"`
	Date      time.Time  `json:"date" db:"sale_date"`
	Product   string     `json:"product" db:"product"`
	Customer  *string    `json:"customer,omitempty" db:"customer"`
	Amount    float64    `json:"amount" db:"amount"`
	Status    SaleStatus `json:"status" db:"status"`
	Source    string     `json:"source" db:"source"`
	Notes     *string    `json:"notes,omitempty" db:"notes"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// Timestamp converts the intake payload's date representation to a native
// instant at the boundary. Clients send RFC3339 strings, epoch milliseconds,
// or the upstream driver's {seconds,nanoseconds} wrapper.
type Timestamp struct {
	t time.Time
}

// Instant returns the native instant.
func (ts Timestamp) Instant() time.Time {
	return ts.t
}

// IsZero reports whether no date was supplied.
func (ts Timestamp) IsZero() bool {
	return ts.t.IsZero()
}

// MarshalJSON renders the instant as RFC3339.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.t.Format(time.RFC3339Nano))
}

// UnmarshalJSON accepts the three wire shapes described above.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("sales: decode timestamp: %w", err)
	}
	switch v := raw.(type) {
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			t, err = time.Parse(time.RFC3339, v)
		}
		if err != nil {
			return fmt.Errorf("sales: parse timestamp %q: %w", v, err)
		}
		ts.t = t
	case json.Number:
		millis, err := v.Int64()
		if err != nil {
			return fmt.Errorf("sales: parse epoch timestamp %q: %w", v.String(), err)
		}
		ts.t = time.UnixMilli(millis)
	case map[string]any:
		secs, err := wrapperField(v, "seconds")
		if err != nil {
			return err
		}
		nanos, _ := wrapperField(v, "nanoseconds")
		ts.t = time.Unix(secs, nanos)
	default:
		return fmt.Errorf("sales: unsupported timestamp shape %T", raw)
	}
	return nil
}

func wrapperField(m map[string]any, key string) (int64, error) {
	raw, ok := m[key]
	if !ok {
		return 0, fmt.Errorf("sales: timestamp wrapper missing %q", key)
	}
	num, ok := raw.(json.Number)
	if !ok {
		return 0, fmt.Errorf("sales: timestamp wrapper field %q is not numeric", key)
	}
	val, err := num.Int64()
	if err != nil {
		return 0, fmt.Errorf("sales: timestamp wrapper field %q: %w", key, err)
	}
	return val, nil
}

// CreateSaleRequest is the intake payload.
type CreateSaleRequest struct {
	Date     Timestamp `json:"date"`
	Product  string    `json:"product" validate:"required,max=200"`
	Customer *string   `json:"customer,omitempty" validate:"omitempty,max=200"`
	Amount   float64   `json:"amount" validate:"gte=0"`
	Status   string    `json:"status" validate:"required,oneof=pending completed refunded"`
	Source   string    `json:"source" validate:"required,max=100"`
	Notes    *string   `json:"notes,omitempty" validate:"omitempty,max=2000"`
}
