// Package targets maintains the admin-editable numeric goal configuration.
package targets

import "time"

// Recognized target field names. Updates carrying any other key ignore it.
const (
	FieldMonthlyRevenue       = "monthlyRevenue"
	FieldTargetCustomers      = "targetCustomers"
	FieldTargetCalls          = "targetCalls"
	FieldTargetDeals          = "targetDeals"
	FieldTargetConversionRate = "targetConversionRate"
)

// FieldNames lists the five recognized keys in a stable order.
var FieldNames = []string{
	FieldMonthlyRevenue,
	FieldTargetCustomers,
	FieldTargetCalls,
	FieldTargetDeals,
	FieldTargetConversionRate,
}

// Config is the singleton target configuration for a workspace. Every field
// is an independent numeric goal; absent fields keep their persisted value
// on update.
type Config struct {
	MonthlyRevenue       float64   `json:"monthlyRevenue" db:"monthly_revenue"`
	TargetCustomers      float64   `json:"targetCustomers" db:"target_customers"`
	TargetCalls          float64   `json:"targetCalls" db:"target_calls"`
	TargetDeals          float64   `json:"targetDeals" db:"target_deals"`
	TargetConversionRate float64   `json:"targetConversionRate" db:"target_conversion_rate"`
	UpdatedAt            time.Time `json:"updated_at,omitempty" db:"updated_at"`
}
