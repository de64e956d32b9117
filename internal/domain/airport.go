package domain

// Airport is immutable reference data seeded by migrations; the
// application only ever reads it.
type Airport struct {
	ID   int64  `json:"airport_id"`
	Code string `json:"airport_code"`
	Name string `json:"airport_name"`
	City string `json:"city"`
}
