package entity

// Status is the soft-delete marker. Rows are never hard-deleted; only rows
// with StatusValid participate in business logic.
type Status string

const (
	StatusValid   Status = "VALID"
	StatusInvalid Status = "INVALID"
)
