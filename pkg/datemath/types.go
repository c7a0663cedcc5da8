package datemath

import "errors"

// DateOrder is the component order used to read ambiguous numeric dates like 6/2/2026.
type DateOrder string

const (
	OrderDMY DateOrder = "DMY"
	OrderMDY DateOrder = "MDY"
)

const (
	// DateLayout is the storage format for due dates.
	DateLayout = "2006-01-02"
	// LabelLayout is the user-facing format for explicit dates.
	LabelLayout = "January 02, 2006"
)

var ErrInvalidDateOrder = errors.New("invalid date order")
