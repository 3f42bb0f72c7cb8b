package errors

import "fmt"

var (
	ErrInputNotFound = fmt.Errorf("input dataset not found")
	ErrEmptyInput    = fmt.Errorf("input dataset contains no usable records")
	ErrNotFitted     = fmt.Errorf("vectorizer not fitted")
)
