package order

import "errors"

var (
	ErrNotFound  = errors.New("order not found")
	ErrMalformed = errors.New("malformed order")
)
