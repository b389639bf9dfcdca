package viewer

import (
	"errors"

	"github.com/mrussa/orderview/internal/order"
)

const (
	MsgEmptyID  = "Please enter an Order ID"
	MsgNotFound = "Order not found"
)

var ErrEmptyID = errors.New("empty order id")

// Message converts a lookup error into the text shown in the error region.
// Transport and parse failures surface their own description.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyID):
		return MsgEmptyID
	case errors.Is(err, order.ErrNotFound):
		return MsgNotFound
	default:
		return err.Error()
	}
}
