package order

import (
	"encoding/json"
	"fmt"
)

// wireOrder shadows the nested parts of Order with pointers so that an absent
// or null section can be told apart from an empty one.
type wireOrder struct {
	Order
	Delivery *Delivery `json:"delivery"`
	Payment  *Payment  `json:"payment"`
	Items    *[]Item   `json:"items"`
}

// Decode parses a response body into an Order. Scalar fields may be missing;
// delivery, payment and items must be present.
func Decode(body []byte) (Order, error) {
	var w wireOrder
	if err := json.Unmarshal(body, &w); err != nil {
		return Order{}, err
	}
	switch {
	case w.Delivery == nil:
		return Order{}, fmt.Errorf("%w: delivery missing", ErrMalformed)
	case w.Payment == nil:
		return Order{}, fmt.Errorf("%w: payment missing", ErrMalformed)
	case w.Items == nil:
		return Order{}, fmt.Errorf("%w: items missing", ErrMalformed)
	}

	o := w.Order
	o.Delivery = *w.Delivery
	o.Payment = *w.Payment
	o.Items = *w.Items
	return o, nil
}
