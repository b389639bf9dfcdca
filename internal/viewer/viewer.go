package viewer

import (
	"context"
	"strings"

	"github.com/mrussa/orderview/internal/order"
	"github.com/mrussa/orderview/internal/render"
)

// Fetcher retrieves one order by id. A non-2xx answer must be reported as
// order.ErrNotFound.
type Fetcher interface {
	FetchOrder(ctx context.Context, id string) (order.Order, error)
}

// Renderer turns a decoded order into region content.
type Renderer interface {
	Render(o order.Order) (render.Regions, error)
}

// Viewer is the lookup-and-render controller. It keeps no state between
// lookups.
type Viewer struct {
	fetch  Fetcher
	render Renderer
}

func New(f Fetcher, r Renderer) *Viewer {
	return &Viewer{fetch: f, render: r}
}

// Lookup runs one lookup for the raw user input and writes the outcome into
// t. The returned error has already been shown in the error region.
func (v *Viewer) Lookup(ctx context.Context, t Target, input string) error {
	id := strings.TrimSpace(input)
	if id == "" {
		t.ShowError(MsgEmptyID)
		return ErrEmptyID
	}

	t.HideError()
	t.HideResult()
	t.ShowLoading()
	defer t.HideLoading()

	o, err := v.fetch.FetchOrder(ctx, id)
	if err != nil {
		t.ShowError(Message(err))
		return err
	}

	regions, err := v.render.Render(o)
	if err != nil {
		t.ShowError(Message(err))
		return err
	}

	t.SetRegion(RegionBasic, regions.Basic)
	t.SetRegion(RegionDelivery, regions.Delivery)
	t.SetRegion(RegionPayment, regions.Payment)
	t.SetRegion(RegionItems, regions.Items)
	t.ShowResult()
	return nil
}
