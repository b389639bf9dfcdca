package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/mrussa/orderview/internal/order"
)

const orderPath = "/order/"

// Client fetches orders from the order service. It never retries; a zero
// timeout leaves requests unbounded.
type Client struct {
	http *resty.Client
	lg   *zap.SugaredLogger
}

func New(baseURL string, timeout time.Duration, lg *zap.SugaredLogger) *Client {
	if lg == nil {
		lg = zap.NewNop().Sugar()
	}
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetLogger(lg).
		SetHeader("Accept", "application/json")
	return &Client{http: rc, lg: lg}
}

// FetchOrder issues GET /order/{id} with id taken verbatim. Any non-2xx
// status is order.ErrNotFound and the body is not inspected.
func (c *Client) FetchOrder(ctx context.Context, id string) (order.Order, error) {
	resp, err := c.http.R().SetContext(ctx).Get(orderPath + escapeStrayPercent(id))
	if err != nil {
		c.lg.Debugw("order fetch failed", "id", id, "err", err)
		return order.Order{}, err
	}
	if !resp.IsSuccess() {
		c.lg.Debugw("order fetch rejected", "id", id, "status", resp.StatusCode())
		return order.Order{}, fmt.Errorf("status %d: %w", resp.StatusCode(), order.ErrNotFound)
	}

	o, err := order.Decode(resp.Body())
	if err != nil {
		c.lg.Debugw("order decode failed", "id", id, "err", err)
		return order.Order{}, err
	}
	c.lg.Debugw("order fetched", "id", id, "items", len(o.Items), "took", resp.Time())
	return o, nil
}

// escapeStrayPercent encodes every '%' that does not start a valid %XX
// sequence, the way browsers pass such ids through. Valid sequences and all
// other characters are left for the URL layer.
func escapeStrayPercent(id string) string {
	if !strings.Contains(id, "%") {
		return id
	}
	var b strings.Builder
	b.Grow(len(id) + 8)
	for i := 0; i < len(id); i++ {
		if id[i] == '%' && !(i+2 < len(id) && isHex(id[i+1]) && isHex(id[i+2])) {
			b.WriteString("%25")
			continue
		}
		b.WriteByte(id[i])
	}
	return b.String()
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
