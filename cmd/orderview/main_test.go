package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const shoeBody = `{
  "order_uid": "ABC123",
  "track_number": "WBILMTESTTRACK",
  "entry": "WBIL",
  "customer_id": "test",
  "delivery_service": "meest",
  "date_created": "2021-11-26T06:22:19Z",
  "delivery": {"name": "Test Testov", "phone": "+9720000000", "email": "test@gmail.com",
               "city": "Kiryat Mozkin", "address": "Ploshad Mira 15", "region": "Kraiot", "zip": "2639809"},
  "payment": {"transaction": "ABC123", "amount": 1817, "currency": "USD", "provider": "wbpay",
              "bank": "alpha", "payment_dt": 1700000000},
  "items": [{"name": "Shoe", "price": 2000, "total_price": 1800, "sale": 10, "status": 200, "brand": "X"}]
}`

func orderService(t *testing.T, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path != "/order/ABC123" {
			http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(shoeBody))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// lockedBuffer lets a test read output while run is still writing to it.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ORDER_SERVICE_URL", "HTTP_ADDR", "REQUEST_TIMEOUT", "OUTPUT_FORMAT", "DISPLAY_TZ", "DEBUG"} {
		t.Setenv(k, "")
	}
}

func TestRun_LookupArgs(t *testing.T) {
	clearEnv(t)
	var calls atomic.Int32
	srv := orderService(t, &calls)

	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"-u", srv.URL, "-z", "UTC", "ABC123"}, strings.NewReader(""), &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	s := out.String()
	require.Contains(t, s, "== Order ==")
	require.Contains(t, s, "Order UID: ABC123")
	require.Contains(t, s, "Date Created: 11/26/2021, 6:22:19 AM")
	require.Contains(t, s, "Address: Kiryat Mozkin, Ploshad Mira 15, Kraiot 2639809")
	require.Contains(t, s, "Amount: $18.17")
	require.Contains(t, s, "Payment Date: 11/14/2023, 10:13:20 PM")
	require.Contains(t, s, "Price: $20.00")
	require.Contains(t, s, "Total Price: $18.00")
	require.Contains(t, s, "Sale: 10%")
	require.Equal(t, int32(1), calls.Load())
}

func TestRun_NotFoundExitCode(t *testing.T) {
	clearEnv(t)
	var calls atomic.Int32
	srv := orderService(t, &calls)

	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"-u", srv.URL, "ABC123", "missing"}, strings.NewReader(""), &out, &errOut)
	require.Equal(t, 1, code)
	require.Contains(t, out.String(), "Order UID: ABC123")
	require.Contains(t, out.String(), "Error: Order not found\n")
}

func TestRun_Interactive(t *testing.T) {
	clearEnv(t)
	var calls atomic.Int32
	srv := orderService(t, &calls)

	var out, errOut bytes.Buffer
	in := strings.NewReader("  ABC123  \n\nnope\n")
	code := run(context.Background(), []string{"-u", srv.URL, "-f", "html"}, in, &out, &errOut)
	require.Equal(t, 0, code)

	s := out.String()
	require.Contains(t, s, "<p><strong>Order UID:</strong> ABC123</p>")
	require.Contains(t, s, "Error: Please enter an Order ID\n")
	require.Contains(t, s, "Error: Order not found\n")
	require.Equal(t, int32(2), calls.Load())
	require.Equal(t, 2, strings.Count(errOut.String(), "Loading..."))
}

func TestRun_BadConfig(t *testing.T) {
	clearEnv(t)
	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"-f", "xml"}, strings.NewReader(""), &out, &errOut)
	require.Equal(t, 2, code)
	require.Contains(t, errOut.String(), "[CFG]")
}

func TestRun_Help(t *testing.T) {
	clearEnv(t)
	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"-h"}, strings.NewReader(""), &out, &errOut)
	require.Equal(t, 0, code)
	require.Contains(t, errOut.String(), "-serve")
}

func TestRun_ServeStopsOnCancel(t *testing.T) {
	clearEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errOut bytes.Buffer
	code := run(ctx, []string{"-serve", "-a", "127.0.0.1:0"}, strings.NewReader(""), &out, &errOut)
	require.Equal(t, 0, code)
}

func TestRun_InteractiveStopsOnCancelWhileWaitingForInput(t *testing.T) {
	clearEnv(t)
	var calls atomic.Int32
	srv := orderService(t, &calls)

	stdin, stdinW := io.Pipe()
	t.Cleanup(func() { _ = stdinW.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	var out, errOut lockedBuffer
	done := make(chan int, 1)
	go func() {
		done <- run(ctx, []string{"-u", srv.URL, "-z", "UTC"}, stdin, &out, &errOut)
	}()

	_, err := stdinW.Write([]byte("ABC123\n"))
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Order UID: ABC123")
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case code := <-done:
		require.Equal(t, exitInterrupted, code)
	case <-time.After(2 * time.Second):
		t.Fatal("interactive prompt kept waiting for input after cancel")
	}
	require.Equal(t, int32(1), calls.Load())
	require.Contains(t, out.String(), "Order UID: ABC123")
}

func TestRun_InteractiveCancelBeforeAnyInput(t *testing.T) {
	clearEnv(t)
	stdin, stdinW := io.Pipe()
	t.Cleanup(func() { _ = stdinW.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	var out, errOut bytes.Buffer
	done := make(chan int, 1)
	go func() {
		done <- run(ctx, nil, stdin, &out, &errOut)
	}()
	cancel()

	select {
	case code := <-done:
		require.Equal(t, exitInterrupted, code)
	case <-time.After(2 * time.Second):
		t.Fatal("interactive prompt kept waiting for input after cancel")
	}
	require.Empty(t, out.String())
}
