package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mrussa/orderview/internal/client"
	"github.com/mrussa/orderview/internal/config"
	"github.com/mrussa/orderview/internal/httpapi"
	"github.com/mrussa/orderview/internal/logger"
	"github.com/mrussa/orderview/internal/render"
	"github.com/mrussa/orderview/internal/viewer"
)

var version = "dev"

// exitInterrupted is the shell convention for a SIGINT exit.
const exitInterrupted = 130

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "[CFG] %v\n", err)
		return 2
	}

	lg, err := logger.New(cfg.Debug)
	if err != nil {
		fmt.Fprintf(stderr, "[LOG] %v\n", err)
		return 2
	}
	defer func() { _ = lg.Sync() }()
	lg.Debugw("config loaded", "service", cfg.ServiceURL, "format", cfg.Format, "timeout", cfg.RequestTimeout, "serve", cfg.Serve)

	loc, err := cfg.Location()
	if err != nil {
		lg.Errorw("display location", "err", err)
		return 2
	}
	cl := client.New(cfg.ServiceURL, cfg.RequestTimeout, lg)

	if cfg.Serve {
		return serve(ctx, cfg, cl, loc, lg)
	}

	rnd, err := render.New(cfg.OutputFormat(), loc)
	if err != nil {
		lg.Errorw("renderer", "err", err)
		return 2
	}
	v := viewer.New(cl, rnd)

	if len(cfg.IDs) > 0 {
		return lookupAll(ctx, v, cfg.IDs, stdout)
	}
	return interactive(ctx, v, stdin, stdout, stderr)
}

func lookupAll(ctx context.Context, v *viewer.Viewer, ids []string, stdout io.Writer) int {
	code := 0
	for _, id := range ids {
		doc := viewer.NewDocument()
		if err := v.Lookup(ctx, doc, id); err != nil {
			code = 1
		}
		printState(stdout, doc.Snapshot())
	}
	return code
}

// interactive treats every line on stdin as an Enter press in the id field.
// Cancelling ctx ends the prompt even while a read is pending.
func interactive(ctx context.Context, v *viewer.Viewer, stdin io.Reader, stdout, stderr io.Writer) int {
	doc := &termDocument{Document: viewer.NewDocument(), status: stderr}
	lines, readErr := readLines(ctx, stdin)

	fmt.Fprint(stderr, "Order ID> ")
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(stderr)
			return exitInterrupted
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(stderr)
				if err := <-readErr; err != nil {
					fmt.Fprintf(stderr, "read input: %v\n", err)
					return 1
				}
				return 0
			}
			_ = v.Lookup(ctx, doc, line)
			printState(stdout, doc.Snapshot())
			fmt.Fprint(stderr, "Order ID> ")
		}
	}
}

// readLines scans r in its own goroutine. readErr always receives exactly one
// value before lines is closed.
func readLines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}
		readErr <- sc.Err()
	}()
	return lines, readErr
}

func serve(ctx context.Context, cfg config.Config, cl *client.Client, loc *time.Location, lg *zap.SugaredLogger) int {
	rnd, err := render.New(render.FormatHTML, loc)
	if err != nil {
		lg.Errorw("renderer", "err", err)
		return 2
	}
	page := httpapi.New(viewer.New(cl, rnd), lg, version)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           page.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lg.Infow("listening", "addr", cfg.HTTPAddr, "service", cfg.ServiceURL, "version", version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		lg.Infow("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		lg.Errorw("http server", "err", err)
		return 1
	}
	lg.Infow("bye")
	return 0
}
