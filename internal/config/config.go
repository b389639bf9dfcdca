package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"

	"github.com/mrussa/orderview/internal/render"
)

const (
	DefaultServiceURL = "http://localhost:8081"
	DefaultHTTPAddr   = ":8082"
	DefaultFormat     = string(render.FormatText)
)

type Config struct {
	ServiceURL     string        `env:"ORDER_SERVICE_URL"`
	HTTPAddr       string        `env:"HTTP_ADDR"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	Format         string        `env:"OUTPUT_FORMAT"`
	DisplayTZ      string        `env:"DISPLAY_TZ"`
	Debug          bool          `env:"DEBUG"`

	Serve bool
	IDs   []string
}

// Load reads flags from args, then lets the environment override them.
func Load(args []string, usage io.Writer) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("orderview", flag.ContinueOnError)
	fs.SetOutput(usage)
	fs.StringVar(&cfg.ServiceURL, "u", DefaultServiceURL, "Order service base URL")
	fs.StringVar(&cfg.HTTPAddr, "a", DefaultHTTPAddr, "Listen address for -serve")
	fs.DurationVar(&cfg.RequestTimeout, "t", 0, "Order request timeout, 0 means none")
	fs.StringVar(&cfg.Format, "f", DefaultFormat, "Output format: text or html")
	fs.StringVar(&cfg.DisplayTZ, "z", "", "IANA time zone for dates, empty means local")
	fs.BoolVar(&cfg.Debug, "debug", false, "Debug logging")
	fs.BoolVar(&cfg.Serve, "serve", false, "Serve the lookup page instead of printing")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.IDs = fs.Args()

	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	u, err := url.ParseRequestURI(c.ServiceURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("wrong order service url %q", c.ServiceURL)
	}
	if c.RequestTimeout < 0 {
		return errors.New("request timeout must not be negative")
	}
	if _, err := render.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

func (c Config) OutputFormat() render.Format {
	f, _ := render.ParseFormat(c.Format)
	return f
}

func (c Config) Location() (*time.Location, error) {
	if c.DisplayTZ == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.DisplayTZ)
	if err != nil {
		return nil, fmt.Errorf("display tz: %w", err)
	}
	return loc, nil
}
