package render

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"io"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/mrussa/orderview/internal/order"
)

// Format selects the region markup: FormatText or FormatHTML.
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatHTML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q", s)
	}
}

// Regions is the rendered content of the four result sub-regions.
type Regions struct {
	Basic    string
	Delivery string
	Payment  string
	Items    string
}

type executor interface {
	Execute(w io.Writer, data any) error
}

// Renderer holds the parsed region templates for one format and location.
type Renderer struct {
	basic, delivery, payment, item executor
}

func New(f Format, loc *time.Location) (*Renderer, error) {
	clk := NewClock(loc)
	funcs := map[string]any{
		"money":   Money,
		"sale":    Sale,
		"address": Address,
		"created": clk.Created,
		"paid":    clk.Paid,
	}

	var src [4]string
	var parse func(name, body string) (executor, error)
	switch f {
	case FormatHTML:
		src = [4]string{htmlBasic, htmlDelivery, htmlPayment, htmlItem}
		parse = func(name, body string) (executor, error) {
			return htmltemplate.New(name).Funcs(htmltemplate.FuncMap(funcs)).Parse(body)
		}
	case FormatText:
		src = [4]string{textBasic, textDelivery, textPayment, textItem}
		parse = func(name, body string) (executor, error) {
			return texttemplate.New(name).Funcs(texttemplate.FuncMap(funcs)).Parse(body)
		}
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}

	var ex [4]executor
	for i, name := range []string{"basic", "delivery", "payment", "item"} {
		t, err := parse(name, src[i])
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		ex[i] = t
	}
	return &Renderer{basic: ex[0], delivery: ex[1], payment: ex[2], item: ex[3]}, nil
}

// Render fills all four regions. Items are rendered one block per item and
// concatenated in order.
func (r *Renderer) Render(o order.Order) (Regions, error) {
	var (
		out Regions
		err error
	)
	if out.Basic, err = run(r.basic, o); err != nil {
		return Regions{}, err
	}
	if out.Delivery, err = run(r.delivery, o.Delivery); err != nil {
		return Regions{}, err
	}
	if out.Payment, err = run(r.payment, o.Payment); err != nil {
		return Regions{}, err
	}

	var items strings.Builder
	for _, it := range o.Items {
		s, err := run(r.item, it)
		if err != nil {
			return Regions{}, err
		}
		items.WriteString(s)
	}
	out.Items = items.String()
	return out, nil
}

func run(t executor, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
