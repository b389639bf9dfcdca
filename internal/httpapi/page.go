package httpapi

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/mrussa/orderview/internal/logger"
	"github.com/mrussa/orderview/internal/respond"
	"github.com/mrussa/orderview/internal/viewer"
)

//go:embed web/index.gohtml
var webFS embed.FS

var pageTmpl = template.Must(template.ParseFS(webFS, "web/index.gohtml"))

// Lookuper runs one lookup against a render target. Region contents must be
// trusted HTML markup.
type Lookuper interface {
	Lookup(ctx context.Context, t viewer.Target, input string) error
}

type Page struct {
	lookup  Lookuper
	lg      *zap.SugaredLogger
	version string
}

type pageView struct {
	ID       string
	State    viewer.State
	Basic    template.HTML
	Delivery template.HTML
	Payment  template.HTML
	Items    template.HTML
}

func New(l Lookuper, lg *zap.SugaredLogger, version string) *Page {
	if lg == nil {
		lg = zap.NewNop().Sugar()
	}
	return &Page{lookup: l, lg: lg, version: version}
}

func (p *Page) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(WithRequestID)
	r.Use(logger.LoggingMiddleware(p.lg))
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respond.NotFound(w, RequestID(r))
	})

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ui/", http.StatusTemporaryRedirect)
	})
	r.HandleFunc("/ui", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ui/", http.StatusTemporaryRedirect)
	})
	r.HandleFunc("/ui/", p.servePage)
	r.HandleFunc("/healthz", p.serveHealth)

	return r
}

// servePage renders the lookup page. Submitting the form (Enter in the
// input) sends ?id=..., which triggers one lookup into a fresh document.
func (p *Page) servePage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respond.MethodNotAllowed(w, http.MethodGet, RequestID(r))
		return
	}

	doc := viewer.NewDocument()
	q := r.URL.Query()
	id, submitted := q.Get("id"), q.Has("id")
	if submitted {
		_ = p.lookup.Lookup(r.Context(), doc, id)
	}

	st := doc.Snapshot()
	view := pageView{
		ID:       id,
		State:    st,
		Basic:    template.HTML(st.Region(viewer.RegionBasic)),
		Delivery: template.HTML(st.Region(viewer.RegionDelivery)),
		Payment:  template.HTML(st.Region(viewer.RegionPayment)),
		Items:    template.HTML(st.Region(viewer.RegionItems)),
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, view); err != nil {
		p.lg.Errorw("page render failed", "request_id", RequestID(r), "err", err)
		respond.Internal(w, RequestID(r))
		return
	}
	respond.HTML(w, http.StatusOK, &buf)
}

func (p *Page) serveHealth(w http.ResponseWriter, r *http.Request) {
	reqID := RequestID(r)

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		respond.MethodNotAllowed(w, http.MethodGet+", "+http.MethodHead, reqID)
		return
	}
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"version":    p.version,
		"request_id": reqID,
	})
}
