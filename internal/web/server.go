// Package web serves the sales form as a server-rendered page. Each request
// is one form event (submit, reset, field change or card click) applied to a
// page rebuilt from the posted values; nothing is kept between requests.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Simplici0/ventas/internal/form"
	"github.com/Simplici0/ventas/internal/pricing"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server renders the sales form.
type Server struct {
	logger    *zap.Logger
	unitPrice decimal.Decimal
	discounts pricing.DiscountTable
	templates *template.Template
}

// NewServer parses the page templates and returns a ready server.
func NewServer(logger *zap.Logger, unitPrice decimal.Decimal, discounts pricing.DiscountTable) (*Server, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if unitPrice.IsZero() {
		unitPrice = pricing.DefaultUnitPrice
	}
	if _, ok := discounts.Discount(pricing.CategoryJunior); !ok {
		discounts = pricing.DefaultDiscounts
	}

	return &Server{
		logger:    logger,
		unitPrice: unitPrice,
		discounts: discounts,
		templates: templates,
	}, nil
}

// Routes returns the HTTP handler for the form.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/", s.handleForm)
	r.Post("/", s.handleSubmit)
	r.Post("/reset", s.handleReset)
	r.Post("/campos/{id}", s.handleChange)
	r.Post("/categorias/{tag}", s.handleCardClick)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	p, _, err := s.newController(nil)
	if err != nil {
		http.Error(w, "failed to build form", http.StatusInternalServerError)
		return
	}
	s.render(w, http.StatusOK, p)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	p, ctl, err := s.newController(r)
	if err != nil {
		http.Error(w, "failed to build form", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if !ctl.Submit() {
		status = http.StatusUnprocessableEntity
	}
	s.render(w, status, p)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	p, ctl, err := s.newController(nil)
	if err != nil {
		http.Error(w, "failed to build form", http.StatusInternalServerError)
		return
	}
	ctl.Reset()
	s.render(w, http.StatusOK, p)
}

func (s *Server) handleChange(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "id")
	p, ctl, err := s.newController(r)
	if err != nil {
		http.Error(w, "failed to build form", http.StatusInternalServerError)
		return
	}
	if _, ok := ctl.Field(id); !ok {
		http.NotFound(w, r)
		return
	}

	ctl.Change(id)
	s.render(w, http.StatusOK, p)
}

func (s *Server) handleCardClick(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	p, ctl, err := s.newController(r)
	if err != nil {
		http.Error(w, "failed to build form", http.StatusInternalServerError)
		return
	}

	tag := chi.URLParam(r, "tag")
	if category, ok := ctl.Click([]form.Element{{Classes: []string{form.CardClass, tag}}}); ok {
		s.logger.Debug("category selected", zap.String("category", string(category)))
	}
	s.render(w, http.StatusOK, p)
}

// newController builds the page from the posted values of r (none when r is
// nil) and a controller bound to it. The total starts at the formatted zero.
func (s *Server) newController(r *http.Request) (*page, *form.Controller, error) {
	var values url.Values
	if r != nil {
		values = r.PostForm
	}
	p := newPage(values)

	ctl, err := form.New(p.controls(), p.total,
		form.WithCalculator(pricing.NewCalculator(s.unitPrice)),
		form.WithDiscounts(s.discounts),
		form.WithLogger(s.logger),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("build form controller: %w", err)
	}
	p.total.SetText(pricing.FormatARS(ctl.Calculator().Total()))
	return p, ctl, nil
}

func (s *Server) render(w http.ResponseWriter, status int, p *page) {
	var buf bytes.Buffer
	data := p.data(pricing.FormatARS(s.unitPrice), s.discounts)
	if err := s.templates.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		s.logger.Error("render template", zap.Error(err))
		http.Error(w, "failed to render template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
