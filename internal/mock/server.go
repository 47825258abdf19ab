package mock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stockr/stockr/internal/api"
	"github.com/stockr/stockr/internal/telemetry"
)

// Options tunes the backend.
type Options struct {
	// RPS caps requests per second per client. Zero disables limiting.
	RPS   float64
	Burst int

	// Latency delays every API response.
	Latency time.Duration

	Logger *slog.Logger
}

// Server is the mock inventory backend.
type Server struct {
	store    *Store
	metrics  *telemetry.Metrics
	visitors *visitors
	latency  time.Duration
	faults   map[string]int
	log      *slog.Logger
	router   chi.Router
	mx       sync.RWMutex
}

// NewServer builds the router over store.
func NewServer(store *Store, opts Options) *Server {
	s := Server{
		store:   store,
		metrics: telemetry.NewMetrics(),
		latency: opts.Latency,
		faults:  make(map[string]int),
		log:     opts.Logger,
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	if opts.RPS > 0 {
		s.visitors = newVisitors(opts.RPS, opts.Burst)
	}
	s.router = s.routes()

	return &s
}

// Store returns the backing store.
func (s *Server) Store() *Store {
	return s.store
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Fail makes every request to path answer with code until cleared with
// a zero code. path is the request path, e.g. /api/Sales.
func (s *Server) Fail(path string, code int) {
	s.mx.Lock()
	defer s.mx.Unlock()

	if code == 0 {
		delete(s.faults, path)
		return
	}
	s.faults[path] = code
}

func (s *Server) fault(path string) int {
	s.mx.RLock()
	defer s.mx.RUnlock()

	return s.faults[path]
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(s.limit)
		r.Use(s.inject)

		r.Get("/Products", s.listProducts)
		r.Post("/Products", s.createProduct)
		r.Put("/Products/{id}", s.updateProduct)
		r.Delete("/Products/{id}", s.deleteProduct)

		r.Get("/Categories", s.listCategories)
		r.Post("/Categories", s.createCategory)
		r.Put("/Categories/{id}", s.updateCategory)
		r.Delete("/Categories/{id}", s.deleteCategory)

		r.Get("/Sales", s.listSales)
		r.Post("/Sales", s.createSale)

		r.Get("/Analytics/{report}", s.analytics)
	})

	return r
}

// observe logs and measures every request.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		code := ww.Status()
		if code == 0 {
			code = http.StatusOK
		}
		s.metrics.ObserveRequest(r.Method, route, code, time.Since(start))
		s.log.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", code,
			"request_id", r.Header.Get("X-Request-Id"),
			"duration", time.Since(start),
		)
	})
}

// limit throttles each client with its own token bucket.
func (s *Server) limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.visitors != nil && !s.visitors.get(clientIP(r)).Allow() {
			s.metrics.TrackRateLimited()
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// inject applies the configured latency and faults.
func (s *Server) inject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.latency > 0 {
			select {
			case <-time.After(s.latency):
			case <-r.Context().Done():
				return
			}
		}
		if code := s.fault(r.URL.Path); code != 0 {
			http.Error(w, http.StatusText(code), code)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) syncGauges() {
	for k, n := range s.store.Counts() {
		s.metrics.SetRecords(k, n)
	}
}

func (s *Server) listProducts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Products())
}

func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	var in api.ProductInput
	if err := readJSON(w, r, &in); err != nil {
		writeError(w, fmt.Errorf("%w: %w", ErrInvalid, err))
		return
	}
	p, err := s.store.CreateProduct(in)
	if err != nil {
		writeError(w, err)
		return
	}
	s.syncGauges()
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var in api.ProductInput
	if err := readJSON(w, r, &in); err != nil {
		writeError(w, fmt.Errorf("%w: %w", ErrInvalid, err))
		return
	}
	p, err := s.store.UpdateProduct(id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.store.DeleteProduct(id); err != nil {
		writeError(w, err)
		return
	}
	s.syncGauges()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Categories())
}

func (s *Server) createCategory(w http.ResponseWriter, r *http.Request) {
	var in api.CategoryInput
	if err := readJSON(w, r, &in); err != nil {
		writeError(w, fmt.Errorf("%w: %w", ErrInvalid, err))
		return
	}
	c, err := s.store.CreateCategory(in)
	if err != nil {
		writeError(w, err)
		return
	}
	s.syncGauges()
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var in api.CategoryInput
	if err := readJSON(w, r, &in); err != nil {
		writeError(w, fmt.Errorf("%w: %w", ErrInvalid, err))
		return
	}
	c, err := s.store.UpdateCategory(id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.store.DeleteCategory(id); err != nil {
		writeError(w, err)
		return
	}
	s.syncGauges()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listSales(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Sales())
}

func (s *Server) createSale(w http.ResponseWriter, r *http.Request) {
	var in api.SaleInput
	if err := readJSON(w, r, &in); err != nil {
		writeError(w, fmt.Errorf("%w: %w", ErrInvalid, err))
		return
	}
	sl, err := s.store.CreateSale(in)
	if err != nil {
		writeError(w, err)
		return
	}
	s.syncGauges()
	writeJSON(w, http.StatusCreated, sl)
}

func (s *Server) analytics(w http.ResponseWriter, r *http.Request) {
	report := chi.URLParam(r, "report")
	byCategory := strings.HasSuffix(report, "-category")

	switch report {
	case api.InventoryLevelsProduct, api.InventoryLevelsCategory:
		writeJSON(w, http.StatusOK, s.store.InventoryLevels(byCategory))
	case api.RevenueByProduct, api.RevenueByCategory:
		writeJSON(w, http.StatusOK, s.store.Revenues(byCategory))
	case api.ItemsSoldProduct, api.ItemsSoldCategory:
		writeJSON(w, http.StatusOK, s.store.ItemsSold(byCategory))
	case api.TotalRevenueReport:
		writeJSON(w, http.StatusOK, api.TotalRevenue{TotalRevenue: s.store.TotalRevenue()})
	case api.TotalItemsSoldReport:
		writeJSON(w, http.StatusOK, api.TotalItemsSold{TotalItemsSold: s.store.TotalItemsSold()})
	default:
		writeError(w, fmt.Errorf("%w: report %q", ErrNotFound, report))
	}
}

// ListenAndServe runs the backend until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.syncGauges()

	if s.visitors != nil {
		go func() {
			t := time.NewTicker(time.Minute)
			defer t.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-t.C:
					s.visitors.sweep(visitorTTL)
				}
			}
		}()
	}

	errs := make(chan error, 1)
	go func() {
		s.log.Info("mock backend listening", "addr", addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdown)
	}
}
