package router

import (
	"net/http"

	_ "pet-care-tracker/internal/docs"
	"pet-care-tracker/internal/domain/tracker"
	"pet-care-tracker/internal/middleware"
	"pet-care-tracker/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Options struct {
	// Opcional: si viene nil se arma un store sólo en memoria.
	Store *tracker.Store

	Logger  *zap.Logger
	Metrics *metrics.Metrics
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}
	store := opts.Store
	if store == nil {
		store = tracker.NewStore(tracker.WithLogger(log), tracker.WithMetrics(m))
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	tracker.RegisterRoutes(r, store)

	return r
}
