package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/simplestock/simplestock/internal/config"
	"github.com/simplestock/simplestock/internal/db"
	"github.com/simplestock/simplestock/internal/docs"
	"github.com/simplestock/simplestock/internal/health"
	"github.com/simplestock/simplestock/internal/httpx"
	"github.com/simplestock/simplestock/internal/items"
	"github.com/simplestock/simplestock/web"
)

// appPool es lo que la app necesita del pool: ping para readiness,
// queries para el repositorio y close al apagar.
type appPool interface {
	Ping(ctx context.Context) error
	Close()
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Hooks inyectables para poder testear main() sin red ni DB.
var (
	loadConfigFn = config.Load
	newPoolFn    = func(ctx context.Context, databaseURL string) (appPool, error) {
		return db.NewPool(ctx, databaseURL)
	}
	ensureSchemaFn = func(ctx context.Context, pool appPool) error {
		return db.EnsureSchema(ctx, pool)
	}
	listenAndServeFn = http.ListenAndServe
	logfFn           = log.Printf
	fatalf           = log.Fatal
)

type appDeps struct {
	loadConfig     func() (config.Config, error)
	newPool        func(ctx context.Context, databaseURL string) (appPool, error)
	ensureSchema   func(ctx context.Context, pool appPool) error
	listenAndServe func(addr string, handler http.Handler) error
	logf           func(format string, args ...any)
}

func main() {
	deps := appDeps{
		loadConfig:     loadConfigFn,
		newPool:        newPoolFn,
		ensureSchema:   ensureSchemaFn,
		listenAndServe: listenAndServeFn,
		logf:           logfFn,
	}

	if err := run(context.Background(), deps); err != nil {
		fatalf(err)
	}
}

func run(ctx context.Context, deps appDeps) error {
	cfg, err := deps.loadConfig()
	if err != nil {
		return err
	}

	pool, err := deps.newPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	// Sin tabla no hay servicio: fallar acá termina el proceso.
	if err := deps.ensureSchema(ctx, pool); err != nil {
		return err
	}

	router := buildRouter(pool)

	addr := ":" + cfg.Port
	deps.logf("listening on %s", addr)
	return deps.listenAndServe(addr, router)
}

func buildRouter(pool appPool) chi.Router {
	r := chi.NewRouter()

	// Middlewares base para trazabilidad y estabilidad.
	r.Use(httpx.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))

	// CORS abierto: el cliente de desarrollo puede correr en otro origen.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
	}))

	// Errores de routing se manejan a nivel router.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.Fail(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.Fail(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	healthHandler := health.New(pool)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	docs.RegisterRoutes(r)

	itemsHandler := items.NewHandler(items.NewService(items.NewRepository(pool)))
	r.Route("/api", func(api chi.Router) {
		items.RegisterRoutes(api, itemsHandler)
	})

	// Cliente embebido.
	r.Get("/", web.IndexHandler())
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.StaticFS()))))

	return r
}
