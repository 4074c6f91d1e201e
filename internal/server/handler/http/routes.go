package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/Kurniawan20/effiework-sub000/internal/middleware"
)

// LoginRoute is the only route served without a bearer token.
const LoginRoute = "POST /api/auth/login"

// Handlers bundles the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Auth      *AuthHandler
	Assets    *AssetHandler
	Catalog   *CatalogHandler
	Transfers *TransferHandler
	Food      *FoodHandler
}

// NewRouter constructs the HTTP handler serving the API under /api.
//
// Middleware chain (applied in order):
//  1. RequestID, Recoverer
//  2. CORS for allowedOrigins
//  3. WithRequestLogging(logger)
//  4. AllowContentType("application/json") for requests with a body
//  5. BearerAuth on everything except LoginRoute
//
// Recoverer and AllowContentType answer with a {"message"} body like the
// handlers do.
func NewRouter(
	h Handlers,
	tokens middleware.TokenParser,
	allowedOrigins []string,
	logger *zap.Logger,
) http.Handler {
	rs := Responder{Log: logger}
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(rs.withJSONErrors(chiMiddleware.Recoverer))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           int((5 * time.Minute).Seconds()),
	}))
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(rs.withJSONErrors(chiMiddleware.AllowContentType("application/json")))
	r.Use(middleware.BearerAuth(tokens, LoginRoute))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		rs.message(w, http.StatusNotFound, "Resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		rs.message(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)
		r.Get("/auth/me", h.Auth.Me)
		r.Get("/users", h.Auth.ListUsers)

		r.Route("/assets", func(r chi.Router) {
			r.Get("/", h.Assets.List)
			r.Post("/", h.Assets.Create)
			r.Get("/my-assets", h.Assets.Mine)
			r.Get("/available-for-food", h.Assets.FoodEligible)
			r.Get("/{id}", h.Assets.Get)
			r.Put("/{id}", h.Assets.Update)
			r.Delete("/{id}", h.Assets.Delete)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", h.Catalog.ListCategories)
			r.Post("/", h.Catalog.CreateCategory)
			r.Get("/{id}", h.Catalog.GetCategory)
			r.Put("/{id}", h.Catalog.UpdateCategory)
			r.Delete("/{id}", h.Catalog.DeleteCategory)
		})
		r.Get("/branches", h.Catalog.ListBranches)
		r.Get("/departments", h.Catalog.ListDepartments)
		r.Get("/locations", h.Catalog.ListLocations)

		r.Route("/asset-transfers", func(r chi.Router) {
			r.Get("/", h.Transfers.List)
			r.Post("/", h.Transfers.Create)
			r.Get("/{id}", h.Transfers.Get)
			r.Patch("/{id}/status", h.Transfers.UpdateStatus)
		})

		r.Route("/food", func(r chi.Router) {
			r.Get("/ingredients", h.Food.ListIngredients)
			r.Post("/ingredients", h.Food.CreateIngredient)
			r.Get("/menu-items", h.Food.ListMenuItems)
			r.Post("/menu-items", h.Food.CreateMenuItem)
		})
	})

	return r
}

// withJSONErrors wraps a middleware that rejects requests with a bare
// status code. The wrapped handler keeps the original writer, so any status
// the middleware itself writes is rendered as a {"message"} body.
func (rs Responder) withJSONErrors(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			inner := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r)
			})
			mw(inner).ServeHTTP(&statusWriter{ResponseWriter: w, rs: rs}, r)
		})
	}
}

// statusWriter turns an error status into a JSON message and drops any
// body the middleware writes after it.
type statusWriter struct {
	http.ResponseWriter
	rs       Responder
	written  bool
	rendered bool
}

func (sw *statusWriter) WriteHeader(code int) {
	if sw.written {
		return
	}
	sw.written = true
	if code < http.StatusBadRequest {
		sw.ResponseWriter.WriteHeader(code)
		return
	}
	msg := http.StatusText(code)
	if code >= http.StatusInternalServerError {
		msg = "internal error"
	}
	sw.rendered = true
	sw.rs.message(sw.ResponseWriter, code, msg)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	if sw.rendered {
		return len(b), nil
	}
	sw.written = true
	return sw.ResponseWriter.Write(b)
}
