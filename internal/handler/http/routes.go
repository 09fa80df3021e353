package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the request pipeline. Every request passes the error
// boundary, tracing, security headers, metrics, compression and logging.
// Page requests then go through body parsing, the session and CSRF gate,
// template locals and identity resolution before reaching a route.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withErrorBoundary,
		h.withTraceID,
		withSecureHeaders,
		h.withMetrics,
		withGZip,
		h.withLogging,
		middleware.GetHead,
	)

	// assets and metrics skip the session gate
	if h.opts.StaticDir != "" {
		router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(h.opts.StaticDir))))
	}
	if h.opts.ImagesDir != "" {
		router.Handle("/images/*", http.StripPrefix("/images/", http.FileServer(http.Dir(h.opts.ImagesDir))))
	}
	router.Method(http.MethodGet, "/metrics", h.metrics.handler())
	router.Get("/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(
			h.stage(h.parseBody),
			h.withSession,
			h.withCSRF(),
			h.stage(h.templateLocals),
			h.stage(h.resolveIdentity),
		)

		// admin routes
		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)
			r.Get("/admin/add-product", h.handle(h.getAddProduct))
			r.Post("/admin/add-product", h.handle(h.postAddProduct))
			r.Get("/admin/products", h.handle(h.getAdminProducts))
			r.Post("/admin/delete-product", h.handle(h.postDeleteProduct))
		})

		// shop routes
		r.Get("/", h.handle(h.getIndex))
		r.Get("/products", h.handle(h.getProducts))
		r.Get("/products/{productId}", h.handle(h.getProduct))

		// auth routes
		r.Get("/login", h.handle(h.getLogin))
		r.With(h.limitLogin).Post("/login", h.handle(h.postLogin))
		r.Get("/signup", h.handle(h.getSignup))
		r.With(h.limitLogin).Post("/signup", h.handle(h.postSignup))
		r.Post("/logout", h.handle(h.postLogout))

		r.Get("/500", h.handle(h.getServerError))

		// an unsupported method gets the same page as an unknown path
		notFound := h.handle(h.getNotFound)
		r.NotFound(notFound)
		r.MethodNotAllowed(notFound)
	})

	return router
}

func (h *Handler) getNotFound(w http.ResponseWriter, r *http.Request) error {
	return ErrNotFound
}

func (h *Handler) getServerError(w http.ResponseWriter, r *http.Request) error {
	return h.render(w, r, http.StatusInternalServerError, viewServerError, page{Title: "Error", Path: "/500"})
}
