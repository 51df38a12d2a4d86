package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withCORS)
	router.Use(withGZip)

	// must be set before mounting so sub-routers inherit them
	router.NotFound(routeNotFound)
	router.MethodNotAllowed(routeNotFound)

	router.Handle("/metrics", promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
		DisableCompression: true,
	}))

	if h.pathPrefix == "" {
		h.mountGateway(router)
	} else {
		router.Route(h.pathPrefix, h.mountGateway)
	}

	return router
}

func (h *Handler) mountGateway(r chi.Router) {
	r.Get("/", h.getBuildInfo)
	r.Get("/health", h.health)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Post("/", h.createUser)
		r.Get("/{id}", h.getUser)
		r.Patch("/{id}", h.updateUser)
		r.Delete("/{id}", h.deleteUser)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/signIn", h.signIn)
		r.Post("/request-reset-password", h.requestPasswordReset)
		r.Post("/reset-password", h.resetPassword)
	})

	r.Route("/2fa", func(r chi.Router) {
		r.Post("/generate-qr", h.generateQR)
		r.Post("/turn-on", h.turnOn2FA)
		r.Post("/authenticate", h.authenticate2FA)
	})
}
