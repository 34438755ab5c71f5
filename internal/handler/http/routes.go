package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.corsAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	// "/posts" and "/posts/" resolve to the same route
	router.Use(middleware.StripSlashes)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Get("/users", h.listUsers)
		r.Get("/posts", h.listPosts)
		r.Get("/posts/{postID}", h.getPost)
		r.Get("/posts/{postID}/comments", h.listComments)
		r.Get("/comments/{commentID}", h.getComment)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/me", h.me)
		r.Delete("/me", h.deleteMe)
		r.Post("/posts", h.createPost)
		r.Put("/posts/{postID}", h.updatePost)
		r.Delete("/posts/{postID}", h.deletePost)
		r.Post("/posts/{postID}/comments", h.createComment)
		r.Put("/comments/{commentID}", h.updateComment)
		r.Delete("/comments/{commentID}", h.deleteComment)
	})

	return router
}
