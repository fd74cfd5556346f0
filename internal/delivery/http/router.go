package http

import (
	"net/http"

	"mentecare-backend/internal/delivery/http/handler"
	"mentecare-backend/internal/delivery/http/middleware"
	"mentecare-backend/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Router struct {
	router              *mux.Router
	log                 *logrus.Logger
	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	professionalHandler *handler.ProfessionalHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	searchRateLimit     func(http.Handler) http.Handler
}

func NewRouter(
	log *logrus.Logger,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	professionalHandler *handler.ProfessionalHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	searchRateLimit func(http.Handler) http.Handler,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		log:                 log,
		authHandler:         authHandler,
		userHandler:         userHandler,
		professionalHandler: professionalHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		searchRateLimit:     searchRateLimit,
	}
}

func (r *Router) Setup() http.Handler {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/verify", r.authHandler.Verify).Methods(http.MethodGet)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// User routes (protected)
	users := api.PathPrefix("/users").Subrouter()
	users.Use(r.authMiddleware.Authenticate)
	users.HandleFunc("/profile", r.userHandler.GetProfile).Methods(http.MethodGet)
	users.HandleFunc("/profile", r.userHandler.UpdateProfile).Methods(http.MethodPut)
	users.HandleFunc("/change-password", r.userHandler.ChangePassword).Methods(http.MethodPut)
	users.HandleFunc("/deactivate", r.userHandler.Deactivate).Methods(http.MethodPost)
	users.HandleFunc("/activity", r.userHandler.ListActivity).Methods(http.MethodGet)
	users.HandleFunc("/{id}", r.userHandler.GetUser).Methods(http.MethodGet)

	r.registerProfessionalRoutes(api)

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})

	// Outermost first: request id, request log, CORS
	var h http.Handler = r.router
	h = r.corsMiddleware.Handle(h)
	h = middleware.RequestLogger(r.log)(h)
	h = middleware.RequestID(h)
	return h
}

// registerProfessionalRoutes mounts the public search surface and the
// owner-only profile routes. Static paths are registered before {id}.
func (r *Router) registerProfessionalRoutes(api *mux.Router) {
	public := api.PathPrefix("/professionals").Subrouter()

	var search http.Handler = http.HandlerFunc(r.professionalHandler.Search)
	if r.searchRateLimit != nil {
		search = r.searchRateLimit(search)
	}
	public.Handle("/search", search).Methods(http.MethodGet)

	public.HandleFunc("/specialties", r.professionalHandler.ListSpecialties).Methods(http.MethodGet)

	owner := public.PathPrefix("/user").Subrouter()
	owner.Use(r.authMiddleware.Authenticate)
	owner.HandleFunc("/{user_id}", r.professionalHandler.GetByUserID).Methods(http.MethodGet)
	owner.Handle("/{user_id}", middleware.RequireProfessional(http.HandlerFunc(r.professionalHandler.UpdateByUserID))).Methods(http.MethodPut)

	public.HandleFunc("/{id:[0-9]+}", r.professionalHandler.GetByID).Methods(http.MethodGet)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.Success(w, http.StatusOK, "MenteCare API is running", map[string]string{"status": "ok"})
}
