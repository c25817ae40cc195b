package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(
	sessionHandler *SessionHandler,
	convertHandler *ConvertHandler,
	translateHandler *TranslateHandler,
	sessionMiddleware func(http.Handler) http.Handler,
	allowedOrigins []string,
) http.Handler {
	router := mux.NewRouter()

	// Health check endpoint (no session required)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok","service":"pdf-md-translator"}`))
	}).Methods(http.MethodGet)

	router.HandleFunc("/", Index).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/sessions", sessionHandler.CreateSession).Methods(http.MethodPost)
	api.HandleFunc("/languages", translateHandler.Languages).Methods(http.MethodGet)

	// Session-scoped routes
	scoped := api.NewRoute().Subrouter()
	scoped.Use(sessionMiddleware)

	scoped.HandleFunc("/session", sessionHandler.GetSession).Methods(http.MethodGet)
	scoped.HandleFunc("/session", sessionHandler.DeleteSession).Methods(http.MethodDelete)
	scoped.HandleFunc("/session/credentials/{provider}", sessionHandler.SetCredential).Methods(http.MethodPut)
	scoped.HandleFunc("/session/credentials/{provider}", sessionHandler.ResetCredential).Methods(http.MethodDelete)

	scoped.HandleFunc("/convert", convertHandler.Convert).Methods(http.MethodPost)
	scoped.HandleFunc("/translate", translateHandler.Translate).Methods(http.MethodPost)

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			SessionHeader,
		},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
