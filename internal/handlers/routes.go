package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"mindflow/internal/storage"
)

// Deps holds everything the routes need.
type Deps struct {
	Store    storage.Store
	Analyzer Analyzer
	Sender   Sender
	Logger   *zap.Logger
}

func NewRouter(deps Deps) http.Handler {
	entries := NewEntryHandler(deps.Store, deps.Analyzer, deps.Logger)
	dash := NewDashboardHandler(deps.Store, deps.Logger)
	analysis := NewAnalysisHandler(deps.Analyzer, deps.Sender, deps.Logger)
	users := NewUserHandler(deps.Store, deps.Logger)

	api := http.NewServeMux()
	api.HandleFunc("POST /api/users/sync", users.HandleSync)
	api.HandleFunc("POST /api/entries", entries.HandleCreateEntry)
	api.HandleFunc("GET /api/entries", entries.HandleGetEntries)
	api.HandleFunc("GET /api/entries/{id}", entries.HandleGetEntry)
	api.HandleFunc("GET /api/dashboard", dash.HandleDashboard)
	api.HandleFunc("POST /api/analysis", analysis.HandleAnalyze)
	api.HandleFunc("POST /api/send-analysis", analysis.HandleSendAnalysis)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/api/", RequireUser(api))

	return logRequests(deps.Logger, mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func logRequests(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("took", time.Since(start)))
	})
}
