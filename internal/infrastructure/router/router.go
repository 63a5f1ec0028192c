package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"flightboard-service/internal/usecase"
	"flightboard-service/pkg/logger"
)

// New builds the HTTP handler serving the dashboard payload alongside
// health and metrics endpoints. CORS is open to any origin: the dashboard
// is a browser app served from elsewhere.
func New(builder *usecase.ReportBuilder, log logger.Logger) http.Handler {
	r := chi.NewRouter()

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
		AllowedHeaders: []string{"*"},
		MaxAge:         900, // 15 mins
	})
	r.Use(c.Handler)

	r.Get("/api/data", dataHandler(builder, log))
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// dataHandler runs the pipeline and serves the three-part payload. A fatal
// pipeline failure yields a single error body and no partial data.
func dataHandler(builder *usecase.ReportBuilder, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		report, err := builder.BuildReport(req.Context())
		if err != nil {
			log.Error("Pipeline run failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"error": "Failed to fetch or process data from the source.",
			})
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
