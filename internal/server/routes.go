package server

import (
	"encoding/json"
	"net/http"
	"runtime"
	"time"
)

// healthResponse is the body of the health endpoint.
type healthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// versionResponse is the body of the version endpoint.
type versionResponse struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func (s *Server) registerRoutes(mcpHandler http.Handler, version string) {
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, healthResponse{
			Status:    "healthy",
			Version:   version,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	})

	s.router.Get("/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, versionResponse{
			Name:      "tradelens",
			Version:   version,
			GoVersion: runtime.Version(),
			Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		})
	})

	s.router.Mount("/mcp", mcpHandler)
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(body)
}
