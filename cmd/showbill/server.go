package main

import (
	"net/http"
	"strings"

	"showbill/internal/app/artists"
	"showbill/internal/app/shows"
	"showbill/internal/app/venues"
	"showbill/internal/directory"
	"showbill/internal/httpapi"
	"showbill/internal/middleware"
	"showbill/internal/store"
)

func newHTTPHandler(cfg Config, dataStore *store.Store) http.Handler {
	// Profile services
	artistSvc := artists.New(dataStore)
	venueSvc := venues.New(dataStore)

	// Show service (validates references through the profile services)
	showSvc := shows.New(dataStore, artistSvc, venueSvc)

	// Aggregated read views
	directorySvc := directory.New(dataStore)

	handler := httpapi.New(artistSvc, venueSvc, showSvc, directorySvc).Routes()
	handler = middleware.RequestLogging()(handler)
	handler = middleware.Recovery()(handler)

	return withCORS(cfg.AllowedOrigins, handler)
}

func withCORS(allowedOrigins []string, next http.Handler) http.Handler {
	originAllowed := func(origin string) bool {
		if len(allowedOrigins) == 0 || origin == "" {
			return false
		}
		for _, o := range allowedOrigins {
			if strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type")
			w.Header().Set("Access-Control-Max-Age", "3600")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
