package api

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// allowedHeaders mirrors what the storefront embed sends on preflight
const allowedHeaders = "X-CSRF-Token, X-Requested-With, Accept, Accept-Version, Content-Length, Content-MD5, Content-Type, Date, X-Api-Version, X-Request-Id"

// Middleware applies the permissive cross-origin policy the storefront embed
// requires and tags every request with a correlation id. The tool is served
// from a different domain than the shop, so every route must answer
// preflight requests and allow any origin.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-Id", requestID)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		zap.S().Debugw("request received",
			"method", r.Method,
			"url", r.URL.Path,
			"requestId", requestID,
		)
		next.ServeHTTP(w, r)
	})
}
