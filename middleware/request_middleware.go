package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

type contextKey string

const requestIDKey contextKey = "requestID"

// RequestIDHeader carries the request id back to the client.
const RequestIDHeader = "X-Request-ID"

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.wroteHeader {
		return
	}
	r.status = status
	r.wroteHeader = true
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	return r.ResponseWriter.Write(b)
}

// RequestLogger tags every request with a nanoid request id, logs one access
// line when it finishes and turns panics into a 500 response.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			id, err := gonanoid.New()
			if err != nil {
				log.Printf("RequestLogger: Failed to generate request id: %v", err)
			}
			requestID = id
		}
		w.Header().Set(RequestIDHeader, requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		defer func() {
			if p := recover(); p != nil {
				log.Printf("RequestLogger: panic serving %s %s request_id=%s: %v", r.Method, r.URL.Path, requestID, p)
				// a response already under way cannot be turned into a 500
				if !rec.wroteHeader {
					http.Error(rec, "Internal server error", http.StatusInternalServerError)
				}
			}
			log.Printf("%s %s status=%d duration=%s request_id=%s", r.Method, r.URL.Path, rec.status, time.Since(start), requestID)
		}()

		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		next.ServeHTTP(rec, r.WithContext(ctx))
	})
}

// RequestID returns the id RequestLogger attached to ctx.
func RequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok && id != ""
}
