// Package api exposes Braille transcription over HTTP.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'braille.api'
func tracer() tracing.Trace {
	return tracing.Select("braille.api")
}

// MaxBodyBytes limits the size of request bodies.
const MaxBodyBytes = 1 << 20

// RequestIDHeader carries the request ID in responses.
const RequestIDHeader = "X-Request-ID"

type ctxKey int

const requestIDKey ctxKey = 0

// NewRouter creates the HTTP routes of the service.
func NewRouter() *mux.Router {
	r := mux.NewRouter()
	r.Use(requestID)
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods("GET")
	r.HandleFunc("/v1/braille", TransliterateHandler).Methods("POST")
	r.HandleFunc("/v1/tables", ListTablesHandler).Methods("GET")
	r.HandleFunc("/v1/tables/{name}/lookup", LookupHandler).Methods("GET")
	return r
}

// requestID tags every request with an ID, reusing a client-supplied one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestID returns the ID of the request ctx belongs to.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
