package handlers

import (
	"fmt"
	"net/http"
	"strings"
)

// NewMethodNotAllowedHandler returns a handler answering 405 with an Allow header listing the given methods.
func NewMethodNotAllowedHandler(allowed ...string) http.HandlerFunc {
	allow := strings.Join(allowed, ", ")
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allow)
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprintf(w, "Method %s Not Allowed", r.Method)
	}
}
