package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel kinds for API errors.
var (
	ErrEncode = errors.New("encode response failed")
)

// Fixed error messages.
const (
	MsgNotFound         = "Endpoint not found"
	MsgMethodNotAllowed = "Method not allowed"
)

// WrapKind tags err with an operation name and a sentinel kind.
func WrapKind(op string, kind, err error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}

// NotFound answers any unknown route with {"error":"Endpoint not found","status":"error"}.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, MsgNotFound)
}

// MethodNotAllowed answers a known route requested with an unsupported method.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}
