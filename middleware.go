package limits

import (
	"fmt"
	"net/http"
	"strings"
)

var (
	_ http.Handler = &httpLimitHandler{}
	_ Extractor    = &httpHeaderExtractor{}
	_ Extractor    = staticExtractor("")
)

const (
	limitName  = "Limit-Name"
	limitState = "Limit-State"
)

// Extractor extracts a limit name from an HTTP request.
type Extractor interface {
	Extract(r *http.Request) (string, error)
}

type httpHeaderExtractor struct {
	headers []string
}

// Extract extracts values from HTTP headers to build the name.
func (h *httpHeaderExtractor) Extract(r *http.Request) (string, error) {
	values := make([]string, 0, len(h.headers))

	for _, key := range h.headers {
		// if we can't find a value for a header we should return an error
		if value := strings.TrimSpace(r.Header.Get(key)); value != "" {
			values = append(values, value)
		} else {
			return "", fmt.Errorf("header %v must have a value set", key)
		}
	}

	return strings.Join(values, "-"), nil
}

// NewHttpHeaderExtractor creates an Extractor that joins the given header values.
func NewHttpHeaderExtractor(headers ...string) Extractor {
	return &httpHeaderExtractor{headers: headers}
}

type staticExtractor string

func (s staticExtractor) Extract(*http.Request) (string, error) {
	return string(s), nil
}

// NewStaticExtractor creates an Extractor that always yields name.
func NewStaticExtractor(name string) Extractor {
	return staticExtractor(name)
}

// LimitHandlerConfig holds configuration for gating requests on a limit.
type LimitHandlerConfig struct {
	Extractor  Extractor
	Registry   *Registry
	DenyStatus int
}

type httpLimitHandler struct {
	handler http.Handler
	config  *LimitHandlerConfig
}

// NewHTTPLimitHandler wraps an existing http.Handler and only forwards requests
// while the extracted limit is truthy.
func NewHTTPLimitHandler(originalHandler http.Handler, config *LimitHandlerConfig) http.Handler {
	cfg := *config
	if cfg.DenyStatus == 0 {
		cfg.DenyStatus = http.StatusForbidden
	}
	return &httpLimitHandler{
		handler: originalHandler,
		config:  &cfg,
	}
}

// ServeHTTP evaluates the limit and forwards the request if it holds. Names
// that are not registered are denied without being added to the registry.
func (h *httpLimitHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name, err := h.config.Extractor.Extract(r)
	if err != nil {
		h.writeResponse(w, http.StatusBadRequest, "failed to extract limit name from request: %v", err)
		return
	}

	w.Header().Set(limitName, name)

	if !h.config.Registry.Exists(name) {
		w.Header().Set(limitState, Falsy.String())
		h.writeResponse(w, h.config.DenyStatus, "limit %v is not registered", name)
		return
	}

	state, err := h.config.Registry.State(h.config.Registry.Get(name))
	if err != nil {
		h.writeResponse(w, http.StatusInternalServerError, "failed to evaluate limit for request: %v", err)
		return
	}

	w.Header().Set(limitState, state.String())

	if state != Truthy {
		h.writeResponse(w, h.config.DenyStatus, "limit %v does not currently allow this request", name)
		return
	}

	h.handler.ServeHTTP(w, r)
}

func (h *httpLimitHandler) writeResponse(w http.ResponseWriter, status int, msg string, args ...interface{}) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(fmt.Sprintf(msg, args...))); err != nil {
		h.config.Registry.logger.Error("failed to write body to HTTP response", "error", err)
	}
}
