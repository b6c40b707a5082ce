package api

import (
	"github.com/labstack/echo/v4"

	xhttp "FinDash/pkg/http"
)

// StateReporter exposes the upstream breaker state.
type StateReporter interface {
	State() string
}

type HealthHandler struct {
	upstream StateReporter
	symbols  func() []string
}

// NewHealthHandler accepts a nil upstream when no backend is configured.
func NewHealthHandler(upstream StateReporter, symbols func() []string) *HealthHandler {
	return &HealthHandler{upstream: upstream, symbols: symbols}
}

func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)
}

type healthStatus struct {
	Status   string `json:"status"`
	Upstream string `json:"upstream"`
	Symbols  int    `json:"symbols"`
}

// Health is always 200: fallback data keeps the service usable while the upstream is down.
func (h *HealthHandler) Health(c echo.Context) error {
	st := healthStatus{Status: "ok", Upstream: "none"}
	if h.upstream != nil {
		st.Upstream = h.upstream.State()
	}
	if h.symbols != nil {
		st.Symbols = len(h.symbols())
	}
	return xhttp.SuccessResponse(c, st)
}
