package api

import (
	"time"

	"github.com/labstack/echo/v4"

	"FinDash/internal/domain/models"
	"FinDash/internal/services/history"
	"FinDash/internal/usecase"
	xhttp "FinDash/pkg/http"
	applogger "FinDash/pkg/logger"
	"FinDash/pkg/util"
)

// FuturesHandler serves snapshots, history and seasonal views.
type FuturesHandler struct {
	logger  *applogger.Logger
	futures *usecase.FuturesService
}

func NewFuturesHandler(logger *applogger.Logger, futures *usecase.FuturesService) *FuturesHandler {
	return &FuturesHandler{logger: logger.Component("api.futures"), futures: futures}
}

func (h *FuturesHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/symbols", h.Symbols)
	g.GET("/futures/:symbol", h.Snapshot)
	g.GET("/futures/:symbol/history", h.History)
	g.GET("/futures/:symbol/seasonal", h.Seasonal)
}

func (h *FuturesHandler) Snapshot(c echo.Context) error {
	req := &models.SymbolRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res := h.futures.Fetch(c.Request().Context(), req.Symbol)
	if res.IsFallback() {
		h.logger.Debug("serving fallback snapshot",
			applogger.String("symbol", res.Data.Symbol),
			applogger.String("reason", res.Reason),
		)
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return xhttp.SuccessResponse(c, res)
}

// History answers with a fresh synthetic series; an absent days means the default window.
func (h *FuturesHandler) History(c echo.Context) error {
	req := &models.HistoryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if c.QueryParam("days") == "" {
		req.Days = history.DefaultDays
	}
	return xhttp.SuccessResponse(c, h.futures.History(req.Symbol, req.Days))
}

func (h *FuturesHandler) Seasonal(c echo.Context) error {
	req := &models.SeasonalRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	date := h.futures.Now()
	if req.Date != "" {
		d, err := time.Parse(util.DateLayout, req.Date)
		if err != nil {
			return xhttp.AppErrorResponse(c, xhttp.BadRequestErrorf("invalid date %q", req.Date).WithError(err))
		}
		date = d
	}
	return xhttp.SuccessResponse(c, h.futures.Seasonal(req.Symbol, date))
}

func (h *FuturesHandler) Symbols(c echo.Context) error {
	symbols := h.futures.Symbols()
	return xhttp.ListResponse(c, symbols, int64(len(symbols)))
}
