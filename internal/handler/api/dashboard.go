package api

import (
	"github.com/labstack/echo/v4"

	"FinDash/internal/domain/models"
	"FinDash/internal/usecase"
	xhttp "FinDash/pkg/http"
)

// DashboardHandler serves the sentiment, news and macro panels.
type DashboardHandler struct {
	dash *usecase.DashboardService
}

func NewDashboardHandler(dash *usecase.DashboardService) *DashboardHandler {
	return &DashboardHandler{dash: dash}
}

func (h *DashboardHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/futures/:symbol/sentiment", h.Sentiment)
	g.GET("/news", h.News)

	m := g.Group("/macro")
	m.GET("/indicators", h.MacroIndicators)
	m.GET("/analysis", h.MacroAnalysis)
	m.GET("/news", h.MacroNews)
	m.GET("/dates", h.MacroDates)
}

func (h *DashboardHandler) Sentiment(c echo.Context) error {
	req := &models.SymbolRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	return xhttp.SuccessResponse(c, h.dash.Sentiment(c.Request().Context(), req.Symbol))
}

func (h *DashboardHandler) News(c echo.Context) error {
	req := &models.NewsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	return xhttp.SuccessResponse(c, h.dash.News(c.Request().Context(), req.Category))
}

func (h *DashboardHandler) MacroIndicators(c echo.Context) error {
	req := &models.MacroMonthRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	return xhttp.SuccessResponse(c, h.dash.MacroIndicators(c.Request().Context(), req.Month))
}

func (h *DashboardHandler) MacroAnalysis(c echo.Context) error {
	req := &models.MacroDateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	return xhttp.SuccessResponse(c, h.dash.MacroAnalysis(c.Request().Context(), req.Date))
}

func (h *DashboardHandler) MacroNews(c echo.Context) error {
	req := &models.MacroDateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	return xhttp.SuccessResponse(c, h.dash.MacroNews(c.Request().Context(), req.Date))
}

func (h *DashboardHandler) MacroDates(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.dash.MacroDates(c.Request().Context()))
}
