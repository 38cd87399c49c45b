package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"SkinScout/internal/analyzer"
	"SkinScout/internal/calculator"
	"SkinScout/internal/model"
)

// APIResponse is the JSON envelope for every API reply.
type APIResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// OpportunitiesRequest is the query of GET /api/opportunities. A max_price of
// zero means no cap.
type OpportunitiesRequest struct {
	Count    int     `query:"count" default:"5" validate:"min=1,max=25"`
	MaxPrice float64 `query:"max_price" validate:"gte=0"`
	Category string  `query:"category" validate:"omitempty,max=32"`
}

// SearchRequest is the query of GET /api/search.
type SearchRequest struct {
	Query    string  `query:"q" validate:"required,max=64"`
	Count    int     `query:"count" default:"5" validate:"min=1,max=25"`
	MaxPrice float64 `query:"max_price" validate:"gte=0"`
}

func (r *SearchRequest) normalize() { r.Query = strings.TrimSpace(r.Query) }

func (r *OpportunitiesRequest) normalize() { r.Category = strings.TrimSpace(r.Category) }

// OpportunitiesResponse carries a ranked result set.
type OpportunitiesResponse struct {
	Count             int                 `json:"count"`
	RealData          bool                `json:"real_data"`
	FallbackTriggered bool                `json:"fallback_triggered"`
	Regime            string              `json:"regime"`
	Summary           model.Summary       `json:"summary"`
	Opportunities     []model.Opportunity `json:"opportunities"`
}

type handler struct {
	engine Engine
}

func (h *handler) root(c echo.Context) error {
	return c.String(http.StatusOK, "CS2 Market Bot")
}

func (h *handler) health(c echo.Context) error {
	return dataResponse(c, http.StatusOK, map[string]string{
		"status": "ok",
		"regime": h.engine.Regime().Label(),
	})
}

func (h *handler) opportunities(c echo.Context) error {
	req := &OpportunitiesRequest{}
	if errs := bindAndValidate(c, req); errs != nil {
		return dataResponse(c, http.StatusBadRequest, errs)
	}
	res := h.engine.GetOpportunities(c.Request().Context(), req.Count, priceCap(req.MaxPrice), req.Category)
	return dataResponse(c, http.StatusOK, toResponse(res))
}

func (h *handler) search(c echo.Context) error {
	req := &SearchRequest{}
	if errs := bindAndValidate(c, req); errs != nil {
		return dataResponse(c, http.StatusBadRequest, errs)
	}
	res := h.engine.SearchOpportunities(c.Request().Context(), req.Query, req.Count, priceCap(req.MaxPrice))
	return dataResponse(c, http.StatusOK, toResponse(res))
}

func priceCap(p float64) *float64 {
	if p <= 0 {
		return nil
	}
	return &p
}

func toResponse(res analyzer.Result) OpportunitiesResponse {
	opps := res.Opportunities
	if opps == nil {
		opps = []model.Opportunity{}
	}
	return OpportunitiesResponse{
		Count:             len(opps),
		RealData:          res.RealData,
		FallbackTriggered: res.FallbackTriggered,
		Regime:            res.Regime.Label(),
		Summary:           calculator.Summarize(opps),
		Opportunities:     opps,
	}
}

func dataResponse(c echo.Context, status int, data any) error {
	return c.JSON(status, APIResponse{
		Status:  status,
		Message: http.StatusText(status),
		Data:    data,
	})
}
