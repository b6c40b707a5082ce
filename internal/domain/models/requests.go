package models

// Requests for dashboard HTTP endpoints. Defined in domain for consistency and reuse.

type SymbolRequest struct {
	Symbol string `param:"symbol" json:"symbol" validate:"required,max=16"`
}

type HistoryRequest struct {
	Symbol string `param:"symbol" json:"symbol" validate:"required,max=16"`
	// Days is only defaulted when the query omits it; days=0 asks for an empty window.
	Days int `query:"days" json:"days" validate:"gte=0,lte=3650"`
}

type SeasonalRequest struct {
	Symbol string `param:"symbol" json:"symbol" validate:"required,max=16"`
	Date   string `query:"date" json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type NewsRequest struct {
	Category string `query:"category" json:"category" default:"general" validate:"max=32"`
}

type MacroMonthRequest struct {
	Month string `query:"month" json:"month" validate:"omitempty,datetime=2006-01"`
}

type MacroDateRequest struct {
	Date string `query:"date" json:"date" validate:"omitempty,datetime=2006-01-02"`
}
