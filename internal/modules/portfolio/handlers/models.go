package handlers

import "github.com/aristath/spreadbook/internal/modules/portfolio"

// Response documents for the portfolio endpoints.
// Decimals and UUIDs are rendered as strings so no precision is lost in either encoding.

// PositionsResponse is the body of GET /portfolio/positions
type PositionsResponse struct {
	Positions []PositionResponse `json:"positions" msgpack:"positions"`
}

// PositionResponse is one multi-leg position
type PositionResponse struct {
	CorrelationKey string        `json:"correlation_key" msgpack:"correlation_key"`
	Legs           []LegResponse `json:"legs" msgpack:"legs"`
}

// LegResponse is one option leg
type LegResponse struct {
	Symbol                  string  `json:"symbol" msgpack:"symbol"`
	Strike                  string  `json:"strike" msgpack:"strike"`
	Amount                  float64 `json:"amount" msgpack:"amount"`
	OpenPriceIncludingCosts string  `json:"open_price_including_costs" msgpack:"open_price_including_costs"`
	Status                  string  `json:"status" msgpack:"status"`
	CorrelationKey          string  `json:"correlation_key" msgpack:"correlation_key"`
}

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Error        string `json:"error" msgpack:"error"`
	BrokerStatus int    `json:"broker_status,omitempty" msgpack:"broker_status,omitempty"`
	ErrorCode    string `json:"error_code,omitempty" msgpack:"error_code,omitempty"`
	Message      string `json:"message,omitempty" msgpack:"message,omitempty"`
}

func newPositionsResponse(view *portfolio.PortfolioView) PositionsResponse {
	resp := PositionsResponse{Positions: make([]PositionResponse, 0, len(view.Positions))}
	for _, p := range view.Positions {
		legs := make([]LegResponse, 0, len(p.Legs))
		for _, l := range p.Legs {
			legs = append(legs, LegResponse{
				Symbol:                  l.Symbol,
				Strike:                  l.Strike.String(),
				Amount:                  l.Amount,
				OpenPriceIncludingCosts: l.OpenPriceIncludingCosts.String(),
				Status:                  string(l.Status),
				CorrelationKey:          l.CorrelationKey.String(),
			})
		}
		resp.Positions = append(resp.Positions, PositionResponse{
			CorrelationKey: p.CorrelationKey().String(),
			Legs:           legs,
		})
	}
	return resp
}
