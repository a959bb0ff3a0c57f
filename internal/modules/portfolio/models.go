package portfolio

import (
	"github.com/aristath/spreadbook/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Leg is one option contract of a multi-leg position
type Leg struct {
	Symbol                  string
	Strike                  decimal.Decimal
	Amount                  float64 // Signed: negative = short
	OpenPriceIncludingCosts decimal.Decimal
	Status                  domain.PositionStatus
	CorrelationKey          uuid.UUID
}

// Position groups the legs opened by one multi-leg order.
// It always has at least one leg and all legs share a correlation key.
type Position struct {
	Legs []Leg
}

// CorrelationKey returns the key shared by the position's legs
func (p Position) CorrelationKey() uuid.UUID {
	if len(p.Legs) == 0 {
		return uuid.Nil
	}
	return p.Legs[0].CorrelationKey
}

// PortfolioView is the projected option portfolio, in order of first appearance at the broker
type PortfolioView struct {
	Positions []Position
}

// LegCount returns the total number of legs across all positions
func (v PortfolioView) LegCount() int {
	n := 0
	for _, p := range v.Positions {
		n += len(p.Legs)
	}
	return n
}
