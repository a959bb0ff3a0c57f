package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Broker-agnostic position types
// The Saxo client converts its wire records into these before anything else sees them

// RawPosition is one broker-reported holding.
// The variants are StockPosition, OptionPosition and OtherPosition, held by value or by pointer.
// Use IsNilPosition and AsOption rather than asserting on a single form.
type RawPosition interface {
	// Base returns the fields shared by every holding
	Base() PositionBase
	isRawPosition()
}

// PositionBase holds the fields every broker position carries
type PositionBase struct {
	NetPositionID           string          // Broker net position identifier (e.g. "49862353__CO__S")
	PositionID              string          // Broker position identifier
	AssetType               AssetType       // Stock, StockOption, ...
	CorrelationKey          uuid.UUID       // Links legs opened by the same multi-leg order
	Amount                  float64         // Signed quantity: negative = short, positive = long
	OpenPrice               decimal.Decimal // Open price excluding costs
	OpenPriceIncludingCosts decimal.Decimal // Open price including transaction costs
	Status                  PositionStatus  // Open or Closed
	Symbol                  string          // Display symbol (e.g. "SPY/11N25C587:xcbf")
	Description             string          // Display description
	Currency                string          // Instrument currency (ISO 4217)
}

// StockPosition is a plain equity holding
type StockPosition struct {
	PositionBase
}

// OptionPosition is a stock option holding. The option detail is always present.
type OptionPosition struct {
	PositionBase
	Option OptionDetail
}

// OtherPosition is any holding whose asset type this service does not model
type OtherPosition struct {
	PositionBase
}

// OptionDetail describes the option contract behind an OptionPosition
type OptionDetail struct {
	Strike          decimal.Decimal
	Expiry          time.Time
	PutCall         PutCall
	ExerciseStyle   string // "American", "European"
	SettlementStyle string // "PhysicalDelivery", "CashSettled"
	CanBeExercised  bool
}

// Base implements RawPosition
func (p StockPosition) Base() PositionBase { return p.PositionBase }

// Base implements RawPosition
func (p OptionPosition) Base() PositionBase { return p.PositionBase }

// Base implements RawPosition
func (p OtherPosition) Base() PositionBase { return p.PositionBase }

func (StockPosition) isRawPosition()  {}
func (OptionPosition) isRawPosition() {}
func (OtherPosition) isRawPosition()  {}

// IsNilPosition reports whether p is nil or a nil pointer to one of the variants
func IsNilPosition(p RawPosition) bool {
	switch v := p.(type) {
	case nil:
		return true
	case *StockPosition:
		return v == nil
	case *OptionPosition:
		return v == nil
	case *OtherPosition:
		return v == nil
	}
	return false
}

// AsOption returns the option position held by p in either form
func AsOption(p RawPosition) (OptionPosition, bool) {
	switch v := p.(type) {
	case OptionPosition:
		return v, true
	case *OptionPosition:
		if v != nil {
			return *v, true
		}
	}
	return OptionPosition{}, false
}
