package saxo

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Wire types for the Saxo OpenAPI portfolio service.
// Field names follow the broker's PascalCase; encoding/json also accepts camelCase.

// PositionsResponse is the envelope of GET /port/v1/positions
type PositionsResponse struct {
	Count int                  `json:"__count"`
	Data  []IndividualPosition `json:"Data"`
}

// IndividualPosition is one position record
type IndividualPosition struct {
	NetPositionID    string           `json:"NetPositionId"`
	PositionID       string           `json:"PositionId"`
	PositionBase     PositionBase     `json:"PositionBase"`
	PositionView     *PositionView    `json:"PositionView,omitempty"`
	DisplayAndFormat DisplayAndFormat `json:"DisplayAndFormat"`
}

// PositionBase holds the static part of a position
type PositionBase struct {
	AccountID                  string            `json:"AccountId"`
	AccountKey                 string            `json:"AccountKey"`
	AssetType                  string            `json:"AssetType"`
	Uic                        int               `json:"Uic"`
	Amount                     float64           `json:"Amount"`
	OpenPrice                  decimal.Decimal   `json:"OpenPrice"`
	OpenPriceIncludingCosts    decimal.Decimal   `json:"OpenPriceIncludingCosts"`
	Status                     string            `json:"Status"`
	CorrelationKey             string            `json:"CorrelationKey"`
	CanBeClosed                bool              `json:"CanBeClosed"`
	ClientID                   string            `json:"ClientId"`
	CloseConversionRateSettled bool              `json:"CloseConversionRateSettled"`
	ExecutionTimeOpen          *time.Time        `json:"ExecutionTimeOpen,omitempty"`
	IsForceOpen                bool              `json:"IsForceOpen"`
	IsMarketOpen               bool              `json:"IsMarketOpen"`
	LockedByBackOffice         bool              `json:"LockedByBackOffice"`
	OpenBondPoolFactor         float64           `json:"OpenBondPoolFactor"`
	OptionsData                *OptionsData      `json:"OptionsData,omitempty"`
	RelatedOpenOrders          []json.RawMessage `json:"RelatedOpenOrders"`
	SourceOrderID              string            `json:"SourceOrderId"`
	ValueDate                  *time.Time        `json:"ValueDate,omitempty"`
}

// OptionsData is only present on option positions
type OptionsData struct {
	CanBeExercised  bool            `json:"CanBeExercised"`
	ExerciseStyle   string          `json:"ExerciseStyle"`
	ExpiryCut       string          `json:"ExpiryCut"`
	ExpiryDate      time.Time       `json:"ExpiryDate"`
	PutCall         string          `json:"PutCall"`
	SettlementStyle string          `json:"SettlementStyle"`
	Strike          decimal.Decimal `json:"Strike"`
}

// DisplayAndFormat carries presentation fields
type DisplayAndFormat struct {
	Currency                        string `json:"Currency"`
	Decimals                        int    `json:"Decimals"`
	Description                     string `json:"Description"`
	Format                          string `json:"Format"`
	StrikeDecimals                  int    `json:"StrikeDecimals"`
	StrikeFormat                    string `json:"StrikeFormat"`
	Symbol                          string `json:"Symbol"`
	UnderlyingInstrumentDescription string `json:"UnderlyingInstrumentDescription"`
}

// PositionView holds the dynamic (priced) part of a position. Not used for projection.
type PositionView struct {
	Bid                    *float64 `json:"Bid,omitempty"`
	Ask                    *float64 `json:"Ask,omitempty"`
	Mid                    *float64 `json:"Mid,omitempty"`
	CalculationReliability string   `json:"CalculationReliability,omitempty"`
}

// ErrorResponse is the body Saxo returns when it rejects a request
type ErrorResponse struct {
	Message    string              `json:"Message"`
	ModelState map[string][]string `json:"ModelState"`
	ErrorCode  string              `json:"ErrorCode"`
}
