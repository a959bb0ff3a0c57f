// Package domain provides core domain models and types.
package domain

import (
	"encoding/json"
	"fmt"
)

// AssetType classifies a holding as reported by the broker
type AssetType string

const (
	// AssetTypeStock represents plain equity
	AssetTypeStock AssetType = "Stock"
	// AssetTypeStockOption represents an option contract on a stock
	AssetTypeStockOption AssetType = "StockOption"
)

// IsOption reports whether the asset type is an option contract
func (a AssetType) IsOption() bool {
	return a == AssetTypeStockOption
}

// PositionStatus is the lifecycle status of a broker position
type PositionStatus string

const (
	PositionStatusOpen   PositionStatus = "Open"
	PositionStatusClosed PositionStatus = "Closed"
)

// ParsePositionStatus validates a raw status value
func ParsePositionStatus(value string) (PositionStatus, error) {
	switch PositionStatus(value) {
	case PositionStatusOpen, PositionStatusClosed:
		return PositionStatus(value), nil
	}
	return "", fmt.Errorf("invalid position status %q: status must be either Open or Closed", value)
}

// UnmarshalJSON rejects anything but Open and Closed
func (s *PositionStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("position status must be a string: %w", err)
	}
	status, err := ParsePositionStatus(raw)
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// PutCall tells puts from calls
type PutCall string

const (
	PutCallPut  PutCall = "Put"
	PutCallCall PutCall = "Call"
)
