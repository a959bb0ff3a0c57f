package saxo

import (
	"fmt"

	"github.com/aristath/spreadbook/internal/domain"
	"github.com/google/uuid"
)

// transformPositionsToDomain converts wire records to domain positions, keeping broker order.
// A single malformed record fails the whole batch.
func transformPositionsToDomain(records []IndividualPosition) ([]domain.RawPosition, error) {
	positions := make([]domain.RawPosition, 0, len(records))
	for _, rec := range records {
		pos, err := transformPositionToDomain(rec)
		if err != nil {
			return nil, err
		}
		positions = append(positions, pos)
	}
	return positions, nil
}

func transformPositionToDomain(rec IndividualPosition) (domain.RawPosition, error) {
	assetType := domain.AssetType(rec.PositionBase.AssetType)

	status, err := domain.ParsePositionStatus(rec.PositionBase.Status)
	if err != nil {
		return nil, fmt.Errorf("position %s: %w", rec.PositionID, err)
	}

	correlationKey, keyErr := parseCorrelationKey(rec.PositionBase.CorrelationKey)

	base := domain.PositionBase{
		NetPositionID:           rec.NetPositionID,
		PositionID:              rec.PositionID,
		AssetType:               assetType,
		CorrelationKey:          correlationKey,
		Amount:                  rec.PositionBase.Amount,
		OpenPrice:               rec.PositionBase.OpenPrice,
		OpenPriceIncludingCosts: rec.PositionBase.OpenPriceIncludingCosts,
		Status:                  status,
		Symbol:                  rec.DisplayAndFormat.Symbol,
		Description:             rec.DisplayAndFormat.Description,
		Currency:                rec.DisplayAndFormat.Currency,
	}

	switch assetType {
	case domain.AssetTypeStockOption:
		// Option legs are grouped by correlation key, so it has to be usable
		if keyErr != nil {
			return nil, &domain.MalformedPositionError{
				PositionID: rec.PositionID,
				AssetType:  assetType,
				Reason:     keyErr.Error(),
			}
		}
		if rec.PositionBase.OptionsData == nil {
			return nil, &domain.MalformedPositionError{
				PositionID: rec.PositionID,
				AssetType:  assetType,
				Reason:     "option position has no OptionsData",
			}
		}
		return domain.OptionPosition{
			PositionBase: base,
			Option:       transformOptionDetail(*rec.PositionBase.OptionsData),
		}, nil
	case domain.AssetTypeStock:
		return domain.StockPosition{PositionBase: base}, nil
	default:
		return domain.OtherPosition{PositionBase: base}, nil
	}
}

func transformOptionDetail(od OptionsData) domain.OptionDetail {
	return domain.OptionDetail{
		Strike:          od.Strike,
		Expiry:          od.ExpiryDate,
		PutCall:         domain.PutCall(od.PutCall),
		ExerciseStyle:   od.ExerciseStyle,
		SettlementStyle: od.SettlementStyle,
		CanBeExercised:  od.CanBeExercised,
	}
}

// parseCorrelationKey returns uuid.Nil for an absent key
func parseCorrelationKey(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, nil
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid correlation key %q: %w", raw, err)
	}
	return key, nil
}
