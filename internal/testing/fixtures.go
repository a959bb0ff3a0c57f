package testing

import (
	"time"

	"github.com/aristath/spreadbook/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SpyBullCallKey correlates the two legs of the SPY call spread fixture
var SpyBullCallKey = uuid.MustParse("25c8f0e8-f432-4ab2-8c6b-e351b282c42c")

var spyExpiry = time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC)

// ShortCall returns the short 587 leg of the SPY call spread under the given key
func ShortCall(key uuid.UUID) domain.OptionPosition {
	return domain.OptionPosition{
		PositionBase: domain.PositionBase{
			NetPositionID:           "49862353__CO__S",
			PositionID:              "5023725059",
			AssetType:               domain.AssetTypeStockOption,
			CorrelationKey:          key,
			Amount:                  -1,
			OpenPrice:               decimal.RequireFromString("13.95"),
			OpenPriceIncludingCosts: decimal.RequireFromString("13.9195"),
			Status:                  domain.PositionStatusOpen,
			Symbol:                  "SPY/11N25C587:xcbf",
			Description:             "SPDR S&P 500 ETF Trust Jul2025 587 C",
			Currency:                "USD",
		},
		Option: domain.OptionDetail{
			Strike:          decimal.NewFromInt(587),
			Expiry:          spyExpiry,
			PutCall:         domain.PutCallCall,
			ExerciseStyle:   "American",
			SettlementStyle: "PhysicalDelivery",
			CanBeExercised:  false,
		},
	}
}

// LongCall returns the long 586 leg of the SPY call spread under the given key
func LongCall(key uuid.UUID) domain.OptionPosition {
	return domain.OptionPosition{
		PositionBase: domain.PositionBase{
			NetPositionID:           "49862358__CO__L",
			PositionID:              "5023725057",
			AssetType:               domain.AssetTypeStockOption,
			CorrelationKey:          key,
			Amount:                  1,
			OpenPrice:               decimal.RequireFromString("14.64"),
			OpenPriceIncludingCosts: decimal.RequireFromString("14.6705"),
			Status:                  domain.PositionStatusOpen,
			Symbol:                  "SPY/11N25C586:xcbf",
			Description:             "SPDR S&P 500 ETF Trust Jul2025 586 C",
			Currency:                "USD",
		},
		Option: domain.OptionDetail{
			Strike:          decimal.NewFromInt(586),
			Expiry:          spyExpiry,
			PutCall:         domain.PutCallCall,
			ExerciseStyle:   "American",
			SettlementStyle: "PhysicalDelivery",
			CanBeExercised:  true,
		},
	}
}

// StockHolding returns a plain equity position
func StockHolding(symbol string, amount float64) domain.StockPosition {
	return domain.StockPosition{
		PositionBase: domain.PositionBase{
			NetPositionID:           symbol + "__ST",
			PositionID:              "6" + symbol,
			AssetType:               domain.AssetTypeStock,
			Amount:                  amount,
			OpenPrice:               decimal.RequireFromString("512.30"),
			OpenPriceIncludingCosts: decimal.RequireFromString("512.35"),
			Status:                  domain.PositionStatusOpen,
			Symbol:                  symbol,
			Currency:                "USD",
		},
	}
}

// SpyBullCall returns both legs of the SPY call spread in broker order
func SpyBullCall() []domain.RawPosition {
	return []domain.RawPosition{ShortCall(SpyBullCallKey), LongCall(SpyBullCallKey)}
}
