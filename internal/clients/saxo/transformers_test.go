package saxo

import (
	"errors"
	"testing"

	"github.com/aristath/spreadbook/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func optionRecord(id, key string) IndividualPosition {
	return IndividualPosition{
		PositionID: id,
		PositionBase: PositionBase{
			AssetType:               "StockOption",
			Amount:                  2,
			Status:                  "Open",
			CorrelationKey:          key,
			OpenPriceIncludingCosts: decimal.RequireFromString("1.25"),
			OptionsData: &OptionsData{
				Strike:  decimal.NewFromInt(100),
				PutCall: "Put",
			},
		},
		DisplayAndFormat: DisplayAndFormat{Symbol: "XYZ/20X25P100:xcbf"},
	}
}

func TestParseCorrelationKey(t *testing.T) {
	key, err := parseCorrelationKey("")
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, key)

	upper, err := parseCorrelationKey("AEFD9794-1863-4736-BDF0-B2BA2FF21654")
	require.NoError(t, err)
	lower, err := parseCorrelationKey("aefd9794-1863-4736-bdf0-b2ba2ff21654")
	require.NoError(t, err)
	assert.Equal(t, lower, upper)

	_, err = parseCorrelationKey("not-a-guid")
	assert.Error(t, err)
}

func TestTransformPositionToDomain_Option(t *testing.T) {
	pos, err := transformPositionToDomain(optionRecord("1", "25c8f0e8-f432-4ab2-8c6b-e351b282c42c"))
	require.NoError(t, err)

	opt, ok := pos.(domain.OptionPosition)
	require.True(t, ok)
	assert.Equal(t, "XYZ/20X25P100:xcbf", opt.Symbol)
	assert.Equal(t, domain.PutCallPut, opt.Option.PutCall)
	assert.True(t, opt.Option.Strike.Equal(decimal.NewFromInt(100)))
	assert.True(t, opt.OpenPriceIncludingCosts.Equal(decimal.RequireFromString("1.25")))
}

func TestTransformPositionToDomain_OptionWithBadKey(t *testing.T) {
	_, err := transformPositionToDomain(optionRecord("9", "zzz"))

	var malformed *domain.MalformedPositionError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "9", malformed.PositionID)
	assert.Contains(t, malformed.Reason, "invalid correlation key")
}

func TestTransformPositionToDomain_StockIgnoresBadKey(t *testing.T) {
	rec := IndividualPosition{
		PositionID:   "3",
		PositionBase: PositionBase{AssetType: "Stock", Status: "Open", CorrelationKey: "zzz"},
	}

	pos, err := transformPositionToDomain(rec)
	require.NoError(t, err)
	assert.IsType(t, domain.StockPosition{}, pos)
	assert.Equal(t, uuid.Nil, pos.Base().CorrelationKey)
}

func TestTransformPositionsToDomain_KeepsOrder(t *testing.T) {
	records := []IndividualPosition{
		optionRecord("a", "AEFD9794-1863-4736-BDF0-B2BA2FF21654"),
		{PositionID: "b", PositionBase: PositionBase{AssetType: "Stock", Status: "Open"}},
		optionRecord("c", "25c8f0e8-f432-4ab2-8c6b-e351b282c42c"),
	}

	positions, err := transformPositionsToDomain(records)
	require.NoError(t, err)
	require.Len(t, positions, 3)
	for i, want := range []string{"a", "b", "c"} {
		assert.Equal(t, want, positions[i].Base().PositionID)
	}
}

func TestTransformPositionsToDomain_FailsWholeBatch(t *testing.T) {
	broken := optionRecord("b", "AEFD9794-1863-4736-BDF0-B2BA2FF21654")
	broken.PositionBase.OptionsData = nil

	positions, err := transformPositionsToDomain([]IndividualPosition{
		optionRecord("a", "AEFD9794-1863-4736-BDF0-B2BA2FF21654"),
		broken,
	})
	assert.Nil(t, positions)

	var malformed *domain.MalformedPositionError
	assert.True(t, errors.As(err, &malformed))
}
