package portfolio

import (
	"context"
	"fmt"

	"github.com/aristath/spreadbook/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Service builds the option portfolio view from the broker's positions.
//
// It holds no state between calls and is safe for concurrent use.
// Errors from the gateway are returned unchanged.
type Service struct {
	gateway domain.PositionsGateway
	log     zerolog.Logger
}

// NewService creates a new portfolio service
func NewService(gateway domain.PositionsGateway, log zerolog.Logger) *Service {
	return &Service{
		gateway: gateway,
		log:     log.With().Str("service", "portfolio").Logger(),
	}
}

// Get fetches the positions once and projects them into multi-leg option positions
func (s *Service) Get(ctx context.Context) (*PortfolioView, error) {
	raw, err := s.gateway.GetPositions(ctx)
	if err != nil {
		return nil, err
	}

	view, err := Project(raw)
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Int("broker_positions", len(raw)).
		Int("positions", len(view.Positions)).
		Int("legs", view.LegCount()).
		Msg("Projected option portfolio")

	return &view, nil
}

// Project keeps the StockOption positions, groups them by correlation key and turns every group
// into a Position. Groups come out in order of first appearance, legs in input order.
// Anything else is dropped. A nil entry, or a StockOption without option detail, fails with
// *domain.MalformedPositionError.
func Project(raw []domain.RawPosition) (PortfolioView, error) {
	groups := newOrderedGroups[uuid.UUID, domain.RawPosition]()
	for i, p := range raw {
		if domain.IsNilPosition(p) {
			return PortfolioView{}, &domain.MalformedPositionError{Reason: fmt.Sprintf("nil position at index %d", i)}
		}
		base := p.Base()
		if !base.AssetType.IsOption() {
			continue
		}
		groups.Add(base.CorrelationKey, p)
	}

	view := PortfolioView{Positions: make([]Position, 0, groups.Len())}
	err := groups.Each(func(_ uuid.UUID, members []domain.RawPosition) error {
		legs := make([]Leg, 0, len(members))
		for _, m := range members {
			leg, err := NewLeg(m)
			if err != nil {
				return err
			}
			legs = append(legs, leg)
		}
		view.Positions = append(view.Positions, Position{Legs: legs})
		return nil
	})
	if err != nil {
		return PortfolioView{}, err
	}

	return view, nil
}

// NewLeg builds a Leg from an option position, given by value or by pointer.
// Any other variant fails with *domain.MalformedPositionError.
func NewLeg(p domain.RawPosition) (Leg, error) {
	if domain.IsNilPosition(p) {
		return Leg{}, &domain.MalformedPositionError{Reason: "nil position"}
	}

	opt, ok := domain.AsOption(p)
	if !ok {
		base := p.Base()
		return Leg{}, &domain.MalformedPositionError{
			PositionID: base.PositionID,
			AssetType:  base.AssetType,
			Reason:     "leg requires option detail",
		}
	}

	return Leg{
		Symbol:                  opt.Symbol,
		Strike:                  opt.Option.Strike,
		Amount:                  opt.Amount,
		OpenPriceIncludingCosts: opt.OpenPriceIncludingCosts,
		Status:                  opt.Status,
		CorrelationKey:          opt.CorrelationKey,
	}, nil
}
