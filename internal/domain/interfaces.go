package domain

import "context"

// PositionsGateway fetches the raw positions of the configured broker account.
// Implementations issue a single request per call and never retry.
type PositionsGateway interface {
	// GetPositions returns the positions in broker order.
	// Errors are *RemoteAPIError, *MalformedPositionError or *CancelledError.
	GetPositions(ctx context.Context) ([]RawPosition, error)
}
