package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *RemoteAPIError
		contains []string
	}{
		{
			name: "broker message",
			err: &RemoteAPIError{
				StatusCode: 400,
				Message:    "One or more properties of the request are invalid!",
				ErrorCode:  "InvalidModelState",
			},
			contains: []string{"status 400", "InvalidModelState", "properties of the request are invalid"},
		},
		{
			name:     "raw body when no message",
			err:      &RemoteAPIError{StatusCode: 503, Body: "upstream down"},
			contains: []string{"status 503", "upstream down"},
		},
		{
			name:     "unreachable",
			err:      &RemoteAPIError{URL: "http://127.0.0.1:1/port/v1/positions", Err: errors.New("connection refused")},
			contains: []string{"request to http://127.0.0.1:1/port/v1/positions failed", "connection refused"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range tt.contains {
				assert.Contains(t, tt.err.Error(), s)
			}
		})
	}
}

func TestRemoteAPIError_As(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	var err error = fmt.Errorf("get portfolio: %w", &RemoteAPIError{Err: cause})

	var apiErr *RemoteAPIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 0, apiErr.StatusCode)
	assert.ErrorIs(t, err, cause)
}

func TestCancelledError(t *testing.T) {
	cancelled := &CancelledError{Err: context.Canceled}
	assert.ErrorIs(t, cancelled, context.Canceled)
	assert.False(t, cancelled.DeadlineExceeded())
	assert.Contains(t, cancelled.Error(), "cancelled")

	timedOut := &CancelledError{Err: context.DeadlineExceeded}
	assert.ErrorIs(t, timedOut, context.DeadlineExceeded)
	assert.True(t, timedOut.DeadlineExceeded())
}

func TestMalformedPositionError(t *testing.T) {
	err := &MalformedPositionError{PositionID: "5023725059", AssetType: AssetTypeStockOption, Reason: "missing OptionsData"}
	assert.Equal(t, "malformed position 5023725059 (asset type StockOption): missing OptionsData", err.Error())
}
