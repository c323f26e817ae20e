package pagination_test

import (
	"testing"
	"time"

	"github.com/bizease/bizease_backend/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	docDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 3, 14, 9, 26, 53, 589793238, time.UTC)

	token := pagination.EncodeToken(docDate, createdAt)
	gotDate, gotCreated, err := pagination.DecodeToken(token)

	require.NoError(t, err)
	assert.True(t, gotDate.Equal(docDate))
	assert.True(t, gotCreated.Equal(createdAt))
}

func TestDecodeToken_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"not base64", "!!not-base64!!"},
		{"missing separator", "MjAyNS0wMy0xNFQwMDowMDowMFo="}, // base64 of a single timestamp
		{"garbage dates", "Z29vZHx0aW1lcw=="},                  // base64 of "good|times"
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := pagination.DecodeToken(tt.token)
			assert.Error(t, err)
		})
	}
}
