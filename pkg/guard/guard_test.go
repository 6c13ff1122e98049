package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenDeterministic(t *testing.T) {
	first := Token("web-01.region1")
	second := Token("web-01.region1")

	assert.Equal(t, first, second, "token must be a pure function of the hostname")
	assert.Len(t, first, 10)
	assert.Regexp(t, "^[0-9a-f]{10}$", first)
}

func TestTokenVariesByHostname(t *testing.T) {
	assert.NotEqual(t, Token("web-01.region1"), Token("web-02.region1"))
}

func TestConfirm(t *testing.T) {
	hostname := "db-07.region2"
	token := Token(hostname)

	tests := []struct {
		name    string
		magic   string
		reason  string
		wantErr func(error) bool
	}{
		{
			name:   "correct token and reason",
			magic:  token,
			reason: "bad DIMM",
		},
		{
			name:    "wrong token",
			magic:   "aaaaaaaaaa",
			reason:  "bad DIMM",
			wantErr: IsBadConfirmationError,
		},
		{
			name:    "empty token",
			magic:   "",
			reason:  "bad DIMM",
			wantErr: IsBadConfirmationError,
		},
		{
			name:    "token for a different host",
			magic:   Token("db-08.region2"),
			reason:  "bad DIMM",
			wantErr: IsBadConfirmationError,
		},
		{
			name:    "missing reason",
			magic:   token,
			reason:  "",
			wantErr: IsMissingReasonError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Confirm("reboot", hostname, tt.magic, tt.reason)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, tt.wantErr(err), "unexpected error type: %v", err)
		})
	}
}

func TestConfirmTokenFromPreviousRun(t *testing.T) {
	// A token obtained in one invocation confirms any later invocation
	// against the same hostname.
	hostname := "cache-11.region1"
	saved := Token(hostname)

	require.NoError(t, Confirm("kdump", hostname, saved, "stuck kernel"))
}
