package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/BackpackBot_Go/internal/handler"
)

func TestFormatFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Private Backpack",
			input:    "API error: " + handler.ErrMsgBackpackPrivateError,
			expected: MsgBackpackPrivate,
		},
		{
			name:     "Player Not Found",
			input:    "API error: " + handler.ErrMsgPlayerIdentityError,
			expected: MsgPlayerNotFound,
		},
		{
			name:     "Item Not Found",
			input:    "API error: " + handler.ErrMsgResourceNotFoundErr,
			expected: MsgItemNotFound,
		},
		{
			name:     "Schema Unusable Without Prefix",
			input:    handler.ErrMsgSchemaStatusError,
			expected: MsgSchemaUnavailable,
		},
		{
			name:     "Backpack Unusable",
			input:    "API error: " + handler.ErrMsgBackpackStatusError,
			expected: MsgBackpackUnreadable,
		},
		{
			name:     "Steam Down",
			input:    "API error: " + handler.ErrMsgUpstreamError,
			expected: MsgSteamDown,
		},
		{
			name:     "Generic Error",
			input:    "some random error",
			expected: "❌ some random error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFriendlyError(tt.input))
		})
	}
}
