package middleware_test

import (
	"testing"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/require"

	"pet_market/internal/transport/bot/middleware"
)

func TestIsFromAdmin(t *testing.T) {
	const adminID = 42

	testCases := []struct {
		name     string
		update   telego.Update
		expected bool
	}{
		{
			name:     "Admin message",
			update:   telego.Update{Message: &telego.Message{From: &telego.User{ID: adminID}}},
			expected: true,
		},
		{
			name:   "Stranger message",
			update: telego.Update{Message: &telego.Message{From: &telego.User{ID: 7}}},
		},
		{
			name:   "Channel post without sender",
			update: telego.Update{Message: &telego.Message{}},
		},
		{
			name:     "Admin callback",
			update:   telego.Update{CallbackQuery: &telego.CallbackQuery{From: telego.User{ID: adminID}}},
			expected: true,
		},
		{
			name:   "Other update",
			update: telego.Update{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, middleware.IsFromAdmin(tc.update, adminID))
		})
	}
}
