package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pet_market/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Password",
			input:  []byte(`{"hello":"world","password":"abc123"}`),
			output: []byte(`{"hello":"world","password":"[MASKED]"}`),
		},
		{
			name:   "Password capital letter",
			input:  []byte(`{"hello":"world","Password":"abc123"}`),
			output: []byte(`{"hello":"world","Password":"[MASKED]"}`),
		},
		{
			name:   "Token",
			input:  []byte(`{"token":"123:abc","chat":1}`),
			output: []byte(`{"token":"[MASKED]","chat":1}`),
		},
		{
			name:   "Bot API path",
			input:  []byte(`POST /bot123456:AAE-x_y/sendMessage HTTP/1.1`),
			output: []byte(`POST /bot[MASKED]/sendMessage HTTP/1.1`),
		},
		{
			name:   "Auction payload untouched",
			input:  []byte(`{"name":"Golden Dragon","low_uuid":"a1b2"}`),
			output: []byte(`{"name":"Golden Dragon","low_uuid":"a1b2"}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}
