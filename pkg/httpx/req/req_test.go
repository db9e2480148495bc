package req_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"pet_market/pkg/errcodes"
	"pet_market/pkg/httpx/req"
)

type copyRequest struct {
	UUID string `json:"uuid" validate:"required,max=8"`
}

func TestRead(t *testing.T) {
	testCases := []struct {
		name string
		body string
		uuid string
		ok   bool
	}{
		{name: "Valid", body: `{"uuid":"a1b2"}`, uuid: "a1b2", ok: true},
		{name: "Malformed", body: `{"uuid":`},
		{name: "Unknown field", body: `{"uuid":"a1b2","uid":"x"}`},
		{name: "Missing required", body: `{}`},
		{name: "Too long", body: `{"uuid":"0123456789"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			r := httptest.NewRequest(http.MethodPost, "/v1/copy", strings.NewReader(tc.body))

			var dest copyRequest

			err := req.Read(r, &dest)
			if tc.ok {
				rq.NoError(err)
				rq.Equal(tc.uuid, dest.UUID)

				return
			}

			rq.Error(err)
			rq.True(failure.IsInvalidArgumentError(err))
			rq.Equal(errcodes.ValidationError, failure.Code(err))
		})
	}
}
