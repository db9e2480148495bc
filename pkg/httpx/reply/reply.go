package reply

import (
	"context"
	"errors"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"pet_market/pkg/contextx"
	"pet_market/pkg/errcodes"
	"pet_market/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}

func (e *errorResponse) WithDefaultCode(code failure.ErrorCode) {
	if e.Code == "" {
		e.Code = code.String()
	}
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

// codedError is implemented by domain errors that carry their own code.
type codedError interface {
	error
	ErrorCode() failure.ErrorCode
}

//nolint:gochecknoglobals
var statusByCode = map[failure.ErrorCode]int{
	errcodes.ValidationError:         http.StatusBadRequest,
	errcodes.InvalidPreference:       http.StatusBadRequest,
	errcodes.InvalidRarity:           http.StatusBadRequest,
	errcodes.InvalidSortField:        http.StatusBadRequest,
	errcodes.InvalidAuctionReference: http.StatusBadRequest,
	errcodes.NotFound:                http.StatusNotFound,
	errcodes.FetchFailed:             http.StatusBadGateway,
	errcodes.CopyFailed:              http.StatusBadGateway,
	errcodes.TimeoutExceeded:         http.StatusGatewayTimeout,
}

func Error(ctx context.Context, w http.ResponseWriter, err error) {
	logger(ctx).Error("error", logx.Error(err))

	var coded codedError
	if errors.As(err, &coded) {
		statusCode, ok := statusByCode[coded.ErrorCode()]
		if !ok {
			statusCode = http.StatusInternalServerError
		}

		JSON(ctx, w, statusCode, errorResponse{
			Code:      coded.ErrorCode().String(),
			Message:   coded.Error(),
			SupportID: supportID(ctx),
		})

		return
	}

	response := errorResponse{
		Code:      failure.Code(err).String(),
		Message:   failure.Description(err),
		SupportID: supportID(ctx),
	}

	switch {
	case failure.IsInvalidArgumentError(err):
		response.WithDefaultCode(errcodes.ValidationError)
		JSON(ctx, w, http.StatusBadRequest, response)
	case failure.IsNotFoundError(err):
		response.WithDefaultCode(errcodes.NotFound)
		JSON(ctx, w, http.StatusNotFound, response)
	case failure.IsConflictError(err):
		JSON(ctx, w, http.StatusConflict, response)
	case failure.IsUnprocessableEntityError(err):
		JSON(ctx, w, http.StatusUnprocessableEntity, response)
	default:
		response.WithDefaultCode(errcodes.InternalServerError)
		JSON(ctx, w, http.StatusInternalServerError, response)
	}
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
