package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldClockState      = "clock-state"
	FieldCount           = "count"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldItemName        = "item-name"
	FieldNextTick        = "next-tick"
	FieldOperation       = "operation"
	FieldPreference      = "preference"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldSecondsLeft     = "seconds-left"
	FieldSequence        = "sequence"
	FieldSkill           = "skill"
	FieldStack           = "stack"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
)
