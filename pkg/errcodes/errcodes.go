package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Dashboard
	FetchFailed             failure.ErrorCode = "FetchFailed"             // analyze/search/status call failed
	StaleResponse           failure.ErrorCode = "StaleResponse"           // a newer fetch was issued meanwhile
	CopyFailed              failure.ErrorCode = "CopyFailed"              // clipboard write denied or unsupported
	InvalidAuctionReference failure.ErrorCode = "InvalidAuctionReference" // empty or placeholder uuid
	InvalidPreference       failure.ErrorCode = "InvalidPreference"
	InvalidRarity           failure.ErrorCode = "InvalidRarity"
	InvalidSortField        failure.ErrorCode = "InvalidSortField"
	PreferenceStoreFailed   failure.ErrorCode = "PreferenceStoreFailed"
)
