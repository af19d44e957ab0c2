package domain

import "errors"

var (
	// ErrUnknownCity means the city key has no entry in the registry; no
	// network call was attempted.
	ErrUnknownCity = errors.New("unknown city")
	// ErrScheduleUnavailable covers every upstream failure mode: network
	// error, non-2xx status, malformed JSON. The cause is logged, not
	// returned.
	ErrScheduleUnavailable = errors.New("schedule unavailable")
	// ErrUnknownGroup means the requested group id is absent from the
	// fetched outage document.
	ErrUnknownGroup = errors.New("group not found in schedule")
	// ErrBadCallback means a callback payload could not be parsed into a
	// known interaction.
	ErrBadCallback = errors.New("malformed callback data")
)
