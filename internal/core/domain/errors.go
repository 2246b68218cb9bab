package domain

import "errors"

var (
	ErrElectionNotFound       = errors.New("election not found")
	ErrPollingStationNotFound = errors.New("polling station not found")
	ErrInvalidID              = errors.New("invalid id")
	ErrInternal               = errors.New("internal server error")
)
