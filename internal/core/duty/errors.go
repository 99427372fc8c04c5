package duty

import "errors"

var (
	ErrInvalidName      = errors.New("duty: invalid person name")
	ErrInvalidRank      = errors.New("duty: invalid rank")
	ErrInvalidDutyTitle = errors.New("duty: invalid duty title")
	ErrInvalidStartDate = errors.New("duty: invalid duty start date")
	ErrPersonNotFound   = errors.New("duty: no person exists with that name")
)
