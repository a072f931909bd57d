package apperror

import "errors"

var (
	ErrMatchFinished = errors.New("match is already finished")
	ErrMatchNotFound = errors.New("match not found")
	ErrNotYourTurn   = errors.New("it's not your turn")
)
