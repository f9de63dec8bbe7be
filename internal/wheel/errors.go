package wheel

import "errors"

var (
	ErrInvalidWeight  = errors.New("weight must be a positive number")
	ErrInvalidLabel   = errors.New("label must not be empty")
	ErrInvalidIndex   = errors.New("option index out of range")
	ErrEmptySequence  = errors.New("wheel has no options")
	ErrSpinInProgress = errors.New("wheel is spinning")
	ErrNotSpinning    = errors.New("no spin in progress")
	ErrSpinMismatch   = errors.New("spin does not match the one in progress")
	ErrUnknownPreset  = errors.New("unknown preset")
)
