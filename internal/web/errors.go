package web

import (
	"errors"
	"net/http"

	"github.com/kaiobatista/roleta-neurocopa2025/internal/i18n"
	"github.com/kaiobatista/roleta-neurocopa2025/internal/wheel"
)

// noticeKey maps a wheel error to the message shown to the visitor.
func noticeKey(err error) string {
	switch {
	case errors.Is(err, wheel.ErrInvalidWeight):
		return i18n.KeyInvalidWeight
	case errors.Is(err, wheel.ErrInvalidLabel):
		return i18n.KeyInvalidLabel
	case errors.Is(err, wheel.ErrInvalidIndex):
		return i18n.KeyInvalidIndex
	case errors.Is(err, wheel.ErrEmptySequence):
		return i18n.KeyEmptyWheel
	case errors.Is(err, wheel.ErrSpinInProgress):
		return i18n.KeySpinInProgress
	case errors.Is(err, wheel.ErrUnknownPreset):
		return i18n.KeyUnknownPreset
	case errors.Is(err, wheel.ErrNotSpinning), errors.Is(err, wheel.ErrSpinMismatch):
		return i18n.KeyNoSpin
	default:
		return ""
	}
}

// statusFor maps a wheel error to an API status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, wheel.ErrEmptySequence),
		errors.Is(err, wheel.ErrInvalidWeight),
		errors.Is(err, wheel.ErrInvalidLabel),
		errors.Is(err, wheel.ErrInvalidIndex):
		return http.StatusUnprocessableEntity
	case errors.Is(err, wheel.ErrNotSpinning),
		errors.Is(err, wheel.ErrSpinMismatch),
		errors.Is(err, wheel.ErrSpinInProgress):
		return http.StatusConflict
	case errors.Is(err, wheel.ErrUnknownPreset):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// errorCode is the machine-readable name of a wheel error.
func errorCode(err error) string {
	switch {
	case errors.Is(err, wheel.ErrEmptySequence):
		return "empty_sequence"
	case errors.Is(err, wheel.ErrNotSpinning):
		return "not_spinning"
	case errors.Is(err, wheel.ErrSpinMismatch):
		return "spin_mismatch"
	case errors.Is(err, wheel.ErrSpinInProgress):
		return "spin_in_progress"
	default:
		return "internal"
	}
}
