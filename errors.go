package srgb

import "errors"

var (
	// ErrInvalidCurve is returned when a curve has unusable constants.
	ErrInvalidCurve = errors.New("srgb: invalid curve")

	// ErrUnknownCurve is returned when a named curve is not registered.
	ErrUnknownCurve = errors.New("srgb: unknown curve")

	// ErrInvalidName is returned when a curve is registered without a name.
	ErrInvalidName = errors.New("srgb: invalid curve name")

	// ErrInvalidSize is returned for non-positive image dimensions.
	ErrInvalidSize = errors.New("srgb: invalid image size")
)
