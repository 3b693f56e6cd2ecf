package scene

import "errors"

var (
	ErrUnknownScene    = errors.New("unknown scene")
	ErrUnknownMaterial = errors.New("unknown material")
	ErrInvalidMaterial = errors.New("invalid material")
	ErrInvalidSphere   = errors.New("invalid sphere")
	ErrInvalidPlane    = errors.New("invalid plane")
	ErrInvalidCamera   = errors.New("invalid camera")
	ErrInvalidSampling = errors.New("invalid sampling config")
)
