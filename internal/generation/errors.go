package generation

import "errors"

// ErrNilProfile is returned when generation is called without a profile
var ErrNilProfile = errors.New("generation: profile is required")

// ErrNilTemplate is returned when generation is called without a template
var ErrNilTemplate = errors.New("generation: template is required")
