package cascade

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrUndefinedChangeKind   = errors.New("undefined change kind")
)
