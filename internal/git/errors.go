package git

import "errors"

// Repository metadata errors
var (
	ErrNotRepository = errors.New("source folder is not a git repository")
	ErrNoOrigin      = errors.New("repository has no origin remote")
)
