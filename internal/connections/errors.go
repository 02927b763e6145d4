package connections

import "errors"

var (
	ErrConnectionNotFound = errors.New("connection not found; connect first")
)
