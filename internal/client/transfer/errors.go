package transfer

import "errors"

// ErrImportFormat indicates a malformed import payload. The store is left unchanged.
var ErrImportFormat = errors.New("invalid import format")
