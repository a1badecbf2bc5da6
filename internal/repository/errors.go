package repository

import "errors"

// ErrStateChanged is returned by guarded updates that matched no row:
// the record left the expected state (or vanished) since it was read.
var ErrStateChanged = errors.New("record state changed")
