package domain

import "errors"

// ErrNotFound is returned by repositories when no record has the given id.
// Update and delete paths treat it as a silent no-op; read paths surface it.
var ErrNotFound = errors.New("record not found")
