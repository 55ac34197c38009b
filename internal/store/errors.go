package store

import "errors"

// ErrNotFound est renvoyé quand un id ne correspond à aucune ligne
var ErrNotFound = errors.New("not found")
