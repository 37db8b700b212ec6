package exception

import "errors"

// ErrRecordNotFound custom database error for failure to find record
var ErrRecordNotFound = errors.New("record not found")

// ErrInvalidKeymap returned when a keymap contains bindings that cannot be
// parsed as key combinations
var ErrInvalidKeymap = errors.New("invalid keymap")

// ErrUnsupportedFormat returned when a keymap file extension is not one of
// yaml, json or toml
var ErrUnsupportedFormat = errors.New("unsupported keymap file format")
