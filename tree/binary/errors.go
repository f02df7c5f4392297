package binary

import "errors"

// Errors returned by Tree operations. They are wrapped with the offending
// key, so compare with errors.Is.
var (
	// ErrAlreadyExists means Insert or AddToEnd found the key already in
	// the tree. The tree was not modified.
	ErrAlreadyExists = errors.New("key already exists")
	// ErrNotFound means Delete could not find the key. The tree was not
	// modified.
	ErrNotFound = errors.New("key not found")
	// ErrEmptyInput means AddToEnd was given an empty tree to graft.
	ErrEmptyInput = errors.New("nothing to add")
)
