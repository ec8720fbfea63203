// Package service implements cookshow's domain rules on top of a storage.Store:
// name uniqueness per collection, recipe numbering and parsing, author
// resolution across chefs, viewers and participants, and the mapping of
// storage failures onto the ErrNotFound, ErrConflict, ErrInvalidArgument and
// ErrOperationFailed kinds.
package service
