package service

import (
	"errors"
	"fmt"
)

// ErrNotFound matches every *NotFoundError via errors.Is.
var ErrNotFound = errors.New("not found")

// NotFoundError reports a mutation that targeted an id with no stored record.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

const (
	EntityBook   = "book"
	EntityWriter = "writer"
)

func bookNotFound(id int64) error {
	return &NotFoundError{Entity: EntityBook, ID: id}
}

func writerNotFound(id int64) error {
	return &NotFoundError{Entity: EntityWriter, ID: id}
}
