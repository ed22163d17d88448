package engine

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrIllegalMove = errors.New("illegal move")
)

// OutOfBoundsError reports a position outside the grid's declared extent
type OutOfBoundsError struct {
	Pos  Position
	Rows int
	Cols int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("position %s is out of bounds (rows 0-%d, cols 0-%d)", e.Pos, e.Rows-1, e.Cols-1)
}

func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// Rejection explains why a jump was refused
type Rejection string

const (
	RejectOutOfBounds         Rejection = "out_of_bounds"
	RejectNotAJump            Rejection = "not_a_jump"
	RejectOriginNotOccupied   Rejection = "origin_not_occupied"
	RejectNoPieceToJump       Rejection = "no_piece_to_jump"
	RejectDestinationNotEmpty Rejection = "destination_not_empty"
)

var rejectionText = map[Rejection]string{
	RejectOutOfBounds:         "position is out of bounds",
	RejectNotAJump:            "cells are not exactly two apart in a straight line",
	RejectOriginNotOccupied:   "there is no potato at the origin",
	RejectNoPieceToJump:       "there is no potato to jump over",
	RejectDestinationNotEmpty: "the destination is not an empty cell",
}

// IllegalMoveError reports a rejected jump. The board is left unchanged.
type IllegalMoveError struct {
	From   Position
	To     Position
	Reason Rejection
	Err    error
}

func (e *IllegalMoveError) Error() string {
	msg := fmt.Sprintf("illegal jump from %s to %s: %s", e.From, e.To, rejectionText[e.Reason])
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *IllegalMoveError) Is(target error) bool {
	return target == ErrIllegalMove
}

func (e *IllegalMoveError) Unwrap() error {
	return e.Err
}
