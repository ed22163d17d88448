package engine

// Midpoint returns the cell jumped over when moving from origin to dest.
// ok is false unless the two cells are exactly two apart along one axis.
func Midpoint(origin, dest Position) (Position, bool) {
	dRow := dest.Row - origin.Row
	dCol := dest.Col - origin.Col

	switch {
	case dCol == 0 && (dRow == 2 || dRow == -2):
	case dRow == 0 && (dCol == 2 || dCol == -2):
	default:
		return Position{}, false
	}

	return Position{Row: origin.Row + dRow/2, Col: origin.Col + dCol/2}, true
}

// checkJump returns the reason a jump is illegal, or "" if it is legal
func (b *Board) checkJump(origin, dest Position) (Rejection, error) {
	if !b.InBounds(origin) {
		return RejectOutOfBounds, &OutOfBoundsError{Pos: origin, Rows: b.rows, Cols: b.cols}
	}
	if !b.InBounds(dest) {
		return RejectOutOfBounds, &OutOfBoundsError{Pos: dest, Rows: b.rows, Cols: b.cols}
	}

	middle, ok := Midpoint(origin, dest)
	if !ok {
		return RejectNotAJump, nil
	}
	if b.at(origin) != Occupied {
		return RejectOriginNotOccupied, nil
	}
	if b.at(middle) != Occupied {
		return RejectNoPieceToJump, nil
	}
	if b.at(dest) != Empty {
		return RejectDestinationNotEmpty, nil
	}
	return "", nil
}

// IsLegalJump reports whether origin may jump to dest
func (b *Board) IsLegalJump(origin, dest Position) bool {
	reason, _ := b.checkJump(origin, dest)
	return reason == ""
}

// LegalJumpsFrom returns the destinations reachable from pos by one jump,
// in up, down, left, right order.
func (b *Board) LegalJumpsFrom(pos Position) []Position {
	if b.at(pos) != Occupied {
		return nil
	}

	var dests []Position
	for _, dir := range JumpDirections {
		dest := Position{Row: pos.Row + dir.DRow, Col: pos.Col + dir.DCol}
		if b.IsLegalJump(pos, dest) {
			dests = append(dests, dest)
		}
	}
	return dests
}

// HasAnyLegalMove reports whether the piece at pos can jump anywhere
func (b *Board) HasAnyLegalMove(pos Position) bool {
	if b.at(pos) != Occupied {
		return false
	}
	for _, dir := range JumpDirections {
		if b.IsLegalJump(pos, Position{Row: pos.Row + dir.DRow, Col: pos.Col + dir.DCol}) {
			return true
		}
	}
	return false
}

// MovablePieces returns every piece with at least one legal jump, row-major
func (b *Board) MovablePieces() []Position {
	var pieces []Position
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			pos := Position{Row: r, Col: c}
			if b.HasAnyLegalMove(pos) {
				pieces = append(pieces, pos)
			}
		}
	}
	return pieces
}

// CountLegalMovesRemaining counts pieces that can still jump
func (b *Board) CountLegalMovesRemaining() int {
	return len(b.MovablePieces())
}

// CountPieces counts occupied cells
func (b *Board) CountPieces() int {
	return CountCellState(b.cells, Occupied)
}

// Status derives the game status from the board
func (b *Board) Status() Status {
	if b.CountLegalMovesRemaining() > 0 {
		return Playing
	}
	if b.CountPieces() == 1 {
		return Won
	}
	return Lost
}

// applyJump performs the three-cell write. Nothing is written unless the
// jump is legal.
func (b *Board) applyJump(origin, dest Position) (Position, error) {
	reason, cause := b.checkJump(origin, dest)
	if reason != "" {
		return Position{}, &IllegalMoveError{From: origin, To: dest, Reason: reason, Err: cause}
	}

	middle, _ := Midpoint(origin, dest)
	b.cells[origin.Row][origin.Col] = Empty
	b.cells[middle.Row][middle.Col] = Empty
	b.cells[dest.Row][dest.Col] = Occupied
	return middle, nil
}
