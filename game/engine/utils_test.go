package engine

import "testing"

func TestCountCellState(t *testing.T) {
	grid := [][]CellState{
		{OffBoard, Occupied, OffBoard},
		{Occupied, Empty, Occupied},
	}

	if n := CountCellState(grid, Occupied); n != 3 {
		t.Errorf("Expected 3 occupied, got %d", n)
	}
	if n := CountCellState(grid, OffBoard); n != 2 {
		t.Errorf("Expected 2 off board, got %d", n)
	}
	if n := CountPlayableCells(grid); n != 4 {
		t.Errorf("Expected 4 playable, got %d", n)
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		input    string
		expected Position
		wantErr  bool
	}{
		{"1,3", pos(1, 3), false},
		{" (6,0) ", pos(6, 0), false},
		{"2, 4", pos(2, 4), false},
		{"-1,2", pos(-1, 2), false},
		{"13", Position{}, true},
		{"a,b", Position{}, true},
		{"1,2,3", Position{}, true},
		{"", Position{}, true},
	}

	for _, test := range tests {
		got, err := ParsePosition(test.input)
		if test.wantErr {
			if err == nil {
				t.Errorf("ParsePosition(%q): expected error", test.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePosition(%q): unexpected error %v", test.input, err)
			continue
		}
		if got != test.expected {
			t.Errorf("ParsePosition(%q): expected %s, got %s", test.input, test.expected, got)
		}
	}
}

func TestParseJump(t *testing.T) {
	expected := Jump{From: pos(1, 3), To: pos(3, 3)}

	for _, input := range []string{"1,3 3,3", "(1,3)->(3,3)", "1,3->3,3", expected.String()} {
		got, err := ParseJump(input)
		if err != nil {
			t.Errorf("ParseJump(%q): unexpected error %v", input, err)
			continue
		}
		if got != expected {
			t.Errorf("ParseJump(%q): expected %s, got %s", input, expected, got)
		}
	}

	for _, input := range []string{"1,3", "1,3 3,3 5,3", "1,3 x,3"} {
		if _, err := ParseJump(input); err == nil {
			t.Errorf("ParseJump(%q): expected error", input)
		}
	}
}
