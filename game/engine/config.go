package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// GameConfig describes a starting layout loaded from JSON
type GameConfig struct {
	Name        string            `json:"name" yaml:"name" jsonschema:"minLength=1"`
	Description string            `json:"description" yaml:"description" jsonschema:"minLength=1"`
	Layout      []string          `json:"layout" yaml:"layout" jsonschema:"minItems=3,maxItems=25"`
	Legend      map[string]string `json:"legend,omitempty" yaml:"legend,omitempty"`
	Welcome     string            `json:"welcome,omitempty" yaml:"welcome,omitempty"`
}

// LayoutExtensions lists the file extensions a layout may be stored under, in
// lookup order
var LayoutExtensions = []string{".json", ".yaml", ".yml"}

// defaultWelcome is shown while the game is in progress and no jump has been made
const defaultWelcome = "Jump a potato over its neighbour into an empty hole. Leave one potato to win!"

// DefaultConfig returns the classic 7x7 cross with the centre hole empty
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Name:        "classic",
		Description: "English cross, 33 holes, centre empty",
		Layout: []string{
			"--ooo--",
			"--ooo--",
			"ooooooo",
			"ooo.ooo",
			"ooooooo",
			"--ooo--",
			"--ooo--",
		},
		Legend:  DefaultLegend(),
		Welcome: defaultWelcome,
	}
}

// DefaultLegend returns the layout character legend
func DefaultLegend() map[string]string {
	return map[string]string{
		string(OffBoardChar): OffBoard.String(),
		string(EmptyChar):    Empty.String(),
		string(OccupiedChar): Occupied.String(),
	}
}

// ValidateGameConfig validates a layout configuration. Every problem found is
// reported; use multierr.Errors to split the result.
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}

	var err error
	if config.Name == "" {
		err = multierr.Append(err, fmt.Errorf("config validation: name is required"))
	}
	if config.Description == "" {
		err = multierr.Append(err, fmt.Errorf("config validation: description is required"))
	}

	rows := len(config.Layout)
	if rows < MinBoardSize || rows > MaxBoardSize {
		err = multierr.Append(err, fmt.Errorf("config validation: layout must have between %d and %d rows, got %d", MinBoardSize, MaxBoardSize, rows))
	}
	if rows == 0 {
		return err
	}

	cols := len(config.Layout[0])
	if cols < MinBoardSize || cols > MaxBoardSize {
		err = multierr.Append(err, fmt.Errorf("config validation: layout must have between %d and %d columns, got %d", MinBoardSize, MaxBoardSize, cols))
	}

	empty, occupied := 0, 0
	for i, row := range config.Layout {
		if len(row) != cols {
			err = multierr.Append(err, fmt.Errorf("config validation: row %d must have %d characters, got %d", i+1, cols, len(row)))
		}
		for j, char := range row {
			switch char {
			case OffBoardChar:
			case EmptyChar:
				empty++
			case OccupiedChar:
				occupied++
			default:
				err = multierr.Append(err, fmt.Errorf("config validation: invalid character '%c' at row %d, col %d", char, i+1, j+1))
			}
		}
	}

	if empty == 0 {
		err = multierr.Append(err, fmt.Errorf("config validation: layout must contain at least one empty (%c) cell", EmptyChar))
	}
	if occupied == 0 {
		err = multierr.Append(err, fmt.Errorf("config validation: layout must contain at least one occupied (%c) cell", OccupiedChar))
	}

	if config.Legend != nil {
		for _, key := range []string{string(OffBoardChar), string(EmptyChar), string(OccupiedChar)} {
			expectedValue := DefaultLegend()[key]
			if value, ok := config.Legend[key]; !ok || value != expectedValue {
				err = multierr.Append(err, fmt.Errorf("config validation: legend['%s'] must be '%s', got '%s'", key, expectedValue, value))
			}
		}
	}

	return err
}

// ParseLayout converts layout rows into cell states
func ParseLayout(layout []string) ([][]CellState, error) {
	grid := make([][]CellState, len(layout))
	for r, row := range layout {
		grid[r] = make([]CellState, 0, len(row))
		for c, char := range row {
			switch char {
			case OffBoardChar:
				grid[r] = append(grid[r], OffBoard)
			case EmptyChar:
				grid[r] = append(grid[r], Empty)
			case OccupiedChar:
				grid[r] = append(grid[r], Occupied)
			default:
				return nil, fmt.Errorf("invalid layout character '%c' at (%d,%d)", char, r, c)
			}
		}
	}
	return grid, nil
}

// NewBoardFromConfig builds the starting board for a config
func NewBoardFromConfig(config *GameConfig) (*Board, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}
	grid, err := ParseLayout(config.Layout)
	if err != nil {
		return nil, err
	}
	return NewBoard(grid)
}

// IsLayoutFile reports whether name has one of the layout extensions
func IsLayoutFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, known := range LayoutExtensions {
		if ext == known {
			return true
		}
	}
	return false
}

// TrimLayoutExt strips a layout extension from name, if it has one
func TrimLayoutExt(name string) string {
	if IsLayoutFile(name) {
		return strings.TrimSuffix(name, filepath.Ext(name))
	}
	return name
}

func isYAML(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".yaml" || ext == ".yml"
}

// UnmarshalGameConfig decodes layout data read from filename: YAML for .yaml
// and .yml files, JSON otherwise. In strict mode unknown fields are errors.
// The result is not validated.
func UnmarshalGameConfig(filename string, data []byte, strict bool) (*GameConfig, error) {
	var config GameConfig

	if isYAML(filename) {
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(strict)
		if err := decoder.Decode(&config); err != nil {
			return nil, fmt.Errorf("failed to parse config file '%s': %w", filename, err)
		}
		return &config, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	if strict {
		decoder.DisallowUnknownFields()
	}
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filename, err)
	}
	return &config, nil
}

// LoadGameConfig loads a layout configuration from a JSON or YAML file
func LoadGameConfig(filename string) (*GameConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config, err := UnmarshalGameConfig(filename, data, false)
	if err != nil {
		return nil, err
	}

	if err := ValidateGameConfig(config); err != nil {
		return nil, fmt.Errorf("invalid config '%s': %w", filename, err)
	}

	return config, nil
}
