package qrcode

import (
	"fmt"

	goqrcode "github.com/skip2/go-qrcode"
)

// Grid is a square matrix of QR modules. True means dark.
type Grid interface {
	Side() int
	Get(row, col int) bool
}

// Matrix is an immutable Grid backed by rows of booleans.
type Matrix struct {
	rows [][]bool
}

// NewMatrix copies rows into a Matrix. Rows must form a square with an odd side
// between MinGridSide and MaxGridSide.
func NewMatrix(rows [][]bool) (*Matrix, error) {
	side := len(rows)
	if err := validateSide(side); err != nil {
		return nil, err
	}

	cp := make([][]bool, side)
	for i, row := range rows {
		if len(row) != side {
			return nil, fmt.Errorf("%w: row %d has %d modules, want %d", ErrInvalidGrid, i, len(row), side)
		}
		cp[i] = append([]bool(nil), row...)
	}
	return &Matrix{rows: cp}, nil
}

// Side returns the number of modules per row.
func (m *Matrix) Side() int {
	return len(m.rows)
}

// Get reports whether the module at (row, col) is dark.
// Out-of-range coordinates are light.
func (m *Matrix) Get(row, col int) bool {
	if row < 0 || col < 0 || row >= len(m.rows) || col >= len(m.rows) {
		return false
	}
	return m.rows[row][col]
}

// Level is the error correction level requested from an Encoder.
type Level int

const (
	LevelLow     Level = iota // ~7% recovery
	LevelMedium               // ~15% recovery
	LevelHigh                 // ~25% recovery
	LevelHighest              // ~30% recovery
)

// Encoder turns text into a module grid.
type Encoder interface {
	Encode(text string, level Level) (Grid, error)
}

// EncoderFunc adapts a function to the Encoder interface.
type EncoderFunc func(text string, level Level) (Grid, error)

// Encode calls f(text, level).
func (f EncoderFunc) Encode(text string, level Level) (Grid, error) {
	return f(text, level)
}

// SkipEncoder encodes text with github.com/skip2/go-qrcode.
type SkipEncoder struct{}

// Encode builds the QR symbol without its quiet zone; margins are added at render time.
func (SkipEncoder) Encode(text string, level Level) (Grid, error) {
	q, err := goqrcode.New(text, recoveryLevel(level))
	if err != nil {
		return nil, err
	}
	q.DisableBorder = true
	return NewMatrix(q.Bitmap())
}

func recoveryLevel(l Level) goqrcode.RecoveryLevel {
	switch l {
	case LevelLow:
		return goqrcode.Low
	case LevelMedium:
		return goqrcode.Medium
	case LevelHigh:
		return goqrcode.High
	default:
		return goqrcode.Highest
	}
}

// inPositionMarker reports whether (row, col) lies in one of the three 7x7 finder
// pattern zones. There is no zone in the bottom-right corner.
func inPositionMarker(row, col, side int) bool {
	const zone = 7
	top := row < zone
	left := col < zone
	return (top && left) || (top && col >= side-zone) || (row >= side-zone && left)
}
