package life

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	deadChar  = '0'
	aliveChar = '1'
)

// ParseGrid reads a grid in the calendar text format: one row per line, each
// character '0' (dead) or '1' (alive). Blank lines are ignored. Rows of
// different length, any other character, or an input without rows is a
// ValidationError; nothing is coerced.
func ParseGrid(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	var (
		rows  [][]bool
		width int
		line  int
	)
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		if rows == nil {
			width = len(text)
		}
		if len(text) != width {
			return nil, &ValidationError{Line: line, Message: rowLengthMessage(len(text), width)}
		}
		row := make([]bool, width)
		for i := 0; i < len(text); i++ {
			switch text[i] {
			case aliveChar:
				row[i] = true
			case deadChar:
			default:
				return nil, &ValidationError{
					Line:    line,
					Message: fmt.Sprintf("column %d: invalid character %q, want '0' or '1'", i+1, text[i]),
				}
			}
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	if len(rows) == 0 {
		return nil, Invalid("grid input is empty")
	}
	return FromRows(rows)
}

// LoadGrid reads a grid file from disk.
func LoadGrid(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := ParseGrid(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// FormatGrid renders g in the format accepted by ParseGrid, with a trailing
// newline after every row.
func FormatGrid(g *Grid) string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r*g.cols+c] {
				sb.WriteByte(aliveChar)
			} else {
				sb.WriteByte(deadChar)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteGrid writes g to w in the calendar text format.
func WriteGrid(w io.Writer, g *Grid) error {
	_, err := io.WriteString(w, FormatGrid(g))
	return err
}

// SaveGrid writes g to path, replacing any existing file.
func SaveGrid(path string, g *Grid) error {
	return os.WriteFile(path, []byte(FormatGrid(g)), 0644)
}

func rowLengthMessage(got, want int) string {
	return fmt.Sprintf("row has %d cells, want %d", got, want)
}
