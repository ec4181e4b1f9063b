package life

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseGrid(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		rows, cols int
		population int
	}{
		{"single row", "0110", 1, 4, 2},
		{"trailing newline", "010\n111\n000\n", 3, 3, 4},
		{"blank lines skipped", "\n010\n\n111\n\n", 2, 3, 4},
		{"crlf", "10\r\n01\r\n", 2, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseGrid(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if g.Rows() != tt.rows || g.Cols() != tt.cols {
				t.Errorf("expected %dx%d, got %dx%d", tt.rows, tt.cols, g.Rows(), g.Cols())
			}
			if g.Population() != tt.population {
				t.Errorf("expected population %d, got %d", tt.population, g.Population())
			}
		})
	}
}

func TestParseGrid_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"empty", "", 0},
		{"whitespace only", "\n  \n\n", 0},
		{"ragged rows", "01\n111\n", 2},
		{"longer first row", "111\n01\n", 2},
		{"invalid character", "010\n1x1\n", 2},
		{"digit outside domain", "012\n", 1},
		{"inner space", "0 1\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGrid(strings.NewReader(tt.input))
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Line != tt.line {
				t.Errorf("expected line %d, got %d", tt.line, verr.Line)
			}
		})
	}
}

func TestFromStrings_Rejects(t *testing.T) {
	if _, err := FromStrings("01", "111"); !errors.Is(err, ErrValidation) {
		t.Errorf("ragged rows: expected ErrValidation, got %v", err)
	}
	if _, err := FromStrings(""); !errors.Is(err, ErrValidation) {
		t.Errorf("empty row: expected ErrValidation, got %v", err)
	}
}

func TestFormatGrid(t *testing.T) {
	g := mustGrid(t, "010", "111", "000")
	want := "010\n111\n000\n"
	if got := FormatGrid(g); got != want {
		t.Errorf("FormatGrid() = %q, want %q", got, want)
	}

	back, err := ParseGrid(strings.NewReader(FormatGrid(g)))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !back.Equal(g) {
		t.Error("formatted grid did not parse back to the same grid")
	}
}

func TestSaveLoadGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.txt")
	g, err := Random(7, 52, DefaultDensity, 7)
	if err != nil {
		t.Fatalf("random failed: %v", err)
	}

	if err := SaveGrid(path, g); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := LoadGrid(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !loaded.Equal(g) {
		t.Error("loaded grid differs from saved grid")
	}
}

func TestLoadGrid_Missing(t *testing.T) {
	_, err := LoadGrid(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if errors.Is(err, ErrValidation) {
		t.Error("missing file should not be reported as a validation error")
	}
}
