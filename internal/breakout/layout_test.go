package breakout

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
)

func TestParseLayout(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Layout
	}{
		{"trailing space and blank rows", ".--.\r\n-..-  \n\n.--.\n\n\n", Layout{".--.", "-..-", "", ".--."}},
		{"hash is an empty cell", "#--\n.-", Layout{"#--", ".-"}},
		{"leading hash row", "# castle\n-", Layout{"# castle", "-"}},
		{"only blank lines", "\n\n", Layout{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			layout, err := ParseLayoutString(tc.text)
			if err != nil {
				t.Fatalf("ParseLayoutString() failed: %v", err)
			}
			if !reflect.DeepEqual(layout, tc.expected) {
				t.Errorf("ParseLayoutString() = %q, expected %q", layout, tc.expected)
			}
		})
	}
}

func TestParseLayoutKeepsRowPositions(t *testing.T) {
	layout, err := ParseLayoutString("#--\n.-")
	if err != nil {
		t.Fatalf("ParseLayoutString() failed: %v", err)
	}

	l := NewLevel(testGeometry, core.ColorRed)
	blocks := l.Load(layout)

	expected := []core.Rect{
		core.NewRect(0, 0, 60, 14),
		core.NewRect(61, 0, 60, 14),
		core.NewRect(61, 15, 60, 14),
	}
	if len(blocks) != len(expected) {
		t.Fatalf("Load() produced %d blocks, expected %d", len(blocks), len(expected))
	}
	for i, b := range blocks {
		if b.Rect() != expected[i] {
			t.Errorf("block %d rect = %+v, expected %+v", i, b.Rect(), expected[i])
		}
	}
}

func TestLayoutSizeAndCount(t *testing.T) {
	layout := Layout(config.DefaultLayout)
	rows, cols := layout.Size()
	if rows != 34 || cols != 10 {
		t.Errorf("Size() = (%d, %d), expected (34, 10)", rows, cols)
	}
	if layout.Count() != 99 {
		t.Errorf("Count() = %d, expected 99", layout.Count())
	}
}

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name    string
		layout  Layout
		wantErr string
	}{
		{"default fits", Layout(config.DefaultLayout), ""},
		{"empty", Layout{}, "no blocks"},
		{"no markers", Layout{"....", "...."}, "no blocks"},
		{"too wide", Layout{strings.Repeat("-", 11)}, "columns wide"},
		{"too tall", Layout(append(make([]string, 40), "-")), "rows tall"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.layout.Validate(10, 40)
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.wantErr)
			}
		})
	}
}

func TestLayoutString(t *testing.T) {
	layout := Layout{".-", "-."}
	if layout.String() != ".-\n-." {
		t.Errorf("String() = %q, expected %q", layout.String(), ".-\n-.")
	}
}
