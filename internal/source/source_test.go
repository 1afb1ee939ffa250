package source

import "testing"

func TestCellText(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want string
	}{
		{"string", String("hello"), "hello"},
		{"number integer", Number(42), "42"},
		{"number decimal", Number(7.5), "7.5"},
		{"empty", Empty(), ""},
		{"zero value", Cell{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cell.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		in   string
		want Cell
	}{
		{"", Empty()},
		{"   ", Empty()},
		{"hello", String("hello")},
		{"42", Number(42)},
		{" 7.5 ", Number(7.5)},
		{"-3", Number(-3)},
		{"A12", String("A12")},
		{"a@x.com", String("a@x.com")},
	}

	for _, tt := range tests {
		got := ParseCell(tt.in)
		if got.Kind != tt.want.Kind {
			t.Errorf("ParseCell(%q).Kind = %v, want %v", tt.in, got.Kind, tt.want.Kind)
			continue
		}
		if got.Kind == CellString && got.Str != tt.want.Str {
			t.Errorf("ParseCell(%q).Str = %q, want %q", tt.in, got.Str, tt.want.Str)
		}
		if got.Kind == CellNumber && got.Num != tt.want.Num {
			t.Errorf("ParseCell(%q).Num = %v, want %v", tt.in, got.Num, tt.want.Num)
		}
	}
}
