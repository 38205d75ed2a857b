package glyph

import "testing"

func TestDefaultMetrics(t *testing.T) {
	f := Default()

	tests := []struct {
		text string
		size float64
		want int
	}{
		{"", 2, 0},
		{"A", 1, 7},
		{"HYPER DEMO!", 1, 77},
		{"HYPER DEMO!", 2, 154},
		{"HYPER DEMO!", 2.2, 169},
	}
	for _, tt := range tests {
		if got := f.Width(tt.text, tt.size); got != tt.want {
			t.Errorf("Width(%q, %v) = %d, want %d", tt.text, tt.size, got, tt.want)
		}
	}

	if got := f.LineHeight(1); got != 13 {
		t.Errorf("LineHeight(1) = %d, want 13", got)
	}
	if got := f.LineHeight(2); got != 26 {
		t.Errorf("LineHeight(2) = %d, want 26", got)
	}
	if got := f.Ascent(); got != 11 {
		t.Errorf("Ascent() = %d, want 11", got)
	}
}
