package clock

import "testing"

func TestClampDelta(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"tiny", 0.001, 0.001},
		{"nominal", 1.0 / 60, 1.0 / 60},
		{"upper bound kept", 0.1, 0.1},
		{"zero", 0, 1.0 / 60},
		{"negative", -0.5, 1.0 / 60},
		{"stall", 0.1001, 1.0 / 60},
		{"clock jump", 12, 1.0 / 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampDelta(tt.in); got != tt.want {
				t.Errorf("ClampDelta(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTick(t *testing.T) {
	c := New(1000)

	// Same reading as start: zero delta is clamped.
	d, e := c.Tick(1000)
	if d != 1.0/60 || e != 0 {
		t.Errorf("Tick(1000) = (%v, %v), want (1/60, 0)", d, e)
	}

	d, e = c.Tick(1020)
	if d != 0.02 || e != 0.02 {
		t.Errorf("Tick(1020) = (%v, %v), want (0.02, 0.02)", d, e)
	}

	// A long stall does not leak into the delta, but elapsed keeps counting.
	d, e = c.Tick(6020)
	if d != 1.0/60 || e != 5.02 {
		t.Errorf("Tick(6020) = (%v, %v), want (1/60, 5.02)", d, e)
	}

	// Clock going backwards.
	d, e = c.Tick(6000)
	if d != 1.0/60 || e != 5 {
		t.Errorf("Tick(6000) = (%v, %v), want (1/60, 5)", d, e)
	}
}
