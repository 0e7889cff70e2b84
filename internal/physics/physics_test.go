package physics

import "testing"

func TestRectsOverlap(t *testing.T) {
	base := Rect{X: 10, Y: 10, W: 20, H: 20}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", base, true},
		{"contained", Rect{X: 15, Y: 15, W: 2, H: 2}, true},
		{"partial", Rect{X: 25, Y: 25, W: 10, H: 10}, true},
		{"touching right edge", Rect{X: 30, Y: 10, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 10, Y: 30, W: 5, H: 5}, false},
		{"far away", Rect{X: 100, Y: 100, W: 5, H: 5}, false},
		{"above", Rect{X: 10, Y: -12, W: 4, H: 12}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RectsOverlap(base, tt.other); got != tt.want {
				t.Errorf("RectsOverlap = %v, want %v", got, tt.want)
			}
			if got := tt.other.Overlaps(base); got != tt.want {
				t.Errorf("overlap should be symmetric, got %v", got)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	x, y := Rect{X: 10, Y: 20, W: 30, H: 40}.Center()
	if x != 25 || y != 40 {
		t.Errorf("Expected center (25,40), got (%v,%v)", x, y)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Expected 0, got %v", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Expected 10, got %v", got)
	}
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Expected 5, got %v", got)
	}
	if got := ClampInt(120, 0, 100); got != 100 {
		t.Errorf("Expected 100, got %d", got)
	}
	if got := ClampInt(-1, 0, 100); got != 0 {
		t.Errorf("Expected 0, got %d", got)
	}
}
