package study

import "testing"

func TestClampTotalMarks(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 50}, {5, 10}, {10, 10}, {75, 75}, {100, 100}, {500, 100},
	}
	for _, tt := range tests {
		if got := clampTotalMarks(tt.in); got != tt.want {
			t.Errorf("clampTotalMarks(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
