package matching

import "testing"

func TestScore(t *testing.T) {
	cases := []struct {
		name     string
		distance float64
		want     float64
	}{
		{"exact match", 0, 100.0},
		{"distance one", 1, 50.0},
		{"distance three", 3, 25.0},
		{"rounds to two decimals", 0.5, 66.67},
		{"large distance", 99, 1.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Score(tc.distance); got != tc.want {
				t.Fatalf("Score(%v) = %v, want %v", tc.distance, got, tc.want)
			}
		})
	}
}

func TestScoreMonotonic(t *testing.T) {
	prev := Score(0)
	for _, d := range []float64{0.1, 0.5, 1, 2, 5, 10, 100} {
		s := Score(d)
		if s >= prev {
			t.Fatalf("Score(%v) = %v, not below previous %v", d, s, prev)
		}
		if s <= 0 || s > 100 {
			t.Fatalf("Score(%v) = %v, out of range", d, s)
		}
		prev = s
	}
}
