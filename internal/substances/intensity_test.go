package substances

import "testing"

func TestIntensity(t *testing.T) {
	str := func(s string) *string { return &s }

	cases := []struct {
		in   *string
		want int
	}{
		{nil, Unknown},
		{str("none"), 0},
		{str("no"), 0},
		{str("1 beer"), 1},
		{str("half a bottle of wine"), 4},
		{str("1 bottle wine, 125 mg promethazin"), 8},
		{str("07.11.24, th:"), Unknown},
		{str("a mystery"), Unknown},
		{str("1 Beer"), Unknown},
	}

	for _, tc := range cases {
		if got := Intensity(tc.in); got != tc.want {
			t.Fatalf("Intensity(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestKnown(t *testing.T) {
	if !Known("wine") {
		t.Fatalf("Known(wine) = false, want true")
	}
	if Known("water") {
		t.Fatalf("Known(water) = true, want false")
	}
}
