package markdown

import "testing"

func TestShift(t *testing.T) {
	cases := []struct {
		name              string
		sel               [4]int
		inserted, removed int
		want              [4]int
	}{
		{name: "insert same row", sel: [4]int{0, 0, 0, 5}, inserted: 2, want: [4]int{0, 2, 0, 7}},
		{name: "remove same row", sel: [4]int{0, 2, 0, 7}, removed: 2, want: [4]int{0, 0, 0, 5}},
		{name: "caret", sel: [4]int{1, 3, 1, 3}, inserted: 1, want: [4]int{1, 4, 1, 4}},
		{name: "multi row end untouched", sel: [4]int{0, 1, 2, 1}, inserted: 2, want: [4]int{0, 3, 2, 1}},
		{name: "clamps at zero", sel: [4]int{0, 1, 0, 3}, removed: 2, want: [4]int{0, 0, 0, 1}},
		{name: "normalizes", sel: [4]int{0, 5, 0, 0}, inserted: 1, want: [4]int{0, 1, 0, 6}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := rng(tc.sel[0], tc.sel[1], tc.sel[2], tc.sel[3])
			want := rng(tc.want[0], tc.want[1], tc.want[2], tc.want[3])
			if got := Shift(in, tc.inserted, tc.removed); got != want {
				t.Fatalf("Shift(%v,%d,%d)=%v, want %v", in, tc.inserted, tc.removed, got, want)
			}
		})
	}
}
