package array

import (
	"slices"
	"testing"
)

func TestLength(t *testing.T) {
	if got := Length([]int{}); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
	if got := Length([]string{"a", "b", "c"}); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}

func TestAt(t *testing.T) {
	xs := []string{"a", "b", "c"}

	t.Run("valid index", func(t *testing.T) {
		v, ok := At(xs, 1).Get()
		if !ok || v != "b" {
			t.Errorf("expected Just(b), got %v", At(xs, 1))
		}
	})

	t.Run("index past end", func(t *testing.T) {
		if At(xs, 3).IsJust() {
			t.Error("expected Nothing for index == length")
		}
	})

	t.Run("negative index is always out of range", func(t *testing.T) {
		if At(xs, -1).IsJust() {
			t.Error("expected Nothing for negative index")
		}
	})

	t.Run("empty sequence", func(t *testing.T) {
		if At([]int{}, 0).IsJust() {
			t.Error("expected Nothing on empty sequence")
		}
	})
}

func TestAppend(t *testing.T) {
	xs := []int{1, 2}
	got := Append(xs, 3)

	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("expected [1 2 3], got %v", got)
	}
	if len(got) != len(xs)+1 {
		t.Errorf("expected length %d, got %d", len(xs)+1, len(got))
	}
	if !slices.Equal(xs, []int{1, 2}) {
		t.Errorf("input mutated: %v", xs)
	}

	// at(append(s, x), length(s)) == Present(x)
	v, ok := At(got, len(xs)).Get()
	if !ok || v != 3 {
		t.Errorf("expected appended element at index %d, got %v", len(xs), At(got, len(xs)))
	}
}

func TestAppendDoesNotAliasInput(t *testing.T) {
	xs := make([]int, 2, 8)
	xs[0], xs[1] = 1, 2

	got := Append(xs, 3)
	got[0] = 99

	if xs[0] != 1 {
		t.Errorf("append result aliases input backing array: %v", xs)
	}
}

func TestPrepend(t *testing.T) {
	t.Run("item leads the result", func(t *testing.T) {
		got := Prepend(0, []int{1, 2})
		if !slices.Equal(got, []int{0, 1, 2}) {
			t.Errorf("expected [0 1 2], got %v", got)
		}
	})

	t.Run("empty sequence", func(t *testing.T) {
		got := Prepend("only", []string{})
		if !slices.Equal(got, []string{"only"}) {
			t.Errorf("expected [only], got %v", got)
		}
	})

	t.Run("does not mutate input", func(t *testing.T) {
		xs := []int{1, 2}
		Prepend(0, xs)
		if !slices.Equal(xs, []int{1, 2}) {
			t.Errorf("input mutated: %v", xs)
		}
	})
}

func TestConcat(t *testing.T) {
	t.Run("joins two sequences", func(t *testing.T) {
		got := Concat([]int{1, 2}, []int{3, 4, 5})
		if !slices.Equal(got, []int{1, 2, 3, 4, 5}) {
			t.Errorf("expected [1 2 3 4 5], got %v", got)
		}
	})

	t.Run("empty is left and right identity", func(t *testing.T) {
		xs := []int{1, 2, 3}
		if got := Concat(xs, []int{}); !slices.Equal(got, xs) {
			t.Errorf("expected %v, got %v", xs, got)
		}
		if got := Concat([]int{}, xs); !slices.Equal(got, xs) {
			t.Errorf("expected %v, got %v", xs, got)
		}
	})
}

func TestSlice(t *testing.T) {
	xs := []int{0, 1, 2, 3, 4}

	tests := []struct {
		name       string
		start, end int
		want       []int
	}{
		{"plain window", 1, 3, []int{1, 2}},
		{"full range", 0, 5, []int{0, 1, 2, 3, 4}},
		{"negative start counts from end", -2, 5, []int{3, 4}},
		{"negative end counts from end", 0, -1, []int{0, 1, 2, 3}},
		{"both negative", -4, -2, []int{1, 2}},
		{"start past end of sequence", 7, 9, []int{}},
		{"end before start", 3, 1, []int{}},
		{"start equals end", 2, 2, []int{}},
		{"deeply negative start clamps to zero", -100, 2, []int{0, 1}},
		{"end past length clamps to length", 3, 100, []int{3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slice(xs, tt.start, tt.end)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Slice(xs, %d, %d) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}

	t.Run("empty input never panics", func(t *testing.T) {
		if got := Slice([]int{}, -3, 17); len(got) != 0 {
			t.Errorf("expected empty, got %v", got)
		}
	})

	t.Run("result does not alias input", func(t *testing.T) {
		got := Slice(xs, 0, 3)
		got[0] = 99
		if xs[0] != 0 {
			t.Errorf("slice result aliases input: %v", xs)
		}
	})
}

func TestRange(t *testing.T) {
	tests := []struct {
		name         string
		lower, upper int
		want         []int
	}{
		{"ascending", 1, 10, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"descending", 10, 1, []int{10, 9, 8, 7, 6, 5, 4, 3, 2}},
		{"equal bounds", 5, 5, []int{}},
		{"negative span", -2, 2, []int{-2, -1, 0, 1}},
		{"descending across zero", 2, -2, []int{2, 1, 0, -1}},
		{"single ascending step", 0, 1, []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Range(tt.lower, tt.upper)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Range(%d, %d) = %v, want %v", tt.lower, tt.upper, got, tt.want)
			}
		})
	}
}
