package rng

import (
	"math/rand"
	"testing"
)

func TestSeededDeterministic(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 1000; i++ {
		x, y := a.Float64(), b.Float64()
		if x != y {
			t.Fatalf("draw %d: %v != %v", i, x, y)
		}
	}
}

func TestSeededRange(t *testing.T) {
	for seed := uint32(0); seed < 50; seed++ {
		s := NewSeeded(seed)
		for i := 0; i < 500; i++ {
			v := s.Float64()
			if v < 0 || v >= 1 {
				t.Fatalf("seed=%d draw %d: %v outside [0,1)", seed, i, v)
			}
		}
	}
}

func TestSeededDiffersBySeed(t *testing.T) {
	a := NewSeeded(1).Float64()
	b := NewSeeded(2).Float64()
	if a == b {
		t.Errorf("seeds 1 and 2 produced the same first draw %v", a)
	}
}

func TestMathRandIsSource(t *testing.T) {
	var src Source = rand.New(rand.NewSource(7))
	if v := src.Float64(); v < 0 || v >= 1 {
		t.Errorf("unexpected draw %v", v)
	}
}

func TestFuncAdapter(t *testing.T) {
	calls := 0
	src := Func(func() float64 {
		calls++
		return 0.5
	})
	if got := Range(src, 10, 20); got != 15 {
		t.Errorf("Range = %v, want 15", got)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestIntHelpers(t *testing.T) {
	hi := Func(func() float64 { return 0.999999 })
	lo := Func(func() float64 { return 0 })
	cases := []struct {
		name string
		got  int
		want int
	}{
		{"Intn high", Intn(hi, 4), 3},
		{"Intn low", Intn(lo, 4), 0},
		{"Intn empty", Intn(hi, 0), 0},
		{"IntRange high", IntRange(hi, 2, 6), 6},
		{"IntRange low", IntRange(lo, 2, 6), 2},
		{"IntRange degenerate", IntRange(hi, 5, 5), 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %d, want %d", tc.got, tc.want)
			}
		})
	}
}

func TestShufflePermutes(t *testing.T) {
	s := NewSeeded(9)
	vals := []int{0, 1, 2, 3, 4, 5}
	Shuffle(s, len(vals), func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })
	seen := make(map[int]bool)
	for _, v := range vals {
		seen[v] = true
	}
	if len(seen) != 6 {
		t.Errorf("shuffle lost elements: %v", vals)
	}
}
