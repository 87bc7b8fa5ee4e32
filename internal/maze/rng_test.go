package maze

import "testing"

func TestSeededRandomRegressionVector(t *testing.T) {
	// First five draws for seed 12345. Any change here breaks every saved seed.
	want := []float64{
		0.9797282677609473,
		0.3067522644996643,
		0.484205421525985,
		0.817934412509203,
		0.5094283693470061,
	}

	rng := NewSeededRandom(12345)
	for i, w := range want {
		if got := rng.Next(); got != w {
			t.Errorf("draw %d: got %v, expected %v", i, got, w)
		}
	}
}

func TestSeededRandomNextIntVector(t *testing.T) {
	want := []int{97, 30, 48, 81, 50}

	rng := NewSeededRandom(12345)
	for i, w := range want {
		if got := rng.NextInt(100); got != w {
			t.Errorf("NextInt draw %d: got %d, expected %d", i, got, w)
		}
	}
}

func TestSeededRandomDeterminism(t *testing.T) {
	a := NewSeededRandom(987654321)
	b := NewSeededRandom(987654321)

	for i := 0; i < 1000; i++ {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("draw %d diverged: %v vs %v", i, x, y)
		}
	}
}

func TestSeededRandomRange(t *testing.T) {
	rng := NewSeededRandom(1)

	for i := 0; i < 10000; i++ {
		f := rng.Next()
		if f < 0 || f >= 1 {
			t.Fatalf("Next() = %v, outside [0, 1)", f)
		}
		n := rng.NextRange(3, 7)
		if n < 3 || n > 7 {
			t.Fatalf("NextRange(3, 7) = %d, outside [3, 7]", n)
		}
	}
}

func TestNextRangeCoversBothEnds(t *testing.T) {
	rng := NewSeededRandom(42)
	seen := make(map[int]bool)

	for i := 0; i < 1000; i++ {
		seen[rng.NextRange(1, 5)] = true
	}
	for v := 1; v <= 5; v++ {
		if !seen[v] {
			t.Errorf("NextRange(1, 5) never produced %d", v)
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	rng := NewSeededRandom(7)
	s := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	out := Shuffle(rng, s)
	if &out[0] != &s[0] {
		t.Error("Shuffle should permute in place and return the same slice")
	}

	seen := make(map[int]bool)
	for _, v := range s {
		seen[v] = true
	}
	if len(seen) != 10 {
		t.Errorf("Shuffle lost elements: %v", s)
	}
}

func TestShuffleDrawCount(t *testing.T) {
	// Shuffling n elements must consume exactly n-1 draws.
	shuffled := NewSeededRandom(99)
	Shuffle(shuffled, make([]int, 8))

	reference := NewSeededRandom(99)
	for i := 0; i < 7; i++ {
		reference.Next()
	}

	if a, b := shuffled.Next(), reference.Next(); a != b {
		t.Errorf("stream position after shuffle differs: %v vs %v", a, b)
	}
}

func TestShuffleEmptyAndSingle(t *testing.T) {
	rng := NewSeededRandom(5)
	before := *rng

	Shuffle(rng, []int{})
	Shuffle(rng, []int{42})

	if *rng != before {
		t.Error("shuffling zero or one element should not draw")
	}
}

func TestPickUsesOneDraw(t *testing.T) {
	items := []string{"a", "b", "c", "d"}

	rng := NewSeededRandom(2024)
	got := Pick(rng, items)

	ref := NewSeededRandom(2024)
	want := items[ref.NextInt(len(items))]

	if got != want {
		t.Errorf("Pick = %q, expected %q", got, want)
	}
	if rng.Next() != ref.Next() {
		t.Error("Pick should consume exactly one draw")
	}
}
