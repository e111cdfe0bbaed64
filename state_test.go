package cubetimer

import (
	"errors"
	"math/rand"
	"testing"
)

func TestPermutationParity(t *testing.T) {
	cases := []struct {
		perm []int
		want Parity
	}{
		{[]int{0, 1, 2, 3}, EvenParity},
		{[]int{1, 0, 2, 3}, OddParity},     // single transposition
		{[]int{1, 0, 3, 2}, EvenParity},    // two transpositions
		{[]int{1, 2, 0}, EvenParity},       // 3-cycle
		{[]int{3, 0, 1, 2}, OddParity},     // 4-cycle
		{[]int{0, 1, 2, 3, 4, 5, 6, 7}, EvenParity},
	}
	for _, c := range cases {
		if got := PermutationParity(c.perm); got != c.want {
			t.Errorf("PermutationParity(%v) = %v, want %v", c.perm, got, c.want)
		}
	}
}

func TestRandomStateInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		s := RandomState(rng)

		cornerSum := 0
		for _, o := range s.CornerOrient {
			if o < 0 || o > 2 {
				t.Fatalf("corner orientation out of range: %d", o)
			}
			cornerSum += o
		}
		if cornerSum%3 != 0 {
			t.Errorf("corner orientation sum %d not divisible by 3", cornerSum)
		}

		edgeSum := 0
		for _, o := range s.EdgeOrient {
			if o < 0 || o > 1 {
				t.Fatalf("edge orientation out of range: %d", o)
			}
			edgeSum += o
		}
		if edgeSum%2 != 0 {
			t.Errorf("edge orientation sum %d not divisible by 2", edgeSum)
		}

		if PermutationParity(s.CornerPerm[:]) != PermutationParity(s.EdgePerm[:]) {
			t.Errorf("corner parity %v != edge parity %v",
				PermutationParity(s.CornerPerm[:]), PermutationParity(s.EdgePerm[:]))
		}
	}
}

func TestRandomStatePermutationsAreValid(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		s := RandomState(rng)

		var cornerSeen [8]bool
		for _, p := range s.CornerPerm {
			if p < 0 || p > 7 || cornerSeen[p] {
				t.Fatalf("invalid corner permutation: %v", s.CornerPerm)
			}
			cornerSeen[p] = true
		}

		var edgeSeen [12]bool
		for _, p := range s.EdgePerm {
			if p < 0 || p > 11 || edgeSeen[p] {
				t.Fatalf("invalid edge permutation: %v", s.EdgePerm)
			}
			edgeSeen[p] = true
		}
	}
}

func TestSolvedStateEncodesToSolvedFacelets(t *testing.T) {
	facelets, err := SolvedState().Facelets()
	if err != nil {
		t.Fatalf("Facelets failed: %v", err)
	}
	if facelets != SolvedFacelets {
		t.Errorf("SolvedState encodes to %q, want %q", facelets, SolvedFacelets)
	}
}

func TestFaceletsProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 200; i++ {
		facelets, err := RandomState(rng).Facelets()
		if err != nil {
			t.Fatalf("Facelets failed: %v", err)
		}
		if len(facelets) != 54 {
			t.Fatalf("facelet string length = %d, want 54", len(facelets))
		}

		counts := map[rune]int{}
		for _, r := range facelets {
			counts[r]++
		}
		if len(counts) != 6 {
			t.Fatalf("expected 6 distinct symbols, got %d in %q", len(counts), facelets)
		}
		for _, face := range "URFDLB" {
			if counts[face] != 9 {
				t.Errorf("symbol %c appears %d times, want 9 (%q)", face, counts[face], facelets)
			}
		}
	}
}

func TestFaceletsCentersFixed(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	facelets, err := RandomState(rng).Facelets()
	if err != nil {
		t.Fatal(err)
	}
	for _, idx := range []int{4, 13, 22, 31, 40, 49} {
		if facelets[idx] != SolvedFacelets[idx] {
			t.Errorf("center cell %d = %c, want %c", idx, facelets[idx], SolvedFacelets[idx])
		}
	}
}

func TestFaceletsDeterministicForSeed(t *testing.T) {
	first, err := RandomState(rand.New(rand.NewSource(12345))).Facelets()
	if err != nil {
		t.Fatal(err)
	}
	second, err := RandomState(rand.New(rand.NewSource(12345))).Facelets()
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("same seed produced different states:\n%s\n%s", first, second)
	}
}

func TestFaceletsIncompleteEncodingDetected(t *testing.T) {
	// A corrupt permutation that sends two pieces to the same slot leaves
	// the abandoned slot's cells unwritten.
	s := SolvedState()
	s.CornerPerm[0] = 1 // both piece 0 and piece 1 target slot 1

	_, err := s.Facelets()
	if err == nil {
		t.Fatal("expected encoding failure for corrupt permutation")
	}
	if !errors.Is(err, ErrIncompleteEncoding) {
		t.Errorf("error should wrap ErrIncompleteEncoding, got %v", err)
	}
}
