package cubetimer

import (
	"fmt"
	"math/rand"
)

// SolvedFacelets is the solved cube as a 54-character facelet string in
// URFDLB face order, nine stickers per face.
const SolvedFacelets = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

// Parity classifies a permutation as even or odd.
type Parity int

const (
	EvenParity Parity = 0
	OddParity  Parity = 1
)

func (p Parity) String() string {
	if p == EvenParity {
		return "even"
	}
	return "odd"
}

// cornerFacelets maps each corner piece to its three sticker positions in
// the facelet string, listed in solved order. Piece order: URF, UFL, ULB,
// UBR, DFR, DLF, DBL, DRB.
var cornerFacelets = [8][3]int{
	{8, 9, 20},   // URF (U9, R1, F3)
	{6, 18, 38},  // UFL (U7, F1, L3)
	{0, 36, 47},  // ULB (U1, L1, B3)
	{2, 45, 11},  // UBR (U3, B1, R3)
	{29, 26, 15}, // DFR (D3, F9, R7)
	{27, 44, 24}, // DLF (D1, L9, F7)
	{33, 53, 42}, // DBL (D7, B9, L7)
	{35, 17, 51}, // DRB (D9, R9, B7)
}

// edgeFacelets maps each edge piece to its two sticker positions. Piece
// order: UF, UR, UB, UL, FR, FL, BR, BL, DF, DR, DB, DL.
var edgeFacelets = [12][2]int{
	{7, 19},  // UF (U8, F2)
	{5, 10},  // UR (U6, R2)
	{1, 46},  // UB (U2, B2)
	{3, 37},  // UL (U4, L2)
	{23, 12}, // FR (F6, R4)
	{21, 41}, // FL (F4, L6)
	{48, 14}, // BR (B4, R6)
	{50, 39}, // BL (B6, L4)
	{28, 25}, // DF (D2, F8)
	{32, 16}, // DR (D6, R8)
	{34, 52}, // DB (D8, B8)
	{30, 43}, // DL (D4, L8)
}

// centerFacelets holds the six immovable center cells (U5, R5, F5, D5, L5, B5).
var centerFacelets = [6]int{4, 13, 22, 31, 40, 49}

// CubieState describes a full cube state at the piece level: where each of
// the 8 corners and 12 edges sits and how it is twisted or flipped.
// CubieState[i] conventions: CornerPerm[i] is the slot occupied by corner
// piece i, CornerOrient[i] its twist in {0,1,2}; likewise for edges with
// flips in {0,1}.
type CubieState struct {
	CornerPerm   [8]int
	CornerOrient [8]int
	EdgePerm     [12]int
	EdgeOrient   [12]int
}

// SolvedState returns the identity state: every piece in its home slot with
// zero orientation. It encodes to SolvedFacelets.
func SolvedState() CubieState {
	var s CubieState
	for i := range s.CornerPerm {
		s.CornerPerm[i] = i
	}
	for i := range s.EdgePerm {
		s.EdgePerm[i] = i
	}
	return s
}

// PermutationParity computes the parity of a permutation via cycle
// decomposition: follow each unvisited index through its image until the
// cycle closes; parity is (n - cycles) mod 2.
func PermutationParity(perm []int) Parity {
	n := len(perm)
	visited := make([]bool, n)
	cycles := 0
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		cycles++
		for j := i; !visited[j]; j = perm[j] {
			visited[j] = true
		}
	}
	return Parity((n - cycles) % 2)
}

// RandomState draws a uniformly random reachable cube state from rng.
//
// Corner and edge permutations are drawn independently; if their parities
// disagree the first two edge entries are swapped, which flips the edge
// parity by exactly one transposition. The last corner twist and edge flip
// are fixed so the orientation sums satisfy the group constraints
// (sum mod 3 == 0 for corners, sum mod 2 == 0 for edges), so no rejection
// sampling is needed.
func RandomState(rng *rand.Rand) CubieState {
	var s CubieState

	copy(s.CornerPerm[:], rng.Perm(8))
	copy(s.EdgePerm[:], rng.Perm(12))

	sum := 0
	for i := 0; i < 7; i++ {
		s.CornerOrient[i] = rng.Intn(3)
		sum += s.CornerOrient[i]
	}
	s.CornerOrient[7] = (3 - sum%3) % 3

	sum = 0
	for i := 0; i < 11; i++ {
		s.EdgeOrient[i] = rng.Intn(2)
		sum += s.EdgeOrient[i]
	}
	s.EdgeOrient[11] = (2 - sum%2) % 2

	if PermutationParity(s.CornerPerm[:]) != PermutationParity(s.EdgePerm[:]) {
		s.EdgePerm[0], s.EdgePerm[1] = s.EdgePerm[1], s.EdgePerm[0]
	}

	return s
}

// Facelets encodes the state as a 54-character facelet string.
//
// For each piece i sitting in slot t with orientation o, sticker k of the
// piece (read from SolvedFacelets) lands on sticker (k+o) mod w of the slot,
// where w is the number of stickers on the piece. Centers never move and are
// copied from SolvedFacelets.
//
// Every cell must be written exactly once; anything else means the sticker
// tables are defective and the error wraps ErrIncompleteEncoding.
func (s CubieState) Facelets() (string, error) {
	var facelets [54]byte

	for i := 0; i < 8; i++ {
		t := s.CornerPerm[i]
		o := s.CornerOrient[i]
		for k := 0; k < 3; k++ {
			facelets[cornerFacelets[t][(k+o)%3]] = SolvedFacelets[cornerFacelets[i][k]]
		}
	}

	for i := 0; i < 12; i++ {
		t := s.EdgePerm[i]
		o := s.EdgeOrient[i]
		for k := 0; k < 2; k++ {
			facelets[edgeFacelets[t][(k+o)%2]] = SolvedFacelets[edgeFacelets[i][k]]
		}
	}

	for _, idx := range centerFacelets {
		facelets[idx] = SolvedFacelets[idx]
	}

	var missing []int
	for i, b := range facelets {
		if b == 0 {
			missing = append(missing, i)
		}
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: cells %v", ErrIncompleteEncoding, missing)
	}

	return string(facelets[:]), nil
}
