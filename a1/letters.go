package a1

import (
	"cmp"
	"fmt"
)

// Letters is a validated column code such as "A" or "AA".
//
// Letters is an immutable value. The zero value is not a valid column; obtain one with [ParseLetters],
// [LettersFromRank] or [MustLetters].
type Letters struct {
	rank uint32
}

// ParseLetters validates a column code. Lower-case input is normalized to upper case.
func ParseLetters(s string) (Letters, error) {
	rank, err := ColumnToRank(s)
	if err != nil {
		return Letters{}, err
	}
	return Letters{rank: rank}, nil
}

// LettersFromRank returns the column with the given 1-indexed rank.
func LettersFromRank(rank uint32) (Letters, error) {
	if rank == 0 {
		return Letters{}, ErrInvalidLetters{Input: "<rank 0>"}
	}
	return Letters{rank: rank}, nil
}

// MustLetters is like [ParseLetters] but panics on invalid input.
// It is intended for literals known to be valid.
func MustLetters(s string) Letters {
	l, err := ParseLetters(s)
	if err != nil {
		panic(err)
	}
	return l
}

// Rank returns the 1-indexed numeric rank of the column (A=1, Z=26, AA=27).
func (l Letters) Rank() uint32 {
	return l.rank
}

// IsValid reports whether l holds a column, i.e. is not the zero value.
func (l Letters) IsValid() bool {
	return l.rank > 0
}

// String returns the upper-case column code.
func (l Letters) String() string {
	return RankToColumn(l.rank)
}

// Add returns the column n positions to the right, carrying across letter boundaries (Z+1 = AA).
// It panics if the rank of the result does not fit in a uint32.
func (l Letters) Add(n uint32) Letters {
	if n > maxCoord-l.rank {
		panic(fmt.Sprintf("a1: %s + %d is past the last column", l, n))
	}
	return Letters{rank: l.rank + n}
}

// Sub returns the column n positions to the left, borrowing across letter boundaries (AA-1 = Z).
// It panics if the result would fall before column A.
func (l Letters) Sub(n uint32) Letters {
	if n >= l.rank {
		panic(fmt.Sprintf("a1: %s - %d is before column A", l, n))
	}
	return Letters{rank: l.rank - n}
}

// Compare orders columns by rank. It returns -1, 0 or +1.
func (l Letters) Compare(other Letters) int {
	return cmp.Compare(l.rank, other.rank)
}
