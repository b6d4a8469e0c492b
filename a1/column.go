package a1

import "math"

// ColumnToRank converts a column code to its 1-indexed rank.
//
// The code is read as a base-26 number whose digits run from 1 (A) to 26 (Z), most significant letter first:
//
//	ColumnToRank("A")  // 1
//	ColumnToRank("Z")  // 26
//	ColumnToRank("AA") // 27
//
// Lower-case letters are accepted. Returns [ErrInvalidLetters] for empty input, for anything other than ASCII
// letters, and for codes whose rank does not fit in a uint32.
func ColumnToRank(s string) (uint32, error) {
	if s == "" {
		return 0, ErrInvalidLetters{Input: s}
	}
	var rank uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		default:
			return 0, ErrInvalidLetters{Input: s}
		}
		rank = rank*26 + uint64(c-'A'+1)
		if rank > math.MaxUint32 {
			return 0, ErrInvalidLetters{Input: s}
		}
	}
	return uint32(rank), nil
}

// RankToColumn converts a 1-indexed rank to its column code.
//
//	RankToColumn(1)  // "A"
//	RankToColumn(27) // "AA"
//
// Rank 0 is not a column and yields an empty string.
func RankToColumn(rank uint32) string {
	var buf [8]byte
	i := len(buf)
	for rank > 0 {
		rank--
		i--
		buf[i] = byte('A' + rank%26)
		rank /= 26
	}
	return string(buf[i:])
}
