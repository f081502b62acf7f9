package pokelinks

import "strings"

// Type is a bit-packed encoding of a Pokémon typing: a nonempty subset of
// size one or two drawn from the 18 primitive type names. Bit 0 corresponds
// to the lexicographically smallest primitive name ("Bug") and bit 17 to the
// largest ("Water"). The zero value is the sentinel "absent" encoding and is
// never a valid typing.
//
// Popcount is always 0 (sentinel), 1 (single type), or 2 (dual type).
type Type uint32

// typeTable is the 18 primitive type names in lexicographic order. Index i
// is encoded as bit i. Linear scan beats a map or binary search at this
// size; see bitIndex.
var typeTable = [18]string{
	"Bug",
	"Dark",
	"Dragon",
	"Electric",
	"Fairy",
	"Fighting",
	"Fire",
	"Flying",
	"Ghost",
	"Grass",
	"Ground",
	"Ice",
	"Normal",
	"Poison",
	"Psychic",
	"Rock",
	"Steel",
	"Water",
}

// bitIndex returns the table index of name, or len(typeTable) if not found.
func bitIndex(name string) int {
	for i, t := range typeTable {
		if t == name {
			return i
		}
	}
	return len(typeTable)
}

// NewType encodes a type string such as "Water" or "Dragon-Flying". If
// either side of the dash is not a recognized primitive, NewType fails
// silently and returns the sentinel zero Type; callers test for truthiness
// rather than handling an error.
func NewType(s string) Type {
	if s == "" {
		return 0
	}
	first, rest, hasDash := strings.Cut(s, "-")
	i := bitIndex(first)
	if i == len(typeTable) {
		return 0
	}
	enc := Type(1) << uint(i)
	if !hasDash {
		return enc
	}
	j := bitIndex(rest)
	if j == len(typeTable) {
		return 0
	}
	return enc | (Type(1) << uint(j))
}

// IsValid reports whether t is a non-sentinel encoding.
func (t Type) IsValid() bool {
	return t != 0
}

func trailingZeros(t Type) int {
	if t == 0 {
		return 32
	}
	n := 0
	for t&1 == 0 {
		t >>= 1
		n++
	}
	return n
}

func leadingBitIndex(t Type) int {
	if t == 0 {
		return -1
	}
	n := -1
	for t != 0 {
		t >>= 1
		n++
	}
	return n
}

// DecodeIndices returns the bit positions making up t: the low index always
// populated for a valid encoding, the high index populated (ok=true) only
// for a dual type.
func (t Type) DecodeIndices() (lo int, hi int, ok bool) {
	if t == 0 {
		return 0, 0, false
	}
	lo = trailingZeros(t)
	hi = leadingBitIndex(t)
	return lo, hi, lo != hi
}

// DecodeType returns the type name(s) encoded by t: a single name, or a
// (lower, higher) pair in lexicographic order for a dual type. Returns
// ("", "") for the sentinel.
func (t Type) DecodeType() (first string, second string) {
	lo, hi, dual := t.DecodeIndices()
	if t == 0 {
		return "", ""
	}
	if !dual {
		return typeTable[lo], ""
	}
	return typeTable[lo], typeTable[hi]
}

// String renders t as "A" or "A-B", matching the format NewType parses.
func (t Type) String() string {
	first, second := t.DecodeType()
	if first == "" {
		return ""
	}
	if second == "" {
		return first
	}
	return first + "-" + second
}

// Less orders Types so that their 32-bit encodings sort identically to how
// their decoded dash-joined name strings sort lexicographically: primary
// key is the index of the least-significant set bit (smaller wins); ties
// break on the index of the most-significant set bit (smaller wins, since
// bit position here is already monotonic with alphabetical rank).
func (t Type) Less(other Type) bool {
	lo1, hi1, _ := t.DecodeIndices()
	lo2, hi2, _ := other.DecodeIndices()
	if lo1 != lo2 {
		return lo1 < lo2
	}
	return hi1 < hi2
}

// Hash is the identity hash of the 32-bit field; Type is already a good map
// key on its own; Hash exists for callers that want an explicit uint32.
func (t Type) Hash() uint32 {
	return uint32(t)
}
