package universe

import "math/bits"

//cells are packed one bit per cell into 32-bit words,
//bit i lives in word i/32 at position i%32
const wordBits = 32

//Bitset is the packed cell storage
type Bitset struct {
	length int
	words  []uint32
}

//NewBitset creates the Bitset able to hold length cells, all dead
func NewBitset(length int) *Bitset {
	return &Bitset{
		length: length,
		words:  make([]uint32, (length+wordBits-1)/wordBits),
	}
}

//Len returns the number of cells the set holds
func (b *Bitset) Len() int {
	return b.length
}

//Test reports whether bit i is set
func (b *Bitset) Test(i int) bool {
	return b.words[i/wordBits]&(1<<(uint(i)%wordBits)) != 0
}

//Set sets bit i to v
func (b *Bitset) Set(i int, v bool) {
	if v {
		b.words[i/wordBits] |= 1 << (uint(i) % wordBits)
	} else {
		b.words[i/wordBits] &^= 1 << (uint(i) % wordBits)
	}
}

//Toggle inverses bit i
func (b *Bitset) Toggle(i int) {
	b.words[i/wordBits] ^= 1 << (uint(i) % wordBits)
}

//Count returns the number of set bits
func (b *Bitset) Count() int {
	total := 0
	for _, w := range b.words {
		total += bits.OnesCount32(w)
	}
	return total
}

//Reset clears all bits
func (b *Bitset) Reset() {
	for i := range b.words {
		b.words[i] = 0
	}
}

//Equal reports whether both sets hold the same bits
func (b *Bitset) Equal(other *Bitset) bool {
	if b.length != other.length {
		return false
	}
	for i, w := range b.words {
		if w != other.words[i] {
			return false
		}
	}
	return true
}

//Clone returns an independent copy of the set
func (b *Bitset) Clone() *Bitset {
	cp := NewBitset(b.length)
	copy(cp.words, b.words)
	return cp
}

//Words exposes the raw packed words
//the caller must treat the slice as read-only
func (b *Bitset) Words() []uint32 {
	return b.words
}
