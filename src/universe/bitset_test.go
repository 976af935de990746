package universe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitsetSetTestToggle(t *testing.T) {
	b := NewBitset(100)

	assert.Equal(t, 100, b.Len())
	assert.Equal(t, 0, b.Count())

	//indexes around the word boundaries
	for _, i := range []int{0, 1, 31, 32, 33, 63, 64, 99} {
		assert.False(t, b.Test(i))
		b.Set(i, true)
		assert.True(t, b.Test(i))
	}
	assert.Equal(t, 8, b.Count())

	b.Set(32, false)
	assert.False(t, b.Test(32))
	assert.Equal(t, 7, b.Count())

	b.Toggle(32)
	assert.True(t, b.Test(32))
	b.Toggle(32)
	assert.False(t, b.Test(32))
}

func TestBitsetWordsLayout(t *testing.T) {
	b := NewBitset(64)

	//bit i lives in word i/32 at position i%32
	b.Set(0, true)
	b.Set(31, true)
	b.Set(32, true)

	words := b.Words()
	assert.Len(t, words, 2)
	assert.Equal(t, uint32(1)|uint32(1)<<31, words[0])
	assert.Equal(t, uint32(1), words[1])
}

func TestBitsetReset(t *testing.T) {
	b := NewBitset(70)
	for i := 0; i < 70; i += 7 {
		b.Set(i, true)
	}
	assert.NotZero(t, b.Count())

	b.Reset()
	assert.Equal(t, 0, b.Count())
	for _, w := range b.Words() {
		assert.Zero(t, w)
	}
}

func TestBitsetClone(t *testing.T) {
	b := NewBitset(40)
	b.Set(3, true)
	b.Set(39, true)

	cp := b.Clone()
	assert.True(t, cp.Equal(b))

	cp.Set(10, true)
	assert.False(t, b.Test(10))
	b.Set(20, true)
	assert.False(t, cp.Test(20))
}

func TestBitsetEqual(t *testing.T) {
	a := NewBitset(50)
	b := NewBitset(50)
	assert.True(t, a.Equal(b))

	a.Set(42, true)
	assert.False(t, a.Equal(b))

	b.Set(42, true)
	assert.True(t, a.Equal(b))

	assert.False(t, a.Equal(NewBitset(51)))
}
