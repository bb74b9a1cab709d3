package csr

import "math/bits"

// bitmap is a packed liveness set over slot indices.
// It is written only while a Frozen value is being built.
type bitmap []uint64

// newBitmap returns a cleared bitmap able to hold n bits.
func newBitmap(n int) bitmap {
	return make(bitmap, (n+63)>>6)
}

// set marks bit i.
func (b bitmap) set(i int) {
	b[i>>6] |= 1 << (uint(i) & 63)
}

// test reports bit i. The caller guarantees 0 <= i < capacity.
func (b bitmap) test(i int) bool {
	return b[i>>6]&(1<<(uint(i)&63)) != 0
}

// count returns the number of set bits.
func (b bitmap) count() int {
	c := 0
	for _, w := range b {
		c += bits.OnesCount64(w)
	}

	return c
}
