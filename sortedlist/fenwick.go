package sortedlist

import "math/bits"

// fenwick is a binary indexed tree over bucket lengths. Element 0 is unused; the
// tree for n buckets has n+1 elements.
type fenwick []int

func buildFenwick[T any](lists [][]T) fenwick {
	n := len(lists)
	tree := make(fenwick, n+1)

	for i := 1; i <= n; i++ {
		tree[i] += len(lists[i-1])

		if j := i + (i & -i); j <= n {
			tree[j] += tree[i]
		}
	}

	return tree
}

// add adjusts the length of bucket pos by delta.
func (f fenwick) add(pos, delta int) {
	for i := pos + 1; i < len(f); i += i & -i {
		f[i] += delta
	}
}

// prefix returns the total length of buckets [0, pos).
func (f fenwick) prefix(pos int) int {
	total := 0

	for i := pos; i > 0; i -= i & -i {
		total += f[i]
	}

	return total
}

// locate maps a global position to the bucket holding it and the offset inside that
// bucket. Buckets are never empty, so the bucket found is unique.
func (f fenwick) locate(idx int) (pos, offset int) {
	n := len(f) - 1
	if n == 0 {
		return 0, idx
	}

	for step := 1 << (bits.Len(uint(n)) - 1); step > 0; step >>= 1 {
		if next := pos + step; next <= n && f[next] <= idx {
			pos = next
			idx -= f[next]
		}
	}

	return pos, idx
}
