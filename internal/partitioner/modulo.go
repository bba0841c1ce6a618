/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

package partitioner

// modulo is a partitioner that owns the values whose remainder modulo the
// total number of partitions equals the index of this partition (modulo
// total).
type modulo struct {
	id    uint32
	total uint32
}

func (m *modulo) Managed(value uint64) bool {
	return value%uint64(m.total) == uint64(m.id)
}

func (m *modulo) Each(bound uint64, fn func(value uint64)) {
	for value := uint64(m.id); value < bound; value += uint64(m.total) {
		fn(value)
	}
}
