/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

package partitioner

// zero is a partitioner that owns every value as there is no partitioning of
// the domain.
type zero struct{}

func (*zero) Managed(uint64) bool {
	return true
}

func (*zero) Each(bound uint64, fn func(value uint64)) {
	for value := uint64(0); value < bound; value++ {
		fn(value)
	}
}
