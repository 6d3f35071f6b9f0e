// Package partition maps athletes onto a fixed set of ordering partitions.
// Change records of one athlete always land in the same partition, so the
// consumer can process partitions in parallel and keep per-athlete order.
package partition

import "hash/fnv"

// Count is the fixed number of logical partitions.
const Count = 256

// For returns the partition of a partition key (the athlete's PK).
// Uses FNV-32a.
func For(key string) int {
	h := fnv.New32a()
	h.Write([]byte(key))
	return int(h.Sum32() % Count)
}
