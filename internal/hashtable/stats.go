package hashtable

// Stats describes the shape of a table and its allocation history.
type Stats struct {
	Buckets      int
	Entries      int
	EmptyBuckets int
	LongestChain int
	// Allocated and Released count entries over the whole lifetime of the table. After Teardown they are equal.
	Allocated int
	Released  int
}

// Stats walks every bucket and reports chain lengths together with the allocation counters.
func (t *Table) Stats() Stats {
	s := Stats{
		Buckets:      len(t.buckets),
		Entries:      t.count,
		EmptyBuckets: 0,
		LongestChain: 0,
		Allocated:    t.allocated,
		Released:     t.released,
	}
	for _, head := range t.buckets {
		length := 0
		for n := head; n != nil; n = n.next {
			length++
		}
		if length == 0 {
			s.EmptyBuckets++
		}
		s.LongestChain = max(s.LongestChain, length)
	}
	return s
}
