package fuzzion

// Stats represents high-level counters for one scan.
type Stats struct {
	// Pairs is the number of catalog entries, mirrors included.
	Pairs int
	// Reads is the number of reads consumed from the read source.
	Reads int
	// Hits is the number of confirmed (read, pair) matches written.
	Hits int
}

// Merge adds the field values of the two Stats objects and creates new Stats.
func (s Stats) Merge(o Stats) Stats {
	s.Pairs += o.Pairs
	s.Reads += o.Reads
	s.Hits += o.Hits
	return s
}
