// Package fuzzion finds sequencing reads that contain approximate occurrences
// of a labeled pair of short nucleotide target sequences. Each pair names a
// left and a right target; a target is one or more alternative spellings, and
// either side may instead require that its spellings be absent from the read.
// Every pair is also scanned in reverse-complement orientation, so split-read
// evidence of a fusion breakpoint is detected on either strand.
package fuzzion

// Opts configures matching.
type Opts struct {
	// MaxSub is the maximum number of base substitutions tolerated when
	// comparing a target spelling against a window of the read. Comparison is
	// positional; no insertions or deletions.
	MaxSub int
}

// DefaultOpts sets the default values to Opts.
var DefaultOpts = Opts{
	MaxSub: 2,
}
