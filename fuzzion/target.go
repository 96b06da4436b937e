package fuzzion

import (
	"strings"

	"github.com/grailbio/base/errors"
)

// MinTargetLength is the minimum length of a target sequence spelling.
const MinTargetLength = 8

// Target holds one side of a breakpoint pair: one or more alternative
// spellings of the same target sequence, plus the side's polarity. Want==true
// means a read must contain one of the spellings; Want==false means the read
// must contain none of them. Immutable after construction.
type Target struct {
	// Want is false when the spec string carried a leading '-'.
	Want bool
	// seqs are uppercase ACGT spellings in spec order. The order is
	// significant: it is the priority order of the directional searches.
	seqs   []string
	minLen int
	maxLen int
}

// SeqMatch identifies one approximate occurrence of a target spelling within
// a read: the index of the spelling and the start offset of the occurrence.
type SeqMatch struct {
	Index int
	Start int
}

// ParseTarget parses a target spec of the form "[-]SEQ(|SEQ)*". The spec is
// case-insensitive; a leading '-' requires the target to be absent from the
// read. Every spelling must be at least MinTargetLength bases of A, C, G, T.
func ParseTarget(spec string) (*Target, error) {
	s := strings.ToUpper(spec)
	t := &Target{Want: true}
	if strings.HasPrefix(s, "-") {
		t.Want = false
		s = s[1:]
	}
	t.seqs = strings.Split(s, "|")
	t.minLen = len(t.seqs[0])
	t.maxLen = len(t.seqs[0])
	for _, seq := range t.seqs[1:] {
		if len(seq) < t.minLen {
			t.minLen = len(seq)
		} else if len(seq) > t.maxLen {
			t.maxLen = len(seq)
		}
	}
	if t.minLen < MinTargetLength {
		return nil, errors.E("invalid sequence length in", spec)
	}
	for _, seq := range t.seqs {
		if !allACGT(seq) {
			return nil, errors.E("invalid character in", seq)
		}
	}
	return t, nil
}

// MinLen returns the length of the shortest spelling.
func (t *Target) MinLen() int { return t.minLen }

// MaxLen returns the length of the longest spelling.
func (t *Target) MaxLen() int { return t.maxLen }

// Seq returns the i'th spelling.
func (t *Target) Seq(i int) string { return t.seqs[i] }

// NumSeqs returns the number of spellings.
func (t *Target) NumSeqs() int { return len(t.seqs) }

// ReverseComplement returns an independent Target whose spellings are the
// reverse complements of t's, in the same order and with the same polarity.
func (t *Target) ReverseComplement() *Target {
	rc := &Target{
		Want:   t.Want,
		seqs:   make([]string, len(t.seqs)),
		minLen: t.minLen,
		maxLen: t.maxLen,
	}
	for i, seq := range t.seqs {
		rc.seqs[i] = reverseComplement(seq)
	}
	return rc
}

// isMatch reports whether target matches window with no more than maxSub
// substitutions. The two strings must have equal length. It stops as soon as
// the substitution budget is exceeded.
func isMatch(window, target string, maxSub int) bool {
	numSubs := 0
	for i := 0; i < len(target); i++ {
		if window[i] != target[i] {
			if numSubs++; numSubs > maxSub {
				return false
			}
		}
	}
	return true
}

// FindLeftmost identifies the spelling that matches the read with its last
// base farthest left, leaving the most room for a match to the right. The
// rightmost rightReserve bases of the read are excluded from the search
// window. Spellings are tried in spec order; each confirmed occurrence
// tightens the window so that a later spelling only wins by ending strictly
// earlier. A window too short for a spelling yields no match for it.
func (t *Target) FindLeftmost(read string, rightReserve int, opts Opts) (m SeqMatch, found bool) {
	lastMatchEnd := len(read) - rightReserve // exclusive end bound
	for i, seq := range t.seqs {
		lastStart := lastMatchEnd - len(seq)
		for start := 0; start <= lastStart; start++ {
			if isMatch(read[start:start+len(seq)], seq, opts.MaxSub) {
				m = SeqMatch{Index: i, Start: start}
				found = true
				lastMatchEnd = start + len(seq) - 1
				break
			}
		}
	}
	return m, found
}

// FindRightmost is the mirror of FindLeftmost: it identifies the spelling
// that matches the read with its first base farthest right, scanning start
// positions right to left and never starting before leftReserve. Each
// confirmed occurrence raises the start bound so that a later spelling only
// wins by starting strictly later.
func (t *Target) FindRightmost(read string, leftReserve int, opts Opts) (m SeqMatch, found bool) {
	lastMatchStart := leftReserve // inclusive start bound
	for i, seq := range t.seqs {
		firstStart := len(read) - len(seq)
		for start := firstStart; start >= lastMatchStart; start-- {
			if isMatch(read[start:start+len(seq)], seq, opts.MaxSub) {
				m = SeqMatch{Index: i, Start: start}
				found = true
				lastMatchStart = start + 1
				break
			}
		}
	}
	return m, found
}
