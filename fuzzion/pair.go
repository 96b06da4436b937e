package fuzzion

import (
	"github.com/grailbio/base/errors"
)

// TargetPair is a labeled pair of Targets. A read matches the pair when the
// left side's polarity condition holds to the left of the right side's, per
// Match. Immutable after construction.
type TargetPair struct {
	Label string
	Left  *Target
	Right *Target
}

// Hit records where a pair matched within one read. Only the sides whose
// presence was required carry a valid SeqMatch; an absent side's SeqMatch is
// the zero value.
type Hit struct {
	Left  SeqMatch
	Right SeqMatch
}

// NewTargetPair parses the left and right target specs and validates the
// pair. A pair whose sides both require absence is rejected: with no required
// anchor there is nothing to locate in a read.
func NewTargetPair(label, leftSpec, rightSpec string) (*TargetPair, error) {
	if label == "" {
		return nil, errors.E("missing label before", leftSpec)
	}
	left, err := ParseTarget(leftSpec)
	if err != nil {
		return nil, err
	}
	right, err := ParseTarget(rightSpec)
	if err != nil {
		return nil, err
	}
	if !left.Want && !right.Want {
		return nil, errors.E("double negative specified for", label)
	}
	return &TargetPair{Label: label, Left: left, Right: right}, nil
}

// ReverseComplement returns the pair that detects the same breakpoint on the
// opposite strand: the sides are swapped and each is reverse-complemented.
// The result shares nothing with p and carries the same label.
func (p *TargetPair) ReverseComplement() *TargetPair {
	return &TargetPair{
		Label: p.Label,
		Left:  p.Right.ReverseComplement(),
		Right: p.Left.ReverseComplement(),
	}
}

// Match evaluates the pair against one read. Exactly one of two branches
// runs, selected by the left side's polarity.
//
// If the left side requires presence, its leftmost occurrence is located
// first, reserving room at the read's tail for the right side: the right
// side's shortest spelling if it too must be present, or its longest if it
// must be absent (the whole remaining span has to be searched to confirm
// absence). The right side is then searched rightmost of the left match, and
// the pair holds iff that search's outcome equals the right side's polarity.
//
// If the left side requires absence, the right side's rightmost occurrence is
// located first, reserving the left side's longest spelling at the read's
// head, and the pair holds iff the left side matches nowhere before it.
func (p *TargetPair) Match(read string, opts Opts) (Hit, bool) {
	if p.Left.Want {
		rightReserve := p.Right.maxLen
		if p.Right.Want {
			rightReserve = p.Right.minLen
		}
		left, ok := p.Left.FindLeftmost(read, rightReserve, opts)
		if !ok {
			return Hit{}, false
		}
		right, ok := p.Right.FindRightmost(read, left.Start+len(p.Left.seqs[left.Index]), opts)
		if ok != p.Right.Want {
			return Hit{}, false
		}
		return Hit{Left: left, Right: right}, true
	}
	right, ok := p.Right.FindRightmost(read, p.Left.maxLen, opts)
	if !ok {
		return Hit{}, false
	}
	if _, ok := p.Left.FindLeftmost(read, len(read)-right.Start, opts); ok {
		return Hit{}, false
	}
	return Hit{Right: right}, true
}
