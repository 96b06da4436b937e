package fuzzion

import (
	gunsafe "github.com/grailbio/base/unsafe"
	"github.com/grailbio/bio/biosimd"
)

// acgtIndex maps A, C, G, T (either case) to {0,1,2,3}. It maps other letters
// to 4.
var acgtIndex [256]uint8

func init() {
	for i := range acgtIndex {
		acgtIndex[i] = 4
	}
	acgtIndex['a'] = 0
	acgtIndex['A'] = 0
	acgtIndex['c'] = 1
	acgtIndex['C'] = 1
	acgtIndex['g'] = 2
	acgtIndex['G'] = 2
	acgtIndex['t'] = 3
	acgtIndex['T'] = 3
}

// allACGT returns true if every base in seq is one of A, C, G, T.
func allACGT(seq string) bool {
	for _, ch := range []byte(seq) {
		if acgtIndex[ch] == 4 {
			return false
		}
	}
	return true
}

// reverseComplement computes a reverse complement of the given DNA string.
//
// REQUIRES: seq contains only A, C, G, T (either case).
func reverseComplement(seq string) string {
	buf := make([]byte, len(seq))
	biosimd.ReverseComp8NoValidate(buf, gunsafe.StringToBytes(seq))
	return gunsafe.BytesToString(buf)
}
