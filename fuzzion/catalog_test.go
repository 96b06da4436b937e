package fuzzion

import (
	"bytes"
	"strings"
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestReadCatalog(t *testing.T) {
	in := "FUS\tAAAACCCC\tGGGGTTTT\n" +
		"NEG\t-AAAACCCC\tAGGTAGGT\n"
	catalog, err := ReadCatalog(strings.NewReader(in))
	assert.NoError(t, err)
	assert.EQ(t, len(catalog), 4)

	// Each row yields the pair as written followed by its mirror, in input
	// order.
	expect.EQ(t, catalog[0].Label, "FUS")
	expect.EQ(t, catalog[0].Left.Seq(0), "AAAACCCC")
	expect.EQ(t, catalog[1].Label, "FUS")
	expect.EQ(t, catalog[1].Left.Seq(0), "AAAACCCC") // revcomp of GGGGTTTT
	expect.EQ(t, catalog[1].Right.Seq(0), "GGGGTTTT")
	expect.EQ(t, catalog[2].Label, "NEG")
	expect.False(t, catalog[2].Left.Want)
	expect.EQ(t, catalog[3].Label, "NEG")
	// The mirror of a negated left side is a negated right side.
	expect.True(t, catalog[3].Left.Want)
	expect.False(t, catalog[3].Right.Want)
	expect.EQ(t, catalog[3].Right.Seq(0), "GGGGTTTT")
}

func TestReadCatalogErrors(t *testing.T) {
	for _, in := range []string{
		"",                                  // no targets at all
		"FUS\tAAAACCCC\n",                   // too few columns
		"FUS\tAAAACCCC\tGGGGTTTT\tJUNK\n",   // too many columns
		"\tAAAACCCC\tGGGGTTTT\n",            // empty label
		"X\t-AAAACCCC\t-GGGGTTTT\n",         // double negative
		"X\tAAAACCC\tGGGGTTTT\n",            // under-length sequence
		"X\tAAAACCCC\tGGGGTTTN\n",           // non-ACGT base
		"OK\tAAAACCCC\tGGGGTTTT\nX\tBAD\n",  // later malformed row
		"OK\tAAAACCCC\tGGGGTTTT\nX\t\t\t\n", // later empty row
	} {
		_, err := ReadCatalog(strings.NewReader(in))
		if err == nil {
			t.Errorf("ReadCatalog(%q): expected error", in)
		}
	}
}

func TestScanRead(t *testing.T) {
	catalog, err := ReadCatalog(strings.NewReader("FUS\tAAAACCCC\tGGGGTTTT\n"))
	assert.NoError(t, err)

	out := bytes.Buffer{}
	rep := NewReporter(&out)
	stats := Stats{}
	opts := Opts{MaxSub: 0}

	assert.NoError(t, catalog.ScanRead("read1", "NNNAAAACCCCxxxxGGGGTTTTNNN", opts, rep, &stats))
	assert.NoError(t, catalog.ScanRead("read2", "NNNNNNNNNNNNNNNNNNNNNNNNNN", opts, rep, &stats))
	assert.NoError(t, rep.Flush())

	// FUS\tAAAACCCC\tGGGGTTTT mirrors onto itself (revcomp(GGGGTTTT) ==
	// AAAACCCC), so read1 matches both catalog entries.
	expect.EQ(t, out.String(),
		"read1\tNNN[AAAACCCC]xxxx[GGGGTTTT]NNN\tFUS\n"+
			"read1\tNNN[AAAACCCC]xxxx[GGGGTTTT]NNN\tFUS\n")
	expect.EQ(t, stats.Reads, 2)
	expect.EQ(t, stats.Hits, 2)
}

func TestStatsMerge(t *testing.T) {
	s := Stats{Pairs: 2, Reads: 10, Hits: 1}.Merge(Stats{Reads: 5, Hits: 2})
	expect.EQ(t, s, Stats{Pairs: 2, Reads: 15, Hits: 3})
}
