package fuzzion

import (
	"io"
	"strings"

	"github.com/grailbio/base/tsv"
)

// Reporter writes one tab-separated line per confirmed (read, pair) match:
// read name, annotated read sequence, pair label.
type Reporter struct {
	w *tsv.Writer
}

// NewReporter returns a Reporter writing to w. Call Flush when done.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: tsv.NewWriter(w)}
}

// Report writes one match line.
func (r *Reporter) Report(readName, read string, p *TargetPair, hit Hit) error {
	r.w.WriteString(readName)
	r.w.WriteString(AnnotateRead(read, p, hit))
	r.w.WriteString(p.Label)
	return r.w.EndLine()
}

// Flush flushes buffered output.
func (r *Reporter) Flush() error {
	return r.w.Flush()
}

// AnnotateRead renders the read with each matched span enclosed in square
// brackets. Within a span, a base that differs from the matched spelling is
// written in lowercase so a substitution is visually distinguishable from an
// identical base. Only the sides whose presence was required are bracketed.
func AnnotateRead(read string, p *TargetPair, hit Hit) string {
	b := strings.Builder{}
	b.Grow(len(read) + 4)

	initialBases := hit.Right.Start
	if p.Left.Want {
		initialBases = hit.Left.Start
	}
	b.WriteString(read[:initialBases])

	if p.Left.Want {
		seq := p.Left.seqs[hit.Left.Index]
		highlight(&b, read[hit.Left.Start:hit.Left.Start+len(seq)], seq)
		next := len(read)
		if p.Right.Want {
			next = hit.Right.Start
		}
		b.WriteString(read[hit.Left.Start+len(seq) : next])
	}

	if p.Right.Want {
		seq := p.Right.seqs[hit.Right.Index]
		highlight(&b, read[hit.Right.Start:hit.Right.Start+len(seq)], seq)
		b.WriteString(read[hit.Right.Start+len(seq):])
	}
	return b.String()
}

// highlight writes one bracketed span, lowercasing every substituted
// position.
func highlight(b *strings.Builder, window, target string) {
	b.WriteByte('[')
	for i := 0; i < len(window); i++ {
		ch := window[i]
		if ch != target[i] && ch >= 'A' && ch <= 'Z' {
			ch += 'a' - 'A'
		}
		b.WriteByte(ch)
	}
	b.WriteByte(']')
}
