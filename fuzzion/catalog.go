package fuzzion

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
)

// Catalog is the ordered list of target pairs evaluated against every read.
// Each definition row contributes two consecutive entries: the pair as
// written, then its reverse-complement mirror. Immutable once built.
type Catalog []*TargetPair

// ReadCatalog parses tab-separated pair definitions from r, one pair per
// line: label, left target spec, right target spec. Any malformed row is a
// fatal configuration error, as is an empty definition stream.
func ReadCatalog(r io.Reader) (Catalog, error) {
	rd := tsv.NewReader(r)
	// A row with any column count other than exactly label/left/right is a
	// configuration error, not something to pass over.
	rd.RequireParseAllColumns = true
	var catalog Catalog
	row := struct{ Label, Left, Right string }{}
	nLine := 0
	for {
		if err := rd.Read(&row); err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.E(err, "reading target pair definitions")
		}
		nLine++
		pair, err := NewTargetPair(row.Label, row.Left, row.Right)
		if err != nil {
			return nil, errors.E(err, fmt.Sprintf("target pair definitions line %d", nLine))
		}
		catalog = append(catalog, pair, pair.ReverseComplement())
	}
	if len(catalog) == 0 {
		return nil, errors.E("no input targets")
	}
	return catalog, nil
}

// OpenCatalog reads pair definitions from path, or from stdin if path is
// empty or "-". Compressed files are decompressed transparently based on the
// path extension.
func OpenCatalog(ctx context.Context, path string) (Catalog, error) {
	if path == "" || path == "-" {
		return ReadCatalog(os.Stdin)
	}
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	var r io.Reader = in.Reader(ctx)
	u, _ := compress.NewReaderPath(r, in.Name())
	r = u
	catalog, err := ReadCatalog(r)
	if e := in.Close(ctx); e != nil && err == nil {
		err = e
	}
	return catalog, err
}

// ScanRead evaluates every catalog entry against one read, reporting each
// confirmed match in catalog order. The read's name and sequence are not
// retained past the call.
func (c Catalog) ScanRead(readName, read string, opts Opts, rep *Reporter, stats *Stats) error {
	stats.Reads++
	for _, p := range c {
		if hit, ok := p.Match(read, opts); ok {
			stats.Hits++
			if err := rep.Report(readName, read, p, hit); err != nil {
				return err
			}
		}
	}
	return nil
}
