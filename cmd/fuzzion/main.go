package main

/*
fuzzion scans the reads of a BAM/PAM or FASTQ input for approximate
occurrences of labeled pairs of short target sequences and writes one
tab-separated line per matching read: read name, read sequence with the
matched spans highlighted, pair label.

Pair definitions are read from -targets (default stdin), one per line:

	label <TAB> leftSpec <TAB> rightSpec

where each spec is [-]SEQ(|SEQ)* — '|' separates alternative spellings of the
same target and a leading '-' requires the target to be absent from the read.
Each definition is also scanned in reverse-complement orientation.
*/

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/bio/biosimd"
	gbam "github.com/grailbio/bio/encoding/bam"
	"github.com/grailbio/bio/encoding/bamprovider"
	"github.com/grailbio/bio/encoding/fastq"
	"github.com/grailbio/fuzzion/fuzzion"
	"github.com/grailbio/hts/sam"
)

var (
	maxSub       = flag.Int("maxsub", fuzzion.DefaultOpts.MaxSub, "Maximum substitutions allowed when matching a target sequence")
	targetsPath  = flag.String("targets", "", "Tab-separated target pair definitions; empty or \"-\" reads stdin")
	fastqPaths   = flag.String("fastq", "", "Comma-separated list of FASTQ files to scan instead of a BAM/PAM input")
	bamIndexPath = flag.String("index", "", "Input BAM index path. Defaults to bampath + .bai")
)

func fuzzionUsage() {
	fmt.Printf("Usage: %s [OPTIONS] {b,p}ampath\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

// scanBAM evaluates the catalog against every read of a BAM or PAM file.
func scanBAM(path string, catalog fuzzion.Catalog, opts fuzzion.Opts, rep *fuzzion.Reporter, stats *fuzzion.Stats) (err error) {
	provider := bamprovider.NewProvider(path, bamprovider.ProviderOpts{Index: *bamIndexPath})
	defer func() {
		if e := provider.Close(); e != nil && err == nil {
			err = e
		}
	}()
	header, err := provider.GetHeader()
	if err != nil {
		return err
	}
	iter := provider.NewIterator(gbam.UniversalShard(header))
	var (
		seq     []byte
		scanErr error
	)
	for iter.Scan() {
		rec := iter.Record()
		n := rec.Seq.Length
		if cap(seq) < n {
			seq = make([]byte, n)
		}
		seq = seq[:n]
		src := gbam.UnsafeDoubletsToBytes(rec.Seq.Seq)
		biosimd.UnpackAndReplaceSeq(seq, src[:(n+1)/2], &biosimd.SeqASCIITable)
		scanErr = catalog.ScanRead(rec.Name, string(seq), opts, rep, stats)
		sam.PutInFreePool(rec)
		if scanErr != nil {
			break
		}
	}
	once := errors.Once{}
	once.Set(scanErr)
	once.Set(iter.Close())
	return once.Err()
}

// scanFASTQ evaluates the catalog against every read of one FASTQ file,
// decompressing transparently based on the path extension.
func scanFASTQ(ctx context.Context, path string, catalog fuzzion.Catalog, opts fuzzion.Opts, rep *fuzzion.Reporter, stats *fuzzion.Stats) error {
	in, err := file.Open(ctx, path)
	if err != nil {
		return err
	}
	var r io.Reader = in.Reader(ctx)
	u, _ := compress.NewReaderPath(r, in.Name())
	r = u
	sc := fastq.NewScanner(r, fastq.ID|fastq.Seq)
	var (
		read    fastq.Read
		scanErr error
	)
	for sc.Scan(&read) {
		name := strings.TrimPrefix(read.ID, "@")
		if i := strings.IndexByte(name, ' '); i >= 0 {
			name = name[:i]
		}
		if scanErr = catalog.ScanRead(name, read.Seq, opts, rep, stats); scanErr != nil {
			break
		}
	}
	once := errors.Once{}
	once.Set(scanErr)
	once.Set(sc.Err())
	once.Set(in.Close(ctx))
	return once.Err()
}

func main() {
	flag.Usage = fuzzionUsage
	shutdown := grail.Init()
	defer shutdown()

	if *maxSub < 0 {
		log.Fatalf("-maxsub must be non-negative, got %d", *maxSub)
	}
	opts := fuzzion.Opts{MaxSub: *maxSub}
	if *fastqPaths == "" && flag.NArg() != 1 {
		log.Fatalf("exactly one positional argument ({b,p}ampath) or -fastq is required; please check flag syntax: '%s'", strings.Join(flag.Args(), " "))
	}
	if *fastqPaths != "" && flag.NArg() != 0 {
		log.Fatalf("-fastq and a positional {b,p}ampath are mutually exclusive")
	}
	ctx := vcontext.Background()

	catalog, err := fuzzion.OpenCatalog(ctx, *targetsPath)
	if err != nil {
		log.Fatalf("reading target pairs: %v", err)
	}
	log.Printf("Loaded %d target pairs (%d with reverse complements)", len(catalog)/2, len(catalog))

	rep := fuzzion.NewReporter(os.Stdout)
	stats := fuzzion.Stats{Pairs: len(catalog)}
	if *fastqPaths != "" {
		for _, path := range strings.Split(*fastqPaths, ",") {
			if err := scanFASTQ(ctx, path, catalog, opts, rep, &stats); err != nil {
				log.Fatalf("%s: %v", path, err)
			}
		}
	} else {
		if err := scanBAM(flag.Arg(0), catalog, opts, rep, &stats); err != nil {
			log.Fatalf("%s: %v", flag.Arg(0), err)
		}
	}
	if err := rep.Flush(); err != nil {
		log.Fatalf("flushing output: %v", err)
	}
	log.Printf("Scanned %d reads, wrote %d matches", stats.Reads, stats.Hits)
}
