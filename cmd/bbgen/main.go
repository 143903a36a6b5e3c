// Command bbgen generates precomputed move, attack and ray bitboard tables
// and writes them as source literals for an engine build.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/hailam/bbgen/internal/emit"
	"github.com/hailam/bbgen/internal/movegen"
	"github.com/hailam/bbgen/internal/verify"
)

var (
	tablesFlag = flag.String("tables", "all", "comma-separated table labels to emit, or \"all\"")
	styleFlag  = flag.String("style", string(emit.StyleCPP), "output style: cpp, cpp-map or go")
	outFlag    = flag.String("o", "", "output file (default stdout)")
	pkgFlag    = flag.String("package", "tables", "package name for -style go")
	listFlag   = flag.Bool("list", false, "list table labels and exit")
	verifyFlag = flag.Bool("verify", false, "check tables against reference generators and invariants before emitting")
	showFlag   = flag.String("show", "", "print one entry as a board, e.g. knight:g1 or rays:e4:ne")
	renderFlag = flag.String("render", "", "render one entry as an image, e.g. queen:d4")
	formatFlag = flag.String("format", "svg", "image format for -render: svg or png")
	sizeFlag   = flag.Int("size", 48, "pixels per square for -render")
	dbFlag     = flag.String("db", "", "snapshot database directory (default $BBGEN_DB or the platform data dir)")
	snapFlag   = flag.Bool("snapshot", false, "store the selected tables as the reference snapshot")
	diffFlag   = flag.Bool("diff", false, "compare the selected tables with the stored snapshot")
	listSnaps  = flag.Bool("snapshots", false, "list stored snapshots and exit")
	forgetFlag = flag.String("forget", "", "delete the stored snapshot of a table and exit")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("bbgen: ")
	flag.Parse()

	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(); err != nil {
		pprof.StopCPUProfile()
		log.Fatal(err)
	}
}

func run() error {
	set := movegen.Generate()

	if *listFlag {
		for _, l := range set.Labels() {
			t, _ := set.Lookup(l)
			fmt.Printf("%-20s %-24s %d entries\n", l, t.Name, len(t.Entries()))
		}
		return nil
	}

	if *listSnaps || *forgetFlag != "" {
		return runSnapshotAdmin()
	}

	if *verifyFlag {
		if err := runVerify(set); err != nil {
			return err
		}
	}

	if *showFlag != "" {
		e, err := parseEntry(set, *showFlag)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n%s", e, e.bb)
		return nil
	}

	if *renderFlag != "" {
		return runRender(set)
	}

	labels := strings.Split(*tablesFlag, ",")
	for i := range labels {
		labels[i] = strings.TrimSpace(labels[i])
	}
	tables, err := set.Select(labels)
	if err != nil {
		return err
	}

	if *snapFlag || *diffFlag {
		return runSnapshot(tables)
	}

	return runEmit(tables)
}

func runVerify(set *movegen.Set) error {
	report := verify.Invariants(set)
	report.Merge(verify.ShiftCheck(set))
	cross, err := verify.CrossCheck(set)
	if err != nil {
		return err
	}
	report.Merge(cross)
	if !report.OK() {
		return fmt.Errorf("verification failed: %s", report.Error())
	}
	log.Printf("verified: %s", strings.Join(report.Checks, ", "))
	return nil
}

func runEmit(tables []movegen.Table) error {
	style, err := emit.ParseStyle(*styleFlag)
	if err != nil {
		usage(err)
	}

	var pending strings.Builder
	e := emit.New(&pending, emit.Options{Style: style, Package: *pkgFlag})
	for _, t := range tables {
		if err := e.Emit(t); err != nil {
			return fmt.Errorf("emit %s: %w", t.Label, err)
		}
	}
	if err := e.Flush(); err != nil {
		return err
	}

	if *outFlag != "" {
		if err := os.WriteFile(*outFlag, []byte(pending.String()), 0644); err != nil {
			return err
		}
		log.Printf("wrote %d tables to %s", len(tables), *outFlag)
		return nil
	}
	_, err = os.Stdout.WriteString(pending.String())
	return err
}

func usage(err error) {
	fmt.Fprintf(os.Stderr, "%v\n", err)
	flag.Usage()
	os.Exit(2)
}
