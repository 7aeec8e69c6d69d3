package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"polesplit/internal/platform/config"
	"polesplit/internal/platform/logger"

	"polesplit/internal/core/pipeline"
	procdom "polesplit/internal/services/process/domain"
	procsvc "polesplit/internal/services/process/service"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %s [flags] <input> <output>

Extracts marker name, engine number and pole number from a raw marker
column, filters job-number rows, drops duplicate pole numbers and
writes the result next to the surviving original columns.

Input and output may be .csv or .xlsx; the formats are independent.

Flags:
`, os.Args[0])
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Examples:
  %[1]s data.csv processed.csv
  %[1]s -sheet "Sheet1" data.xlsx processed.xlsx
  %[1]s -column "Marker Data" -keep-original data.xlsx out.csv
`, os.Args[0])
}

func main() {
	var (
		column   = flag.String("column", "", "name of the raw marker column (auto-detected if omitted)")
		sheet    = flag.String("sheet", "", "sheet name for Excel input")
		keepOrig = flag.Bool("keep-original", false, "keep the original raw column in the output")
		noDedupe = flag.Bool("no-dedupe", false, "do not remove duplicate pole numbers")
		keepJobs = flag.Bool("keep-job-numbers", false, "keep rows carrying job numbers (JB...)")
		noBackup = flag.Bool("no-backup", false, "do not create a backup of an existing output file")
		prefix   = flag.String("prefix", "", "job-number prefix override (letters only)")
		workers  = flag.Int("workers", 0, "extraction parallelism (0 = default)")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}
	input, output := flag.Arg(0), flag.Arg(1)

	root := config.New()
	procCfg := root.Prefix("PROCESS_")
	l := logger.Get()

	svc := procsvc.New(nil, *l, procsvc.Config{
		Workers: procCfg.MayInt("WORKERS", 0),
		Prefix:  procCfg.MayString("JOB_PREFIX", ""),
	})

	res, err := svc.ProcessFile(context.Background(), input, output, procdom.FileOptions{
		Column:         *column,
		Sheet:          *sheet,
		KeepOriginal:   *keepOrig,
		NoDedupe:       *noDedupe,
		KeepJobNumbers: *keepJobs,
		NoBackup:       *noBackup,
		Prefix:         *prefix,
		Workers:        *workers,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	fmt.Printf("Column: %s\n", res.Column)
	if res.BackupPath != "" {
		fmt.Printf("Backup: %s\n", res.BackupPath)
	}
	fmt.Print(pipeline.FormatReport(res.Report))
	fmt.Printf("Written: %s\n", res.OutputPath)
}
