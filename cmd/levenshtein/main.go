// Command levenshtein exposes the package's edit-distance, edit-script,
// median-string, and sequence/set-distance operations from the shell.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/width"

	"github.com/gostrmetrics/levenshtein"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "distance":
		runDistance(args)
	case "ops":
		runOps(args)
	case "diff":
		runDiff(args)
	case "median":
		runMedian(args)
	case "quick-median":
		runQuickMedian(args)
	case "set-median":
		runSetMedian(args)
	case "seq-distance":
		runSeqDistance(args)
	case "set-distance":
		runSetDistance(args)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: levenshtein <distance|ops|diff|median|quick-median|set-median|seq-distance|set-distance> [flags] ...")
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopmentConfig().Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func runDistance(args []string) {
	fs := flag.NewFlagSet("distance", flag.ExitOnError)
	runesMode := fs.Bool("runes", false, "compare as rune strings instead of byte strings")
	xcost := fs.Bool("xcost", false, "substitution costs 2 instead of 1")
	verbose := fs.Bool("v", false, "verbose structured logging")
	fs.Parse(args)
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: levenshtein distance [-runes] [-xcost] [-v] s1 s2")
		os.Exit(2)
	}
	logger := newLogger(*verbose)
	defer logger.Sync()

	s1, s2 := fs.Arg(0), fs.Arg(1)
	var d int
	if *runesMode {
		d = levenshtein.DistanceRunes([]rune(s1), []rune(s2), *xcost)
	} else {
		d = levenshtein.Distance(s1, s2, *xcost)
	}
	logger.Info("computed distance", zap.String("s1", s1), zap.String("s2", s2), zap.Int("distance", d))
	fmt.Println(d)
}

func runOps(args []string) {
	fs := flag.NewFlagSet("ops", flag.ExitOnError)
	runesMode := fs.Bool("runes", false, "compare as rune strings instead of byte strings")
	fs.Parse(args)
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: levenshtein ops [-runes] s1 s2")
		os.Exit(2)
	}
	s1, s2 := fs.Arg(0), fs.Arg(1)
	if *runesMode {
		for _, op := range levenshtein.EditOpsRunes([]rune(s1), []rune(s2)) {
			fmt.Println(op)
		}
		return
	}
	for _, op := range levenshtein.EditOps(s1, s2) {
		fmt.Println(op)
	}
}

// editScript is the CLI's own wrapper around an edit-ops result: a
// correlation ID lets several diff invocations feeding the same log
// stream be tied back together by whatever aggregates the -v output.
type editScript struct {
	id  string
	ops []levenshtein.EditOp
}

func runDiff(args []string) {
	fs := flag.NewFlagSet("diff", flag.ExitOnError)
	runesMode := fs.Bool("runes", false, "compare as rune strings instead of byte strings")
	verbose := fs.Bool("v", false, "verbose structured logging")
	fs.Parse(args)
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: levenshtein diff [-runes] [-v] s1 s2")
		os.Exit(2)
	}
	logger := newLogger(*verbose)
	defer logger.Sync()

	s1, s2 := fs.Arg(0), fs.Arg(1)
	script := editScript{id: uuid.NewString()}

	if *runesMode {
		r1, r2 := []rune(s1), []rune(s2)
		script.ops = levenshtein.EditOpsRunes(r1, r2)
		codes := levenshtein.EditOpsToOpCodes(script.ops, len(r1), len(r2))
		logger.Info("diff", zap.String("id", script.id), zap.Int("blocks", len(codes)))
		printOpCodesRunes(r1, r2, codes)
		return
	}

	s1b, s2b := []byte(s1), []byte(s2)
	script.ops = levenshtein.EditOps(s1, s2)
	codes := levenshtein.EditOpsToOpCodes(script.ops, len(s1b), len(s2b))
	logger.Info("diff", zap.String("id", script.id), zap.Int("blocks", len(codes)))
	printOpCodes(s1b, s2b, codes)
}

func printOpCodes(s1, s2 []byte, codes []levenshtein.OpCode) {
	for _, c := range codes {
		switch c.Type {
		case levenshtein.Keep:
			fmt.Printf("  %s\n", s1[c.SBeg:c.SEnd])
		case levenshtein.Delete:
			fmt.Printf("- %s\n", s1[c.SBeg:c.SEnd])
		case levenshtein.Insert:
			fmt.Printf("+ %s\n", s2[c.DBeg:c.DEnd])
		case levenshtein.Replace:
			fmt.Printf("- %s\n", s1[c.SBeg:c.SEnd])
			fmt.Printf("+ %s\n", s2[c.DBeg:c.DEnd])
		}
	}
}

// printOpCodesRunes pads rune-mode diff output to the visual width of each
// run rather than its rune count, so East Asian wide characters still line
// up when the output is viewed in a monospace terminal.
func printOpCodesRunes(s1, s2 []rune, codes []levenshtein.OpCode) {
	pad := func(s string) string {
		w := 0
		for _, r := range s {
			switch width.LookupRune(r).Kind() {
			case width.EastAsianWide, width.EastAsianFullwidth:
				w += 2
			default:
				w++
			}
		}
		if w < 8 {
			return s + strings.Repeat(" ", 8-w)
		}
		return s
	}
	for _, c := range codes {
		switch c.Type {
		case levenshtein.Keep:
			fmt.Printf("  %s\n", pad(string(s1[c.SBeg:c.SEnd])))
		case levenshtein.Delete:
			fmt.Printf("- %s\n", pad(string(s1[c.SBeg:c.SEnd])))
		case levenshtein.Insert:
			fmt.Printf("+ %s\n", pad(string(s2[c.DBeg:c.DEnd])))
		case levenshtein.Replace:
			fmt.Printf("- %s\n", pad(string(s1[c.SBeg:c.SEnd])))
			fmt.Printf("+ %s\n", pad(string(s2[c.DBeg:c.DEnd])))
		}
	}
}

func parseWeights(n int, raw string) []float64 {
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1
	}
	if raw == "" {
		return weights
	}
	for i, part := range strings.Split(raw, ",") {
		if i >= n {
			break
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(part), 64); err == nil {
			weights[i] = v
		}
	}
	return weights
}

func runMedian(args []string) {
	fs := flag.NewFlagSet("median", flag.ExitOnError)
	runesMode := fs.Bool("runes", false, "operate on rune strings instead of byte strings")
	improve := fs.Bool("improve", false, "apply local-perturbation improvement after the greedy construction")
	weightsFlag := fs.String("weight", "", "comma-separated per-string weights (default 1 each)")
	fs.Parse(args)
	strs := fs.Args()
	if len(strs) == 0 {
		fmt.Fprintln(os.Stderr, "usage: levenshtein median [-runes] [-improve] [-weight=1,1,...] s1 s2 ...")
		os.Exit(2)
	}
	weights := parseWeights(len(strs), *weightsFlag)

	if *runesMode {
		rstrs := toRuneStrings(strs)
		median := levenshtein.GreedyMedianRunes(rstrs, weights)
		if *improve {
			median = levenshtein.MedianImproveRunes(median, rstrs, weights)
		}
		fmt.Println(string(median))
		return
	}

	median := levenshtein.GreedyMedian(strs, weights)
	if *improve {
		median = levenshtein.MedianImprove(median, strs, weights)
	}
	fmt.Println(median)
}

func runQuickMedian(args []string) {
	fs := flag.NewFlagSet("quick-median", flag.ExitOnError)
	runesMode := fs.Bool("runes", false, "operate on rune strings instead of byte strings")
	weightsFlag := fs.String("weight", "", "comma-separated per-string weights (default 1 each)")
	fs.Parse(args)
	strs := fs.Args()
	if len(strs) == 0 {
		fmt.Fprintln(os.Stderr, "usage: levenshtein quick-median [-runes] [-weight=1,1,...] s1 s2 ...")
		os.Exit(2)
	}
	weights := parseWeights(len(strs), *weightsFlag)

	if *runesMode {
		fmt.Println(string(levenshtein.QuickMedianRunes(toRuneStrings(strs), weights)))
		return
	}
	fmt.Println(levenshtein.QuickMedian(strs, weights))
}

func runSetMedian(args []string) {
	fs := flag.NewFlagSet("set-median", flag.ExitOnError)
	runesMode := fs.Bool("runes", false, "operate on rune strings instead of byte strings")
	weightsFlag := fs.String("weight", "", "comma-separated per-string weights (default 1 each)")
	fs.Parse(args)
	strs := fs.Args()
	if len(strs) == 0 {
		fmt.Fprintln(os.Stderr, "usage: levenshtein set-median [-runes] [-weight=1,1,...] s1 s2 ...")
		os.Exit(2)
	}
	weights := parseWeights(len(strs), *weightsFlag)

	if *runesMode {
		fmt.Println(string(levenshtein.SetMedianRunes(toRuneStrings(strs), weights)))
		return
	}
	fmt.Println(levenshtein.SetMedian(strs, weights))
}

func runSeqDistance(args []string) {
	fs := flag.NewFlagSet("seq-distance", flag.ExitOnError)
	sep := fs.String("sep", ",", "separator splitting each positional argument into a string sequence")
	fs.Parse(args)
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: levenshtein seq-distance [-sep=,] seq1 seq2")
		os.Exit(2)
	}
	fmt.Println(levenshtein.SequenceDistance(strings.Split(fs.Arg(0), *sep), strings.Split(fs.Arg(1), *sep)))
}

func runSetDistance(args []string) {
	fs := flag.NewFlagSet("set-distance", flag.ExitOnError)
	sep := fs.String("sep", ",", "separator splitting each positional argument into a string set")
	fs.Parse(args)
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: levenshtein set-distance [-sep=,] set1 set2")
		os.Exit(2)
	}
	fmt.Println(levenshtein.SetDistance(strings.Split(fs.Arg(0), *sep), strings.Split(fs.Arg(1), *sep)))
}

func toRuneStrings(strs []string) [][]rune {
	out := make([][]rune, len(strs))
	for i, s := range strs {
		out[i] = []rune(s)
	}
	return out
}
