package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"github.com/ethmarks/fphf/config"
	"github.com/ethmarks/fphf/internal/format"
	"github.com/ethmarks/fphf/internal/search"
)

const defaultTemplate = "The SHA-256 hash of this sentence begins with #."

// perThreadRateGuess feeds the pre-flight duration estimate in verbose
// mode. It is deliberately rough; the live ticker corrects it within a
// second of starting.
const perThreadRateGuess = 1e6

type verbosity int

const (
	verbosityQuiet verbosity = iota
	verbosityNormal
	verbosityVerbose
)

func main() {
	digits := flag.IntP("digits", "d", 7, "number of hex digits to match")
	text := flag.StringP("text", "t", defaultTemplate, "text template with # as placeholder for the hash")
	quiet := flag.BoolP("quiet", "q", false, "only print the result string")
	verbose := flag.BoolP("verbose", "v", false, "print detailed progress information")
	threads := flag.Int("threads", 0, "worker count override (0 = all CPUs)")
	configPath := flag.String("config", "", "path to a KDL config file")
	flag.Parse()

	cfg, err := config.InitializeConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	interval, err := cfg.Interval()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid report interval")
	}
	if *quiet && *verbose {
		log.Fatal().Msg("Cannot specify both --quiet and --verbose")
	}
	level := verbosityNormal
	if *quiet {
		level = verbosityQuiet
	} else if *verbose {
		level = verbosityVerbose
	}

	workerCount := cfg.Threads
	if *threads > 0 {
		workerCount = *threads
	}

	opts := []search.Option{
		search.WithWorkers(workerCount),
		search.WithDigitLimit(cfg.MaxDigits),
		search.WithInterval(interval),
	}
	if level != verbosityQuiet {
		opts = append(opts, search.WithProgress(printProgress(level)))
	}

	searcher, err := search.New(*digits, *text, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid search parameters")
	}

	printPreamble(level, *text, *digits, searcher)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := searcher.Run(ctx)
	if err != nil {
		fmt.Println()
		log.Fatal().Err(err).
			Uint64("attempts", result.Attempts).
			Msg("Search interrupted")
	}
	printResult(level, result)
}

func printPreamble(level verbosity, text string, digits int, s *search.Searcher) {
	switch level {
	case verbosityVerbose:
		size := s.Space().Size()
		estimated := float64(size) / (perThreadRateGuess * float64(s.Workers()))
		fmt.Printf("Template: %s\n", text)
		fmt.Printf("Digits to match: %d\n", digits)
		fmt.Printf("Search space: %s possible combinations\n", format.Count(size))
		fmt.Printf("Estimated time: ~%s\n", format.Seconds(estimated))
		fmt.Printf("Threads available: %d\n\n", s.Workers())
	case verbosityNormal:
		fmt.Printf("Searching for %d-digit hash prefix match...\n", digits)
	}
}

func printProgress(level verbosity) func(search.Snapshot) {
	return func(snap search.Snapshot) {
		switch level {
		case verbosityVerbose:
			fmt.Printf("\rElapsed: %s | Remaining: ~%s | Hashes: %d/%d (%.4f%%) | Speed: %s",
				format.Duration(snap.Elapsed),
				format.Duration(snap.Remaining),
				snap.Attempts,
				snap.Size,
				snap.Percent,
				format.Rate(snap.Rate))
		case verbosityNormal:
			fmt.Printf("\r%.1f%% complete | Speed: %s | Elapsed: %s",
				snap.Percent,
				format.Rate(snap.Rate),
				format.Duration(snap.Elapsed))
		}
	}
}

func printResult(level verbosity, result search.Result) {
	switch level {
	case verbosityQuiet:
		if result.Found {
			fmt.Println(result.Rendered)
		}
	case verbosityNormal:
		if result.Found {
			fmt.Printf("\n\nFound: %s\n", result.Rendered)
		} else {
			fmt.Printf("\n\nNo match found after searching %s hashes.\n", format.Count(result.Attempts))
		}
	case verbosityVerbose:
		fmt.Println()
		if result.Found {
			fmt.Println("=== MATCH FOUND ===")
			fmt.Printf("Total time: %s\n", format.Duration(result.Elapsed))
			fmt.Printf("Total hashes searched: %s\n", format.Count(result.Attempts))
			fmt.Printf("Output string: %s\n", result.Rendered)
			fmt.Printf("Full hash: %s\n", result.Digest)
		} else {
			fmt.Println("=== NO MATCH FOUND ===")
			fmt.Printf("Total time: %s\n", format.Duration(result.Elapsed))
			fmt.Printf("Total hashes searched: %s\n", format.Count(result.Attempts))
			fmt.Println("Exhausted search space without finding a match.")
		}
	}
}
