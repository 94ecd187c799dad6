// Command trackassist drives the telemetry analysis core from the
// command line: `live` attaches to a running simulator (or replays a
// JSONL file with --replay) and runs the pipeline until interrupted or
// the replay ends, logging session changes; it does not print findings.
// `load` replays a JSONL file to completion and prints the resulting
// findings and recommendations. Exit codes follow spec.md §6: zero on
// clean shutdown, non-zero on producer timeout or a bad input path.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/psybedev/trackassist/internal/pipeline"
	"github.com/psybedev/trackassist/internal/producer"
	"github.com/psybedev/trackassist/internal/telemetry"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "live":
		err = runLive(os.Args[2:])
	case "load":
		err = runLoad(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Printf("trackassist: %v", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: trackassist live [--replay PATH] | load PATH")
}

func runLive(args []string) error {
	fs := flag.NewFlagSet("live", flag.ExitOnError)
	replayPath := fs.String("replay", "", "replay a JSONL file instead of connecting to a simulator")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var prod telemetry.Producer
	if *replayPath != "" {
		f, err := os.Open(*replayPath)
		if err != nil {
			return fmt.Errorf("open replay file: %w", err)
		}
		defer f.Close()
		prod = producer.NewReplayProducer(f)
	} else {
		prod = producer.NewIRacingProducer()
	}

	pl := pipeline.New(prod, nil)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := pl.Start(ctx); err != nil {
		return err
	}
	return pl.Wait()
}

func runLoad(args []string) error {
	if len(args) < 1 {
		usage()
		return fmt.Errorf("load requires a JSONL file path")
	}
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open replay file: %w", err)
	}
	defer f.Close()

	prod := producer.NewReplayProducer(f)
	pl := pipeline.New(prod, nil)

	ctx := context.Background()
	if err := pl.Start(ctx); err != nil {
		return err
	}
	if err := pl.Wait(); err != nil {
		return err
	}

	for ft, finding := range pl.Findings() {
		fmt.Printf("%-28s count=%d phase=%s last_ms=%d\n", ft, finding.OccurrenceCount, finding.CornerPhase, finding.LastDetectedMs)
		pl.ToggleConfirmation(ft)
	}
	for _, rec := range pl.Recommendations() {
		r := rec.Recommendation
		fmt.Printf("[%d] %s / %s: %s (%s)\n", r.Priority, r.Category, r.Parameter, r.Adjustment, r.Description)
	}
	return nil
}
