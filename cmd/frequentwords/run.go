package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wizenheimer/wordindex"
)

var errIndexMismatch = errors.New("word lists built by the two index variants differ")

type options struct {
	inputPath  string
	minCount   int
	outputPath string
}

// variant is one index implementation taking part in a run
type variant struct {
	name   string
	index  wordindex.Index
	pruned wordindex.PruneReport
}

// run counts, prunes and cross-checks both index variants, then writes the
// surviving words to opts.outputPath
//
// Mismatch details go to stdout; the output file is still written from the
// sorted list so the run can be inspected.
func run(ctx context.Context, cfg *Config, opts options, stdout io.Writer) error {
	tokens, err := readTokens(opts.inputPath, cfg.Analyzer)
	if err != nil {
		return err
	}

	// Created only once the input is readable, still before any counting
	out, err := os.Create(opts.outputPath)
	if err != nil {
		return fmt.Errorf("opening output file: %w", err)
	}
	defer out.Close()

	list := &variant{name: "sorted linked list", index: wordindex.NewSortedList()}
	tree := &variant{name: "binary search tree", index: wordindex.NewSearchTree()}

	// Each goroutine owns exactly one index
	g, gctx := errgroup.WithContext(ctx)
	for _, v := range []*variant{list, tree} {
		g.Go(func() error {
			return process(gctx, v, tokens, opts.minCount)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	mismatch := !wordindex.Equal(list.index, tree.index)
	if mismatch {
		fmt.Fprintf(stdout, "ERROR: two word lists are not the same\n\n")
		fmt.Fprintf(stdout, "%-20s%-20s\n", "wordList1:", "wordList2:")
		for _, row := range wordindex.SideBySide(list.index, tree.index) {
			fmt.Fprintln(stdout, row)
		}
	}
	if !list.pruned.Removed.Equals(tree.pruned.Removed) {
		slog.Warn("variants pruned different positions",
			slog.Uint64("list", list.pruned.Removed.GetCardinality()),
			slog.Uint64("tree", tree.pruned.Removed.GetCardinality()))
	}

	if err := writeWords(out, list.index); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}

	if mismatch {
		return errIndexMismatch
	}
	return nil
}

// readTokens runs the analyzer over the input file
func readTokens(path string, config wordindex.AnalyzerConfig) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()

	start := time.Now()
	tokens, err := wordindex.AnalyzeReader(f, config)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	slog.Info("reading file",
		slog.String("path", path),
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("words", len(tokens)))
	return tokens, nil
}

// process populates and prunes a single variant, logging the time each step
// takes
func process(ctx context.Context, v *variant, tokens []string, minCount int) error {
	logger := slog.With(slog.String("index", v.name))

	start := time.Now()
	if err := wordindex.Populate(v.index, tokens); err != nil {
		return fmt.Errorf("%s: %w", v.name, err)
	}
	logger.Info("creating index",
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("stored", v.index.Size()))

	if err := ctx.Err(); err != nil {
		return err
	}

	start = time.Now()
	v.pruned = wordindex.Prune(v.index, minCount)
	logger.Info("pruning index",
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("minCount", minCount),
		slog.Int("remaining", v.index.Size()))

	return nil
}

// writeWords writes one "count  word" line per word in ascending order
func writeWords(w io.Writer, idx wordindex.Index) error {
	bw := bufio.NewWriter(w)
	it := idx.Iterator()
	for it.HasNext() {
		word, _ := it.Next()
		if _, err := fmt.Fprintf(bw, "%5d  %s\n", word.Count(), word.Key()); err != nil {
			return err
		}
	}
	return bw.Flush()
}
