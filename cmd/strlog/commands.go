package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coffersTech/strlog/internal/engine"
	"github.com/coffersTech/strlog/internal/ingest"
	"github.com/coffersTech/strlog/internal/storage"
)

// demoValues are inserted by the demo command; demoProbes are looked up.
var (
	demoValues = []string{"user1", "user2"}
	demoProbes = []string{"user1", "user2", "user3"}
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Insert user1 and user2, then probe user1..user3",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l := engine.NewLogWithCapacity(a.cfg.Capacity)
			for _, v := range demoValues {
				l.Insert(v)
			}
			a.log.Info("demo log built", slog.Int("entries", l.Len()))

			return a.render(cmd.OutOrStdout(), l, report{Has: probe(l, demoProbes)})
		},
	}
}

func newInsertCmd(a *app) *cobra.Command {
	var (
		jsonDoc string
		probes  []string
		query   string
	)

	cmd := &cobra.Command{
		Use:   "insert [values...]",
		Short: "Build a log from arguments and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.buildLog(args, jsonDoc)
			if err != nil {
				return err
			}

			rep := report{Has: probe(l, probes)}
			if query != "" {
				matches, err := l.Select(query)
				if err != nil {
					return fmt.Errorf("query: %w", err)
				}
				rep.Query = query
				rep.Matches = matches
			}
			return a.render(cmd.OutOrStdout(), l, rep)
		},
	}

	cmd.Flags().StringVar(&jsonDoc, "json", "", `Extra values as JSON, e.g. '["a","b"]'`)
	cmd.Flags().StringArrayVar(&probes, "has", nil, "Value to test for membership (repeatable)")
	cmd.Flags().StringVarP(&query, "query", "q", "", `Select entries, e.g. 'prefix:user AND NOT value:user3'`)
	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	var (
		jsonDoc string
		top     int
	)

	cmd := &cobra.Command{
		Use:   "stats [values...]",
		Short: "Print counts and the most frequent values",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.buildLog(args, jsonDoc)
			if err != nil {
				return err
			}
			stats := l.Stats()
			return a.renderStats(cmd.OutOrStdout(), stats, l.Top(top))
		},
	}

	cmd.Flags().StringVar(&jsonDoc, "json", "", "Extra values as JSON")
	cmd.Flags().IntVar(&top, "top", 10, "Number of values to list, -1 for all")
	return cmd
}

func newDecodeCmd(a *app) *cobra.Command {
	var probes []string

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Read an encoded snapshot from stdin and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reader, err := storage.NewSnapshotReader()
			if err != nil {
				return err
			}
			defer reader.Close()

			l, err := engine.Import(cmd.InOrStdin(), reader.ReadSnapshot)
			if err != nil {
				return fmt.Errorf("decode snapshot: %w", err)
			}
			a.log.Info("snapshot decoded", slog.Int("entries", l.Len()))

			return a.render(cmd.OutOrStdout(), l, report{Has: probe(l, probes)})
		},
	}

	cmd.Flags().StringArrayVar(&probes, "has", nil, "Value to test for membership (repeatable)")
	return cmd
}

// buildLog inserts positional values first, then values from jsonDoc.
func (a *app) buildLog(args []string, jsonDoc string) (*engine.Log, error) {
	values := args
	if strings.TrimSpace(jsonDoc) != "" {
		extra, err := ingest.Values([]byte(jsonDoc))
		if err != nil {
			return nil, fmt.Errorf("--json: %w", err)
		}
		values = append(append([]string(nil), args...), extra...)
	}

	l := engine.NewLogWithCapacity(max(a.cfg.Capacity, len(values)))
	for _, v := range values {
		l.Insert(v)
	}
	a.log.Debug("log built", slog.Int("entries", l.Len()))
	return l, nil
}

func probe(l *engine.Log, values []string) []hasResult {
	if len(values) == 0 {
		return nil
	}
	out := make([]hasResult, len(values))
	for i, v := range values {
		out[i] = hasResult{Value: v, Present: l.Has(v)}
	}
	return out
}
