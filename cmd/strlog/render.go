package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/coffersTech/strlog/internal/config"
	"github.com/coffersTech/strlog/internal/engine"
	"github.com/coffersTech/strlog/internal/storage"
)

type hasResult struct {
	Value   string `json:"value"`
	Present bool   `json:"present"`
}

// report is everything a command prints next to the snapshot.
type report struct {
	Entries []string       `json:"entries"`
	Has     []hasResult    `json:"has,omitempty"`
	Query   string         `json:"query,omitempty"`
	Matches []engine.Match `json:"matches,omitempty"`
}

// render prints the log and rep in the configured format.
func (a *app) render(w io.Writer, l *engine.Log, rep report) error {
	switch strings.ToLower(a.cfg.Output.Format) {
	case config.FormatJSON:
		rep.Entries = l.Snapshot()
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)

	case config.FormatNano:
		// Binary output carries only the entries; the rest goes to the log.
		for _, h := range rep.Has {
			a.log.Info("membership", slog.String("value", h.Value), slog.Bool("present", h.Present))
		}
		if rep.Query != "" {
			a.log.Info("query", slog.String("query", rep.Query), slog.Int("matches", len(rep.Matches)))
		}
		writer, err := storage.NewSnapshotWriter()
		if err != nil {
			return err
		}
		defer writer.Close()
		return engine.Export(l, w, writer.WriteSnapshot)

	default:
		for _, h := range rep.Has {
			fmt.Fprintf(w, "is %s in the log : %t\n", h.Value, h.Present)
		}
		if rep.Query != "" {
			fmt.Fprintf(w, "query %q matched %d\n", rep.Query, len(rep.Matches))
			for _, m := range rep.Matches {
				fmt.Fprintf(w, "  [%d] %s\n", m.Index, m.Value)
			}
		}
		_, err := fmt.Fprintf(w, "%q\n", l.Snapshot())
		return err
	}
}

func (a *app) renderStats(w io.Writer, stats engine.Stats, top []engine.ValueCount) error {
	switch strings.ToLower(a.cfg.Output.Format) {
	case config.FormatText:
		fmt.Fprintf(w, "entries: %d\ndistinct: %d\npayload bytes: %d\n",
			stats.Entries, stats.Distinct, stats.PayloadBytes)
		for _, vc := range top {
			fmt.Fprintf(w, "  %6d  %s\n", vc.Count, vc.Value)
		}
		return nil
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			engine.Stats
			Top []engine.ValueCount `json:"top"`
		}{stats, top})
	default:
		return fmt.Errorf("stats cannot be printed as %q", a.cfg.Output.Format)
	}
}
