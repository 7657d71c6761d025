package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-activity-monitor/internal/app"
	"github.com/penwyp/go-activity-monitor/internal/core/watch"
	"github.com/penwyp/go-activity-monitor/internal/data/source"
	"github.com/penwyp/go-activity-monitor/internal/presentation/formatter"
	"github.com/penwyp/go-activity-monitor/internal/util"
)

var (
	watchOutput string

	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Re-render the report whenever the events file changes",
		Long: `watch renders the activity report for an exported events file and keeps
re-rendering it as the exporter rewrites the file. Requires --file.

The query window always ends at the moment of the render, so each refresh
picks up newly appended events and extends the away gap accounting up to
now.`,
		RunE: runWatch,
	}
)

func init() {
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "summary",
		"Output format (table, json, csv, summary)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}
	if eventsFile == "" {
		return fmt.Errorf("watch requires --file")
	}

	path := expandPath(eventsFile)
	src := source.NewFileSource(path)

	render := func() error {
		start, end, err := queryWindow()
		if err != nil {
			return err
		}

		report, err := app.BuildReport(context.Background(), app.Options{
			Source:       src,
			WindowBucket: windowBucket,
			AFKBucket:    afkBucket,
			QueryStart:   start,
			QueryEnd:     end,
			TopApps:      topApps,
		})
		if err != nil {
			return err
		}
		return formatter.New(watchOutput).Format(report)
	}

	if err := render(); err != nil {
		return err
	}

	fw, err := watch.NewFileWatcher(path)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	defer fw.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	util.LogInfof("watching %s", path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-fw.Changes():
			// A render failure here is transient (the exporter may be
			// mid-write); log it and wait for the next change.
			if err := render(); err != nil {
				util.LogWarnf("render failed: %v", err)
			}
		}
	}
}
