package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-activity-monitor/internal/app"
	"github.com/penwyp/go-activity-monitor/internal/presentation/formatter"
)

var (
	timelineOutput string

	timelineCmd = &cobra.Command{
		Use:   "timeline",
		Short: "Print the merged active/away timeline",
		Long: `timeline prints one row per merged interval in chronological order.

The default view scales bars to the terminal width; --output switches to
json or csv for machine consumption.`,
		RunE: runTimeline,
	}
)

func init() {
	timelineCmd.Flags().StringVarP(&timelineOutput, "output", "o", "bars",
		"Output format (bars, json, csv)")
	rootCmd.AddCommand(timelineCmd)
}

func runTimeline(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}

	start, end, err := queryWindow()
	if err != nil {
		return err
	}

	src, _ := buildSource()
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

	if timelineOutput == "bars" {
		return formatter.NewBarFormatter().Format(report)
	}
	return formatter.New(timelineOutput).Format(report)
}
