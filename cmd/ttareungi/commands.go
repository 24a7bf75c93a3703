package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rewired-gh/ttareungi-insights/internal/dashboard"
	"github.com/rewired-gh/ttareungi-insights/internal/logger"
	"github.com/rewired-gh/ttareungi-insights/internal/render"
	"github.com/rewired-gh/ttareungi-insights/internal/telegram"
)

func (a *app) pagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "List dashboard pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, id := range dashboard.Pages() {
				fmt.Fprintf(w, "%s\t%s\n", id, id.Title())
			}
			return w.Flush()
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	var format string
	formats := make([]string, 0, len(render.Formats()))
	for _, f := range render.Formats() {
		formats = append(formats, string(f))
	}

	cmd := &cobra.Command{
		Use:   "show <page>",
		Short: "Render a dashboard page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.cfg.Dashboard.DefaultFormat
			}
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			report, err := a.build(args[0])
			if err != nil {
				return err
			}
			return render.Render(cmd.OutOrStdout(), f, report)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format ("+strings.Join(formats, ", ")+")")
	return cmd
}

func (a *app) sendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <page>",
		Short: "Send a page digest to Telegram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tg := a.cfg.Telegram
			if !tg.Enabled {
				return fmt.Errorf("telegram is disabled; set telegram.enabled in the config")
			}
			report, err := a.build(args[0])
			if err != nil {
				return err
			}
			client, err := telegram.NewClient(tg.BotToken, tg.ChatID, tg.MaxRetries, tg.RetryDelayBase)
			if err != nil {
				return fmt.Errorf("failed to initialize Telegram client: %w", err)
			}
			if err := client.SendReport(report); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sent %s digest (report %s)\n", report.Page, report.ID)
			return nil
		},
	}
}

func (a *app) build(name string) (*dashboard.Report, error) {
	id, err := dashboard.ParsePage(name)
	if err != nil {
		return nil, err
	}
	logger.Debug("Building page %s with top_n=%d", id, a.cfg.Dashboard.TopN)
	return dashboard.Build(id, a.cfg.DashboardOptions())
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ttareungi %s\n", version)
		},
	}
}
