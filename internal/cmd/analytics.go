package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/upload-post/uploadpost-cli/internal/api"
)

func newAnalyticsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "analytics",
		Aliases: []string{"an"},
		Short:   "Read engagement and reach metrics",
	}

	cmd.AddCommand(newAnalyticsProfileCmd())
	cmd.AddCommand(newAnalyticsPostCmd())
	cmd.AddCommand(newAnalyticsImpressionsCmd())
	cmd.AddCommand(newAnalyticsMetricsCmd())

	return cmd
}

func newAnalyticsProfileCmd() *cobra.Command {
	var (
		platforms []string
		pageID    string
		pageURN   string
	)

	cmd := &cobra.Command{
		Use:     "profile USERNAME",
		Short:   "Per-platform analytics for a profile",
		Example: `  uploadpost analytics profile demo --platforms tiktok,youtube`,
		Args:    cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			parsed, err := parseTargetPlatforms(platforms)
			if err != nil {
				return err
			}
			client, err := getClient()
			if err != nil {
				return err
			}
			result, err := client.Analytics().Profile(cmd.Context(), args[0], api.ProfileAnalyticsOptions{
				Platforms: parsed,
				PageID:    pageID,
				PageURN:   pageURN,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		}),
	}

	cmd.Flags().StringSliceVar(&platforms, "platforms", nil, "Restrict to these platforms")
	cmd.Flags().StringVar(&pageID, "page-id", "", "Facebook page to report on")
	cmd.Flags().StringVar(&pageURN, "page-urn", "", "LinkedIn organization URN to report on")
	registerStaticCompletions(cmd, "platforms", api.PlatformNames())

	return cmd
}

func newAnalyticsPostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "post REQUEST_ID",
		Short: "Analytics for a single published post",
		Args:  cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			result, err := client.Analytics().Post(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		}),
	}
}

func newAnalyticsImpressionsCmd() *cobra.Command {
	var (
		period    string
		startDate string
		endDate   string
		date      string
		platforms []string
		breakdown bool
		metrics   []string
	)

	cmd := &cobra.Command{
		Use:   "impressions USERNAME",
		Short: "Total impressions for a profile over a period",
		Example: `  uploadpost analytics impressions demo --period last_month
  uploadpost analytics impressions demo --start-date 2026-08-01 --end-date 2026-08-28 --breakdown`,
		Args: cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			parsed, err := parseTargetPlatforms(platforms)
			if err != nil {
				return err
			}
			client, err := getClient()
			if err != nil {
				return err
			}
			result, err := client.Analytics().TotalImpressions(cmd.Context(), args[0], api.ImpressionsOptions{
				Period:    period,
				StartDate: startDate,
				EndDate:   endDate,
				Date:      date,
				Platforms: parsed,
				Breakdown: breakdown,
				Metrics:   metrics,
			})
			if err != nil {
				return err
			}
			if isJSON(cmd) || breakdown {
				return printJSON(cmd, result)
			}

			w := newTabWriterFromCmd(cmd)
			for _, key := range []string{"total_impressions", "total_views", "total_likes", "total_comments", "total_shares"} {
				if v, ok := result[key].(float64); ok {
					_, _ = fmt.Fprintf(w, "%s:\t%.0f\n", key, v)
				}
			}
			if err := w.Flush(); err != nil {
				return err
			}
			return nil
		}),
	}

	cmd.Flags().StringVar(&period, "period", "", "Relative window: last_day, last_week, last_month, last_3months, or last_year")
	cmd.Flags().StringVar(&date, "date", "", "Single day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&startDate, "start-date", "", "Range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "Range end (YYYY-MM-DD)")
	cmd.Flags().StringSliceVar(&platforms, "platforms", nil, "Restrict to these platforms")
	cmd.Flags().BoolVar(&breakdown, "breakdown", false, "Break totals down per platform")
	cmd.Flags().StringSliceVar(&metrics, "metrics", nil, "Metric names to include (e.g. impressions,likes)")
	registerStaticCompletions(cmd, "platforms", api.PlatformNames())
	registerStaticCompletions(cmd, "period", []string{"last_day", "last_week", "last_month", "last_3months", "last_year"})

	return cmd
}

func newAnalyticsMetricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "List the metrics each platform can report",
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			result, err := client.Analytics().PlatformMetrics(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		}),
	}
}
