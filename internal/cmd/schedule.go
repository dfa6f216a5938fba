package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/upload-post/uploadpost-cli/internal/api"
)

func newScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "schedule",
		Aliases: []string{"sched"},
		Short:   "Manage scheduled posts",
	}

	cmd.AddCommand(newScheduleListCmd())
	cmd.AddCommand(newScheduleEditCmd())
	cmd.AddCommand(newScheduleCancelCmd())

	return cmd
}

func newScheduleListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List pending scheduled posts",
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			result, err := client.Schedule().List(cmd.Context())
			if err != nil {
				return err
			}
			if isJSON(cmd) {
				return printJSON(cmd, result)
			}

			jobs, ok := result["scheduled_posts"].([]any)
			if !ok {
				if jobs, ok = result["jobs"].([]any); !ok {
					return printJSON(cmd, result)
				}
			}
			if len(jobs) == 0 {
				printIfNotQuiet(cmd, "No scheduled posts.\n")
				return nil
			}

			w := newTabWriterFromCmd(cmd)
			_, _ = fmt.Fprintln(w, "JOB ID\tSCHEDULED FOR\tTIMEZONE\tPLATFORMS\tTITLE")
			for _, raw := range jobs {
				job, ok := raw.(map[string]any)
				if !ok {
					continue
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					stringField(job, "job_id", "id"),
					stringField(job, "scheduled_date", "scheduled_for"),
					stringField(job, "timezone"),
					platformsField(job),
					stringField(job, "title"))
			}
			return w.Flush()
		}),
	}
}

func newScheduleEditCmd() *cobra.Command {
	var edit api.ScheduleEdit

	cmd := &cobra.Command{
		Use:   "edit JOB_ID",
		Short: "Reschedule a pending post",
		Example: `  uploadpost schedule edit job_123 --date 2026-12-31T09:00:00Z
  uploadpost schedule edit job_123 --timezone America/New_York`,
		Args: cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			result, err := client.Schedule().Edit(cmd.Context(), args[0], edit)
			if err != nil {
				return err
			}
			if isJSON(cmd) {
				return printJSON(cmd, result)
			}
			printIfNotQuiet(cmd, "Rescheduled job %s\n", args[0])
			return nil
		}),
	}

	cmd.Flags().StringVar(&edit.ScheduledDate, "date", "", "New publish time (ISO 8601)")
	cmd.Flags().StringVar(&edit.Timezone, "timezone", "", "New IANA timezone")

	return cmd
}

func newScheduleCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "cancel JOB_ID",
		Aliases: []string{"rm", "delete"},
		Short:   "Cancel a pending scheduled post",
		Args:    cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			result, err := client.Schedule().Cancel(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if isJSON(cmd) {
				return printJSON(cmd, result)
			}
			printIfNotQuiet(cmd, "Cancelled job %s\n", args[0])
			return nil
		}),
	}
}
