package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/AlvaroPrates/flowpay/internal/ports/primary"
	"github.com/AlvaroPrates/flowpay/internal/wire"
)

// AttendanceCmd returns the attendance command
func AttendanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attendance",
		Short: "Manage attendances (units of work)",
		Long:  `Submit, complete and inspect attendances. Submissions are assigned immediately when the team has spare capacity, otherwise queued.`,
	}

	cmd.AddCommand(attendanceCreateCmd())
	cmd.AddCommand(attendanceCompleteCmd())
	cmd.AddCommand(attendanceShowCmd())
	cmd.AddCommand(attendanceListCmd())

	return cmd
}

func attendanceCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [subject]",
		Short: "Submit a new attendance",
		Long: `Submit a new attendance for distribution.

Examples:
  flowpay attendance create "Credit card problems" --client "João Silva" --team CARDS
  flowpay attendance create "Loan renegotiation" --client "Maria Santos" --team LOANS`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			client, _ := cmd.Flags().GetString("client")
			team, _ := cmd.Flags().GetString("team")

			attendance, err := wire.DistributorService().Submit(ctx, primary.SubmitAttendanceRequest{
				Team:       team,
				ClientName: client,
				Subject:    args[0],
			})
			if err != nil {
				return fmt.Errorf("failed to submit attendance: %w", err)
			}

			fmt.Printf("✓ Created attendance %d: %s\n", attendance.ID, attendance.Subject)
			if attendance.AgentID != "" {
				fmt.Printf("  Assigned to agent %s\n", attendance.AgentID)
			} else {
				fmt.Printf("  Queued in team %s backlog\n", attendance.Team)
			}
			return nil
		},
	}

	cmd.Flags().String("client", "", "Client name")
	cmd.Flags().String("team", "", "Responsible team (CARDS, LOANS, OTHER)")
	cmd.MarkFlagRequired("client")
	cmd.MarkFlagRequired("team")

	return cmd
}

func attendanceCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete [id]",
		Short: "Complete an assigned attendance",
		Long:  `Complete an assigned attendance, releasing its agent's capacity and draining the team backlog onto the freed slot.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			resp, err := wire.DistributorService().Complete(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to complete attendance: %w", err)
			}

			fmt.Printf("✓ Completed attendance %d\n", resp.Attendance.ID)
			for _, drained := range resp.Drained {
				fmt.Printf("  Drained attendance %d from backlog to agent %s\n",
					drained.ID, drained.AgentID)
			}
			return nil
		},
	}
}

func attendanceShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show one attendance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			attendance, err := wire.AttendanceService().GetAttendance(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get attendance: %w", err)
			}

			fmt.Printf("Attendance %d\n", attendance.ID)
			fmt.Printf("  Client:  %s\n", attendance.ClientName)
			fmt.Printf("  Subject: %s\n", attendance.Subject)
			fmt.Printf("  Team:    %s\n", attendance.Team)
			fmt.Printf("  Status:  %s\n", attendance.Status)
			if attendance.AgentID != "" {
				fmt.Printf("  Agent:   %s\n", attendance.AgentID)
			}
			fmt.Printf("  Created: %s\n", attendance.CreatedAt.Format("2006-01-02 15:04:05"))
			if attendance.AssignedAt != nil {
				fmt.Printf("  Assigned: %s\n", attendance.AssignedAt.Format("2006-01-02 15:04:05"))
			}
			if attendance.CompletedAt != nil {
				fmt.Printf("  Completed: %s\n", attendance.CompletedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}

func attendanceListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List attendances",
		RunE: func(cmd *cobra.Command, args []string) error {
			team, _ := cmd.Flags().GetString("team")
			status, _ := cmd.Flags().GetString("status")

			attendances, err := wire.AttendanceService().ListAttendances(context.Background(), primary.AttendanceFilters{
				Team:   team,
				Status: status,
			})
			if err != nil {
				return fmt.Errorf("failed to list attendances: %w", err)
			}

			if len(attendances) == 0 {
				fmt.Println("No attendances found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCLIENT\tSUBJECT\tTEAM\tSTATUS\tAGENT")
			for _, a := range attendances {
				agent := a.AgentID
				if agent == "" {
					agent = "-"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					a.ID, a.ClientName, a.Subject, a.Team, a.Status, agent)
			}
			return w.Flush()
		},
	}

	cmd.Flags().String("team", "", "Filter by team")
	cmd.Flags().String("status", "", "Filter by status (WAITING, ASSIGNED, COMPLETED)")

	return cmd
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid attendance id %q", arg)
	}
	return id, nil
}
