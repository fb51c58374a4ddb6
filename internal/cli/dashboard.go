package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/AlvaroPrates/flowpay/internal/models"
	"github.com/AlvaroPrates/flowpay/internal/wire"
)

// DashboardCmd returns the dashboard command
func DashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show consolidated distribution metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			metrics, err := wire.DashboardService().GetMetrics(ctx)
			if err != nil {
				return fmt.Errorf("failed to get metrics: %w", err)
			}

			header := color.New(color.Bold)
			header.Println("FlowPay distribution")
			fmt.Printf("  Active attendances: %d\n", metrics.TotalActiveAttendances)
			fmt.Printf("  Queued:             %d\n", metrics.TotalQueued)
			fmt.Printf("  Agents:             %d (%d available)\n",
				metrics.TotalAgents, metrics.AvailableAgents)
			fmt.Println()

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TEAM\tACTIVE\tQUEUED")
			for _, team := range models.AllTeams() {
				name := string(team)
				queued := metrics.QueuedByTeam[name]
				marker := ""
				if queued > 0 {
					marker = color.New(color.FgYellow).Sprintf(" ← %d waiting", queued)
				}
				fmt.Fprintf(w, "%s\t%d\t%d%s\n", name, metrics.ActiveByTeam[name], queued, marker)
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(dashboardTeamCmd())

	return cmd
}

func dashboardTeamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "team [team]",
		Short: "Show one team's agents and backlog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := wire.DashboardService().GetTeamStatus(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get team status: %w", err)
			}

			color.New(color.Bold).Printf("Team %s\n", status.Team)
			fmt.Printf("  Active attendances: %d\n", status.ActiveAttendances)
			fmt.Printf("  Queue size:         %d\n", status.QueueSize)
			fmt.Println()

			fmt.Println("Agents:")
			if len(status.Agents) == 0 {
				fmt.Println("  (none registered)")
			}
			for _, agent := range status.Agents {
				marker := ""
				if !agent.Available {
					marker = color.New(color.FgRed).Sprint(" [full]")
				}
				fmt.Printf("  %s  %s  %d/%d%s\n",
					agent.ID, agent.Name, agent.ActiveCount, agent.MaxCapacity, marker)
			}

			if len(status.Queue) > 0 {
				fmt.Println()
				fmt.Println("Backlog:")
				for i, a := range status.Queue {
					fmt.Printf("  %d. [%d] %s: %s\n", i+1, a.ID, a.ClientName, a.Subject)
				}
			}
			return nil
		},
	}
}
