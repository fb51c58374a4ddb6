package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/AlvaroPrates/flowpay/internal/wire"
)

// QueueCmd returns the queue command
func QueueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Inspect and administer team backlogs",
	}

	cmd.AddCommand(queueListCmd())
	cmd.AddCommand(queueSizeCmd())
	cmd.AddCommand(queueClearCmd())

	return cmd
}

func queueListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [team]",
		Short: "List a team's backlog in queue order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			queue, err := wire.QueueService().ListQueue(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list queue: %w", err)
			}

			if len(queue) == 0 {
				fmt.Printf("Backlog for team %s is empty.\n", args[0])
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "POS\tID\tCLIENT\tSUBJECT")
			for i, a := range queue {
				fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", i+1, a.ID, a.ClientName, a.Subject)
			}
			return w.Flush()
		},
	}
}

func queueSizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "size [team]",
		Short: "Show a team's backlog size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := wire.QueueService().QueueSize(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get queue size: %w", err)
			}
			fmt.Printf("%d\n", size)
			return nil
		},
	}
}

func queueClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear [team]",
		Short: "Empty a team's backlog (administrative)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			if !force {
				return fmt.Errorf("clearing a backlog discards waiting attendances; re-run with --force")
			}

			removed, err := wire.QueueService().ClearQueue(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to clear queue: %w", err)
			}
			fmt.Printf("✓ Cleared %d attendances from team %s backlog\n", removed, args[0])
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Confirm the clear")

	return cmd
}
