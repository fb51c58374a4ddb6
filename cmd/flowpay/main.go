package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AlvaroPrates/flowpay/internal/cli"
	"github.com/AlvaroPrates/flowpay/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "flowpay",
		Short:   "FlowPay - attendance distribution for the service center",
		Version: version.String(),
		Long: `FlowPay distributes attendances across specialized teams (Cards,
Loans, Other), respecting a limit of 3 concurrent attendances per agent.
Attendances that cannot be assigned immediately wait in a per-team FIFO
backlog drained whenever capacity frees up.`,
	}

	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.AgentCmd())
	rootCmd.AddCommand(cli.AttendanceCmd())
	rootCmd.AddCommand(cli.QueueCmd())
	rootCmd.AddCommand(cli.DashboardCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
