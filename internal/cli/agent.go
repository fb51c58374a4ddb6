// Package cli contains the cobra commands wiring the primary ports to
// the terminal.
package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/AlvaroPrates/flowpay/internal/ports/primary"
	"github.com/AlvaroPrates/flowpay/internal/wire"
)

// AgentCmd returns the agent command
func AgentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Manage agents (workers with bounded capacity)",
		Long:  `Register and inspect agents. Each agent belongs to one team and handles at most 3 concurrent attendances.`,
	}

	cmd.AddCommand(agentRegisterCmd())
	cmd.AddCommand(agentListCmd())
	cmd.AddCommand(agentShowCmd())

	return cmd
}

func agentRegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register [name]",
		Short: "Register a new agent",
		Long: `Register a new agent in a team with zero active attendances.

Examples:
  flowpay agent register "Ana Silva" --team CARDS
  flowpay agent register "Carlos Souza" --team LOANS`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			team, _ := cmd.Flags().GetString("team")

			agent, err := wire.AgentService().RegisterAgent(ctx, primary.RegisterAgentRequest{
				Name: args[0],
				Team: team,
			})
			if err != nil {
				return fmt.Errorf("failed to register agent: %w", err)
			}

			fmt.Printf("✓ Registered agent %s: %s (team %s)\n", agent.ID, agent.Name, agent.Team)
			return nil
		},
	}

	cmd.Flags().String("team", "", "Team the agent belongs to (CARDS, LOANS, OTHER)")
	cmd.MarkFlagRequired("team")

	return cmd
}

func agentListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			team, _ := cmd.Flags().GetString("team")
			availableOnly, _ := cmd.Flags().GetBool("available")

			var agents []*primary.Agent
			var err error
			switch {
			case availableOnly && team != "":
				agents, err = wire.AgentService().ListAvailableAgents(ctx, team)
			case team != "":
				agents, err = wire.AgentService().ListAgentsByTeam(ctx, team)
			case availableOnly:
				return fmt.Errorf("--available requires --team")
			default:
				agents, err = wire.AgentService().ListAgents(ctx)
			}
			if err != nil {
				return fmt.Errorf("failed to list agents: %w", err)
			}

			if len(agents) == 0 {
				fmt.Println("No agents found.")
				fmt.Println()
				fmt.Println("Register your first agent:")
				fmt.Println("  flowpay agent register \"Ana Silva\" --team CARDS")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTEAM\tACTIVE\tAVAILABLE")
			for _, agent := range agents {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d\t%v\n",
					agent.ID, agent.Name, agent.Team,
					agent.ActiveCount, agent.MaxCapacity, agent.Available)
			}
			return w.Flush()
		},
	}

	cmd.Flags().String("team", "", "Filter by team")
	cmd.Flags().Bool("available", false, "Only agents with spare capacity")

	return cmd
}

func agentShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show one agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			agent, err := wire.AgentService().GetAgent(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get agent: %w", err)
			}

			fmt.Printf("Agent %s\n", agent.ID)
			fmt.Printf("  Name:      %s\n", agent.Name)
			fmt.Printf("  Team:      %s\n", agent.Team)
			fmt.Printf("  Active:    %d/%d\n", agent.ActiveCount, agent.MaxCapacity)
			fmt.Printf("  Available: %v\n", agent.Available)
			return nil
		},
	}
}
