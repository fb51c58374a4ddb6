package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/AlvaroPrates/flowpay/internal/adapters/httpapi"
	"github.com/AlvaroPrates/flowpay/internal/wire"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the REST API and websocket push channel.

The backend (memory or sqlite) and listen address come from flowpay.yaml
or FLOWPAY_* environment variables.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")

			cfg := wire.Cfg()
			if addr == "" {
				addr = cfg.HTTP.Addr
			}

			server := httpapi.NewServer(
				wire.DistributorService(),
				wire.AgentService(),
				wire.AttendanceService(),
				wire.QueueService(),
				wire.DashboardService(),
				wire.Hub(),
			)

			slog.Info("starting http api", "addr", addr, "backend", cfg.Backend)
			if err := server.App(cfg.HTTP.AllowedOrigins).Listen(addr); err != nil {
				return fmt.Errorf("http server failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().String("addr", "", "Listen address (overrides configuration)")

	return cmd
}
