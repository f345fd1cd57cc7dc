package cmd

import (
	"github.com/cinescope/cinescope/pkg/logger"
	"github.com/cinescope/cinescope/pkg/session"
	"github.com/cinescope/cinescope/server"

	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the discovery server",
	Long:  `start the discovery server`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		manager, cfg := newManager()
		sessions := session.NewStore()

		srv := server.New(log, manager, sessions, cfg.Images.BaseURL)
		log.Error(srv.Serve(cfg.Server.Port))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
