package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/cinescope/cinescope/pkg/logger"
	"github.com/cinescope/cinescope/pkg/session"
	"github.com/spf13/cobra"
)

// personCmd represents the person command
var personCmd = &cobra.Command{
	Use:   "person <name>",
	Short: "resolve a person name to their id",
	Long:  `resolve a person name to their id the way the person filters do`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		name := strings.Join(args, " ")
		manager, _ := newManager()

		id, _ := manager.ResolvePerson(context.Background(), name, session.RoleActor, session.NewState())
		if id == nil {
			log.Fatalf("no match for %q", name)
		}

		fmt.Println(*id)
	},
}

func init() {
	rootCmd.AddCommand(personCmd)
}
