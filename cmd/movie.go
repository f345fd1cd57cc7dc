package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cinescope/cinescope/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// movieCmd represents the movie command
var movieCmd = &cobra.Command{
	Use:   "movie <id>",
	Short: "show a movie by id",
	Long:  `show a movie by id, including its credits`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		id, err := strconv.Atoi(args[0])
		if err != nil {
			log.Fatal("movie id must be an integer", zap.String("arg", args[0]))
		}

		manager, _ := newManager()
		det := manager.Details(context.Background(), id)
		if det == nil {
			log.Fatal("movie not found", zap.Int("id", id))
		}

		b, err := json.MarshalIndent(det, "", "  ")
		if err != nil {
			log.Fatal("failed to marshal movie", zap.Error(err))
		}

		fmt.Println(string(b))
	},
}

func init() {
	rootCmd.AddCommand(movieCmd)
}
