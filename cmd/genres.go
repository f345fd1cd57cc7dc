package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cinescope/cinescope/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// genresCmd represents the genres command
var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "list the movie genre taxonomy",
	Long:  `list the movie genre taxonomy`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		manager, _ := newManager()
		genres := manager.Genres(context.Background())
		if len(genres) == 0 {
			log.Fatal("no genres loaded")
		}

		b, err := json.MarshalIndent(genres, "", "  ")
		if err != nil {
			log.Fatal("failed to marshal genres", zap.Error(err))
		}

		fmt.Println(string(b))
	},
}

func init() {
	rootCmd.AddCommand(genresCmd)
}
