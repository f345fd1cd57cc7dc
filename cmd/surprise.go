package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cinescope/cinescope/pkg/discovery"
	"github.com/cinescope/cinescope/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var surpriseFlags struct {
	yearFrom int
	yearTo   int
}

// surpriseCmd represents the surprise command
var surpriseCmd = &cobra.Command{
	Use:   "surprise",
	Short: "fetch a random page of highly rated movies",
	Long:  `fetch a random page of highly rated movies within a year range`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		manager, _ := newManager()
		years := discovery.YearRange{From: surpriseFlags.yearFrom, To: surpriseFlags.yearTo}

		result, page := manager.Surprise(context.Background(), years)
		for _, notice := range result.Notices {
			log.Info(notice)
		}
		log.Info("sampled page", zap.Int("page", page))

		b, err := json.MarshalIndent(result.Movies, "", "  ")
		if err != nil {
			log.Fatal("failed to marshal results", zap.Error(err))
		}

		fmt.Println(string(b))
	},
}

func init() {
	surpriseCmd.Flags().IntVar(&surpriseFlags.yearFrom, "year-from", discovery.DefaultYearRange.From, "earliest release year")
	surpriseCmd.Flags().IntVar(&surpriseFlags.yearTo, "year-to", discovery.DefaultYearRange.To, "latest release year")
	rootCmd.AddCommand(surpriseCmd)
}
