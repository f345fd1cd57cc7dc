package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cinescope/cinescope/pkg/discovery"
	"github.com/cinescope/cinescope/pkg/logger"
	"github.com/cinescope/cinescope/pkg/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var discoverFlags struct {
	yearFrom  int
	yearTo    int
	genres    []string
	mood      string
	minRating float64
	languages []string
	actor     string
	director  string
	page      int
}

// discoverCmd represents the discover command
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "discover movies matching the given filters",
	Long:  `discover movies matching the given filters`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		manager, _ := newManager()

		filters := discovery.Filters{
			Years:     discovery.YearRange{From: discoverFlags.yearFrom, To: discoverFlags.yearTo},
			Genres:    discoverFlags.genres,
			Mood:      discoverFlags.mood,
			MinRating: discoverFlags.minRating,
			Languages: discoverFlags.languages,
			Actor:     discoverFlags.actor,
			Director:  discoverFlags.director,
		}

		result, _ := manager.Discover(context.Background(), filters, session.NewState(), discoverFlags.page)
		for _, notice := range result.Notices {
			log.Warn(notice)
		}

		b, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Fatal("failed to marshal results", zap.Error(err))
		}

		fmt.Println(string(b))
	},
}

func init() {
	discoverCmd.Flags().IntVar(&discoverFlags.yearFrom, "year-from", discovery.DefaultYearRange.From, "earliest release year")
	discoverCmd.Flags().IntVar(&discoverFlags.yearTo, "year-to", discovery.DefaultYearRange.To, "latest release year")
	discoverCmd.Flags().StringSliceVar(&discoverFlags.genres, "genre", []string{discovery.GenreAll}, "genre names")
	discoverCmd.Flags().StringVar(&discoverFlags.mood, "mood", discovery.MoodAll, "mood preset")
	discoverCmd.Flags().Float64Var(&discoverFlags.minRating, "min-rating", discovery.DefaultMinRating, "minimum vote average")
	discoverCmd.Flags().StringSliceVar(&discoverFlags.languages, "language", []string{discovery.LanguageAny}, "original languages")
	discoverCmd.Flags().StringVar(&discoverFlags.actor, "actor", "", "actor name")
	discoverCmd.Flags().StringVar(&discoverFlags.director, "director", "", "director name")
	discoverCmd.Flags().IntVar(&discoverFlags.page, "page", 1, "result page")
	rootCmd.AddCommand(discoverCmd)
}
