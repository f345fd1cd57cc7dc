package cmd

import (
	"net/http"
	"net/url"

	"github.com/cinescope/cinescope/config"
	"github.com/cinescope/cinescope/pkg/discovery"
	mhttp "github.com/cinescope/cinescope/pkg/http"
	"github.com/cinescope/cinescope/pkg/logger"
	"github.com/cinescope/cinescope/pkg/storage/sqlite"
	"github.com/cinescope/cinescope/pkg/tmdb"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// newManager wires a discovery manager from the loaded configuration. It is
// shared by the server and the one-shot query commands. Any wiring failure is
// fatal; nothing can run without a usable client.
func newManager() (*discovery.Manager, config.Config) {
	log := logger.Get()

	cfg, err := config.New(viper.GetViper())
	if err != nil {
		log.Fatal("failed to read configurations", zap.Error(err))
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	tmdbURL := url.URL{
		Scheme: cfg.TMDB.Scheme,
		Host:   cfg.TMDB.Host,
		Path:   "/3",
	}

	httpOpts := []mhttp.ClientOption{
		mhttp.WithHTTPClient(&http.Client{Timeout: tmdb.DefaultTimeout}),
	}
	if cfg.TMDB.MaxRetries > 0 {
		httpOpts = append(httpOpts, mhttp.WithMaxRetries(cfg.TMDB.MaxRetries))
	}
	if cfg.TMDB.BaseBackoff > 0 {
		httpOpts = append(httpOpts, mhttp.WithBaseBackoff(cfg.TMDB.BaseBackoff))
	}

	tmdbClient, err := tmdb.New(tmdbURL.String(), cfg.TMDB.APIKey,
		tmdb.WithHTTPClient(mhttp.NewRateLimitedHTTPClient(httpOpts...)))
	if err != nil {
		log.Fatal("failed to create tmdb client", zap.Error(err))
	}

	opts := []discovery.Option{}
	if cfg.Storage.FilePath != "" {
		store, err := sqlite.New(cfg.Storage.FilePath)
		if err != nil {
			log.Fatal("failed to create storage connection", zap.Error(err))
		}
		opts = append(opts, discovery.WithStorage(store))
	}

	return discovery.New(tmdbClient, opts...), cfg
}
