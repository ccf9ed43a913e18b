package cli

import (
	"github.com/spf13/cobra"

	"github.com/syntree-dev/syntree/internal/api"
	"github.com/syntree-dev/syntree/pkg/cache"
	"github.com/syntree-dev/syntree/pkg/pipeline"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr     string // listen address
	redisURL string // redis connection URL (enables the redis backend)
	mongoURI string // mongodb connection URI (enables the mongo backend)
	mongoDB  string // mongodb database name
	noCache  bool   // disable artifact caching entirely
}

// serveCommand creates the serve command for running the HTTP API.
// The artifact cache backend is file-based by default; --redis or --mongo
// switch to a shared backend for multi-instance deployments.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP rendering API",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.serveCache(cmd, &opts)
			if err != nil {
				return err
			}

			runner := pipeline.NewRunner(store, c.Logger)
			defer runner.Close()

			return api.New(runner, c.Logger).ListenAndServe(cmd.Context(), opts.addr)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.redisURL, "redis", "", "redis URL for the artifact cache (e.g. redis://localhost:6379/0)")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo", "", "mongodb URI for the artifact cache (e.g. mongodb://localhost:27017)")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", "syntree", "mongodb database name")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable artifact caching")

	return cmd
}

// serveCache selects the cache backend from the serve flags.
func (c *CLI) serveCache(cmd *cobra.Command, opts *serveOpts) (cache.Cache, error) {
	switch {
	case opts.noCache:
		return cache.NewNullCache(), nil
	case opts.redisURL != "":
		c.Logger.Info("using redis artifact cache")
		return cache.NewRedisCache(cmd.Context(), opts.redisURL)
	case opts.mongoURI != "":
		c.Logger.Info("using mongodb artifact cache", "db", opts.mongoDB)
		return cache.NewMongoCache(cmd.Context(), opts.mongoURI, opts.mongoDB)
	default:
		return newCache(false)
	}
}
