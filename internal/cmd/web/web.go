// Package web parses web command flags and launches the posts dashboard.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	entrypoint "github.com/louisbranch/postboard/internal/platform/cmd"
	"github.com/louisbranch/postboard/internal/services/web"
	"github.com/louisbranch/postboard/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/postboard/internal/services/web/postcache"
	webstorage "github.com/louisbranch/postboard/internal/services/web/storage"
	"github.com/louisbranch/postboard/internal/services/web/storage/sqlite"
	"github.com/louisbranch/postboard/internal/upstream/jsonplaceholder"
	"golang.org/x/sync/errgroup"
)

// DotEnvVar names the variable that points at the optional dotenv file.
const DotEnvVar = "POSTBOARD_DOTENV"

const defaultDotEnvPath = ".env"

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string        `env:"POSTBOARD_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	UpstreamBaseURL     string        `env:"POSTBOARD_UPSTREAM_BASE_URL" envDefault:"https://jsonplaceholder.typicode.com"`
	CachePath           string        `env:"POSTBOARD_WEB_CACHE_PATH" envDefault:"data/web-cache.db"`
	CacheTTL            time.Duration `env:"POSTBOARD_CACHE_TTL" envDefault:"5m"`
	CacheSweepInterval  time.Duration `env:"POSTBOARD_CACHE_SWEEP_INTERVAL" envDefault:"1m"`
	UpstreamReadRetries uint          `env:"POSTBOARD_UPSTREAM_READ_RETRIES" envDefault:"2"`
	TrustForwardedProto bool          `env:"POSTBOARD_WEB_TRUST_FORWARDED_PROTO" envDefault:"false"`
}

// ParseConfig loads the optional dotenv file, then environment defaults,
// then flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	dotenvPath, ok := os.LookupEnv(DotEnvVar)
	if !ok {
		dotenvPath = defaultDotEnvPath
	}
	var cfg Config
	if err := entrypoint.ParseConfigWithDotEnv(&cfg, dotenvPath); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.UpstreamBaseURL, "upstream-base-url", cfg.UpstreamBaseURL, "Posts API base URL")
	fs.StringVar(&cfg.CachePath, "cache-path", cfg.CachePath, "Web cache SQLite path (empty disables caching, :memory: keeps it in process)")
	fs.DurationVar(&cfg.CacheTTL, "cache-ttl", cfg.CacheTTL, "How long fetched posts stay fresh")
	fs.DurationVar(&cfg.CacheSweepInterval, "cache-sweep-interval", cfg.CacheSweepInterval, "How often expired cache rows are purged")
	fs.UintVar(&cfg.UpstreamReadRetries, "upstream-read-retries", cfg.UpstreamReadRetries, "Retries after a failed upstream read")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto for same-origin checks")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server and the cache sweeper under telemetry.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		return run(ctx, cfg)
	})
}

func run(ctx context.Context, cfg Config) error {
	client, err := jsonplaceholder.New(cfg.UpstreamBaseURL, jsonplaceholder.WithReadRetries(cfg.UpstreamReadRetries))
	if err != nil {
		return fmt.Errorf("init posts client: %w", err)
	}

	var store webstorage.Store
	if path := strings.TrimSpace(cfg.CachePath); path != "" {
		cacheStore, err := sqlite.Open(path)
		if err != nil {
			return fmt.Errorf("open web cache: %w", err)
		}
		defer func() {
			if err := cacheStore.Close(); err != nil {
				log.Printf("close web cache: %v", err)
			}
		}()
		store = cacheStore
	} else {
		log.Printf("web cache disabled; every page reads the posts API")
	}

	server, err := web.NewServer(ctx, web.Config{
		HTTPAddr:            cfg.HTTPAddr,
		Posts:               postcache.New(client, store, postcache.WithTTL(cfg.CacheTTL)),
		RequestSchemePolicy: requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Printf("web listening addr=%s upstream=%s", server.Addr(), client.BaseURL())
		if err := server.ListenAndServe(groupCtx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		postcache.RunSweeper(groupCtx, store, cfg.CacheSweepInterval)
		return nil
	})
	return group.Wait()
}
