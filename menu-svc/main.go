package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"restaurant-manager/config"
	"restaurant-manager/menu-svc/internal/api/console"
	"restaurant-manager/menu-svc/internal/domain"
	"restaurant-manager/menu-svc/internal/service"
	"restaurant-manager/menu-svc/internal/storage"
)

const usage = "Usage: menu-svc restName fileName [isObject]"

type startup struct {
	name     string
	fileName string
	format   domain.Format
}

// parseArgs accepts the restaurant name, the state file (empty for a new
// menu) and an optional object-format flag that defaults to text.
func parseArgs(args []string) (startup, error) {
	if len(args) < 2 {
		return startup{}, errors.New(usage)
	}
	s := startup{name: args[0], fileName: args[1], format: domain.FormatText}
	if len(args) >= 3 {
		isObject, err := strconv.ParseBool(args[2])
		if err != nil {
			return startup{}, fmt.Errorf("isObject must be true or false, got %q", args[2])
		}
		s.format = domain.FormatFromObjectFlag(isObject)
	}
	return s, nil
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		Level(level).
		With().Timestamp().Str("service", "menu-svc").Logger()
}

// sideChannels connects the optional integrations that are configured.
func sideChannels(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (service.Options, func()) {
	opts := service.Options{
		Cards: service.DefaultMenuCardGenerator{Size: 256},
		OnSideEffectError: func(op string, err error) {
			logger.Warn().Err(err).Str("op", op).Msg("side channel failed")
		},
	}
	var closers []func() error

	if cfg.DB.Enabled() {
		db := config.MustInitPostgres(cfg.DB)
		repo := storage.NewPostgresRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to prepare menu schema")
		}
		opts.Mirror = repo
		closers = append(closers, db.Close)
		logger.Info().Str("host", cfg.DB.Host).Msg("postgres mirror enabled")
	}
	if cfg.Redis.Enabled() {
		client := config.MustInitRedis(cfg.Redis)
		opts.Stats = storage.NewRedisStatsCache(client, cfg.Redis.TTL)
		closers = append(closers, client.Close)
		logger.Info().Str("addr", cfg.Redis.Addr()).Msg("redis stats cache enabled")
	}
	if cfg.Kafka.Enabled() {
		writer := config.NewKafkaWriter(cfg.Kafka)
		opts.Publisher = storage.NewKafkaPublisher(writer)
		closers = append(closers, writer.Close)
		logger.Info().Str("topic", cfg.Kafka.Topic).Msg("kafka menu events enabled")
	}

	return opts, func() {
		for _, closeFn := range closers {
			if err := closeFn(); err != nil {
				logger.Warn().Err(err).Msg("failed to close side channel")
			}
		}
	}
}

func run(ctx context.Context, args []string, in io.Reader, out io.Writer, logger zerolog.Logger, opts service.Options) error {
	start, err := parseArgs(args)
	if err != nil {
		return err
	}

	stores := service.Stores{Text: storage.NewTextStore(), Object: storage.NewObjectStore()}
	restaurant, err := service.OpenRestaurant(ctx, start.name, start.fileName, start.format, stores, opts)
	if err != nil {
		return fmt.Errorf("%w\nProblem creating Restaurant - exiting program", err)
	}
	logger.Info().Str("restaurant", start.name).Int("items", len(restaurant.ItemNames())).Msg("menu loaded")

	router := console.NewRouter()
	console.NewHandler(restaurant).RegisterRoutes(router)
	return console.Serve(ctx, router, in, out, logger)
}

func main() {
	cfg := config.Load()
	logger := newLogger(os.Stderr, cfg.LogLevel)
	ctx := context.Background()

	if _, err := parseArgs(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	opts, closeAll := sideChannels(ctx, cfg, logger)
	defer closeAll()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, logger, opts); err != nil {
		logger.Error().Err(err).Msg("menu-svc stopped")
		closeAll()
		os.Exit(1)
	}
}
