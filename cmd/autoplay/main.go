package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/puluc/automatic"
	"github.com/domino14/puluc/config"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	numGames := cfg.GetInt(config.ConfigAutoplayGames)
	threads := cfg.GetInt(config.ConfigAutoplayThreads)
	log.Info().Int("games", numGames).Int("threads", threads).
		Str("seed", cfg.GetString(config.ConfigSeed)).Msg("starting autoplay")

	tstart := time.Now()
	summary, err := automatic.Run(ctx, cfg, numGames, threads,
		cfg.GetString(config.ConfigAutoplayLogfile))
	if err != nil {
		log.Fatal().Err(err).Msg("autoplay failed")
	}
	log.Info().Dur("elapsed", time.Since(tstart)).Msg("autoplay done")

	fmt.Print(summary.String())
	if err := summary.Histogram(os.Stdout); err != nil {
		log.Error().Err(err).Msg("histogram")
	}

	if path := cfg.GetString(config.ConfigAutoplaySummary); path != "" {
		f, err := os.Create(path)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create summary file")
		}
		defer f.Close()
		if err := summary.WriteYAML(f); err != nil {
			log.Fatal().Err(err).Msg("could not write summary")
		}
		log.Info().Str("file", path).Msg("wrote summary")
	}
}
