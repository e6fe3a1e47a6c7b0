package automatic

// Data collection for automatic games: computer vs computer, many at once.

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/puluc/config"
)

const LogHeader = "player,gameID,turn,distance,play,choices,captured,bonus,whiteRemoved,blackRemoved\n"

var (
	CVCCounter *expvar.Int
	IsPlaying  *expvar.Int
)

func init() {
	CVCCounter = expvar.NewInt("cvcCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

// gameSeed derives the seed for game i so that a seeded run is the same
// no matter how many workers play it.
func gameSeed(seed []byte, i int) []byte {
	if len(seed) == 0 {
		return nil
	}
	return fmt.Appendf(append([]byte(nil), seed...), "-game%d", i)
}

// Run plays numGames random games on the given number of threads and
// returns their summary. If outputFilename is not empty, every turn is
// logged to it as CSV. Canceling ctx stops the run early; the summary then
// covers the games that completed.
func Run(ctx context.Context, cfg *config.Config, numGames, threads int,
	outputFilename string) (*Summary, error) {

	if IsPlaying.Value() > 0 {
		return nil, errors.New("games are already being played, please wait till complete")
	}
	if threads < 1 {
		threads = 1
	}
	// Fail on bad rules before any goroutines start.
	if _, err := cfg.Rules(); err != nil {
		return nil, err
	}

	var logChan chan string
	writer := errgroup.Group{}
	if outputFilename != "" {
		logfile, err := os.Create(outputFilename)
		if err != nil {
			return nil, err
		}
		logChan = make(chan string, 100)
		writer.Go(func() error {
			defer logfile.Close()
			if _, err := logfile.WriteString(LogHeader); err != nil {
				return err
			}
			for msg := range logChan {
				if _, err := logfile.WriteString(msg); err != nil {
					// keep draining so the players don't block
					for range logChan {
					}
					return err
				}
			}
			log.Debug().Msg("Exiting turn logger goroutine!")
			return nil
		})
	}

	log.Debug().Msgf("Starting %v games, %v threads", numGames, threads)
	CVCCounter.Set(0)
	seed := cfg.Seed()
	summary := NewSummary()
	var mu sync.Mutex

	jobs := make(chan int, 100)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < numGames; i++ {
			select {
			case jobs <- i:
			case <-gctx.Done():
				log.Info().Msg("Got stop signal, exiting soon...")
				return nil
			}
			if (i+1)%1000 == 0 {
				log.Debug().Msgf("Queued %v jobs", i+1)
			}
		}
		log.Debug().Msg("Finished queueing all jobs.")
		return nil
	})

	for t := 0; t < threads; t++ {
		t := t
		g.Go(func() error {
			r, err := NewGameRunner(logChan, cfg)
			if err != nil {
				return err
			}
			IsPlaying.Add(1)
			defer IsPlaying.Add(-1)
			for i := range jobs {
				r.Init(gameSeed(seed, i))
				res, err := r.PlayGame(gctx)
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return nil
				}
				if err != nil {
					return fmt.Errorf("game %d: %w", i, err)
				}
				mu.Lock()
				summary.Add(res)
				mu.Unlock()
				CVCCounter.Add(1)
			}
			log.Debug().Msgf("Thread %v exiting", t)
			return nil
		})
	}

	err := g.Wait()
	if logChan != nil {
		close(logChan)
	}
	if werr := writer.Wait(); err == nil {
		err = werr
	}
	if err != nil {
		return nil, err
	}
	summary.compute()
	log.Info().Int("games", summary.Games).Msg("All games finished.")
	return summary, nil
}
