package automatic

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/domino14/puluc/board"
)

type loggedGame struct {
	turns  int
	winner string
}

// AnalyzeLogFile reads a per-turn CSV log written by Run and spits out a
// bunch of statistics.
func AnalyzeLogFile(filepath string) (string, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return "", err
	}
	defer file.Close()
	return analyzeLog(file)
}

func analyzeLog(in io.Reader) (string, error) {
	r := csv.NewReader(in)

	// Record looks like:
	// player,gameID,turn,distance,play,choices,captured,bonus,whiteRemoved,blackRemoved
	games := map[string]*loggedGame{}
	var order []string
	captures := map[string]int{}
	bonuses := map[string]int{}
	passes := map[string]int{}
	lines := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if record[0] == "player" {
			// this is the header line
			continue
		}
		if len(record) != 10 {
			return "", fmt.Errorf("line %d: expected 10 fields, got %d", lines+1, len(record))
		}
		lines++
		player, gid := record[0], record[1]
		turn, err := strconv.Atoi(record[2])
		if err != nil {
			return "", err
		}
		g, ok := games[gid]
		if !ok {
			g = &loggedGame{}
			games[gid] = g
			order = append(order, gid)
		}
		g.turns = max(g.turns, turn)
		if record[4] == "pass" {
			passes[player]++
		}
		if record[6] == "true" {
			captures[player]++
		}
		if record[7] == "true" {
			bonuses[player]++
		}
		for i, c := range []board.Color{board.White, board.Black} {
			n, err := strconv.Atoi(record[8+i])
			if err != nil {
				return "", err
			}
			if n == board.PiecesPerColor {
				g.winner = c.String()
			}
		}
	}
	if len(games) == 0 {
		return "", errors.New("no games in log")
	}

	turns := lo.Map(order, func(gid string, _ int) float64 {
		return float64(games[gid].turns)
	})
	mean, stdev := stat.MeanStdDev(turns, nil)
	if len(turns) < 2 {
		stdev = 0
	}
	wins := lo.CountValuesBy(lo.Values(games), func(g *loggedGame) string {
		return g.winner
	})

	// build stats string
	stats := fmt.Sprintf("Games played: %d (%d turns)\n", len(games), lines)
	for _, c := range []board.Color{board.White, board.Black} {
		name := c.String()
		stats += fmt.Sprintf("%v wins: %d (%.3f%%)\n", name, wins[name],
			100.0*float64(wins[name])/float64(len(games)))
		stats += fmt.Sprintf("%v captures: %d  bonus turns: %d  passes: %d\n",
			name, captures[name], bonuses[name], passes[name])
	}
	stats += fmt.Sprintf("Unfinished: %d\n", wins[""])
	stats += fmt.Sprintf("Mean turns: %.3f  Stdev: %.3f\n", mean, stdev)
	return stats, nil
}
