package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/puluc/automatic"
	"github.com/domino14/puluc/board"
	"github.com/domino14/puluc/config"
	"github.com/domino14/puluc/game"
	"github.com/domino14/puluc/move"
	"github.com/domino14/puluc/movegen"
	"github.com/domino14/puluc/ppn"
	"github.com/domino14/puluc/roll"
)

type Response struct {
	message string
}

type CmdOptions map[string]string

func (c CmdOptions) String(key string) string {
	return c[key]
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v, ok := c[key]
	if !ok {
		return defaultI, nil
	}
	return strconv.Atoi(v)
}

func msg(message string) *Response {
	return &Response{message: message}
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	rules, err := sc.config.Rules()
	if err != nil {
		return nil, err
	}
	sc.game = game.NewGame(rules, roll.NewSource(sc.config.Seed()))
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return nil, errors.New("need a position to load, e.g. load " + ppn.StartingPosition)
	}
	rules, err := sc.config.Rules()
	if err != nil {
		return nil, err
	}
	b, err := ppn.Parse(strings.Join(cmd.args, " "), rules)
	if err != nil {
		return nil, err
	}
	sc.game = game.NewFromBoard(b, roll.NewSource(sc.config.Seed()))
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) pos(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(ppn.Format(sc.game.Board())), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) roll(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	switch len(cmd.args) {
	case 0:
		if _, _, err := sc.game.RollDice(); err != nil {
			return nil, err
		}
	case roll.NumSticks:
		var vals [roll.NumSticks]uint8
		for i, a := range cmd.args {
			v, err := strconv.ParseUint(a, 10, 8)
			if err != nil || v > 1 {
				return nil, fmt.Errorf("stick values are 0 or 1, got %q", a)
			}
			vals[i] = uint8(v)
		}
		if _, err := sc.game.SetRoll(roll.FromValues(vals)); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("usage: roll [v1 v2 v3 v4]")
	}
	return msg(sc.game.ToDisplayText()), nil
}

func moveList(moves []move.Move) string {
	if len(moves) == 0 {
		return "No legal moves."
	}
	var sb strings.Builder
	for i, m := range moves {
		fmt.Fprintf(&sb, "%3d: %s\n", i+1, m.ShortDescription())
	}
	return strings.TrimRight(sb.String(), "\n")
}

// generate lists the moves for the pending throw, or for any distance
// given as an argument without throwing.
func (sc *ShellController) generate(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if cmd.args == nil {
		if _, rolled := sc.game.LastRoll(); !rolled {
			return nil, game.ErrNoRoll
		}
		return msg(moveList(sc.game.LegalMoves())), nil
	}
	d, err := strconv.ParseUint(cmd.args[0], 10, 8)
	if err != nil {
		return nil, err
	}
	moves, err := movegen.LegalMoves(sc.game.Board(), sc.game.PlayerOnTurn(), uint8(d))
	if err != nil {
		return nil, err
	}
	return msg(moveList(moves)), nil
}

func (sc *ShellController) parseMove(args []string) (move.Move, error) {
	switch {
	case len(args) == 1 && strings.HasPrefix(args[0], "#"):
		idx, err := strconv.Atoi(args[0][1:])
		if err != nil {
			return move.Move{}, err
		}
		plays := sc.game.LegalMoves()
		if idx < 1 || idx > len(plays) {
			return move.Move{}, fmt.Errorf("no move #%d; there are %d", idx, len(plays))
		}
		return plays[idx-1], nil
	case len(args) == 2:
		from, err := move.ParseLocation(args[0])
		if err != nil {
			return move.Move{}, err
		}
		to, err := move.ParseLocation(args[1])
		if err != nil {
			return move.Move{}, err
		}
		return move.Move{From: from, To: to}, nil
	}
	return move.Move{}, errors.New("usage: play #n, or play <from> <to>")
}

func describeEffects(player board.Color, m move.Move, eff board.Effects) string {
	played := fmt.Sprintf("%v played %v", player, m.ShortDescription())
	if s := eff.String(); s != "" {
		return played + "; " + s
	}
	return played
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	m, err := sc.parseMove(cmd.args)
	if err != nil {
		return nil, err
	}
	player := sc.game.PlayerOnTurn()
	eff, err := sc.game.PlayMove(m)
	if err != nil {
		return nil, err
	}
	return msg(describeEffects(player, m, eff) + "\n" + sc.game.ToDisplayText()), nil
}

func (sc *ShellController) pass(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	player := sc.game.PlayerOnTurn()
	if err := sc.game.Pass(); err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("%v passed\n%s", player, sc.game.ToDisplayText())), nil
}

func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) > 0 && cmd.args[0] == "stop" {
		if !sc.stopAutoplay() {
			return nil, errors.New("no autoplay running")
		}
		return msg("autoplay stopped"), nil
	}
	if sc.autoplayDone != nil {
		select {
		case <-sc.autoplayDone:
		default:
			return nil, errors.New("autoplay already running; use autoplay stop")
		}
	}

	numGames := sc.config.GetInt(config.ConfigAutoplayGames)
	if len(cmd.args) > 0 {
		n, err := strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, err
		}
		numGames = n
	}
	threads, err := cmd.options.IntDefault("threads", sc.config.GetInt(config.ConfigAutoplayThreads))
	if err != nil {
		return nil, err
	}
	logfile := sc.config.GetString(config.ConfigAutoplayLogfile)
	if f := cmd.options.String("file"); f != "" {
		logfile = f
	}
	summaryFile := sc.config.GetString(config.ConfigAutoplaySummary)
	if f := cmd.options.String("summary"); f != "" {
		summaryFile = f
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	sc.autoplayCancel = cancel
	sc.autoplayDone = done

	go func() {
		defer close(done)
		defer cancel()
		summary, err := automatic.Run(ctx, sc.config, numGames, threads, logfile)
		if err != nil {
			sc.showError(err)
			return
		}
		sc.showMessage(summary.String())
		summary.Histogram(sc.out)
		if summaryFile != "" {
			if err := writeSummary(summary, summaryFile); err != nil {
				sc.showError(err)
			}
		}
	}()
	return msg(fmt.Sprintf("playing %d games on %d threads...", numGames, threads)), nil
}

func writeSummary(s *automatic.Summary, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.WriteYAML(f)
}

// stopAutoplay cancels a running autoplay and waits for it to finish. It
// returns false if nothing was running.
func (sc *ShellController) stopAutoplay() bool {
	if sc.autoplayCancel == nil {
		return false
	}
	select {
	case <-sc.autoplayDone:
		return false
	default:
	}
	log.Info().Msg("stopping autoplay")
	sc.autoplayCancel()
	<-sc.autoplayDone
	return true
}

func (sc *ShellController) autoAnalyze(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return nil, errors.New("please provide a filename to analyze")
	}
	stats, err := automatic.AnalyzeLogFile(cmd.args[0])
	if err != nil {
		return nil, err
	}
	return msg(stats), nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return usage()
	}
	return usageTopic(cmd.args[0])
}
