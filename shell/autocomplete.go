package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"
)

// ShellCompleter implements readline.AutoCompleter.
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

var commandNames = []string{
	"new", "load", "pos", "show", "roll", "gen", "play", "pass",
	"autoplay", "autoanalyze", "script", "help", "exit",
}

var commandOptions = map[string][]string{
	"autoplay": {"-threads", "-file", "-summary", "stop"},
	"help":     {"load", "play", "roll", "autoplay", "script"},
	"play":     {"base", "off"},
}

// Do completes command names, then each command's options.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string
	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}
		completions = commandOptions[fields[0]]
	}

	matches := lo.FilterMap(completions, func(s string, _ int) ([]rune, bool) {
		if !strings.HasPrefix(s, prefix) {
			return nil, false
		}
		// readline wants only the part not yet typed
		return []rune(s[len(prefix):] + " "), true
	})
	return matches, len([]rune(prefix))
}
