package shell

import (
	"errors"

	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"
	luajson "layeh.com/gopher-json"
)

func getShell(L *lua.LState) *ShellController {
	shell := L.GetGlobal("puluc_shell")
	ud, ok := shell.(*lua.LUserData)
	if !ok {
		panic("luserdata not right type")
	}
	sc, ok := ud.Value.(*ShellController)
	if !ok {
		panic("shellcontroller not right type")
	}
	return sc
}

// luaCommand wraps a shell handler so a script can call it with the rest
// of the command line as its only argument. The handler's message is
// returned to the script; a failure comes back as "ERROR: ..." so the
// script can decide whether to carry on.
func luaCommand(name string, handler func(*ShellController, *shellcmd) (*Response, error)) lua.LGFunction {
	return func(L *lua.LState) int {
		lv := L.OptString(1, "")
		sc := getShell(L)
		cmd, err := extractFields(name + " " + lv)
		if err != nil {
			log.Err(err).Msg("error-parsing-" + name)
			L.Push(lua.LString("ERROR: " + err.Error()))
			return 1
		}
		r, err := handler(sc, cmd)
		if err != nil {
			log.Err(err).Msg("error-executing-" + name)
			L.Push(lua.LString("ERROR: " + err.Error()))
			return 1
		}
		L.Push(lua.LString(r.message))
		// return number of results pushed to stack.
		return 1
	}
}

// Turn returns the number of the turn in progress.
func Turn(L *lua.LState) int {
	sc := getShell(L)
	if sc.game == nil {
		return 0
	}
	L.Push(lua.LNumber(sc.game.Turn()))
	return 1
}

// OnTurn returns "white" or "black", or nothing once the game is over.
func OnTurn(L *lua.LState) int {
	sc := getShell(L)
	if sc.game == nil || !sc.game.Playing() {
		return 0
	}
	L.Push(lua.LString(sc.game.PlayerOnTurn().String()))
	return 1
}

func (sc *ShellController) script(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return nil, errors.New("need arguments for script")
	}

	filepath := cmd.args[0]

	L := lua.NewState()
	defer L.Close()
	luajson.Preload(L)

	lsc := L.NewUserData()
	lsc.Value = sc

	L.SetGlobal("puluc_shell", lsc)
	L.SetGlobal("puluc_new", L.NewFunction(luaCommand("new", (*ShellController).newGame)))
	L.SetGlobal("puluc_load", L.NewFunction(luaCommand("load", (*ShellController).load)))
	L.SetGlobal("puluc_pos", L.NewFunction(luaCommand("pos", (*ShellController).pos)))
	L.SetGlobal("puluc_roll", L.NewFunction(luaCommand("roll", (*ShellController).roll)))
	L.SetGlobal("puluc_gen", L.NewFunction(luaCommand("gen", (*ShellController).generate)))
	L.SetGlobal("puluc_play", L.NewFunction(luaCommand("play", (*ShellController).play)))
	L.SetGlobal("puluc_pass", L.NewFunction(luaCommand("pass", (*ShellController).pass)))
	L.SetGlobal("puluc_turn", L.NewFunction(Turn))
	L.SetGlobal("puluc_on_turn", L.NewFunction(OnTurn))

	if err := L.DoFile(filepath); err != nil {
		log.Err(err).Str("file", filepath).Msg("script-failed")
		return nil, err
	}
	return msg("ran " + filepath), nil
}
