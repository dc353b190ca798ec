// ula_script.go - Lua scripted CPU stand-in that drives the ULA screen

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

/*
ula_script.go - Lua Screen Driver

There is no Z80 core in this program, so display file traffic is produced by
Lua scripts instead. A script plays the part of the CPU: it pokes the display
file, writes the border port and burns T-states, and every store reaches the
screen with the exact frame clock at which it happened. This is enough to
reproduce beam racing effects such as mid-cell attribute splits.

Lua API:
  poke(addr, value)   store a byte through the bus at the current clock
  peek(addr)          read a byte back
  border(color)       OUT (0xFE), color
  wait(tstates)       advance the clock; frame boundaries are handled
  clock()             T-states since the start of the frame
  frame()             finish the current frame now
  machine             table: name, first_pixel, line, frame

If the script defines a global on_frame(n), Frame(n) calls it once per frame.
*/

package main

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// ScriptError wraps a failure raised while loading or running a script.
type ScriptError struct {
	Script string
	Err    error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("script %s: %v", e.Script, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}

// ScriptHost runs Lua scripts against a ZXBus.
type ScriptHost struct {
	L    *lua.LState
	bus  *ZXBus
	name string
}

func NewScriptHost(bus *ZXBus) *ScriptHost {
	h := &ScriptHost{
		L:    lua.NewState(),
		bus:  bus,
		name: "<none>",
	}
	h.register()
	return h
}

func (h *ScriptHost) Close() {
	h.L.Close()
}

func (h *ScriptHost) register() {
	L := h.L
	L.SetGlobal("poke", L.NewFunction(h.luaPoke))
	L.SetGlobal("peek", L.NewFunction(h.luaPeek))
	L.SetGlobal("border", L.NewFunction(h.luaBorder))
	L.SetGlobal("wait", L.NewFunction(h.luaWait))
	L.SetGlobal("clock", L.NewFunction(h.luaClock))
	L.SetGlobal("frame", L.NewFunction(h.luaFrame))

	specs := h.bus.specs
	machine := L.NewTable()
	L.SetField(machine, "name", lua.LString(specs.Name))
	L.SetField(machine, "first_pixel", lua.LNumber(specs.ClocksFirstPixel))
	L.SetField(machine, "line", lua.LNumber(specs.ClocksLine))
	L.SetField(machine, "frame", lua.LNumber(specs.ClocksFrame))
	L.SetGlobal("machine", machine)
}

// RunString executes a chunk of Lua source.
func (h *ScriptHost) RunString(name, source string) error {
	h.name = name
	if err := h.L.DoString(source); err != nil {
		return &ScriptError{Script: name, Err: err}
	}
	return nil
}

// RunFile executes a Lua file.
func (h *ScriptHost) RunFile(path string) error {
	h.name = path
	if err := h.L.DoFile(path); err != nil {
		return &ScriptError{Script: path, Err: err}
	}
	return nil
}

// Frame runs one frame: on_frame(n) if the script defines it, then the frame
// boundary unless the script already crossed one.
func (h *ScriptHost) Frame(n int) error {
	before := h.bus.Frames()
	if fn := h.L.GetGlobal("on_frame"); fn.Type() == lua.LTFunction {
		err := h.L.CallByParam(lua.P{
			Fn:      fn,
			NRet:    0,
			Protect: true,
		}, lua.LNumber(n))
		if err != nil {
			return &ScriptError{Script: h.name, Err: err}
		}
	}
	if h.bus.Frames() == before {
		h.bus.EndFrame()
	}
	return nil
}

func checkAddress(L *lua.LState, n int) uint16 {
	addr := L.CheckInt(n)
	if addr < 0 || addr > 0xFFFF {
		L.ArgError(n, fmt.Sprintf("address %d out of range", addr))
	}
	return uint16(addr)
}

func (h *ScriptHost) luaPoke(L *lua.LState) int {
	addr := checkAddress(L, 1)
	value := L.CheckInt(2)
	h.bus.Write(addr, byte(value))
	return 0
}

func (h *ScriptHost) luaPeek(L *lua.LState) int {
	addr := checkAddress(L, 1)
	L.Push(lua.LNumber(h.bus.Read(addr)))
	return 1
}

func (h *ScriptHost) luaBorder(L *lua.LState) int {
	color := L.CheckInt(1)
	h.bus.Out(Z80_ULA_PORT, byte(color))
	return 0
}

func (h *ScriptHost) luaWait(L *lua.LState) int {
	cycles := L.CheckInt(1)
	if cycles < 0 {
		L.ArgError(1, "negative T-state count")
	}
	h.bus.Tick(cycles)
	for h.bus.FrameDue() {
		h.bus.EndFrame()
	}
	return 0
}

func (h *ScriptHost) luaClock(L *lua.LState) int {
	L.Push(lua.LNumber(h.bus.Clock()))
	return 1
}

func (h *ScriptHost) luaFrame(L *lua.LState) int {
	h.bus.EndFrame()
	return 0
}
