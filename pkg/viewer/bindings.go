package viewer

import (
	"fmt"
	"strings"
)

// Binding maps key names to a command. Key names follow the terminal
// convention: "left", "a", "ctrl+c", "escape", "+".
type Binding struct {
	Cmd  Command
	Keys []string
	Help string
}

// Bindings is the key map shared by every host.
var Bindings = []Binding{
	{CmdRotateLeft, []string{"left", "a"}, "Rotate left"},
	{CmdRotateRight, []string{"right", "d"}, "Rotate right"},
	{CmdRotateUp, []string{"up", "w"}, "Rotate up"},
	{CmdRotateDown, []string{"down", "s"}, "Rotate down"},
	{CmdAmbientUp, []string{"+", "="}, "Brighten ambient light"},
	{CmdAmbientDown, []string{"-", "_"}, "Dim ambient light"},
	{CmdToggleWireframe, []string{"x"}, "Toggle wireframe overlay"},
	{CmdReset, []string{"r"}, "Reset view"},
	{CmdQuit, []string{"escape", "q", "ctrl+c"}, "Quit"},
}

// KeyCommand returns the command bound to a key name, or CmdNone.
func KeyCommand(key string) Command {
	key = strings.ToLower(key)
	for _, b := range Bindings {
		for _, k := range b.Keys {
			if k == key {
				return b.Cmd
			}
		}
	}
	return CmdNone
}

// ControlsHelp formats the key map for usage text.
func ControlsHelp() string {
	var sb strings.Builder
	for _, b := range Bindings {
		fmt.Fprintf(&sb, "  %-18s - %s\n", strings.Join(b.Keys, "/"), b.Help)
	}
	return sb.String()
}
