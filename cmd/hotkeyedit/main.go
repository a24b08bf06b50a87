package main

import (
	"fmt"
	"os"
)

const usageText = `hotkeyedit captures and validates keyboard shortcuts.

Usage:
  hotkeyedit <command> [flags]

Commands:
  edit     run the hotkey editor (terminal UI)
  decide   run one key event through the capture policy
  render   print the display text of a hotkey
  config   print configuration (effective or defaults)
  keys     list known key names
  help     show help

Flags:
  -h, --help   show help

Edit flags:
  --config PATH   config file (default ~/.hotkeyedit/config.toml)
  --value HOTKEY  initial value, e.g. ctrl+alt+shift+k
  --no-watch      do not reload the config file when it changes
  --no-global     do not register [global] hotkeys

Examples:
  hotkeyedit edit --value ctrl+alt+shift+k
  hotkeyedit decide --key q --mods ctrl+alt+shift --format toml
  hotkeyedit render ctrl+alt+f5
  hotkeyedit config --default --format toml
`

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		return
	}

	wiring := defaultCommandWiring(os.Stdout, os.Stderr)
	commands := buildCommands(wiring)

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return
	}

	runner, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(2)
	}
	runOnMainThread(func() {
		exitOnErr(args[0], runner.Run(args[1:]), wiring.stderr)
	})
}
