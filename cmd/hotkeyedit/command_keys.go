package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"hotkeyedit/internal/hotkey"
)

type KeysCommand struct {
	stdout io.Writer
	stderr io.Writer
}

func NewKeysCommand(stdout, stderr io.Writer) *KeysCommand {
	return &KeysCommand{
		stdout: stdout,
		stderr: stderr,
	}
}

func (c *KeysCommand) Run(args []string) error {
	fs := flag.NewFlagSet("keys", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	configPath := fs.String("config", "", "config file (toml or yaml)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	policy, err := cfg.CapturePolicy()
	if err != nil {
		return err
	}
	labels, err := cfg.KeyLabels()
	if err != nil {
		return err
	}
	printKeys(c.stdout, policy, labels)
	return nil
}

func printKeys(output io.Writer, policy hotkey.Policy, labels hotkey.KeyNameResolver) {
	writer := tabwriter.NewWriter(output, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tLABEL\tUSABLE")
	for _, name := range hotkey.KnownKeyNames() {
		key, err := hotkey.ParseKey(name)
		if err != nil {
			continue
		}
		label := name
		if resolved, ok := labels.KeyName(key); ok && strings.TrimSpace(resolved) != "" {
			label = resolved
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\n", name, label, keyUsability(policy, key))
	}
	_ = writer.Flush()
}

// keyUsability reports whether key can be the primary key of a hotkey
// under policy, holding the required modifiers.
func keyUsability(policy hotkey.Policy, key hotkey.Key) string {
	decision := hotkey.Decide(hotkey.KeyEvent{Key: key, Modifiers: policy.MinRequired}, policy)
	switch decision.Outcome {
	case hotkey.Accept:
		return "yes"
	case hotkey.Clear:
		return "clears"
	default:
		return string(decision.Reason)
	}
}
