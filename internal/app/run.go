package app

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"hotkeyedit/internal/config"
	"hotkeyedit/internal/globalhotkey"
	"hotkeyedit/internal/hotkey"
	"hotkeyedit/internal/logging"
)

// RunOptions wires the TUI to its environment.
type RunOptions struct {
	Config     config.Config
	ConfigPath string
	Initial    hotkey.HotKey
	// Registrar binds [global] hotkeys system-wide. Nil disables them.
	Registrar globalhotkey.Registrar
	Logger    logging.Logger
	// Watch reloads the config file when it changes on disk.
	Watch bool
}

// Run starts the TUI and blocks until it exits. It returns the hotkey
// bound when the user quit.
func Run(ctx context.Context, opts RunOptions) (hotkey.HotKey, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keybindingsPath, err := opts.Config.ResolveKeybindingsPath()
	if err != nil {
		return hotkey.None, err
	}
	bindings, err := LoadKeybindings(keybindingsPath)
	if err != nil {
		logger.Warn("keybindings_load_failed", logging.F("path", keybindingsPath), logging.F("error", err))
		bindings = DefaultKeybindings()
	}

	globals, err := opts.Config.GlobalBindings()
	if err != nil {
		return hotkey.None, err
	}
	var program *tea.Program
	set := globalhotkey.NewSet(opts.Registrar, func(b globalhotkey.Binding) {
		program.Send(globalHotkeyMsg{binding: b})
	}, logging.Named(logger, "globalhotkey"))
	defer func() {
		if err := set.Close(); err != nil {
			logger.Warn("global_hotkeys_close_failed", logging.F("error", err))
		}
	}()

	model, err := NewModel(Options{
		Config:      opts.Config,
		ConfigPath:  opts.ConfigPath,
		Initial:     opts.Initial,
		Keybindings: bindings,
		Suppressor:  set,
		Logger:      logger,
	})
	if err != nil {
		return hotkey.None, err
	}
	program = tea.NewProgram(model, tea.WithContext(ctx))

	// Bindings are added once program exists; a press blocks in Send until
	// the event loop starts.
	if opts.Registrar != nil {
		for _, binding := range globals {
			if err := set.Add(binding.Label, binding.HotKey); err != nil {
				logger.Warn("global_hotkey_unavailable", logging.F("label", binding.Label), logging.F("error", err))
				continue
			}
			model.globals = append(model.globals, binding)
		}
		if len(model.globals) < len(globals) {
			model.enqueueStartupToast(toastLevelWarning, "some global hotkeys could not be registered, see the log")
		}
	}

	if opts.Watch && opts.ConfigPath != "" {
		go func() {
			err := config.Watch(ctx, opts.ConfigPath, func(cfg config.Config, err error) {
				program.Send(configReloadedMsg{cfg: cfg, err: err})
			})
			if err != nil {
				logger.Warn("config_watch_failed", logging.F("path", opts.ConfigPath), logging.F("error", err))
			}
		}()
	}

	logger.Info("ui_start", logging.F("globals", len(model.globals)))
	_, err = program.Run()
	model.Editor().Close()
	value := model.Editor().Field().Value()
	logger.Info("ui_exit", logging.F("hotkey", value))
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}
	return value, err
}
