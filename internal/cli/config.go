package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/amterp/ra"
	"github.com/amterp/swatch/internal/config"
	"github.com/amterp/swatch/internal/editor"
	"github.com/amterp/swatch/internal/store"
)

func registerConfig(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("config")
	cmd.SetDescription("Open the config file in your editor")

	ctx.ConfigPath, _ = ra.NewBool("path").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Print the config file path and exit").
		Register(cmd)

	ctx.ConfigUsed, _ = parent.RegisterCmd(cmd)
}

func runConfig(pathOnly, nonInteractive bool) {
	configStore := store.NewConfigStore(config.DefaultPaths())
	path := configStore.Path()

	if pathOnly {
		fmt.Println(path)
		return
	}
	if path == "" {
		Fatal(fmt.Errorf("no config location: set $%s or HOME", config.ConfigEnvVar))
	}
	if nonInteractive {
		Fatal(errors.New("config opens an editor; use --path to locate the file instead"))
	}

	if err := configStore.EnsureExists(); err != nil {
		Fatal(err)
	}

	// A broken config still opens, with the default editor
	var editorCmd string
	if cfg, err := configStore.Load(); err == nil {
		editorCmd = cfg.Editor
	}

	if err := editor.NewEditor(editorCmd).Open(path); err != nil {
		Fatal(fmt.Errorf("editor failed: %w", err))
	}

	if _, err := configStore.Load(); err != nil {
		PrintWarning("Config has problems: %v", err)
		PrintInfo("Run 'swatch doctor' for details")
		os.Exit(1)
	}
	PrintSuccess("Config OK: %s", path)
}
