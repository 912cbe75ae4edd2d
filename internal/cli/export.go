package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/amterp/ra"
	"github.com/amterp/swatch/internal/prompt"
	"github.com/amterp/swatch/internal/store"
)

func registerExport(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("export")
	cmd.SetDescription("Write the active catalog to a TOML file you can edit and point the config at")

	ctx.ExportPath, _ = ra.NewString("path").
		SetUsage("Destination file, e.g. catalog.toml").
		Register(cmd)

	ctx.ExportForce, _ = ra.NewBool("force").
		SetShort("f").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Overwrite an existing file without asking").
		Register(cmd)

	ctx.ExportUsed, _ = parent.RegisterCmd(cmd)
}

func runExport(path string, force, nonInteractive, jsonOutput bool) {
	app, err := NewApp(!nonInteractive)
	if err != nil {
		Fatal(err)
	}

	ok, err := confirmOverwrite(app.Prompter, path, force)
	if err != nil {
		Fatal(err)
	}
	if !ok {
		PrintInfo("Export cancelled")
		return
	}

	colors := app.Catalog.All()
	if err := store.NewCatalogStore(path).Save(colors); err != nil {
		Fatal(err)
	}

	if jsonOutput {
		if err := printJson(ExportOutput{Path: path, Colors: len(colors)}); err != nil {
			Fatal(err)
		}
		return
	}
	PrintSuccess("Wrote %d colors to %s", len(colors), path)
}

// confirmOverwrite reports whether path may be written. An existing file
// needs force or a yes from the prompter; a non-interactive prompter fails.
func confirmOverwrite(p prompt.Prompter, path string, force bool) (bool, error) {
	if force {
		return true, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return true, nil
	} else if err != nil {
		return false, err
	}

	ok, err := p.Confirm(fmt.Sprintf("%s exists. Overwrite?", path), false)
	if errors.Is(err, prompt.ErrNonInteractive) {
		return false, fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	return ok, err
}
