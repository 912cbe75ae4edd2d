package cli

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/amterp/ra"
	"github.com/amterp/swatch/internal/catalog"
	"github.com/amterp/swatch/internal/config"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/store"
)

// completionCtx provides lightweight catalog access for shell completion.
// Completion functions run during ParseOrExit, before NewApp() is called,
// so we can't use the full App. A broken config or catalog falls back to
// the built-in colors rather than failing the shell.
type completionCtx struct {
	once    sync.Once
	catalog *catalog.Catalog
}

var compCtx completionCtx

func initCompletionCtx() {
	compCtx.once.Do(func() {
		compCtx.catalog = catalog.Default()

		paths := config.DefaultPaths()
		cfg, err := store.NewConfigStore(paths).Load()
		if err != nil {
			return
		}
		if cat, _, err := loadCatalog(paths, cfg); err == nil {
			compCtx.catalog = cat
		}
	})
}

// completeColors returns color codes matching the given prefix.
func completeColors(toComplete string) ([]string, ra.CompletionDirective) {
	initCompletionCtx()
	return colorCodesWithPrefix(compCtx.catalog, toComplete), ra.CompletionDirectiveNoFileComp
}

// completeCategories returns category names matching the given prefix.
func completeCategories(toComplete string) ([]string, ra.CompletionDirective) {
	initCompletionCtx()
	return withPrefix(compCtx.catalog.Categories(), toComplete), ra.CompletionDirectiveNoFileComp
}

// completeWalls returns wall slot names matching the given prefix.
func completeWalls(toComplete string) ([]string, ra.CompletionDirective) {
	names := make([]string, len(model.WallSlots))
	for i, slot := range model.WallSlots {
		names[i] = string(slot)
	}
	return withPrefix(names, toComplete), ra.CompletionDirectiveNoFileComp
}

func colorCodesWithPrefix(c *catalog.Catalog, prefix string) []string {
	var result []string
	for _, col := range c.All() {
		if strings.HasPrefix(col.Code, prefix) {
			result = append(result, col.Code)
		}
	}
	return result
}

func withPrefix(values []string, prefix string) []string {
	var result []string
	for _, v := range values {
		if strings.HasPrefix(v, prefix) {
			result = append(result, v)
		}
	}
	return result
}

// registerCompletion adds the "swatch completion <shell>" command.
func registerCompletion(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("completion")
	cmd.SetDescription("Output shell completion script")

	ctx.CompletionShell, _ = ra.NewString("shell").
		SetUsage("Shell type").
		SetEnumConstraint([]string{"bash", "zsh"}).
		Register(cmd)

	ctx.CompletionUsed, _ = parent.RegisterCmd(cmd)
}

// runCompletion outputs the shell completion script to stdout.
func runCompletion(shell string, rootCmd *ra.Cmd) {
	var err error
	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletion(os.Stdout)
	case "zsh":
		err = rootCmd.GenZshCompletion(os.Stdout)
	default:
		Fatal(fmt.Errorf("unsupported shell: %s (supported: bash, zsh)", shell))
	}
	if err != nil {
		Fatal(fmt.Errorf("failed to generate completion script: %w", err))
	}
}
