package cli

import (
	"fmt"
	"strings"

	"github.com/amterp/ra"
	"github.com/amterp/swatch/internal/catalog"
	"github.com/amterp/swatch/internal/model"
)

func registerSearch(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("search")
	cmd.SetDescription("Find a color by its exact code, plus its related colors")

	ctx.SearchCode, _ = ra.NewString("code").
		SetUsage("Color code, e.g. 9770").
		SetCompletionFunc(completeColors).
		Register(cmd)

	ctx.SearchUsed, _ = parent.RegisterCmd(cmd)
}

func runSearch(code string, jsonOutput bool) {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	result := app.CatalogService.Search(code)

	if jsonOutput {
		if err := printJson(NewSearchOutput(code, result)); err != nil {
			Fatal(err)
		}
		return
	}

	match, ok := result.Match()
	if !ok {
		PrintWarning("No color with code %q", code)
		PrintInfo("Try one of %s", strings.Join(catalog.SuggestedCodes, ", "))
		return
	}

	printColorLine(match)
	related := result.Colors[1:]
	if len(related) == 0 {
		return
	}
	fmt.Printf("\n%s\n", RenderMuted(fmt.Sprintf("Related (%d):", len(related))))
	for _, c := range related {
		fmt.Print("  ")
		printColorLine(c)
	}
}

// printColorLine prints one color as a labelled swatch followed by its code,
// name, and category.
func printColorLine(c model.Color) {
	fmt.Printf("%s %s  %s %s\n", Swatch(c.Hex), RenderCode(c.Code), c.Name, RenderMuted(c.Category))
}
