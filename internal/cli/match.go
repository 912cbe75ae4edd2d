package cli

import (
	"fmt"

	"github.com/amterp/ra"
	"github.com/amterp/swatch/internal/catalog"
	"github.com/amterp/swatch/internal/model"
)

func registerMatch(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("match")
	cmd.SetDescription("Find the catalog colors closest to any hex color")

	ctx.MatchHex, _ = ra.NewString("hex").
		SetUsage("Target color, e.g. #A5D6A7").
		Register(cmd)

	ctx.MatchLimit, _ = ra.NewInt("limit").
		SetShort("l").
		SetOptional(true).
		SetFlagOnly(true).
		SetDefault(model.DefaultNearest).
		SetUsage("Number of colors to show (0 = all)").
		Register(cmd)

	ctx.MatchUsed, _ = parent.RegisterCmd(cmd)
}

func runMatch(hex string, limit int, jsonOutput bool) {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	matches, err := app.CatalogService.Match(hex, limit)
	if err != nil {
		Fatal(err)
	}

	target := catalog.NormalizeHex(hex)
	if jsonOutput {
		if err := printJson(NewMatchOutput(target, matches)); err != nil {
			Fatal(err)
		}
		return
	}

	fmt.Printf("Closest to %s\n\n", Swatch(target))
	for i, m := range matches {
		fmt.Printf("%s ", RenderMuted(fmt.Sprintf("%2d. Δ%5.2f", i+1, m.Distance*100)))
		printColorLine(m.Color)
	}
}
