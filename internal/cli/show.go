package cli

import (
	"fmt"

	"github.com/amterp/ra"
	"github.com/amterp/swatch/internal/service"
)

func registerShow(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("show")
	cmd.SetDescription("Display color details")

	ctx.ShowCode, _ = ra.NewString("code").
		SetOptional(true).
		SetUsage("Color code (prompts if omitted)").
		SetCompletionFunc(completeColors).
		Register(cmd)

	ctx.ShowUsed, _ = parent.RegisterCmd(cmd)
}

func runShow(code string, nonInteractive, jsonOutput bool) {
	app, err := NewApp(!nonInteractive)
	if err != nil {
		Fatal(err)
	}

	color, err := app.ColorResolver.Resolve(code, !nonInteractive)
	if err != nil {
		Fatal(err)
	}

	detail, err := app.CatalogService.Show(color.Code)
	if err != nil {
		Fatal(err)
	}

	if jsonOutput {
		if err := printJson(NewColorOutput(detail)); err != nil {
			Fatal(err)
		}
		return
	}

	printColor(detail)
}

func printColor(detail *service.ColorDetail) {
	const labelWidth = 10

	fmt.Println(TitleBox(detail.Name))
	fmt.Println()

	fmt.Println(DetailBox(
		LabelValue("Code", RenderCode(detail.Code), labelWidth),
		LabelValue("Hex", Swatch(detail.Hex), labelWidth),
		LabelValue("Category", detail.Category, labelWidth),
	))

	if len(detail.Related) > 0 {
		fmt.Printf("\n%s\n", RenderMuted(fmt.Sprintf("Related (%d):", len(detail.Related))))
		for _, c := range detail.Related {
			fmt.Print("  ")
			printColorLine(c)
		}
	}
}
