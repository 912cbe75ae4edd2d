package cli

import (
	"fmt"

	"github.com/amterp/ra"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/service"
)

func registerList(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("list")
	cmd.SetDescription("List catalog colors")

	ctx.ListCategory, _ = ra.NewString("category").
		SetShort("c").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Filter by category").
		SetCompletionFunc(completeCategories).
		Register(cmd)

	ctx.ListName, _ = ra.NewString("name").
		SetShort("n").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Filter by words in the color name").
		Register(cmd)

	ctx.ListUsed, _ = parent.RegisterCmd(cmd)
}

func runList(category, name string, jsonOutput bool) {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	colors, err := app.CatalogService.List(service.ListInput{Category: category, Name: name})
	if err != nil {
		Fatal(err)
	}

	if jsonOutput {
		if err := printJson(NewListOutput(colors)); err != nil {
			Fatal(err)
		}
		return
	}

	if len(colors) == 0 {
		PrintInfo("No colors match")
		return
	}

	for _, group := range groupByCategory(colors) {
		fmt.Printf("%s %s\n", RenderBold(group.category), RenderMuted(fmt.Sprintf("(%d)", len(group.colors))))
		for _, c := range group.colors {
			fmt.Println(listRow(c))
		}
		fmt.Println()
	}
}

// listRow is a compact line for a color under its category heading.
func listRow(c model.Color) string {
	return fmt.Sprintf("  %s %s  %s %s", ColorChip(c.Hex), RenderCode(c.Code), c.Name, RenderMuted(c.Hex))
}

type categoryGroup struct {
	category string
	colors   []model.Color
}

// groupByCategory groups colors by category, keeping first-seen order for
// both the groups and the colors within them.
func groupByCategory(colors []model.Color) []categoryGroup {
	var groups []categoryGroup
	index := make(map[string]int)
	for _, c := range colors {
		i, ok := index[c.Category]
		if !ok {
			i = len(groups)
			index[c.Category] = i
			groups = append(groups, categoryGroup{category: c.Category})
		}
		groups[i].colors = append(groups[i].colors, c)
	}
	return groups
}
