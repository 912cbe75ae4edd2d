package cli

import (
	"fmt"

	"github.com/amterp/ra"
	"github.com/amterp/swatch/internal/version"
)

func registerVersion(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("version")
	cmd.SetDescription("Print version information")

	ctx.VersionUsed, _ = parent.RegisterCmd(cmd)
}

func runVersion(jsonOutput bool) {
	if jsonOutput {
		if err := printJson(NewVersionOutput()); err != nil {
			Fatal(err)
		}
		return
	}
	fmt.Println(version.String())
}
