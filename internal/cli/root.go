package cli

import (
	"os"

	"github.com/amterp/ra"
)

// CommandContext holds parsed values and used flags for all commands.
type CommandContext struct {
	// Global flags
	NonInteractive *bool
	JSON           *bool
	Verbose        *bool

	// search command
	SearchUsed *bool
	SearchCode *string

	// show command
	ShowUsed *bool
	ShowCode *string

	// list command
	ListUsed     *bool
	ListCategory *string
	ListName     *string

	// match command
	MatchUsed  *bool
	MatchHex   *string
	MatchLimit *int

	// paint command
	PaintUsed *bool
	PaintCode *string

	// serve command
	ServeUsed   *bool
	ServePort   *int
	ServeNoOpen *bool

	// doctor command
	DoctorUsed *bool

	// config command
	ConfigUsed *bool
	ConfigPath *bool

	// export command
	ExportUsed  *bool
	ExportPath  *string
	ExportForce *bool

	// completion command
	CompletionUsed  *bool
	CompletionShell *string

	// version command
	VersionUsed *bool
}

// Run is the main entry point for the CLI.
func Run() {
	ctx := &CommandContext{}

	cmd := ra.NewCmd("swatch")
	cmd.SetDescription("Look up paint colors by code and try them on a room")

	ctx.NonInteractive, _ = ra.NewBool("non-interactive").
		SetShort("I").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Fail instead of prompting for missing input").
		Register(cmd, ra.WithGlobal(true))

	ctx.JSON, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Print machine-readable JSON instead of styled output").
		Register(cmd, ra.WithGlobal(true))

	ctx.Verbose, _ = ra.NewBool("verbose").
		SetShort("v").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Enable debug logging").
		Register(cmd, ra.WithGlobal(true))

	registerSearch(cmd, ctx)
	registerShow(cmd, ctx)
	registerList(cmd, ctx)
	registerMatch(cmd, ctx)
	registerPaint(cmd, ctx)
	registerServe(cmd, ctx)
	registerDoctor(cmd, ctx)
	registerConfig(cmd, ctx)
	registerExport(cmd, ctx)
	registerCompletion(cmd, ctx)
	registerVersion(cmd, ctx)

	cmd.ParseOrExit(os.Args[1:])

	executeCommand(ctx, cmd)
}

func executeCommand(ctx *CommandContext, rootCmd *ra.Cmd) {
	jsonOutput := *ctx.JSON

	switch {
	case *ctx.SearchUsed:
		runSearch(*ctx.SearchCode, jsonOutput)

	case *ctx.ShowUsed:
		runShow(*ctx.ShowCode, *ctx.NonInteractive, jsonOutput)

	case *ctx.ListUsed:
		runList(*ctx.ListCategory, *ctx.ListName, jsonOutput)

	case *ctx.MatchUsed:
		runMatch(*ctx.MatchHex, *ctx.MatchLimit, jsonOutput)

	case *ctx.PaintUsed:
		runPaint(*ctx.PaintCode, *ctx.NonInteractive, jsonOutput)

	case *ctx.ServeUsed:
		if jsonOutput {
			warnJsonNotSupported("serve")
		}
		runServe(*ctx.ServePort, *ctx.ServeNoOpen, *ctx.Verbose)

	case *ctx.DoctorUsed:
		runDoctor(jsonOutput)

	case *ctx.ConfigUsed:
		runConfig(*ctx.ConfigPath, *ctx.NonInteractive)

	case *ctx.ExportUsed:
		runExport(*ctx.ExportPath, *ctx.ExportForce, *ctx.NonInteractive, jsonOutput)

	case *ctx.CompletionUsed:
		runCompletion(*ctx.CompletionShell, rootCmd)

	case *ctx.VersionUsed:
		runVersion(jsonOutput)
	}
}
