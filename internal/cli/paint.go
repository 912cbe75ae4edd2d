package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/amterp/ra"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/prompt"
	"github.com/amterp/swatch/internal/resolver"
	"github.com/amterp/swatch/internal/service"
	"github.com/charmbracelet/huh"
)

func registerPaint(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("paint")
	cmd.SetDescription("Try colors on the room interactively")

	ctx.PaintCode, _ = ra.NewString("code").
		SetOptional(true).
		SetUsage("Color code to start from").
		SetCompletionFunc(completeColors).
		Register(cmd)

	ctx.PaintUsed, _ = parent.RegisterCmd(cmd)
}

func runPaint(code string, nonInteractive, jsonOutput bool) {
	if nonInteractive {
		Fatal(fmt.Errorf("paint is interactive; run it without --non-interactive"))
	}

	app, err := NewApp(true)
	if err != nil {
		Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := newPaintSession(app.NewSessionService(), app.Prompter, app.WallResolver, os.Stdout)
	snap, err := session.run(ctx, code)
	if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
		return
	}
	if err != nil {
		Fatal(err)
	}

	if jsonOutput {
		if err := printJson(SessionOutput{Session: snap}); err != nil {
			Fatal(err)
		}
		return
	}
	PrintSuccess("Final room: %s", roomSummary(snap.Room))
}

// Actions offered by the paint loop.
const (
	paintSearch = "search"
	paintColor  = "color"
	paintWall   = "wall"
	paintClear  = "clear"
	paintReset  = "reset"
	paintDone   = "done"
)

// paintSession drives a SessionService from terminal prompts.
type paintSession struct {
	session  *service.SessionService
	prompter prompt.Prompter
	walls    *resolver.WallResolver
	out      io.Writer
}

func newPaintSession(session *service.SessionService, prompter prompt.Prompter, walls *resolver.WallResolver, out io.Writer) *paintSession {
	return &paintSession{
		session:  session,
		prompter: prompter,
		walls:    walls,
		out:      out,
	}
}

// run loops until the user picks done, then returns the final snapshot.
// A non-empty code is searched before the first prompt.
func (p *paintSession) run(ctx context.Context, code string) (service.Snapshot, error) {
	if code != "" {
		if err := p.search(ctx, code); err != nil {
			return p.session.Snapshot(), err
		}
	}

	for {
		snap := p.session.Snapshot()
		p.printState(snap)

		action, err := p.prompter.Select("What next?", paintActions(snap))
		if err != nil {
			return snap, err
		}

		switch action {
		case paintSearch:
			input, err := p.prompter.Input("Color code", snap.Query)
			if err != nil {
				return snap, err
			}
			if err := p.search(ctx, strings.TrimSpace(input)); err != nil {
				return snap, err
			}

		case paintColor:
			picked, err := p.prompter.Select("Select color", resolver.ColorOptions(snap.Results))
			if err != nil {
				return snap, err
			}
			if _, err := p.session.SelectColor(picked); err != nil {
				return snap, err
			}

		case paintWall:
			slot, err := p.walls.Resolve("", true)
			if err != nil {
				return snap, err
			}
			if _, err := p.session.SelectWall(string(slot)); err != nil {
				return snap, err
			}

		case paintClear:
			p.session.ClearWall()

		case paintReset:
			p.session.Reset()

		case paintDone:
			return snap, nil
		}
	}
}

func (p *paintSession) search(ctx context.Context, code string) error {
	if code == "" {
		return nil
	}
	snap, err := p.session.Search(ctx, code)
	if err != nil {
		return err
	}
	if !snap.Found {
		fmt.Fprintf(p.out, "%s No color with code %q\n", StyleWarning.Render(IconWarning), code)
	}
	return nil
}

// paintActions lists what makes sense from the current state.
func paintActions(snap service.Snapshot) []prompt.Option {
	opts := []prompt.Option{{Label: "Search a code", Value: paintSearch}}
	if len(snap.Results) > 0 {
		opts = append(opts, prompt.Option{Label: "Pick a color from the results", Value: paintColor})
	}
	opts = append(opts, prompt.Option{Label: "Pick a wall", Value: paintWall})
	if snap.State == model.StateWallSelected {
		opts = append(opts, prompt.Option{Label: "Clear wall selection", Value: paintClear})
	}
	return append(opts,
		prompt.Option{Label: "Reset room", Value: paintReset},
		prompt.Option{Label: "Done", Value: paintDone},
	)
}

func (p *paintSession) printState(snap service.Snapshot) {
	const labelWidth = 10

	fmt.Fprintln(p.out)
	for _, slot := range model.WallSlots {
		marker := "  "
		if slot == snap.Wall {
			marker = StyleInfo.Render(IconInfo) + " "
		}
		fmt.Fprintf(p.out, "%s%s\n", marker, LabelValue(slot.DisplayName(), Swatch(snap.Room.Get(slot)), labelWidth))
	}

	if snap.Selected != nil {
		fmt.Fprintf(p.out, "\n%s %s %s  %s\n",
			RenderMuted("Selected:"), Swatch(snap.Selected.Hex), RenderCode(snap.Selected.Code), snap.Selected.Name)
	}
	if snap.Found {
		fmt.Fprintf(p.out, "%s\n", RenderMuted(fmt.Sprintf("%d result(s) for %s", len(snap.Results), snap.Query)))
	}
	fmt.Fprintln(p.out)
}

func roomSummary(room model.WallAssignment) string {
	parts := make([]string, len(model.WallSlots))
	for i, slot := range model.WallSlots {
		parts[i] = fmt.Sprintf("%s %s", slot.DisplayName(), room.Get(slot))
	}
	return strings.Join(parts, ", ")
}
