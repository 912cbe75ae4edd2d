package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/amterp/swatch/internal/catalog"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/prompt"
	"github.com/amterp/swatch/internal/resolver"
	"github.com/amterp/swatch/internal/service"
)

// scriptedPrompter answers prompts from a fixed queue, in order.
type scriptedPrompter struct {
	answers []string
	titles  []string
	options [][]prompt.Option
}

func (s *scriptedPrompter) next(title string) (string, error) {
	s.titles = append(s.titles, title)
	if len(s.answers) == 0 {
		return "", errors.New("no scripted answer for " + title)
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func (s *scriptedPrompter) Select(title string, options []prompt.Option) (string, error) {
	s.options = append(s.options, options)
	return s.next(title)
}

func (s *scriptedPrompter) Input(title string, defaultValue string) (string, error) {
	return s.next(title)
}

func (s *scriptedPrompter) Confirm(title string, defaultValue bool) (bool, error) {
	answer, err := s.next(title)
	return answer == "yes", err
}

func newTestPaintSession(answers ...string) (*paintSession, *scriptedPrompter, *bytes.Buffer) {
	p := &scriptedPrompter{answers: answers}
	out := &bytes.Buffer{}
	session := service.NewSessionService(catalog.Default(), model.DefaultWallAssignment())
	return newPaintSession(session, p, resolver.NewWallResolver(p), out), p, out
}

func optionValues(opts []prompt.Option) []string {
	values := make([]string, len(opts))
	for i, o := range opts {
		values[i] = o.Value
	}
	return values
}

func TestPaintSession_PaintsSelectedWall(t *testing.T) {
	ps, _, out := newTestPaintSession(
		paintWall, "sideWall",
		paintColor, "9772",
		paintDone,
	)

	snap, err := ps.run(context.Background(), "9770")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	want, _ := catalog.Default().FindByCode("9772")
	if snap.Room.SideWall != want.Hex {
		t.Errorf("SideWall = %q, want %q", snap.Room.SideWall, want.Hex)
	}
	if snap.Room.Ceiling != model.DefaultCeilingColor {
		t.Errorf("Ceiling changed to %q", snap.Room.Ceiling)
	}
	if snap.Wall != model.WallSide {
		t.Errorf("Wall = %q, want sideWall", snap.Wall)
	}
	if !strings.Contains(out.String(), want.Hex) {
		t.Errorf("Expected output to show %s, got:\n%s", want.Hex, out.String())
	}
}

func TestPaintSession_SearchFromPrompt(t *testing.T) {
	ps, _, out := newTestPaintSession(
		paintSearch, "0000",
		paintSearch, " 8801 ",
		paintDone,
	)

	snap, err := ps.run(context.Background(), "")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !snap.Found || snap.Query != "8801" {
		t.Errorf("Expected a hit for 8801, got query=%q found=%v", snap.Query, snap.Found)
	}
	if snap.Selected == nil || snap.Selected.Code != "8801" {
		t.Errorf("Selected = %+v", snap.Selected)
	}
	if !strings.Contains(out.String(), `No color with code "0000"`) {
		t.Errorf("Expected miss warning, got:\n%s", out.String())
	}
}

func TestPaintSession_ClearAndReset(t *testing.T) {
	ps, _, _ := newTestPaintSession(
		paintWall, "frontWall",
		paintClear,
		paintReset,
		paintDone,
	)

	snap, err := ps.run(context.Background(), "7701")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if snap.State != model.StateNoWallSelected {
		t.Errorf("State = %q", snap.State)
	}
	if snap.Room != model.DefaultWallAssignment() {
		t.Errorf("Room = %+v, want defaults", snap.Room)
	}
	if len(snap.Results) != 0 || snap.Selected != nil {
		t.Errorf("Reset should clear results, got %+v", snap.Session)
	}
}

func TestPaintSession_ActionsFollowState(t *testing.T) {
	ps, p, _ := newTestPaintSession(
		paintWall, "ceiling",
		paintDone,
	)

	if _, err := ps.run(context.Background(), ""); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// options[0]: first action menu, options[1]: wall picker, options[2]: second action menu
	first := optionValues(p.options[0])
	if strings.Join(first, ",") != "search,wall,reset,done" {
		t.Errorf("Initial actions = %v", first)
	}
	second := optionValues(p.options[2])
	if strings.Join(second, ",") != "search,wall,clear,reset,done" {
		t.Errorf("Actions with wall selected = %v", second)
	}
}

func TestPaintSession_PromptErrorStops(t *testing.T) {
	ps, _, _ := newTestPaintSession()

	if _, err := ps.run(context.Background(), ""); err == nil {
		t.Fatal("Expected prompt error to end the session")
	}
}

func TestRoomSummary(t *testing.T) {
	got := roomSummary(model.DefaultWallAssignment())
	want := "Ceiling #FFFFFF, Front Wall #F8F9FA, Side Wall #FEF3C7"
	if got != want {
		t.Errorf("roomSummary = %q, want %q", got, want)
	}
}
