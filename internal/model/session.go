package model

// SelectionState is the state of the wall-selection machine.
type SelectionState string

const (
	StateNoWallSelected SelectionState = "no_wall_selected"
	StateWallSelected   SelectionState = "wall_selected"
)

// Session is an immutable snapshot of one user's painting session.
// Every transition returns a new Session; the receiver is never modified,
// and slices held by a Session are never written to after it is created.
type Session struct {
	Query    string         `json:"query"`
	Found    bool           `json:"found"`
	Results  []Color        `json:"results"`
	Selected *Color         `json:"selected"`
	Wall     WallSlot       `json:"wall,omitempty"`
	Room     WallAssignment `json:"room"`

	defaults WallAssignment
}

// NewSession starts a session whose room and reset target are defaults.
func NewSession(defaults WallAssignment) Session {
	return Session{
		Results:  []Color{},
		Room:     defaults,
		defaults: defaults,
	}
}

// State reports which state of the selection machine the session is in.
func (s Session) State() SelectionState {
	if s.Wall == "" {
		return StateNoWallSelected
	}
	return StateWallSelected
}

// Defaults returns the wall assignment Reset restores.
func (s Session) Defaults() WallAssignment {
	return s.defaults
}

// WithDefaults changes the reset target without touching the current room.
func (s Session) WithDefaults(defaults WallAssignment) Session {
	s.defaults = defaults
	return s
}

// WithSearch replaces the result set. A hit selects the matched color;
// a miss clears the selection. The wall highlight is kept.
func (s Session) WithSearch(query string, result SearchResult) Session {
	s.Query = query
	s.Found = result.Found
	if result.Colors == nil {
		s.Results = []Color{}
	} else {
		s.Results = result.Colors
	}

	if match, ok := result.Match(); ok {
		s.Selected = colorRef(match)
	} else {
		s.Selected = nil
	}
	return s
}

// ResultByCode finds a color in the current result set.
func (s Session) ResultByCode(code string) (Color, bool) {
	for _, c := range s.Results {
		if c.Code == code {
			return c, true
		}
	}
	return Color{}, false
}

// SelectColor makes c the current color. With a wall highlighted, the color
// is painted onto that wall as well.
func (s Session) SelectColor(c Color) Session {
	s.Selected = colorRef(c)
	if s.Wall != "" {
		s.Room = s.Room.Apply(s.Wall, c.Hex)
	}
	return s
}

// SelectWall highlights slot. If a color is already selected it is painted
// onto the wall immediately.
func (s Session) SelectWall(slot WallSlot) Session {
	if !slot.Valid() {
		return s
	}
	s.Wall = slot
	if s.Selected != nil {
		s.Room = s.Room.Apply(slot, s.Selected.Hex)
	}
	return s
}

// ClearWall drops the wall highlight and leaves every color as it is.
func (s Session) ClearWall() Session {
	s.Wall = ""
	return s
}

// Apply paints one wall directly, regardless of selection.
func (s Session) Apply(slot WallSlot, hex string) Session {
	s.Room = s.Room.Apply(slot, hex)
	return s
}

// Reset returns to NoWallSelected with the default room and no results.
func (s Session) Reset() Session {
	return NewSession(s.defaults)
}

func colorRef(c Color) *Color {
	clone := c.Clone()
	return &clone
}
