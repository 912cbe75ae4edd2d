// Package render draws the room preview and small color images as SVG.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/amterp/swatch/internal/model"
)

const (
	outlineIdle     = "#E5E7EB"
	outlineSelected = "#3B82F6"
)

type wallShape struct {
	tag      string
	geometry string
}

// wallShapes holds the paintable element for each slot.
var wallShapes = map[model.WallSlot]wallShape{
	model.WallCeiling: {"path", `d="M 100 100 L 700 100 L 760 40 L 40 40 Z"`},
	model.WallFront:   {"rect", `x="100" y="100" width="600" height="400"`},
	model.WallSide:    {"path", `d="M 700 100 L 760 40 L 760 560 L 700 500 Z"`},
}

const roomDefs = `<defs>` +
	`<linearGradient id="floorGradient" x1="0%" y1="0%" x2="100%" y2="100%">` +
	`<stop offset="0%" stop-color="#F3F4F6"/><stop offset="100%" stop-color="#E5E7EB"/></linearGradient>` +
	`<linearGradient id="shadowGradient" x1="0%" y1="0%" x2="100%" y2="100%">` +
	`<stop offset="0%" stop-color="rgba(0,0,0,0.1)"/><stop offset="100%" stop-color="rgba(0,0,0,0)"/></linearGradient>` +
	`<linearGradient id="lightGradient" x1="0%" y1="0%" x2="0%" y2="100%">` +
	`<stop offset="0%" stop-color="rgba(255,255,255,0.3)"/><stop offset="100%" stop-color="rgba(255,255,255,0)"/></linearGradient>` +
	`<filter id="dropShadow"><feDropShadow dx="2" dy="4" stdDeviation="3" flood-opacity="0.3"/></filter>` +
	`</defs>`

const roomFloor = `<path d="M 100 500 L 700 500 L 760 560 L 40 560 Z" fill="url(#floorGradient)" stroke="#D1D5DB" stroke-width="2"/>`

// roomFurniture is drawn over the walls and never takes pointer events.
const roomFurniture = `<g pointer-events="none">` +
	// Window and curtains
	`<rect x="150" y="150" width="200" height="150" fill="#F0F9FF" stroke="#3B82F6" stroke-width="4" rx="8" filter="url(#dropShadow)"/>` +
	`<line x1="250" y1="150" x2="250" y2="300" stroke="#3B82F6" stroke-width="3"/>` +
	`<line x1="150" y1="225" x2="350" y2="225" stroke="#3B82F6" stroke-width="3"/>` +
	`<rect x="130" y="140" width="30" height="170" fill="#E0E7FF" rx="4"/>` +
	`<rect x="360" y="140" width="30" height="170" fill="#E0E7FF" rx="4"/>` +
	// Sofa
	`<rect x="400" y="350" width="250" height="80" fill="#8B5CF6" rx="15" filter="url(#dropShadow)"/>` +
	`<rect x="380" y="330" width="290" height="30" fill="#7C3AED" rx="8"/>` +
	`<circle cx="450" cy="370" r="20" fill="#A78BFA"/>` +
	`<circle cx="520" cy="370" r="20" fill="#C4B5FD"/>` +
	`<circle cx="590" cy="370" r="20" fill="#A78BFA"/>` +
	// Tables
	`<ellipse cx="500" cy="450" rx="80" ry="30" fill="#92400E" filter="url(#dropShadow)"/>` +
	`<ellipse cx="500" cy="445" rx="75" ry="25" fill="#A16207"/>` +
	`<rect x="150" y="400" width="60" height="60" fill="#92400E" rx="8" filter="url(#dropShadow)"/>` +
	`<rect x="155" y="395" width="50" height="50" fill="#A16207" rx="6"/>` +
	// Picture frames
	`<rect x="450" y="180" width="100" height="80" fill="#F9FAFB" stroke="#6B7280" stroke-width="4" rx="4" filter="url(#dropShadow)"/>` +
	`<rect x="580" y="200" width="80" height="60" fill="#F9FAFB" stroke="#6B7280" stroke-width="4" rx="4" filter="url(#dropShadow)"/>` +
	`<rect x="460" y="190" width="80" height="60" fill="#E5E7EB"/>` +
	`<rect x="590" y="210" width="60" height="40" fill="#E5E7EB"/>` +
	// Plant
	`<ellipse cx="650" cy="480" rx="30" ry="15" fill="#92400E"/>` +
	`<path d="M 650 480 Q 635 450 625 420 Q 650 440 665 410 Q 655 440 675 450 Q 650 460 680 470" fill="#10B981"/>` +
	`<path d="M 650 480 Q 620 460 610 430 Q 640 450 670 420 Q 660 450 690 460" fill="#059669"/>` +
	// Lamps
	`<line x1="200" y1="400" x2="200" y2="320" stroke="#6B7280" stroke-width="6"/>` +
	`<ellipse cx="200" cy="310" rx="40" ry="15" fill="#FEF3C7" stroke="#F59E0B" stroke-width="2"/>` +
	`<circle cx="200" cy="460" r="15" fill="#6B7280"/>` +
	`<circle cx="400" cy="80" r="25" fill="#FEF3C7" stroke="#F59E0B" stroke-width="3"/>` +
	`<circle cx="400" cy="80" r="15" fill="#FBBF24"/>` +
	// Rug
	`<ellipse cx="500" cy="470" rx="120" ry="40" fill="#DC2626" opacity="0.8"/>` +
	`<ellipse cx="500" cy="470" rx="100" ry="30" fill="#EF4444" opacity="0.6"/>` +
	// Lighting
	`<rect x="100" y="100" width="600" height="400" fill="url(#lightGradient)" opacity="0.4"/>` +
	`<rect x="100" y="100" width="600" height="400" fill="url(#shadowGradient)" opacity="0.2"/>` +
	`</g>`

// RoomSVG draws the room with each wall filled from room. The highlighted
// wall, if any, gets a thicker blue outline. Every wall carries a data-wall
// attribute so the page can map clicks back to slots.
func RoomSVG(room model.WallAssignment, highlight model.WallSlot) string {
	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800 600" role="img" aria-label="Room preview">`)
	b.WriteString(roomDefs)
	b.WriteString(roomFloor)

	for _, slot := range model.WallSlots {
		writeWall(&b, slot, room.Get(slot), slot == highlight)
	}

	b.WriteString(roomFurniture)
	b.WriteString(`</svg>`)
	return b.String()
}

func writeWall(b *strings.Builder, slot model.WallSlot, fill string, selected bool) {
	stroke, width := outlineIdle, 2
	if selected {
		stroke, width = outlineSelected, 4
	}
	shape := wallShapes[slot]
	fmt.Fprintf(b,
		`<%s %s data-wall="%s" fill="%s" stroke="%s" stroke-width="%d" cursor="pointer"><title>%s</title></%s>`,
		shape.tag, shape.geometry, slot, html.EscapeString(fill), stroke, width, slot.DisplayName(), shape.tag,
	)
}
