// Package render draws a Game snapshot and an Admiral's status onto a
// fixed-width character grid, the same CGA-palette terminal style the
// teacher uses for its ship-interior and system-map views, repurposed
// here for a top-down tactical display of ships, rotation, and health.
package render

import (
	"fmt"

	"github.com/antares-engine/antares/internal/engine"
)

const (
	// KeyTurnLeft, KeyTurnRight, KeyThrust mirror the bit layout Game's
	// inputToMotion expects in an InjectInput key mask.
	KeyTurnLeft  uint32 = 1 << 0
	KeyTurnRight uint32 = 1 << 1
	KeyThrust    uint32 = 1 << 2
)

// TacticalView renders one Game's Snapshot centered on a chosen ship,
// plus a right-hand admiral panel and a scrolling message log.
type TacticalView struct {
	Cols, Rows int
	CellW, CellH int
	PanelX       int
	messages     []string
}

// NewTacticalView builds a view sized to fill a cols x rows cell grid.
func NewTacticalView(cols, rows, cellW, cellH int) *TacticalView {
	return &TacticalView{Cols: cols, Rows: rows, CellW: cellW, CellH: cellH, PanelX: cols - 22}
}

// PushMessage appends a message to the scrolling log, trimming old
// entries once the log exceeds what the panel can show.
func (v *TacticalView) PushMessage(msg string) {
	v.messages = append(v.messages, msg)
	if len(v.messages) > 64 {
		v.messages = v.messages[len(v.messages)-64:]
	}
}

// recentMessages returns up to n of the newest pushed messages, oldest
// first.
func (v *TacticalView) recentMessages(n int) []string {
	if len(v.messages) <= n {
		return v.messages
	}
	return v.messages[len(v.messages)-n:]
}

// cameraFor centers the viewport on the given snapshot object, converted
// to grid cells from Q24.8 fixed-point world units (one cell per 512
// units, matching the fine collision-grid cell size).
const worldUnitsPerCell = 512

func (v *TacticalView) cameraFor(center engine.FixedPoint) (ox, oy int32) {
	viewW := int32(v.PanelX)
	cx := engine.FixedToFloat(center.H) / worldUnitsPerCell
	cy := engine.FixedToFloat(center.V) / worldUnitsPerCell
	return viewW/2 - int32(cx), int32(v.Rows)/2 - int32(cy)
}

// Draw paints one frame: world objects relative to the tracked handle,
// the admiral panel, and the message log.
func (v *TacticalView) Draw(buf *CellBuffer, snap engine.Snapshot, tracked engine.Handle, admirals []*engine.Admiral) {
	buf.Clear()

	var center engine.FixedPoint
	var haveCenter bool
	for _, obj := range snap.Objects {
		if obj.Handle == tracked {
			center = obj.Position
			haveCenter = true
			break
		}
	}
	ox, oy := int32(0), int32(0)
	if haveCenter {
		ox, oy = v.cameraFor(center)
	}

	for _, obj := range snap.Objects {
		wx := engine.FixedToFloat(obj.Position.H) / worldUnitsPerCell
		wy := engine.FixedToFloat(obj.Position.V) / worldUnitsPerCell
		gx := int(ox) + int(wx)
		gy := int(oy) + int(wy)

		glyph := shipGlyph(obj.Rotation)
		fg := AdmiralHue(obj.Owner)
		if obj.Handle == tracked {
			fg = ColorWhite
		}
		buf.Set(gx, gy, glyph, fg, ColorBlack)
	}

	buf.WriteString(2, 0, "ANTARES", ColorLightCyan, ColorBlack)
	buf.WriteString(2, 1, fmt.Sprintf("tick %d", snap.Tick), ColorDarkGray, ColorBlack)

	v.drawAdmiralPanel(buf, admirals)
	v.drawMessageLog(buf)
}

// shipGlyph picks a directional arrow from a 0-359 rotation, quantized
// to the eight compass points the character grid can actually show.
func shipGlyph(rotation int32) byte {
	octant := ((rotation % 360) + 360) % 360 / 45
	switch octant {
	case 0:
		return '^'
	case 1:
		return '/'
	case 2:
		return '>'
	case 3:
		return '\\'
	case 4:
		return 'v'
	case 5:
		return '/'
	case 6:
		return '<'
	default:
		return '\\'
	}
}

func (v *TacticalView) drawAdmiralPanel(buf *CellBuffer, admirals []*engine.Admiral) {
	x := v.PanelX
	buf.WriteString(x, 0, "--- Admirals ---", ColorLightCyan, ColorBlack)
	row := 1
	for _, a := range admirals {
		hue := AdmiralHue(a.Index)
		buf.WriteString(x, row, fmt.Sprintf("#%d cash %d", a.Index, a.Cash), hue, ColorBlack)
		row++
		buf.WriteString(x, row, fmt.Sprintf("   score %d", a.Score), ColorDarkGray, ColorBlack)
		row += 2
	}
}

const commsRow = 20
const commsMax = 6

func (v *TacticalView) drawMessageLog(buf *CellBuffer) {
	buf.WriteString(2, commsRow, "--- Comms ---", ColorLightCyan, ColorBlack)
	for i, msg := range v.recentMessages(commsMax) {
		buf.WriteString(2, commsRow+1+i, msg, ColorWhite, ColorBlack)
	}
}
