package diagram

import (
	"fmt"
	"image/color"
	"sort"

	"scaling-canvas/canvas"
	"scaling-canvas/geom"
)

const (
	piecePadding = 6
	pieceMinSide = 30
)

var (
	inputOutline  = color.RGBA{0, 0x80, 0, 0xff}
	outputOutline = color.RGBA{0xff, 0, 0, 0xff}
	nameOutline   = color.RGBA{0, 0, 0xff, 0xff}
)

// Piece is a named block with input ports on the left and output ports on
// the right.
type Piece struct {
	ID       string
	Kind     string
	Name     string
	Color    canvas.Brush
	Center   geom.Vec2
	Rect     geom.Rect
	NamePos  geom.Vec2
	NameRect geom.Rect
	Inputs   []*Port
	Outputs  []*Port
}

// Kind is a template for new pieces.
type Kind struct {
	Color   string
	Inputs  []string
	Outputs []string
}

var kinds = map[string]Kind{
	"source": {Color: "#8f8", Outputs: []string{"signal"}},
	"sink":   {Color: "#f88", Inputs: []string{"audio out"}},
	"filter": {Color: "#88f", Inputs: []string{"in", "cutoff"}, Outputs: []string{"out"}},
	"gain":   {Color: "#ff8", Inputs: []string{"in", "gain"}, Outputs: []string{"out"}},
}

// Kinds lists the registered kind names in order.
func Kinds() []string {
	names := make([]string, 0, len(kinds))
	for k := range kinds {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// RegisterKind adds or replaces a piece kind.
func RegisterKind(name string, k Kind) error {
	if _, err := canvas.ParseBrush(k.Color); err != nil {
		return fmt.Errorf("kind %s: %w", name, err)
	}
	kinds[name] = k
	return nil
}

// NewPiece builds an unsized piece of a registered kind. An empty name
// defaults to the kind.
func NewPiece(id, kind, name string) (*Piece, error) {
	k, ok := kinds[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	clr, err := canvas.ParseBrush(k.Color)
	if err != nil {
		return nil, fmt.Errorf("kind %s: %w", kind, err)
	}
	if name == "" {
		name = kind
	}
	p := &Piece{ID: id, Kind: kind, Name: name, Color: clr}
	for _, n := range k.Inputs {
		p.Inputs = append(p.Inputs, &Port{Name: n})
	}
	for _, n := range k.Outputs {
		p.Outputs = append(p.Outputs, &Port{Name: n})
	}
	return p, nil
}

// Input returns the named input port, or nil.
func (p *Piece) Input(name string) *Port { return findPort(p.Inputs, name) }

// Output returns the named output port, or nil.
func (p *Piece) Output(name string) *Port { return findPort(p.Outputs, name) }

func findPort(ports []*Port, name string) *Port {
	for _, port := range ports {
		if port.Name == name {
			return port
		}
	}
	return nil
}

// Size returns the piece size without moving it.
func (p *Piece) Size(b *Brush) geom.Vec2 {
	SizePiece(b, p, p.Center)
	return p.Rect.Size()
}

// SizePiece sizes the piece and its ports around center.
func SizePiece(b *Brush, p *Piece, center geom.Vec2) {
	for _, port := range p.Inputs {
		SizePort(b, port, true)
	}
	for _, port := range p.Outputs {
		SizePort(b, port, false)
	}
	b.SetFont(DefaultFont, nil)
	name := b.TextSize(p.Name)

	in, out := portsSize(p.Inputs), portsSize(p.Outputs)
	pad := float64(piecePadding)
	size := geom.V(
		max(pieceMinSide, in.X+out.X, name.X+2*pad),
		max(pieceMinSide, max(in.Y, out.Y)+name.Y+2*pad),
	)

	p.Center = center
	p.Rect = geom.FromCenterSize(center, size)
	corner := p.Rect.Min
	p.NamePos = corner.Add(geom.V((size.X-name.X)/2, pad+name.Y))
	p.NameRect = geom.Rect{Min: corner, Max: geom.V(p.Rect.Max.X, corner.Y+name.Y+2*pad)}

	pos := geom.V(corner.X, p.NameRect.Max.Y)
	for _, port := range p.Inputs {
		port.Translate(pos)
		pos.Y = port.Rect.Max.Y
	}
	pos = geom.V(p.Rect.Max.X-out.X, p.NameRect.Max.Y)
	for _, port := range p.Outputs {
		port.Translate(pos)
		pos.Y = port.Rect.Max.Y
	}
}

func PaintPiece(b *Brush, p *Piece) {
	b.SetFill(p.Color)
	b.FillRect(canvas.Corners(p.Rect))

	for _, port := range p.Inputs {
		PaintPort(b, port)
	}
	for _, port := range p.Outputs {
		PaintPort(b, port)
	}
	strokePorts(b, p.Inputs, inputOutline)
	strokePorts(b, p.Outputs, outputOutline)

	b.SetStroke(nameOutline, 0.75)
	b.StrokeRect(canvas.Corners(p.NameRect))
	b.SetFont(DefaultFont, color.Black)
	b.Write(p.NamePos, p.Name)
}
