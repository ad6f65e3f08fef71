// Package diagram lays out and paints a small box-and-arrow picture of
// connected pieces with a unit brush. Everything is sized in brush units,
// so changing the unit zooms the whole diagram.
package diagram

import (
	"errors"
	"fmt"
	"log/slog"

	"scaling-canvas/geom"
	"scaling-canvas/graph"
)

var (
	ErrUnknownKind  = errors.New("unknown piece kind")
	ErrUnknownPiece = errors.New("unknown piece")
	ErrUnknownPort  = errors.New("unknown port")
)

const (
	columnGap = 60
	rowGap    = 30

	// Margin is the pixel gap left of and above a laid out diagram.
	Margin = 40
)

// DefaultOrigin is the layout origin, in units, that leaves Margin pixels
// free at the given unit.
func DefaultOrigin(unit float64) geom.Vec2 {
	return geom.V(Margin, Margin).Div(unit)
}

// Diagram is a set of pieces and the arrows between their ports.
type Diagram struct {
	Title  *Label
	Pieces []*Piece
	Arrows []*Arrow
}

func New() *Diagram {
	return &Diagram{}
}

// Add creates a piece of kind with a fresh ID.
func (d *Diagram) Add(kind, name string) (*Piece, error) {
	p, err := NewPiece(NewID(), kind, name)
	if err != nil {
		return nil, err
	}
	d.Pieces = append(d.Pieces, p)
	return p, nil
}

// Piece returns the piece with id, or nil.
func (d *Diagram) Piece(id string) *Piece {
	for _, p := range d.Pieces {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Connect adds an arrow from output port out of piece from to input port in
// of piece to.
func (d *Diagram) Connect(from, out, to, in string) (*Arrow, error) {
	src, dst, err := d.ends(from, out, to, in)
	if err != nil {
		return nil, err
	}
	src.Connections++
	dst.Connections++
	a := &Arrow{FromID: from, FromPort: out, ToID: to, ToPort: in}
	d.Arrows = append(d.Arrows, a)
	return a, nil
}

func (d *Diagram) ends(from, out, to, in string) (src, dst *Port, err error) {
	fp, tp := d.Piece(from), d.Piece(to)
	if fp == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownPiece, from)
	}
	if tp == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownPiece, to)
	}
	if src = fp.Output(out); src == nil {
		return nil, nil, fmt.Errorf("%w: %s output %q", ErrUnknownPort, fp.Name, out)
	}
	if dst = tp.Input(in); dst == nil {
		return nil, nil, fmt.Errorf("%w: %s input %q", ErrUnknownPort, tp.Name, in)
	}
	return src, dst, nil
}

// Layout places pieces in columns by their distance from a source, left to
// right starting at origin (the top-left corner of the diagram). It fails
// when the arrows form a cycle.
func (d *Diagram) Layout(b *Brush, origin geom.Vec2) error {
	ids := make([]string, len(d.Pieces))
	for i, p := range d.Pieces {
		ids[i] = p.ID
	}
	edges := make([]graph.Edge, len(d.Arrows))
	for i, a := range d.Arrows {
		edges[i] = graph.Edge{From: a.FromID, To: a.ToID}
	}
	layers, err := graph.Layers(ids, edges)
	if err != nil {
		return fmt.Errorf("layout diagram: %w", err)
	}

	if d.Title != nil {
		SizeLabel(b, d.Title, origin)
		origin.Y = d.Title.Box.Rect.Max.Y + rowGap
	}
	x := origin.X
	for _, layer := range layers {
		rects := make([]geom.Rect, len(layer))
		for i, id := range layer {
			rects[i] = geom.Rect{Max: d.Piece(id).Size(b)}
		}
		env := ArrangeAsColumn(geom.V(x, origin.Y), rects, AlignCenter)
		for i, id := range layer {
			// spread the column by rowGap between pieces
			c := rects[i].Center().Add(geom.V(0, float64(i)*rowGap))
			SizePiece(b, d.Piece(id), c)
		}
		x = env.Max.X + columnGap
	}
	return nil
}

// Resize re-sizes every piece around its current center and puts the
// title above them.
func (d *Diagram) Resize(b *Brush) {
	for _, p := range d.Pieces {
		SizePiece(b, p, p.Center)
	}
	if d.Title == nil {
		return
	}
	SizeLabel(b, d.Title, geom.Zero)
	var top geom.Vec2
	if len(d.Pieces) > 0 {
		top = d.Bounds().Min.Sub(geom.V(0, d.Title.Box.Rect.Dy()+rowGap))
	}
	SizeLabel(b, d.Title, top)
}

// Placed reports whether any piece has a position, as loaded diagrams do.
func (d *Diagram) Placed() bool {
	for _, p := range d.Pieces {
		if p.Center != geom.Zero {
			return true
		}
	}
	return false
}

// Bounds is the envelope of all pieces.
func (d *Diagram) Bounds() geom.Rect {
	if len(d.Pieces) == 0 {
		return geom.Rect{}
	}
	r := d.Pieces[0].Rect
	for _, p := range d.Pieces[1:] {
		r = r.Union(p.Rect)
	}
	return r
}

// Paint draws the title and pieces, then arrows over them, at animation
// time t.
func (d *Diagram) Paint(b *Brush, t float64) {
	if d.Title != nil {
		PaintLabel(b, d.Title)
	}
	for _, p := range d.Pieces {
		PaintPiece(b, p)
	}
	for _, a := range d.Arrows {
		src, dst, err := d.ends(a.FromID, a.FromPort, a.ToID, a.ToPort)
		if err != nil {
			slog.Debug("skip dangling arrow", slog.Any("err", err))
			continue
		}
		PaintArrow(b, a, src.ConnectorPos, dst.ConnectorPos, t)
	}
}
