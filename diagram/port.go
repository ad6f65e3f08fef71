package diagram

import (
	"image/color"

	"scaling-canvas/canvas"
	"scaling-canvas/geom"
)

const (
	connectorRadius = 4
	portPadding     = 6
)

var connectedColor = color.RGBA{0xff, 0, 0xff, 0xff}

// Port is a named connection point on a piece. Inputs have their connector
// on the left, outputs on the right.
type Port struct {
	Name         string
	Rect         geom.Rect
	NamePos      geom.Vec2
	ConnectorPos geom.Vec2
	Connections  int
}

// SizePort lays the port out with its top-left corner at the origin.
func SizePort(b *Brush, p *Port, connectorLeft bool) {
	b.SetFont(DefaultFont, nil)
	name := b.TextSize(p.Name)
	r := float64(connectorRadius)
	pad := float64(portPadding)

	size := geom.V(name.X+2*r+3*pad, max(name.Y, 2*r)+2*pad)
	p.Rect = geom.Rect{Max: size}
	if connectorLeft {
		p.NamePos = geom.V(2*pad+2*r, (name.Y+size.Y)/2)
		p.ConnectorPos = geom.V(pad+r, size.Y/2)
	} else {
		p.NamePos = geom.V(pad, (name.Y+size.Y)/2)
		p.ConnectorPos = geom.V(size.X-(r+pad), size.Y/2)
	}
}

// Translate moves the port and its anchors by d.
func (p *Port) Translate(d geom.Vec2) {
	p.Rect = p.Rect.Translate(d)
	p.NamePos = p.NamePos.Add(d)
	p.ConnectorPos = p.ConnectorPos.Add(d)
}

func PaintPort(b *Brush, p *Port) {
	if p.Connections > 0 {
		b.SetFill(connectedColor)
		b.FillCircle(p.ConnectorPos, connectorRadius)
	}
	b.SetStroke(color.Black, 1.5)
	b.StrokeCircle(p.ConnectorPos, connectorRadius)
	b.SetFont(DefaultFont, color.Black)
	b.Write(p.NamePos, p.Name)
}

// portsSize is the column size of a set of sized ports.
func portsSize(ports []*Port) geom.Vec2 {
	sizes := make([]geom.Vec2, len(ports))
	for i, p := range ports {
		sizes[i] = p.Rect.Size()
	}
	return ColumnSize(sizes)
}

func strokePorts(b *Brush, ports []*Port, clr canvas.Brush) {
	b.SetStroke(clr, 0.75)
	for _, p := range ports {
		b.StrokeRect(canvas.Corners(p.Rect))
	}
}
