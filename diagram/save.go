package diagram

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"scaling-canvas/geom"
)

type ColorState struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

type PieceState struct {
	ID    string      `yaml:"id"`
	Kind  string      `yaml:"kind"`
	Name  string      `yaml:"name"`
	X     float64     `yaml:"x"`
	Y     float64     `yaml:"y"`
	Color *ColorState `yaml:"color,omitempty"`
}

type ArrowState struct {
	FromID   string `yaml:"from_id"`
	FromPort string `yaml:"from_port"`
	ToID     string `yaml:"to_id"`
	ToPort   string `yaml:"to_port"`
}

// State is the YAML form of a diagram.
type State struct {
	Title  string       `yaml:"title,omitempty"`
	Pieces []PieceState `yaml:"pieces"`
	Arrows []ArrowState `yaml:"arrows"`
}

func colorState(c color.Color) *ColorState {
	if c == nil {
		return nil
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return &ColorState{R: n.R, G: n.G, B: n.B, A: n.A}
}

// State snapshots the diagram.
func (d *Diagram) State() State {
	var s State
	if d.Title != nil {
		s.Title = d.Title.Text.Text
	}
	for _, p := range d.Pieces {
		s.Pieces = append(s.Pieces, PieceState{
			ID:    p.ID,
			Kind:  p.Kind,
			Name:  p.Name,
			X:     p.Center.X,
			Y:     p.Center.Y,
			Color: colorState(p.Color),
		})
	}
	for _, a := range d.Arrows {
		s.Arrows = append(s.Arrows, ArrowState{
			FromID:   a.FromID,
			FromPort: a.FromPort,
			ToID:     a.ToID,
			ToPort:   a.ToPort,
		})
	}
	return s
}

// FromState rebuilds a diagram. Pieces of unknown kinds are an error;
// arrows whose ends no longer exist are dropped with a warning.
func FromState(s State) (*Diagram, error) {
	d := New()
	if s.Title != "" {
		d.Title = NewLabel(s.Title)
	}
	for _, ps := range s.Pieces {
		id := ps.ID
		if id == "" {
			id = NewID()
		}
		p, err := NewPiece(id, ps.Kind, ps.Name)
		if err != nil {
			return nil, err
		}
		p.Center = geom.V(ps.X, ps.Y)
		if c := ps.Color; c != nil {
			p.Color = color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
		}
		d.Pieces = append(d.Pieces, p)
	}
	for _, as := range s.Arrows {
		if _, err := d.Connect(as.FromID, as.FromPort, as.ToID, as.ToPort); err != nil {
			slog.Warn("dropping arrow", slog.String("from", as.FromID), slog.String("to", as.ToID), slog.Any("err", err))
		}
	}
	return d, nil
}

// Encode writes the diagram as YAML.
func (d *Diagram) Encode(w io.Writer) error {
	state := d.State()
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&state); err != nil {
		return fmt.Errorf("encode diagram: %w", err)
	}
	return enc.Close()
}

// Decode reads a YAML diagram.
func Decode(r io.Reader) (*Diagram, error) {
	var state State
	if err := yaml.NewDecoder(r).Decode(&state); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode diagram: %w", err)
	}
	return FromState(state)
}

// Save writes the diagram to filename.
func Save(d *Diagram, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := encodeAndClose(d, f); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}

// encodeAndClose encodes d to w and closes it. A close failure is reported
// when encoding succeeded.
func encodeAndClose(d *Diagram, w io.WriteCloser) (err error) {
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return d.Encode(w)
}

// Load reads a diagram from filename.
func Load(filename string) (*Diagram, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Demo returns the source-to-sink diagram with a gain stage between.
func Demo() *Diagram {
	d := New()
	d.Title = NewLabel("signal chain")
	src, _ := d.Add("source", "")
	gain, _ := d.Add("gain", "")
	sink, _ := d.Add("sink", "")
	_, _ = d.Connect(src.ID, "signal", gain.ID, "in")
	_, _ = d.Connect(gain.ID, "out", sink.ID, "audio out")
	return d
}
