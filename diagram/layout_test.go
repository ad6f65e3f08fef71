package diagram

import (
	"testing"

	"scaling-canvas/geom"
)

func TestAlignMiddleMovesOnCrossAxisOnly(t *testing.T) {
	env := geom.R(0, 0, 10, 10)
	got := Align(geom.R(0, 0, 2, 2), env, Horizontal, Middle)
	if got != geom.R(0, 4, 2, 6) {
		t.Errorf("Expected row item centered vertically, got %v", got)
	}
	got = Align(geom.R(0, 0, 2, 2), env, Vertical, End)
	if got != geom.R(8, 0, 10, 2) {
		t.Errorf("Expected column item on the right, got %v", got)
	}
}

func TestAlignmentMapping(t *testing.T) {
	env := geom.R(0, 0, 10, 10)
	if got := AlignVertical(geom.R(0, 5, 1, 6), env, AlignTop); got.Min.Y != 0 {
		t.Errorf("Expected top at 0, got %v", got)
	}
	if got := AlignVertical(geom.R(0, 0, 1, 1), env, AlignBottom); got.Max.Y != 10 {
		t.Errorf("Expected bottom at 10, got %v", got)
	}
	if got := AlignHorizontal(geom.R(0, 0, 2, 1), env, AlignCenter); got.Min.X != 4 {
		t.Errorf("Expected centered at 4, got %v", got)
	}
}

func TestArrangeAsRow(t *testing.T) {
	rects := []geom.Rect{geom.R(0, 0, 2, 2), geom.R(5, 5, 9, 11), geom.R(0, 0, 1, 1)}
	env := ArrangeAsRow(geom.V(1, 1), rects, AlignMiddle)

	if env != geom.R(1, 1, 8, 7) {
		t.Errorf("Unexpected envelope %v", env)
	}
	want := []geom.Rect{geom.R(1, 3, 3, 5), geom.R(3, 1, 7, 7), geom.R(7, 3.5, 8, 4.5)}
	for i := range want {
		if rects[i] != want[i] {
			t.Errorf("rect %d: expected %v, got %v", i, want[i], rects[i])
		}
	}
}

func TestArrangeAsColumnLeft(t *testing.T) {
	rects := []geom.Rect{geom.R(0, 0, 4, 1), geom.R(0, 0, 2, 3)}
	env := ArrangeAsColumn(geom.Zero, rects, AlignLeft)
	if env != geom.R(0, 0, 4, 4) {
		t.Errorf("Unexpected envelope %v", env)
	}
	if rects[1] != geom.R(0, 1, 2, 4) {
		t.Errorf("Expected second rect below the first, got %v", rects[1])
	}
}

func TestArrangeEmpty(t *testing.T) {
	env := Arrange(geom.V(3, 4), nil, Horizontal, Beginning)
	if env != geom.R(3, 4, 3, 4) {
		t.Errorf("Expected empty envelope at offset, got %v", env)
	}
}

func TestLinearSizes(t *testing.T) {
	sizes := []geom.Vec2{geom.V(2, 3), geom.V(4, 1)}
	if got := RowSize(sizes); got != geom.V(6, 3) {
		t.Errorf("RowSize: got %v", got)
	}
	if got := LinearSize(sizes, Vertical); got != geom.V(4, 4) {
		t.Errorf("ColumnSize: got %v", got)
	}
}

func TestPutContentsAsRow(t *testing.T) {
	box := NewBox(2)
	contents := []geom.Rect{geom.R(0, 0, 4, 4), geom.R(0, 0, 2, 2)}
	PutContentsAsRow(box, geom.Zero, contents, AlignTop)

	if contents[0] != geom.R(2, 2, 6, 6) || contents[1] != geom.R(6, 2, 8, 4) {
		t.Errorf("Unexpected contents %v", contents)
	}
	if box.Rect != geom.R(0, 0, 10, 8) {
		t.Errorf("Unexpected box %v", box.Rect)
	}
}
