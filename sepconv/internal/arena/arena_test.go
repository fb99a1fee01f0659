package arena

import (
	"reflect"
	"testing"
)

func TestPadRowClamp(t *testing.T) {
	src := []uint8{10, 20, 30}
	padded, width, err := PadRow(src, 3, 1, 1, 1, Clamp, [4]float64{})
	if err != nil {
		t.Fatal(err)
	}
	if width != 5 {
		t.Fatalf("width = %d, want 5", width)
	}
	want := []uint8{10, 10, 20, 30, 30}
	if !reflect.DeepEqual(padded, want) {
		t.Errorf("got %v, want %v", padded, want)
	}
}

func TestPadRowReflect101(t *testing.T) {
	src := []uint8{0, 0, 255, 0, 0}
	padded, width, err := PadRow(src, 5, 1, 1, 1, Reflect101, [4]float64{})
	if err != nil {
		t.Fatal(err)
	}
	if width != 7 {
		t.Fatalf("width = %d", width)
	}
	// left pad: x=-1 -> 1 (value 0); right pad: x=5 -> 3 (value 0)
	want := []uint8{0, 0, 0, 255, 0, 0, 0}
	if !reflect.DeepEqual(padded, want) {
		t.Errorf("got %v, want %v", padded, want)
	}
}

func TestPadRowReflect(t *testing.T) {
	src := []uint8{10, 20, 30}
	padded, _, err := PadRow(src, 3, 1, 2, 2, Reflect, [4]float64{})
	if err != nil {
		t.Fatal(err)
	}
	// dx in [0,7) maps to srcX = dx-2 in [-2,5); this test checks only the
	// padded length, not the reflected values.
	if len(padded) != 7 {
		t.Fatalf("len=%d", len(padded))
	}
}

func TestPadRowWrap(t *testing.T) {
	src := []uint8{10, 20, 30}
	padded, _, err := PadRow(src, 3, 1, 1, 1, Wrap, [4]float64{})
	if err != nil {
		t.Fatal(err)
	}
	want := []uint8{30, 10, 20, 30, 10}
	if !reflect.DeepEqual(padded, want) {
		t.Errorf("got %v, want %v", padded, want)
	}
}

func TestPadRowConstant(t *testing.T) {
	src := []uint8{10, 20, 30}
	padded, _, err := PadRow(src, 3, 1, 1, 1, Constant, [4]float64{42})
	if err != nil {
		t.Fatal(err)
	}
	want := []uint8{42, 10, 20, 30, 42}
	if !reflect.DeepEqual(padded, want) {
		t.Errorf("got %v, want %v", padded, want)
	}
}

func TestPadRowKernelClipRejected(t *testing.T) {
	_, _, err := PadRow([]uint8{1, 2, 3}, 3, 1, 1, 1, KernelClip, [4]float64{})
	if err != ErrUnsupportedEdgeMode {
		t.Errorf("got %v, want ErrUnsupportedEdgeMode", err)
	}
}

func TestPadRowSingleColumnImage(t *testing.T) {
	src := []uint8{99}
	padded, width, err := PadRow(src, 1, 1, 2, 2, Reflect101, [4]float64{})
	if err != nil {
		t.Fatal(err)
	}
	if width != 5 {
		t.Fatalf("width=%d", width)
	}
	for _, v := range padded {
		if v != 99 {
			t.Errorf("got %v, want all 99", padded)
		}
	}
}

func TestPadColumns(t *testing.T) {
	rows := [][]uint8{
		{1, 1}, {2, 2}, {3, 3},
	}
	rowAt := func(y int) []uint8 { return rows[y] }
	strips, err := PadColumns(rowAt, 3, 2, 1, 1, Clamp, [4]float64{})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(strips.TopRow(0, 2, 1), []uint8{1, 1}) {
		t.Errorf("top row wrong: %v", strips.Top)
	}
	if !reflect.DeepEqual(strips.BottomRow(0, 2, 1), []uint8{3, 3}) {
		t.Errorf("bottom row wrong: %v", strips.Bottom)
	}
}

func TestRowFetchConstant(t *testing.T) {
	rows := [][]uint8{{1, 1}, {2, 2}}
	rowAt := func(y int) []uint8 { return rows[y] }
	scratch := make([]uint8, 2)
	got := RowFetch(rowAt, 2, 2, 1, -1, Constant, [4]float64{5}, scratch)
	if !reflect.DeepEqual(got, []uint8{5, 5}) {
		t.Errorf("got %v", got)
	}
	got = RowFetch(rowAt, 2, 2, 1, 1, Constant, [4]float64{5}, scratch)
	if !reflect.DeepEqual(got, []uint8{2, 2}) {
		t.Errorf("got %v", got)
	}
}
