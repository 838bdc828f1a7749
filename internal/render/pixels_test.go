package render

import (
	"bytes"
	"image/color"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{0, 1, 0, 1}
	buf := make([]byte, 4*len(cells))
	fillBinaryRGBA(buf, cells, color.Black, color.White)

	want := []byte{
		255, 255, 255, 255,
		0, 0, 0, 255,
		255, 255, 255, 255,
		0, 0, 0, 255,
	}
	if !bytes.Equal(buf, want) {
		t.Fatalf("pixel buffer: got %v, want %v", buf, want)
	}
}

func TestFillBinaryRGBACustomColors(t *testing.T) {
	cells := []uint8{1}
	buf := make([]byte, 4)
	on := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	fillBinaryRGBA(buf, cells, on, color.White)
	if !bytes.Equal(buf, []byte{10, 20, 30, 255}) {
		t.Fatalf("live pixel: got %v", buf)
	}
}
