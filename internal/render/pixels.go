package render

import "image/color"

// rgba8 flattens a color.Color into premultiplied 8-bit channels.
func rgba8(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf,
// painting live cells with on and dead cells with off.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	live := rgba8(on)
	dead := rgba8(off)
	for i, c := range cells {
		px := dead
		if c != 0 {
			px = live
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}
