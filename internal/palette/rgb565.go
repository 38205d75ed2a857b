package palette

// RGB565 is a 16-bit packed color: 5 bits red, 6 bits green, 5 bits blue.
type RGB565 uint16

const (
	Black   RGB565 = 0x0000
	White   RGB565 = 0xFFFF
	Magenta RGB565 = 0xF81F
)

func Pack(r, g, b uint8) RGB565 {
	return RGB565(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// Channels returns the raw 5/6/5-bit channel values.
func (c RGB565) Channels() (r, g, b uint16) {
	return uint16(c>>11) & 0x1F, uint16(c>>5) & 0x3F, uint16(c) & 0x1F
}

// RGB expands the channels to 8 bits, replicating the high bits into the low ones.
func (c RGB565) RGB() (r, g, b uint8) {
	r5, g6, b5 := c.Channels()
	return uint8(r5<<3 | r5>>2), uint8(g6<<2 | g6>>4), uint8(b5<<3 | b5>>2)
}

// RGBA implements color.Color.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB()
	r = uint32(r8) * 0x101
	g = uint32(g8) * 0x101
	b = uint32(b8) * 0x101
	return r, g, b, 0xFFFF
}

// Scale multiplies every channel by f (clamped to 0-1), truncating toward zero.
func (c RGB565) Scale(f float64) RGB565 {
	f = clamp01(f)
	r, g, b := c.Channels()
	r = uint16(float64(r) * f)
	g = uint16(float64(g) * f)
	b = uint16(float64(b) * f)
	return RGB565(r<<11 | g<<5 | b)
}
