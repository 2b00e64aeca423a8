package glyph

// Preamble is the fixed set of bitmaps written ahead of the extracted
// grid: twelve block-fill patterns plus one blank slot. The renderer
// addresses them by position, so the order and exact byte values must
// match the legacy resource byte for byte.
var Preamble = [13]Bitmap{
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // empty
	{0x7F, 0x7F, 0x7F, 0x7F, 0x7F, 0x7F, 0x7F, 0x7F, 0x7F}, // full block
	{0x78, 0x78, 0x78, 0x78, 0x78, 0x78, 0x78, 0x78, 0x78}, // right half
	{0x0F, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F}, // left half
	{0x7F, 0x7F, 0x7F, 0x7F, 0x00, 0x00, 0x00, 0x00, 0x00}, // top half
	{0x00, 0x00, 0x00, 0x00, 0x7F, 0x7F, 0x7F, 0x7F, 0x7F}, // bottom half, tall
	{0x7F, 0x7F, 0x7F, 0x7F, 0x7F, 0x00, 0x00, 0x00, 0x00}, // top half, tall
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x7F, 0x7F, 0x7F, 0x7F}, // bottom half
	{0x78, 0x78, 0x78, 0x78, 0x00, 0x00, 0x00, 0x00, 0x00}, // top right quad
	{0x0F, 0x0F, 0x0F, 0x0F, 0x00, 0x00, 0x00, 0x00, 0x00}, // top left quad
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x78, 0x78, 0x78, 0x78}, // bottom right quad
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x0F, 0x0F, 0x0F, 0x0F}, // bottom left quad
	{}, // placeholder
}
