package render

import "image"

// multiply composites src onto dst with the multiply blend mode. Both images
// hold premultiplied channels and share bounds:
//
//	out = s*d + s*(1-da) + d*(1-sa)
func multiply(dst, src *image.RGBA) {
	n := len(dst.Pix)
	if len(src.Pix) < n {
		n = len(src.Pix)
	}
	for i := 0; i+3 < n; i += 4 {
		sa := int(src.Pix[i+3])
		da := int(dst.Pix[i+3])
		for k := 0; k < 3; k++ {
			s := int(src.Pix[i+k])
			d := int(dst.Pix[i+k])
			v := (s*d + s*(255-da) + d*(255-sa) + 127) / 255
			dst.Pix[i+k] = clampByte(v)
		}
		dst.Pix[i+3] = clampByte(sa + da - (sa*da+127)/255)
	}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
