package writer

// DefaultFontPaths returns the candidate TrueType files probed, in order,
// for the embedded Unicode body font. Covers common Linux, macOS, and
// Windows install locations.
func DefaultFontPaths() []string {
	return []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
		"/usr/share/fonts/noto/NotoSans-Regular.ttf",
		"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",
		"/Library/Fonts/Arial Unicode.ttf",
		"C:\\Windows\\Fonts\\arialuni.ttf",
		"C:\\Windows\\Fonts\\arial.ttf",
	}
}
