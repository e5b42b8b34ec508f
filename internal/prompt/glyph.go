package prompt

// Powerline glyphs used for segment caps. They require a patched (Nerd) font.
const (
	RightAngledFill = "\ue0b0" // 
	LeftAngledFill  = "\ue0b2" // 
	RightAngledFlat = "\ue0b1" // 
	LeftAngledFlat  = "\ue0b3" // 
	RightCurvedFill = "\ue0b4" // 
	LeftCurvedFill  = "\ue0b6" // 
	RightCurvedFlat = "\ue0b5" // 
	LeftCurvedFlat  = "\ue0b7" // 
	HoneycombFill   = "\ue0cc" // 
	HoneycombFlat   = "\ue0cd" // 
	Branch          = "\ue0a0" // 
	Python          = "\ue235" // 
)
