package styles

// Nerd Font glyphs.
const (
	IconConfig = "\ue615"
	IconTree   = "\uf1bb"
	IconCheck  = "\uf00c"
	IconWrench = "\uf0ad"
)
