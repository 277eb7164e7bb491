package bonsai

// LeafGlyph is drawn for dying and dead branches and for any step with
// little life left.
const LeafGlyph = "&"

// Glyph returns the characters drawn for a step of the given kind.
func Glyph(kind Kind, life, dx, dy int) string {
	if life < 4 {
		return LeafGlyph
	}
	switch kind {
	case Trunk:
		switch {
		case dx == 0 && dy == 0:
			return "/~"
		case dx < 0:
			return "\\|"
		case dx == 0:
			return "/|\\"
		default:
			return "|/"
		}
	case ShootLeft:
		switch {
		case dy > 0:
			return "\\"
		case dx == 0 && dy == 0:
			return "\\_"
		case dx < 0:
			return "\\|"
		case dx == 0:
			return "/|"
		default:
			return "/"
		}
	case ShootRight:
		switch {
		case dy > 0:
			return "/"
		case dx == 0 && dy == 0:
			return "_/"
		case dx < 0:
			return "\\|"
		case dx == 0:
			return "/|"
		default:
			return "/"
		}
	case Dying, Dead:
		return LeafGlyph
	}
	return "?"
}
