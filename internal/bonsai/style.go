package bonsai

// ChooseStyle draws the attribute and color for a glyph of the given kind.
func ChooseStyle(kind Kind, rng Rand) Style {
	switch kind {
	case Trunk, ShootLeft, ShootRight:
		if rng.IntN(2) == 0 {
			return Style{Bold: true, Foreground: ColorBrightYellow}
		}
		return Style{Foreground: ColorYellow}
	case Dying:
		return Style{Bold: rng.IntN(10) == 0, Foreground: ColorGreen}
	case Dead:
		return Style{Bold: rng.IntN(3) == 0, Foreground: ColorBrightGreen}
	}
	return Style{}
}
