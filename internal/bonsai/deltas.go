package bonsai

// Deltas draws the next step of a branch. The weights define the silhouette
// of the tree and must not drift.
func Deltas(kind Kind, life, age, multiplier int, rng Rand) (dx, dy int) {
	switch kind {
	case Trunk:
		switch {
		case age <= 2 || life < 4:
			// Root flare: spread sideways, do not climb yet.
			dy = 0
			dx = rng.IntN(3) - 1
		case age < multiplier*3:
			if age%(multiplier/2) == 0 {
				dy = -1
			}
			switch n := rng.IntN(10); {
			case n == 0:
				dx = -2
			case n <= 3:
				dx = -1
			case n <= 5:
				dx = 0
			case n <= 8:
				dx = 1
			default:
				dx = 2
			}
		default:
			if rng.IntN(10) > 2 {
				dy = -1
			}
			dx = rng.IntN(3) - 1
		}
	case ShootLeft:
		dy = shootDy(rng)
		switch n := rng.IntN(10); {
		case n <= 1:
			dx = -2
		case n <= 5:
			dx = -1
		case n <= 8:
			dx = 0
		default:
			dx = 1
		}
	case ShootRight:
		dy = shootDy(rng)
		switch n := rng.IntN(10); {
		case n <= 1:
			dx = 2
		case n <= 5:
			dx = 1
		case n <= 8:
			dx = 0
		default:
			dx = -1
		}
	case Dying:
		switch n := rng.IntN(10); {
		case n <= 1:
			dy = -1
		case n <= 8:
			dy = 0
		default:
			dy = 1
		}
		switch n := rng.IntN(15); {
		case n == 0:
			dx = -3
		case n <= 2:
			dx = -2
		case n <= 5:
			dx = -1
		case n <= 8:
			dx = 0
		case n <= 11:
			dx = 1
		case n <= 13:
			dx = 2
		default:
			dx = 3
		}
	case Dead:
		switch n := rng.IntN(10); {
		case n <= 2:
			dy = -1
		case n <= 6:
			dy = 0
		default:
			dy = 1
		}
		dx = rng.IntN(3) - 1
	}
	return dx, dy
}

func shootDy(rng Rand) int {
	switch n := rng.IntN(10); {
	case n <= 1:
		return -1
	case n <= 7:
		return 0
	default:
		return 1
	}
}
