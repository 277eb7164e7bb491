package bonsai

type grower struct {
	cfg    Config
	bounds Bounds
	rng    Rand
	state  State
	events []Event
	spawns []Spawn
}

// Grow runs one full generation and returns the tree as ordered draw events.
// cfg is assumed valid; see Config.Validate.
func Grow(cfg Config, rng Rand) *Tree {
	bounds := cfg.Bounds()
	g := &grower{
		cfg:    cfg,
		bounds: bounds,
		rng:    rng,
		events: make([]Event, 0, cfg.Life*8),
	}
	g.state = State{
		ShootCounter: rng.IntN(3) + 1,
		Floor:        bounds.Floor,
	}

	g.branch(-1, Position{X: bounds.Width / 2, Y: bounds.Floor}, Trunk, cfg.Life)

	return &Tree{
		Events: g.events,
		Spawns: g.spawns,
		State:  g.state,
		Bounds: bounds,
	}
}

// branch grows a single tip until its life runs out or it leaves the screen.
func (g *grower) branch(parent int, pos Position, kind Kind, life int) {
	id := len(g.spawns)
	g.spawns = append(g.spawns, Spawn{Kind: kind, Parent: parent, Pos: pos, Life: life})
	g.state.Branches++

	m := g.cfg.Multiplier
	cooldown := m

	for life > 0 {
		life--
		age := g.cfg.Life - life

		dx, dy := Deltas(kind, life, age, m, g.rng)

		// keep branches from drooping into the base
		if dy > 0 && pos.Y >= g.state.Floor-1 {
			dy--
		}

		if !g.bounds.Contains(pos) {
			return
		}

		switch {
		case life < 3:
			g.branch(id, pos, Dead, life)
		case kind.Growing() && life < m+2:
			g.branch(id, pos, Dying, life)
		case kind == Trunk && (g.rng.IntN(3) == 0 || life%m == 0):
			if g.rng.IntN(8) == 0 && life > 7 {
				cooldown = m * 2
				g.branch(id, pos, Trunk, life+g.rng.IntN(5)-2)
			} else if cooldown <= 0 {
				cooldown = m * 2
				g.state.Shoots++
				g.state.ShootCounter++
				g.branch(id, pos, g.state.shootKind(), life+m)
			}
		}

		cooldown--

		pos.X += dx
		pos.Y += dy

		if !g.bounds.Contains(pos) {
			continue
		}

		g.events = append(g.events, Event{
			Pos:           pos,
			Style:         ChooseStyle(kind, g.rng),
			Glyph:         Glyph(kind, life, dx, dy),
			Kind:          kind,
			Branch:        id,
			Life:          life,
			Dx:            dx,
			Dy:            dy,
			Shoots:        g.state.Shoots,
			ShootCooldown: cooldown,
		})
	}
}
