package bonsai_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bonsai/internal/bonsai"
)

var _ = Describe("Grow", func() {
	var cfg bonsai.Config

	BeforeEach(func() {
		cfg = bonsai.Config{Life: 32, Multiplier: 5, Width: 80, Height: 24, BaseOffset: 5}
	})

	It("reproduces a tree from its seed", func() {
		first := bonsai.Grow(cfg, bonsai.NewRand(1234))
		second := bonsai.Grow(cfg, bonsai.NewRand(1234))
		Expect(first.Events).NotTo(BeEmpty())
		Expect(second.Events).To(Equal(first.Events))
		Expect(second.State).To(Equal(first.State))
	})

	It("starts the trunk on the tree floor", func() {
		tree := bonsai.Grow(cfg, bonsai.NewRand(5))
		Expect(tree.Spawns[0].Pos).To(Equal(bonsai.Position{X: 40, Y: 19}))
		Expect(tree.State.Floor).To(Equal(19))
	})

	DescribeTable("keeps every event on screen",
		func(life, multiplier, width, height, offset int) {
			cfg := bonsai.Config{Life: life, Multiplier: multiplier, Width: width, Height: height, BaseOffset: offset}
			for seed := int64(100); seed < 140; seed++ {
				tree := bonsai.Grow(cfg, bonsai.NewRand(seed))
				for _, ev := range tree.Events {
					Expect(tree.Bounds.Contains(ev.Pos)).To(BeTrue(), "seed %d event %+v", seed, ev)
					Expect(ev.Pos.Y).To(BeNumerically("<=", height-offset))
				}
			}
		},
		Entry("default screen", 32, 5, 80, 24, 5),
		Entry("small pot", 50, 4, 60, 20, 4),
		Entry("no base", 24, 2, 40, 12, 0),
		Entry("tiny screen", 80, 6, 12, 8, 5),
	)

	It("ends immediately when there is no life", func() {
		cfg.Life = 0
		tree := bonsai.Grow(cfg, bonsai.NewRand(9))
		Expect(tree.Events).To(BeEmpty())
		Expect(tree.Spawns).To(HaveLen(1))
	})

	It("colors wood yellow and leaves green", func() {
		tree := bonsai.Grow(cfg, bonsai.NewRand(77))
		for _, ev := range tree.Events {
			switch ev.Kind {
			case bonsai.Trunk, bonsai.ShootLeft, bonsai.ShootRight:
				Expect(ev.Style.Foreground).To(BeElementOf(bonsai.ColorYellow, bonsai.ColorBrightYellow))
			case bonsai.Dying:
				Expect(ev.Style.Foreground).To(Equal(bonsai.ColorGreen))
			case bonsai.Dead:
				Expect(ev.Style.Foreground).To(Equal(bonsai.ColorBrightGreen))
				Expect(ev.Glyph).To(Equal(bonsai.LeafGlyph))
			}
		}
	})

	It("alternates shoot sides across the whole run", func() {
		cfg.Life = 80
		cfg.Multiplier = 3
		cfg.Width, cfg.Height = 400, 200
		tree := bonsai.Grow(cfg, bonsai.NewRand(2024))

		var sides []bonsai.Kind
		for _, sp := range tree.Spawns {
			if sp.Kind == bonsai.ShootLeft || sp.Kind == bonsai.ShootRight {
				sides = append(sides, sp.Kind)
			}
		}
		Expect(len(sides)).To(BeNumerically(">", 1))
		for i := 1; i < len(sides); i++ {
			Expect(sides[i]).NotTo(Equal(sides[i-1]))
		}
	})
})

var _ = Describe("Glyph", func() {
	DescribeTable("trunk direction hints",
		func(dx, dy int, want string) {
			Expect(bonsai.Glyph(bonsai.Trunk, 20, dx, dy)).To(Equal(want))
		},
		Entry("top", 0, 0, "/~"),
		Entry("leaning left", -1, 0, "\\|"),
		Entry("straight up", 0, -1, "/|\\"),
		Entry("leaning right", 1, -1, "|/"),
	)

	It("always draws a leaf near the end of life", func() {
		for _, k := range []bonsai.Kind{bonsai.Trunk, bonsai.ShootLeft, bonsai.ShootRight, bonsai.Dying, bonsai.Dead} {
			Expect(bonsai.Glyph(k, 3, 1, -1)).To(Equal(bonsai.LeafGlyph), k.String())
		}
	})
})
