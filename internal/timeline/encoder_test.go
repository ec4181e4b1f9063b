package timeline_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gridlife/internal/timeline"
)

func encode(mode string, count int, frame time.Duration) []timeline.Animation {
	s, err := timeline.NewSchedule(count, frame)
	Expect(err).NotTo(HaveOccurred())
	enc, err := timeline.NewEncoder(mode, timeline.Options{})
	Expect(err).NotTo(HaveOccurred())
	anims, err := enc.Encode(s)
	Expect(err).NotTo(HaveOccurred())
	return anims
}

var _ = Describe("Encoders", func() {
	DescribeTable("one layer per generation, windows matching the schedule",
		func(mode string) {
			s, err := timeline.NewSchedule(7, 150*time.Millisecond)
			Expect(err).NotTo(HaveOccurred())

			anims := encode(mode, 7, 150*time.Millisecond)
			Expect(anims).To(HaveLen(7))
			for i, a := range anims {
				Expect(a.Window()).To(Equal(s.Window(i)))
			}
		},
		Entry("discrete", timeline.ModeDiscrete),
		Entry("cyclic", timeline.ModeCyclic),
	)

	DescribeTable("exactly one layer visible at every frame boundary",
		func(mode string, count int, frame time.Duration) {
			anims := encode(mode, count, frame)
			for i := 0; i < count; i++ {
				t := time.Duration(i) * frame
				Expect(timeline.VisibleLayers(anims, t)).To(Equal([]int{i}), "t=%v", t)
			}
		},
		Entry("discrete, 20 x 200ms", timeline.ModeDiscrete, 20, 200*time.Millisecond),
		Entry("cyclic, 20 x 200ms", timeline.ModeCyclic, 20, 200*time.Millisecond),
		Entry("cyclic, 3 x 1s", timeline.ModeCyclic, 3, time.Second),
		Entry("cyclic, 7 x 130ms", timeline.ModeCyclic, 7, 130*time.Millisecond),
		Entry("cyclic, 1 x 1s", timeline.ModeCyclic, 1, time.Second),
	)

	Describe("mode equivalence", func() {
		It("agrees at every frame boundary and mid-frame", func() {
			for count := 1; count <= 40; count++ {
				for _, frame := range []time.Duration{time.Millisecond, 100 * time.Millisecond, 200 * time.Millisecond, 3 * time.Second} {
					discrete := encode(timeline.ModeDiscrete, count, frame)
					cyclic := encode(timeline.ModeCyclic, count, frame)

					for i := 0; i < count; i++ {
						for _, t := range []time.Duration{time.Duration(i) * frame, time.Duration(i)*frame + frame/2} {
							Expect(timeline.VisibleLayers(cyclic, t)).To(
								Equal(timeline.VisibleLayers(discrete, t)),
								"count=%d frame=%v t=%v", count, frame, t,
							)
						}
					}
				}
			}
		})
	})

	Describe("cyclic encoding", func() {
		It("shares a single curve across all layers", func() {
			anims := encode(timeline.ModeCyclic, 5, time.Second)
			first := anims[0].(*timeline.Cyclic)
			for _, a := range anims {
				c, ok := a.(*timeline.Cyclic)
				Expect(ok).To(BeTrue())
				Expect(c.Curve).To(BeIdenticalTo(first.Curve))
				Expect(c.Period).To(Equal(5 * time.Second))
			}
			Expect(first.Curve.Cutoff).To(BeNumerically("~", 20.0, 1e-9))
		})

		It("offsets each layer by its begin time", func() {
			anims := encode(timeline.ModeCyclic, 4, 250*time.Millisecond)
			for i, a := range anims {
				Expect(a.(*timeline.Cyclic).Offset).To(Equal(time.Duration(i) * 250 * time.Millisecond))
			}
		})

		It("loops after the last generation", func() {
			anims := encode(timeline.ModeCyclic, 4, time.Second)
			Expect(timeline.VisibleLayers(anims, 4*time.Second)).To(Equal([]int{0}))
			Expect(timeline.VisibleLayers(anims, 9*time.Second)).To(Equal([]int{1}))
		})

		It("hides a layer before its offset", func() {
			anims := encode(timeline.ModeCyclic, 4, time.Second)
			Expect(anims[3].Visible(2 * time.Second)).To(BeFalse())
		})

		It("rejects an epsilon that leaves no room for the drop", func() {
			s, err := timeline.NewSchedule(4, time.Second)
			Expect(err).NotTo(HaveOccurred())
			_, err = timeline.CyclicEncoder{Epsilon: 2}.Encode(s)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("discrete encoding", func() {
		It("freezes every layer invisible after the timeline ends", func() {
			anims := encode(timeline.ModeDiscrete, 4, time.Second)
			Expect(timeline.VisibleLayers(anims, 4*time.Second)).To(BeEmpty())
		})

		It("carries absolute begin times", func() {
			anims := encode(timeline.ModeDiscrete, 3, 200*time.Millisecond)
			d := anims[2].(*timeline.Discrete)
			Expect(d.Begin).To(Equal(400 * time.Millisecond))
			Expect(d.Duration).To(Equal(200 * time.Millisecond))
		})
	})
})
