package solver_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/heatsim/internal/material"
	"github.com/san-kum/heatsim/internal/solver"
)

var _ = Describe("step contract", func() {
	var params solver.Params

	BeforeEach(func() {
		params = solver.Params{
			Material:        material.Glass,
			Length:          1.0,
			Tmax:            1.0,
			InitialTemp:     20,
			SourceAmplitude: 30,
			GridPoints:      9,
		}
	})

	Describe("a bar solver", func() {
		It("advances time by exactly dt per step", func() {
			s, err := solver.New1D(params)
			Expect(err).NotTo(HaveOccurred())

			dt := params.Tmax / 1000
			for k := 1; k <= 5; k++ {
				Expect(s.Step()).To(BeTrue())
				Expect(s.Time()).To(BeNumerically("~", float64(k)*dt, 1e-12))
			}
		})

		It("keeps the field finite under aggressive forcing", func() {
			params.SourceAmplitude = 1000
			s, err := solver.New1D(params)
			Expect(err).NotTo(HaveOccurred())

			for s.Step() {
			}
			for _, v := range s.Temperature() {
				Expect(math.IsNaN(v)).To(BeFalse())
				Expect(math.IsInf(v, 0)).To(BeFalse())
			}
		})

		It("refuses further progress after the horizon, repeatedly", func() {
			s, err := solver.New1D(params)
			Expect(err).NotTo(HaveOccurred())

			for s.Step() {
			}
			for k := 0; k < 3; k++ {
				Expect(s.Step()).To(BeFalse())
				Expect(s.Time()).To(BeNumerically("~", params.Tmax, 1e-9))
			}
		})
	})

	Describe("a plate solver", func() {
		It("mirrors the bar solver's horizon behavior", func() {
			s, err := solver.New2D(params)
			Expect(err).NotTo(HaveOccurred())

			steps := 0
			for s.Step() {
				steps++
			}
			Expect(steps).To(Equal(1000))
			Expect(s.Step()).To(BeFalse())
		})

		It("restarts from scratch after reset", func() {
			s, err := solver.New2D(params)
			Expect(err).NotTo(HaveOccurred())

			for k := 0; k < 40; k++ {
				s.Step()
			}
			s.Reset()

			Expect(s.Time()).To(BeZero())
			Expect(s.Done()).To(BeFalse())
			for _, v := range s.Temperature() {
				Expect(v).To(Equal(params.InitialTemp + solver.KelvinOffset))
			}
		})

		It("accepts an exhausted sweep budget without failing", func() {
			// A huge diffusion number makes the relaxation hard enough to
			// use many sweeps; the step must still succeed.
			params.GridPoints = 33
			params.Material = material.Copper
			params.Tmax = 10000
			s, err := solver.New2D(params)
			Expect(err).NotTo(HaveOccurred())

			Expect(s.Step()).To(BeTrue())
			Expect(s.LastSweeps()).To(BeNumerically("<=", 100))
			Expect(s.LastSweeps()).To(BeNumerically(">", 1))
		})
	})
})
