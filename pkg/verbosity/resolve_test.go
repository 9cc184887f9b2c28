package verbosity

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var allConfigs = []Config{
	SilentConfig(),
	NewConfig(Error),
	NewConfig(Warn),
	NewConfig(Info),
	NewConfig(Debug),
	NewConfig(Trace),
}

var _ = Describe("Resolve", func() {
	DescribeTable("concrete scenarios",
		func(cfg Config, verbose, quiet uint, expected State) {
			Expect(Resolve(cfg, verbose, quiet)).To(Equal(expected))
		},
		Entry("info baseline without flags", InfoDefault(), uint(0), uint(0), LevelState(Info)),
		Entry("info baseline with -vv", InfoDefault(), uint(2), uint(0), LevelState(Trace)),
		Entry("silent baseline with -v", SilentConfig(), uint(1), uint(0), LevelState(Error)),
		Entry("warn baseline with -qqqqq", WarnDefault(), uint(0), uint(5), Silent),
		Entry("trace baseline with ten -v", NewConfig(Trace), uint(10), uint(0), LevelState(Trace)),
		Entry("no baseline, no flags", SilentConfig(), uint(0), uint(0), Silent),
		Entry("error baseline round-trips", ErrorDefault(), uint(0), uint(0), LevelState(Error)),
		Entry("error baseline with -q", ErrorDefault(), uint(0), uint(1), Silent),
		Entry("error baseline with -vvv", ErrorDefault(), uint(3), uint(0), LevelState(Debug)),
		Entry("error baseline with -vvvv", ErrorDefault(), uint(4), uint(0), LevelState(Trace)),
	)

	DescribeTable("extreme counts saturate",
		func(cfg Config, verbose, quiet uint, expected State) {
			Expect(Resolve(cfg, verbose, quiet)).To(Equal(expected))
		},
		Entry("max verbose", SilentConfig(), uint(math.MaxUint), uint(0), LevelState(Trace)),
		Entry("max quiet", NewConfig(Trace), uint(0), uint(math.MaxUint), Silent),
		Entry("max both", InfoDefault(), uint(math.MaxUint), uint(math.MaxUint), LevelState(Info)),
		Entry("max verbose minus one quiet", NewConfig(Debug), uint(math.MaxUint), uint(math.MaxUint-1), LevelState(Trace)),
		Entry("max quiet minus one verbose", WarnDefault(), uint(math.MaxUint-1), uint(math.MaxUint), LevelState(Error)),
	)

	It("reproduces the baseline when counts cancel", func() {
		for _, cfg := range allConfigs {
			baseline := Resolve(cfg, 0, 0)
			for _, n := range []uint{1, 2, 3, 7, 1000, math.MaxUint32, math.MaxUint} {
				Expect(Resolve(cfg, n, n)).To(Equal(baseline), "config %s, count %d", cfg, n)
			}
		}
	})

	It("never lowers the rank when verbose grows", func() {
		for _, cfg := range allConfigs {
			for q := uint(0); q < 8; q++ {
				prev := Rank(cfg, 0, q)
				for v := uint(1); v < 12; v++ {
					cur := Rank(cfg, v, q)
					Expect(cur).To(BeNumerically(">=", prev))
					prev = cur
				}
			}
		}
	})

	It("never raises the rank when quiet grows", func() {
		for _, cfg := range allConfigs {
			for v := uint(0); v < 8; v++ {
				prev := Rank(cfg, v, 0)
				for q := uint(1); q < 12; q++ {
					cur := Rank(cfg, v, q)
					Expect(cur).To(BeNumerically("<=", prev))
					prev = cur
				}
			}
		}
	})

	It("stays at trace past the top", func() {
		for _, cfg := range allConfigs {
			for v := uint(6); v < 40; v++ {
				Expect(Resolve(cfg, v, 0)).To(Equal(LevelState(Trace)))
				Expect(Resolve(cfg, v+3, 3)).To(Equal(LevelState(Trace)))
			}
		}
	})

	It("stays silent past the bottom", func() {
		for _, cfg := range allConfigs {
			for q := uint(6); q < 40; q++ {
				Expect(Resolve(cfg, 0, q)).To(Equal(Silent))
				Expect(Resolve(cfg, 2, q+2)).To(Equal(Silent))
			}
		}
	})

	It("keeps every rank inside [-1, 4]", func() {
		for _, cfg := range allConfigs {
			for v := uint(0); v < 10; v++ {
				for q := uint(0); q < 10; q++ {
					Expect(Rank(cfg, v, q)).To(And(
						BeNumerically(">=", -1),
						BeNumerically("<=", 4),
					))
				}
			}
		}
	})
})

var _ = Describe("Config", func() {
	It("reports the default level", func() {
		l, ok := InfoDefault().DefaultLevel()
		Expect(ok).To(BeTrue())
		Expect(l).To(Equal(Info))

		_, ok = SilentConfig().DefaultLevel()
		Expect(ok).To(BeFalse())
	})

	It("treats the zero value as silent", func() {
		Expect(Config{}).To(Equal(SilentConfig()))
		Expect(Config{}.String()).To(Equal("OFF"))
	})
})
