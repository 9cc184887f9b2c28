package verbosity

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type rankScale struct{}

func (rankScale) Level(l Level) int { return l.Rank() }
func (rankScale) Off() int          { return -100 }

var _ = Describe("State", func() {
	It("is silent by default", func() {
		var s State
		Expect(s).To(Equal(Silent))
		Expect(IsSilent(s)).To(BeTrue())
		Expect(s.Rank()).To(Equal(-1))
		Expect(s.String()).To(Equal("OFF"))
	})

	It("exposes the severity of a level state", func() {
		for _, l := range Levels() {
			s := LevelState(l)
			got, ok := Severity(s)
			Expect(ok).To(BeTrue())
			Expect(got).To(Equal(l))
			Expect(IsSilent(s)).To(BeFalse())
			Expect(s.Rank()).To(Equal(l.Rank()))
			Expect(s.String()).To(Equal(l.String()))
		}
	})

	It("filters through a scale", func() {
		Expect(Filter[int](Silent, rankScale{})).To(Equal(-100))
		Expect(Filter[int](LevelState(Debug), rankScale{})).To(Equal(3))
	})
})

var _ = Describe("Level", func() {
	It("ranks levels from error to trace", func() {
		for i, l := range Levels() {
			Expect(l.Rank()).To(Equal(i))
			Expect(l.Valid()).To(BeTrue())
		}
		Expect(Level(5).Valid()).To(BeFalse())
		Expect(Level(-1).Valid()).To(BeFalse())
	})

	DescribeTable("parsing",
		func(input string, expected Level) {
			l, err := ParseLevel(input)
			Expect(err).NotTo(HaveOccurred())
			Expect(l).To(Equal(expected))
		},
		Entry("error", "error", Error),
		Entry("upper case", "WARN", Warn),
		Entry("warning alias", "Warning", Warn),
		Entry("info", "info", Info),
		Entry("padded", " debug ", Debug),
		Entry("trace", "trace", Trace),
	)

	It("rejects unknown names", func() {
		_, err := ParseLevel("verbose")
		Expect(err).To(MatchError(ErrUnknownLevel))
	})

	It("round-trips through text", func() {
		for _, l := range Levels() {
			text, err := l.MarshalText()
			Expect(err).NotTo(HaveOccurred())

			var parsed Level
			Expect(parsed.UnmarshalText(text)).To(Succeed())
			Expect(parsed).To(Equal(l))
		}

		_, err := Level(9).MarshalText()
		Expect(err).To(MatchError(ErrUnknownLevel))
		Expect(Level(9).String()).To(Equal("Level(9)"))
	})
})
