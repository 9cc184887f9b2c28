package sink

import (
	"log/slog"

	"github.com/hashicorp/go-hclog"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap/zapcore"

	"github.com/ydb-platform/verbosity/pkg/verbosity"
)

// detail orders backend levels so that a larger value lets more through.
type detail[L any] func(L) int

func checkOrder[L any](sc verbosity.Scale[L], d detail[L]) {
	prev := d(sc.Off())
	for _, l := range verbosity.Levels() {
		cur := d(sc.Level(l))
		Expect(cur).To(BeNumerically(">=", prev), "level %s", l)
		prev = cur
	}
	Expect(d(sc.Off())).To(BeNumerically("<", d(sc.Level(verbosity.Error))))
}

var _ = Describe("Scales", func() {
	It("zap preserves order", func() {
		checkOrder[zapcore.Level](ZapScale{}, func(l zapcore.Level) int { return -int(l) })
		Expect(ZapScale{}.Level(verbosity.Trace)).To(Equal(zapcore.DebugLevel))
	})

	It("slog preserves order", func() {
		checkOrder[slog.Level](SlogScale{}, func(l slog.Level) int { return -int(l) })
		Expect(SlogScale{}.Level(verbosity.Trace)).To(Equal(slog.Level(-8)))
	})

	It("zerolog preserves order", func() {
		checkOrder[zerolog.Level](ZerologScale{}, func(l zerolog.Level) int { return -int(l) })
	})

	It("logrus preserves order", func() {
		checkOrder[logrus.Level](LogrusScale{}, func(l logrus.Level) int { return int(l) })
	})

	It("hclog preserves order", func() {
		checkOrder[hclog.Level](HclogScale{}, func(l hclog.Level) int { return -int(l) })
	})

	DescribeTable("one to one mapping",
		func(l verbosity.Level, z zerolog.Level, r logrus.Level, h hclog.Level) {
			Expect(ZerologScale{}.Level(l)).To(Equal(z))
			Expect(LogrusScale{}.Level(l)).To(Equal(r))
			Expect(HclogScale{}.Level(l)).To(Equal(h))
		},
		Entry("error", verbosity.Error, zerolog.ErrorLevel, logrus.ErrorLevel, hclog.Error),
		Entry("warn", verbosity.Warn, zerolog.WarnLevel, logrus.WarnLevel, hclog.Warn),
		Entry("info", verbosity.Info, zerolog.InfoLevel, logrus.InfoLevel, hclog.Info),
		Entry("debug", verbosity.Debug, zerolog.DebugLevel, logrus.DebugLevel, hclog.Debug),
		Entry("trace", verbosity.Trace, zerolog.TraceLevel, logrus.TraceLevel, hclog.Trace),
	)
})
