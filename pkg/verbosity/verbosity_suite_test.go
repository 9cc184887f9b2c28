package verbosity

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestVerbosity(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Verbosity Suite")
}
