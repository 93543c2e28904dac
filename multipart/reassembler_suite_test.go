package multipart

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestReassemblerSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Reassembler Suite")
}
