package bonsai_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestBonsai(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Bonsai Suite")
}
