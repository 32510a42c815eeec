package armv7m

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

//go:generate mockgen -write_package_comment=false -package=$GOPACKAGE -destination=mock_node_test.go github.com/slowlang/sloth/model/inst Node
func TestArmv7m(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Armv7-M Suite")
}
