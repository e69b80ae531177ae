package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// Production is the mode module of binaries.
type Production struct {
	dscope.Module
}

func ForProduction() Production {
	return Production{}
}

func (Production) Mode() Mode {
	return ModeProduction
}

func (Production) T() *testing.T {
	return nil
}

// Test is the mode module of tests. It provides the running *testing.T.
type Test struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) Test {
	return Test{
		t: t,
	}
}

func (Test) Mode() Mode {
	return ModeTest
}

func (m Test) T() *testing.T {
	return m.t
}
