package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestModes(t *testing.T) {
	tests := []struct {
		scope    dscope.Scope
		t        *testing.T
		mode     Mode
		isolated bool
	}{
		{dscope.New(ForProduction()), nil, ModeProduction, false},
		{dscope.New(ForTest(t)), t, ModeTest, true},
	}
	for _, test := range tests {
		test.scope.Call(func(
			tt *testing.T,
			mode Mode,
		) {
			if tt != test.t {
				t.Fatalf("%v: got %v", test.mode, tt)
			}
			if mode != test.mode {
				t.Fatalf("got %v", mode)
			}
			if mode.Isolated() != test.isolated {
				t.Fatalf("%v: got %v", mode, mode.Isolated())
			}
		})
	}
	if Mode(0).String() != "unknown" {
		t.Fatal()
	}
}
