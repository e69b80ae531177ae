package syntax

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Dump writes the full structure of nodes to w.
func Dump(w io.Writer, nodes ...Node) {
	for _, node := range nodes {
		dumpConfig.Fdump(w, node)
	}
}

func Sdump(nodes ...Node) string {
	return dumpConfig.Sdump(toAny(nodes)...)
}

func toAny(nodes []Node) []any {
	ret := make([]any, len(nodes))
	for i, node := range nodes {
		ret[i] = node
	}
	return ret
}
