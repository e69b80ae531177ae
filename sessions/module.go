package sessions

import (
	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/taicalc/debugs"
	"github.com/reusee/taicalc/logs"
)

type Module struct {
	dscope.Module
	Logs   logs.Module
	Debugs debugs.Module
}

var wrap = e5.Wrap.With(e5.WrapStacktrace)
