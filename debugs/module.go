package debugs

import (
	"github.com/gufeijun/myrpcc/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
