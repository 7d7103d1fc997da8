package idlfiles

import (
	"github.com/gufeijun/myrpcc/lexconfigs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	LexConfigs lexconfigs.Module
}
