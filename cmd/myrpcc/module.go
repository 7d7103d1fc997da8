package main

import (
	"github.com/gufeijun/myrpcc/debugs"
	"github.com/gufeijun/myrpcc/idlfiles"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	IDLFiles idlfiles.Module
	Debugs   debugs.Module
}
