package lexconfigs

import "github.com/gufeijun/myrpcc/cmds"

var (
	configFlag            = cmds.Var[string]("-config")
	strictIdentifiersFlag = cmds.Switch("-strict-identifiers")
	stringEscapesFlag     = cmds.Switch("-string-escapes")
	maxSourceSizeFlag     = cmds.Var[int64]("-max-source-size")
)

func init() {
	cmds.Define("-config-schema", cmds.Func(func() error {
		_, _ = cmds.GlobalExecutor.Output.Write([]byte(schema))
		return cmds.ErrHelp
	}).Desc("print the config file schema"))
}
