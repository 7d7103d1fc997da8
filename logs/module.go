package logs

import "github.com/reusee/dscope"

// Module needs a modes module in the same scope.
type Module struct {
	dscope.Module
}
