package logs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tapebf/configs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
}
