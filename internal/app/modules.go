package app

import (
	"io"

	"github.com/vk/funcs/internal/funcs"
	"github.com/vk/funcs/modules/env_vars"
	"github.com/vk/funcs/modules/print"
	"github.com/vk/funcs/modules/text"
)

// coreModules is the definitive list of all modules that are compiled into
// the funcs binary. Output-producing modules write to outW.
func coreModules(outW io.Writer) []funcs.Module {
	return []funcs.Module{
		&env_vars.Module{},
		&print.Module{Out: outW},
		&text.Module{},
	}
}
