package app

import (
	"github.com/vk/blockforge/internal/catalog"
	"github.com/vk/blockforge/modules/basics"
	"github.com/vk/blockforge/modules/browser"
	"github.com/vk/blockforge/modules/dataframe"
	"github.com/vk/blockforge/modules/files"
	"github.com/vk/blockforge/modules/flow"
	"github.com/vk/blockforge/modules/functions"
	"github.com/vk/blockforge/modules/gui"
	httpmod "github.com/vk/blockforge/modules/http"
)

// coreModules is the default set of block packages registered when the
// caller does not supply its own (tests usually do).
var coreModules = []catalog.Module{
	&basics.Module{},
	&browser.Module{},
	&dataframe.Module{},
	&files.Module{},
	&flow.Module{},
	&functions.Module{},
	&gui.Module{},
	&httpmod.Module{},
}
