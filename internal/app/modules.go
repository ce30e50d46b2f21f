package app

import (
	"github.com/specialistvlad/decisiongrid/internal/registry"
	"github.com/specialistvlad/decisiongrid/modules/assessment"
	"github.com/specialistvlad/decisiongrid/modules/correlation"
	"github.com/specialistvlad/decisiongrid/modules/normalization"
	"github.com/specialistvlad/decisiongrid/modules/plot"
	"github.com/specialistvlad/decisiongrid/modules/weights"
)

// coreModules is the definitive list of all modules that are compiled into
// the decisiongrid binary.
var coreModules = []registry.Module{
	&weights.Module{},
	&assessment.Module{},
	&correlation.Module{},
	&normalization.Module{},
	&plot.Module{},
}
