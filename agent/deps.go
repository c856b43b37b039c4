package agent

import (
	"github.com/morpheuslabs/sleepmesh/logging"
	"github.com/morpheuslabs/sleepmesh/model"
)

// Deps bundles the collaborators shared by every domain agent. Zero values
// are usable: a missing generator declines every call (so canned fallbacks
// take over) and a missing logger discards output.
type Deps struct {
	Generator model.Generator
	Logger    logging.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Generator == nil {
		d.Generator = model.Unavailable{}
	}
	if d.Logger == nil {
		d.Logger = logging.NoOpLogger{}
	}
	return d
}
