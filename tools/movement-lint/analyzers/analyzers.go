// Package analyzers provides the custom static analyzers for movement-core.
package analyzers

import (
	"golang.org/x/tools/go/analysis"

	"github.com/ersonp/movement-core/tools/movement-lint/analyzers/loopstore"
)

// All returns all analyzers to run.
func All() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		loopstore.Analyzer,
	}
}
