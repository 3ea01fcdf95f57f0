// movement-lint checks movement-core for snapshot access patterns that do not scale.
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/ersonp/movement-core/tools/movement-lint/analyzers"
)

func main() {
	multichecker.Main(analyzers.All()...)
}
