package loopstore_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/ersonp/movement-core/tools/movement-lint/analyzers/loopstore"
)

func TestAnalyzer(t *testing.T) {
	testdata := analysistest.TestData()
	analysistest.Run(t, testdata, loopstore.Analyzer, "a")
}
