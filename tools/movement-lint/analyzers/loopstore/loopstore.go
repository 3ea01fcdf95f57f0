// Package loopstore detects snapshot store access and index rebuilding inside loops.
package loopstore

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer reports calls that load, save or re-index a whole snapshot from
// inside a loop body.
var Analyzer = &analysis.Analyzer{
	Name:     "loopstore",
	Doc:      "detects snapshot store calls and index rebuilding inside loops",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// snapshotCalls are whole-snapshot operations, keyed by name, with the fix to suggest.
var snapshotCalls = map[string]string{
	// SnapshotStore port
	"LoadSnapshot":         "load the snapshot once before the loop",
	"SaveSnapshot":         "apply every change, then save once",
	"LogAction":            "record one audit entry for the whole batch",
	"FindAuditLog":         "read the audit log once before the loop",
	"FindAuditLogByAction": "read the audit log once before the loop",
	// Dataset indexing
	"BuildIndex": "build the index once before the loop",
	"Clone":      "clone the dataset once before the loop",
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.RangeStmt)(nil),
		(*ast.ForStmt)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		var body *ast.BlockStmt
		switch stmt := n.(type) {
		case *ast.RangeStmt:
			body = stmt.Body
		case *ast.ForStmt:
			body = stmt.Body
		}
		if body == nil {
			return
		}

		ast.Inspect(body, func(n ast.Node) bool {
			// Closures run later, not once per iteration.
			if _, ok := n.(*ast.FuncLit); ok {
				return false
			}
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}

			name := calleeName(call)
			if fix, ok := snapshotCalls[name]; ok {
				pass.Reportf(call.Pos(), "%s called inside loop - %s", name, fix)
			}
			return true
		})
	})

	return nil, nil
}

// calleeName returns the called function or method name, ignoring package
// qualifiers and generic instantiation.
func calleeName(call *ast.CallExpr) string {
	fun := call.Fun
	switch f := fun.(type) {
	case *ast.IndexExpr:
		fun = f.X
	case *ast.IndexListExpr:
		fun = f.X
	}

	switch f := fun.(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	default:
		return ""
	}
}
