package main

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// OsExitAnalyzer запрещает прямой вызов os.Exit в функции main пакета main.
// Завершение должно проходить через возврат ошибки, чтобы отработали defer.
var OsExitAnalyzer = &analysis.Analyzer{
	Name:     "osexit",
	Doc:      "prohibits direct calls to os.Exit in main function of main package",
	Run:      runOsExitCheck,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

func runOsExitCheck(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(node ast.Node) {
		funcDecl := node.(*ast.FuncDecl)
		if funcDecl.Recv != nil || funcDecl.Name.Name != "main" || funcDecl.Body == nil {
			return
		}

		ast.Inspect(funcDecl.Body, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			if path, name, ok := pkgFunc(pass, call.Fun); ok && path == "os" && name == "Exit" {
				pass.Reportf(call.Pos(), "avoid direct os.Exit call in main function of main package")
			}
			return true
		})
	})

	return nil, nil
}

// pkgFunc возвращает путь пакета и имя для выражения вида pkg.Name
func pkgFunc(pass *analysis.Pass, expr ast.Expr) (string, string, bool) {
	sel, ok := expr.(*ast.SelectorExpr)
	if !ok {
		return "", "", false
	}
	ident, ok := sel.X.(*ast.Ident)
	if !ok {
		return "", "", false
	}
	pkgName, ok := pass.TypesInfo.Uses[ident].(*types.PkgName)
	if !ok {
		return "", "", false
	}
	return pkgName.Imported().Path(), sel.Sel.Name, true
}
