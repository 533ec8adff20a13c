package main

import (
	"go/ast"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// HTTPDefaultAnalyzer запрещает http.Get, http.Post, http.Head, http.PostForm
// и http.DefaultClient вне тестов: у клиента по умолчанию нет таймаута,
// исходящие запросы должны идти через настроенный *http.Client.
var HTTPDefaultAnalyzer = &analysis.Analyzer{
	Name: "httpdefault",
	Doc:  "prohibits net/http default client helpers outside tests",
	Run:  runHTTPDefaultCheck,
}

var defaultClientFuncs = map[string]bool{
	"Get":      true,
	"Post":     true,
	"Head":     true,
	"PostForm": true,
}

func runHTTPDefaultCheck(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		if strings.HasSuffix(pass.Fset.Position(file.Pos()).Filename, "_test.go") {
			continue
		}

		ast.Inspect(file, func(n ast.Node) bool {
			switch node := n.(type) {
			case *ast.CallExpr:
				if path, name, ok := pkgFunc(pass, node.Fun); ok && path == "net/http" && defaultClientFuncs[name] {
					pass.Reportf(node.Pos(), "http.%s uses the default client without timeout; use a configured *http.Client", name)
				}
			case *ast.SelectorExpr:
				if path, name, ok := pkgFunc(pass, node); ok && path == "net/http" && name == "DefaultClient" {
					pass.Reportf(node.Pos(), "http.DefaultClient has no timeout; use a configured *http.Client")
				}
			}
			return true
		})
	}

	return nil, nil
}
