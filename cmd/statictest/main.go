// Command statictest is the vet tool for this repository:
//
//	go vet -vettool=bin/statictest ./...
package main

//go:generate go build -o=../../bin/statictest

import (
	"github.com/jingyugao/rowserrcheck/passes/rowserr"
	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/buildtag"
	"golang.org/x/tools/go/analysis/passes/composite"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/deepequalerrors"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/ifaceassert"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/stdmethods"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/tests"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"golang.org/x/tools/go/analysis/unitchecker"
	"honnef.co/go/tools/analysis/lint"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"
)

var excluded = map[string]struct{}{
	// Incorrect or missing package comment
	"ST1000": {},
	// Poorly chosen receiver name, suites use "suite"
	"ST1016": {},
	// Documentation of exported identifiers should start with their name
	"ST1020": {},
	"ST1021": {},
	"ST1022": {},
}

func vetAnalyzers() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		assign.Analyzer,
		bools.Analyzer,
		buildtag.Analyzer,
		composite.Analyzer,
		copylock.Analyzer,
		deepequalerrors.Analyzer,
		// ArityError is matched with errors.As
		errorsas.Analyzer,
		ifaceassert.Analyzer,
		loopclosure.Analyzer,
		lostcancel.Analyzer,
		nilness.Analyzer,
		// report templates are printf formats
		printf.Analyzer,
		shadow.Analyzer,
		stdmethods.Analyzer,
		structtag.Analyzer,
		tests.Analyzer,
		unreachable.Analyzer,
		unusedresult.Analyzer,

		bodyclose.Analyzer,
		rowserr.NewAnalyzer(),
	}
}

func lintAnalyzers(sets ...[]*lint.Analyzer) []*analysis.Analyzer {
	var res []*analysis.Analyzer
	for _, set := range sets {
		for _, v := range set {
			if _, ok := excluded[v.Analyzer.Name]; ok {
				continue
			}
			res = append(res, v.Analyzer)
		}
	}
	return res
}

func main() {
	analyzers := vetAnalyzers()
	analyzers = append(analyzers, lintAnalyzers(simple.Analyzers, staticcheck.Analyzers, stylecheck.Analyzers)...)

	unitchecker.Main(analyzers...)
}
