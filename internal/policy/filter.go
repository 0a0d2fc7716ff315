// Package policy compiles user-supplied CEL expressions into filters
// over interaction records.
package policy

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/checker/decls"

	"github.com/seqlab/prothub/internal/graph"
)

// Filter holds one compiled CEL program evaluated per interaction
// record. Records for which the expression is false are dropped before
// the graph is built.
//
// Example expression: score > 0.7 && source != target
type Filter struct {
	expr    string
	program cel.Program
}

// Compile validates and compiles the expression. The expression must
// evaluate to a boolean; anything else is rejected here, before any
// remote call is made.
func Compile(expr string) (*Filter, error) {
	env, err := cel.NewEnv(
		cel.Declarations(
			decls.NewVar("source", decls.String),
			decls.NewVar("target", decls.String),
			decls.NewVar("score", decls.Double),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL env: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("filter compilation error: %w", issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("filter must evaluate to bool, got %s", ast.OutputType())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("filter program creation error: %w", err)
	}

	return &Filter{expr: expr, program: prg}, nil
}

// Apply returns the records the expression accepts, preserving order. A
// record whose evaluation errors is dropped.
func (f *Filter) Apply(records []graph.Interaction) []graph.Interaction {
	kept := make([]graph.Interaction, 0, len(records))
	for _, r := range records {
		out, _, err := f.program.Eval(map[string]interface{}{
			"source": r.Source,
			"target": r.Target,
			"score":  r.Score,
		})
		if err != nil {
			continue
		}
		if match, ok := out.Value().(bool); ok && match {
			kept = append(kept, r)
		}
	}
	return kept
}

func (f *Filter) String() string { return f.expr }
