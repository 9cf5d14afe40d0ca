// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package elab

import (
	"strconv"

	"github.com/wdamron/elab/ast"
	"github.com/wdamron/elab/core"
	"github.com/wdamron/elab/internal/errwrap"
	"github.com/wdamron/elab/types"
)

// checkifyPattern checks p against the type t of the value it matches. Pattern variables must
// already be in the context, seeded with metavariables; checking solves them.
func (ctx *Context) checkifyPattern(p ast.Pattern, t types.Type) (core.Pattern, error) {
	switch p := p.(type) {
	case *ast.PatVar:
		x, seeded, err := ctx.lookupVar(p.Var)
		if err != nil {
			return nil, err
		}
		if err := ctx.unify(seeded, t); err != nil {
			return nil, err
		}
		return &core.PatVar{Name: x.Name}, nil

	case *ast.PatCon:
		sig, ok := ctx.env.Signature.Cons[p.Name]
		if !ok {
			return nil, newError(UnknownConstructor, "Constructor "+p.Name+" not found")
		}
		args, ret := ctx.instantiateParams(sig)
		if err := checkArity("Constructor pattern", p.Name, len(args), len(p.Args)); err != nil {
			return nil, err
		}
		// The matched type refines the types of the sub-patterns.
		if err := ctx.unify(ret, t); err != nil {
			return nil, err
		}
		sub := make([]core.Pattern, len(p.Args))
		for i, arg := range p.Args {
			c, err := ctx.checkifyPattern(arg, ctx.apply(args[i]))
			if err != nil {
				return nil, err
			}
			sub[i] = c
		}
		return &core.PatCon{Name: p.Name, Args: sub}, nil
	}
	internalError("unexpected pattern", p)
	return nil, nil
}

// synthifyClause checks the patterns of c against the scrutinee types ts, then synthesizes the
// type of its body with the pattern variables in scope.
func (ctx *Context) synthifyClause(c *ast.Clause, ts []types.Type) (core.Clause, types.Type, error) {
	if len(c.Patterns) != len(ts) {
		return core.Clause{}, nil, newError(ArityMismatch, "Clause has "+strconv.Itoa(len(c.Patterns))+
			" patterns, expected "+strconv.Itoa(len(ts)))
	}

	defer ctx.restoreVars(ctx.vars)
	vs := make([]types.FreeVar, len(c.Names))
	for i, name := range c.Names {
		vs[i] = ctx.freshen(name)
		ctx.extendVar(vs[i], ctx.newMeta())
	}
	patterns, body := ast.InstantiateClause(c, variables(vs))

	cps := make([]core.Pattern, len(patterns))
	for i, p := range patterns {
		cp, err := ctx.checkifyPattern(p, ctx.apply(ts[i]))
		if err != nil {
			return core.Clause{}, nil, errwrap.Wrapf(err, "In pattern %s", ast.PatternString(p))
		}
		cps[i] = cp
	}
	cb, t, err := ctx.synthify(body)
	if err != nil {
		return core.Clause{}, nil, err
	}
	return core.Clause{Patterns: cps, Body: cb}, t, nil
}

// synthifyClauses synthesizes the clauses of a case expression over scrutinees of types ts.
// Every clause must have the same type; clause order is preserved.
func (ctx *Context) synthifyClauses(m *ast.Case, ts []types.Type) ([]core.Clause, types.Type, error) {
	if len(m.Clauses) == 0 {
		return nil, nil, ctx.fail(m, newError(EmptyCase, "Case expression has no clauses"))
	}
	clauses := make([]core.Clause, len(m.Clauses))
	clauseTypes := make([]types.Type, len(m.Clauses))
	for i, c := range m.Clauses {
		cc, t, err := ctx.synthifyClause(c, ts)
		if err != nil {
			return nil, nil, ctx.fail(m, err)
		}
		clauses[i], clauseTypes[i] = cc, t
	}
	for _, t := range clauseTypes[1:] {
		if err := ctx.unify(clauseTypes[0], t); err != nil {
			for i := range clauseTypes {
				clauseTypes[i] = ctx.apply(clauseTypes[i])
			}
			return nil, nil, ctx.fail(m, newError(ClauseMismatch, "Case clauses have different types: "+typeList(clauseTypes), clauseTypes...))
		}
	}
	return clauses, ctx.apply(clauseTypes[0]), nil
}
