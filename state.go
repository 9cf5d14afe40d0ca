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
	"github.com/wdamron/elab/ast"
	"github.com/wdamron/elab/internal/errwrap"
	"github.com/wdamron/elab/internal/typeutil"
	"github.com/wdamron/elab/types"
)

// state is threaded through every step of one elaboration session.
//
// The variable context and type-variable context are persistent maps: extending either returns
// the previous value, which is restored when the extended scope is left.
//
//  defer ctx.restoreVars(ctx.extendVar(x, t))
type state struct {
	env    *Env
	vars   types.VarMap
	tyVars types.VarMap
	// metavariable counter, free variable counter, and substitution
	common typeutil.CommonContext
}

func (s *state) begin(env *Env) {
	s.env, s.vars, s.tyVars = env, env.Vars, env.TyVars
	s.common.Reset(env.NextVarId)
}

func (s *state) end() {
	s.env, s.vars, s.tyVars = nil, types.EmptyVarMap, types.EmptyVarMap
}

func (s *state) extendVar(v types.FreeVar, t types.Type) types.VarMap {
	prev := s.vars
	s.vars = s.vars.Set(v, t)
	return prev
}

func (s *state) restoreVars(prev types.VarMap) { s.vars = prev }

func (s *state) extendTyVar(v types.FreeVar) types.VarMap {
	prev := s.tyVars
	s.tyVars = s.tyVars.Set(v, nil)
	return prev
}

func (s *state) restoreTyVars(prev types.VarMap) { s.tyVars = prev }

// Apply the current substitution to t.
func (s *state) apply(t types.Type) types.Type { return s.common.Apply(t) }

func (s *state) newMeta() types.Type { return s.common.NewMeta() }

// Unify a and b. Failures are reported with both types, along with the innermost mismatch.
func (s *state) unify(a, b types.Type) error {
	a, b = s.apply(a), s.apply(b)
	err := s.common.Unify(a, b)
	if err == nil {
		return nil
	}
	uerr, ok := err.(*typeutil.UnifyError)
	if !ok {
		return err
	}
	return errwrap.Wrapf(newError(UnificationFailure, uerr.Msg, uerr.Left, uerr.Right),
		"While unifying %s with %s", types.TypeString(a), types.TypeString(b))
}

func (s *state) lookupVar(v types.Variable) (types.FreeVar, types.Type, error) {
	fv, ok := v.(types.FreeVar)
	if !ok {
		internalError("non-free variable in term position", v)
	}
	t, ok := s.vars.Get(fv)
	if !ok {
		return fv, nil, newError(UnboundVariable, "Variable "+fv.Name+" not found")
	}
	return fv, t, nil
}

// Convert variables to their generic form for scope instantiation.
func variables(vs []types.FreeVar) []types.Variable {
	out := make([]types.Variable, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

// Instantiate a single-name term scope with a fresh free variable.
func (ctx *Context) openScope(sc ast.Scope) (types.FreeVar, ast.Term) {
	x := ctx.freshen(sc.Names[0])
	return x, ast.Instantiate(sc, []types.Variable{x})
}
