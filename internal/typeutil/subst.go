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

package typeutil

import (
	"github.com/wdamron/elab/types"
)

// Subst is an idempotent substitution of types for metavariables: no solution contains a
// solved metavariable, so applying the substitution once is equivalent to applying it
// any number of times.
type Subst struct {
	solutions map[types.MetaVar]types.Type
}

// Get the number of solved metavariables.
func (s *Subst) Len() int { return len(s.solutions) }

// Lookup the solution for m.
func (s *Subst) Lookup(m types.MetaVar) (types.Type, bool) {
	t, ok := s.solutions[m]
	return t, ok
}

// Range over all solutions. If f returns false, iteration will be stopped.
// Iteration order is unspecified.
func (s *Subst) Range(f func(types.MetaVar, types.Type) bool) {
	for m, t := range s.solutions {
		if !f(m, t) {
			return
		}
	}
}

// Clear all solutions.
func (s *Subst) Reset() {
	for m := range s.solutions {
		delete(s.solutions, m)
	}
}

// Apply the substitution to t. Parts of t which contain no solved metavariables are shared
// with the result.
func (s *Subst) Apply(t types.Type) types.Type {
	if len(s.solutions) == 0 {
		return t
	}
	return replaceMetas(t, func(m types.MetaVar) (types.Type, bool) {
		sol, ok := s.solutions[m]
		return sol, ok
	})
}

// Extend the substitution with m := t. The caller is responsible for the occurs check;
// t must not contain m. Existing solutions which mention m are rewritten so the
// substitution stays idempotent.
func (s *Subst) extend(m types.MetaVar, t types.Type) {
	if s.solutions == nil {
		s.solutions = make(map[types.MetaVar]types.Type, 16)
	}
	t = s.Apply(t)
	single := func(n types.MetaVar) (types.Type, bool) {
		if n == m {
			return t, true
		}
		return nil, false
	}
	for k, sol := range s.solutions {
		s.solutions[k] = replaceMetas(sol, single)
	}
	s.solutions[m] = t
}

func replaceMetas(t types.Type, lookup func(types.MetaVar) (types.Type, bool)) types.Type {
	switch t := t.(type) {
	case *types.TyVar:
		if m, ok := t.Var.(types.MetaVar); ok {
			if sol, ok := lookup(m); ok {
				return sol
			}
		}
		return t

	case *types.TyCon:
		var args []types.Type
		for i, arg := range t.Args {
			next := replaceMetas(arg, lookup)
			if next != arg && args == nil {
				args = make([]types.Type, len(t.Args))
				copy(args, t.Args[:i])
			}
			if args != nil {
				args[i] = next
			}
		}
		if args == nil {
			return t
		}
		return &types.TyCon{Name: t.Name, Args: args}

	case *types.Fun:
		arg, ret := replaceMetas(t.Arg, lookup), replaceMetas(t.Ret, lookup)
		if arg == t.Arg && ret == t.Ret {
			return t
		}
		return &types.Fun{Arg: arg, Ret: ret}

	case *types.Forall:
		body := replaceMetas(t.Body, lookup)
		if body == t.Body {
			return t
		}
		return &types.Forall{Name: t.Name, Body: body}

	case *types.Comp:
		inner := replaceMetas(t.Type, lookup)
		if inner == t.Type {
			return t
		}
		return &types.Comp{Type: inner}
	}
	return t
}
