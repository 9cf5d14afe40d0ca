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

package types

// Instantiate the bound variable of a forall with t.
func Instantiate(f *Forall, t Type) Type {
	return InstantiateScope(f.Body, []Type{t})
}

// InstantiateScope substitutes ts for the variables bound by the innermost scope of body.
// Bound variables which refer to outer scopes are shifted to account for the removed scope.
func InstantiateScope(body Type, ts []Type) Type {
	return instantiate(0, body, ts)
}

func instantiate(depth int, t Type, ts []Type) Type {
	switch t := t.(type) {
	case *TyVar:
		bv, ok := t.Var.(BoundVar)
		if !ok {
			return t
		}
		switch {
		case bv.Depth == depth:
			if bv.Index >= len(ts) {
				panic("bound variable index out of range for scope")
			}
			return ts[bv.Index]
		case bv.Depth > depth:
			return &TyVar{Var: BoundVar{Depth: bv.Depth - 1, Index: bv.Index}}
		}
		return t

	case *TyCon:
		if len(t.Args) == 0 {
			return t
		}
		args := make([]Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = instantiate(depth, arg, ts)
		}
		return &TyCon{Name: t.Name, Args: args}

	case *Fun:
		return &Fun{Arg: instantiate(depth, t.Arg, ts), Ret: instantiate(depth, t.Ret, ts)}

	case *Forall:
		return &Forall{Name: t.Name, Body: instantiate(depth+1, t.Body, ts)}

	case *Comp:
		return &Comp{Type: instantiate(depth, t.Type, ts)}
	}
	panic("unexpected type " + t.TypeName())
}

// Abstract closes t over vs: each occurrence of vs[i] becomes a bound variable referring
// to a new innermost scope at index i. Abstract is the inverse of InstantiateScope.
func Abstract(vs []FreeVar, t Type) Type { return abstract(0, t, vs) }

func abstract(depth int, t Type, vs []FreeVar) Type {
	switch t := t.(type) {
	case *TyVar:
		switch v := t.Var.(type) {
		case FreeVar:
			for i, w := range vs {
				if v.Same(w) {
					return &TyVar{Var: BoundVar{Depth: depth, Index: i}}
				}
			}
		case BoundVar:
			if v.Depth >= depth {
				return &TyVar{Var: BoundVar{Depth: v.Depth + 1, Index: v.Index}}
			}
		}
		return t

	case *TyCon:
		if len(t.Args) == 0 {
			return t
		}
		args := make([]Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = abstract(depth, arg, vs)
		}
		return &TyCon{Name: t.Name, Args: args}

	case *Fun:
		return &Fun{Arg: abstract(depth, t.Arg, vs), Ret: abstract(depth, t.Ret, vs)}

	case *Forall:
		return &Forall{Name: t.Name, Body: abstract(depth+1, t.Body, vs)}

	case *Comp:
		return &Comp{Type: abstract(depth, t.Type, vs)}
	}
	panic("unexpected type " + t.TypeName())
}

// Create a forall type binding v within body.
func NewForall(v FreeVar, body Type) *Forall {
	return &Forall{Name: v.Name, Body: Abstract([]FreeVar{v}, body)}
}

// HasLooseBound returns true if t contains a bound variable which is not bound within t.
func HasLooseBound(t Type) bool { return hasLooseBound(0, t) }

func hasLooseBound(depth int, t Type) bool {
	switch t := t.(type) {
	case *TyVar:
		bv, ok := t.Var.(BoundVar)
		return ok && bv.Depth >= depth
	case *TyCon:
		for _, arg := range t.Args {
			if hasLooseBound(depth, arg) {
				return true
			}
		}
		return false
	case *Fun:
		return hasLooseBound(depth, t.Arg) || hasLooseBound(depth, t.Ret)
	case *Forall:
		return hasLooseBound(depth+1, t.Body)
	case *Comp:
		return hasLooseBound(depth, t.Type)
	}
	return false
}

// Occurs returns true if the metavariable m occurs within t.
func Occurs(m MetaVar, t Type) bool {
	found := false
	visitVars(t, func(v Variable) {
		if v == Variable(m) {
			found = true
		}
	})
	return found
}

func visitVars(t Type, f func(Variable)) {
	switch t := t.(type) {
	case *TyVar:
		f(t.Var)
	case *TyCon:
		for _, arg := range t.Args {
			visitVars(arg, f)
		}
	case *Fun:
		visitVars(t.Arg, f)
		visitVars(t.Ret, f)
	case *Forall:
		visitVars(t.Body, f)
	case *Comp:
		visitVars(t.Type, f)
	}
}
