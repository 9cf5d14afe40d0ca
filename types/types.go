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

// Names of the primitive type-constructors.
const (
	IntName        = "Int"
	FloatName      = "Float"
	ByteStringName = "ByteString"
)

// Type is the base interface for all types.
type Type interface {
	TypeName() string
}

var (
	_ Type = (*TyVar)(nil)
	_ Type = (*TyCon)(nil)
	_ Type = (*Fun)(nil)
	_ Type = (*Forall)(nil)
	_ Type = (*Comp)(nil)
)

func (t *TyVar) TypeName() string  { return "TyVar" }
func (t *TyCon) TypeName() string  { return "TyCon" }
func (t *Fun) TypeName() string    { return "Fun" }
func (t *Forall) TypeName() string { return "Forall" }
func (t *Comp) TypeName() string   { return "Comp" }

// Type variable: free (rigid or skolem), bound by an enclosing forall, or a metavariable.
type TyVar struct {
	Var Variable
}

// Type-constructor application: `List[Int]`
type TyCon struct {
	Name string
	Args []Type
}

// Function type: `Int -> Int`
type Fun struct {
	Arg Type
	Ret Type
}

// Universally quantified type: `forall a. a -> a`
//
// Forall is a scope binding a single type variable; occurrences within Body refer to it
// as BoundVar{Depth: 0, Index: 0}, counting from the innermost enclosing scope.
type Forall struct {
	Name string
	Body Type
}

// Computation type: `Comp[Int]`
type Comp struct {
	Type Type
}

// Create a type variable for v.
func NewTyVar(v Variable) *TyVar { return &TyVar{Var: v} }

// Create a type variable for a metavariable.
func NewMeta(m MetaVar) *TyVar { return &TyVar{Var: m} }

// Create a nullary type-constructor application.
func NewTyCon(name string, args ...Type) *TyCon { return &TyCon{Name: name, Args: args} }

// IsMeta returns the metavariable of t, if t is a metavariable.
func IsMeta(t Type) (MetaVar, bool) {
	if tv, ok := t.(*TyVar); ok {
		m, ok := tv.Var.(MetaVar)
		return m, ok
	}
	return 0, false
}

// Equal returns true if a and b are syntactically equal. Bound variables are compared
// by position, so alpha-equivalent types are equal.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *TyVar:
		b, ok := b.(*TyVar)
		if !ok {
			return false
		}
		switch av := a.Var.(type) {
		case FreeVar:
			bv, ok := b.Var.(FreeVar)
			return ok && av.Same(bv)
		default:
			return a.Var == b.Var
		}
	case *TyCon:
		b, ok := b.(*TyCon)
		if !ok || a.Name != b.Name || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	case *Fun:
		b, ok := b.(*Fun)
		return ok && Equal(a.Arg, b.Arg) && Equal(a.Ret, b.Ret)
	case *Forall:
		b, ok := b.(*Forall)
		return ok && Equal(a.Body, b.Body)
	case *Comp:
		b, ok := b.(*Comp)
		return ok && Equal(a.Type, b.Type)
	}
	return false
}
