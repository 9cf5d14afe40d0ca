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

package ast

import (
	"strings"

	"github.com/wdamron/elab/core"
	"github.com/wdamron/elab/types"
)

type exprPrinter struct {
	sb strings.Builder
	// names bound by enclosing scopes, innermost last
	scopes [][]string
}

// ExprString returns a string representation of a surface term. Bound variables are
// printed with the names of their binders.
func ExprString(e Term) string {
	var p exprPrinter
	p.exprString(false, e)
	return p.sb.String()
}

// PatternString returns a string representation of a surface pattern.
func PatternString(pat Pattern) string {
	var p exprPrinter
	p.patternString(pat)
	return p.sb.String()
}

func (p *exprPrinter) varName(v types.Variable) string {
	bv, ok := v.(types.BoundVar)
	if !ok {
		return v.VarName()
	}
	i := len(p.scopes) - 1 - bv.Depth
	if i < 0 || bv.Index >= len(p.scopes[i]) {
		return bv.VarName()
	}
	return p.scopes[i][bv.Index]
}

func (p *exprPrinter) push(names []string) { p.scopes = append(p.scopes, names) }
func (p *exprPrinter) pop()                { p.scopes = p.scopes[:len(p.scopes)-1] }

func (p *exprPrinter) args(ms []Term) {
	p.sb.WriteByte('(')
	for i, m := range ms {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		p.exprString(false, m)
	}
	p.sb.WriteByte(')')
}

func (p *exprPrinter) exprString(simple bool, e Term) {
	sb := &p.sb
	switch et := e.(type) {
	case *Var:
		sb.WriteString(p.varName(et.Var))

	case *Decname:
		sb.WriteByte('@')
		sb.WriteString(et.Name)

	case *Lit:
		sb.WriteString(core.PrimString(et.Prim))

	case *Ann:
		sb.WriteByte('(')
		p.exprString(false, et.Term)
		sb.WriteString(" : ")
		sb.WriteString(types.TypeString(et.Type))
		sb.WriteByte(')')

	case *Let:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("let ")
		sb.WriteString(et.Body.Names[0])
		sb.WriteString(" : ")
		sb.WriteString(types.TypeString(et.Type))
		sb.WriteString(" = ")
		p.exprString(false, et.Value)
		sb.WriteString(" in ")
		p.push(et.Body.Names)
		p.exprString(false, et.Body.Body)
		p.pop()
		if simple {
			sb.WriteByte(')')
		}

	case *Lam:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteByte('\\')
		sb.WriteString(et.Body.Names[0])
		sb.WriteString(" -> ")
		p.push(et.Body.Names)
		p.exprString(false, et.Body.Body)
		p.pop()
		if simple {
			sb.WriteByte(')')
		}

	case *App:
		if simple {
			sb.WriteByte('(')
		}
		p.exprString(false, et.Func)
		sb.WriteByte(' ')
		p.exprString(true, et.Arg)
		if simple {
			sb.WriteByte(')')
		}

	case *Con:
		sb.WriteString(et.Name)
		p.args(et.Args)

	case *Builtin:
		sb.WriteByte('!')
		sb.WriteString(et.Name)
		p.args(et.Args)

	case *Case:
		sb.WriteString("case ")
		for i, m := range et.Scrutinees {
			if i > 0 {
				sb.WriteString(", ")
			}
			p.exprString(false, m)
		}
		sb.WriteString(" of {")
		for i, c := range et.Clauses {
			if i > 0 {
				sb.WriteString(" |")
			}
			sb.WriteByte(' ')
			p.push(c.Names)
			for j, pat := range c.Patterns {
				if j > 0 {
					sb.WriteString(", ")
				}
				p.patternString(pat)
			}
			sb.WriteString(" -> ")
			p.exprString(false, c.Body)
			p.pop()
		}
		sb.WriteString(" }")

	case *Success:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("success ")
		p.exprString(true, et.Term)
		if simple {
			sb.WriteByte(')')
		}

	case *Failure:
		sb.WriteString("failure")

	case *Bind:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("do ")
		sb.WriteString(et.Body.Names[0])
		sb.WriteString(" <- ")
		p.exprString(false, et.Term)
		sb.WriteString("; ")
		p.push(et.Body.Names)
		p.exprString(false, et.Body.Body)
		p.pop()
		if simple {
			sb.WriteByte(')')
		}

	case nil:
		sb.WriteString("<nil>")
	}
}

func (p *exprPrinter) patternString(pat Pattern) {
	switch pt := pat.(type) {
	case *PatVar:
		p.sb.WriteString(p.varName(pt.Var))

	case *PatCon:
		p.sb.WriteString(pt.Name)
		p.sb.WriteByte('(')
		for i, arg := range pt.Args {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.patternString(arg)
		}
		p.sb.WriteByte(')')
	}
}
