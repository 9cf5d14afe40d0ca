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

import (
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} {
		p := &typePrinter{}
		p.scopes = p._scopes[:0]
		return p
	},
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	for i := range p.scopes {
		p.scopes[i] = nil
	}
	p.scopes = p._scopes[:0]
	p.sb.Reset()
	printerPool.Put(p)
}

type typePrinter struct {
	// names bound by enclosing scopes, innermost last
	scopes  [][]string
	_scopes [8][]string
	sb      strings.Builder
}

// TypeString returns a string representation of a Type.
func TypeString(t Type) string {
	p := newTypePrinter()
	typeString(p, false, t)
	s := p.sb.String()
	p.Release()
	return s
}

// ConSigString returns a string representation of a constructor signature.
func ConSigString(sig *ConSig) string {
	p := newTypePrinter()
	if len(sig.Params) > 0 {
		p.sb.WriteString("forall")
		for _, name := range sig.Params {
			p.sb.WriteByte(' ')
			p.sb.WriteString(name)
		}
		p.sb.WriteString(". ")
	}
	p.scopes = append(p.scopes, sig.Params)
	p.sb.WriteByte('(')
	for i, arg := range sig.Args {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		typeString(p, false, arg)
	}
	p.sb.WriteString(") -> ")
	typeString(p, false, sig.Return)
	s := p.sb.String()
	p.Release()
	return s
}

func (p *typePrinter) boundName(v BoundVar) string {
	i := len(p.scopes) - 1 - v.Depth
	if i < 0 || v.Index >= len(p.scopes[i]) {
		return v.VarName()
	}
	return p.scopes[i][v.Index]
}

func typeString(p *typePrinter, simple bool, t Type) {
	switch t := t.(type) {
	case *TyVar:
		switch v := t.Var.(type) {
		case BoundVar:
			p.sb.WriteString(p.boundName(v))
		default:
			p.sb.WriteString(v.VarName())
		}

	case *TyCon:
		p.sb.WriteString(t.Name)
		if len(t.Args) == 0 {
			return
		}
		p.sb.WriteByte('[')
		for i, arg := range t.Args {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			typeString(p, false, arg)
		}
		p.sb.WriteByte(']')

	case *Fun:
		if simple {
			p.sb.WriteByte('(')
		}
		typeString(p, true, t.Arg)
		p.sb.WriteString(" -> ")
		typeString(p, false, t.Ret)
		if simple {
			p.sb.WriteByte(')')
		}

	case *Forall:
		if simple {
			p.sb.WriteByte('(')
		}
		p.sb.WriteString("forall ")
		p.sb.WriteString(t.Name)
		p.sb.WriteString(". ")
		p.scopes = append(p.scopes, []string{t.Name})
		typeString(p, false, t.Body)
		p.scopes = p.scopes[:len(p.scopes)-1]
		if simple {
			p.sb.WriteByte(')')
		}

	case *Comp:
		p.sb.WriteString("Comp[")
		typeString(p, false, t.Type)
		p.sb.WriteByte(']')

	case nil:
		p.sb.WriteString("<nil>")
	}
}
