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

package core

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// TermString returns the s-expression representation of a core term.
func TermString(e Term) string {
	var sb strings.Builder
	termString(&sb, e)
	return sb.String()
}

// PatternString returns the s-expression representation of a core pattern.
func PatternString(p Pattern) string {
	var sb strings.Builder
	patternString(&sb, p)
	return sb.String()
}

// PrimString returns the representation of a primitive value.
func PrimString(v Prim) string {
	switch v := v.(type) {
	case PrimInt:
		return strconv.FormatInt(int64(v), 10)
	case PrimFloat:
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	case PrimByteString:
		return "#" + hex.EncodeToString(v)
	}
	return "<invalid-prim>"
}

func termString(sb *strings.Builder, e Term) {
	switch e := e.(type) {
	case *Var:
		sb.WriteString(e.Name)

	case *Decname:
		sb.WriteString("(decname ")
		sb.WriteString(e.Name)
		sb.WriteByte(')')

	case *Lam:
		sb.WriteString("(lam ")
		sb.WriteString(e.Name)
		sb.WriteByte(' ')
		termString(sb, e.Body)
		sb.WriteByte(')')

	case *App:
		sb.WriteString("[ ")
		termString(sb, e.Func)
		sb.WriteByte(' ')
		termString(sb, e.Arg)
		sb.WriteString(" ]")

	case *Con:
		sb.WriteString("(con ")
		sb.WriteString(e.Name)
		for _, arg := range e.Args {
			sb.WriteByte(' ')
			termString(sb, arg)
		}
		sb.WriteByte(')')

	case *Case:
		sb.WriteString("(case (")
		for i, m := range e.Scrutinees {
			if i > 0 {
				sb.WriteByte(' ')
			}
			termString(sb, m)
		}
		sb.WriteByte(')')
		for _, c := range e.Clauses {
			sb.WriteString(" (cl (")
			for i, p := range c.Patterns {
				if i > 0 {
					sb.WriteByte(' ')
				}
				patternString(sb, p)
			}
			sb.WriteString(") ")
			termString(sb, c.Body)
			sb.WriteByte(')')
		}
		sb.WriteByte(')')

	case *Success:
		sb.WriteString("(success ")
		termString(sb, e.Term)
		sb.WriteByte(')')

	case *Failure:
		sb.WriteString("(failure)")

	case *Bind:
		sb.WriteString("(bind ")
		termString(sb, e.Term)
		sb.WriteByte(' ')
		sb.WriteString(e.Name)
		sb.WriteByte(' ')
		termString(sb, e.Body)
		sb.WriteByte(')')

	case *Builtin:
		sb.WriteString("(builtin ")
		sb.WriteString(e.Name)
		for _, arg := range e.Args {
			sb.WriteByte(' ')
			termString(sb, arg)
		}
		sb.WriteByte(')')

	case *Lit:
		sb.WriteString(PrimString(e.Prim))

	case nil:
		sb.WriteString("<nil>")
	}
}

func patternString(sb *strings.Builder, p Pattern) {
	switch p := p.(type) {
	case *PatVar:
		sb.WriteString(p.Name)

	case *PatCon:
		sb.WriteString("(con ")
		sb.WriteString(p.Name)
		for _, arg := range p.Args {
			sb.WriteByte(' ')
			patternString(sb, arg)
		}
		sb.WriteByte(')')
	}
}
