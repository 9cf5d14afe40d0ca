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
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/wdamron/elab/internal/errwrap"
	"github.com/wdamron/elab/types"
)

// ErrorKind categorizes elaboration errors.
type ErrorKind int

const (
	_ ErrorKind = iota
	UnboundVariable
	UnboundTypeVariable
	UnknownTypeConstructor
	UnknownConstructor
	UnknownBuiltin
	UnknownDefinition
	ArityMismatch
	TypeMismatch
	UnificationFailure
	ClauseMismatch
	UnresolvedMetavariables
	Unsynthesizable
	EmptyCase
	DuplicateDeclaration
)

var errorKindNames = [...]string{
	"Unknown",
	"UnboundVariable",
	"UnboundTypeVariable",
	"UnknownTypeConstructor",
	"UnknownConstructor",
	"UnknownBuiltin",
	"UnknownDefinition",
	"ArityMismatch",
	"TypeMismatch",
	"UnificationFailure",
	"ClauseMismatch",
	"UnresolvedMetavariables",
	"Unsynthesizable",
	"EmptyCase",
	"DuplicateDeclaration",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(errorKindNames) {
		return errorKindNames[0]
	}
	return errorKindNames[k]
}

// Error is a recoverable elaboration error. Errors returned by elaboration may wrap an *Error
// with additional context; use KindOf to find the kind of a returned error.
type Error struct {
	Kind ErrorKind
	Msg  string
	// Types involved in the error, if any: the mismatched pair for UnificationFailure, or the
	// type of each clause for ClauseMismatch.
	Types []types.Type
}

func (e *Error) Error() string { return e.Msg }

// KindOf returns the kind of an elaboration error, or 0 if err was not produced by elaboration.
// For the accumulated errors returned by Validate, the kind of the first error is returned.
func KindOf(err error) ErrorKind {
	errs := errwrap.Errors(err)
	if len(errs) == 0 {
		return 0
	}
	if e, ok := errwrap.Cause(errs[0]).(*Error); ok {
		return e.Kind
	}
	return 0
}

func newError(kind ErrorKind, msg string, ts ...types.Type) *Error {
	return &Error{Kind: kind, Msg: msg, Types: ts}
}

func typeList(ts []types.Type) string {
	var sb strings.Builder
	for i, t := range ts {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(types.TypeString(t))
	}
	return sb.String()
}

// internalError reports a defect in the elaborator: a bound variable or metavariable reached a
// position where only free variables may occur. Internal errors are never returned as errors.
func internalError(what string, v interface{}) {
	panic("elab: internal error: " + what + "\n" + spew.Sdump(v))
}
