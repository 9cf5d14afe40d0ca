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
	"github.com/benbjohnson/immutable"

	"github.com/wdamron/elab/core"
	"github.com/wdamron/elab/types"
)

// Signature contains the declared type-constructors, data-constructors, and builtins.
//
// A signature is not modified during elaboration, so it may be shared across threads.
type Signature struct {
	TyCons   map[string]types.TyConSig
	Cons     map[string]*types.ConSig
	Builtins map[string]*types.ConSig
}

// Create an empty signature.
func NewSignature() *Signature {
	return &Signature{
		TyCons:   make(map[string]types.TyConSig),
		Cons:     make(map[string]*types.ConSig),
		Builtins: make(map[string]*types.ConSig),
	}
}

// Clone returns a copy of the signature which may be extended without modifying the original.
func (s *Signature) Clone() *Signature {
	c := NewSignature()
	for name, sig := range s.TyCons {
		c.TyCons[name] = sig
	}
	for name, sig := range s.Cons {
		c.Cons[name] = sig
	}
	for name, sig := range s.Builtins {
		c.Builtins[name] = sig
	}
	return c
}

// Declare a type-constructor with the given arity.
func (s *Signature) AddTyCon(name string, arity int) error {
	if _, exists := s.TyCons[name]; exists {
		return newError(DuplicateDeclaration, "Type constructor "+name+" is already declared")
	}
	s.TyCons[name] = types.TyConSig{Arity: arity}
	return nil
}

// Declare a data-constructor.
func (s *Signature) AddCon(name string, sig *types.ConSig) error {
	if _, exists := s.Cons[name]; exists {
		return newError(DuplicateDeclaration, "Constructor "+name+" is already declared")
	}
	s.Cons[name] = sig
	return nil
}

// Declare a builtin.
func (s *Signature) AddBuiltin(name string, sig *types.ConSig) error {
	if _, exists := s.Builtins[name]; exists {
		return newError(DuplicateDeclaration, "Builtin "+name+" is already declared")
	}
	s.Builtins[name] = sig
	return nil
}

// Definition is an elaborated top-level declaration.
type Definition struct {
	Term core.Term
	Type types.Type
}

// Definitions contains immutable mappings from names to elaborated top-level declarations.
type Definitions struct {
	m *immutable.SortedMap
}

var emptyDefinitions = immutable.NewSortedMap(nil)

func (d Definitions) sorted() *immutable.SortedMap {
	if d.m == nil {
		return emptyDefinitions
	}
	return d.m
}

// Get the number of definitions.
func (d Definitions) Len() int { return d.sorted().Len() }

// Lookup the definition for name.
func (d Definitions) Get(name string) (Definition, bool) {
	def, ok := d.sorted().Get(name)
	if !ok {
		return Definition{}, false
	}
	return def.(Definition), true
}

// Set returns a copy of the definitions with name mapped to def.
func (d Definitions) Set(name string, def Definition) Definitions {
	return Definitions{d.sorted().Set(name, def)}
}

// Iterate over definitions in order of name.
// If f returns false, iteration will be stopped.
func (d Definitions) Range(f func(string, Definition) bool) {
	iter := d.sorted().Iterator()
	for !iter.Done() {
		name, def := iter.Next()
		if !f(name.(string), def.(Definition)) {
			return
		}
	}
}
