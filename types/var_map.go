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
	"github.com/benbjohnson/immutable"
)

var emptyMap = immutable.NewSortedMap(nil)

var EmptyVarMap = VarMap{emptyMap}

// VarMap contains immutable mappings from free variables to types, ordered by variable id.
//
// Updating a VarMap returns a new map and leaves the original unchanged, so a scoped
// extension is undone by restoring the previous value.
type VarMap struct {
	m *immutable.SortedMap
}

type varEntry struct {
	v FreeVar
	t Type
}

func (m VarMap) sorted() *immutable.SortedMap {
	if m.m == nil {
		return emptyMap
	}
	return m.m
}

// Get the number of entries in the map.
func (m VarMap) Len() int { return m.sorted().Len() }

// Get the type for a variable. A nil type may be stored for variables which only need to
// be tracked (such as type variables).
func (m VarMap) Get(v FreeVar) (Type, bool) {
	e, ok := m.sorted().Get(v.Id)
	if !ok {
		return nil, false
	}
	return e.(varEntry).t, true
}

// Contains returns true if v has an entry in the map.
func (m VarMap) Contains(v FreeVar) bool {
	_, ok := m.sorted().Get(v.Id)
	return ok
}

// Set returns a copy of the map with v mapped to t.
func (m VarMap) Set(v FreeVar, t Type) VarMap {
	return VarMap{m.sorted().Set(v.Id, varEntry{v, t})}
}

// Iterate over entries in the map.
// If f returns false, iteration will be stopped.
func (m VarMap) Range(f func(FreeVar, Type) bool) {
	iter := m.sorted().Iterator()
	for !iter.Done() {
		_, e := iter.Next()
		entry := e.(varEntry)
		if !f(entry.v, entry.t) {
			return
		}
	}
}

// Names returns the display names of all variables in the map.
func (m VarMap) Names() []string {
	names := make([]string, 0, m.Len())
	m.Range(func(v FreeVar, _ Type) bool {
		names = append(names, v.Name)
		return true
	})
	return names
}
