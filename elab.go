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

// elab elaborates surface terms of a smart-contract language into an explicit core calculus.
//
// Elaboration is bidirectional: types are synthesized from the shape of a term where possible,
// and expected types are pushed into terms where they are known. Rank-n polymorphic types are
// supported with implicit instantiation; quantified types are instantiated with metavariables,
// which are solved by unification, and a subsumption relation decides when a polymorphic type
// may stand in for another.
//
//
// Supported Features:
//
//   * Algebraic data types with parameterized constructor signatures
//   * Pattern-matching case expressions over multiple scrutinees
//   * Computation types with success, failure, and monadic bind
//   * Builtin operations with polymorphic signatures
//   * Annotated let-bindings and type annotations
//   * Rank-n polymorphism with implicit instantiation and skolemization
//   * Programs of mutually-recursive data types and term declarations
//
//
// Limitations:
//
// Unannotated lambdas are not generalized. A lambda whose domain is never constrained leaves an
// unresolved metavariable, and elaboration fails; such lambdas must be annotated.
//
//
// Links:
//
// Complete and Easy Bidirectional Typechecking for Higher-Rank Polymorphism (Dunfield, Krishnaswami): https://arxiv.org/abs/1306.6032
//
// Practical type inference for arbitrary-rank types (Peyton Jones, Vytiniotis, Weirich, Shields): https://www.microsoft.com/en-us/research/publication/practical-type-inference-for-arbitrary-rank-types/
package elab
