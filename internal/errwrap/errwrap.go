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

// Package errwrap contains helpers for wrapping and accumulating elaboration errors.
package errwrap

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Wrapf adds context onto an existing error. If err is nil, nil is returned.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// Cause returns the innermost error of a chain built with Wrapf.
func Cause(err error) error { return errors.Cause(err) }

// Append can be used to safely append an error onto an existing one. If either error is
// nil, the other is returned unchanged.
func Append(reterr, err error) error {
	if reterr == nil {
		return err
	}
	if err == nil {
		return reterr
	}
	return multierror.Append(reterr, err)
}

// Errors flattens an error built with Append into its component errors.
func Errors(err error) []error {
	if err == nil {
		return nil
	}
	if merr, ok := err.(*multierror.Error); ok {
		return merr.WrappedErrors()
	}
	return []error{err}
}
