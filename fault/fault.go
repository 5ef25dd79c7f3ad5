// Copyright 2026 xgfone
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fault classifies the runtime failures raised by the handlers and
// the middlewares, so that the dispatcher can pick the most specific
// registered exception handler for each of them.
//
// The classes form an explicit tree declared at construction time, for
// example,
//
//	var (
//		ErrStorage  = fault.NewKind("storage", nil)
//		ErrNoRecord = fault.NewKind("norecord", ErrStorage)
//	)
//
// so resolving a failure is a plain parent walk ending at Base, without
// any runtime type reflection.
package fault

import (
	"errors"
	"fmt"
)

// Kind identifies a class of runtime failures.
type Kind struct {
	name   string
	parent *Kind
}

// Base is the universal ancestor of all the failure kinds. Every failure,
// a plain untagged error or a recovered panic included, belongs to it.
var Base = &Kind{name: "fault"}

// NewKind declares a new failure kind derived from parent.
//
// If parent is nil, the kind is derived from Base directly, so every kind
// is rooted at Base by construction.
func NewKind(name string, parent *Kind) *Kind {
	if parent == nil {
		parent = Base
	}
	return &Kind{name: name, parent: parent}
}

// Name returns the name of the kind.
func (k *Kind) Name() string { return k.name }

// Parent returns the parent kind, which is nil only for Base.
func (k *Kind) Parent() *Kind { return k.parent }

// Is reports whether k is target or derived from it.
func (k *Kind) Is(target *Kind) bool {
	for ; k != nil; k = k.parent {
		if k == target {
			return true
		}
	}
	return false
}

func (k *Kind) String() string { return k.name }

// New returns a new error of the kind k.
func (k *Kind) New(msg string) error {
	return &Error{kind: k, err: errors.New(msg)}
}

// Newf is equal to New(fmt.Sprintf(format, args...)).
func (k *Kind) Newf(format string, args ...interface{}) error {
	if len(args) == 0 {
		return k.New(format)
	}
	return &Error{kind: k, err: fmt.Errorf(format, args...)}
}

// Wrap tags err with the kind k, or returns nil if err is nil.
func (k *Kind) Wrap(err error) error {
	if err == nil {
		return nil
	}
	return &Error{kind: k, err: err}
}

// Error is an error tagged with a failure kind.
type Error struct {
	kind *Kind
	err  error
}

func (e *Error) Error() string { return e.err.Error() }

// Unwrap unwraps the inner error.
func (e *Error) Unwrap() error { return e.err }

// Kind returns the kind of the error.
func (e *Error) Kind() *Kind { return e.kind }

// KindOf returns the kind of err, looking through the wrapped errors.
// An untagged error belongs to Base.
func KindOf(err error) *Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return Base
}
