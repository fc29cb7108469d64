// Copyright (C) 2019-2024 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package abi

import "errors"

// Every parse error returned by this package wraps exactly one of the
// following, so callers can classify failures with errors.Is.
var (
	// ErrSyntax is returned when a string does not match any production of the
	// type or method signature grammar.
	ErrSyntax = errors.New("abi syntax error")
	// ErrRange is returned for well formed numbers outside of their bounds
	// (bit size, precision, static array length, tuple length).
	ErrRange = errors.New("abi range error")
	// ErrStructure is returned for unbalanced parentheses and for leading,
	// trailing or consecutive commas in tuple bodies and argument lists.
	ErrStructure = errors.New("abi structure error")
	// ErrInvalidOperation is returned when a caller asks for something the
	// value cannot provide, such as the type object of a void return or of a
	// transaction argument.
	ErrInvalidOperation = errors.New("abi invalid operation")
)

// Lookup errors returned by Interface, Contract and Registry queries.
var (
	// ErrMethodNotFound is returned when no method matches a name or selector.
	ErrMethodNotFound = errors.New("abi method not found")
	// ErrAmbiguousMethod is returned when a name matches several methods.
	ErrAmbiguousMethod = errors.New("abi method is ambiguous")
)
