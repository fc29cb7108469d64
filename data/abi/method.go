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

import (
	"fmt"
	"strings"

	"github.com/algorand/go-algorand-abi/crypto"
	"github.com/algorand/go-algorand-abi/serr"
)

// Arg represents an ABI Method argument
type Arg struct {
	// Optional, user-friendly name for the argument
	Name string `codec:"name,omitempty"`
	// The type of the argument as a string. See GetTypeObject to obtain the
	// ABI type object
	Type string `codec:"type"`
	// Optional, user-friendly description for the argument
	Desc string `codec:"desc,omitempty"`

	// filled in while the owning Method is built, never afterwards
	parsed Type
}

// IsTransactionArg checks if this argument's type is a transaction type
func (a Arg) IsTransactionArg() bool {
	return IsTransactionType(a.Type)
}

// IsReferenceArg checks if this argument's type is a reference type
func (a Arg) IsReferenceArg() bool {
	return IsReferenceType(a.Type)
}

// GetTypeObject parses and returns the ABI type object for this argument's
// type. An error will be returned if this argument's type is a transaction or
// reference type
func (a Arg) GetTypeObject() (Type, error) {
	if a.IsTransactionArg() {
		return nil, fmt.Errorf("%w: invalid operation on transaction type %s", ErrInvalidOperation, a.Type)
	}
	if a.IsReferenceArg() {
		return nil, fmt.Errorf("%w: invalid operation on reference type %s", ErrInvalidOperation, a.Type)
	}
	if a.parsed != nil {
		return a.parsed, nil
	}
	return TypeOf(a.Type)
}

func (a *Arg) resolve() error {
	if a.IsTransactionArg() || a.IsReferenceArg() {
		return nil
	}
	typeObject, err := TypeOf(a.Type)
	if err != nil {
		return err
	}
	a.parsed = typeObject
	return nil
}

// Return represents an ABI method return value
type Return struct {
	// The type of the return value as a string. See GetTypeObject to obtain
	// the ABI type object
	Type string `codec:"type"`
	// Optional, user-friendly description for the return value
	Desc string `codec:"desc,omitempty"`

	// stays nil for void returns
	parsed Type
}

// IsVoid checks if this return type is void, meaning the method does not
// return any value
func (r Return) IsVoid() bool {
	return r.Type == VoidReturnType
}

// GetTypeObject parses and returns the ABI type object for this return type.
// An error will be returned if this is a void return type.
func (r Return) GetTypeObject() (Type, error) {
	if r.IsVoid() {
		return nil, fmt.Errorf("%w: invalid operation on void return type", ErrInvalidOperation)
	}
	if r.parsed != nil {
		return r.parsed, nil
	}
	return TypeOf(r.Type)
}

func (r *Return) resolve() error {
	if r.IsVoid() {
		return nil
	}
	typeObject, err := TypeOf(r.Type)
	if err != nil {
		return err
	}
	r.parsed = typeObject
	return nil
}

// Method represents an ABI method
type Method struct {
	// The name of the method
	Name string `codec:"name"`
	// Optional, user-friendly description for the method
	Desc string `codec:"desc,omitempty"`
	// The arguments of the method, in order
	Args []Arg `codec:"args,omitempty"`
	// Information about the method's return value
	Returns Return `codec:"returns"`
}

// GetSignature calculates and returns the signature of the method. It is
// built from the raw type strings, so transaction and reference arguments
// keep their exact spelling.
func (m Method) GetSignature() string {
	var methodSignature strings.Builder
	methodSignature.WriteString(m.Name)
	methodSignature.WriteByte('(')
	for i, arg := range m.Args {
		if i > 0 {
			methodSignature.WriteByte(',')
		}
		methodSignature.WriteString(arg.Type)
	}
	methodSignature.WriteByte(')')
	methodSignature.WriteString(m.Returns.Type)
	return methodSignature.String()
}

// GetSelector calculates and returns the 4-byte selector of the method: the
// first 4 bytes of the SHA-512/256 digest of the method signature.
func (m Method) GetSelector() [4]byte {
	sigHash := crypto.Hash([]byte(m.GetSignature()))
	var selector [4]byte
	copy(selector[:], sigHash[:len(selector)])
	return selector
}

// GetTxCount returns the number of transactions required to invoke the method
func (m Method) GetTxCount() int {
	txCount := 1
	for _, arg := range m.Args {
		if arg.IsTransactionArg() {
			txCount++
		}
	}
	return txCount
}

// resolve checks every argument and return type of a decoded method and
// fills their type caches.
func (m *Method) resolve() error {
	if m.Name == "" {
		return fmt.Errorf("%w: method must have a non empty name", ErrSyntax)
	}
	for i := range m.Args {
		if err := m.Args[i].resolve(); err != nil {
			return serr.Extend(fmt.Errorf("method %s argument %d: %w", m.Name, i, err), "method", m.Name, "arg", i)
		}
	}
	if err := m.Returns.resolve(); err != nil {
		return serr.Extend(fmt.Errorf("method %s return type: %w", m.Name, err), "method", m.Name)
	}
	return nil
}

// MethodFromSignature decodes a method signature string into a Method object.
func MethodFromSignature(methodStr string) (Method, error) {
	openIdx := strings.IndexByte(methodStr, '(')
	if openIdx == -1 {
		return Method{}, serr.Extend(
			fmt.Errorf("%w: method signature is missing an open parenthesis: %s", ErrSyntax, methodStr),
			"signature", methodStr)
	}

	name := methodStr[:openIdx]
	if name == "" {
		return Method{}, serr.Extend(
			fmt.Errorf("%w: method must have a non empty name: %s", ErrSyntax, methodStr),
			"signature", methodStr)
	}

	argTypes, closeIdx, err := splitGroup(methodStr, openIdx)
	if err != nil {
		return Method{}, serr.Extend(fmt.Errorf("ill formed method argument list: %w", err), "signature", methodStr)
	}

	returnType := Return{Type: methodStr[closeIdx+1:]}
	if err := returnType.resolve(); err != nil {
		return Method{}, serr.Extend(fmt.Errorf("method %s return type: %w", name, err), "signature", methodStr)
	}

	args := make([]Arg, len(argTypes))
	for i, argType := range argTypes {
		args[i].Type = argType
		if err := args[i].resolve(); err != nil {
			return Method{}, serr.Extend(fmt.Errorf("method %s argument %d: %w", name, i, err),
				"signature", methodStr, "arg", i)
		}
	}

	return Method{
		Name:    name,
		Args:    args,
		Returns: returnType,
	}, nil
}
