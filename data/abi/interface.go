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
	"encoding/hex"
	"fmt"

	"github.com/algorand/go-algorand-abi/protocol"
	"github.com/algorand/go-algorand-abi/serr"
)

// Interface represents an ABI interface, which is a logically grouped
// collection of methods
type Interface struct {
	// The name of the interface
	Name string `codec:"name"`
	// Optional, user-friendly description for the interface
	Desc string `codec:"desc,omitempty"`
	// The methods that the interface contains
	Methods []Method `codec:"methods,omitempty"`
}

// ContractNetworkInfo contains network-specific information about the contract
type ContractNetworkInfo struct {
	// The application ID of the contract for this network
	AppID uint64 `codec:"appID"`
}

// Contract represents an ABI contract, which is a concrete set of methods
// implemented by a single app
type Contract struct {
	// The name of the contract
	Name string `codec:"name"`
	// Optional, user-friendly description for the contract
	Desc string `codec:"desc,omitempty"`
	// Optional information about the contract's instances across different
	// networks, keyed by genesis hash
	Networks map[string]ContractNetworkInfo `codec:"networks,omitempty"`
	// The methods that the contract implements
	Methods []Method `codec:"methods,omitempty"`
}

// DecodeMethodJSON decodes a JSON method description and resolves the types of
// its arguments and return value.
func DecodeMethodJSON(data []byte) (Method, error) {
	var method Method
	if err := protocol.DecodeJSON(data, &method); err != nil {
		return Method{}, fmt.Errorf("%w: cannot decode method JSON: %v", ErrSyntax, err)
	}
	if err := method.resolve(); err != nil {
		return Method{}, err
	}
	return method, nil
}

// DecodeInterfaceJSON decodes a JSON interface description and resolves the
// types of all of its methods.
func DecodeInterfaceJSON(data []byte) (Interface, error) {
	var iface Interface
	if err := protocol.DecodeJSON(data, &iface); err != nil {
		return Interface{}, fmt.Errorf("%w: cannot decode interface JSON: %v", ErrSyntax, err)
	}
	if err := resolveMethods(iface.Methods); err != nil {
		return Interface{}, serr.Extend(err, "interface", iface.Name)
	}
	return iface, nil
}

// DecodeContractJSON decodes a JSON contract description and resolves the
// types of all of its methods.
func DecodeContractJSON(data []byte) (Contract, error) {
	var contract Contract
	if err := protocol.DecodeJSON(data, &contract); err != nil {
		return Contract{}, fmt.Errorf("%w: cannot decode contract JSON: %v", ErrSyntax, err)
	}
	if err := resolveMethods(contract.Methods); err != nil {
		return Contract{}, serr.Extend(err, "contract", contract.Name)
	}
	return contract, nil
}

func resolveMethods(methods []Method) error {
	for i := range methods {
		if err := methods[i].resolve(); err != nil {
			return err
		}
	}
	return nil
}

// GetMethodByName returns the method with the given name. An error is
// returned when no method, or more than one method, has that name.
func (i Interface) GetMethodByName(name string) (Method, error) {
	return getMethodByName(i.Methods, name)
}

// GetMethodByName returns the method with the given name. An error is
// returned when no method, or more than one method, has that name.
func (c Contract) GetMethodByName(name string) (Method, error) {
	return getMethodByName(c.Methods, name)
}

// GetMethodBySelector returns the contract method whose selector matches.
func (c Contract) GetMethodBySelector(selector [4]byte) (Method, error) {
	for _, method := range c.Methods {
		if method.GetSelector() == selector {
			return method, nil
		}
	}
	return Method{}, fmt.Errorf("%w: no method with selector %s in contract %s",
		ErrMethodNotFound, hex.EncodeToString(selector[:]), c.Name)
}

func getMethodByName(methods []Method, name string) (Method, error) {
	var filtered []Method
	for _, method := range methods {
		if method.Name == name {
			filtered = append(filtered, method)
		}
	}

	switch len(filtered) {
	case 0:
		return Method{}, fmt.Errorf("%w: found 0 methods with the name %s", ErrMethodNotFound, name)
	case 1:
		return filtered[0], nil
	default:
		signatures := make([]string, len(filtered))
		for i, method := range filtered {
			signatures[i] = method.GetSignature()
		}
		return Method{}, fmt.Errorf("%w: found %d methods with the same name %s: %v",
			ErrAmbiguousMethod, len(filtered), name, signatures)
	}
}
