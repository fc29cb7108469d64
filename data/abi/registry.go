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

	"github.com/algorand/go-deadlock"

	"github.com/algorand/go-algorand-abi/logging"
)

// MethodRef is a method registered under the name of the contract or
// interface that declared it.
type MethodRef struct {
	Source string
	Method Method
}

// Registry indexes the methods of many contracts and interfaces by selector
// and by name, so that a call can be dispatched from its 4-byte selector.
// It is safe for concurrent use.
type Registry struct {
	mu         deadlock.RWMutex
	bySelector map[[4]byte][]MethodRef
	byName     map[string][]MethodRef
	count      int

	log logging.Logger
}

// MakeRegistry creates an empty Registry logging to log.
func MakeRegistry(log logging.Logger) *Registry {
	return &Registry{
		bySelector: make(map[[4]byte][]MethodRef),
		byName:     make(map[string][]MethodRef),
		log:        log,
	}
}

// AddContract registers every method of the contract.
func (r *Registry) AddContract(c Contract) {
	r.add(c.Name, c.Methods)
}

// AddInterface registers every method of the interface.
func (r *Registry) AddInterface(i Interface) {
	r.add(i.Name, i.Methods)
}

func (r *Registry) add(source string, methods []Method) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, method := range methods {
		selector := method.GetSelector()
		signature := method.GetSignature()
		for _, existing := range r.bySelector[selector] {
			if existingSig := existing.Method.GetSignature(); existingSig != signature {
				r.log.With("selector", hex.EncodeToString(selector[:])).
					Warnf("selector collision: %s from %s and %s from %s", signature, source, existingSig, existing.Source)
			}
		}

		ref := MethodRef{Source: source, Method: method}
		r.bySelector[selector] = append(r.bySelector[selector], ref)
		r.byName[method.Name] = append(r.byName[method.Name], ref)
		r.count++
	}
	r.log.Debugf("registered %d methods from %s", len(methods), source)
}

// LookupSelector returns every registered method with the given selector.
func (r *Registry) LookupSelector(selector [4]byte) []MethodRef {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]MethodRef(nil), r.bySelector[selector]...)
}

// LookupName returns every registered method with the given name.
func (r *Registry) LookupName(name string) []MethodRef {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]MethodRef(nil), r.byName[name]...)
}

// Len returns the number of registered methods.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}
