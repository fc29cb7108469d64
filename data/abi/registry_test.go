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
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algorand/go-algorand-abi/logging"
	"github.com/algorand/go-algorand-abi/test/partitiontest"
)

func mustMethod(t *testing.T, signature string) Method {
	method, err := MethodFromSignature(signature)
	require.NoError(t, err)
	return method
}

func TestRegistryLookup(t *testing.T) {
	partitiontest.PartitionTest(t)

	var buf bytes.Buffer
	log := logging.NewLogger()
	log.SetOutput(&buf)
	log.SetLevel(logging.Debug)

	registry := MakeRegistry(log)
	registry.AddContract(Contract{Name: "Calculator", Methods: []Method{
		mustMethod(t, "add(uint32,uint32)uint32"),
		mustMethod(t, "sub(uint32,uint32)uint32"),
	}})
	registry.AddInterface(Interface{Name: "Adder", Methods: []Method{
		mustMethod(t, "add(uint32,uint32)uint32"),
		mustMethod(t, "add(uint64,uint64)uint128"),
	}})
	require.Equal(t, 4, registry.Len())
	require.Contains(t, buf.String(), "registered 2 methods from Calculator")
	require.NotContains(t, buf.String(), "selector collision")

	refs := registry.LookupSelector([4]byte{0x3e, 0x1e, 0x52, 0xbd})
	require.Len(t, refs, 2)
	require.Equal(t, "Calculator", refs[0].Source)
	require.Equal(t, "Adder", refs[1].Source)

	refs = registry.LookupName("add")
	require.Len(t, refs, 3)

	require.Empty(t, registry.LookupName("mul"))
	require.Empty(t, registry.LookupSelector([4]byte{}))

	// lookups hand out copies
	refs[0].Source = "changed"
	require.Equal(t, "Calculator", registry.LookupName("add")[0].Source)
}

func TestRegistrySelectorCollision(t *testing.T) {
	partitiontest.PartitionTest(t)

	var buf bytes.Buffer
	log := logging.NewLogger()
	log.SetOutput(&buf)
	log.SetJSONFormatter()

	registry := MakeRegistry(log)
	add := mustMethod(t, "add(uint32,uint32)uint32")
	// no real collision is known, so plant one under the selector of add
	registry.bySelector[add.GetSelector()] = []MethodRef{{Source: "Planted", Method: mustMethod(t, "planted()void")}}

	registry.AddContract(Contract{Name: "Calculator", Methods: []Method{add}})
	require.Contains(t, buf.String(), "selector collision: add(uint32,uint32)uint32 from Calculator and planted()void from Planted")
	require.Contains(t, buf.String(), `"selector":"3e1e52bd"`)
	require.Len(t, registry.LookupSelector(add.GetSelector()), 2)
}

func TestRegistryConcurrentAdd(t *testing.T) {
	partitiontest.PartitionTest(t)

	log := logging.NewLogger()
	log.SetLevel(logging.Error)
	registry := MakeRegistry(log)

	const contracts = 16
	var wg sync.WaitGroup
	for i := 0; i < contracts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			method, err := MethodFromSignature(fmt.Sprintf("m%d(uint64)void", i))
			if err != nil {
				panic(err)
			}
			registry.AddContract(Contract{Name: fmt.Sprintf("c%d", i), Methods: []Method{method}})
			registry.LookupName(method.Name)
		}(i)
	}
	wg.Wait()

	require.Equal(t, contracts, registry.Len())
	for i := 0; i < contracts; i++ {
		refs := registry.LookupName(fmt.Sprintf("m%d", i))
		require.Len(t, refs, 1)
		require.Equal(t, fmt.Sprintf("c%d", i), refs[0].Source)
	}
}
