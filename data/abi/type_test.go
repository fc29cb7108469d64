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
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/algorand/go-algorand-abi/test/partitiontest"
	"github.com/algorand/go-algorand-abi/test/rapidgen"
)

func mustUint(t require.TestingT, size uint16) UintType {
	typ, err := MakeUintType(size)
	require.NoError(t, err)
	return typ
}

func mustUfixed(t require.TestingT, size, precision uint16) UfixedType {
	typ, err := MakeUfixedType(size, precision)
	require.NoError(t, err)
	return typ
}

func mustStatic(t require.TestingT, elem Type, length uint16) StaticArrayType {
	typ, err := MakeStaticArrayType(elem, length)
	require.NoError(t, err)
	return typ
}

func mustDynamic(t require.TestingT, elem Type) DynamicArrayType {
	typ, err := MakeDynamicArrayType(elem)
	require.NoError(t, err)
	return typ
}

func mustTuple(t require.TestingT, elems ...Type) TupleType {
	typ, err := MakeTupleType(elems)
	require.NoError(t, err)
	return typ
}

func TestMakeTypeValid(t *testing.T) {
	partitiontest.PartitionTest(t)

	// uint
	for i := 8; i <= 512; i += 8 {
		uintType := mustUint(t, uint16(i))
		require.Equal(t, uint16(i), uintType.BitSize())
		require.Equal(t, fmt.Sprintf("uint%d", i), uintType.String())
	}
	// ufixed
	for i := 8; i <= 512; i += 8 {
		for j := 1; j <= 160; j++ {
			ufixedType := mustUfixed(t, uint16(i), uint16(j))
			require.Equal(t, fmt.Sprintf("ufixed%dx%d", i, j), ufixedType.String())
		}
	}

	testcases := []struct {
		input    Type
		expected string
	}{
		{MakeByteType(), "byte"},
		{MakeBoolType(), "bool"},
		{MakeAddressType(), "address"},
		{MakeStringType(), "string"},
		{mustDynamic(t, mustUint(t, 32)), "uint32[]"},
		{mustDynamic(t, mustDynamic(t, MakeByteType())), "byte[][]"},
		{mustStatic(t, mustUfixed(t, 128, 10), 100), "ufixed128x10[100]"},
		{mustStatic(t, mustStatic(t, MakeBoolType(), 128), 256), "bool[128][256]"},
		{mustStatic(t, MakeBoolType(), 0), "bool[0]"},
		{mustTuple(t), "()"},
		{mustTuple(t, mustUint(t, 32), mustTuple(t, MakeAddressType(), MakeByteType())), "(uint32,(address,byte))"},
		{
			mustTuple(t,
				mustStatic(t, mustTuple(t, MakeByteType(), MakeBoolType()), 2),
				mustDynamic(t, mustTuple(t, MakeStringType())),
			),
			"((byte,bool)[2],(string)[])",
		},
	}
	for _, testcase := range testcases {
		require.Equal(t, testcase.expected, testcase.input.String())
	}
}

func TestMakeTypeInvalid(t *testing.T) {
	partitiontest.PartitionTest(t)

	for _, size := range []uint16{0, 1, 7, 9, 63, 513, 520, 1000} {
		_, err := MakeUintType(size)
		require.ErrorIs(t, err, ErrRange, "uint%d should be out of range", size)

		_, err = MakeUfixedType(size, 10)
		require.ErrorIs(t, err, ErrRange, "ufixed%dx10 should be out of range", size)
	}
	for _, precision := range []uint16{0, 161, 200} {
		_, err := MakeUfixedType(64, precision)
		require.ErrorIs(t, err, ErrRange, "ufixed64x%d should be out of range", precision)
	}

	elems := make([]Type, maxTupleLength+1)
	for i := range elems {
		elems[i] = MakeBoolType()
	}
	_, err := MakeTupleType(elems)
	require.ErrorIs(t, err, ErrRange)

	tuple, err := MakeTupleType(elems[:maxTupleLength])
	require.NoError(t, err)
	require.Equal(t, maxTupleLength, tuple.Len())
}

func TestMakeTypeRejectsMissingChild(t *testing.T) {
	partitiontest.PartitionTest(t)

	_, err := MakeStaticArrayType(nil, 2)
	require.ErrorIs(t, err, ErrInvalidOperation)

	_, err = MakeDynamicArrayType(nil)
	require.ErrorIs(t, err, ErrInvalidOperation)

	_, err = MakeTupleType([]Type{MakeBoolType(), nil})
	require.ErrorIs(t, err, ErrInvalidOperation)
	require.Contains(t, err.Error(), "tuple element 1")

	var nilUint *UintType
	_, err = MakeDynamicArrayType(nilUint)
	require.ErrorIs(t, err, ErrInvalidOperation)

	_, err = MakeTupleType([]Type{&ByteType{}})
	require.ErrorIs(t, err, ErrInvalidOperation)
}

func TestTypeZeroValues(t *testing.T) {
	partitiontest.PartitionTest(t)

	testcases := []struct {
		zero     Type
		expected string
	}{
		{UintType{}, "uint8"},
		{UfixedType{}, "ufixed8x1"},
		{StaticArrayType{}, "()[0]"},
		{DynamicArrayType{}, "()[]"},
		{TupleType{}, "()"},
		{mustTuple(t, UintType{}, DynamicArrayType{}), "(uint8,()[])"},
	}
	for _, testcase := range testcases {
		t.Run(testcase.expected, func(t *testing.T) {
			require.Equal(t, testcase.expected, testcase.zero.String())

			parsed, err := TypeOf(testcase.zero.String())
			require.NoError(t, err)
			require.True(t, parsed.Equal(testcase.zero))
			require.True(t, testcase.zero.Equal(parsed))
			require.Equal(t, parsed.IsDynamic(), testcase.zero.IsDynamic())
			if !parsed.IsDynamic() {
				parsedLen, err := parsed.ByteLen()
				require.NoError(t, err)
				zeroLen, err := testcase.zero.ByteLen()
				require.NoError(t, err)
				require.Equal(t, parsedLen, zeroLen)
			}
		})
	}

	require.Equal(t, uint16(8), UintType{}.BitSize())
	require.Equal(t, uint16(1), UfixedType{}.Precision())
	require.Equal(t, Tuple, StaticArrayType{}.Elem().Kind())
}

func TestTypeByteLenOverflow(t *testing.T) {
	partitiontest.PartitionTest(t)

	for _, input := range []string{
		"uint512[65535][65535][65535][65535]",
		"(byte,uint512[65535][65535][65535][65535])",
		"(byte[65535][65535][65535][32768],byte[65535][65535][65535][32768])",
		"(byte[65535][65535][65535][32768],bool,byte[65535][65535][65535][32768])",
	} {
		typ, err := TypeOf(input)
		require.NoError(t, err)
		require.False(t, typ.IsDynamic(), input)
		length, err := typ.ByteLen()
		require.ErrorIs(t, err, ErrRange, input)
		require.Equal(t, -1, length, input)
	}
}

func TestTupleTypeCopiesElements(t *testing.T) {
	partitiontest.PartitionTest(t)

	elems := []Type{MakeByteType(), MakeBoolType()}
	tuple := mustTuple(t, elems...)
	elems[0] = MakeStringType()
	require.Equal(t, "(byte,bool)", tuple.String())

	got := tuple.Elems()
	got[1] = MakeStringType()
	require.Equal(t, "(byte,bool)", tuple.String())
	require.True(t, tuple.Elem(1).Equal(MakeBoolType()))
}

func TestTypeOfValid(t *testing.T) {
	partitiontest.PartitionTest(t)

	testcases := []struct {
		input    string
		expected Type
	}{
		{"uint64", mustUint(t, 64)},
		{"uint8", mustUint(t, 8)},
		{"uint512", mustUint(t, 512)},
		{"ufixed128x10", mustUfixed(t, 128, 10)},
		{"ufixed8x1", mustUfixed(t, 8, 1)},
		{"ufixed512x160", mustUfixed(t, 512, 160)},
		{"byte", MakeByteType()},
		{"bool", MakeBoolType()},
		{"address", MakeAddressType()},
		{"string", MakeStringType()},
		{"uint32[]", mustDynamic(t, mustUint(t, 32))},
		{"bool[0]", mustStatic(t, MakeBoolType(), 0)},
		{"byte[65535]", mustStatic(t, MakeByteType(), 65535)},
		{"address[4][]", mustDynamic(t, mustStatic(t, MakeAddressType(), 4))},
		{"()", mustTuple(t)},
		{"(uint32,(uint32,uint32))", mustTuple(t, mustUint(t, 32), mustTuple(t, mustUint(t, 32), mustUint(t, 32)))},
		{"(())", mustTuple(t, mustTuple(t))},
		{"((),())", mustTuple(t, mustTuple(t), mustTuple(t))},
		{"(bool)[3]", mustStatic(t, mustTuple(t, MakeBoolType()), 3)},
		{"((uint8,bool)[],byte)", mustTuple(t, mustDynamic(t, mustTuple(t, mustUint(t, 8), MakeBoolType())), MakeByteType())},
		{"(string,(byte,bool)[2])[]", mustDynamic(t, mustTuple(t,
			MakeStringType(),
			mustStatic(t, mustTuple(t, MakeByteType(), MakeBoolType()), 2),
		))},
	}
	for _, testcase := range testcases {
		t.Run(testcase.input, func(t *testing.T) {
			actual, err := TypeOf(testcase.input)
			require.NoError(t, err)
			require.True(t, testcase.expected.Equal(actual), "expected %s, got %s", testcase.expected, actual)
			require.Equal(t, testcase.input, actual.String())
		})
	}
}

func TestTypeOfInvalid(t *testing.T) {
	partitiontest.PartitionTest(t)

	testcases := []struct {
		input    string
		expected error
	}{
		{"", ErrSyntax},
		{"uint", ErrSyntax},
		{"uint7", ErrRange},
		{"uint513", ErrRange},
		{"uint0", ErrRange},
		{"uint08", ErrSyntax},
		{"uint+8", ErrSyntax},
		{"uint 8", ErrSyntax},
		{"uint65536", ErrRange},
		{"int32", ErrSyntax},
		{"ufixed8x0", ErrRange},
		{"ufixed8x161", ErrRange},
		{"ufixed7x10", ErrRange},
		{"ufixed8", ErrSyntax},
		{"ufixed8x", ErrSyntax},
		{"ufixedx8", ErrSyntax},
		{"ufixed8x01", ErrSyntax},
		{"ufixed8x1x1", ErrSyntax},
		{"byte[65536]", ErrRange},
		{"byte[-1]", ErrSyntax},
		{"byte[01]", ErrSyntax},
		{"byte[]]", ErrSyntax},
		{"byte]", ErrSyntax},
		{"[2]", ErrSyntax},
		{"[]", ErrSyntax},
		{"bytes", ErrSyntax},
		{"Bool", ErrSyntax},
		{"(uint8", ErrSyntax},
		{"uint8)", ErrSyntax},
		{"(,uint8)", ErrStructure},
		{"(uint8,)", ErrStructure},
		{"(uint8,,bool)", ErrStructure},
		{"((uint8),)", ErrStructure},
		{"(,(uint8))", ErrStructure},
		{"((uint8),,(bool))", ErrStructure},
		{"(uint8))((bool)", ErrStructure},
		{"()()", ErrStructure},
		{"((uint8)", ErrStructure},
		{"(uint8, bool)", ErrSyntax},
		{"(uint8(bool),byte)", ErrSyntax},
	}
	for _, testcase := range testcases {
		t.Run(testcase.input, func(t *testing.T) {
			_, err := TypeOf(testcase.input)
			require.Error(t, err)
			require.True(t, errors.Is(err, testcase.expected), "expected %v, got %v", testcase.expected, err)
		})
	}
}

func TestTypeEqual(t *testing.T) {
	partitiontest.PartitionTest(t)

	require.True(t, mustUint(t, 64).Equal(mustUint(t, 64)))
	require.False(t, mustUint(t, 64).Equal(mustUint(t, 32)))
	require.False(t, mustUint(t, 8).Equal(MakeByteType()))
	require.False(t, mustUfixed(t, 64, 2).Equal(mustUfixed(t, 64, 3)))
	require.False(t, mustStatic(t, MakeByteType(), 2).Equal(mustStatic(t, MakeByteType(), 3)))
	require.False(t, mustStatic(t, MakeByteType(), 2).Equal(mustDynamic(t, MakeByteType())))
	require.False(t, mustDynamic(t, MakeByteType()).Equal(MakeStringType()))
	require.False(t, mustTuple(t, MakeBoolType()).Equal(mustTuple(t, MakeBoolType(), MakeBoolType())))
	require.False(t, mustTuple(t, MakeBoolType()).Equal(mustTuple(t, MakeByteType())))
	require.True(t,
		mustTuple(t, mustDynamic(t, MakeAddressType()), mustTuple(t)).Equal(
			mustTuple(t, mustDynamic(t, MakeAddressType()), mustTuple(t))))
}

func TestTypeIsDynamic(t *testing.T) {
	partitiontest.PartitionTest(t)

	testcases := []struct {
		input   string
		dynamic bool
	}{
		{"uint64", false},
		{"ufixed64x2", false},
		{"address", false},
		{"bool[8]", false},
		{"(uint8,byte[2])", false},
		{"()", false},
		{"string", true},
		{"byte[]", true},
		{"string[2]", true},
		{"(uint8,(bool,string))", true},
		{"(uint8,byte[])[3]", true},
	}
	for _, testcase := range testcases {
		typ, err := TypeOf(testcase.input)
		require.NoError(t, err)
		require.Equal(t, testcase.dynamic, typ.IsDynamic(), testcase.input)
	}
}

func TestTypeByteLen(t *testing.T) {
	partitiontest.PartitionTest(t)

	testcases := []struct {
		input  string
		length int
	}{
		{"uint8", 1},
		{"uint512", 64},
		{"ufixed256x30", 32},
		{"byte", 1},
		{"bool", 1},
		{"address", 32},
		{"bool[0]", 0},
		{"bool[8]", 1},
		{"bool[9]", 2},
		{"uint16[10]", 20},
		{"()", 0},
		{"(bool,bool,bool)", 1},
		{"(bool,uint8,bool)", 3},
		{"(bool,bool,bool,bool,bool,bool,bool,bool,bool)", 2},
		{"(address,(bool,byte)[2],bool[3])", 32 + 4 + 1},
	}
	for _, testcase := range testcases {
		typ, err := TypeOf(testcase.input)
		require.NoError(t, err)
		length, err := typ.ByteLen()
		require.NoError(t, err)
		require.Equal(t, testcase.length, length, testcase.input)
	}

	for _, input := range []string{"string", "byte[]", "string[2]", "(uint8,string)"} {
		typ, err := TypeOf(input)
		require.NoError(t, err)
		_, err = typ.ByteLen()
		require.ErrorIs(t, err, ErrInvalidOperation, input)
	}
}

func TestBaseTypeString(t *testing.T) {
	partitiontest.PartitionTest(t)

	require.Equal(t, "uint", Uint.String())
	require.Equal(t, "tuple", Tuple.String())
	require.Equal(t, "static array", ArrayStatic.String())
	require.Equal(t, "dynamic array", ArrayDynamic.String())
}

func TestTypeStringRoundTrip(t *testing.T) {
	partitiontest.PartitionTest(t)

	rapid.Check(t, func(t *rapid.T) {
		str := rapidgen.TypeString().Draw(t, "type")
		typ, err := TypeOf(str)
		require.NoError(t, err, str)
		require.Equal(t, str, typ.String())
	})
}

func drawType(t *rapid.T, depth int) Type {
	last := 5
	if depth > 0 {
		last = 8
	}
	switch rapid.IntRange(0, last).Draw(t, "kind") {
	case 0:
		typ, err := MakeUintType(uint16(8 * rapid.IntRange(1, 64).Draw(t, "bitSize")))
		require.NoError(t, err)
		return typ
	case 1:
		return MakeByteType()
	case 2:
		typ, err := MakeUfixedType(
			uint16(8*rapid.IntRange(1, 64).Draw(t, "bitSize")),
			uint16(rapid.IntRange(1, 160).Draw(t, "precision")),
		)
		require.NoError(t, err)
		return typ
	case 3:
		return MakeBoolType()
	case 4:
		return MakeAddressType()
	case 5:
		return MakeStringType()
	case 6:
		return mustDynamic(t, drawType(t, depth-1))
	case 7:
		return mustStatic(t, drawType(t, depth-1), rapid.Uint16().Draw(t, "length"))
	default:
		elems := make([]Type, rapid.IntRange(0, 4).Draw(t, "elements"))
		for i := range elems {
			elems[i] = drawType(t, depth-1)
		}
		typ, err := MakeTupleType(elems)
		require.NoError(t, err)
		return typ
	}
}

func TestTypeValueRoundTrip(t *testing.T) {
	partitiontest.PartitionTest(t)

	rapid.Check(t, func(t *rapid.T) {
		typ := drawType(t, 3)
		parsed, err := TypeOf(typ.String())
		require.NoError(t, err, typ.String())
		require.True(t, typ.Equal(parsed), "%s != %s", typ, parsed)
		require.Equal(t, typ.Kind(), parsed.Kind())
	})
}
