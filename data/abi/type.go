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
	"math"
	"strconv"
	"strings"
)

/*
   ABI-Types: uint<N>: An N-bit unsigned integer (8 <= N <= 512 and N % 8 = 0).
            | byte (alias for uint8)
            | ufixed <N> x <M> (8 <= N <= 512, N % 8 = 0, and 0 < M <= 160)
            | bool
            | address (alias for byte[32])
            | <type> [<N>]
            | <type> []
            | string
            | (T1, ..., Tn)
*/

// BaseType is an type-alias for uint32. A BaseType value indicates the type of an ABI value.
type BaseType uint32

const (
	// Uint is the index (0) for `Uint` type in ABI encoding.
	Uint BaseType = iota
	// Byte is the index (1) for `Byte` type in ABI encoding.
	Byte
	// Ufixed is the index (2) for `UFixed` type in ABI encoding.
	Ufixed
	// Bool is the index (3) for `Bool` type in ABI encoding.
	Bool
	// ArrayStatic is the index (4) for static length array (<type>[length]) type in ABI encoding.
	ArrayStatic
	// Address is the index (5) for `Address` type in ABI encoding (an type alias of Byte[32]).
	Address
	// ArrayDynamic is the index (6) for dynamic length array (<type>[]) type in ABI encoding.
	ArrayDynamic
	// String is the index (7) for `String` type in ABI encoding (an type alias of Byte[]).
	String
	// Tuple is the index (8) for tuple `(<type 0>, ..., <type k>)` in ABI encoding.
	Tuple
)

var baseTypeNames = [...]string{
	Uint:         "uint",
	Byte:         "byte",
	Ufixed:       "ufixed",
	Bool:         "bool",
	ArrayStatic:  "static array",
	Address:      "address",
	ArrayDynamic: "dynamic array",
	String:       "string",
	Tuple:        "tuple",
}

func (b BaseType) String() string {
	if int(b) < len(baseTypeNames) {
		return baseTypeNames[b]
	}
	return "unknown(" + strconv.Itoa(int(b)) + ")"
}

const (
	minBitSize     = 8
	maxBitSize     = 512
	minPrecision   = 1
	maxPrecision   = 160
	maxTupleLength = math.MaxUint16 - 1

	addressByteSize = 32
	singleByteSize  = 1
	singleBoolSize  = 1
)

// Type is an ABI type. The set of implementations is closed: UintType,
// ByteType, UfixedType, BoolType, AddressType, StaticArrayType,
// DynamicArrayType, StringType and TupleType. Each of them only carries the
// fields that belong to its kind.
//
// The zero value of every implementation is a valid ABI type: uint8,
// ufixed8x1, ()[0], ()[] and (). Other values are built with the Make*Type
// constructors or with TypeOf.
type Type interface {
	// Kind reports which of the ABI base types this is.
	Kind() BaseType
	// String serializes the type into its canonical ABI type string.
	String() string
	// Equal reports whether both types are structurally identical.
	Equal(Type) bool
	// IsDynamic decides if an ABI type is dynamic or static.
	IsDynamic() bool
	// ByteLen calculates the byte length of a static ABI type.
	ByteLen() (int, error)

	abiType()
}

// UintType is `uint<N>`.
type UintType struct {
	bitSize uint16
}

// ByteType is `byte`.
type ByteType struct{}

// UfixedType is `ufixed<N>x<M>`.
type UfixedType struct {
	bitSize   uint16
	precision uint16
}

// BoolType is `bool`.
type BoolType struct{}

// AddressType is `address`.
type AddressType struct{}

// StaticArrayType is `<type>[<N>]`.
type StaticArrayType struct {
	elem   Type
	length uint16
}

// DynamicArrayType is `<type>[]`.
type DynamicArrayType struct {
	elem Type
}

// StringType is `string`.
type StringType struct{}

// TupleType is `(<type 0>,...,<type k>)`.
type TupleType struct {
	elems []Type
}

func (UintType) abiType()         {}
func (ByteType) abiType()         {}
func (UfixedType) abiType()       {}
func (BoolType) abiType()         {}
func (AddressType) abiType()      {}
func (StaticArrayType) abiType()  {}
func (DynamicArrayType) abiType() {}
func (StringType) abiType()       {}
func (TupleType) abiType()        {}

// MakeUintType makes `Uint` ABI type by taking a type bitSize argument.
// The range of type bitSize is [8, 512] and type bitSize % 8 == 0.
func MakeUintType(typeSize uint16) (UintType, error) {
	if err := checkBitSize(typeSize); err != nil {
		return UintType{}, fmt.Errorf("%w: unsupported uint type bitSize: %d", ErrRange, typeSize)
	}
	return UintType{bitSize: typeSize}, nil
}

// MakeByteType makes `Byte` ABI type.
func MakeByteType() ByteType {
	return ByteType{}
}

// MakeUfixedType makes `UFixed` ABI type by taking type bitSize and type precision as arguments.
// The range of type bitSize is [8, 512] and type bitSize % 8 == 0.
// The range of type precision is [1, 160].
func MakeUfixedType(typeSize uint16, typePrecision uint16) (UfixedType, error) {
	if err := checkBitSize(typeSize); err != nil {
		return UfixedType{}, fmt.Errorf("%w: unsupported ufixed type bitSize: %d", ErrRange, typeSize)
	}
	if typePrecision < minPrecision || typePrecision > maxPrecision {
		return UfixedType{}, fmt.Errorf("%w: unsupported ufixed type precision: %d", ErrRange, typePrecision)
	}
	return UfixedType{bitSize: typeSize, precision: typePrecision}, nil
}

// MakeBoolType makes `Bool` ABI type.
func MakeBoolType() BoolType {
	return BoolType{}
}

// MakeAddressType makes `Address` ABI type.
func MakeAddressType() AddressType {
	return AddressType{}
}

// MakeStaticArrayType makes static length array ABI type by taking
// array element type and array length as arguments.
func MakeStaticArrayType(argumentType Type, arrayLength uint16) (StaticArrayType, error) {
	if err := checkChildType(argumentType); err != nil {
		return StaticArrayType{}, fmt.Errorf("static array element: %w", err)
	}
	return StaticArrayType{elem: argumentType, length: arrayLength}, nil
}

// MakeDynamicArrayType makes dynamic length array by taking array element type as argument.
func MakeDynamicArrayType(argumentType Type) (DynamicArrayType, error) {
	if err := checkChildType(argumentType); err != nil {
		return DynamicArrayType{}, fmt.Errorf("dynamic array element: %w", err)
	}
	return DynamicArrayType{elem: argumentType}, nil
}

// MakeStringType makes `String` ABI type.
func MakeStringType() StringType {
	return StringType{}
}

// MakeTupleType makes tuple ABI type by taking an array of tuple element types as argument.
// The tuple length has to fit in a uint16 next to the tuple's own length tag.
func MakeTupleType(argumentTypes []Type) (TupleType, error) {
	if len(argumentTypes) > maxTupleLength {
		return TupleType{}, fmt.Errorf("%w: tuple type child type number %d larger than maximum uint16 error",
			ErrRange, len(argumentTypes))
	}
	for i, childT := range argumentTypes {
		if err := checkChildType(childT); err != nil {
			return TupleType{}, fmt.Errorf("tuple element %d: %w", i, err)
		}
	}
	elems := make([]Type, len(argumentTypes))
	copy(elems, argumentTypes)
	return TupleType{elems: elems}, nil
}

func checkBitSize(typeSize uint16) error {
	if typeSize%8 != 0 || typeSize < minBitSize || typeSize > maxBitSize {
		return ErrRange
	}
	return nil
}

// checkChildType only lets the value implementations through. A nil
// interface or a pointer to one of them is not an ABI type.
func checkChildType(t Type) error {
	switch t.(type) {
	case UintType, ByteType, UfixedType, BoolType, AddressType,
		StaticArrayType, DynamicArrayType, StringType, TupleType:
		return nil
	case nil:
		return fmt.Errorf("%w: missing child type", ErrInvalidOperation)
	default:
		return fmt.Errorf("%w: unsupported child type %T", ErrInvalidOperation, t)
	}
}

// BitSize returns N of uint<N>.
func (t UintType) BitSize() uint16 { return max(t.bitSize, minBitSize) }

// BitSize returns N of ufixed<N>x<M>.
func (t UfixedType) BitSize() uint16 { return max(t.bitSize, minBitSize) }

// Precision returns M of ufixed<N>x<M>.
func (t UfixedType) Precision() uint16 { return max(t.precision, minPrecision) }

// Elem returns the array element type.
func (t StaticArrayType) Elem() Type { return elemOrEmptyTuple(t.elem) }

// Length returns the static array length.
func (t StaticArrayType) Length() uint16 { return t.length }

// Elem returns the array element type.
func (t DynamicArrayType) Elem() Type { return elemOrEmptyTuple(t.elem) }

// elemOrEmptyTuple gives zero value arrays the element type of `()[]`.
func elemOrEmptyTuple(elem Type) Type {
	if elem == nil {
		return TupleType{}
	}
	return elem
}

// Len returns the number of tuple elements.
func (t TupleType) Len() int { return len(t.elems) }

// Elem returns the i-th tuple element type.
func (t TupleType) Elem(i int) Type { return t.elems[i] }

// Elems returns a copy of the tuple element types.
func (t TupleType) Elems() []Type {
	out := make([]Type, len(t.elems))
	copy(out, t.elems)
	return out
}

// Kind implementations

func (UintType) Kind() BaseType         { return Uint }
func (ByteType) Kind() BaseType         { return Byte }
func (UfixedType) Kind() BaseType       { return Ufixed }
func (BoolType) Kind() BaseType         { return Bool }
func (AddressType) Kind() BaseType      { return Address }
func (StaticArrayType) Kind() BaseType  { return ArrayStatic }
func (DynamicArrayType) Kind() BaseType { return ArrayDynamic }
func (StringType) Kind() BaseType       { return String }
func (TupleType) Kind() BaseType        { return Tuple }

func (t UintType) String() string {
	return "uint" + strconv.Itoa(int(t.BitSize()))
}

func (ByteType) String() string { return "byte" }

func (t UfixedType) String() string {
	return "ufixed" + strconv.Itoa(int(t.BitSize())) + "x" + strconv.Itoa(int(t.Precision()))
}

func (BoolType) String() string    { return "bool" }
func (AddressType) String() string { return "address" }

func (t StaticArrayType) String() string {
	return t.Elem().String() + "[" + strconv.Itoa(int(t.length)) + "]"
}

func (t DynamicArrayType) String() string {
	return t.Elem().String() + "[]"
}

func (StringType) String() string { return "string" }

func (t TupleType) String() string {
	typeStrings := make([]string, len(t.elems))
	for i := 0; i < len(t.elems); i++ {
		typeStrings[i] = t.elems[i].String()
	}
	return "(" + strings.Join(typeStrings, ",") + ")"
}

func (t UintType) Equal(t0 Type) bool {
	o, ok := t0.(UintType)
	return ok && o.BitSize() == t.BitSize()
}

func (ByteType) Equal(t0 Type) bool {
	_, ok := t0.(ByteType)
	return ok
}

func (t UfixedType) Equal(t0 Type) bool {
	o, ok := t0.(UfixedType)
	return ok && o.BitSize() == t.BitSize() && o.Precision() == t.Precision()
}

func (BoolType) Equal(t0 Type) bool {
	_, ok := t0.(BoolType)
	return ok
}

func (AddressType) Equal(t0 Type) bool {
	_, ok := t0.(AddressType)
	return ok
}

func (t StaticArrayType) Equal(t0 Type) bool {
	o, ok := t0.(StaticArrayType)
	return ok && o.length == t.length && t.Elem().Equal(o.Elem())
}

func (t DynamicArrayType) Equal(t0 Type) bool {
	o, ok := t0.(DynamicArrayType)
	return ok && t.Elem().Equal(o.Elem())
}

func (StringType) Equal(t0 Type) bool {
	_, ok := t0.(StringType)
	return ok
}

func (t TupleType) Equal(t0 Type) bool {
	o, ok := t0.(TupleType)
	if !ok || len(o.elems) != len(t.elems) {
		return false
	}
	for i := 0; i < len(t.elems); i++ {
		if !t.elems[i].Equal(o.elems[i]) {
			return false
		}
	}
	return true
}

func (UintType) IsDynamic() bool         { return false }
func (ByteType) IsDynamic() bool         { return false }
func (UfixedType) IsDynamic() bool       { return false }
func (BoolType) IsDynamic() bool         { return false }
func (AddressType) IsDynamic() bool      { return false }
func (DynamicArrayType) IsDynamic() bool { return true }
func (StringType) IsDynamic() bool       { return true }

func (t StaticArrayType) IsDynamic() bool {
	return t.Elem().IsDynamic()
}

func (t TupleType) IsDynamic() bool {
	for _, childT := range t.elems {
		if childT.IsDynamic() {
			return true
		}
	}
	return false
}

func (t UintType) ByteLen() (int, error)   { return int(t.BitSize() / 8), nil }
func (ByteType) ByteLen() (int, error)     { return singleByteSize, nil }
func (t UfixedType) ByteLen() (int, error) { return int(t.BitSize() / 8), nil }
func (BoolType) ByteLen() (int, error)     { return singleBoolSize, nil }
func (AddressType) ByteLen() (int, error)  { return addressByteSize, nil }

func (t DynamicArrayType) ByteLen() (int, error) {
	return -1, fmt.Errorf("%w: %s is a dynamic type", ErrInvalidOperation, t.String())
}

func (t StringType) ByteLen() (int, error) {
	return -1, fmt.Errorf("%w: %s is a dynamic type", ErrInvalidOperation, t.String())
}

// ByteLen of a static array packs bool elements into bits. Lengths that do
// not fit in an int are a range error.
func (t StaticArrayType) ByteLen() (int, error) {
	elem := t.Elem()
	if elem.Kind() == Bool {
		byteLen := int(t.length) / 8
		if t.length%8 != 0 {
			byteLen++
		}
		return byteLen, nil
	}
	elemByteLen, err := elem.ByteLen()
	if err != nil {
		return -1, err
	}
	if t.length != 0 && elemByteLen > math.MaxInt/int(t.length) {
		return -1, fmt.Errorf("%w: byte length of %s overflows int", ErrRange, t.String())
	}
	return int(t.length) * elemByteLen, nil
}

// ByteLen of a tuple packs every run of consecutive bool elements into bits.
func (t TupleType) ByteLen() (int, error) {
	size := 0
	for i := 0; i < len(t.elems); i++ {
		var childByteSize int
		if t.elems[i].Kind() == Bool {
			// search after bool
			after := findBoolLR(t.elems, i, 1)
			// shift the index
			i += after
			// get number of bool
			boolNum := after + 1
			childByteSize = (boolNum + 7) / 8
		} else {
			var err error
			childByteSize, err = t.elems[i].ByteLen()
			if err != nil {
				return -1, err
			}
		}
		if childByteSize > math.MaxInt-size {
			return -1, fmt.Errorf("%w: byte length of %s overflows int", ErrRange, t.String())
		}
		size += childByteSize
	}
	return size, nil
}

// findBoolLR assumes that the current index on the list of type is an ABI bool type.
// It returns the difference between the current index and the index of the furthest consecutive Bool type.
func findBoolLR(typeList []Type, index int, delta int) int {
	until := 0
	for {
		curr := index + delta*until
		if typeList[curr].Kind() == Bool {
			if curr != len(typeList)-1 && delta > 0 {
				until++
			} else if curr > 0 && delta < 0 {
				until++
			} else {
				break
			}
		} else {
			until--
			break
		}
	}
	return until
}
