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
	"strconv"
	"strings"
)

// TypeOf parses an ABI type string.
// For example: `TypeOf("(uint64,byte[])")`
//
// Suffix tests overlap, so dispatch happens in a fixed order: dynamic array,
// static array, uint, the parameterless leaves, ufixed, and finally tuple.
func TypeOf(str string) (Type, error) {
	switch {
	case strings.HasSuffix(str, "[]"):
		arrayArgType, err := TypeOf(str[:len(str)-2])
		if err != nil {
			return nil, err
		}
		return MakeDynamicArrayType(arrayArgType)
	case strings.HasSuffix(str, "]"):
		leftBracket := strings.LastIndexByte(str, '[')
		if leftBracket < 0 {
			return nil, fmt.Errorf("%w: static array ill formatted, missing '[': %s", ErrSyntax, str)
		}
		// allowing only decimal static array length, with limit size to 2^16 - 1
		arrayLength, err := parseDecimal(str[leftBracket+1:len(str)-1], 16)
		if err != nil {
			return nil, fmt.Errorf("static array ill formatted: %s: %w", str, err)
		}
		arrayType, err := TypeOf(str[:leftBracket])
		if err != nil {
			return nil, err
		}
		return MakeStaticArrayType(arrayType, uint16(arrayLength))
	case strings.HasPrefix(str, "uint"):
		typeSize, err := parseDecimal(str[len("uint"):], 16)
		if err != nil {
			return nil, fmt.Errorf("ill formed uint type: %s: %w", str, err)
		}
		return MakeUintType(uint16(typeSize))
	case str == "byte":
		return MakeByteType(), nil
	case str == "bool":
		return MakeBoolType(), nil
	case str == "address":
		return MakeAddressType(), nil
	case str == "string":
		return MakeStringType(), nil
	case strings.HasPrefix(str, "ufixed"):
		return parseUfixed(str)
	case len(str) >= 2 && str[0] == '(' && str[len(str)-1] == ')':
		tupleContent, err := parseTupleContent(str[1 : len(str)-1])
		if err != nil {
			return nil, err
		}
		tupleTypes := make([]Type, len(tupleContent))
		for i := 0; i < len(tupleContent); i++ {
			ti, err := TypeOf(tupleContent[i])
			if err != nil {
				return nil, err
			}
			tupleTypes[i] = ti
		}
		return MakeTupleType(tupleTypes)
	default:
		return nil, fmt.Errorf("%w: cannot convert a string %s to an ABI type", ErrSyntax, str)
	}
}

// parseUfixed parses `ufixed<N>x<M>`. Anything other than exactly two
// decimal numbers separated by a single 'x' is a syntax error.
func parseUfixed(str string) (Type, error) {
	suffix := str[len("ufixed"):]
	sep := strings.IndexByte(suffix, 'x')
	if sep < 0 {
		return nil, fmt.Errorf("%w: ill formed ufixed type: %s", ErrSyntax, str)
	}
	ufixedSize, err := parseDecimal(suffix[:sep], 16)
	if err != nil {
		return nil, fmt.Errorf("ill formed ufixed type bitSize: %s: %w", str, err)
	}
	ufixedPrecision, err := parseDecimal(suffix[sep+1:], 16)
	if err != nil {
		return nil, fmt.Errorf("ill formed ufixed type precision: %s: %w", str, err)
	}
	return MakeUfixedType(uint16(ufixedSize), uint16(ufixedPrecision))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// parseDecimal accepts a plain decimal number: digits only, no sign and no
// leading zero, so that formatting the result reproduces the input.
func parseDecimal(str string, bitSize int) (uint64, error) {
	if str == "" {
		return 0, fmt.Errorf("%w: missing decimal number", ErrSyntax)
	}
	for i := 0; i < len(str); i++ {
		if !isDigit(str[i]) {
			return 0, fmt.Errorf("%w: %q is not a decimal number", ErrSyntax, str)
		}
	}
	if len(str) > 1 && str[0] == '0' {
		return 0, fmt.Errorf("%w: %q has a leading zero", ErrSyntax, str)
	}
	num, err := strconv.ParseUint(str, 10, bitSize)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %s does not fit in %d bits", ErrRange, str, bitSize)
		}
		return 0, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return num, nil
}

// SplitTupleContent splits the content of a tuple type, the text between its
// outer parentheses, into the type strings of its elements.
// For example: `SplitTupleContent("uint64,(byte,bool)[2]")` returns
// `["uint64", "(byte,bool)[2]"]`.
func SplitTupleContent(str string) ([]string, error) {
	return parseTupleContent(str)
}

// parseTupleContent splits an ABI encoded string for tuple type into multiple sub-strings.
// Each sub-string represents a content type of the tuple type.
// The argument str is the content between parentheses of tuple, i.e.
// (...... str ......)
//
//	^               ^
func parseTupleContent(str string) ([]string, error) {
	group := "(" + str + ")"
	segments, closeIdx, err := splitGroup(group, 0)
	if err != nil {
		return nil, err
	}
	// the group closed early, so str holds a ')' without a matching '('
	if closeIdx != len(group)-1 {
		return nil, fmt.Errorf("%w: unpaired parentheses: %s", ErrStructure, str)
	}
	return segments, nil
}

// splitGroup splits the parenthesized group that opens at str[open] into its
// top-level comma separated segments, and returns them together with the
// index of the parenthesis closing the group.
//
// Nested groups stay inside their segment untouched, including any text
// attached to them, e.g. "(byte,bool)[2]". An empty group yields no segments,
// while empty segments (leading, trailing or consecutive commas) are errors.
func splitGroup(str string, open int) ([]string, int, error) {
	if open >= len(str) || str[open] != '(' {
		return nil, 0, fmt.Errorf("%w: expected '(' at position %d: %s", ErrSyntax, open, str)
	}

	var segments []string
	depth := 0
	start := open + 1
	for i := open; i < len(str); i++ {
		switch str[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth > 0 {
				continue
			}
			if i == open+1 {
				return []string{}, i, nil
			}
			if start == i {
				return nil, 0, fmt.Errorf("%w: trailing comma: %s", ErrStructure, str[open:i+1])
			}
			return append(segments, str[start:i]), i, nil
		case ',':
			if depth != 1 {
				continue
			}
			if start == i {
				if i == open+1 {
					return nil, 0, fmt.Errorf("%w: leading comma: %s", ErrStructure, str[open:])
				}
				return nil, 0, fmt.Errorf("%w: consecutive commas: %s", ErrStructure, str[open:])
			}
			segments = append(segments, str[start:i])
			start = i + 1
		}
	}
	return nil, 0, fmt.Errorf("%w: unpaired parentheses: %s", ErrStructure, str[open:])
}
