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

// Package rapidgen holds rapid generators for ABI grammar strings.
package rapidgen

import (
	"strconv"
	"strings"

	"pgregory.net/rapid"
)

const (
	defaultMaxDepth    = 3
	maxTupleElements   = 4
	maxStaticArrayLen  = 65535
	maxUfixedPrecision = 160
)

// TypeString generates a valid ABI type string.
func TypeString() *rapid.Generator[string] {
	return TypeStringOf(defaultMaxDepth)
}

// TypeStringOf generates a valid ABI type string with at most maxDepth levels
// of array or tuple nesting.
func TypeStringOf(maxDepth int) *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		return drawTypeString(t, maxDepth)
	})
}

func drawTypeString(t *rapid.T, depth int) string {
	last := 5
	if depth > 0 {
		last = 8
	}
	switch rapid.IntRange(0, last).Draw(t, "kind") {
	case 0:
		return "uint" + strconv.Itoa(8*rapid.IntRange(1, 64).Draw(t, "bitSize"))
	case 1:
		return "byte"
	case 2:
		bitSize := 8 * rapid.IntRange(1, 64).Draw(t, "bitSize")
		precision := rapid.IntRange(1, maxUfixedPrecision).Draw(t, "precision")
		return "ufixed" + strconv.Itoa(bitSize) + "x" + strconv.Itoa(precision)
	case 3:
		return "bool"
	case 4:
		return "address"
	case 5:
		return "string"
	case 6:
		return drawTypeString(t, depth-1) + "[]"
	case 7:
		length := rapid.IntRange(0, maxStaticArrayLen).Draw(t, "length")
		return drawTypeString(t, depth-1) + "[" + strconv.Itoa(length) + "]"
	default:
		n := rapid.IntRange(0, maxTupleElements).Draw(t, "elements")
		elems := make([]string, n)
		for i := range elems {
			elems[i] = drawTypeString(t, depth-1)
		}
		return "(" + strings.Join(elems, ",") + ")"
	}
}

// MethodSignature generates a valid method signature whose arguments mix
// ABI types with transaction and reference keywords.
func MethodSignature() *rapid.Generator[string] {
	keywords := []string{
		"Any", "Payment", "KeyRegistration", "AssetConfig", "AssetTransfer", "AssetFreeze", "AppCall",
		"AccountReferenceType", "AssetReferenceType", "ApplicationReferenceType",
	}
	return rapid.Custom(func(t *rapid.T) string {
		name := rapid.StringMatching(`[a-z][a-zA-Z0-9_]{0,15}`).Draw(t, "name")
		args := make([]string, rapid.IntRange(0, 5).Draw(t, "args"))
		for i := range args {
			if rapid.Bool().Draw(t, "keyword") {
				args[i] = rapid.SampledFrom(keywords).Draw(t, "keywordArg")
			} else {
				args[i] = drawTypeString(t, 2)
			}
		}
		ret := "void"
		if rapid.Bool().Draw(t, "returns") {
			ret = drawTypeString(t, 2)
		}
		return name + "(" + strings.Join(args, ",") + ")" + ret
	})
}
