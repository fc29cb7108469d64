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

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/algorand/go-algorand-abi/data/abi"
)

func init() {
	typeCmd.AddCommand(typeParseCmd)
	typeCmd.AddCommand(typeSplitCmd)
}

var typeCmd = &cobra.Command{
	Use:   "type",
	Short: "Parse and inspect ABI type strings",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.HelpFunc()(cmd, args)
	},
}

var typeParseCmd = &cobra.Command{
	Use:   "parse <type>...",
	Short: "Print the canonical form, kind and encoded size of ABI types",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, typeStr := range args {
			if err := describeType(cmd.OutOrStdout(), typeStr); err != nil {
				reportErrorf("Invalid type %s: %v", typeStr, err)
			}
		}
	},
}

var typeSplitCmd = &cobra.Command{
	Use:   "split <tuple content>",
	Short: "Split the content of a tuple type into its element types",
	Long:  "Split the text between the outer parentheses of a tuple type into its top level element types, one per line.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := splitTypes(cmd.OutOrStdout(), args[0]); err != nil {
			reportErrorf("Cannot split %s: %v", args[0], err)
		}
	},
}

func describeType(w io.Writer, typeStr string) error {
	typ, err := abi.TypeOf(typeStr)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, nameColor.Sprint(typ.String()))
	fmt.Fprintf(w, "  kind:        %s\n", typ.Kind())
	fmt.Fprintf(w, "  dynamic:     %t\n", typ.IsDynamic())
	if typ.IsDynamic() {
		return nil
	}
	byteLen, err := typ.ByteLen()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  byte length: %d\n", byteLen)
	return nil
}

func splitTypes(w io.Writer, content string) error {
	segments, err := abi.SplitTupleContent(content)
	if err != nil {
		return err
	}
	for _, segment := range segments {
		fmt.Fprintln(w, segment)
	}
	return nil
}
