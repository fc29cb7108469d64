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
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/algorand/go-algorand-abi/crypto"
	"github.com/algorand/go-algorand-abi/data/abi"
)

var (
	methodJSON bool
	hashName   string
)

func init() {
	methodCmd.AddCommand(methodParseCmd)
	methodCmd.AddCommand(methodSelectorCmd)
	methodCmd.AddCommand(methodDigestCmd)

	methodParseCmd.Flags().BoolVar(&methodJSON, "json", false, "Print the method as an ARC-4 JSON description")
	methodDigestCmd.Flags().StringVar(&hashName, "hash", "", "Hash function: sha512_256, sumhash or sha256 (default from config)")
}

var methodCmd = &cobra.Command{
	Use:   "method",
	Short: "Parse method signatures and compute their selectors",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.HelpFunc()(cmd, args)
	},
}

var methodParseCmd = &cobra.Command{
	Use:   "parse <signature>",
	Short: "Print the arguments, return type, selector and transaction count of a method",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := describeMethod(cmd.OutOrStdout(), args[0], methodJSON); err != nil {
			reportErrorf("Invalid method signature %s: %v", args[0], err)
		}
	},
}

var methodSelectorCmd = &cobra.Command{
	Use:   "selector <signature>...",
	Short: "Print the 4-byte selector of method signatures",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, signature := range args {
			if err := printSelector(cmd.OutOrStdout(), signature); err != nil {
				reportErrorf("Invalid method signature %s: %v", signature, err)
			}
		}
	},
}

var methodDigestCmd = &cobra.Command{
	Use:   "digest <signature>",
	Short: "Print the full digest of a method signature",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := hashName
		if name == "" {
			name = cfg.DigestHashType
		}
		if err := printDigest(cmd.OutOrStdout(), args[0], name); err != nil {
			reportErrorf("Cannot digest %s: %v", args[0], err)
		}
	},
}

func describeMethod(w io.Writer, signature string, asJSON bool) error {
	method, err := abi.MethodFromSignature(signature)
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSON(w, method)
	}

	fmt.Fprintf(w, "%s %s\n", selectorColor.Sprint(selectorString(method.GetSelector())), nameColor.Sprint(method.Name))
	for i, arg := range method.Args {
		fmt.Fprintf(w, "  arg %d: %s (%s)\n", i, arg.Type, argKind(arg))
	}
	fmt.Fprintf(w, "  returns: %s\n", method.Returns.Type)
	fmt.Fprintf(w, "  transactions: %d\n", method.GetTxCount())
	return nil
}

func printSelector(w io.Writer, signature string) error {
	method, err := abi.MethodFromSignature(signature)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s %s\n", selectorString(method.GetSelector()), method.GetSignature())
	return nil
}

func printDigest(w io.Writer, signature string, name string) error {
	hashType, err := crypto.UnmarshalHashType(name)
	if err != nil {
		return err
	}
	method, err := abi.MethodFromSignature(signature)
	if err != nil {
		return err
	}
	digest, err := crypto.HashFactory{HashType: hashType}.Sum([]byte(method.GetSignature()))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s %s\n", hashType, hex.EncodeToString(digest))
	return nil
}
