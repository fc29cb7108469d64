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
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/algorand/go-algorand-abi/data/abi"
)

var (
	lookupSelector string
	lookupName     string
)

func init() {
	contractCmd.AddCommand(contractShowCmd)
	contractCmd.AddCommand(contractLookupCmd)

	contractLookupCmd.Flags().StringVar(&lookupSelector, "selector", "", "Method selector to look up, as 8 hex digits")
	contractLookupCmd.Flags().StringVar(&lookupName, "name", "", "Method name to look up")
	contractLookupCmd.MarkFlagsMutuallyExclusive("selector", "name")
}

var contractCmd = &cobra.Command{
	Use:   "contract",
	Short: "Inspect ARC-4 contract descriptions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.HelpFunc()(cmd, args)
	},
}

var contractShowCmd = &cobra.Command{
	Use:   "show <contract.json>",
	Short: "List the networks and methods of a contract",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := showContract(cmd.OutOrStdout(), args[0]); err != nil {
			reportErrorf("%v", err)
		}
	},
}

var contractLookupCmd = &cobra.Command{
	Use:   "lookup (--selector <hex> | --name <name>) <contract.json>...",
	Short: "Find the methods matching a selector or a name across contracts",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := lookupMethods(context.Background(), cmd.OutOrStdout(), args, lookupSelector, lookupName); err != nil {
			reportErrorf("%v", err)
		}
	},
}

func showContract(w io.Writer, filename string) error {
	contract, err := loadContractFile(filename)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, nameColor.Sprint(contract.Name))
	if contract.Desc != "" {
		fmt.Fprintf(w, "  %s\n", contract.Desc)
	}
	networks := make([]string, 0, len(contract.Networks))
	for genesisHash := range contract.Networks {
		networks = append(networks, genesisHash)
	}
	sort.Strings(networks)
	for _, genesisHash := range networks {
		fmt.Fprintf(w, "  network %s: app %d\n", genesisHash, contract.Networks[genesisHash].AppID)
	}
	for _, method := range contract.Methods {
		fmt.Fprintf(w, "  %s %s\n", selectorColor.Sprint(selectorString(method.GetSelector())), method.GetSignature())
	}
	return nil
}

var errNoMethod = errors.New("no matching method")

func lookupMethods(ctx context.Context, w io.Writer, filenames []string, selectorHex string, name string) error {
	if (selectorHex == "") == (name == "") {
		return errors.New("exactly one of --selector and --name is required")
	}
	var selector [4]byte
	if selectorHex != "" {
		var err error
		if selector, err = parseSelector(selectorHex); err != nil {
			return err
		}
	}

	registry, err := loadRegistry(ctx, filenames)
	if err != nil {
		return err
	}
	log.Debugf("registry holds %d methods", registry.Len())

	var refs []abi.MethodRef
	if selectorHex != "" {
		refs = registry.LookupSelector(selector)
	} else {
		refs = registry.LookupName(name)
	}
	if len(refs) == 0 {
		return errNoMethod
	}
	for _, ref := range refs {
		fmt.Fprintf(w, "%s: %s %s\n", ref.Source, selectorColor.Sprint(selectorString(ref.Method.GetSelector())), ref.Method.GetSignature())
	}
	return nil
}
