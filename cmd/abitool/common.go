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
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"github.com/algorand/go-algorand-abi/data/abi"
	"github.com/algorand/go-algorand-abi/protocol"
)

const (
	errorConfigDir     = "Cannot determine the config directory: %v"
	errorLoadingConfig = "Error loading config from %s: %v"
	errorReadingFile   = "cannot read %s: %w"
	errorDecodingFile  = "cannot decode %s: %w"
)

var (
	selectorColor = color.New(color.FgCyan)
	nameColor     = color.New(color.FgGreen, color.Bold)
	keywordColor  = color.New(color.FgYellow)
	errorColor    = color.New(color.FgRed)
)

func reportErrorf(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, errorColor.Sprintf(format, args...))
	log.Warnf(format, args...)
	os.Exit(1)
}

// writeJSON writes obj as JSON, indented when the config asks for it.
func writeJSON(w io.Writer, obj interface{}) error {
	var data []byte
	if cfg.IndentJSONOutput {
		data = protocol.EncodeJSONIndent(obj)
	} else {
		data = protocol.EncodeJSON(obj)
	}
	_, err := fmt.Fprintln(w, string(data))
	return err
}

func selectorString(selector [4]byte) string {
	return hex.EncodeToString(selector[:])
}

// parseSelector accepts 8 hex digits, with or without a 0x prefix.
func parseSelector(str string) (selector [4]byte, err error) {
	str = strings.TrimPrefix(strings.ToLower(str), "0x")
	if len(str) != 2*len(selector) {
		return selector, fmt.Errorf("selector %q must be %d hex digits", str, 2*len(selector))
	}
	if _, err = hex.Decode(selector[:], []byte(str)); err != nil {
		return selector, fmt.Errorf("selector %q: %w", str, err)
	}
	return selector, nil
}

func loadContractFile(filename string) (abi.Contract, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return abi.Contract{}, fmt.Errorf(errorReadingFile, filename, err)
	}
	contract, err := abi.DecodeContractJSON(data)
	if err != nil {
		return abi.Contract{}, fmt.Errorf(errorDecodingFile, filename, err)
	}
	return contract, nil
}

// loadRegistry decodes the contract files concurrently and registers them in
// file order.
func loadRegistry(ctx context.Context, filenames []string) (*abi.Registry, error) {
	contracts := make([]abi.Contract, len(filenames))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, filename := range filenames {
		i, filename := i, filename
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			contract, err := loadContractFile(filename)
			if err != nil {
				return err
			}
			contracts[i] = contract
			log.Debugf("loaded contract %s from %s", contract.Name, filename)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	registry := abi.MakeRegistry(log)
	for _, contract := range contracts {
		registry.AddContract(contract)
	}
	return registry, nil
}

// argKind describes an argument the way the method listing shows it.
func argKind(arg abi.Arg) string {
	switch {
	case arg.IsTransactionArg():
		return keywordColor.Sprint("transaction")
	case arg.IsReferenceArg():
		return keywordColor.Sprint("reference")
	default:
		typ, err := arg.GetTypeObject()
		if err != nil {
			return err.Error()
		}
		return typ.Kind().String()
	}
}
