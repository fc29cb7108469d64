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

package crypto

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"github.com/algorand/go-sumhash"
)

// HashType represents different hash functions
type HashType uint16

// types of hashes
const (
	Sha512_256 HashType = iota
	Sumhash
	Sha256
	MaxHashType
)

// size of each hash
const (
	Sha512_256Size    = sha512.Size256
	SumhashDigestSize = sumhash.Sumhash512DigestSize
	Sha256Size        = sha256.Size
)

// Validate verifies that the hash type is in a valid range.
func (h HashType) Validate() error {
	if h >= MaxHashType {
		return fmt.Errorf("unknown hash type %d", uint16(h))
	}
	return nil
}

func (h HashType) String() string {
	switch h {
	case Sha512_256:
		return "sha512_256"
	case Sumhash:
		return "sumhash"
	case Sha256:
		return "sha256"
	default:
		return ""
	}
}

// UnmarshalHashType decodes a string into the HashType enum
func UnmarshalHashType(s string) (HashType, error) {
	switch s {
	case "sha512_256":
		return Sha512_256, nil
	case "sumhash":
		return Sumhash, nil
	case "sha256":
		return Sha256, nil
	default:
		return 0, fmt.Errorf("HashType not supported: %s", s)
	}
}

// HashFactory is responsible for generating new hashes accordingly to the type it stores.
type HashFactory struct {
	HashType HashType
}

// NewHash generates a new hash.Hash to use.
func (z HashFactory) NewHash() (hash.Hash, error) {
	switch z.HashType {
	case Sha512_256:
		return sha512.New512_256(), nil
	case Sumhash:
		return sumhash.New512(nil), nil
	case Sha256:
		return sha256.New(), nil
	default:
		return nil, z.HashType.Validate()
	}
}

// Sum hashes data with a fresh hash of the factory's type.
func (z HashFactory) Sum(data []byte) ([]byte, error) {
	h, err := z.NewHash()
	if err != nil {
		return nil, err
	}
	h.Write(data)
	return h.Sum(nil), nil
}
