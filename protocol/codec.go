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

package protocol

import (
	"io"

	"github.com/algorand/go-codec/codec"
)

// JSONHandle is used to instantiate JSON encoders and decoders for ABI
// descriptions. Struct fields keep their declaration order and unknown
// fields are skipped, since ABI JSON files in the wild carry extra keys.
var JSONHandle *codec.JsonHandle

// JSONIndentHandle is the same as JSONHandle but produces indented,
// human-readable output.
var JSONIndentHandle *codec.JsonHandle

// JSONStrictHandle is the same as JSONHandle but fails on keys that do not
// match a struct field. Settings files are decoded with it.
var JSONStrictHandle *codec.JsonHandle

// Decoder is our interface for a thing that can decode objects.
type Decoder interface {
	Decode(objptr interface{}) error
}

func init() {
	JSONHandle = new(codec.JsonHandle)
	JSONHandle.ErrorIfNoField = false
	JSONHandle.ErrorIfNoArrayExpand = true
	JSONHandle.RecursiveEmptyCheck = true
	JSONHandle.HTMLCharsAsIs = true

	JSONIndentHandle = new(codec.JsonHandle)
	JSONIndentHandle.ErrorIfNoField = JSONHandle.ErrorIfNoField
	JSONIndentHandle.ErrorIfNoArrayExpand = JSONHandle.ErrorIfNoArrayExpand
	JSONIndentHandle.RecursiveEmptyCheck = JSONHandle.RecursiveEmptyCheck
	JSONIndentHandle.HTMLCharsAsIs = JSONHandle.HTMLCharsAsIs
	JSONIndentHandle.Indent = 2

	JSONStrictHandle = new(codec.JsonHandle)
	JSONStrictHandle.ErrorIfNoField = true
	JSONStrictHandle.ErrorIfNoArrayExpand = JSONHandle.ErrorIfNoArrayExpand
	JSONStrictHandle.RecursiveEmptyCheck = JSONHandle.RecursiveEmptyCheck
	JSONStrictHandle.HTMLCharsAsIs = JSONHandle.HTMLCharsAsIs
}

// EncodeJSON returns a JSON-encoded byte buffer for a given object
func EncodeJSON(obj interface{}) []byte {
	var b []byte
	enc := codec.NewEncoderBytes(&b, JSONHandle)
	enc.MustEncode(obj)
	return b
}

// EncodeJSONIndent returns an indented JSON-encoded byte buffer for a given object
func EncodeJSONIndent(obj interface{}) []byte {
	var b []byte
	enc := codec.NewEncoderBytes(&b, JSONIndentHandle)
	enc.MustEncode(obj)
	return b
}

// DecodeJSON attempts to decode a JSON-encoded byte buffer into an
// object instance pointed to by objptr
func DecodeJSON(b []byte, objptr interface{}) error {
	dec := codec.NewDecoderBytes(b, JSONHandle)
	return dec.Decode(objptr)
}

// DecodeJSONStrict is DecodeJSON with JSONStrictHandle.
func DecodeJSONStrict(b []byte, objptr interface{}) error {
	dec := codec.NewDecoderBytes(b, JSONStrictHandle)
	return dec.Decode(objptr)
}

// NewJSONEncoder returns an encoder object writing indented JSON into [w].
func NewJSONEncoder(w io.Writer) *codec.Encoder {
	return codec.NewEncoder(w, JSONIndentHandle)
}

// NewJSONDecoder returns a json decoder object reading bytes from [r].
func NewJSONDecoder(r io.Reader) Decoder {
	return codec.NewDecoder(r, JSONHandle)
}
