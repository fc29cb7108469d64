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

// Package serr provides errors that carry structured key/value attributes,
// such as the signature or argument index that made a parse fail, next to a
// human readable message.
package serr

import (
	"errors"
	"sort"
	"strings"

	"golang.org/x/exp/slog"
)

// Error is a structured error. Attrs holds the attributes that describe the
// failing input, Wrapped the error it was built from, if any.
type Error struct {
	Msg     string
	Attrs   map[string]any
	Wrapped error
}

// New creates a new structured error object using the supplied message and attributes.
func New(msg string, pairs ...any) *Error {
	attrs := make(map[string]any, len(pairs)/2)
	addPairs(attrs, pairs)
	return &Error{Msg: msg, Attrs: attrs}
}

func addPairs(attrs map[string]any, pairs []any) {
	for i := 0; i+1 < len(pairs); i += 2 {
		attrs[pairs[i].(string)] = pairs[i+1]
	}
}

// Error returns error message. It is either the exact supplied message, or the
// serialized attributes if the supplied message was blank.
func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	keys := make([]string, 0, len(e.Attrs))
	for key := range e.Attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var buf strings.Builder
	args := make([]any, 0, 2*len(keys))
	for _, key := range keys {
		args = append(args, key, e.Attrs[key])
	}
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// only the attributes identify the error
			if len(groups) == 0 && (a.Key == slog.TimeKey || a.Key == slog.LevelKey || a.Key == slog.MessageKey) {
				return slog.Attr{}
			}
			return a
		},
	}))
	l.Info("", args...)
	return strings.TrimSpace(buf.String())
}

// Attr returns the attribute stored under key.
func (e *Error) Attr(key string) (any, bool) {
	val, ok := e.Attrs[key]
	return val, ok
}

// Extend adds additional attributes to an existing error. If the supplied error
// is nil, a new structured error is created with the given attributes and no
// message. If the error is not a structured error, it is wrapped in one using
// its existing message and the new attributes.
func Extend(err error, pairs ...any) error {
	if err == nil {
		return New("", pairs...)
	}
	var serr *Error
	if ok := errors.As(err, &serr); ok {
		addPairs(serr.Attrs, pairs)
		return err
	}
	return wrap(err, pairs...)
}

// wrap is not exported because it always creates a new structured error. Extend
// is more appropriate from outside the package.
func wrap(err error, pairs ...any) error {
	serr := New(err.Error(), pairs...)
	serr.Wrapped = err
	return serr
}

// Unwrap returns the inner error, if it exists.
func (e *Error) Unwrap() error {
	return e.Wrapped
}
