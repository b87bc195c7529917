// Copyright 2020 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package json is the single place the engine encodes JSON, it is backed by jsoniter
package json

import (
	"bytes"
	stdjson "encoding/json" //nolint:depguard // jsoniter has no Indent and Valid of its own

	jsoniter "github.com/json-iterator/go"
)

// Codec is the JSON implementation used by the package level functions
var Codec = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal converts v to JSON
func Marshal(v any) ([]byte, error) {
	return Codec.Marshal(v)
}

// Unmarshal decodes data into v
func Unmarshal(data []byte, v any) error {
	return Codec.Unmarshal(data, v)
}

// MarshalIndent is Marshal followed by an indentation of the result
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	b, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := stdjson.Indent(&buf, b, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Valid reports whether data is a valid JSON document
func Valid(data []byte) bool {
	return stdjson.Valid(data)
}
