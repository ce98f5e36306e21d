// Copyright 2022 The go-rlp Authors
// This file is part of the go-rlp library.
//
// The go-rlp library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-rlp library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-rlp library. If not, see <http://www.gnu.org/licenses/>.

// Package jsonvalue turns JSON documents into values that package rlp can encode.
//
// Plain JSON maps onto RLP as follows: booleans stay booleans, non-negative
// integers become uint64 (or *big.Int when larger), strings starting with "0x"
// are hex byte strings, other strings are text, arrays are lists and null is the
// unit marker. Objects with a single key select a type explicitly:
//
//	{"uint": "0x1234"}        unsigned integer up to 256 bits (*uint256.Int)
//	{"bytes": "0x0400"}       byte string
//	{"string": "0xabc"}       text, even if it looks like hex
//	{"hash": "0x..."}         32 byte hash, encoded at full width
//	{"address": "0x..."}      20 byte address, encoded at full width
//	{"ip": "192.168.0.1"}     IP address
//	{"list": [...]}           list
package jsonvalue

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"net"
	"strconv"
	"strings"

	"github.com/PigCharid/go-rlp/common"
	"github.com/holiman/uint256"
	jsoniter "github.com/json-iterator/go"
)

var (
	errNegative    = errors.New("negative numbers are not supported")
	errFraction    = errors.New("number is not an unsigned integer")
	errHex         = errors.New("invalid hex string")
	errEmptyInput  = errors.New("no JSON value")
	errTrailing    = errors.New("trailing data after value")
	errTooLarge    = errors.New("integer exceeds 256 bits")
	errObjectShape = errors.New("typed object must have exactly one key")
)

// PathError is returned for invalid input. Path locates the offending
// element, e.g. "$[2].list[0]".
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("jsonvalue: %s: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// Parse decodes a single JSON document.
func Parse(data []byte) (interface{}, error) {
	iter := jsoniter.ParseBytes(jsoniter.ConfigDefault, data)
	if iter.WhatIsNext() == jsoniter.InvalidValue {
		return nil, &PathError{"$", errEmptyInput}
	}
	v, err := readValue(iter, "$")
	if err != nil {
		return nil, err
	}
	if iter.WhatIsNext() != jsoniter.InvalidValue {
		return nil, &PathError{"$", errTrailing}
	}
	if err := iterError(iter, "$"); err != nil {
		return nil, err
	}
	return v, nil
}

func iterError(iter *jsoniter.Iterator, path string) error {
	if iter.Error != nil && iter.Error != io.EOF {
		return &PathError{path, iter.Error}
	}
	return nil
}

func readValue(iter *jsoniter.Iterator, path string) (interface{}, error) {
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
		return nil, iterError(iter, path)
	case jsoniter.BoolValue:
		b := iter.ReadBool()
		return b, iterError(iter, path)
	case jsoniter.NumberValue:
		n := iter.ReadNumber()
		if err := iterError(iter, path); err != nil {
			return nil, err
		}
		v, err := parseNumber(string(n))
		if err != nil {
			return nil, &PathError{path, err}
		}
		return v, nil
	case jsoniter.StringValue:
		s := iter.ReadString()
		if err := iterError(iter, path); err != nil {
			return nil, err
		}
		if has0xPrefix(s) {
			b, err := parseHex(s)
			if err != nil {
				return nil, &PathError{path, err}
			}
			return b, nil
		}
		return s, nil
	case jsoniter.ArrayValue:
		return readList(iter, path)
	case jsoniter.ObjectValue:
		return readTyped(iter, path)
	default:
		iter.Skip()
		if err := iterError(iter, path); err != nil {
			return nil, err
		}
		return nil, &PathError{path, errors.New("invalid JSON value")}
	}
}

func readList(iter *jsoniter.Iterator, path string) ([]interface{}, error) {
	list := []interface{}{}
	for i := 0; iter.ReadArray(); i++ {
		v, err := readValue(iter, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, iterError(iter, path)
}

// readTyped reads an object selecting the type of its only value.
func readTyped(iter *jsoniter.Iterator, path string) (interface{}, error) {
	key := iter.ReadObject()
	if err := iterError(iter, path); err != nil {
		return nil, err
	}
	if key == "" {
		return nil, &PathError{path, errObjectShape}
	}
	vpath := path + "." + key

	var (
		v   interface{}
		err error
	)
	switch key {
	case "list":
		if iter.WhatIsNext() != jsoniter.ArrayValue {
			return nil, &PathError{vpath, errors.New("expected array")}
		}
		v, err = readList(iter, vpath)
	case "uint":
		v, err = readUint(iter, vpath)
	default:
		var s string
		if s, err = readString(iter, vpath); err == nil {
			v, err = convertTyped(key, s)
			if err != nil {
				err = &PathError{vpath, err}
			}
		}
	}
	if err != nil {
		return nil, err
	}
	if next := iter.ReadObject(); next != "" {
		return nil, &PathError{path, errObjectShape}
	}
	return v, iterError(iter, path)
}

func readString(iter *jsoniter.Iterator, path string) (string, error) {
	if iter.WhatIsNext() != jsoniter.StringValue {
		return "", &PathError{path, errors.New("expected string")}
	}
	s := iter.ReadString()
	return s, iterError(iter, path)
}

func convertTyped(key, s string) (interface{}, error) {
	switch key {
	case "string":
		return s, nil
	case "bytes":
		return parseHex(s)
	case "hash":
		b, err := parseFixedHex(s, common.HashLength)
		if err != nil {
			return nil, err
		}
		return common.BytesToHash(b), nil
	case "address":
		b, err := parseFixedHex(s, common.AddressLength)
		if err != nil {
			return nil, err
		}
		return common.BytesToAddress(b), nil
	case "ip":
		ip := net.ParseIP(s)
		if ip == nil {
			return nil, fmt.Errorf("invalid IP address %q", s)
		}
		return ip, nil
	default:
		return nil, fmt.Errorf("unknown type %q", key)
	}
}

// readUint accepts a JSON number or a decimal or 0x-prefixed hex string.
func readUint(iter *jsoniter.Iterator, path string) (interface{}, error) {
	var s string
	switch iter.WhatIsNext() {
	case jsoniter.NumberValue:
		s = string(iter.ReadNumber())
	case jsoniter.StringValue:
		s = iter.ReadString()
	default:
		return nil, &PathError{path, errors.New("expected number or string")}
	}
	if err := iterError(iter, path); err != nil {
		return nil, err
	}
	z, err := parseUint256(s)
	if err != nil {
		return nil, &PathError{path, err}
	}
	return z, nil
}

func parseUint256(s string) (*uint256.Int, error) {
	digits, base := s, 10
	if has0xPrefix(s) {
		digits, base = s[2:], 16
	}
	switch {
	case strings.HasPrefix(digits, "-"):
		return nil, errNegative
	case strings.HasPrefix(digits, "+"):
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	b, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	if b.Sign() < 0 {
		return nil, errNegative
	}
	z, overflow := uint256.FromBig(b)
	if overflow {
		return nil, errTooLarge
	}
	return z, nil
}

// parseNumber converts a plain JSON number.
func parseNumber(s string) (interface{}, error) {
	if strings.HasPrefix(s, "-") {
		return nil, errNegative
	}
	if strings.ContainsAny(s, ".eE") {
		return nil, errFraction
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err == nil {
		return n, nil
	}
	if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
		b, _ := new(big.Int).SetString(s, 10)
		return b, nil
	}
	return nil, err
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func parseHex(s string) ([]byte, error) {
	if !has0xPrefix(s) || len(s)%2 != 0 || !common.IsHex(s) {
		return nil, errHex
	}
	return common.FromHex(s), nil
}

func parseFixedHex(s string, size int) ([]byte, error) {
	b, err := parseHex(s)
	if err != nil {
		return nil, err
	}
	if len(b) != size {
		return nil, fmt.Errorf("hex string has length %d, want %d", len(b), size)
	}
	return b, nil
}
