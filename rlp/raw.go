// Copyright 2015 The go-rlp Authors
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

package rlp

import (
	"errors"
	"fmt"
	"io"
	"reflect"
)

// Errors returned when inspecting encoded data.
var (
	ErrCanonSize     = errors.New("rlp: non-canonical size information")
	ErrValueTooLarge = errors.New("rlp: value size exceeds available input length")
)

// RawValue represents an encoded RLP value and can be used to delay
// RLP decoding or to precompute an encoding. Note that the encoder does
// not verify whether the content of RawValues is valid RLP.
type RawValue []byte

var rawValueType = reflect.TypeOf(RawValue{})

// Kind represents the kind of value contained in an RLP item.
type Kind int8

const (
	Byte Kind = iota
	String
	List
)

func (k Kind) String() string {
	switch k {
	case Byte:
		return "Byte"
	case String:
		return "String"
	case List:
		return "List"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// ListSize returns the encoded size of an RLP list with the given
// content size.
func ListSize(contentSize uint64) int {
	return headsize(contentSize) + int(contentSize)
}

// IntSize returns the encoded size of the integer x.
func IntSize(x uint64) int {
	if x < 0x80 {
		return 1
	}
	return 1 + intsize(x)
}

// StringSize returns the encoded size of the byte string b.
func StringSize(b []byte) int {
	if len(b) == 1 && b[0] <= 0x7f {
		return 1
	}
	return headsize(uint64(len(b))) + len(b)
}

// Split returns the kind and content of the first value in b and the bytes
// following it. Encodings with non-canonical size information are rejected.
func Split(b []byte) (k Kind, content, rest []byte, err error) {
	k, hsize, csize, err := readHeader(b)
	if err != nil {
		return 0, nil, b, err
	}
	end := hsize + csize
	return k, b[hsize:end], b[end:], nil
}

// HeaderSize returns the number of prefix bytes of the first value in b.
// It is zero for a single byte below 0x80.
func HeaderSize(b []byte) (int, error) {
	_, hsize, _, err := readHeader(b)
	return hsize, err
}

// readHeader decodes the prefix of the first value in b.
func readHeader(b []byte) (k Kind, hsize, csize int, err error) {
	if len(b) == 0 {
		return 0, 0, 0, io.ErrUnexpectedEOF
	}
	var size uint64
	switch p := b[0]; {
	case p < 0x80:
		return Byte, 0, 1, nil
	case p < 0xB8:
		k, hsize, size = String, 1, uint64(p-0x80)
		// a one byte string below 0x80 has a shorter form
		if size == 1 && len(b) > 1 && b[1] < 0x80 {
			return 0, 0, 0, ErrCanonSize
		}
	case p < 0xC0:
		k, hsize = String, 1+int(p-0xB7)
		size, err = readLength(b[1:], int(p-0xB7))
	case p < 0xF8:
		k, hsize, size = List, 1, uint64(p-0xC0)
	default:
		k, hsize = List, 1+int(p-0xF7)
		size, err = readLength(b[1:], int(p-0xF7))
	}
	if err != nil {
		return 0, 0, 0, err
	}
	if size > uint64(len(b)-hsize) {
		return 0, 0, 0, ErrValueTooLarge
	}
	return k, hsize, int(size), nil
}

// readLength reads the n byte big endian length that follows a long prefix.
// Lengths below 56 and lengths with leading zeros are not canonical.
func readLength(b []byte, n int) (uint64, error) {
	if n > len(b) {
		return 0, io.ErrUnexpectedEOF
	}
	var size uint64
	for _, c := range b[:n] {
		size = size<<8 | uint64(c)
	}
	if b[0] == 0 || size < 56 {
		return 0, ErrCanonSize
	}
	return size, nil
}

// AppendUint64 appends the RLP encoding of i to b, and returns the resulting slice.
func AppendUint64(b []byte, i uint64) []byte {
	switch {
	case i == 0:
		return append(b, 0x80)
	case i < 0x80:
		return append(b, byte(i))
	}
	n := intsize(i)
	b = append(b, 0x80+byte(n))
	for shift := 8 * (n - 1); shift >= 0; shift -= 8 {
		b = append(b, byte(i>>uint(shift)))
	}
	return b
}
