// Copyright 2014 The go-rlp Authors
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

/*
Package rlp implements the canonical RLP serialization format.

The purpose of RLP (Recursive Length Prefix) is to encode arbitrarily nested arrays of
binary data. The only purpose of RLP is to encode structure; encoding specific atomic
data types is left up to higher-order protocols. Integers are represented in big endian
binary form with no leading zeroes, making the integer value zero equivalent to the
empty string.

Every logical value has exactly one encoding. Two items exist: byte strings and lists.

	a single byte in [0x00, 0x7f]       the byte itself
	string of 0-55 bytes                0x80+len, then the bytes
	string of 56 bytes or more          0xb7+len(len), big endian len, then the bytes
	list with 0-55 bytes of payload     0xc0+len, then the items
	list with 56 bytes of payload or more   0xf7+len(len), big endian len, then the items

Encoding Rules

Package rlp uses reflection and encodes RLP based on the Go type of the value.

If the type implements the Encoder interface, Encode calls EncodeRLP. It does not
call EncodeRLP on nil pointer values.

To encode a pointer, the value being pointed to is encoded. A nil pointer to a struct
type, slice or array always encodes as an empty RLP list unless the slice or array has
element type byte. A nil pointer to any other value encodes as the empty string.

Struct values are encoded as an RLP list of all their encoded public fields. Recursive
struct types are supported.

To encode slices and arrays, the elements are encoded as an RLP list of the value's
elements. Arrays and slices with element type uint8 or byte are always encoded as an
RLP string.

A Go string is encoded as an RLP string holding its bytes.

An unsigned integer value is encoded as an RLP string. Zero always encodes as an empty
RLP string, and values up to 0x7f encode as a single byte regardless of the width of
the Go type. big.Int and uint256.Int values are treated as integers. A negative big.Int
is an error.

Boolean values are encoded as the unsigned integers zero (false) and one (true).

net.IP values encode as 4 bytes for IPv4 addresses, including the 16 byte IPv4-in-IPv6
form returned by net.ParseIP, and 16 bytes otherwise. netip.Addr values encode the same
way; the zero Addr is the empty string.

An interface value encodes as the value contained in the interface. A nil interface,
or an untyped nil passed to Encode, is the unit marker and encodes as the empty string.

RawValue holds a precomputed encoding and is written without change.

Signed integers, floating point numbers, maps, channels and functions are not supported
and return an error from Encode and Size.

Sizes

Size returns the exact number of bytes Encode would produce. It is computed without
encoding for every built-in type. Encoder implementations may implement Sizer to report
their size; otherwise they are encoded into a temporary buffer and measured.

Struct Tags

As with other encoding packages, the "-" tag ignores fields.

	type StructWithIgnoredField struct{
	    Ignored uint `rlp:"-"`
	    Field   uint
	}

The "tail" tag, which may only be used on the last exported struct field, writes the
elements of a slice directly into the enclosing list.

	type StructWithTail struct{
	    Field   uint
	    Tail    []string `rlp:"tail"`
	}

The "optional" tag says that the field may be omitted if it is zero-valued. If this tag
is used on a struct field, all subsequent public fields must also be declared optional.
The output list contains all values up to the last non-zero optional field.

	type StructWithOptionalFields struct{
	    Required  uint
	    Optional1 uint `rlp:"optional"`
	    Optional2 uint `rlp:"optional"`
	}

The "nil", "nilList" and "nilString" tags apply to pointer-typed fields only and pick
the empty value written for a nil pointer. "nil" chooses it from the element type,
"nilList" and "nilString" make it explicit.

	type StructWithNilField struct {
	    Field *[3]byte `rlp:"nilList"`
	}
*/
package rlp
