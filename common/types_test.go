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

package common

import (
	"bytes"
	"testing"
)

func TestHashSetBytes(t *testing.T) {
	tests := []struct {
		in   []byte
		want Hash
	}{
		{nil, Hash{}},
		{[]byte{1}, Hash{31: 1}},
		{bytes.Repeat([]byte{0xff}, 33), BytesToHash(bytes.Repeat([]byte{0xff}, 32))},
	}
	for i, test := range tests {
		if got := BytesToHash(test.in); got != test.want {
			t.Errorf("test %d: got %x, want %x", i, got, test.want)
		}
	}
}

func TestHexToAddress(t *testing.T) {
	a := HexToAddress("0x000000000000000000000000000000000000dead")
	if a[18] != 0xde || a[19] != 0xad {
		t.Fatalf("wrong address bytes %x", a)
	}
	if a.Hex() != "0x000000000000000000000000000000000000dead" {
		t.Fatalf("wrong hex %s", a.Hex())
	}
	// Short input is left padded.
	if b := HexToAddress("dead"); b != a {
		t.Fatalf("short input: got %x, want %x", b, a)
	}
}

func TestFixedEncoding(t *testing.T) {
	var buf bytes.Buffer
	h := HexToHash("0x01")
	if err := h.EncodeRLP(&buf); err != nil {
		t.Fatal(err)
	}
	want := append([]byte{0xa0}, h[:]...)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("hash encoding: got %x, want %x", buf.Bytes(), want)
	}
	if buf.Len() != h.EncodedSize() {
		t.Fatalf("hash size %d, EncodedSize %d", buf.Len(), h.EncodedSize())
	}

	buf.Reset()
	var a Address
	if err := a.EncodeRLP(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 21 || buf.Bytes()[0] != 0x94 {
		t.Fatalf("zero address encoding: %x", buf.Bytes())
	}
	if a.EncodedSize() != 21 {
		t.Fatalf("address EncodedSize %d", a.EncodedSize())
	}
}

func TestFromHex(t *testing.T) {
	tests := []struct {
		in   string
		want []byte
	}{
		{"", []byte{}},
		{"0x", []byte{}},
		{"0x1", []byte{0x01}},
		{"0X0102", []byte{0x01, 0x02}},
		{"abc", []byte{0x0a, 0xbc}},
	}
	for _, test := range tests {
		if got := FromHex(test.in); !bytes.Equal(got, test.want) {
			t.Errorf("FromHex(%q) = %x, want %x", test.in, got, test.want)
		}
	}
}

func TestIsHex(t *testing.T) {
	for _, s := range []string{"", "0x", "0xdeadBEEF", "1234"} {
		if !IsHex(s) {
			t.Errorf("IsHex(%q) = false", s)
		}
	}
	for _, s := range []string{"0xzz", "hello", "0x12 "} {
		if IsHex(s) {
			t.Errorf("IsHex(%q) = true", s)
		}
	}
}
