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

package rlpstruct

import (
	"reflect"
	"testing"
)

var (
	uintType  = Type{Name: "uint", Kind: reflect.Uint}
	byteType  = Type{Name: "uint8", Kind: reflect.Uint8}
	bytesType = Type{Name: "[]uint8", Kind: reflect.Slice, Elem: &byteType}
	ptrType   = Type{Name: "*[]uint8", Kind: reflect.Ptr, Elem: &bytesType}
	listType  = Type{Name: "[]uint", Kind: reflect.Slice, Elem: &uintType}
)

func TestProcessFields(t *testing.T) {
	fields := []Field{
		{Name: "A", Index: 0, Exported: true, Type: uintType},
		{Name: "b", Index: 1, Exported: false, Type: uintType},
		{Name: "C", Index: 2, Exported: true, Type: uintType, Tag: `rlp:"-"`},
		{Name: "D", Index: 3, Exported: true, Type: ptrType, Tag: `rlp:"nil"`},
		{Name: "E", Index: 4, Exported: true, Type: listType, Tag: `rlp:"tail"`},
	}
	out, tags, err := ProcessFields(fields)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 || out[0].Name != "A" || out[1].Name != "D" || out[2].Name != "E" {
		t.Fatalf("wrong fields: %+v", out)
	}
	if !tags[1].NilOK || tags[1].NilKind != NilKindString {
		t.Errorf("wrong tags for D: %+v", tags[1])
	}
	if !tags[2].Tail {
		t.Errorf("E is not tail: %+v", tags[2])
	}
}

func TestProcessFieldsErrors(t *testing.T) {
	tests := []struct {
		fields []Field
		err    string
	}{
		{
			[]Field{{Name: "A", Exported: true, Type: uintType, Tag: `rlp:"bogus"`}},
			`rlp: invalid struct tag "bogus" for field A (unknown tag)`,
		},
		{
			[]Field{{Name: "A", Exported: true, Type: uintType, Tag: `rlp:"nil"`}},
			`rlp: invalid struct tag "nil" for field A (field is not a pointer)`,
		},
		{
			[]Field{
				{Name: "A", Index: 0, Exported: true, Type: listType, Tag: `rlp:"tail"`},
				{Name: "B", Index: 1, Exported: true, Type: uintType},
			},
			`rlp: invalid struct tag "tail" for field A (must be on last field)`,
		},
		{
			[]Field{{Name: "A", Exported: true, Type: uintType, Tag: `rlp:"tail"`}},
			`rlp: invalid struct tag "tail" for field A (field type is not slice)`,
		},
		{
			[]Field{
				{Name: "A", Index: 0, Exported: true, Type: uintType, Tag: `rlp:"optional"`},
				{Name: "B", Index: 1, Exported: true, Type: uintType},
			},
			`rlp: invalid struct tag "" for field B (must be optional because preceding field "A" is optional)`,
		},
	}
	for i, test := range tests {
		_, _, err := ProcessFields(test.fields)
		if err == nil || err.Error() != test.err {
			t.Errorf("test %d: got error %v\nwant %s", i, err, test.err)
		}
	}
}

func TestDefaultNilValue(t *testing.T) {
	if k := uintType.DefaultNilValue(); k != NilKindString {
		t.Errorf("uint: got %#x", k)
	}
	if k := bytesType.DefaultNilValue(); k != NilKindString {
		t.Errorf("[]byte: got %#x", k)
	}
	if k := listType.DefaultNilValue(); k != NilKindList {
		t.Errorf("[]uint: got %#x", k)
	}
}
