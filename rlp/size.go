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

package rlp

import (
	"fmt"
	"math/big"
	"net"
	"net/netip"
	"reflect"

	"github.com/PigCharid/go-rlp/rlp/internal/rlpstruct"
	"github.com/holiman/uint256"
)

// Sizer is implemented by Encoder types that know the length of their own
// encoding. Size uses it instead of encoding the value into a scratch buffer.
// The result must equal the number of bytes written by EncodeRLP.
type Sizer interface {
	EncodedSize() int
}

var sizerInterface = reflect.TypeOf(new(Sizer)).Elem()

// Size returns the number of bytes Encode would write for val, without
// producing the encoding. For types implementing Encoder but not Sizer the
// value is encoded into a temporary buffer and measured.
func Size(val interface{}) (int, error) {
	rval := reflect.ValueOf(val)
	if !rval.IsValid() {
		return 1, nil
	}
	sizer, err := cachedSizer(rval.Type())
	if err != nil {
		return 0, err
	}
	return sizer(rval)
}

// makeSizer creates a sizer function for the given type. The cases mirror
// makeWriter.
func makeSizer(typ reflect.Type, ts rlpstruct.Tags) (sizer, error) {
	kind := typ.Kind()
	switch {
	case typ == rawValueType:
		return sizeRawValue, nil
	case typ.AssignableTo(reflect.PtrTo(bigInt)):
		return sizeBigIntPtr, nil
	case typ.AssignableTo(bigInt):
		return sizeBigIntNoPtr, nil
	case typ == reflect.PtrTo(u256Int):
		return sizeU256IntPtr, nil
	case typ == u256Int:
		return sizeU256IntNoPtr, nil
	case typ == ipType:
		return sizeIP, nil
	case typ == netipAddrType:
		return sizeNetipAddr, nil
	case kind == reflect.Ptr:
		return makePtrSizer(typ, ts)
	case reflect.PtrTo(typ).Implements(encoderInterface):
		return makeEncoderSizer(typ), nil
	case isUint(kind):
		return sizeUint, nil
	case kind == reflect.Bool:
		return sizeBool, nil
	case kind == reflect.String:
		return sizeString, nil
	case kind == reflect.Slice && isByte(typ.Elem()):
		return sizeBytes, nil
	case kind == reflect.Array && isByte(typ.Elem()):
		return makeByteArraySizer(typ), nil
	case kind == reflect.Slice || kind == reflect.Array:
		return makeSliceSizer(typ, ts)
	case kind == reflect.Struct:
		return makeStructSizer(typ)
	case kind == reflect.Interface:
		return sizeInterface, nil
	default:
		return nil, fmt.Errorf("rlp: type %v is not RLP-serializable", typ)
	}
}

func sizeRawValue(val reflect.Value) (int, error) {
	return val.Len(), nil
}

func sizeUint(val reflect.Value) (int, error) {
	return IntSize(val.Uint()), nil
}

func sizeBool(val reflect.Value) (int, error) {
	return 1, nil
}

func sizeString(val reflect.Value) (int, error) {
	s := val.String()
	if len(s) == 1 {
		return StringSize([]byte{s[0]}), nil
	}
	return headsize(uint64(len(s))) + len(s), nil
}

func sizeBytes(val reflect.Value) (int, error) {
	return StringSize(val.Bytes()), nil
}

func makeByteArraySizer(typ reflect.Type) sizer {
	switch n := typ.Len(); n {
	case 0:
		return func(reflect.Value) (int, error) { return 1, nil }
	case 1:
		return func(val reflect.Value) (int, error) {
			if val.Index(0).Uint() <= 0x7f {
				return 1, nil
			}
			return 2, nil
		}
	default:
		size := headsize(uint64(n)) + n
		return func(reflect.Value) (int, error) { return size, nil }
	}
}

func sizeBigIntPtr(val reflect.Value) (int, error) {
	ptr := val.Interface().(*big.Int)
	if ptr == nil {
		return 1, nil
	}
	return bigIntSize(ptr)
}

func sizeBigIntNoPtr(val reflect.Value) (int, error) {
	i := val.Interface().(big.Int)
	return bigIntSize(&i)
}

func bigIntSize(i *big.Int) (int, error) {
	if i.Sign() == -1 {
		return 0, ErrNegativeBigInt
	}
	bitlen := i.BitLen()
	if bitlen <= 64 {
		return IntSize(i.Uint64()), nil
	}
	length := (bitlen + 7) / 8
	return headsize(uint64(length)) + length, nil
}

func sizeU256IntPtr(val reflect.Value) (int, error) {
	ptr := val.Interface().(*uint256.Int)
	if ptr == nil {
		return 1, nil
	}
	return uint256Size(ptr), nil
}

func sizeU256IntNoPtr(val reflect.Value) (int, error) {
	i := val.Interface().(uint256.Int)
	return uint256Size(&i), nil
}

func uint256Size(z *uint256.Int) int {
	bitlen := z.BitLen()
	if bitlen <= 64 {
		return IntSize(z.Uint64())
	}
	return 1 + (bitlen+7)/8
}

func sizeIP(val reflect.Value) (int, error) {
	return StringSize(ipBytes(val.Interface().(net.IP))), nil
}

func sizeNetipAddr(val reflect.Value) (int, error) {
	addr := val.Interface().(netip.Addr)
	if !addr.IsValid() {
		return 1, nil
	}
	return 1 + addr.BitLen()/8, nil
}

func sizeInterface(val reflect.Value) (int, error) {
	if val.IsNil() {
		return 1, nil
	}
	eval := val.Elem()
	sizer, err := cachedSizer(eval.Type())
	if err != nil {
		return 0, err
	}
	return sizer(eval)
}

func makeSliceSizer(typ reflect.Type, ts rlpstruct.Tags) (sizer, error) {
	etypeinfo := theTC.infoWhileGenerating(typ.Elem(), rlpstruct.Tags{})
	if etypeinfo.sizerErr != nil {
		return nil, etypeinfo.sizerErr
	}
	return func(val reflect.Value) (int, error) {
		payload := 0
		vlen := val.Len()
		for i := 0; i < vlen; i++ {
			n, err := etypeinfo.sizer(val.Index(i))
			if err != nil {
				return 0, err
			}
			payload += n
		}
		if ts.Tail {
			return payload, nil
		}
		return ListSize(uint64(payload)), nil
	}, nil
}

func makeStructSizer(typ reflect.Type) (sizer, error) {
	fields, err := structFields(typ)
	if err != nil {
		return nil, err
	}
	for _, f := range fields {
		if f.info.sizerErr != nil {
			return nil, structFieldError{typ, f.index, f.info.sizerErr}
		}
	}
	firstOptional := firstOptionalField(fields)
	return func(val reflect.Value) (int, error) {
		lastField := len(fields) - 1
		if firstOptional < len(fields) {
			lastField = lastNonZeroField(val, fields, firstOptional)
		}
		payload := 0
		for i := 0; i <= lastField; i++ {
			n, err := fields[i].info.sizer(val.Field(fields[i].index))
			if err != nil {
				return 0, err
			}
			payload += n
		}
		return ListSize(uint64(payload)), nil
	}, nil
}

func makePtrSizer(typ reflect.Type, ts rlpstruct.Tags) (sizer, error) {
	etypeinfo := theTC.infoWhileGenerating(typ.Elem(), rlpstruct.Tags{})
	if etypeinfo.sizerErr != nil {
		return nil, etypeinfo.sizerErr
	}
	return func(val reflect.Value) (int, error) {
		if ev := val.Elem(); ev.IsValid() {
			return etypeinfo.sizer(ev)
		}
		// Both nil encodings are a single byte.
		return 1, nil
	}, nil
}

func makeEncoderSizer(typ reflect.Type) sizer {
	switch {
	case typ.Implements(sizerInterface):
		return func(val reflect.Value) (int, error) {
			return val.Interface().(Sizer).EncodedSize(), nil
		}
	case reflect.PtrTo(typ).Implements(sizerInterface):
		return func(val reflect.Value) (int, error) {
			if !val.CanAddr() {
				return 0, fmt.Errorf("rlp: unadressable value of type %v, EncodeRLP is pointer method", val.Type())
			}
			return val.Addr().Interface().(Sizer).EncodedSize(), nil
		}
	}
	// No analytic size known, measure the encoding.
	encode := makeEncoderWriter(typ)
	return func(val reflect.Value) (int, error) {
		buf := getEncBuffer()
		defer encBufferPool.Put(buf)
		if err := encode(val, buf); err != nil {
			return 0, err
		}
		return buf.size(), nil
	}
}
