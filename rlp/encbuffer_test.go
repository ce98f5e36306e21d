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
	"bytes"
	"errors"
	"io"
	"math/big"
	"testing"
)

// listEncoder writes its items through an EncoderBuffer derived from w.
type listEncoder struct {
	items []uint64
}

func (l *listEncoder) EncodeRLP(w io.Writer) error {
	buf := NewEncoderBuffer(w)
	err := buf.InList(func() error {
		for _, it := range l.items {
			buf.WriteUint64(it)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return buf.Flush()
}

func TestEncoderBufferDerived(t *testing.T) {
	val := []interface{}{&listEncoder{[]uint64{1, 2, 0x80}}, "x"}
	got, err := EncodeToBytes(val)
	if err != nil {
		t.Fatal(err)
	}
	want := unhex("C6C40102818078")
	if !bytes.Equal(got, want) {
		t.Fatalf("got %X, want %X", got, want)
	}
}

func TestEncoderBufferWrites(t *testing.T) {
	buf := NewEncoderBuffer(nil)
	l := buf.List()
	buf.WriteBool(true)
	buf.WriteBool(false)
	buf.WriteBigInt(big.NewInt(1024))
	buf.WriteUint256(u256Uint(0x7f))
	buf.WriteBytes([]byte{0x04, 0x00})
	buf.WriteString("cat")
	buf.Write([]byte{0xC0})
	buf.ListEnd(l)

	want := unhex("CE01808204007F82040083636174C0")
	if got := buf.ToBytes(); !bytes.Equal(got, want) {
		t.Fatalf("got %X, want %X", got, want)
	}
	if buf.Size() != len(want) {
		t.Fatalf("Size() = %d, want %d", buf.Size(), len(want))
	}

	out := buf.AppendToBytes([]byte{0xAA})
	if !bytes.Equal(out[1:], want) || out[0] != 0xAA {
		t.Fatalf("AppendToBytes: got %X", out)
	}

	buf.Reset(nil)
	if buf.Size() != 0 {
		t.Fatalf("Size() after Reset = %d", buf.Size())
	}
}

func TestEncoderBufferInListError(t *testing.T) {
	buf := NewEncoderBuffer(nil)
	errStop := errors.New("stop")
	err := buf.InList(func() error {
		buf.WriteUint64(1)
		return errStop
	})
	if err != errStop {
		t.Fatalf("got error %v, want %v", err, errStop)
	}
}

func TestEncoderBufferLongList(t *testing.T) {
	var w bytes.Buffer
	buf := NewEncoderBuffer(&w)
	items := make([]string, 20)
	for i := range items {
		items[i] = "abc"
	}
	if err := EncodeListToBuffer(buf, items); err != nil {
		t.Fatal(err)
	}
	if err := buf.Flush(); err != nil {
		t.Fatal(err)
	}
	// 20 items of 4 bytes
	want, _ := EncodeToBytes(items)
	if !bytes.Equal(w.Bytes(), want) || !bytes.HasPrefix(want, []byte{0xF8, 80}) {
		t.Fatalf("got %X, want %X", w.Bytes(), want)
	}
}

func TestEncoderBufferResetDerivedPanics(t *testing.T) {
	outer := NewEncoderBuffer(nil)
	inner := NewEncoderBuffer(outer)
	defer func() {
		if recover() == nil {
			t.Fatal("Reset of derived buffer did not panic")
		}
	}()
	inner.Reset(nil)
}
