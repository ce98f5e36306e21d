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
	"math/big"
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	gethrlp "github.com/ethereum/go-ethereum/rlp"
	fuzz "github.com/google/gofuzz"
)

type compatInner struct {
	X uint
	Y []string
}

// compatValue only uses types on which this package and the upstream go-ethereum
// encoder agree.
type compatValue struct {
	A uint8
	B uint16
	C uint32
	D uint64
	E bool
	F string
	G []byte
	H [4]byte
	I []uint64
	J *big.Int
	K []compatInner
	L [2]string
	M *compatInner `rlp:"nil"`
	N [20]byte
	O [][]byte
}

func newCompatFuzzer(seed int64) *fuzz.Fuzzer {
	return fuzz.New().
		RandSource(rand.NewSource(seed)).
		NilChance(0.2).
		NumElements(0, 60).
		Funcs(func(b *big.Int, c fuzz.Continue) {
			buf := make([]byte, c.Intn(40))
			c.Read(buf)
			b.SetBytes(buf)
		})
}

var dumper = spew.ConfigState{DisableMethods: true, Indent: "    "}

// TestCompatUpstream checks that random values encode to the same bytes as
// with the go-ethereum encoder, and that Size agrees with the output.
func TestCompatUpstream(t *testing.T) {
	f := newCompatFuzzer(1)
	for i := 0; i < 300; i++ {
		var v compatValue
		f.Fuzz(&v)

		got, err := EncodeToBytes(&v)
		if err != nil {
			t.Fatalf("iteration %d: encode error: %v\n%s", i, err, dumper.Sdump(v))
		}
		want, err := gethrlp.EncodeToBytes(&v)
		if err != nil {
			t.Fatalf("iteration %d: upstream encode error: %v", i, err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("iteration %d: output mismatch\ngot  %x\nwant %x\nvalue:\n%s", i, got, want, dumper.Sdump(v))
		}
		size, err := Size(&v)
		if err != nil {
			t.Fatalf("iteration %d: size error: %v", i, err)
		}
		if size != len(got) {
			t.Fatalf("iteration %d: size %d, encoded %d bytes\nvalue:\n%s", i, size, len(got), dumper.Sdump(v))
		}
	}
}

// TestCompatRoundTrip decodes the output with the upstream decoder and encodes
// the result again. Identical bytes mean list order and values survived.
func TestCompatRoundTrip(t *testing.T) {
	f := newCompatFuzzer(2)
	for i := 0; i < 200; i++ {
		var v compatValue
		f.Fuzz(&v)

		enc, err := EncodeToBytes(&v)
		if err != nil {
			t.Fatalf("iteration %d: encode error: %v", i, err)
		}
		var dec compatValue
		if err := gethrlp.DecodeBytes(enc, &dec); err != nil {
			t.Fatalf("iteration %d: decode error: %v\ninput %x\nvalue:\n%s", i, err, enc, dumper.Sdump(v))
		}
		reenc, err := EncodeToBytes(&dec)
		if err != nil {
			t.Fatalf("iteration %d: re-encode error: %v", i, err)
		}
		if !bytes.Equal(enc, reenc) {
			t.Fatalf("iteration %d: round trip mismatch\nfirst  %x\nsecond %x\ndecoded:\n%s", i, enc, reenc, dumper.Sdump(dec))
		}
	}
}

// TestCompatInterfaceList compares generic lists with the upstream encoder.
func TestCompatInterfaceList(t *testing.T) {
	vals := []interface{}{
		[]interface{}{},
		[]interface{}{"dog", "cat"},
		[]interface{}{uint64(0x7f), uint32(0x7f), true, false, []byte{0x04, 0x00}},
		[]interface{}{[]interface{}{[]interface{}{}}, big.NewInt(1 << 40), make([]byte, 56)},
	}
	for i, v := range vals {
		got, err := EncodeToBytes(v)
		if err != nil {
			t.Fatal(err)
		}
		want, err := gethrlp.EncodeToBytes(v)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("value %d: got %x, want %x", i, got, want)
		}
	}
}
