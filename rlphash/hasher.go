// Copyright 2020 The go-rlp Authors
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

// Package rlphash computes Keccak-256 digests of RLP encoded values.
package rlphash

import (
	"hash"
	"sync"

	"github.com/PigCharid/go-rlp/common"
	"github.com/PigCharid/go-rlp/rlp"
	"golang.org/x/crypto/sha3"
)

// KeccakState wraps sha3.state. In addition to the usual hash methods, it also supports
// Read to get a variable amount of data from the hash state. Read is faster than Sum
// because it doesn't copy the internal state, but also modifies the internal state.
type KeccakState interface {
	hash.Hash
	Read([]byte) (int, error)
}

// hasher holds the Keccak state and encoder buffer used for one hash
// operation. Hashers are pooled and must not be shared between goroutines.
type hasher struct {
	sha    KeccakState
	tmp    []byte
	encbuf rlp.EncoderBuffer
}

// hasherPool holds hashers
var hasherPool = sync.Pool{
	New: func() interface{} {
		return &hasher{
			tmp:    make([]byte, 0, 550),
			sha:    sha3.NewLegacyKeccak256().(KeccakState),
			encbuf: rlp.NewEncoderBuffer(nil),
		}
	},
}

func newHasher() *hasher {
	return hasherPool.Get().(*hasher)
}

func returnHasherToPool(h *hasher) {
	hasherPool.Put(h)
}

// Hash returns the Keccak-256 digest of the RLP encoding of val.
func Hash(val interface{}) (common.Hash, error) {
	h := newHasher()
	defer returnHasherToPool(h)

	if err := rlp.Encode(h.encbuf, val); err != nil {
		h.encbuf.Reset(nil)
		return common.Hash{}, err
	}
	return h.hashData(h.encodedBytes()), nil
}

// HashList returns the digest of the RLP list holding items. It equals
// Hash([]interface{}{items...}).
func HashList(items ...interface{}) (common.Hash, error) {
	h := newHasher()
	defer returnHasherToPool(h)

	err := rlp.EncodeListToBuffer(h.encbuf, items)
	if err != nil {
		h.encbuf.Reset(nil)
		return common.Hash{}, err
	}
	return h.hashData(h.encodedBytes()), nil
}

// HashEach hashes every element of vals separately. With parallel set, each
// value is hashed on its own goroutine. The result is in input order; the
// first error encountered is returned.
func HashEach(vals []interface{}, parallel bool) ([]common.Hash, error) {
	out := make([]common.Hash, len(vals))
	if !parallel {
		for i, v := range vals {
			hash, err := Hash(v)
			if err != nil {
				return nil, err
			}
			out[i] = hash
		}
		return out, nil
	}

	var (
		wg   sync.WaitGroup
		errs = make([]error, len(vals))
	)
	wg.Add(len(vals))
	for i := range vals {
		go func(i int) {
			out[i], errs[i] = Hash(vals[i])
			wg.Done()
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Sum returns the Keccak-256 digest of data.
func Sum(data []byte) common.Hash {
	h := newHasher()
	defer returnHasherToPool(h)
	return h.hashData(data)
}

// encodedBytes returns the result of the last encoding operation on h.encbuf.
// This also resets the encoder buffer.
func (h *hasher) encodedBytes() []byte {
	h.tmp = h.encbuf.AppendToBytes(h.tmp[:0])
	h.encbuf.Reset(nil)
	return h.tmp
}

// hashData hashes the provided data
func (h *hasher) hashData(data []byte) (n common.Hash) {
	h.sha.Reset()
	h.sha.Write(data)
	h.sha.Read(n[:])
	return n
}
