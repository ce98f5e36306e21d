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

package jsonvalue

import (
	"errors"
	"math/big"
	"net"
	"testing"

	"github.com/PigCharid/go-rlp/common"
	"github.com/PigCharid/go-rlp/rlp"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	bigVal, _ := new(big.Int).SetString("18446744073709551616", 10)
	tests := []struct {
		input string
		want  interface{}
	}{
		{`true`, true},
		{`false`, false},
		{`null`, nil},
		{`0`, uint64(0)},
		{` 127 `, uint64(127)},
		{`18446744073709551615`, uint64(18446744073709551615)},
		{`18446744073709551616`, bigVal},
		{`"cat"`, "cat"},
		{`"0x0400"`, []byte{0x04, 0x00}},
		{`"0x"`, []byte{}},
		{`[]`, []interface{}{}},
		{`["dog", "cat"]`, []interface{}{"dog", "cat"}},
		{`[1, [null, []]]`, []interface{}{uint64(1), []interface{}{nil, []interface{}{}}}},
		{`{"string": "0x12"}`, "0x12"},
		{`{"bytes": "0xff"}`, []byte{0xff}},
		{`{"uint": 300}`, uint256.NewInt(300)},
		{`{"uint": "0x0100"}`, uint256.NewInt(256)},
		{`{"uint": "1000"}`, uint256.NewInt(1000)},
		{`{"ip": "192.168.0.1"}`, net.ParseIP("192.168.0.1")},
		{`{"list": [{"uint": 1}]}`, []interface{}{uint256.NewInt(1)}},
		{
			`{"address": "0x000000000000000000000000000000000000dead"}`,
			common.HexToAddress("0xdead"),
		},
		{
			`{"hash": "0x0000000000000000000000000000000000000000000000000000000000000001"}`,
			common.HexToHash("0x01"),
		},
	}
	for _, test := range tests {
		got, err := Parse([]byte(test.input))
		require.NoError(t, err, "input %s", test.input)
		assert.Equal(t, test.want, got, "input %s", test.input)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		path  string
	}{
		{``, "$"},
		{`-1`, "$"},
		{`1.5`, "$"},
		{`1e3`, "$"},
		{`"0xzz"`, "$"},
		{`"0x123"`, "$"},
		{`1 2`, "$"},
		{`[1, -2]`, "$[1]"},
		{`[[true, 0.1]]`, "$[0][1]"},
		{`{}`, "$"},
		{`{"uint": 1, "bytes": "0x"}`, "$"},
		{`{"float": "1"}`, "$.float"},
		{`{"uint": "-5"}`, "$.uint"},
		{`{"uint": "0x-5"}`, "$.uint"},
		{`{"uint": "+5"}`, "$.uint"},
		{`{"uint": "0x+5"}`, "$.uint"},
		{`{"uint": "0x1` + "0000000000000000000000000000000000000000000000000000000000000000" + `"}`, "$.uint"},
		{`{"hash": "0x01"}`, "$.hash"},
		{`{"address": 5}`, "$.address"},
		{`{"ip": "not-an-ip"}`, "$.ip"},
		{`{"list": "x"}`, "$.list"},
		{`{"list": [1, {"bytes": "0x1"}]}`, "$.list[1].bytes"},
	}
	for _, test := range tests {
		_, err := Parse([]byte(test.input))
		require.Error(t, err, "input %s", test.input)
		var perr *PathError
		require.True(t, errors.As(err, &perr), "input %s: error %v is not a PathError", test.input, err)
		assert.Equal(t, test.path, perr.Path, "input %s: %v", test.input, err)
	}
}

func TestParseUintSign(t *testing.T) {
	for _, input := range []string{`{"uint": "-5"}`, `{"uint": "0x-5"}`, `{"uint": -5}`} {
		_, err := Parse([]byte(input))
		assert.True(t, errors.Is(err, errNegative), "input %s: got %v", input, err)
	}
	_, err := Parse([]byte(`{"uint": "+5"}`))
	assert.EqualError(t, err, `jsonvalue: $.uint: invalid integer "+5"`)
	_, err = Parse([]byte(`{"uint": "0x+5"}`))
	assert.EqualError(t, err, `jsonvalue: $.uint: invalid integer "0x+5"`)
}

func TestParseSyntaxError(t *testing.T) {
	for _, input := range []string{`[1,`, `{"uint"`, `"abc`, `tru`} {
		_, err := Parse([]byte(input))
		assert.Error(t, err, "input %s", input)
	}
}

// Parsed values go straight into the encoder.
func TestParseEncode(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{`true`, "01"},
		{`false`, "80"},
		{`0`, "80"},
		{`127`, "7f"},
		{`128`, "8180"},
		{`"0x0400"`, "820400"},
		{`"cat"`, "83636174"},
		{`["dog", "cat"]`, "c883646f6783636174"},
		{`[]`, "c0"},
		{`null`, "80"},
		{`[null]`, "c180"},
		{`{"ip": "192.168.0.1"}`, "84c0a80001"},
		{`{"hash": "0x0000000000000000000000000000000000000000000000000000000000000000"}`, "a0" + "0000000000000000000000000000000000000000000000000000000000000000"},
	}
	for _, test := range tests {
		v, err := Parse([]byte(test.input))
		require.NoError(t, err, "input %s", test.input)
		enc, err := rlp.EncodeToBytes(v)
		require.NoError(t, err, "input %s", test.input)
		assert.Equal(t, test.want, common.Bytes2Hex(enc), "input %s", test.input)
	}
}
