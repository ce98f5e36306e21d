// Copyright 2022 The go-rlp Authors
// This file is part of go-rlp.
//
// go-rlp is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-rlp is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-rlp. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/PigCharid/go-rlp/common"
	"github.com/PigCharid/go-rlp/internal/jsonvalue"
	"github.com/PigCharid/go-rlp/rlp"
	"github.com/PigCharid/go-rlp/rlphash"
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

// parseInput reads and converts the command input.
func parseInput(ctx *cli.Context) (interface{}, error) {
	data, err := readInput(ctx)
	if err != nil {
		return nil, err
	}
	return jsonvalue.Parse(data)
}

func encodeCmd(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	val, err := parseInput(ctx)
	if err != nil {
		return err
	}
	enc, err := rlp.EncodeToBytes(val)
	if err != nil {
		return err
	}
	log.Debug("Encoded value", "size", len(enc))
	return writeEncoding(ctx.App.Writer, cfg.Output, enc)
}

func sizeCmd(ctx *cli.Context) error {
	val, err := parseInput(ctx)
	if err != nil {
		return err
	}
	size, err := rlp.Size(val)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, size)
	return err
}

func hashCmd(ctx *cli.Context) error {
	val, err := parseInput(ctx)
	if err != nil {
		return err
	}
	h, err := rlphash.Hash(val)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, h.Hex())
	return err
}

// writeEncoding prints enc in the configured format. Hex output is
// terminated by a newline, raw output is written as is.
func writeEncoding(w io.Writer, cfg outputConfig, enc []byte) error {
	if cfg.Format == "raw" {
		_, err := w.Write(enc)
		return err
	}
	_, err := fmt.Fprintln(w, formatHex(cfg, enc))
	return err
}

func formatHex(cfg outputConfig, b []byte) string {
	s := common.Bytes2Hex(b)
	if cfg.Uppercase {
		s = strings.ToUpper(s)
	}
	if cfg.Prefix {
		s = "0x" + s
	}
	return s
}
