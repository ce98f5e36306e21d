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
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/PigCharid/go-rlp/internal/jsonvalue"
	"github.com/PigCharid/go-rlp/rlp"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

// batchLine is one input value of a batch.
type batchLine struct {
	num  int    // line number in the input, starting at 1
	data []byte // JSON text
}

func batchCmd(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	if ctx.Args().Len() != 1 {
		return fmt.Errorf("need input file as the only argument")
	}
	file := ctx.Args().First()
	var in io.Reader = ctx.App.Reader
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	lines, err := readBatch(in)
	if err != nil {
		return err
	}

	start := time.Now()
	encs, err := encodeBatch(ctx.Context, lines, cfg.Batch.Workers)
	if err != nil {
		return err
	}
	out := bufio.NewWriter(ctx.App.Writer)
	for _, enc := range encs {
		if err := writeEncoding(out, cfg.Output, enc); err != nil {
			return err
		}
	}
	if err := out.Flush(); err != nil {
		return err
	}
	log.Info("Encoded batch", "values", len(encs), "workers", cfg.Batch.Workers, "elapsed", common.PrettyDuration(time.Since(start)))
	return nil
}

// readBatch collects the non-empty lines of r. Lines starting with # are
// comments.
func readBatch(r io.Reader) ([]batchLine, error) {
	var (
		lines []batchLine
		scan  = bufio.NewScanner(r)
		num   int
	)
	scan.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scan.Scan() {
		num++
		text := bytes.TrimSpace(scan.Bytes())
		if len(text) == 0 || text[0] == '#' {
			continue
		}
		lines = append(lines, batchLine{num: num, data: append([]byte(nil), text...)})
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// encodeBatch encodes all lines using the given number of workers. The
// result has one encoding per line in input order. The first failing line
// cancels the remaining work.
func encodeBatch(ctx context.Context, lines []batchLine, workers int) ([][]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if workers < 1 {
		workers = 1
	}
	var (
		encs    = make([][]byte, len(lines))
		jobs    = make(chan int)
		g, gctx = errgroup.WithContext(ctx)
	)
	g.Go(func() error {
		defer close(jobs)
		for i := range lines {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range jobs {
				enc, err := encodeLine(lines[i])
				if err != nil {
					return err
				}
				encs[i] = enc
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return encs, nil
}

func encodeLine(line batchLine) ([]byte, error) {
	val, err := jsonvalue.Parse(line.data)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", line.num, err)
	}
	enc, err := rlp.EncodeToBytes(val)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", line.num, err)
	}
	log.Trace("Encoded line", "line", line.num, "size", len(enc))
	return enc, nil
}
