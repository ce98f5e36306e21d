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
	"strconv"
	"strings"

	"github.com/PigCharid/go-rlp/rlp"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

// maxShownContent is the number of content bytes printed per string item.
const maxShownContent = 16

// explainItem describes one item of an encoding.
type explainItem struct {
	Offset  int      // position of the first prefix byte
	Depth   int      // list nesting level
	Kind    rlp.Kind // Byte, String or List
	Header  []byte   // prefix bytes, empty for single bytes
	Content []byte   // payload
}

// Size is the number of bytes occupied by the item.
func (it explainItem) Size() int {
	return len(it.Header) + len(it.Content)
}

// explainEncoding splits enc into its items in encoding order.
func explainEncoding(enc []byte) ([]explainItem, error) {
	var items []explainItem
	if err := explainValues(enc, 0, 0, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func explainValues(b []byte, offset, depth int, items *[]explainItem) error {
	for len(b) > 0 {
		hsize, err := rlp.HeaderSize(b)
		if err != nil {
			return fmt.Errorf("offset %d: %v", offset, err)
		}
		kind, content, rest, err := rlp.Split(b)
		if err != nil {
			return fmt.Errorf("offset %d: %v", offset, err)
		}
		*items = append(*items, explainItem{
			Offset:  offset,
			Depth:   depth,
			Kind:    kind,
			Header:  b[:hsize],
			Content: content,
		})
		if kind == rlp.List {
			if err := explainValues(content, offset+hsize, depth+1, items); err != nil {
				return err
			}
		}
		offset += len(b) - len(rest)
		b = rest
	}
	return nil
}

func explainCmd(ctx *cli.Context) error {
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
	items, err := explainEncoding(enc)
	if err != nil {
		return err
	}
	renderExplain(ctx.App.Writer, cfg.Output, items)
	_, err = fmt.Fprintf(ctx.App.Writer, "total %d bytes: %s\n", len(enc), formatHex(cfg.Output, enc))
	return err
}

func renderExplain(w io.Writer, cfg outputConfig, items []explainItem) {
	prefixColor := color.New(color.FgMagenta)
	listColor := color.New(color.FgCyan, color.Bold)
	if !cfg.Color {
		prefixColor.DisableColor()
		listColor.DisableColor()
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Offset", "Kind", "Prefix", "Payload", "Size", "Content"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	for _, it := range items {
		kind := strings.Repeat("  ", it.Depth) + it.Kind.String()
		if it.Kind == rlp.List {
			kind = strings.Repeat("  ", it.Depth) + listColor.Sprint(it.Kind.String())
		}
		prefix := "-"
		if len(it.Header) > 0 {
			prefix = prefixColor.Sprint(formatHex(cfg, it.Header))
		}
		content := ""
		if it.Kind != rlp.List {
			content = shortHex(cfg, it.Content)
		}
		table.Append([]string{
			strconv.Itoa(it.Offset),
			kind,
			prefix,
			strconv.Itoa(len(it.Content)),
			strconv.Itoa(it.Size()),
			content,
		})
	}
	table.Render()
}

func shortHex(cfg outputConfig, b []byte) string {
	if len(b) <= maxShownContent {
		return formatHex(cfg, b)
	}
	return formatHex(cfg, b[:maxShownContent]) + fmt.Sprintf("... (%d more)", len(b)-maxShownContent)
}
