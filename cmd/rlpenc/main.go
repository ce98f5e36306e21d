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

// rlpenc is a command line tool for producing canonical RLP encodings of
// JSON values.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
)

var (
	configFileFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		Value: 3,
	}
	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "Output format (hex|raw)",
		Value: "hex",
	}
	prefixFlag = &cli.BoolFlag{
		Name:  "prefix",
		Usage: "Prefix hex output with 0x",
	}
	uppercaseFlag = &cli.BoolFlag{
		Name:  "uppercase",
		Usage: "Print hex output in upper case",
	}
	noColorFlag = &cli.BoolFlag{
		Name:  "nocolor",
		Usage: "Disable colored output",
	}
	workersFlag = &cli.IntFlag{
		Name:  "workers",
		Usage: "Number of concurrent encoders used by batch",
		Value: runtime.NumCPU(),
	}
)

var (
	encodeCommand = &cli.Command{
		Action:    encodeCmd,
		Name:      "encode",
		Usage:     "Print the RLP encoding of a JSON value",
		ArgsUsage: "[<json>|-]",
		Description: `
The encode command reads a JSON value from the argument, or from standard input
when the argument is missing or "-", and prints its RLP encoding.`,
	}
	sizeCommand = &cli.Command{
		Action:    sizeCmd,
		Name:      "size",
		Usage:     "Print the length of the RLP encoding of a JSON value",
		ArgsUsage: "[<json>|-]",
	}
	explainCommand = &cli.Command{
		Action:    explainCmd,
		Name:      "explain",
		Usage:     "Show the prefix structure of the RLP encoding of a JSON value",
		ArgsUsage: "[<json>|-]",
	}
	hashCommand = &cli.Command{
		Action:    hashCmd,
		Name:      "hash",
		Usage:     "Print the Keccak-256 hash of the RLP encoding of a JSON value",
		ArgsUsage: "[<json>|-]",
	}
	batchCommand = &cli.Command{
		Action:    batchCmd,
		Name:      "batch",
		Usage:     "Encode a file of newline separated JSON values",
		ArgsUsage: "<file>",
		Description: `
The batch command encodes every line of the given file. Empty lines and lines
starting with # are skipped. Values are encoded concurrently, output keeps the
order of the input.`,
	}
	dumpConfigCommand = &cli.Command{
		Action:      dumpConfig,
		Name:        "dumpconfig",
		Usage:       "Show configuration values",
		ArgsUsage:   "",
		Description: `The dumpconfig command shows configuration values.`,
	}
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "rlpenc"
	app.Usage = "canonical RLP encoder"
	app.Flags = []cli.Flag{
		configFileFlag,
		verbosityFlag,
		formatFlag,
		prefixFlag,
		uppercaseFlag,
		noColorFlag,
		workersFlag,
	}
	app.Commands = []*cli.Command{
		encodeCommand,
		sizeCommand,
		explainCommand,
		hashCommand,
		batchCommand,
		dumpConfigCommand,
	}
	app.Action = encodeCmd
	app.Before = func(ctx *cli.Context) error {
		cfg, err := makeConfig(ctx)
		if err != nil {
			return err
		}
		setupLogger(cfg.Verbosity)
		return nil
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogger(verbosity int) {
	output := io.Writer(os.Stderr)
	usecolor := (isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())) && os.Getenv("TERM") != "dumb"
	if usecolor {
		output = colorable.NewColorableStderr()
	}
	ostream := log.StreamHandler(output, log.TerminalFormat(usecolor))
	glogger := log.NewGlogHandler(ostream)
	glogger.Verbosity(log.Lvl(verbosity))
	log.Root().SetHandler(glogger)
}

// stdoutIsTerminal reports whether colored output makes sense on stdout.
func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) && os.Getenv("TERM") != "dumb"
}

// readInput returns the JSON document given as the first argument, or
// standard input when there is no argument or it is "-".
func readInput(ctx *cli.Context) ([]byte, error) {
	if ctx.Args().Len() > 1 {
		return nil, fmt.Errorf("too many arguments, expected at most one JSON value")
	}
	arg := ctx.Args().First()
	if arg != "" && arg != "-" {
		return []byte(arg), nil
	}
	data, err := io.ReadAll(ctx.App.Reader)
	if err != nil {
		return nil, fmt.Errorf("can't read input: %v", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, fmt.Errorf("no input")
	}
	return data, nil
}
