// Command m6502 is the toolkit's CLI: assemble source into the CLI's raw
// segment file format, disassemble a binary back into text, or load that
// binary onto the emulator core to run it headlessly or step through it
// interactively.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/urfave/cli.v2"

	"m6502/assembler"
	"m6502/cpu"
	"m6502/disasm"
	"m6502/internal/config"
	"m6502/internal/debugger"
	"m6502/lexer"
	"m6502/parser"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

func main() {
	app := &cli.App{
		Name:    "m6502",
		Usage:   "assemble, disassemble, and run MOS 6502 programs",
		Version: "v0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a config.toml overriding the built-in defaults",
			},
		},
		Commands: []*cli.Command{
			assembleCommand,
			disasmCommand,
			runCommand,
			debugCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Fatal(err)
	}
}

func loadConfig(c *cli.Context) config.Config {
	path := c.String("config")
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		logger.Fatal("failed to load config", "path", path, "err", err)
	}
	return cfg
}

// loadProgram builds an Emulator from the CLI's raw segment file, loading
// every segment onto the bus and pointing PC at the first one's origin.
// Emulator.Reset only remembers the most recently Loaded segment, which is
// wrong for a multi-segment program, so the entry point is set directly here
// instead.
func loadProgram(data []byte) (*cpu.Emulator, error) {
	segments, err := readSegments(data)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("no segments in program")
	}

	emu := cpu.New()
	for _, seg := range segments {
		origin := seg.Origin
		if err := emu.Load(seg.Bytes, &origin); err != nil {
			return nil, err
		}
	}
	emu.Registers.PC = segments[0].Origin
	return emu, nil
}

var assembleCommand = &cli.Command{
	Name:      "assemble",
	Usage:     "assemble a source file into the CLI's raw segment format",
	ArgsUsage: "<source.asm>",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file (defaults to stdout)"},
		&cli.Uint64Flag{Name: "origin", Usage: "starting address before any .ORG directive (defaults to the config's assembler.default_origin)"},
	},
	Action: func(c *cli.Context) error {
		if c.Args().Len() < 1 {
			return cli.Exit("expected a source file argument", 1)
		}
		cfg := loadConfig(c)
		origin := uint16(cfg.Assembler.DefaultOrigin)
		if c.IsSet("origin") {
			origin = uint16(c.Uint64("origin"))
		}

		src, err := os.ReadFile(c.Args().First())
		if err != nil {
			return cli.Exit(err, 1)
		}

		rows, err := lexer.Lex(string(src))
		if err != nil {
			return cli.Exit(err, 1)
		}
		tokens, err := parser.Parse(rows)
		if err != nil {
			return cli.Exit(err, 1)
		}
		segments, err := assembler.Assemble(tokens, origin)
		if err != nil {
			return cli.Exit(err, 1)
		}
		logger.Info("assembled", "segments", len(segments))

		out := os.Stdout
		if path := c.String("out"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return cli.Exit(err, 1)
			}
			defer f.Close()
			out = f
		}

		if err := writeSegments(out, segments); err != nil {
			return cli.Exit(err, 1)
		}
		return nil
	},
}

var disasmCommand = &cli.Command{
	Name:      "disasm",
	Usage:     "disassemble a raw binary",
	ArgsUsage: "<program.bin>",
	Flags: []cli.Flag{
		&cli.Uint64Flag{Name: "base", Usage: "address the first byte is loaded at"},
		&cli.BoolFlag{Name: "offsets", Usage: "prefix each line with its address"},
		&cli.BoolFlag{Name: "bytes", Usage: "prefix each line with its encoded bytes"},
	},
	Action: func(c *cli.Context) error {
		if c.Args().Len() < 1 {
			return cli.Exit("expected a binary file argument", 1)
		}
		data, err := os.ReadFile(c.Args().First())
		if err != nil {
			return cli.Exit(err, 1)
		}

		opts := disasm.Options{Offsets: c.Bool("offsets"), OpcodeBytes: c.Bool("bytes")}
		text := disasm.DisassembleAt(data, uint16(c.Uint64("base")), opts)
		fmt.Println(text)
		return nil
	},
}

var runCommand = &cli.Command{
	Name:      "run",
	Usage:     "run an assembled program to completion",
	ArgsUsage: "<program.bin>",
	Flags: []cli.Flag{
		&cli.Uint64Flag{Name: "steps", Usage: "maximum instructions to execute", Value: 1 << 20},
	},
	Action: func(c *cli.Context) error {
		if c.Args().Len() < 1 {
			return cli.Exit("expected a program file argument", 1)
		}
		data, err := os.ReadFile(c.Args().First())
		if err != nil {
			return cli.Exit(err, 1)
		}
		emu, err := loadProgram(data)
		if err != nil {
			return cli.Exit(err, 1)
		}

		cycles, err := emu.StepN(int(c.Uint64("steps")))
		if err != nil {
			return cli.Exit(err, 1)
		}
		logger.Info("halted",
			"cycles", cycles,
			"pc", fmt.Sprintf("%04X", emu.Registers.PC),
			"a", emu.Registers.A,
			"x", emu.Registers.X,
			"y", emu.Registers.Y,
		)
		return nil
	},
}

var debugCommand = &cli.Command{
	Name:      "debug",
	Usage:     "step through an assembled program interactively",
	ArgsUsage: "<program.bin>",
	Action: func(c *cli.Context) error {
		if c.Args().Len() < 1 {
			return cli.Exit("expected a program file argument", 1)
		}
		data, err := os.ReadFile(c.Args().First())
		if err != nil {
			return cli.Exit(err, 1)
		}
		emu, err := loadProgram(data)
		if err != nil {
			return cli.Exit(err, 1)
		}

		return debugger.Run(emu)
	},
}
