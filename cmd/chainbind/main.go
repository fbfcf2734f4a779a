package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/chainbind/chainbind/bindgen"
	"github.com/chainbind/chainbind/metadata"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Generate call bindings from a metadata document."`
	Check   CheckCmd   `cmd:"" help:"Validate a metadata document without generating files."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

type GenCmd struct {
	Metadata  string            `arg:"" help:"Path to the metadata document."`
	Out       string            `arg:"" help:"Output directory for generated packages."`
	Unchecked bool              `help:"Skip the runtime fingerprint check in generated accessors."`
	Runtime   string            `help:"Import path of the runtime support package." name:"runtime-import"`
	Import    []string          `help:"Extra import paths for field types." short:"i"`
	Map       map[string]string `help:"Type mappings (metadata type=Go type)." short:"m"`
}

func (c *GenCmd) Run() error {
	meta, err := metadata.LoadFile(c.Metadata)
	if err != nil {
		return err
	}

	result, err := bindgen.Generate(context.Background(), meta, &bindgen.Config{
		OutDir:        c.Out,
		Unchecked:     c.Unchecked,
		RuntimeImport: c.Runtime,
		Imports:       c.Import,
		TypeMappings:  c.Map,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "generated %d package(s), skipped %d pallet(s) without calls\n",
		len(result.Files), len(result.Skipped))
	return nil
}

type CheckCmd struct {
	Metadata string `arg:"" help:"Path to the metadata document."`
}

func (c *CheckCmd) Run() error {
	meta, err := metadata.LoadFile(c.Metadata)
	if err != nil {
		return err
	}

	// Dry-run the assembler so schema defects surface without output.
	for i := range meta.Pallets {
		if _, err := bindgen.BuildCallModule(meta, &meta.Pallets[i]); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stderr, "%s: ok (%d pallets)\n", c.Metadata, len(meta.Pallets))
	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("chainbind"),
		kong.Description("Generate typed, fingerprint-checked call bindings from runtime metadata."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
