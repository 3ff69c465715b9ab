// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Command inicfg reads and edits INI configuration files.
//
// Usage:
//
//	inicfg get <file> <section> <key> [--default=VALUE]
//	inicfg set <file> <section> <key> <value>
//	inicfg delete <file> <section> [<key>]
//	inicfg sections <file>
//	inicfg keys <file> <section>
//	inicfg fmt <file> [--write]
//
// The global section is addressed with an empty section argument ("").
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"zombiezen.com/go/log"

	"github.com/yourbase/ini"
)

var cli struct {
	Verbose bool `short:"v" help:"Enable debug logging."`

	Get      GetCmd      `cmd:"" help:"Print the value of a key."`
	Set      SetCmd      `cmd:"" help:"Set a key and rewrite the file."`
	Delete   DeleteCmd   `cmd:"" help:"Delete a key or an entire section."`
	Sections SectionsCmd `cmd:"" help:"List section names in document order."`
	Keys     KeysCmd     `cmd:"" help:"List the keys of a section in order."`
	Fmt      FmtCmd      `cmd:"" help:"Print or rewrite a file in canonical form."`
}

// GetCmd prints a single value.
type GetCmd struct {
	File    string  `arg:"" help:"INI file to read."`
	Section string  `arg:"" help:"Section name; empty for the global section."`
	Key     string  `arg:"" help:"Key to look up."`
	Default *string `help:"Value to print when the key is absent."`
}

func (c *GetCmd) Run(ctx context.Context) error {
	doc, err := ini.ParseFile(c.File)
	if err != nil {
		return err
	}
	v, ok := doc.Get(c.Section, c.Key)
	if !ok {
		if c.Default != nil {
			log.Debugf(ctx, "%s: no value for %q in section %q, using default", c.File, c.Key, c.Section)
			fmt.Println(*c.Default)
			return nil
		}
		return fmt.Errorf("%s: no value for %q in section %q", c.File, c.Key, c.Section)
	}
	fmt.Println(v)
	return nil
}

// SetCmd stores a value and writes the file back in canonical form.
// A missing file is created.
type SetCmd struct {
	File    string `arg:"" help:"INI file to modify."`
	Section string `arg:"" help:"Section name; empty for the global section."`
	Key     string `arg:"" help:"Key to set."`
	Value   string `arg:"" help:"Value to store."`
}

func (c *SetCmd) Run(ctx context.Context) error {
	doc, err := ini.ParseFile(c.File)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debugf(ctx, "%s does not exist, creating", c.File)
		doc = new(ini.Document)
	} else if err != nil {
		return err
	}
	doc.Set(c.Section, c.Key, c.Value)
	log.Debugf(ctx, "writing %s", c.File)
	return doc.WriteFile(c.File)
}

// DeleteCmd removes a key, or a whole section when no key is given,
// and writes the file back.
type DeleteCmd struct {
	File    string `arg:"" help:"INI file to modify."`
	Section string `arg:"" help:"Section name; empty for the global section."`
	Key     string `arg:"" optional:"" help:"Key to delete. Omit to delete the whole section."`
}

func (c *DeleteCmd) Run(ctx context.Context) error {
	doc, err := ini.ParseFile(c.File)
	if err != nil {
		return err
	}
	if c.Key == "" {
		if !doc.RemoveSection(c.Section) {
			return fmt.Errorf("%s: no section %q", c.File, c.Section)
		}
	} else if !doc.Delete(c.Section, c.Key) {
		return fmt.Errorf("%s: no value for %q in section %q", c.File, c.Key, c.Section)
	}
	log.Debugf(ctx, "writing %s", c.File)
	return doc.WriteFile(c.File)
}

// SectionsCmd lists section names, one per line. The global section
// prints as "".
type SectionsCmd struct {
	File string `arg:"" help:"INI file to read."`
}

func (c *SectionsCmd) Run(ctx context.Context) error {
	doc, err := ini.ParseFile(c.File)
	if err != nil {
		return err
	}
	for name := range doc.Sections() {
		if name == "" {
			fmt.Println(strconv.Quote(name))
			continue
		}
		fmt.Println(name)
	}
	return nil
}

// KeysCmd lists the keys of one section, one per line.
type KeysCmd struct {
	File    string `arg:"" help:"INI file to read."`
	Section string `arg:"" help:"Section name; empty for the global section."`
}

func (c *KeysCmd) Run(ctx context.Context) error {
	doc, err := ini.ParseFile(c.File)
	if err != nil {
		return err
	}
	for key := range doc.Section(c.Section).Keys() {
		fmt.Println(key)
	}
	return nil
}

// FmtCmd reparses a file and emits it in canonical form.
type FmtCmd struct {
	File  string `arg:"" help:"INI file to format."`
	Write bool   `short:"w" help:"Rewrite the file in place instead of printing."`
}

func (c *FmtCmd) Run(ctx context.Context) error {
	doc, err := ini.ParseFile(c.File)
	if err != nil {
		return err
	}
	if c.Write {
		log.Debugf(ctx, "writing %s", c.File)
		return doc.WriteFile(c.File)
	}
	fmt.Println(doc)
	return nil
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("inicfg"),
		kong.Description("Read and edit INI configuration files."),
		kong.UsageOnError(),
	)
	initLogging(cli.Verbose)
	kctx.BindTo(context.Background(), (*context.Context)(nil))
	err := kctx.Run()
	kctx.FatalIfErrorf(err)
}

func initLogging(verbose bool) {
	minLevel := log.Info
	if verbose {
		minLevel = log.Debug
	}
	log.SetDefault(&log.LevelFilter{
		Min:    minLevel,
		Output: log.New(os.Stderr, "inicfg: ", 0, nil),
	})
}
