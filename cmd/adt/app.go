package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/nkpart/adt"
	"github.com/nkpart/adt/codec"
	"github.com/nkpart/adt/i18n"
	"github.com/nkpart/adt/schemadoc"
)

type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    *logrus.Logger
	color  bool
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	e := &env{stdin: stdin, stdout: stdout, stderr: stderr, log: logrus.New()}

	app := cli.NewApp()
	app.Name = "adt"
	app.Usage = "check, describe and decode algebraic data type schema documents"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.HideVersion = true

	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "verbose, v", Usage: "log each loaded document and type"},
		cli.StringFlag{Name: "lang", Usage: "message language: en, ja", Value: "en"},
		cli.BoolFlag{Name: "no-color", Usage: "disable colored output"},
	}

	app.Before = func(c *cli.Context) error {
		e.log.Out = stderr
		e.color = !c.GlobalBool("no-color") && isTerminal(stdout)
		e.log.Formatter = &logrus.TextFormatter{DisableColors: !e.color, DisableTimestamp: true}
		e.log.SetLevel(logrus.InfoLevel)
		if c.GlobalBool("verbose") {
			e.log.SetLevel(logrus.DebugLevel)
		}
		i18n.SetLanguage(c.GlobalString("lang"))
		return nil
	}

	app.Commands = []cli.Command{
		{
			Name:      "check",
			Usage:     "validate schema documents",
			ArgsUsage: "FILE...",
			Action:    e.check,
		},
		{
			Name:      "describe",
			Usage:     "print the cases, accessors and methods of every type",
			ArgsUsage: "FILE",
			Action:    e.describe,
		},
		{
			Name:      "jsonschema",
			Usage:     "print the JSON Schema of a type's wire form",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "type, t", Usage: "type name"},
			},
			Action: e.jsonSchema,
		},
		{
			Name:      "decode",
			Usage:     "decode an instance and print it",
			ArgsUsage: "FILE [INPUT|-]",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "type, t", Usage: "type name"},
				cli.StringFlag{Name: "format, f", Usage: "input format: json, yaml", Value: "json"},
			},
			Action: e.decode,
		},
	}
	return app
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// load reads one schema document file; ".json" files use the JSON reader.
func (e *env) load(path string) (*schemadoc.Registry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	e.log.WithField("file", path).Debug("loading schema document")
	var reg *schemadoc.Registry
	if strings.EqualFold(filepath.Ext(path), ".json") {
		reg, err = schemadoc.LoadJSON(b)
	} else {
		reg, err = schemadoc.LoadYAML(bytes.NewReader(b))
	}
	if err != nil {
		return nil, err
	}
	for _, t := range reg.Types() {
		e.log.WithFields(logrus.Fields{"file": path, "type": t.Name(), "cases": t.Schema().Len()}).Debug("declared type")
	}
	return reg, nil
}

// report prints err one issue per line and returns the exit error.
func (e *env) report(prefix string, err error) error {
	iss, ok := adt.AsIssues(err)
	if !ok {
		fmt.Fprintf(e.stdout, "%s: %v\n", prefix, err)
		return cli.NewExitError("", 1)
	}
	for _, it := range iss {
		line := fmt.Sprintf("%s: %s at %s: %s", prefix, it.Code, it.Path, it.Message)
		if it.Hint != "" {
			line += " (" + it.Hint + ")"
		}
		fmt.Fprintln(e.stdout, line)
	}
	return cli.NewExitError("", 1)
}

func usageError(c *cli.Context, msg string) error {
	return cli.NewExitError(fmt.Sprintf("%s: %s", c.Command.Name, msg), 2)
}

func (e *env) check(c *cli.Context) error {
	if c.NArg() == 0 {
		return usageError(c, "at least one FILE is required")
	}
	var failed bool
	for _, path := range c.Args() {
		reg, err := e.load(path)
		if err != nil {
			_ = e.report(path, err)
			failed = true
			continue
		}
		fmt.Fprintf(e.stdout, "%s: ok (%d types)\n", path, reg.Len())
	}
	if failed {
		return cli.NewExitError("", 1)
	}
	return nil
}

func (e *env) describe(c *cli.Context) error {
	if c.NArg() != 1 {
		return usageError(c, "exactly one FILE is required")
	}
	path := c.Args().First()
	reg, err := e.load(path)
	if err != nil {
		return e.report(path, err)
	}
	tb := newTable(e.color, "TYPE", "#", "CASE", "FIELDS")
	for _, t := range reg.Types() {
		for i, cd := range t.Schema().Cases() {
			tb.Row(t.Name(), fmt.Sprint(i+1), cd.Name, strings.Join(cd.Fields, ", "))
		}
	}
	tb.Render(e.stdout)
	for _, t := range reg.Types() {
		fmt.Fprintf(e.stdout, "\n%s\n", t)
		if a := t.FoldAlias(); a != "" {
			fmt.Fprintf(e.stdout, "  fold alias: %s\n", a)
		}
		if acc := t.Accessors(); len(acc) > 0 {
			fmt.Fprintf(e.stdout, "  accessors: %s\n", strings.Join(acc, ", "))
		}
		if t.IsEnumeration() {
			fmt.Fprintln(e.stdout, "  enumeration: all_values, from_i, to_i")
		}
	}
	return nil
}

func (e *env) lookup(c *cli.Context) (*adt.Type, error) {
	if c.NArg() < 1 {
		return nil, usageError(c, "FILE is required")
	}
	name := c.String("type")
	if name == "" {
		return nil, usageError(c, "--type is required")
	}
	path := c.Args().First()
	reg, err := e.load(path)
	if err != nil {
		return nil, e.report(path, err)
	}
	t, ok := reg.Lookup(name)
	if !ok {
		return nil, cli.NewExitError(fmt.Sprintf("%s: no type %q (have %s)", path, name, strings.Join(reg.Names(), ", ")), 1)
	}
	return t, nil
}

func (e *env) jsonSchema(c *cli.Context) error {
	t, err := e.lookup(c)
	if err != nil {
		return err
	}
	s, err := t.JSONSchema()
	if err != nil {
		return e.report(t.Name(), err)
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, string(b))
	return nil
}

func (e *env) decode(c *cli.Context) error {
	t, err := e.lookup(c)
	if err != nil {
		return err
	}
	var in []byte
	switch src := c.Args().Get(1); src {
	case "", "-":
		in, err = io.ReadAll(e.stdin)
	default:
		in, err = os.ReadFile(src)
	}
	if err != nil {
		return err
	}
	var cd adt.Codec[[]byte]
	switch f := strings.ToLower(c.String("format")); f {
	case "json":
		cd = codec.JSON(t)
	case "yaml", "yml":
		cd = codec.YAML(t)
	default:
		return usageError(c, "unknown --format "+f)
	}
	v, err := cd.Decode(context.Background(), in)
	if err != nil {
		return e.report("input", err)
	}
	e.log.WithFields(logrus.Fields{"type": t.Name(), "case": v.CaseName()}).Debug("decoded instance")
	fmt.Fprintln(e.stdout, v.String())
	return nil
}
