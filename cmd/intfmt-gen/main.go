// Command intfmt-gen evaluates a manifest of integer format requests and
// writes Go source holding each result as an exactly-sized [N]byte array.
//
// Typical use from a package directory:
//
//	//go:generate go run github.com/goliatone/go-intfmt/cmd/intfmt-gen -manifest intfmt.yaml -output intfmt_gen.go
//
// An invalid base, a non-integral type or a value that does not fit its type
// makes the command exit non-zero, which fails go generate.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-intfmt/internal/logger"
	"github.com/goliatone/go-intfmt/pkg/orchestrator"
	"github.com/goliatone/go-intfmt/pkg/prompt"
	"github.com/goliatone/go-intfmt/pkg/render"
	"github.com/goliatone/go-intfmt/pkg/renderers/gosource"
	"github.com/goliatone/go-intfmt/pkg/renderers/snapshot"
	"github.com/goliatone/go-intfmt/pkg/request"
)

// newDriver is replaced in tests.
var newDriver = func() prompt.Driver { return prompt.NewSurveyDriver() }

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.SetFlags(0)
		log.Fatalf("intfmt-gen: %v", err)
	}
}

type options struct {
	manifest    string
	pkg         string
	output      string
	renderer    string
	tags        string
	templates   string
	noStrings   bool
	interactive bool
	verbosity   int
	logFormat   string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("intfmt-gen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.manifest, "manifest", "intfmt.yaml", "manifest file (JSON or YAML)")
	fs.StringVar(&opts.pkg, "package", os.Getenv("GOPACKAGE"), "package name of the generated file (defaults to $GOPACKAGE, then the manifest)")
	fs.StringVar(&opts.output, "output", "", "output file (stdout if empty)")
	fs.StringVar(&opts.renderer, "renderer", gosource.Name, "renderer to use (gosource, snapshot)")
	fs.StringVar(&opts.tags, "tags", "", "build constraint written into the generated file")
	fs.StringVar(&opts.templates, "templates", "", "directory holding a replacement gosource.tmpl")
	fs.BoolVar(&opts.noStrings, "no-strings", false, "omit the string constants next to each array")
	fs.BoolVar(&opts.interactive, "interactive", false, "prompt for requests and save them to -manifest first")
	fs.IntVar(&opts.verbosity, "v", 0, "log verbosity (0 warn, 1 info, 2 debug)")
	fs.StringVar(&opts.logFormat, "log-format", string(logger.FormatText), "log format (text, json)")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	appLog := logger.New(stderr, logger.Format(opts.logFormat), logger.Level(opts.verbosity))

	if opts.interactive {
		if err := collectManifest(ctx, opts); err != nil {
			return err
		}
		appLog.Info("manifest written", "path", opts.manifest)
	}

	genOpts := []orchestrator.Option{orchestrator.WithLogger(appLog)}
	if opts.templates != "" {
		goRenderer, err := gosource.New(gosource.WithTemplatesDir(opts.templates))
		if err != nil {
			return err
		}
		genOpts = append(genOpts, orchestrator.WithRegistry(render.NewRegistry(snapshot.New(), goRenderer)))
	}

	gen := orchestrator.New(genOpts...)
	out, err := gen.Generate(ctx, orchestrator.Request{
		Source:   request.SourceFromFile(opts.manifest),
		Package:  opts.pkg,
		Renderer: opts.renderer,
		RenderOptions: render.RenderOptions{
			BuildTags:   opts.tags,
			OmitStrings: opts.noStrings,
		},
	})
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := stdout.Write(out)
		return err
	}
	if err := os.WriteFile(opts.output, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	appLog.Info("output written", "path", opts.output, "bytes", len(out))
	return nil
}

func collectManifest(ctx context.Context, opts options) error {
	driver := newDriver()
	if _, err := os.Stat(opts.manifest); err == nil {
		overwrite, err := driver.Confirm(ctx, prompt.ConfirmConfig{
			Message: fmt.Sprintf("%s exists. Overwrite it?", opts.manifest),
		})
		if err != nil {
			return err
		}
		if !overwrite {
			return fmt.Errorf("keep %s: %w", opts.manifest, prompt.ErrAborted)
		}
	}

	requests, err := prompt.Collect(ctx, driver)
	if err != nil {
		return fmt.Errorf("collect requests: %w", err)
	}
	data, err := yaml.Marshal(request.Manifest{Package: opts.pkg, Requests: requests})
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(opts.manifest, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
