// Command levelgen generates the per-level convenience methods of the
// structlog package from a declarative list of level names.
//
//	levelgen --out levels_gen.go --levels Verbose,Debug,Information,Warning,Error,Fatal
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"regexp"
	"text/template"

	"github.com/spf13/cobra"
)

var identifier = regexp.MustCompile(`^\*?[A-Za-z_][A-Za-z0-9_]*$`)

var defaultLevels = []string{"Verbose", "Debug", "Information", "Warning", "Error", "Fatal"}

var defaultReceivers = []string{"*Service", "*contextLogger", "noopLogger"}

var source = template.Must(template.New("levels").Parse(`// Code generated by levelgen; DO NOT EDIT.

package {{.Package}}

import "context"

// LevelWriter has one method per level, each with Err and Ctx variants.
type LevelWriter interface {
{{- range .Levels}}
	{{.}}(template string, values ...any)
	{{.}}Err(err error, template string, values ...any)
	{{.}}Ctx(ctx context.Context, template string, values ...any)
{{- end}}
}
{{range $r := .Receivers}}{{range $l := $.Levels}}
// {{$l}} writes a {{$l}} event.
func (l {{$r}}) {{$l}}(template string, values ...any) {
	l.Write(Level{{$l}}, nil, template, values...)
}

// {{$l}}Err writes a {{$l}} event with err attached.
func (l {{$r}}) {{$l}}Err(err error, template string, values ...any) {
	l.Write(Level{{$l}}, err, template, values...)
}

// {{$l}}Ctx writes a {{$l}} event correlated with the span in ctx.
func (l {{$r}}) {{$l}}Ctx(ctx context.Context, template string, values ...any) {
	l.WriteContext(ctx, Level{{$l}}, nil, template, values...)
}
{{end}}{{end}}`))

type options struct {
	pkg       string
	out       string
	levels    []string
	receivers []string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:          "levelgen",
		Short:        "Generate per-level logging methods",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := generate(opts.pkg, opts.levels, opts.receivers)
			if err != nil {
				return err
			}
			if opts.out == "" || opts.out == "-" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			return os.WriteFile(opts.out, src, 0o644)
		},
	}
	cmd.Flags().StringVar(&opts.pkg, "package", "structlog", "package name of the generated file")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file (stdout when empty)")
	cmd.Flags().StringSliceVar(&opts.levels, "levels", defaultLevels, "level names in ascending order")
	cmd.Flags().StringSliceVar(&opts.receivers, "receivers", defaultReceivers, "receiver types to generate methods for")
	return cmd
}

// generate renders and gofmts the level methods.
func generate(pkg string, levels, receivers []string) ([]byte, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("no levels given")
	}
	if !identifier.MatchString(pkg) || pkg[0] == '*' {
		return nil, fmt.Errorf("%q is not a package name", pkg)
	}
	for _, name := range append(append([]string(nil), levels...), receivers...) {
		if !identifier.MatchString(name) {
			return nil, fmt.Errorf("%q is not a Go identifier", name)
		}
	}

	var buf bytes.Buffer
	err := source.Execute(&buf, struct {
		Package   string
		Levels    []string
		Receivers []string
	}{pkg, levels, receivers})
	if err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}
