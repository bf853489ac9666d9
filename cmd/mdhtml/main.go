// Command mdhtml converts Markdown read from stdin into HTML.
//
// Usage:
//
// 	mdhtml [-o FILE] [-engine html|blackfriday] [-ids] [-dump] [-v] < input.md
//
// Output goes to stdout, or atomically replaces FILE when -o is given. Input
// that fails to parse still produces the fallback message as output, but
// exits non-zero after logging the parse error.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/google/renameio"
	"github.com/k0kubun/pp"
	"golang.org/x/net/html"

	"github.com/jcorbin/scanmark/internal/cliutil"
	"github.com/jcorbin/scanmark/markup"
	"github.com/jcorbin/scanmark/markup/bftree"
	"github.com/jcorbin/scanmark/scandown"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			log.Fatalln(err)
		}
		os.Exit(2)
	}
}

type command struct {
	output  string
	engine  string
	opts    markup.Options
	dump    bool
	verbose bool

	log *log.Logger
}

func run(args []string, in io.Reader, out, errOut io.Writer) error {
	var cmd command

	flags := flag.NewFlagSet("mdhtml", flag.ContinueOnError)
	flags.SetOutput(errOut)
	flags.StringVar(&cmd.output, "o", "", "write output to `file` instead of stdout")
	flags.StringVar(&cmd.engine, "engine", "html", "rendering engine: html or blackfriday")
	flags.BoolVar(&cmd.opts.HeadingIDs, "ids", false, "add anchor ids to headings")
	flags.BoolVar(&cmd.dump, "dump", false, "dump the parsed document")
	flags.BoolVar(&cmd.verbose, "v", false, "enable verbose output")
	if err := flags.Parse(args); err != nil {
		return err
	}

	logOut := cliutil.PrefixWriter("> log: ", errOut)
	defer logOut.Close()
	cmd.log = log.New(logOut, "", 0)

	src, err := ioutil.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read error: %w", err)
	}
	return cmd.convert(string(src), out)
}

func (cmd command) convert(src string, out io.Writer) error {
	doc, parseErr := scandown.Parse(src)
	if parseErr == nil {
		if cmd.verbose {
			cmd.log.Printf("parsed %v blocks from %v", len(doc), humanize.Bytes(uint64(len(src))))
			cmd.log.Printf("%+v", doc)
		}
		if cmd.dump {
			pp.Fprintln(cmd.log.Writer(), doc)
		}
	}

	var render func(w io.Writer) error
	switch cmd.engine {
	case "html":
		tree := markup.Fallback()
		if parseErr == nil {
			tree = markup.TranslateWith(doc, cmd.opts)
		}
		render = func(w io.Writer) error { return markup.Render(w, tree) }
	case "blackfriday":
		render = func(w io.Writer) error {
			if parseErr != nil {
				return html.Render(w, markup.Fallback())
			}
			return bftree.Render(w, doc, cmd.opts)
		}
	default:
		return fmt.Errorf("unknown engine %q", cmd.engine)
	}

	n, err := cmd.write(out, render)
	if err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	if cmd.verbose {
		cmd.log.Printf("wrote %v", humanize.Bytes(uint64(n)))
	}

	if parseErr != nil {
		return fmt.Errorf("parse error: %w", parseErr)
	}
	return nil
}

func (cmd command) write(out io.Writer, render func(w io.Writer) error) (int64, error) {
	if cmd.output == "" {
		ew := cliutil.ErrWriter{Writer: out}
		if err := render(&ew); err != nil {
			return ew.N, err
		}
		_, err := io.WriteString(&ew, "\n")
		return ew.N, err
	}

	pf, err := renameio.TempFile("", cmd.output)
	if err != nil {
		return 0, err
	}
	defer pf.Cleanup()

	ew := cliutil.ErrWriter{Writer: pf}
	if err := render(&ew); err != nil {
		return ew.N, err
	}
	if _, err := io.WriteString(&ew, "\n"); err != nil {
		return ew.N, err
	}
	return ew.N, pf.CloseAtomicallyReplace()
}
