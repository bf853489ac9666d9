// Command scanex dumps the Markdown block structure scanned from stdin: one
// numbered entry per block, with its parsed form and raw token bytes.
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jcorbin/scanmark/internal/cliutil"
	"github.com/jcorbin/scanmark/scandown"
)

func main() {
	var verbose bool
	flag.BoolVar(&verbose, "v", false, "enable verbose output")
	flag.Parse()

	if err := scanex(os.Stdin, os.Stdout, verbose); err != nil {
		fmt.Printf("# main scan error\n%T: %v\n", err, err)
		os.Exit(1)
	}
}

func scanex(in io.Reader, to io.Writer, verbose bool) error {
	out := &cliutil.ErrWriter{Writer: to}

	logOut := cliutil.PrefixWriter("> log: ", out)
	defer logOut.Close()
	log.SetOutput(logOut)
	log.SetFlags(0)

	var blocks scandown.BlockScanner
	sc := bufio.NewScanner(in)
	sc.Buffer(nil, scandown.MaxBlockSize)
	sc.Split(blocks.Scan)

	for n := 1; out.Err == nil && sc.Scan(); n++ {
		width, _ := fmt.Fprintf(out, "%v. ", n)
		itemOut := cliutil.PrefixWriter(strings.Repeat(" ", width), out)

		fmt.Fprintf(out, "line %v: %v\n", blocks.Line(), blocks.Block())
		if verbose {
			fmt.Fprintf(itemOut, "%+v\n", blocks.Block())
			if token := sc.Bytes(); len(token) > 0 {
				io.WriteString(itemOut, "```hexdump\n")
				dumper := hex.Dumper(itemOut)
				dumper.Write(token)
				dumper.Close()
				io.WriteString(itemOut, "```\n")
			}
		}
		itemOut.Close()
	}
	if out.Err != nil {
		log.Fatalf("write error: %v", out.Err)
	}
	return sc.Err()
}
