// Command jsonfmt reads a JSON document and re-emits it in the
// library's canonical text form.
//
// Usage:
//
//	jsonfmt [flags] <file>
//
// Flags:
//
//	-c          ANSI color output
//	-i          indent with newlines and spaces
//	-s          escape forward solidus (/) in strings
//	-o <file>   write output to file instead of stdout
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/jvcore/jsonschema/jsonvalue"
)

var (
	color   = flag.Bool("c", false, "ANSI color output")
	indent  = flag.Bool("i", false, "indent with newlines and spaces")
	solidus = flag.Bool("s", false, "escape forward solidus (/) in strings")
	output  = flag.String("o", "", "write output to file instead of stdout")
)

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: jsonfmt [-c] [-i] [-s] [-o file] <file>")
		os.Exit(1)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		log.Fatalf("jsonfmt: %v", err)
	}

	value, err := jsonvalue.Parse(data, jsonvalue.ParseDefault)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsonfmt: %v\n", err)
		os.Exit(1)
	}

	var opts jsonvalue.FormatOptions
	if *indent {
		opts |= jsonvalue.Indent
	}
	if *solidus {
		opts |= jsonvalue.EscapeSolidus
	}
	if *color || (*output == "" && isatty.IsTerminal(os.Stdout.Fd())) {
		opts |= jsonvalue.ColorANSI
	}

	out, err := jsonvalue.Format(value, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsonfmt: %v\n", err)
		os.Exit(1)
	}
	out = append(out, '\n')

	if *output != "" {
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			log.Fatalf("jsonfmt: %v", err)
		}
		return
	}
	os.Stdout.Write(out)
}
