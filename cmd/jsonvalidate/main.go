// Command jsonvalidate checks a JSON (or, with -y, YAML) document
// against a Draft-04 JSON Schema.
//
// Usage:
//
//	jsonvalidate -s <schema> [-a] [-y] <file>
//
// Flags:
//
//	-s <schema>   schema file to validate against (required)
//	-a            report every violated constraint, not just the first
//	-y            treat <file> as YAML instead of JSON
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	goccyjson "github.com/goccy/go-json"
	goyaml "github.com/goccy/go-yaml"
	"github.com/mattn/go-colorable"

	"github.com/jvcore/jsonschema"
	"github.com/jvcore/jsonschema/jsonvalue"
)

var (
	schemaPath = flag.String("s", "", "schema file to validate against")
	allErrors  = flag.Bool("a", false, "report every violated constraint, not just the first")
	asYAML     = flag.Bool("y", false, "treat the input file as YAML")

	errColor = color.New(color.FgRed, color.Bold)
	stderr   = colorable.NewColorableStderr()
)

func main() {
	flag.Parse()

	args := flag.Args()
	if *schemaPath == "" || len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: jsonvalidate -s <schema> [-a] [-y] <file>")
		os.Exit(1)
	}

	schemaData, err := os.ReadFile(*schemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsonvalidate: %v\n", err)
		os.Exit(1)
	}
	schema, err := jsonschema.Compile(schemaData)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsonvalidate: invalid schema: %v\n", err)
		os.Exit(1)
	}

	instanceData, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsonvalidate: %v\n", err)
		os.Exit(1)
	}
	if *asYAML {
		instanceData, err = yamlToJSON(instanceData)
		if err != nil {
			fmt.Fprintf(os.Stderr, "jsonvalidate: %v\n", err)
			os.Exit(1)
		}
	}

	instance, err := jsonvalue.Parse(instanceData, jsonvalue.RejectDuplicateKeys|jsonvalue.RejectNullCharacters)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsonvalidate: %v\n", err)
		os.Exit(1)
	}

	result := schema.Validate(instance)
	if result.IsValid() {
		os.Exit(0)
	}

	if *allErrors {
		for _, e := range result.AllErrors() {
			errColor.Fprintf(stderr, "%s: %s\n", e.Keyword, e.Error())
		}
	} else if e := result.FirstError(); e != nil {
		errColor.Fprintf(stderr, "%s: %s\n", e.Keyword, e.Error())
	}
	os.Exit(1)
}

// yamlToJSON decodes YAML into a generic value and re-encodes it as
// JSON bytes jsonvalue.Parse can read.
func yamlToJSON(data []byte) ([]byte, error) {
	var v any
	if err := goyaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return goccyjson.Marshal(v)
}
