// nanbox CLI - boxes sample values and prints how they classify
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/chazu/nanbox/manifest"
)

func main() {
	verbose := flag.Bool("v", false, "Verbose output")
	configPath := flag.String("config", "", "Path to a nanbox.toml (default: search upward from the current directory)")
	format := flag.String("format", "", "Output format: text, hex or cbor (overrides the manifest)")
	strict := flag.Bool("strict", false, "Reject values that do not fit the 48-bit payload")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: nanbox [options]\n\n")
		fmt.Fprintf(os.Stderr, "Boxes each configured sample value, checks its classification and prints it.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  nanbox                       # Built-in samples, text output\n")
		fmt.Fprintf(os.Stderr, "  nanbox -format hex           # Raw bits and 9-byte encodings\n")
		fmt.Fprintf(os.Stderr, "  nanbox -config ./nanbox.toml # Samples from a manifest\n")
	}
	flag.Parse()

	if *verbose {
		commonlog.Configure(2, nil)
	} else {
		commonlog.Configure(0, nil)
	}
	log := commonlog.GetLogger("nanbox")

	m, err := loadManifest(*configPath, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *format != "" {
		m.Output.Format = *format
	}
	if *strict {
		m.Output.Strict = true
	}
	if err := m.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(os.Stdout, m, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadManifest reads the manifest at path, or searches upward from the
// working directory when path is empty. Without any manifest the built-in
// samples are used.
func loadManifest(path string, log commonlog.Logger) (*manifest.Manifest, error) {
	if path != "" {
		log.Infof("loading manifest %s", path)
		return manifest.LoadFile(path)
	}

	m, err := manifest.FindAndLoad(".")
	if err != nil {
		return nil, err
	}
	if m == nil {
		log.Debug("no manifest found, using built-in samples")
		return manifest.Default(), nil
	}
	log.Infof("loaded manifest %s", m.Path)
	return m, nil
}
