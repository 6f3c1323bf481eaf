// Command psxinfo inspects psx project files.
//
// Usage:
//
//	psxinfo poster.psxp          print the canvas and layer tree
//	psxinfo -json poster.psxp    print manifest.json
//	psxinfo -demo out.psxp       write a sample project
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/psx"
	"github.com/gogpu/psx/project"
)

func main() {
	var (
		asJSON  = flag.Bool("json", false, "print the manifest as JSON")
		demo    = flag.String("demo", "", "write a sample project to this path and exit")
		verbose = flag.Bool("v", false, "log serializer activity to stderr")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: psxinfo [-json] [-v] file%s\n       psxinfo -demo out%s\n",
			project.Extension, project.Extension)
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)

	if *verbose {
		psx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if *demo != "" {
		doc, err := demoDocument()
		if err != nil {
			log.Fatalf("build demo: %v", err)
		}
		if err := project.Save(*demo, doc); err != nil {
			log.Fatalf("save: %v", err)
		}
		log.Printf("Demo saved to %s (%d layers)", *demo, doc.LayerCount())
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	if *asJSON {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatal(err)
		}
		pf, err := project.Unpack(data)
		if err != nil {
			log.Fatalf("%s: %v", path, err)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(pf.Manifest); err != nil {
			log.Fatal(err)
		}
		return
	}

	doc, err := project.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(render(doc))
}
