// Command circuitsim loads a voxel container or a persisted schema,
// verifies it, and runs the resulting circuit for a fixed number of
// ticks, printing the final wire states.
//
// What & Why:
//
//	Grounded on original_source's cli.rs: extension-based dispatch (a
//	raw voxel container compiles through the full pipeline; a `.schema`
//	file decodes directly) followed by a verify-then-build flow. Exit
//	codes follow spec.md §6/§7: 2=open, 3=read, 4=deserialize, 5=verify.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hashalon/logic-circuit/connectivity"
	"github.com/hashalon/logic-circuit/importer"
	"github.com/hashalon/logic-circuit/label"
	"github.com/hashalon/logic-circuit/morph"
	"github.com/hashalon/logic-circuit/schema"
	"github.com/hashalon/logic-circuit/voxelgrid"
)

const (
	exitOK = iota
	_
	exitOpen
	exitRead
	exitDeserialize
	exitVerify
)

func main() {
	in := flag.String("in", "", "path to a voxel container (.xraw) or a persisted schema (.schema)")
	ticks := flag.Int("ticks", 10, "number of Tock/Tick steps to run")
	flag.Parse()

	if *in == "" {
		log.Fatal("circuitsim: -in is required")
	}

	os.Exit(run(*in, *ticks))
}

func run(path string, ticks int) int {
	s, code := load(path)
	if s == nil {
		return code
	}

	if errs := schema.Verify(s); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		return exitVerify
	}
	log.Printf("schema verified: %d wires, %d components, %d models", len(s.Wires), len(s.Components), len(s.Models))

	sim, err := newSimulator(s)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitVerify
	}

	sim.RunTicks(ticks, nil)
	for i, w := range sim.Wires {
		fmt.Printf("wire %d: channel=%d prev=%#04x next=%#04x\n", i, w.Channel, w.Prev, w.Next)
	}

	return exitOK
}

func load(path string) (*schema.Schema, int) {
	switch filepath.Ext(path) {
	case ".schema", ".bin":
		f, err := os.Open(path)
		if err != nil {
			log.Print(err)
			return nil, exitOpen
		}
		defer f.Close()

		s, err := schema.Decode(f)
		if err != nil {
			log.Print(err)
			return nil, exitDeserialize
		}
		return s, exitOK
	default:
		result, err := importer.Open(path)
		if err != nil {
			log.Print(err)
			var loadErr *importer.LoadErr
			if errors.As(err, &loadErr) && loadErr.Kind == importer.ErrOpen {
				return nil, exitOpen
			}
			return nil, exitRead
		}
		return compile(result), exitOK
	}
}

// compile runs the full matrix->schema pipeline for whichever indexed
// matrix kind the importer produced. Direct (4-channel voxel)
// containers are not classifiable by the reference index-based
// classifier and are reported as empty schemas.
func compile(result *importer.Result) *schema.Schema {
	switch result.Kind {
	case importer.Indexed8:
		return compileIndexed(result.Matrix8, func(v uint8) bool { return v == 0 })
	case importer.Indexed16:
		return compileIndexed(result.Matrix16, func(v uint16) bool { return v == 0xffff })
	default:
		return &schema.Schema{}
	}
}

func compileIndexed[T uint8 | uint16](m *voxelgrid.Matrix[T], isEmpty func(T) bool) *schema.Schema {
	labels, values := label.Label6(m, isEmpty)
	k := label.Count(values)
	boxes := morph.BoundingBoxes(labels, k)
	graph := connectivity.Build(labels, k, connectivity.DefaultThreshold)
	return schema.Build(labels, values, boxes, graph, schema.DefaultClassifier[T])
}
