package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/zerfoo/gigagrad/graph"
	"github.com/zerfoo/gigagrad/numeric"
)

// DumpCommand builds a small demonstration graph and prints every node's
// kind, shape and attributes as JSON, the way the teacher framework's CLI
// exposes GetNodeMetadata for inspection.
type DumpCommand struct{}

// NewDumpCommand creates a new dump command.
func NewDumpCommand() *DumpCommand { return &DumpCommand{} }

// Name implements Command.Name.
func (c *DumpCommand) Name() string { return "dump" }

// Description implements Command.Description.
func (c *DumpCommand) Description() string {
	return "Build a demonstration graph and print its node metadata as JSON"
}

// Usage implements Command.Usage.
func (c *DumpCommand) Usage() string {
	return `dump

Build a small tensor-expression graph (two inputs, a matmul and a
sigmoid) and print every node's kind, shape and attributes as JSON.`
}

type nodeMetadata struct {
	Index      int                    `json:"index"`
	Kind       string                 `json:"kind"`
	OpName     string                 `json:"op_name"`
	Shape      []int                  `json:"shape"`
	Strides    []int                  `json:"strides"`
	Attributes map[string]interface{} `json:"attributes"`
}

// Run implements Command.Run.
func (c *DumpCommand) Run(_ context.Context, _ []string) error {
	g := graph.New[float32](numeric.Float32Scalars{})

	x := g.AddInput([]int{4, 3}, nil)
	w := g.AddWeight([]int{3, 2}, nil)

	product, err := g.MatMul(x, w)
	if err != nil {
		return fmt.Errorf("building graph: %w", err)
	}

	_ = g.Sigmoid(product)

	metadata := make([]nodeMetadata, 0, len(g.Nodes()))
	for _, h := range g.Nodes() {
		metadata = append(metadata, nodeMetadata{
			Index:      h.Index(),
			Kind:       h.Kind().String(),
			OpName:     h.OpName(),
			Shape:      h.Shape(),
			Strides:    h.Strides(),
			Attributes: h.Attributes(),
		})
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(metadata)
}
