// Command graphdump builds a small demonstration tensor-expression graph
// and prints its node metadata as JSON.
package main

import (
	"context"
	"log"
	"os"

	"github.com/zerfoo/gigagrad/cmd/cli"
)

func main() {
	ctx := context.Background()

	cliApp := cli.NewCLI()
	cliApp.RegisterCommand(cli.NewDumpCommand())

	if err := cliApp.Run(ctx, os.Args[1:]); err != nil {
		log.Printf("graphdump execution failed: %v", err)
		os.Exit(1)
	}
}
