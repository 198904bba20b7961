package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	pvpmcp "github.com/bitcloud2/pvpoke-sub001/internal/mcp"
)

func main() {
	rosterFile := flag.String("roster", "", "path to roster YAML file (default: built-in roster)")
	flag.Parse()

	if *rosterFile != "" {
		if err := pvpmcp.SetRosterFile(*rosterFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	s := server.NewMCPServer("pvpsim", "1.0.0")
	pvpmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
