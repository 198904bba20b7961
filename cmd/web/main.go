package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/bitcloud2/pvpoke-sub001/internal/web"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port to listen on")
	rosterFile := flag.String("roster", "", "path to roster YAML file (default: built-in roster)")
	flag.Parse()

	srv, err := web.NewServer(*rosterFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("pvpsim API listening on http://localhost:%d", *port)
	if err := srv.ListenAndServe(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
