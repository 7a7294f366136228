package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/rpeart73/clockwork-elite/internal/extract"
	"github.com/rpeart73/clockwork-elite/internal/notes"
	"github.com/rpeart73/clockwork-elite/internal/poc"
	"github.com/rpeart73/clockwork-elite/internal/sanitize"
)

func main() {
	// Parse command line flags
	inPath := flag.String("in", "", "Path to a text file with the pasted thread (default: stdin)")
	client := flag.String("client", "", "Client name for the note header")
	staff := flag.String("staff", "", "Staff member recording the note")
	flag.Parse()

	var raw []byte
	var err error
	if *inPath != "" {
		raw, err = os.ReadFile(*inPath)
	} else {
		raw, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}
	if len(raw) == 0 {
		fmt.Println("Usage:")
		fmt.Println("  Generate from file:  notegen -in /path/to/thread.txt -client \"A. Client\"")
		fmt.Println("  Generate from stdin: notegen < thread.txt")
		os.Exit(1)
	}

	extractor := extract.New(zerolog.Nop())

	clean := sanitize.Clean(string(raw))
	now := time.Now()
	extracted := extractor.Extract(clean, now)
	contacts := poc.Consolidate(extracted, clean, extractor.HasOverride(clean))

	note, err := notes.Render(contacts, *client, *staff)
	if err != nil {
		log.Fatalf("Failed to render note: %v", err)
	}

	fmt.Println(note)
}
