// Command pocket-calc drives the calculator engine without a window. Keypad
// labels are read from the arguments, or one per line from stdin when there
// are none, and the display is printed after each of them.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ytget/pocket-calc/internal/calc"
)

func main() {
	trace := flag.Bool("trace", false, "print every label with the display it produced")
	strict := flag.Bool("strict", false, "exit with an error on labels that are not keypad labels")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("pocket-calc: ")

	var labels []string
	if flag.NArg() > 0 {
		labels = flag.Args()
	} else {
		var err error
		labels, err = readLabels(os.Stdin)
		if err != nil {
			log.Fatalf("failed to read input: %v", err)
		}
	}

	display, err := run(calc.NewEngine(), labels, os.Stdout, *trace, *strict)
	if err != nil {
		log.Fatal(err)
	}
	if !*trace {
		fmt.Println(display)
	}
}

// run applies labels to the engine and returns the final display
func run(engine *calc.Engine, labels []string, out io.Writer, trace, strict bool) (string, error) {
	for _, label := range labels {
		if !engine.HandleInput(label) {
			if strict {
				return engine.Display(), fmt.Errorf("unknown keypad label %q", label)
			}
			log.Printf("ignored label %q", label)
			continue
		}
		if trace {
			fmt.Fprintf(out, "%-4s %s\n", label, engine.Display())
		}
	}
	return engine.Display(), nil
}

// readLabels reads one label per line, skipping blank lines
func readLabels(r io.Reader) ([]string, error) {
	var labels []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if label := strings.TrimSpace(scanner.Text()); label != "" {
			labels = append(labels, label)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan labels: %w", err)
	}
	return labels, nil
}
