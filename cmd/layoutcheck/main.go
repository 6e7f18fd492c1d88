// layoutcheck loads a rotary layout file, validates it, and prints the
// resolved navigation graph: where each area's entry focus lands and where
// every nudge direction leads. Useful for checking a layout before wiring
// it into a host UI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"rotary"
)

func main() {
	os.Exit(run())
}

func run() int {
	layoutPath := flag.String("layout", "layout.toml", "path to the layout file")
	flag.Parse()

	eng, err := rotary.LoadLayout(*layoutPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "layoutcheck: %v\n", err)
		return 1
	}

	reg := eng.Registry()
	problems := 0
	for _, a := range reg.Areas() {
		fmt.Printf("area %-14s bounds=%v wrap=%v\n", a.ID, a.Bounds, a.WrapAround)

		entry, err := rotary.FirstFocus(a, rotary.ModeDefault, nil)
		if err != nil {
			fmt.Printf("  entry: %v\n", err)
			problems++
		} else {
			fmt.Printf("  entry: %s\n", entry.ID)
		}

		for _, d := range rotary.Directions {
			el, target, err := rotary.ResolveNudge(reg, a, "", d)
			var noAdj rotary.NoAdjacentAreaError
			switch {
			case el != nil:
				fmt.Printf("  %-6s-> shortcut %s\n", d, el.ID)
			case target != nil:
				fmt.Printf("  %-6s-> %s\n", d, target.ID)
			case errors.As(err, &noAdj):
				fmt.Printf("  %-6s-> (none)\n", d)
			default:
				fmt.Printf("  %-6s-> %v\n", d, err)
				problems++
			}
		}
	}

	if problems > 0 {
		fmt.Fprintf(os.Stderr, "layoutcheck: %d problem(s)\n", problems)
		return 1
	}
	return 0
}
