// Package dat reads the `.dat` planning-problem file format into a
// satplan.Problem, loading an external file straight into the library's
// types before handing off to the solver.
package dat

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/gitrdm/satplan/pkg/satplan"
)

// ReadFile opens path and parses it as a `.dat` file.
func ReadFile(path string) (satplan.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return satplan.Problem{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses a `.dat` document from r: one "I", "G", or "A" directive per
// line, blank lines ignored.
func Read(r io.Reader) (satplan.Problem, error) {
	b := satplan.NewProblemBuilder()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		pl, err := satplan.ParseLine(lineNo, scanner.Text())
		if err != nil {
			return satplan.Problem{}, err
		}
		b.Add(pl)
	}
	if err := scanner.Err(); err != nil {
		return satplan.Problem{}, fmt.Errorf("reading input: %w", err)
	}
	return b.Build(), nil
}
