// Package dimacs writes a satplan.CNF out in the standard DIMACS CNF text
// format: a block of "c" comment lines, a "p cnf <vars> <clauses>" header,
// then one line per clause, literals space-separated and terminated by a
// trailing 0.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/uuid"

	"github.com/gitrdm/satplan/pkg/satplan"
)

// WriteFile creates (or truncates) path and writes cnf to it.
func WriteFile(path string, cnf *satplan.CNF, horizon int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(f, cnf, horizon)
}

// Write emits cnf to w. Every call stamps the comment block with a fresh
// UUID so two runs over the same problem never produce byte-identical
// output, which is useful when archiving DIMACS files from repeated
// horizon-search attempts.
func Write(w io.Writer, cnf *satplan.CNF, horizon int) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "c satplan run %s\n", uuid.New())
	fmt.Fprintf(bw, "c horizon %d\n", horizon)
	fmt.Fprintf(bw, "p cnf %d %d\n", cnf.Vars.Len(), len(cnf.Clauses))

	for _, c := range cnf.Clauses {
		for _, lit := range c {
			bw.WriteString(strconv.Itoa(lit))
			bw.WriteByte(' ')
		}
		bw.WriteString("0\n")
	}
	return bw.Flush()
}
