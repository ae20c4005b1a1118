package almanac

import (
	"bufio"
	"fmt"
	"io"

	"range-remapper/internal/mapping"
)

// Write renders a stage document in almanac text form. Stages without both
// category names are written under their display name, which Parse accepts
// only when it has the "<from>-to-<to>" shape.
func Write(w io.Writer, f *mapping.File) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, seedsPrefix)

	for _, s := range f.Seeds {
		fmt.Fprintf(bw, " %d", uint64(s))
	}

	fmt.Fprintln(bw)

	for i, s := range f.Stages {
		fmt.Fprintf(bw, "\n%s%s\n", s.DisplayName(i), mapSuffix)

		for _, r := range s.Rules {
			fmt.Fprintln(bw, r.Rule().String())
		}
	}

	return bw.Flush()
}
