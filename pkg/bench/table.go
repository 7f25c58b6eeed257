package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/logrusorgru/aurora"
)

// WriteTable prints average times, one row per point count. The fastest
// algorithm in each row is highlighted when au has colors enabled.
func (r *Result) WriteTable(w io.Writer, au aurora.Aurora) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprint(tw, au.Bold("points"))
	for _, alg := range r.Algorithms {
		fmt.Fprintf(tw, "\t%v", au.Bold(alg.String()))
	}
	fmt.Fprintln(tw)

	for i, n := range r.PointCounts {
		fastest := time.Duration(-1)
		for _, alg := range r.Algorithms {
			if d := r.Times[alg][i]; fastest < 0 || d < fastest {
				fastest = d
			}
		}

		fmt.Fprintf(tw, "%d", n)
		for _, alg := range r.Algorithms {
			d := r.Times[alg][i]
			if d == fastest {
				fmt.Fprintf(tw, "\t%v", au.Green(d))
			} else {
				fmt.Fprintf(tw, "\t%v", d)
			}
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
