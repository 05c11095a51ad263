package bench

import (
	"fmt"
	"io"
	"text/tabwriter"

	yaml "gopkg.in/yaml.v2"
)

func WriteText(w io.Writer, results []*Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VARIANT\tITERATIONS\tROUNDS\tBEST\tMEAN\tNS/OP")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%v\t%v\t%.3f\n",
			r.Variant, r.Iterations, r.Rounds, r.Best, r.Mean, r.NsPerOp)
	}
	return tw.Flush()
}

type report struct {
	Results []*Result `yaml:"results"`
}

func WriteYAML(w io.Writer, results []*Result) error {
	out, err := yaml.Marshal(report{Results: results})
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
