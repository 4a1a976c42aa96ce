package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/themizzi/jupitertoys/internal/catalog"
	"github.com/themizzi/jupitertoys/internal/suite"
	"github.com/themizzi/jupitertoys/internal/urls"
)

// PrintProducts writes the catalog as an aligned table
func PrintProducts(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE")
	for _, p := range catalog.All() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.ID, p.Name, p.Price)
	}
	return tw.Flush()
}

// PrintPages writes every page with its URL under baseURL
func PrintPages(w io.Writer, baseURL string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PAGE\tURL")
	for _, page := range urls.Pages() {
		url, err := urls.Resolve(baseURL, page)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\n", page, url)
	}
	return tw.Flush()
}

// PrintScenarios writes the scenario names and descriptions
func PrintScenarios(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tDESCRIPTION")
	for _, s := range suite.Scenarios() {
		fmt.Fprintf(tw, "%s\t%s\n", s.Name, s.Description)
	}
	return tw.Flush()
}
