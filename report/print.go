package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"movie_listings/model"
)

// Print renders the report as a fixed-width table, one indented line per
// movie under its genre.
func Print(w io.Writer, reports []model.GenreReport) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GENRE\tMOVIES")

	for _, entry := range reports {
		fmt.Fprintf(tw, "%s\t%d\n", entry.Genre, entry.MovieCount)
		for _, movie := range entry.Movies {
			year := movie.ReleaseYear
			if year == "" {
				year = "----"
			}
			fmt.Fprintf(tw, "  %s (%s)\t%s\n", movie.Title, year, movie.Source)
		}
	}

	tw.Flush()
}
