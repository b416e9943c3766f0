// Command countries checks a country dataset and lists what it contains.
//
// Usage:
//
//	go run ./cmd/countries [-data countries.json] [-list]
//
// Without -data the bundled dataset is checked. The exit status is non-zero
// when a record is invalid or two records share a code or name.
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/tatianab/worldle/internal/directory"
	"github.com/tatianab/worldle/internal/models"
)

func main() {
	dataPath := flag.String("data", "", "dataset to check (JSON or YAML); empty for the bundled one")
	list := flag.Bool("list", false, "print every country")
	flag.Parse()

	countries, err := models.LoadCountries(*dataPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dir, err := directory.New(countries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *list {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CODE\tNAME\tLAT\tLON\tGEOHASH\tPOPULATION\tAREA")
		for _, c := range dir.Countries() {
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%s\t%d\t%.0f\n",
				c.Code, c.Name, c.Latitude, c.Longitude, c.Geohash(), c.Population, c.Area)
		}
		w.Flush()
	}

	fmt.Printf("%d countries OK.\n", dir.Len())
}
