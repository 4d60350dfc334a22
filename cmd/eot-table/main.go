package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/chrissnell/sundial/pkg/sundial"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func main() {
	year := flag.Int("year", time.Now().Year(), "Calendar year to tabulate")
	flag.Parse()

	if *year < 1 {
		fmt.Fprintf(os.Stderr, "Error: invalid year %d\n", *year)
		os.Exit(1)
	}

	start := time.Date(*year, time.January, 1, 12, 0, 0, 0, time.UTC)
	days := start.AddDate(1, 0, 0).Sub(start).Hours() / 24

	minutes := make([]float64, 0, int(days))
	fmt.Printf("Equation of time for %d\n", *year)
	fmt.Printf("%4s  %-10s  %8s  %s\n", "Day", "Date", "Minutes", "Correction")
	for d := 1; d <= int(days); d++ {
		date := start.AddDate(0, 0, d-1)
		eot := sundial.EquationOfTime(d)
		minutes = append(minutes, eot)
		fmt.Printf("%4d  %-10s  %+8.2f  %s\n", d, date.Format("2006-01-02"), eot, sundial.Correction(eot))
	}

	minDay := floats.MinIdx(minutes) + 1
	maxDay := floats.MaxIdx(minutes) + 1
	fmt.Println()
	fmt.Printf("  Minimum:  %+.2f min (day %d, %s)\n", minutes[minDay-1], minDay, start.AddDate(0, 0, minDay-1).Format("Jan 2"))
	fmt.Printf("  Maximum:  %+.2f min (day %d, %s)\n", minutes[maxDay-1], maxDay, start.AddDate(0, 0, maxDay-1).Format("Jan 2"))
	fmt.Printf("  Mean:     %+.2f min\n", stat.Mean(minutes, nil))
	fmt.Printf("  Std dev:  %.2f min\n", stat.StdDev(minutes, nil))
}
