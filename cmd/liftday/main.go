package main

import (
	"fmt"
	"os"

	"github.com/kmorrow/liftday/internal/plan"
	"github.com/kmorrow/liftday/internal/progression"
	"github.com/kmorrow/liftday/internal/report"
	"github.com/kmorrow/liftday/internal/schedule"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: liftday YYYY-MM-DD")
		os.Exit(1)
	}

	date, err := schedule.ParseDate(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Invalid date format. Use YYYY-MM-DD.")
		os.Exit(1)
	}

	program, err := plan.Default()
	if err != nil {
		fmt.Fprintf(os.Stderr, "built-in program is invalid: %v\n", err)
		os.Exit(1)
	}

	day := report.Build(program, schedule.Default(), progression.Default(), date)
	fmt.Print(day.Text())
}
