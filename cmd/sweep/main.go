package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/erlynorbel/chemical-process-simulator/internal/calc/export"
	"github.com/erlynorbel/chemical-process-simulator/internal/calc/sweep"
	"gopkg.in/cheggaaa/pb.v1"
)

func main() {
	from := flag.Float64("from", 50, "first reactor feed, kmol/hr")
	to := flag.Float64("to", 250, "last reactor feed, kmol/hr")
	step := flag.Float64("step", 10, "feed increment, kmol/hr")
	out := flag.String("out", "feed-sweep.xlsx", "output workbook")
	flag.Parse()

	in := sweep.Input{From: *from, To: *to, Step: *step}
	feeds, err := in.Points()
	if err != nil {
		log.Fatal(err)
	}

	bar := pb.StartNew(len(feeds))
	bar.ShowTimeLeft = false
	res, err := sweep.Calculate(in, func(sweep.Point) { bar.Increment() })
	if err != nil {
		log.Fatal(err)
	}
	bar.FinishPrint("\tSweep Complete")

	f, err := export.SweepWorkbook(res)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := f.SaveAs(*out); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d points, acetone = %.5f * feed + %.5f (R² %.4f)\n",
		len(res.Points), res.Slope, res.Intercept, res.RSquared)
	fmt.Println("written to", *out)
}
