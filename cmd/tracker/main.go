package main

//go:generate go build -o=../../bin/tracker

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Yandex-Practicum/go-fitness-tracker/internal/training"
)

// workoutPackage is a raw reading received from tracking device
type workoutPackage struct {
	code string
	data []float64
}

var packages = []workoutPackage{
	{code: "SWM", data: []float64{720, 1, 80, 25, 40}},
	{code: "RUN", data: []float64{15000, 1, 75}},
	{code: "WLK", data: []float64{9000, 1, 75, 180}},
}

func main() {
	if err := run(os.Stdout, packages); err != nil {
		log.Fatalf("unexpected error: %s", err)
	}
}

func run(w io.Writer, packages []workoutPackage) error {
	for _, p := range packages {
		t, err := training.ReadPackage(p.code, p.data)
		if err != nil {
			return fmt.Errorf("cannot read package %q: %w", p.code, err)
		}

		if err := printInfo(w, t); err != nil {
			return fmt.Errorf("cannot print %s report: %w", t.Kind(), err)
		}
	}
	return nil
}

func printInfo(w io.Writer, t training.Training) error {
	_, err := fmt.Fprintln(w, training.Info(t).Message())
	return err
}
