package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/shiftwatch/shiftwatch/internal/config"
	"github.com/shiftwatch/shiftwatch/internal/cpd/bayesian"
	"github.com/shiftwatch/shiftwatch/internal/scrubber"
	"github.com/shiftwatch/shiftwatch/internal/solver"
	"github.com/shiftwatch/shiftwatch/internal/source"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to configuration file (optional)")
	input := flag.String("input", "", "Input CSV file with one value per row (- for stdin)")
	column := flag.Int("column", 0, "Zero-based column index holding the observed value")
	mode := flag.String("mode", "online", "Detection mode: online or batch")
	windowLength := flag.Int("window", 0, "Batch mode: scrubber window length (0 = whole stream)")
	shiftFactor := flag.Float64("shift", 1.0, "Batch mode: window shift factor in (0, 1]")
	expected := flag.String("expected", "", "Comma-separated reference change points (optional)")

	flag.Parse()

	if *input == "" {
		log.Fatal("Error: -input parameter is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v\n", err)
	}

	values, err := readValues(*input, *column)
	if err != nil {
		log.Fatalf("Error reading input: %v\n", err)
	}
	if len(values) == 0 {
		log.Fatal("Error: input contains no values")
	}

	expectedPoints, err := parseExpected(*expected)
	if err != nil {
		log.Fatalf("Error parsing -expected: %v\n", err)
	}

	var result *solver.Result
	switch *mode {
	case "online":
		algorithm, err := bayesian.NewOnlineFromConfig(cfg.Detection)
		if err != nil {
			log.Fatalf("Error building detector: %v\n", err)
		}
		s := solver.NewOnline(source.NewSliceProvider(values), algorithm)
		s.Expected = expectedPoints
		result, err = s.Run()
		if err != nil {
			log.Fatalf("Error during detection: %v\n", err)
		}
	case "batch":
		algorithm, err := bayesian.NewBatchFromConfig(cfg.Detection)
		if err != nil {
			log.Fatalf("Error building detector: %v\n", err)
		}
		var scr scrubber.Scrubber
		if *windowLength > 0 {
			scr, err = scrubber.NewLinearScrubber(source.NewSliceProvider(values), *windowLength, *shiftFactor)
			if err != nil {
				log.Fatalf("Error building scrubber: %v\n", err)
			}
		} else {
			scr = scrubber.NewFullScrubber(source.NewSliceProvider(values))
		}
		s := solver.New(scr, algorithm)
		s.Expected = expectedPoints
		result, err = s.Run()
		if err != nil {
			log.Fatalf("Error during detection: %v\n", err)
		}
	default:
		log.Fatalf("Error: unknown mode %q (expected online or batch)\n", *mode)
	}

	fmt.Println(result.String())
	if len(expectedPoints) > 0 {
		diff, err := result.Diff()
		if err != nil {
			log.Fatalf("Error computing diff: %v\n", err)
		}
		fmt.Printf("Difference from expected: %d\n", diff)
	}
	fmt.Printf("Samples: %d, elapsed: %s\n", len(values), result.Elapsed)
}

func readValues(path string, column int) ([]float64, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var values []float64
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if column >= len(record) {
			return nil, fmt.Errorf("line %d has %d columns, need column %d", line, len(record), column)
		}
		field := strings.TrimSpace(record[column])
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			// Tolerate a single header row
			if line == 1 {
				continue
			}
			return nil, fmt.Errorf("line %d: invalid value %q", line, field)
		}
		values = append(values, value)
	}
	return values, nil
}

func parseExpected(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	points := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		points = append(points, n)
	}
	return points, nil
}
