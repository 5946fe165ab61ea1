//go:build ignore

// Package main generates a synthetic JSONL corpus for benchmarking.
// Usage: go run scripts/generate-corpus.go -passages 1000 -output testdata/bench/corpus.jsonl
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

var (
	numPassages = flag.Int("passages", 1000, "Number of passages to generate")
	outputPath  = flag.String("output", "testdata/bench/corpus.jsonl", "Output JSONL file")
	seed        = flag.Int64("seed", 42, "Random seed for reproducibility")
)

var topics = []string{
	"admissions", "scholarships", "enrollment", "tuition", "housing",
	"registration", "transcripts", "orientation", "advising", "financial aid",
	"library services", "campus security", "health services", "career center",
	"study abroad", "graduate programs", "research grants", "internships",
}

var templates = []string{
	"The %s office handles %s requests for all students. Processing %s takes %d business days.",
	"Information about %s is available through the %s portal. Deadlines for %s fall %d weeks before each term.",
	"Students interested in %s should contact the %s department. Eligibility for %s is reviewed every %d months.",
	"The university provides %s support through its %s program. Applications for %s open %d weeks into the semester.",
	"Questions about %s can be directed to the %s desk. Processing %s typically takes %d days.",
}

func main() {
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	if err := os.MkdirAll(filepath.Dir(*outputPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Create(*outputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)

	for i := 0; i < *numPassages; i++ {
		passage := generatePassage(rng)
		if err := enc.Encode(map[string]string{"text": passage}); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %d passages in %s\n", *numPassages, *outputPath)
}

func generatePassage(rng *rand.Rand) string {
	topic := topics[rng.Intn(len(topics))]
	related := topics[rng.Intn(len(topics))]
	tmpl := templates[rng.Intn(len(templates))]

	var sb strings.Builder
	// Two to four sentences per passage keeps document lengths uneven,
	// which matters for length-normalized lexical scoring.
	n := 2 + rng.Intn(3)
	for s := 0; s < n; s++ {
		if s > 0 {
			sb.WriteString(" ")
			tmpl = templates[rng.Intn(len(templates))]
			topic = topics[rng.Intn(len(topics))]
			related = topics[rng.Intn(len(topics))]
		}
		sb.WriteString(fmt.Sprintf(tmpl, topic, related, topic, 1+rng.Intn(10)))
	}
	return sb.String()
}
