package corpus

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// jsonlChunk is the on-disk shape of one JSONL corpus line.
type jsonlChunk struct {
	Text string `json:"text"`
}

// Load reads a corpus from path. The format is chosen by extension:
// .jsonl files contain one {"text": ...} object per line, everything else
// is treated as plain text split into chunks on blank lines.
func Load(path string) (*Corpus, error) {
	if filepath.Ext(path) == ".jsonl" {
		return LoadJSONL(path)
	}
	return LoadText(path)
}

// LoadJSONL reads one chunk per line from a JSONL file.
// Blank lines are skipped; lines with empty text are rejected.
func LoadJSONL(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	var texts []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var c jsonlChunk
		if err := json.Unmarshal([]byte(line), &c); err != nil {
			return nil, fmt.Errorf("parse corpus line %d: %w", lineNo, err)
		}
		if strings.TrimSpace(c.Text) == "" {
			return nil, fmt.Errorf("corpus line %d: empty text", lineNo)
		}
		texts = append(texts, c.Text)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	if len(texts) == 0 {
		return nil, fmt.Errorf("corpus %s contains no chunks", path)
	}
	return New(texts), nil
}

// LoadText reads a plain-text file and splits it into chunks on blank lines.
func LoadText(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}

	var texts []string
	for _, block := range strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n\n") {
		block = strings.TrimSpace(block)
		if block != "" {
			texts = append(texts, block)
		}
	}
	if len(texts) == 0 {
		return nil, fmt.Errorf("corpus %s contains no chunks", path)
	}
	return New(texts), nil
}
