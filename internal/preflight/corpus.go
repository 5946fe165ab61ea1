package preflight

import (
	"fmt"
	"os"

	"github.com/retriva/retriva/internal/corpus"
)

// CheckCorpus verifies the corpus file exists and parses.
func (c *Checker) CheckCorpus(path string) CheckResult {
	result := CheckResult{
		Name:     "corpus",
		Required: true,
	}

	info, err := os.Stat(path)
	if err != nil {
		result.Status = StatusFail
		result.Message = fmt.Sprintf("not found: %s", path)
		return result
	}
	if info.IsDir() {
		result.Status = StatusFail
		result.Message = fmt.Sprintf("%s is a directory", path)
		return result
	}

	corp, err := corpus.Load(path)
	if err != nil {
		result.Status = StatusFail
		result.Message = fmt.Sprintf("cannot parse: %v", err)
		return result
	}

	result.Status = StatusPass
	result.Message = fmt.Sprintf("%d passages", corp.Len())
	result.Details = fmt.Sprintf("Corpus file: %s", path)
	return result
}
