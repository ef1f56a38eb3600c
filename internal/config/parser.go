package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	checkpipeerrors "github.com/mlavigne/checkpipe/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseRules loads a rules file from disk, validates it, and returns the
// resulting document.
func ParseRules(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, checkpipeerrors.NewParseError(path, 0, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, checkpipeerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateDocument(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
