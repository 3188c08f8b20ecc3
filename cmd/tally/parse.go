package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedPair = errors.New("expected key=count")

// parseInts parses every argument as a base 10 integer.
func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))

	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = n
	}

	return out, nil
}

// parseCounts parses a counting map written as "a=1,b=2".
// An empty string is an empty map. Repeated keys are added together.
func parseCounts(s string) (map[string]int, error) {
	out := make(map[string]int)
	if s == "" {
		return out, nil
	}

	for _, pair := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("%q: %w", pair, ErrMalformedPair)
		}

		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", pair, err)
		}

		out[k] += n
	}

	return out, nil
}
