package main

import (
	"fmt"

	"github.com/cwbudde/algo-estimate/estimate"
)

// kernelFor resolves a --tier value. "auto" selects the best tier.
func kernelFor(name string) (estimate.Kernel, error) {
	if name == "" || name == "auto" {
		return estimate.Best(), nil
	}
	t, err := estimate.ParseTier(name)
	if err != nil {
		return estimate.Kernel{}, fmt.Errorf("invalid --tier: %w", err)
	}
	return estimate.Select(t), nil
}
