package main

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/cwbudde/algo-estimate/estimate"
)

// inputFile is the HCL layout of an estimate:
//
//	settings {
//	  overhead_rate = 0.12
//	  profit_rate   = 0.08
//	  vat_rate      = 0.20
//	  index         = 8.5
//	  winter        = 1.02
//	  regional      = 1.15
//
//	  coefficient "night_shift" {
//	    value         = 1.2
//	    justification = "works between 22:00 and 06:00"
//	    active        = true
//	  }
//	}
//
//	item "foundation" {
//	  quantity         = 12
//	  direct           = 1000
//	  labor            = 300
//	  machine_operator = 100
//	  material         = 500
//	  machine          = 100
//	}
//
// The settings block and every attribute except quantity and a
// coefficient's value are optional. The index is multiplied by winter,
// cramped, regional, height and every active coefficient block.
type inputFile struct {
	Settings *settingsBlock `hcl:"settings,block"`
	Items    []itemBlock    `hcl:"item,block"`
}

type settingsBlock struct {
	OverheadRate *float64 `hcl:"overhead_rate,optional"`
	ProfitRate   *float64 `hcl:"profit_rate,optional"`
	VATRate      *float64 `hcl:"vat_rate,optional"`
	Index        *float64 `hcl:"index,optional"`
	Winter       *float64 `hcl:"winter,optional"`
	Cramped      *float64 `hcl:"cramped,optional"`
	Regional     *float64 `hcl:"regional,optional"`
	Height       *float64 `hcl:"height,optional"`

	Coefficients []coefficientBlock `hcl:"coefficient,block"`
}

type coefficientBlock struct {
	Name          string  `hcl:"name,label"`
	Value         float64 `hcl:"value"`
	Justification string  `hcl:"justification,optional"`
	Active        *bool   `hcl:"active,optional"`
}

type itemBlock struct {
	Name            string  `hcl:"name,label"`
	Quantity        float64 `hcl:"quantity"`
	Direct          float64 `hcl:"direct,optional"`
	Labor           float64 `hcl:"labor,optional"`
	MachineOperator float64 `hcl:"machine_operator,optional"`
	Material        float64 `hcl:"material,optional"`
	Machine         float64 `hcl:"machine,optional"`
}

// estimateInput is a decoded and validated input file.
type estimateInput struct {
	Names    []string
	Lines    estimate.Lines
	Settings estimate.Settings
}

// loadInput reads an estimate from an HCL file. The file name must end in
// .hcl (or .json for the JSON variant of HCL).
func loadInput(path string) (*estimateInput, error) {
	var f inputFile
	if err := hclsimple.DecodeFile(path, nil, &f); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return f.resolve()
}

// parseInput decodes an estimate from src; filename selects the syntax and
// appears in diagnostics.
func parseInput(filename string, src []byte) (*estimateInput, error) {
	var f inputFile
	if err := hclsimple.Decode(filename, src, nil, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	return f.resolve()
}

func (f *inputFile) resolve() (*estimateInput, error) {
	var opts []estimate.SettingsOption
	if s := f.Settings; s != nil {
		rates := []struct {
			name  string
			value *float64
			opt   func(float64) estimate.SettingsOption
		}{
			{"overhead_rate", s.OverheadRate, estimate.WithOverheadRate},
			{"profit_rate", s.ProfitRate, estimate.WithProfitRate},
			{"vat_rate", s.VATRate, estimate.WithVATRate},
		}
		for _, r := range rates {
			if r.value == nil {
				continue
			}
			if *r.value < 0 {
				return nil, fmt.Errorf("settings: %s must not be negative, got %g", r.name, *r.value)
			}
			opts = append(opts, r.opt(*r.value))
		}
		coef, err := s.coefficients()
		if err != nil {
			return nil, err
		}
		opts = append(opts, estimate.WithCoefficients(coef))
	}

	in := &estimateInput{
		Names:    make([]string, 0, len(f.Items)),
		Lines:    estimate.NewLines(len(f.Items)),
		Settings: estimate.ApplySettingsOptions(opts...),
	}
	seen := make(map[string]bool, len(f.Items))
	for _, it := range f.Items {
		if seen[it.Name] {
			return nil, fmt.Errorf("item %q: duplicate name", it.Name)
		}
		seen[it.Name] = true
		if it.Quantity < 0 {
			return nil, fmt.Errorf("item %q: negative quantity %g", it.Name, it.Quantity)
		}

		in.Names = append(in.Names, it.Name)
		in.Lines.Append(estimate.Item{
			Quantity: it.Quantity,
			Costs: estimate.UnitCosts{
				Direct:          it.Direct,
				Labor:           it.Labor,
				MachineOperator: it.MachineOperator,
				Material:        it.Material,
				Machine:         it.Machine,
			},
		})
	}
	return in, nil
}

// coefficients validates the index and adjustment factors of the settings
// block.
func (s *settingsBlock) coefficients() (estimate.Coefficients, error) {
	c := estimate.DefaultCoefficients()
	factors := []struct {
		name  string
		value *float64
		dst   *float64
	}{
		{"index", s.Index, &c.Index},
		{"winter", s.Winter, &c.Winter},
		{"cramped", s.Cramped, &c.Cramped},
		{"regional", s.Regional, &c.Regional},
		{"height", s.Height, &c.Height},
	}
	for _, f := range factors {
		if f.value == nil {
			continue
		}
		if *f.value <= 0 {
			return c, fmt.Errorf("settings: %s must be positive, got %g", f.name, *f.value)
		}
		*f.dst = *f.value
	}

	seen := make(map[string]bool, len(s.Coefficients))
	for _, cb := range s.Coefficients {
		if seen[cb.Name] {
			return c, fmt.Errorf("coefficient %q: duplicate name", cb.Name)
		}
		seen[cb.Name] = true
		if cb.Value <= 0 {
			return c, fmt.Errorf("coefficient %q: value must be positive, got %g", cb.Name, cb.Value)
		}
		c.Custom = append(c.Custom, estimate.CustomCoefficient{
			Name:          cb.Name,
			Value:         cb.Value,
			Justification: cb.Justification,
			Active:        cb.Active == nil || *cb.Active,
		})
	}
	return c, nil
}
