package estimate

// Coefficients are the adjustment factors that, multiplied together, make up
// the price index applied to every category sum.
//
// Winter, Cramped, Regional and Height are optional: a non-positive value
// means the coefficient does not apply. A non-positive Index counts as 1.
type Coefficients struct {
	// Index converts base prices to current prices.
	Index float64
	// Winter is the winter cost increase.
	Winter float64
	// Cramped is the cramped working conditions factor.
	Cramped float64
	// Regional is the regional factor.
	Regional float64
	// Height is the work-at-height factor.
	Height float64
	// Custom holds user-defined coefficients. Only active ones apply.
	Custom []CustomCoefficient
}

// CustomCoefficient is a named, user-defined adjustment factor.
type CustomCoefficient struct {
	Name          string
	Value         float64
	Justification string
	Active        bool
}

// DefaultCoefficients returns index 1 with no adjustment factors.
func DefaultCoefficients() Coefficients {
	return Coefficients{Index: 1}
}

// AddCustom appends an active custom coefficient.
func (c *Coefficients) AddCustom(name string, value float64, justification string) {
	c.Custom = append(c.Custom, CustomCoefficient{
		Name:          name,
		Value:         value,
		Justification: justification,
		Active:        true,
	})
}

// Combined returns the product of the index, every applicable optional
// coefficient and every active custom coefficient.
func (c Coefficients) Combined() float64 {
	result := 1.0
	if c.Index > 0 {
		result = c.Index
	}
	for _, v := range [...]float64{c.Winter, c.Cramped, c.Regional, c.Height} {
		if v > 0 {
			result *= v
		}
	}
	for _, cc := range c.Custom {
		if cc.Active {
			result *= cc.Value
		}
	}
	return result
}

// WithCoefficients sets the price index to c.Combined(). A non-positive
// product (an active custom coefficient of zero or below) is ignored, like
// WithIndex.
func WithCoefficients(c Coefficients) SettingsOption {
	return WithIndex(c.Combined())
}
