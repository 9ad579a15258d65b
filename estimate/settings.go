package estimate

// Settings are the rates applied on top of the raw category sums.
type Settings struct {
	// OverheadRate is applied to the labor total (labor + machine operator).
	OverheadRate float64
	// ProfitRate is applied to the labor total.
	ProfitRate float64
	// VATRate is applied to the subtotal.
	VATRate float64
	// Index multiplies every category sum before any rate is applied.
	// 1 means base prices.
	Index float64
}

// SettingsOption mutates Settings.
type SettingsOption func(*Settings)

// DefaultSettings returns overhead 12%, profit 8%, VAT 20% and index 1.
func DefaultSettings() Settings {
	return Settings{
		OverheadRate: 0.12,
		ProfitRate:   0.08,
		VATRate:      0.20,
		Index:        1.0,
	}
}

// WithOverheadRate sets the overhead rate. Negative rates are ignored.
func WithOverheadRate(rate float64) SettingsOption {
	return func(s *Settings) {
		if rate >= 0 {
			s.OverheadRate = rate
		}
	}
}

// WithProfitRate sets the profit rate. Negative rates are ignored.
func WithProfitRate(rate float64) SettingsOption {
	return func(s *Settings) {
		if rate >= 0 {
			s.ProfitRate = rate
		}
	}
}

// WithVATRate sets the VAT rate. Negative rates are ignored.
func WithVATRate(rate float64) SettingsOption {
	return func(s *Settings) {
		if rate >= 0 {
			s.VATRate = rate
		}
	}
}

// WithIndex sets the price index. Non-positive values are ignored.
func WithIndex(index float64) SettingsOption {
	return func(s *Settings) {
		if index > 0 {
			s.Index = index
		}
	}
}

// ApplySettingsOptions applies zero or more options to the default settings.
func ApplySettingsOptions(opts ...SettingsOption) Settings {
	s := DefaultSettings()
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}
