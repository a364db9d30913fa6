package prompt

import "github.com/seqseed/seqseed/internal/scaffold"

// Preset answers from values given up front (flags or settings) and defers to
// Fallback for anything left unset.
type Preset struct {
	Dialect         string // empty means ask
	UseConfigModule *bool  // nil means ask
	Fallback        Provider
}

// SelectDialect validates the preset dialect or asks the fallback.
func (p *Preset) SelectDialect() (scaffold.Dialect, error) {
	if p.Dialect != "" {
		return scaffold.ParseDialect(p.Dialect)
	}
	return p.Fallback.SelectDialect()
}

// ConfirmConfigModule returns the preset answer or asks the fallback.
func (p *Preset) ConfirmConfigModule() (bool, error) {
	if p.UseConfigModule != nil {
		return *p.UseConfigModule, nil
	}
	return p.Fallback.ConfirmConfigModule()
}

// Fixed always returns the same answers.
type Fixed struct {
	Dialect         scaffold.Dialect
	UseConfigModule bool
}

func (f Fixed) SelectDialect() (scaffold.Dialect, error) { return f.Dialect, nil }

func (f Fixed) ConfirmConfigModule() (bool, error) { return f.UseConfigModule, nil }
