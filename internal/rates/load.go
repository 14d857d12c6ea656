package rates

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"taxengine/internal/model"
)

//go:embed data/*.yaml
var embeddedFS embed.FS

// All numeric fields in the year files are decimal strings so no value ever
// passes through binary floating point.
type yearFile struct {
	Year           int                       `yaml:"year"`
	IncomeTax      map[string][]bracketEntry `yaml:"income_tax"`
	StampDuty      map[string][]bracketEntry `yaml:"stamp_duty"`
	VAT            map[string]string         `yaml:"vat"`
	SocialSecurity struct {
		ClassOne struct {
			EmployeeRate  string `yaml:"employee_rate"`
			EmployerRate  string `yaml:"employer_rate"`
			WeeklyFloor   string `yaml:"weekly_floor"`
			WeeklyCeiling string `yaml:"weekly_ceiling"`
			WeeksPerYear  int    `yaml:"weeks_per_year"`
		} `yaml:"class_one"`
		ClassTwo struct {
			Rate          string `yaml:"rate"`
			AnnualFloor   string `yaml:"annual_floor"`
			AnnualCeiling string `yaml:"annual_ceiling"`
		} `yaml:"class_two"`
	} `yaml:"social_security"`
	CapitalGains struct {
		ShortTermRate  string `yaml:"short_term_rate"`
		ExemptionYears int    `yaml:"exemption_years"`
	} `yaml:"capital_gains"`
}

type bracketEntry struct {
	From string `yaml:"from"`
	To   string `yaml:"to"` // empty = open-ended
	Rate string `yaml:"rate"`
}

// Load builds the table from the rate files embedded in the binary.
func Load() (*Table, error) {
	return LoadFS(embeddedFS, "data")
}

// LoadFS builds the table from every .yaml file under dir in fsys, so an
// embedding process can supply additional tax years without a rebuild.
// Every schedule and parameter set is validated here; a malformed file fails
// the load rather than a later calculation.
func LoadFS(fsys fs.FS, dir string) (*Table, error) {
	paths, err := fs.Glob(fsys, dir+"/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("globbing rate files: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no rate files under %s", dir)
	}

	t := &Table{years: make(map[int]*YearConfig, len(paths))}
	for _, path := range paths {
		raw, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		yc, err := parseYear(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if _, dup := t.years[yc.year]; dup {
			return nil, fmt.Errorf("%s: tax year %d configured twice", path, yc.year)
		}
		t.years[yc.year] = yc
	}
	return t, nil
}

func parseYear(raw []byte) (*YearConfig, error) {
	var f yearFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decoding rate file: %w", err)
	}
	if f.Year <= 0 {
		return nil, fmt.Errorf("missing or invalid year")
	}

	yc := &YearConfig{
		year:      f.Year,
		incomeTax: make(map[model.FilingStatus]model.Schedule, len(f.IncomeTax)),
		stampDuty: make(map[model.BuyerCategory]model.Schedule, len(f.StampDuty)),
		vat:       make(map[model.VATCategory]decimal.Decimal, len(f.VAT)),
	}

	for name, entries := range f.IncomeTax {
		status, err := model.ParseFilingStatus(name)
		if err != nil {
			return nil, err
		}
		sched, err := buildSchedule(entries)
		if err != nil {
			return nil, fmt.Errorf("income_tax.%s: %w", name, err)
		}
		yc.incomeTax[status] = sched
	}
	for name, entries := range f.StampDuty {
		category, err := model.ParseBuyerCategory(name)
		if err != nil {
			return nil, err
		}
		sched, err := buildSchedule(entries)
		if err != nil {
			return nil, fmt.Errorf("stamp_duty.%s: %w", name, err)
		}
		yc.stampDuty[category] = sched
	}
	for name, rate := range f.VAT {
		category, err := model.ParseVATCategory(name)
		if err != nil {
			return nil, err
		}
		r, err := parseRate("vat."+name, rate)
		if err != nil {
			return nil, err
		}
		yc.vat[category] = r
	}

	var err error
	if yc.classOne, err = buildClassOne(f); err != nil {
		return nil, err
	}
	if yc.classTwo, err = buildClassTwo(f); err != nil {
		return nil, err
	}
	if yc.capitalGains, err = buildCapitalGains(f); err != nil {
		return nil, err
	}
	return yc, nil
}

func buildSchedule(entries []bracketEntry) (model.Schedule, error) {
	sched := make(model.Schedule, 0, len(entries))
	for i, e := range entries {
		lower, err := decimal.NewFromString(e.From)
		if err != nil {
			return nil, fmt.Errorf("bracket %d: invalid lower bound %q", i, e.From)
		}
		rate, err := decimal.NewFromString(e.Rate)
		if err != nil {
			return nil, fmt.Errorf("bracket %d: invalid rate %q", i, e.Rate)
		}
		b := model.Bracket{Lower: lower, Rate: rate, Open: e.To == ""}
		if !b.Open {
			if b.Upper, err = decimal.NewFromString(e.To); err != nil {
				return nil, fmt.Errorf("bracket %d: invalid upper bound %q", i, e.To)
			}
		}
		sched = append(sched, b)
	}
	if err := sched.Validate(); err != nil {
		return nil, err
	}
	return sched, nil
}

func buildClassOne(f yearFile) (ClassOneParams, error) {
	c := f.SocialSecurity.ClassOne
	p := ClassOneParams{WeeksPerYear: c.WeeksPerYear}
	var err error
	if p.EmployeeRate, err = parseRate("class_one.employee_rate", c.EmployeeRate); err != nil {
		return p, err
	}
	if p.EmployerRate, err = parseRate("class_one.employer_rate", c.EmployerRate); err != nil {
		return p, err
	}
	if p.WeeklyFloor, err = parseAmount("class_one.weekly_floor", c.WeeklyFloor); err != nil {
		return p, err
	}
	if p.WeeklyCeiling, err = parseAmount("class_one.weekly_ceiling", c.WeeklyCeiling); err != nil {
		return p, err
	}
	if p.WeeklyFloor.GreaterThan(p.WeeklyCeiling) {
		return p, fmt.Errorf("class_one: floor %s above ceiling %s", p.WeeklyFloor, p.WeeklyCeiling)
	}
	if p.WeeksPerYear <= 0 || p.WeeksPerYear > 53 {
		return p, fmt.Errorf("class_one: weeks_per_year %d outside (0, 53]", p.WeeksPerYear)
	}
	return p, nil
}

func buildClassTwo(f yearFile) (ClassTwoParams, error) {
	c := f.SocialSecurity.ClassTwo
	p := ClassTwoParams{}
	var err error
	if p.Rate, err = parseRate("class_two.rate", c.Rate); err != nil {
		return p, err
	}
	if p.AnnualFloor, err = parseAmount("class_two.annual_floor", c.AnnualFloor); err != nil {
		return p, err
	}
	if p.AnnualCeiling, err = parseAmount("class_two.annual_ceiling", c.AnnualCeiling); err != nil {
		return p, err
	}
	if p.AnnualFloor.GreaterThan(p.AnnualCeiling) {
		return p, fmt.Errorf("class_two: floor %s above ceiling %s", p.AnnualFloor, p.AnnualCeiling)
	}
	return p, nil
}

func buildCapitalGains(f yearFile) (CapitalGainsParams, error) {
	p := CapitalGainsParams{ExemptionYears: f.CapitalGains.ExemptionYears}
	var err error
	if p.ShortTermRate, err = parseRate("capital_gains.short_term_rate", f.CapitalGains.ShortTermRate); err != nil {
		return p, err
	}
	if p.ExemptionYears <= 0 {
		return p, fmt.Errorf("capital_gains: exemption_years must be positive")
	}
	return p, nil
}

func parseRate(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s: invalid rate %q", field, s)
	}
	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.Decimal{}, fmt.Errorf("%s: rate %s outside [0, 1]", field, d)
	}
	return d, nil
}

func parseAmount(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s: invalid amount %q", field, s)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%s: amount %s is negative", field, d)
	}
	return d, nil
}
