package stats

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/PlayerLevels_Go/internal/domain"
)

// Entry is one raw statistics entry as written in config.yml
type Entry struct {
	Label     string  `yaml:"-"`
	Statistic string  `yaml:"statistic"`
	Material  string  `yaml:"material"`
	Entity    string  `yaml:"entity"`
	XPValue   float64 `yaml:"xp-value"`
}

// Rejection describes an entry dropped by Validate
type Rejection struct {
	Entry  Entry
	Reason string
	Err    error
}

// Error implements error
func (r Rejection) Error() string {
	return fmt.Sprintf("%s (%s): %s", r.Entry.Label, r.Entry.Statistic, r.Reason)
}

// Unwrap returns the sentinel error
func (r Rejection) Unwrap() error {
	return r.Err
}

var upper = cases.Upper(language.Und)

func normalize(name string) string {
	return upper.String(strings.TrimSpace(name))
}

// Validate resolves raw entries against the catalog. Valid entries keep their
// order; every invalid entry is reported as a Rejection and skipped.
func Validate(catalog Catalog, entries []Entry) ([]domain.StatisticWeight, []Rejection) {
	weights := make([]domain.StatisticWeight, 0, len(entries))
	var rejected []Rejection

	for _, e := range entries {
		w, rej := resolve(catalog, e)
		if rej != nil {
			rejected = append(rejected, *rej)
			continue
		}
		weights = append(weights, w)
	}
	return weights, rejected
}

func resolve(catalog Catalog, e Entry) (domain.StatisticWeight, *Rejection) {
	reject := func(reason string, err error) (domain.StatisticWeight, *Rejection) {
		return domain.StatisticWeight{}, &Rejection{Entry: e, Reason: reason, Err: err}
	}

	statistic := normalize(e.Statistic)
	if statistic == "" {
		return reject(ReasonMissingStatistic, domain.ErrUnknownStatistic)
	}
	kind, ok := catalog.StatisticKind(statistic)
	if !ok {
		return reject(ReasonUnknownStatistic, domain.ErrUnknownStatistic)
	}
	if math.IsNaN(e.XPValue) || math.IsInf(e.XPValue, 0) {
		return reject(ReasonInvalidWeight, domain.ErrUnknownStatistic)
	}

	material := normalize(e.Material)
	entity := normalize(e.Entity)
	if material != "" && entity != "" {
		return reject(ReasonBothQualifiers, domain.ErrQualifierConflict)
	}

	q := domain.NoQualifier
	switch {
	case material != "":
		if !catalog.IsMaterial(material) {
			return reject(ReasonUnknownMaterial, domain.ErrUnknownMaterial)
		}
		q = domain.Material(material)
	case entity != "":
		if !catalog.IsEntity(entity) {
			return reject(ReasonUnknownEntity, domain.ErrUnknownEntity)
		}
		q = domain.Entity(entity)
	}

	if !kind.Accepts(q.Kind) {
		if q.IsZero() {
			return reject(ReasonMissingQualifier, domain.ErrQualifierArity)
		}
		return reject(ReasonWrongQualifier, domain.ErrQualifierArity)
	}

	return domain.StatisticWeight{
		Label:     e.Label,
		Statistic: statistic,
		Qualifier: q,
		Weight:    e.XPValue,
	}, nil
}
