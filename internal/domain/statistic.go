package domain

import "fmt"

// QualifierKind tells which sub-key, if any, narrows a statistic
type QualifierKind int

const (
	QualifierNone QualifierKind = iota
	QualifierMaterial
	QualifierEntity
)

// String implements fmt.Stringer
func (k QualifierKind) String() string {
	switch k {
	case QualifierMaterial:
		return "material"
	case QualifierEntity:
		return "entity"
	default:
		return "none"
	}
}

// Qualifier narrows a statistic to a material or entity variant
type Qualifier struct {
	Kind QualifierKind `json:"kind"`
	Name string        `json:"name,omitempty"`
}

// NoQualifier is the zero Qualifier
var NoQualifier = Qualifier{}

// Material returns a material qualifier
func Material(name string) Qualifier {
	return Qualifier{Kind: QualifierMaterial, Name: name}
}

// Entity returns an entity qualifier
func Entity(name string) Qualifier {
	return Qualifier{Kind: QualifierEntity, Name: name}
}

// IsZero reports whether no qualifier is set
func (q Qualifier) IsZero() bool {
	return q.Kind == QualifierNone
}

// String implements fmt.Stringer
func (q Qualifier) String() string {
	if q.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s:%s", q.Kind, q.Name)
}

// StatisticKind is the qualifier arity a statistic expects
type StatisticKind int

const (
	StatisticUntyped StatisticKind = iota
	StatisticBlock
	StatisticItem
	StatisticEntity
)

// String implements fmt.Stringer
func (k StatisticKind) String() string {
	switch k {
	case StatisticBlock:
		return "block"
	case StatisticItem:
		return "item"
	case StatisticEntity:
		return "entity"
	default:
		return "untyped"
	}
}

// Accepts reports whether a qualifier of the given kind fits this statistic
func (k StatisticKind) Accepts(q QualifierKind) bool {
	switch k {
	case StatisticBlock, StatisticItem:
		return q == QualifierMaterial
	case StatisticEntity:
		return q == QualifierEntity
	default:
		return q == QualifierNone
	}
}

// StatisticWeight maps one game statistic to experience per unit.
// Entries are validated at config load and never mutated afterwards.
type StatisticWeight struct {
	Label     string    `json:"label,omitempty"`
	Statistic string    `json:"statistic"`
	Qualifier Qualifier `json:"qualifier"`
	Weight    float64   `json:"xp_value"`
}

// String implements fmt.Stringer
func (w StatisticWeight) String() string {
	if w.Qualifier.IsZero() {
		return w.Statistic
	}
	return w.Statistic + "/" + w.Qualifier.Name
}
