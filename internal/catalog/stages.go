package catalog

import "strings"

// StageSet selects the optional pipeline stages. The completeness gate and
// shaping always run.
type StageSet uint8

const (
	DateRange StageSet = 1 << iota
	Brand
	Pagination
)

// Presets for the four endpoint variants, each a superset of the previous one.
const (
	Step1 StageSet = 0
	Step2          = DateRange
	Step3          = DateRange | Brand
	Step4          = DateRange | Brand | Pagination
)

// Has reports whether every stage in st is active.
func (s StageSet) Has(st StageSet) bool {
	return s&st == st
}

func (s StageSet) String() string {
	var names []string
	if s.Has(DateRange) {
		names = append(names, "date")
	}
	if s.Has(Brand) {
		names = append(names, "brand")
	}
	if s.Has(Pagination) {
		names = append(names, "pagination")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}
