package models

// SearchQuery captures the validated inputs of a single run. Immutable after
// flag parsing.
type SearchQuery struct {
	Keywords           []string
	MinSalary          int
	MaxSalary          int
	HasMin             bool
	HasMax             bool
	AllWords           []string
	AnyWords           []string
	NoneWords          []string
	IncludeUndisclosed bool
}
