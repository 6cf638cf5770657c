package document

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindString
	KindInt
	KindFloat
	KindBool
	KindList
	KindMapping

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsScalar reports whether the kind is a leaf value rather than a container.
func (k KindEnum) IsScalar() bool {
	switch k {
	default:
		return false
	case KindString, KindInt, KindFloat, KindBool:
		return true
	}
}

// IsNumber reports whether the kind takes part in cross-kind numeric equality.
func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindFloat:
		return true
	}
}
