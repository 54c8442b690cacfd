package ros

const (
	// censored values are replaced by this fraction of their detection
	// limit when the regression can not be used
	DefaultSubstitutionFraction = 0.5

	DefaultMinUncensored       = 2
	DefaultMaxFractionCensored = 0.8

	// Filliben's order statistic median constants
	fillibenOffset = 0.3175
	fillibenScale  = 0.365
)

type Method int

const (
	MethodROS          Method = 1
	MethodSubstitution Method = 2
	MethodNoCensored   Method = 3
)

func (m Method) String() string {
	switch m {
	case MethodROS:
		return "ros"
	case MethodSubstitution:
		return "substitution"
	case MethodNoCensored:
		return "no-censored"
	}
	return "unknown"
}
