package mapping

//go:generate go tool stringer -type=Origin -trimprefix=Origin -output=origin_string.go

// Origin tells how a piece of an interval got through a stage.
type Origin int

const (
	// OriginPassthrough marks values no rule claimed.
	OriginPassthrough Origin = iota
	// OriginMapped marks values shifted by a rule.
	OriginMapped
)
