package constants

const (
	BadgeWidth  = 120
	BadgeHeight = 28
)

const (
	BadgeColorValid       = "#16a34a"
	BadgeColorNotValid    = "#6b7280"
	BadgeColorConfigError = "#b91c1c"
	BadgeColorDBError     = "#b45309"
)

const (
	BadgeLabelValid       = "Valid"
	BadgeLabelNotValid    = "Not Valid"
	BadgeLabelConfigError = "Config Error"
	BadgeLabelDBError     = "DB Error"
)
