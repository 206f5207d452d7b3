package models

// Swipe directions
const (
	DirectionLeft  = "left"
	DirectionRight = "right"
)

// Certification levels accepted on diver profiles
const (
	LevelOpenWater         = "Open Water"
	LevelAdvancedOpenWater = "Advanced Open Water"
	LevelRescueDiver       = "Rescue Diver"
	LevelDivemaster        = "Divemaster"
	LevelInstructor        = "Instructor"
)

// CertificationLevels lists every accepted certification level.
var CertificationLevels = []string{
	LevelOpenWater,
	LevelAdvancedOpenWater,
	LevelRescueDiver,
	LevelDivemaster,
	LevelInstructor,
}

// IsValidCertificationLevel reports whether level is one of the accepted values.
func IsValidCertificationLevel(level string) bool {
	for _, l := range CertificationLevels {
		if l == level {
			return true
		}
	}
	return false
}
