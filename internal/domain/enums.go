package domain

type Sport string

const (
	SportFootball Sport = "football"
	SportCricket  Sport = "cricket"
)

type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

type TrainingDays string

const (
	TrainingDays2to3 TrainingDays = "2-3"
	TrainingDays4to5 TrainingDays = "4-5"
	TrainingDays6to7 TrainingDays = "6-7"
)

type InjuryAnswer string

const (
	InjuryNo  InjuryAnswer = "no"
	InjuryYes InjuryAnswer = "yes"
)

type EquipmentTier string

const (
	TierNoEquipment EquipmentTier = "no-equipment"
	TierBasic       EquipmentTier = "basic-equipment"
	TierFullGym     EquipmentTier = "full-gym"
)

// ValidSports is the canonical set of accepted sport strings.
var ValidSports = map[string]bool{
	"football": true, "cricket": true,
}

// ValidExperienceLevels is the canonical set of accepted experience strings.
var ValidExperienceLevels = map[string]bool{
	"beginner": true, "intermediate": true, "advanced": true,
}

// ValidTrainingDays is the canonical set of accepted training-day bands.
var ValidTrainingDays = map[string]bool{
	"2-3": true, "4-5": true, "6-7": true,
}

// ValidEquipmentTiers is the canonical set of accepted equipment tier slugs.
var ValidEquipmentTiers = map[string]bool{
	"no-equipment": true, "basic-equipment": true, "full-gym": true,
}
