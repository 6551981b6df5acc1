package model

// Skill is a volunteer capability or an event requirement.
type Skill string

const (
	SkillDance  Skill = "dance"
	SkillTeach  Skill = "teach"
	SkillClean  Skill = "clean"
	SkillSports Skill = "sports"
	SkillCook   Skill = "cook"
)

// Region is a geographic partition used to localise matching.
type Region string

const (
	RegionNorth   Region = "north"
	RegionSouth   Region = "south"
	RegionEast    Region = "east"
	RegionWest    Region = "west"
	RegionCentral Region = "central"
)

// SkillDetail carries display metadata for a skill.
type SkillDetail struct {
	ID    Skill  `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// RegionDetail carries display metadata for a region.
type RegionDetail struct {
	ID   Region `json:"id"`
	Name string `json:"name"`
}

// Catalog is the fixed enumeration of skills and regions.
type Catalog struct {
	Skills  []SkillDetail  `json:"skills"`
	Regions []RegionDetail `json:"regions"`
}

var skillDetails = []SkillDetail{
	{ID: SkillDance, Name: "Dancing", Icon: "Music", Color: "#D6BCFA"},
	{ID: SkillTeach, Name: "Teaching", Icon: "GraduationCap", Color: "#93C5FD"},
	{ID: SkillClean, Name: "Cleaning", Icon: "Trash2", Color: "#86EFAC"},
	{ID: SkillSports, Name: "Sports", Icon: "Dumbbell", Color: "#FCA5A5"},
	{ID: SkillCook, Name: "Cooking", Icon: "Utensils", Color: "#FDE68A"},
}

var regionDetails = []RegionDetail{
	{ID: RegionNorth, Name: "North Region"},
	{ID: RegionSouth, Name: "South Region"},
	{ID: RegionEast, Name: "East Region"},
	{ID: RegionWest, Name: "West Region"},
	{ID: RegionCentral, Name: "Central Region"},
}

// DefaultCatalog returns a copy of the built-in skill and region catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		Skills:  append([]SkillDetail(nil), skillDetails...),
		Regions: append([]RegionDetail(nil), regionDetails...),
	}
}

// Valid reports whether s is one of the known skills.
func (s Skill) Valid() bool {
	for _, d := range skillDetails {
		if d.ID == s {
			return true
		}
	}
	return false
}

// Valid reports whether r is one of the known regions.
func (r Region) Valid() bool {
	for _, d := range regionDetails {
		if d.ID == r {
			return true
		}
	}
	return false
}
