package engine

import (
	"fmt"

	"github.com/KirkDiggler/fridaynight/internal/models"
)

// RatingModel decides how the second argument of GeneratePlayer becomes a base rating
type RatingModel string

const (
	// RatingModelGradeStar derives the base from grade and a 1-5 star level
	RatingModelGradeStar RatingModel = "grade_star"

	// RatingModelPrestige uses the argument, usually team prestige, as the base
	RatingModelPrestige RatingModel = "prestige"
)

// ScoreFormula picks how a team's power turns into points
type ScoreFormula string

const (
	// ScoreFormulaDifferential scores off the power gap between the teams
	ScoreFormulaDifferential ScoreFormula = "differential"

	// ScoreFormulaPower scores off a team's own power only
	ScoreFormulaPower ScoreFormula = "power"
)

// School seeds one team in the world
type School struct {
	Name   string `yaml:"name"`
	Mascot string `yaml:"mascot"`
}

// PositionCount is one line of a roster template
type PositionCount struct {
	Position models.Position `yaml:"position"`
	Count    int             `yaml:"count"`
}

// Variant enumerates every rule that differs between league flavors
type Variant struct {
	Name string `yaml:"name"`

	// Weeks in the regular season
	Weeks int `yaml:"weeks"`

	// RosterSize is the target every roster is backfilled to
	RosterSize int `yaml:"roster_size"`

	// RosterTemplate guarantees minimum counts per position. Empty means
	// positions are drawn uniformly.
	RosterTemplate []PositionCount `yaml:"roster_template"`

	// Positions players are drawn from
	Positions []models.Position `yaml:"positions"`

	// OffensePositions and DefensePositions define the unit ratings
	OffensePositions []models.Position `yaml:"offense_positions"`
	DefensePositions []models.Position `yaml:"defense_positions"`

	HomeFieldBonus float64      `yaml:"home_field_bonus"`
	ScoreFormula   ScoreFormula `yaml:"score_formula"`

	RatingModel    RatingModel `yaml:"rating_model"`
	RatingNoiseMin int         `yaml:"rating_noise_min"`
	RatingNoiseMax int         `yaml:"rating_noise_max"`
	RatingFloor    int         `yaml:"rating_floor"`

	// Potential is always overall plus a gain in this band, capped at 99
	PotentialMinGain int `yaml:"potential_min_gain"`
	PotentialMaxGain int `yaml:"potential_max_gain"`

	ProgressionRate float64 `yaml:"progression_rate"`

	// Prestige draws for CPU teams, and the fixed prestige of the user team.
	// A zero UserPrestige draws the user team like everyone else.
	PrestigeMin  int `yaml:"prestige_min"`
	PrestigeMax  int `yaml:"prestige_max"`
	UserPrestige int `yaml:"user_prestige"`

	StartYear        int `yaml:"start_year"`
	ProspectCount    int `yaml:"prospect_count"`
	RecruitingPoints int `yaml:"recruiting_points"`

	Schools    []School `yaml:"schools"`
	Mascots    []string `yaml:"mascots"`
	FirstNames []string `yaml:"first_names"`
	LastNames  []string `yaml:"last_names"`
}

// UnitPositions returns the positions whose ratings make up a unit
func (v *Variant) UnitPositions(unit models.Unit) []models.Position {
	if unit == models.UnitDefense {
		return v.DefensePositions
	}
	return v.OffensePositions
}

// TemplateSize is the number of players the roster template asks for
func (v *Variant) TemplateSize() int {
	total := 0
	for _, pc := range v.RosterTemplate {
		total += pc.Count
	}
	return total
}

// Validate checks the variant can drive a season
func (v *Variant) Validate() error {
	switch {
	case v == nil:
		return fmt.Errorf("%w: variant is nil", ErrInvalidVariant)
	case v.Weeks <= 0:
		return fmt.Errorf("%w: weeks must be positive", ErrInvalidVariant)
	case v.RosterSize <= 0:
		return fmt.Errorf("%w: roster size must be positive", ErrInvalidVariant)
	case v.TemplateSize() > v.RosterSize:
		return fmt.Errorf("%w: roster template needs %d players but roster size is %d", ErrInvalidVariant, v.TemplateSize(), v.RosterSize)
	case len(v.Positions) == 0:
		return fmt.Errorf("%w: no positions", ErrInvalidVariant)
	case len(v.OffensePositions) == 0 || len(v.DefensePositions) == 0:
		return fmt.Errorf("%w: offense and defense need positions", ErrInvalidVariant)
	case v.RatingModel != RatingModelGradeStar && v.RatingModel != RatingModelPrestige:
		return fmt.Errorf("%w: unknown rating model %q", ErrInvalidVariant, v.RatingModel)
	case v.ScoreFormula != ScoreFormulaDifferential && v.ScoreFormula != ScoreFormulaPower:
		return fmt.Errorf("%w: unknown score formula %q", ErrInvalidVariant, v.ScoreFormula)
	case v.RatingNoiseMin > v.RatingNoiseMax:
		return fmt.Errorf("%w: rating noise min above max", ErrInvalidVariant)
	case v.RatingFloor < 0 || v.RatingFloor > maxRating:
		return fmt.Errorf("%w: rating floor must be within 0-99", ErrInvalidVariant)
	case v.PotentialMinGain < 0 || v.PotentialMinGain > v.PotentialMaxGain:
		return fmt.Errorf("%w: potential gain band is invalid", ErrInvalidVariant)
	case v.ProgressionRate < 0:
		return fmt.Errorf("%w: progression rate cannot be negative", ErrInvalidVariant)
	case v.PrestigeMin > v.PrestigeMax:
		return fmt.Errorf("%w: prestige min above max", ErrInvalidVariant)
	case len(v.Schools) < 2:
		return fmt.Errorf("%w: at least two schools are needed", ErrInvalidVariant)
	case len(v.FirstNames) == 0 || len(v.LastNames) == 0:
		return fmt.Errorf("%w: name tables are empty", ErrInvalidVariant)
	}

	for _, s := range v.Schools {
		if s.Mascot == "" && len(v.Mascots) == 0 {
			return fmt.Errorf("%w: school %q has no mascot and there is no mascot table", ErrInvalidVariant, s.Name)
		}
	}
	return nil
}

// Clone copies the variant so callers can override fields safely
func (v *Variant) Clone() *Variant {
	clone := *v
	clone.RosterTemplate = append([]PositionCount(nil), v.RosterTemplate...)
	clone.Positions = append([]models.Position(nil), v.Positions...)
	clone.OffensePositions = append([]models.Position(nil), v.OffensePositions...)
	clone.DefensePositions = append([]models.Position(nil), v.DefensePositions...)
	clone.Schools = append([]School(nil), v.Schools...)
	clone.Mascots = append([]string(nil), v.Mascots...)
	clone.FirstNames = append([]string(nil), v.FirstNames...)
	clone.LastNames = append([]string(nil), v.LastNames...)
	return &clone
}

const (
	VariantNameManager      = "manager"
	VariantNameHighSchoolGM = "high_school_gm"
)

// LookupVariant returns a copy of a built-in variant
func LookupVariant(name string) (*Variant, error) {
	switch name {
	case "", VariantNameManager:
		return VariantManager(), nil
	case VariantNameHighSchoolGM:
		return VariantHighSchoolGM(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// VariantManager is the eight-school league with free-form rosters
func VariantManager() *Variant {
	return &Variant{
		Name:       VariantNameManager,
		Weeks:      8,
		RosterSize: 35,
		Positions: []models.Position{
			models.PositionQB, models.PositionRB, models.PositionWR, models.PositionTE, models.PositionOL,
			models.PositionDL, models.PositionLB, models.PositionCB, models.PositionS, models.PositionK,
		},
		OffensePositions: []models.Position{
			models.PositionQB, models.PositionRB, models.PositionWR, models.PositionTE, models.PositionOL,
		},
		DefensePositions: []models.Position{
			models.PositionDL, models.PositionLB, models.PositionCB, models.PositionS,
		},
		HomeFieldBonus:   3,
		ScoreFormula:     ScoreFormulaDifferential,
		RatingModel:      RatingModelGradeStar,
		RatingNoiseMin:   0,
		RatingNoiseMax:   9,
		RatingFloor:      0,
		PotentialMinGain: 5,
		PotentialMaxGain: 30,
		ProgressionRate:  0.15,
		PrestigeMin:      50,
		PrestigeMax:      50,
		StartYear:        2024,
		ProspectCount:    20,
		RecruitingPoints: 100,
		Schools: []School{
			{Name: "Westside", Mascot: "Wolverines"},
			{Name: "Central", Mascot: "Eagles"},
			{Name: "Eastview", Mascot: "Titans"},
			{Name: "Lakeside", Mascot: "Lions"},
			{Name: "Mountain", Mascot: "Rams"},
			{Name: "Valley", Mascot: "Vikings"},
			{Name: "North", Mascot: "Stars"},
			{Name: "South", Mascot: "Bulls"},
		},
		FirstNames: []string{
			"James", "Robert", "John", "Michael", "David", "William", "Richard", "Joseph", "Thomas", "Christopher",
			"Charles", "Daniel", "Matthew", "Anthony", "Mark", "Donald", "Steven", "Paul", "Andrew", "Joshua",
			"Kenneth", "Kevin", "Brian", "George", "Timothy", "Ronald", "Edward", "Jason", "Jeffrey", "Gary",
			"Ryan", "Nicholas", "Eric", "Stephen", "Jacob", "Larry", "Frank", "Scott", "Justin", "Brandon",
			"Raymond", "Gregory", "Samuel", "Benjamin", "Patrick", "Jack", "Alexander", "Dennis", "Jerry", "Tyler",
		},
		LastNames: []string{
			"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
			"Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
			"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson",
			"Walker", "Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
			"Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell", "Carter", "Roberts",
		},
	}
}

// VariantHighSchoolGM is the fifteen-school league with balanced rosters
func VariantHighSchoolGM() *Variant {
	return &Variant{
		Name:       VariantNameHighSchoolGM,
		Weeks:      10,
		RosterSize: 38,
		RosterTemplate: []PositionCount{
			{Position: models.PositionQB, Count: 2},
			{Position: models.PositionRB, Count: 3},
			{Position: models.PositionWR, Count: 5},
			{Position: models.PositionTE, Count: 2},
			{Position: models.PositionOL, Count: 8},
			{Position: models.PositionDL, Count: 6},
			{Position: models.PositionLB, Count: 5},
			{Position: models.PositionDB, Count: 6},
			{Position: models.PositionK, Count: 1},
		},
		Positions: []models.Position{
			models.PositionQB, models.PositionRB, models.PositionWR, models.PositionTE, models.PositionOL,
			models.PositionDL, models.PositionLB, models.PositionDB, models.PositionK,
		},
		OffensePositions: []models.Position{
			models.PositionQB, models.PositionRB, models.PositionWR, models.PositionTE, models.PositionOL,
		},
		DefensePositions: []models.Position{
			models.PositionDL, models.PositionLB, models.PositionDB,
		},
		HomeFieldBonus:   3,
		ScoreFormula:     ScoreFormulaPower,
		RatingModel:      RatingModelPrestige,
		RatingNoiseMin:   -10,
		RatingNoiseMax:   15,
		RatingFloor:      40,
		PotentialMinGain: 5,
		PotentialMaxGain: 30,
		ProgressionRate:  0.15,
		PrestigeMin:      20,
		PrestigeMax:      80,
		UserPrestige:     30,
		StartYear:        2024,
		ProspectCount:    20,
		RecruitingPoints: 100,
		Schools: []School{
			{Name: "Central High"}, {Name: "Oak Ridge"}, {Name: "Valley View"}, {Name: "St. Jude Prep"},
			{Name: "Riverside"}, {Name: "East Side"}, {Name: "Mountain View"}, {Name: "Lincoln Park"},
			{Name: "Northwood"}, {Name: "South Creek"}, {Name: "Heritage"}, {Name: "Unity"},
			{Name: "Liberty"}, {Name: "Summit"}, {Name: "Pine Crest"},
		},
		Mascots: []string{
			"Eagles", "Tigers", "Lions", "Panthers", "Bulldogs", "Wildcats", "Warriors", "Knights", "Cougars", "Rams",
		},
		FirstNames: []string{
			"Jalen", "Marcus", "Caleb", "Tyler", "Noah", "Elijah", "DeAndre", "Jackson", "Xavier", "Mason",
			"Ethan", "Aiden", "Jayden", "Liam", "Jordan", "Bryce", "Cam", "Desmond", "Malik", "Trevor",
		},
		LastNames: []string{
			"Williams", "Johnson", "Smith", "Jackson", "Davis", "Brown", "Miller", "Wilson", "Moore", "Taylor",
			"Anderson", "Thomas", "White", "Harris", "Martin", "Thompson", "Garcia", "Martinez", "Robinson", "Clark",
		},
	}
}
