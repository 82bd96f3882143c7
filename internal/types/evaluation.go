package types

// CategoryKey identifies one of the scored life-history domains.
type CategoryKey string

const (
	CategoryEducation  CategoryKey = "education"
	CategoryWork       CategoryKey = "work"
	CategoryVolunteer  CategoryKey = "volunteer"
	CategoryCerts      CategoryKey = "certs"
	CategoryFitness    CategoryKey = "fitness"
	CategoryDriving    CategoryKey = "driving"
	CategoryBackground CategoryKey = "background"
	CategorySoftSkills CategoryKey = "softskills"
	CategoryReferences CategoryKey = "references"
)

// AllCategories lists every category in display order.
var AllCategories = []CategoryKey{
	CategoryEducation,
	CategoryWork,
	CategoryVolunteer,
	CategoryCerts,
	CategoryFitness,
	CategoryDriving,
	CategoryBackground,
	CategorySoftSkills,
	CategoryReferences,
}

// IsValid reports whether k is a known category.
func (k CategoryKey) IsValid() bool {
	for _, c := range AllCategories {
		if c == k {
			return true
		}
	}
	return false
}

// EvaluationDetail is the per-category breakdown of the numeric score.
type EvaluationDetail struct {
	Category     CategoryKey `json:"category"`
	RawPoints    float64     `json:"raw_points"`
	CappedPoints float64     `json:"capped_points"`
	CategoryMax  float64     `json:"category_max"`
	MatchedRules []string    `json:"matched_rules"`
	Zeroed       bool        `json:"zeroed,omitempty"`
}

// EvaluationResult is the output of the numeric scoring path.
type EvaluationResult struct {
	Total          float64            `json:"total"`
	Level          string             `json:"level"`
	Details        []EvaluationDetail `json:"details"`
	Disqualified   bool               `json:"disqualified"`
	DisqualifierID string             `json:"disqualifier_id,omitempty"`
	Flags          []string           `json:"flags,omitempty"`
}

// Detail returns the breakdown for a category, or nil.
func (r *EvaluationResult) Detail(category CategoryKey) *EvaluationDetail {
	for i := range r.Details {
		if r.Details[i].Category == category {
			return &r.Details[i]
		}
	}
	return nil
}

// Stage is the percentage-derived progress stage of a single category.
type Stage string

const (
	StageNeedsWork   Stage = "NEEDS_WORK"
	StageDeveloping  Stage = "DEVELOPING"
	StageEffective   Stage = "EFFECTIVE"
	StageCompetitive Stage = "COMPETITIVE"
)

// Ordinal returns the position of s in NEEDS_WORK < DEVELOPING < EFFECTIVE < COMPETITIVE.
// Unknown stages rank below NEEDS_WORK.
func (s Stage) Ordinal() int {
	switch s {
	case StageNeedsWork:
		return 0
	case StageDeveloping:
		return 1
	case StageEffective:
		return 2
	case StageCompetitive:
		return 3
	default:
		return -1
	}
}

// StageResult is the stage view of one EvaluationDetail.
type StageResult struct {
	Category  CategoryKey `json:"category"`
	Percent   float64     `json:"percent"`
	BaseStage Stage       `json:"base_stage"`
	Stage     Stage       `json:"stage"`
	LiftedBy  string      `json:"lifted_by,omitempty"`
}

// Tier is the qualitative readiness tier.
type Tier string

const (
	TierExceptional      Tier = "Exceptional"
	TierCompetitive      Tier = "Competitive"
	TierDeveloping       Tier = "Developing"
	TierNeedsImprovement Tier = "Needs Improvement"
	TierUnknown          Tier = "Unknown"
)

// IsHigh reports whether t is in the Exceptional/Competitive bucket.
func (t Tier) IsHigh() bool {
	return t == TierExceptional || t == TierCompetitive
}

// IsLow reports whether t is in the Developing/Needs Improvement bucket.
func (t Tier) IsLow() bool {
	return t == TierDeveloping || t == TierNeedsImprovement
}

// CategoryAssessment is the qualitative view of one category.
type CategoryAssessment struct {
	Category      CategoryKey `json:"category"`
	Tier          Tier        `json:"tier"`
	AnchorMet     bool        `json:"anchor_met"`
	SupportingMet int         `json:"supporting_met"`
	InfoPresent   bool        `json:"info_present"`
	Status        string      `json:"status"`
}

// QualitativeResult combines per-category tiers with both overall reducers.
type QualitativeResult struct {
	Categories    []CategoryAssessment `json:"categories"`
	MajorityTier  Tier                 `json:"majority_tier"`
	WeightedTier  Tier                 `json:"weighted_tier"`
	WeightedScore float64              `json:"weighted_score"`
}
