package queries

// Intent is the closed-taxonomy classification of a query's purpose.
// Exactly one concrete case is produced per classification.
type Intent interface {
	// Name returns the wire identifier of the intent case.
	Name() string
	// EngineNames returns the recognized engines, order of discovery preserved.
	EngineNames() []string
}

// Timeframe kinds for TrendAnalysis.
const (
	TimeframeSinceVersion = "since_version"
	TimeframeDuration     = "duration"
	TimeframeRecent       = "recent"
)

// Timeframe narrows a trend question to a period or version range.
type Timeframe struct {
	Kind  string `json:"type"`
	Value string `json:"value"`
}

// Comparison asks how engines stack up against each other.
type Comparison struct {
	Entities []string
	Focus    string
}

func (Comparison) Name() string            { return "comparison" }
func (i Comparison) EngineNames() []string { return i.Entities }

// TrendAnalysis asks how performance changed over time.
type TrendAnalysis struct {
	Entities  []string
	Timeframe Timeframe
}

func (TrendAnalysis) Name() string            { return "trend_analysis" }
func (i TrendAnalysis) EngineNames() []string { return i.Entities }

// ProblemDiagnosis asks why performance regressed.
type ProblemDiagnosis struct {
	Entities    []string
	ProblemType string
}

func (ProblemDiagnosis) Name() string            { return "problem_diagnosis" }
func (i ProblemDiagnosis) EngineNames() []string { return i.Entities }

// BestPerformer asks which engine is strongest in a context.
type BestPerformer struct {
	Entities []string
	Context  string
}

func (BestPerformer) Name() string            { return "best_performer" }
func (i BestPerformer) EngineNames() []string { return i.Entities }

// FactorAnalysis asks what drives performance differences.
type FactorAnalysis struct {
	Entities []string
	Factors  []string
}

func (FactorAnalysis) Name() string            { return "factor_analysis" }
func (i FactorAnalysis) EngineNames() []string { return i.Entities }

// General is the fallback when no other rule matches.
type General struct {
	Entities []string
	Focus    string
}

func (General) Name() string            { return "general" }
func (i General) EngineNames() []string { return i.Entities }
