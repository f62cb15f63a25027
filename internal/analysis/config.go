package analysis

// Default thresholds. Every tunable lives in Config so deployments can
// adjust scoring behavior without code changes.
const (
	defaultMinClassifyChars  = 50
	defaultSalutationWindow  = 200
	defaultMinResumeSections = 2

	defaultWordCountCap     = 25.0
	defaultWordCountTarget  = 300
	defaultSkillsCap        = 35.0
	defaultSkillsTarget     = 8
	defaultExperienceCap    = 40.0
	defaultExperienceTarget = 5

	defaultMinSentences       = 10
	defaultMinExperienceYears = 2
)

// Weights holds the caps and targets of the score aggregator. Each component
// ramps linearly from zero to its cap, reaching the cap at the target value.
type Weights struct {
	WordCountCap     float64 `mapstructure:"word-count-cap"`
	WordCountTarget  int     `mapstructure:"word-count-target"`
	SkillsCap        float64 `mapstructure:"skills-cap"`
	SkillsTarget     int     `mapstructure:"skills-target"`
	ExperienceCap    float64 `mapstructure:"experience-cap"`
	ExperienceTarget int     `mapstructure:"experience-target"`
}

// Config carries every heuristic list and constant used by the engine.
type Config struct {
	// MinClassifyChars is the minimum trimmed text length the classifier
	// needs; anything shorter is DocTypeUnknown.
	MinClassifyChars int `mapstructure:"min-classify-chars"`
	// SalutationWindow is the size of the opening window (in runes)
	// scanned for a cover-letter salutation.
	SalutationWindow int `mapstructure:"salutation-window"`
	// MinResumeSections is how many distinct resume section keywords must
	// appear before a document counts as a resume.
	MinResumeSections int `mapstructure:"min-resume-sections"`

	// MinSentences and MinExperienceYears drive improvement suggestions.
	MinSentences       int `mapstructure:"min-sentences"`
	MinExperienceYears int `mapstructure:"min-experience-years"`

	ResumeSections     []string `mapstructure:"resume-sections"`
	CoverLetterMarkers []string `mapstructure:"cover-letter-markers"`
	Salutations        []string `mapstructure:"salutations"`
	// Vocabulary is the technology-skill list scanned for
	// Metrics.SkillsCount. Entries may be multi-word phrases.
	Vocabulary []string `mapstructure:"vocabulary"`

	Weights Weights `mapstructure:"weights"`
}

func defaultResumeSections() []string {
	return []string{
		"experience", "education", "skills", "projects",
		"certifications", "summary", "objective", "work history",
		"achievements", "employment",
	}
}

func defaultCoverLetterMarkers() []string {
	return []string{
		"dear hiring manager", "dear sir", "dear madam",
		"to whom it may concern", "sincerely", "yours faithfully",
		"i am writing to apply", "i am excited to apply",
	}
}

func defaultSalutations() []string {
	return []string{
		"dear hiring manager", "dear sir", "dear madam",
		"to whom it may concern",
	}
}

func defaultVocabulary() []string {
	return []string{
		"python", "java", "javascript", "typescript", "go", "react",
		"node.js", "sql", "html", "css", "aws", "docker", "kubernetes",
		"git", "linux", "terraform", "pandas", "excel", "tableau",
		"machine learning", "deep learning", "data science", "analytics",
		"statistics", "microservices", "rest apis",
	}
}

// DefaultConfig returns the built-in heuristics and score weights.
func DefaultConfig() Config {
	return Config{
		MinClassifyChars:   defaultMinClassifyChars,
		SalutationWindow:   defaultSalutationWindow,
		MinResumeSections:  defaultMinResumeSections,
		MinSentences:       defaultMinSentences,
		MinExperienceYears: defaultMinExperienceYears,
		ResumeSections:     defaultResumeSections(),
		CoverLetterMarkers: defaultCoverLetterMarkers(),
		Salutations:        defaultSalutations(),
		Vocabulary:         defaultVocabulary(),
		Weights: Weights{
			WordCountCap:     defaultWordCountCap,
			WordCountTarget:  defaultWordCountTarget,
			SkillsCap:        defaultSkillsCap,
			SkillsTarget:     defaultSkillsTarget,
			ExperienceCap:    defaultExperienceCap,
			ExperienceTarget: defaultExperienceTarget,
		},
	}
}

// withDefaults fills zero-valued fields so a partially specified config
// (for example from a config file) still behaves.
func (c Config) withDefaults() Config {
	d := DefaultConfig()

	if c.MinClassifyChars <= 0 {
		c.MinClassifyChars = d.MinClassifyChars
	}
	if c.SalutationWindow <= 0 {
		c.SalutationWindow = d.SalutationWindow
	}
	if c.MinResumeSections <= 0 {
		c.MinResumeSections = d.MinResumeSections
	}
	if c.MinSentences <= 0 {
		c.MinSentences = d.MinSentences
	}
	if c.MinExperienceYears <= 0 {
		c.MinExperienceYears = d.MinExperienceYears
	}
	if len(c.ResumeSections) == 0 {
		c.ResumeSections = d.ResumeSections
	}
	if len(c.CoverLetterMarkers) == 0 {
		c.CoverLetterMarkers = d.CoverLetterMarkers
	}
	if len(c.Salutations) == 0 {
		c.Salutations = d.Salutations
	}
	if len(c.Vocabulary) == 0 {
		c.Vocabulary = d.Vocabulary
	}
	if c.Weights.WordCountCap <= 0 {
		c.Weights.WordCountCap = d.Weights.WordCountCap
	}
	if c.Weights.WordCountTarget <= 0 {
		c.Weights.WordCountTarget = d.Weights.WordCountTarget
	}
	if c.Weights.SkillsCap <= 0 {
		c.Weights.SkillsCap = d.Weights.SkillsCap
	}
	if c.Weights.SkillsTarget <= 0 {
		c.Weights.SkillsTarget = d.Weights.SkillsTarget
	}
	if c.Weights.ExperienceCap <= 0 {
		c.Weights.ExperienceCap = d.Weights.ExperienceCap
	}
	if c.Weights.ExperienceTarget <= 0 {
		c.Weights.ExperienceTarget = d.Weights.ExperienceTarget
	}

	return c
}
