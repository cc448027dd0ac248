package domain

// MatchedStandard is a curriculum standard associated with a sample.
type MatchedStandard struct {
	StandardCode    string   `json:"standard_code"`
	Description     string   `json:"description"`
	AcademicSubject string   `json:"academic_subject"`
	GradeLevels     []string `json:"grade_levels"`
	Jurisdiction    string   `json:"jurisdiction"`
	SimilarityScore float64  `json:"similarity_score"`
}

// Sample is one English/Spanish translation pair with its readability metrics
// and matched standards. Samples are loaded once and never mutated.
type Sample struct {
	ID                   string            `json:"id"`
	EnglishText          string            `json:"english_text"`
	TextbookGrade        string            `json:"textbook_grade"`
	TargetGrade          string            `json:"target_grade"`
	TargetAge            string            `json:"target_age"`
	Domain               string            `json:"domain"`
	Subject              string            `json:"subject"`
	SpanishTranslation   string            `json:"spanish_translation"`
	ValidTranslation     bool              `json:"valid_translation"`
	ValidationReason     string            `json:"validation_reason"`
	Tokens               int               `json:"tokens"`
	Attempts             int               `json:"attempts"`
	Success              bool              `json:"success"`
	FinalStatus          string            `json:"final_status"`
	FleshGrade           float64           `json:"flesh_grade"`
	FernandezHuertaScore float64           `json:"fernandez_huerta_score"`
	FernandezHuertaGrade float64           `json:"fernandez_huerta_grade"`
	FernandezHuertaAge   string            `json:"fernandez_huerta_age"`
	Model                string            `json:"model"`
	MatchedStandards     []MatchedStandard `json:"matched_standards"`
}

// StandardsCount is the number of standard slots a complete annotation needs.
func (s Sample) StandardsCount() int {
	return len(s.MatchedStandards)
}

// AnnotatedSample is the snapshot record: a sample merged with its annotations.
// Annotations is nil for samples nobody has touched and encodes as JSON null.
type AnnotatedSample struct {
	Sample
	Annotations *Annotations `json:"annotations"`
}
