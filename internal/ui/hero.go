package ui

// HeroTemplateData is the landing section shown above the call-to-action.
type HeroTemplateData struct {
	Title     string
	Highlight string
	Tagline   string
}
