package html

// ChromeClass is a typed identifier for semantic chrome CSS classes.
type ChromeClass string

const (
	ClassForm    ChromeClass = "quoteform-form"
	ClassTabs    ChromeClass = "quoteform-tabs"
	ClassTab     ChromeClass = "quote-cat"
	ClassPanel   ChromeClass = "category-panel"
	ClassField   ChromeClass = "quoteform-field"
	ClassError   ChromeClass = "q-error"
	ClassInvalid ChromeClass = "error"
	ClassStatus  ChromeClass = "form-status"
	ClassActions ChromeClass = "quoteform-actions"
)
