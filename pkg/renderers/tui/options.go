package tui

// Theme captures optional formatting prefixes the runner applies when printing
// messages.
type Theme struct {
	PromptPrefix string
	InfoPrefix   string
	ErrorPrefix  string
}

// Option configures the TUI runner.
type Option func(*Runner)

// WithPromptDriver overrides the prompt driver used by the runner.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Runner) {
		r.theme = theme
	}
}

// WithConfirmPrompt overrides the message shown before submission.
func WithConfirmPrompt(message string) Option {
	return func(r *Runner) {
		if message != "" {
			r.confirmPrompt = message
		}
	}
}

// WithoutConfirm skips the final confirmation prompt and submits directly
// after the last field.
func WithoutConfirm() Option {
	return func(r *Runner) {
		r.skipConfirm = true
	}
}
