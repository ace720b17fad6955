package summarizer

// Formatter renders the summary of a clip preparation run as report text,
// such as the Markdown file written for --summary.
type Formatter interface {
	// Format renders every clip record of summary.
	Format(summary *Summary) string
}

// FormatFunc lets a plain render function act as a Formatter.
type FormatFunc func(summary *Summary) string

// Format calls f(summary).
func (f FormatFunc) Format(summary *Summary) string {
	return f(summary)
}
