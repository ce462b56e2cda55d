package articlemeta

// Metadata is the structured result of §4.7: every field is optional, left
// at its zero value when no chain step in the priority order produced one.
type Metadata struct {
	Title              string
	Author             string
	Date               string
	Excerpt            string
	SiteName           string
	Language           string
	WordCount          int
	ReadingTimeMinutes float64
}
