package cfg

type Cfg struct {
	// Persistence
	DBPath string

	// Rule tables
	RulesDir string

	// Sources
	GithubFeedURLs []string
	RSSFeedURLs    []string
	EmailDir       string

	// Hiring cycle
	Season        string
	CycleYear     int
	MaxJobAgeDays int

	// HTTP
	UserAgent      string
	FetchTimeout   int
	Port           string
	APIAccessKey   string

	// Scheduling
	Schedule string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
