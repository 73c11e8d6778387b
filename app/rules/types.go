package rules

// PatternName maps a URL regular expression to a canonical company name.
type PatternName struct {
	Pattern string `yaml:"pattern"`
	Name    string `yaml:"name"`
}

// IDPattern is a job-id extraction regular expression with the confidence
// assigned to values it captures.
type IDPattern struct {
	Pattern    string  `yaml:"pattern"`
	Confidence float64 `yaml:"confidence"`
}

// Ambiguity describes a city name that exists both in Canada and the US.
// Resolution uses surrounding context (see classify.Geography).
type Ambiguity struct {
	Province string   `yaml:"province"`
	USStates []string `yaml:"us_states"`
}

// Tables holds every static lookup table the resolvers and classifiers
// consume. Defaults are compiled in; a rules directory of yml files can
// override individual tables.
type Tables struct {
	// Company resolution
	URLCompanyPatterns  []PatternName     `yaml:"url_company_patterns"`
	CompanyAliases      map[string]string `yaml:"company_aliases"`
	CompanyPlaceholders []string          `yaml:"company_placeholders"`
	CompanyStopwords    []string          `yaml:"company_stopwords"`
	GarbageCompanies    []string          `yaml:"garbage_companies"`
	CompanyBlacklist    []string          `yaml:"company_blacklist"`
	CompoundWords       map[string]string `yaml:"compound_words"`
	Acronyms            []string          `yaml:"acronyms"`
	SpecialCaps         map[string]string `yaml:"special_caps"`
	InternationalMarks  []string          `yaml:"international_marks"`

	// Title and role classification
	InternshipKeywords []string `yaml:"internship_keywords"`
	SeniorityKeywords  []string `yaml:"seniority_keywords"`
	ManagerAllowed     []string `yaml:"manager_allowed"`
	TitleSpamPatterns  []string `yaml:"title_spam_patterns"`
	TechnicalKeywords  []string `yaml:"technical_keywords"`
	NonTechnicalPure   []string `yaml:"non_technical_pure"`
	Seasons            []string `yaml:"seasons"`

	// Location
	USStates          []string             `yaml:"us_states"`
	StateNames        map[string]string    `yaml:"state_names"`
	CityToState       map[string]string    `yaml:"city_to_state"`
	CityAbbreviations map[string]string    `yaml:"city_abbreviations"`
	LocationSuffixes  []string             `yaml:"location_suffixes"`
	WorkdayHQCodes    map[string]string    `yaml:"workday_hq_codes"`
	CountrySuffixes   []string             `yaml:"country_suffixes"`

	// Geography (international detection)
	CanadaProvinces     []string             `yaml:"canada_provinces"`
	CanadaProvinceNames []string             `yaml:"canada_province_names"`
	CanadianCities      map[string]string    `yaml:"canadian_cities"`
	AmbiguousCities     map[string]Ambiguity `yaml:"ambiguous_cities"`
	CanadaContext       []string             `yaml:"canada_context"`
	USContext           []string             `yaml:"us_context"`
	UKCities            []string             `yaml:"uk_cities"`
	CountryKeywords     []string             `yaml:"country_keywords"`

	// Dead-posting detection
	DeadURLPatterns []string `yaml:"dead_url_patterns"`
	DeadPageTitles  []string `yaml:"dead_page_titles"`

	// Job id extraction
	JobIDPatterns  []IDPattern `yaml:"job_id_patterns"`
	InvalidIDWords []string    `yaml:"invalid_id_words"`

	// Restrictions and sponsorship
	ClearancePatterns   []string `yaml:"clearance_patterns"`
	CitizenshipPatterns []string `yaml:"citizenship_patterns"`
	DegreeFlexPhrases   []string `yaml:"degree_flex_phrases"`
	SponsorYesPatterns  []string `yaml:"sponsor_yes_patterns"`
	SponsorNoPatterns   []string `yaml:"sponsor_no_patterns"`
	AgeSkipIndicators   []string `yaml:"age_skip_indicators"`
}
