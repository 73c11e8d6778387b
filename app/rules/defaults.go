package rules

// Defaults returns the built-in rule tables. Entries are accumulated from
// production runs; the yml override path exists so the lists can grow
// without a rebuild.
func Defaults() Tables {
	return Tables{
		URLCompanyPatterns: []PatternName{
			{Pattern: `boards\.greenhouse\.io/stripe`, Name: "Stripe"},
			{Pattern: `boards\.greenhouse\.io/airbnb`, Name: "Airbnb"},
			{Pattern: `boards\.greenhouse\.io/robinhood`, Name: "Robinhood"},
			{Pattern: `boards\.greenhouse\.io/coinbase`, Name: "Coinbase"},
			{Pattern: `jobs\.lever\.co/palantir`, Name: "Palantir"},
			{Pattern: `jobs\.lever\.co/plaid`, Name: "Plaid"},
			{Pattern: `jobs\.ashbyhq\.com/ramp`, Name: "Ramp"},
			{Pattern: `jobs\.ashbyhq\.com/notion`, Name: "Notion"},
			{Pattern: `amazon\.jobs`, Name: "Amazon"},
			{Pattern: `careers\.google\.com`, Name: "Google"},
			{Pattern: `careers\.microsoft\.com`, Name: "Microsoft"},
			{Pattern: `jobs\.apple\.com`, Name: "Apple"},
			{Pattern: `metacareers\.com`, Name: "Meta"},
			{Pattern: `jobs\.netflix\.com`, Name: "Netflix"},
			{Pattern: `nvidia\.wd5\.myworkdayjobs\.com`, Name: "NVIDIA"},
			{Pattern: `gs\.wd5\.myworkdayjobs\.com`, Name: "Goldman Sachs"},
			{Pattern: `capitalone\.wd1?\d*\.myworkdayjobs\.com`, Name: "Capital One"},
			{Pattern: `jpmc\.fa\.oraclecloud\.com`, Name: "JPMorgan Chase"},
			{Pattern: `tesla\.com/careers`, Name: "Tesla"},
			{Pattern: `spacex\.com/careers`, Name: "SpaceX"},
		},
		CompanyAliases: map[string]string{
			"goldmansachs": "Goldman Sachs",
			"jpmorganchase": "JPMorgan Chase",
			"bankofamerica": "Bank of America",
			"morganstanley": "Morgan Stanley",
			"americanexpress": "American Express",
			"generalmotors": "General Motors",
			"lockheedmartin": "Lockheed Martin",
			"northropgrumman": "Northrop Grumman",
			"texasinstruments": "Texas Instruments",
			"johnsonandjohnson": "Johnson & Johnson",
		},
		CompanyPlaceholders: []string{
			"unknown", "company", "careers", "jobs", "portal", "external",
			"applicant", "apply", "join", "job board", "talent", "workday",
			"greenhouse", "lever", "icims", "smartrecruiters",
		},
		CompanyStopwords: []string{
			"careers", "career", "jobs", "job", "hiring", "talent",
			"recruiting", "apply", "portal", "external",
		},
		GarbageCompanies: []string{
			"myworkdayjobs", "oraclecloud", "taleo", "brassring",
			"jobvite", "recruiting", "successfactors", "eightfold",
		},
		CompanyBlacklist: []string{
			"Revature", "SynergisticIT", "Team Remotely", "HireMeFast",
			"Pattern Learning", "Aptiva Corp", "SkillStorm", "Avant Techno",
		},
		CompoundWords: map[string]string{
			"goldmansachs":    "Goldman Sachs",
			"morganstanley":   "Morgan Stanley",
			"bankofamerica":   "Bank of America",
			"wellsfargo":      "Wells Fargo",
			"americanairlines": "American Airlines",
			"generalelectric": "General Electric",
			"unitedhealth":    "UnitedHealth",
		},
		Acronyms: []string{"ibm", "att", "sap", "adp", "aws", "amd", "hpe", "ea", "ge", "ups", "cvs"},
		SpecialCaps: map[string]string{
			"openai":     "OpenAI",
			"deepmind":   "DeepMind",
			"linkedin":   "LinkedIn",
			"paypal":     "PayPal",
			"ebay":       "eBay",
			"github":     "GitHub",
			"mongodb":    "MongoDB",
			"databricks": "Databricks",
			"tiktok":     "TikTok",
			"doordash":   "DoorDash",
		},
		InternationalMarks: []string{
			"(united kingdom)", "(uk)", "(canada)", "(india)", "(china)",
			"(singapore)", "(australia)", "(germany)", "(france)", "(ireland)",
			"(israel)", " ltd.", " gmbh", " pty",
		},

		InternshipKeywords: []string{"intern", "internship", "co-op", "coop", "co op"},
		SeniorityKeywords: []string{
			"senior", "sr.", "sr ", "staff", "principal", "lead",
			"architect", "director",
		},
		ManagerAllowed: []string{"product manager", "program manager"},
		TitleSpamPatterns: []string{
			`^application\b`, `^apply\s`, `apply\s+now`, `click\s+here`,
			`view\s+job`, `submit\s+your`, `^join\s`, `^sign\s+in`,
			`^log\s*in`, `^search\s+jobs`,
		},
		TechnicalKeywords: []string{
			"software", "engineer", "engineering", "developer", "swe",
			"data", "machine learning", "ml", "ai", "artificial intelligence",
			"backend", "back end", "frontend", "front end", "full stack",
			"fullstack", "devops", "sre", "site reliability", "security",
			"cyber", "cloud", "infrastructure", "platform", "mobile", "ios",
			"android", "embedded", "firmware", "robotics", "computer vision",
			"nlp", "analytics", "quantitative", "quant", "research scientist",
			"systems", "network", "database", "qa", "test", "automation",
			"hardware", "fpga", "asic", "silicon", "technology", "technical",
			"it ", "information technology", "product manager", "program manager",
		},
		NonTechnicalPure: []string{
			"sales", "marketing", "accounting", "finance intern", "hr ",
			"human resources", "recruiter", "legal", "paralegal", "nurse",
			"clinical", "retail", "barista", "cashier", "warehouse",
			"driver", "culinary", "chef", "social media", "copywriter",
			"fashion", "merchandising", "supply chain coordinator",
		},
		Seasons: []string{"Spring", "Summer", "Fall", "Autumn", "Winter"},

		USStates: []string{
			"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
			"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
			"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
			"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
			"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY", "DC",
		},
		StateNames: map[string]string{
			"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR",
			"california": "CA", "colorado": "CO", "connecticut": "CT",
			"delaware": "DE", "florida": "FL", "georgia": "GA", "hawaii": "HI",
			"idaho": "ID", "illinois": "IL", "indiana": "IN", "iowa": "IA",
			"kansas": "KS", "kentucky": "KY", "louisiana": "LA", "maine": "ME",
			"maryland": "MD", "massachusetts": "MA", "michigan": "MI",
			"minnesota": "MN", "mississippi": "MS", "missouri": "MO",
			"montana": "MT", "nebraska": "NE", "nevada": "NV",
			"new hampshire": "NH", "new jersey": "NJ", "new mexico": "NM",
			"new york": "NY", "north carolina": "NC", "north dakota": "ND",
			"ohio": "OH", "oklahoma": "OK", "oregon": "OR",
			"pennsylvania": "PA", "rhode island": "RI", "south carolina": "SC",
			"south dakota": "SD", "tennessee": "TN", "texas": "TX",
			"utah": "UT", "vermont": "VT", "virginia": "VA",
			"washington": "WA", "west virginia": "WV", "wisconsin": "WI",
			"wyoming": "WY",
		},
		CityToState: map[string]string{
			"new york": "NY", "new york city": "NY", "brooklyn": "NY",
			"san francisco": "CA", "mountain view": "CA", "palo alto": "CA",
			"sunnyvale": "CA", "menlo park": "CA", "san jose": "CA",
			"santa clara": "CA", "cupertino": "CA", "los angeles": "CA",
			"san diego": "CA", "irvine": "CA", "sacramento": "CA",
			"seattle": "WA", "redmond": "WA", "bellevue": "WA",
			"austin": "TX", "dallas": "TX", "houston": "TX", "plano": "TX",
			"boston": "MA", "cambridge": "MA", "somerville": "MA",
			"chicago": "IL", "denver": "CO", "boulder": "CO",
			"atlanta": "GA", "miami": "FL", "tampa": "FL", "orlando": "FL",
			"philadelphia": "PA", "pittsburgh": "PA", "phoenix": "AZ",
			"portland": "OR", "detroit": "MI", "ann arbor": "MI",
			"minneapolis": "MN", "st. louis": "MO", "kansas city": "MO",
			"charlotte": "NC", "raleigh": "NC", "durham": "NC",
			"nashville": "TN", "columbus": "OH", "cincinnati": "OH",
			"salt lake city": "UT", "las vegas": "NV", "baltimore": "MD",
			"washington": "DC", "arlington": "VA", "reston": "VA",
			"mclean": "VA", "jersey city": "NJ", "hoboken": "NJ",
			"stamford": "CT", "hartford": "CT", "madison": "WI",
			"milwaukee": "WI", "indianapolis": "IN", "louisville": "KY",
			"oklahoma city": "OK", "tulsa": "OK", "albuquerque": "NM",
			"boise": "ID", "omaha": "NE", "des moines": "IA",
		},
		CityAbbreviations: map[string]string{
			"sf":     "San Francisco",
			"nyc":    "New York",
			"la":     "Los Angeles",
			"dc":     "Washington",
			"philly": "Philadelphia",
			"slc":    "Salt Lake City",
		},
		LocationSuffixes: []string{
			"metro area", "metropolitan area", "greater", "area", "region",
			"united states", "usa", "us", "headquarters", "hq", "office",
			"campus", "onsite", "on-site", "hybrid",
		},
		WorkdayHQCodes: map[string]string{
			"USNYNYC": "New York, NY",
			"USCASFO": "San Francisco, CA",
			"USCAPAL": "Palo Alto, CA",
			"USWASEA": "Seattle, WA",
			"USTXAUS": "Austin, TX",
			"USILCHI": "Chicago, IL",
			"USMABOS": "Boston, MA",
			"USVAARL": "Arlington, VA",
		},
		CountrySuffixes: []string{
			"united-states-of-america", "united-states", "usa", "us",
			"canada", "united-kingdom", "india", "germany", "france",
		},

		CanadaProvinces: []string{"ON", "QC", "BC", "AB", "MB", "SK", "NS", "NB", "NL", "PE"},
		CanadaProvinceNames: []string{
			"ontario", "quebec", "british columbia", "alberta", "manitoba",
			"saskatchewan", "nova scotia", "new brunswick", "newfoundland",
			"prince edward island",
		},
		CanadianCities: map[string]string{
			"toronto": "ON", "ottawa": "ON", "markham": "ON",
			"mississauga": "ON", "brampton": "ON", "kitchener": "ON",
			"montreal": "QC", "quebec city": "QC", "laval": "QC",
			"calgary": "AB", "edmonton": "AB", "winnipeg": "MB",
			"victoria": "BC", "burnaby": "BC", "surrey": "BC",
			"halifax": "NS", "saskatoon": "SK", "regina": "SK",
		},
		AmbiguousCities: map[string]Ambiguity{
			"vancouver": {Province: "BC", USStates: []string{"WA"}},
			"london":    {Province: "ON", USStates: []string{"KY", "OH"}},
			"cambridge": {Province: "ON", USStates: []string{"MA"}},
			"waterloo":  {Province: "ON", USStates: []string{"IA"}},
			"windsor":   {Province: "ON", USStates: []string{"CT"}},
			"richmond":  {Province: "BC", USStates: []string{"VA", "CA"}},
			"ontario":   {Province: "ON", USStates: []string{"CA"}},
		},
		CanadaContext: []string{
			"canada", "canadian", "province", "postal code", " cad ",
			"tfsa", "work permit", "permanent resident of canada",
		},
		USContext: []string{
			"united states", "u.s.", "usa", "american", "zip code",
			"401k", "401(k)", "eeo", "equal opportunity employer",
		},
		UKCities: []string{
			"london uk", "manchester", "birmingham uk", "edinburgh",
			"glasgow", "bristol", "leeds", "dublin", "belfast",
		},
		CountryKeywords: []string{
			"united kingdom", " uk,", "(uk)", "india", "china", "japan",
			"singapore", "australia", "germany", "france", "netherlands",
			"ireland", "israel", "brazil", "mexico", "poland", "spain",
			"sweden", "switzerland",
		},

		DeadURLPatterns: []string{
			"notfound=1", "/job-not-found", "/careers/error", "?error=404",
			"/404", "/page-not-found", "jobnotfound", "/expired",
			"/position-closed", "/search?", "/jobs/search",
		},
		DeadPageTitles: []string{
			"page not found", "no longer available", "job has expired",
			"position has been filled", "job not found", "404",
			"join our team", "current openings", "all open positions",
			"search jobs", "job search", "careers home",
		},

		JobIDPatterns: []IDPattern{
			{Pattern: `(?i)/jobs?/(\d{5,10})(?:/|$|\?)`, Confidence: 0.90},
			{Pattern: `(?i)[?&]gh_jid=(\d+)`, Confidence: 0.95},
			{Pattern: `(?i)/([A-Z]{1,4}-?\d{4,10})(?:/|$|\?)`, Confidence: 0.85},
			{Pattern: `(?i)_(R-?\d{4,8})(?:/|$|\?)`, Confidence: 0.88},
			{Pattern: `(?i)(JR\d{4,8})`, Confidence: 0.88},
			{Pattern: `(?i)(REQ-?\d{3,8})`, Confidence: 0.85},
			{Pattern: `(?i)[?&](?:job_?id|jid|req(?:uisition)?id)=([A-Za-z0-9\-_]{3,20})`, Confidence: 0.92},
		},
		InvalidIDWords: []string{
			"APPLY", "NOW", "HERE", "JOIN", "CLICK", "VIEW",
			"SOFTWARE", "ENGINEER",
		},

		ClearancePatterns: []string{
			`(?i)security\s+clearance`, `(?i)ts/sci`, `(?i)top\s+secret`,
			`(?i)polygraph`, `(?i)active\s+(?:secret|clearance)`,
		},
		CitizenshipPatterns: []string{
			`(?i)(?:u\.?s\.?|united states)\s+citizenship\s+(?:is\s+)?required`,
			`(?i)must\s+be\s+a?\s*(?:u\.?s\.?|united states)\s+citizen`,
			`(?i)citizenship:\s*(?:u\.?s\.?|united states)`,
			`(?i)u\.?s\.?\s+person(?:s)?\s+(?:status\s+)?(?:is\s+)?required`,
			`(?i)itar\s+requirements?`,
		},
		DegreeFlexPhrases: []string{
			"or higher", "or above", "or equivalent", "or related",
			"master", "masters", "ms/phd", "m.s.", "or ms", "or phd",
			"graduate students", "advanced degree", "any degree",
			"all degree levels", "bs/ms", "bachelor's or master's",
		},
		SponsorYesPatterns: []string{
			`(?i)(?:will|does|do|can|provides?)\s+(?:offer\s+)?sponsor`,
			`(?i)h-?1b.{0,40}sponsor`,
			`(?i)sponsorship\s+(?:is\s+)?available`,
		},
		SponsorNoPatterns: []string{
			`(?i)(?:no|not|unable\s+to|cannot|can't|will\s+not|won't|doesn'?t|does\s+not)\s+(?:provide\s+|offer\s+)?sponsor`,
			`(?i)without\s+(?:the\s+need\s+for\s+)?sponsorship`,
			`(?i)sponsorship\s+(?:is\s+)?not\s+available`,
		},
		AgeSkipIndicators: []string{
			"start date", "copyright", "founded", "established",
			"years of experience", "©",
		},
	}
}
