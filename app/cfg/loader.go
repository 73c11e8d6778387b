package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	DBPath string `long:"db-path" env:"DB_PATH" default:"./internsift.db" description:"Path to the sqlite database file"`

	RulesDir string `long:"rules-dir" env:"RULES_DIR" default:"./rules" description:"Directory containing rule table override files"`

	GithubFeedURLs []string `long:"github-feed" env:"GITHUB_FEEDS" env-delim:"," description:"GitHub internship listing URL (repeatable)"`
	RSSFeedURLs    []string `long:"rss-feed" env:"RSS_FEEDS" env-delim:"," description:"Job alert RSS/Atom feed URL (repeatable)"`
	EmailDir       string   `long:"email-dir" env:"EMAIL_DIR" description:"Directory of saved job-alert emails (.eml or .html)"`

	Season        string `long:"season" env:"SEASON" default:"Summer" description:"Accepted hiring season"`
	CycleYear     int    `long:"cycle-year" env:"CYCLE_YEAR" default:"2026" description:"Hiring cycle graduation year"`
	MaxJobAgeDays int    `long:"max-age-days" env:"MAX_AGE_DAYS" default:"3" description:"Maximum posting age in days for listing sources"`

	UserAgent    string `long:"user-agent" env:"USER_AGENT" default:"internsift/1.0" description:"User agent string for HTTP requests"`
	FetchTimeout int    `long:"fetch-timeout" env:"FETCH_TIMEOUT" default:"30" description:"Page fetch timeout in seconds"`
	Port         string `long:"port" env:"PORT" default:"8080" description:"HTTP server port (daemon mode)"`
	APIAccessKey string `long:"api-key" env:"API_ACCESS_KEY" description:"API access key for authentication (optional)"`

	Schedule string `long:"schedule" env:"SCHEDULE" description:"Cron expression for daemon mode; empty runs once and exits"`

	Timezone string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug    bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		DBPath:         raw.DBPath,
		RulesDir:       raw.RulesDir,
		GithubFeedURLs: raw.GithubFeedURLs,
		RSSFeedURLs:    raw.RSSFeedURLs,
		EmailDir:       raw.EmailDir,
		Season:         raw.Season,
		CycleYear:      raw.CycleYear,
		MaxJobAgeDays:  raw.MaxJobAgeDays,
		UserAgent:      raw.UserAgent,
		FetchTimeout:   raw.FetchTimeout,
		Port:           raw.Port,
		APIAccessKey:   raw.APIAccessKey,
		Schedule:       raw.Schedule,
		Timezone:       raw.Timezone,
		Debug:          raw.Debug,
		Version:        GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	return cfg, nil
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		loc, err := time.LoadLocation(timezone)
		if err != nil {
			return err
		}
		time.Local = loc
	}
	return nil
}
