package source

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"

	"internsift/app/fetch"
	"internsift/app/job"
)

var (
	mdLinkRe    = regexp.MustCompile(`\[([^\]]*)\]\((https?://[^)\s]+)\)`)
	mdHrefRe    = regexp.MustCompile(`https?://[^)\s|]+`)
	ageDaysRe   = regexp.MustCompile(`^(\d+)\s*d$`)
	ageMonthsRe = regexp.MustCompile(`^(\d+)\s*mo$`)
	closedMarks = []string{"🔒", "❌", "closed"}
)

// GithubFeed scrapes a community-maintained internship listing: an HTML
// table on the rendered page, or a markdown pipe table when given the raw
// README.
type GithubFeed struct {
	fetcher fetch.PageFetcher
	url     string
	name    string
}

func NewGithubFeed(fetcher fetch.PageFetcher, url, name string) *GithubFeed {
	return &GithubFeed{fetcher: fetcher, url: url, name: name}
}

func (g *GithubFeed) Name() string { return g.name }

func (g *GithubFeed) Fetch(ctx context.Context) ([]job.Candidate, error) {
	res, err := g.fetcher.Fetch(ctx, g.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing: %w", err)
	}

	candidates := g.parseTable(res.Doc)
	if len(candidates) == 0 {
		candidates = g.parseMarkdown(res.Doc.RawText())
	}
	return candidates, nil
}

// parseTable walks HTML table rows. Expected cell order: company, title,
// location, link, age. Listings mark closed roles with a lock or cross in
// the row.
func (g *GithubFeed) parseTable(doc *fetch.Document) []job.Candidate {
	var out []job.Candidate
	lastCompany := ""

	doc.Find("table tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 4 {
			return
		}

		company := strings.TrimSpace(cells.Eq(0).Text())
		// Continuation rows repeat the company as an arrow marker.
		if company == "" || company == "↳" {
			company = lastCompany
		} else {
			lastCompany = company
		}

		title := strings.TrimSpace(cells.Eq(1).Text())
		location := strings.TrimSpace(cells.Eq(2).Text())
		link, _ := cells.Eq(3).Find("a").First().Attr("href")
		age := ""
		if cells.Length() > 4 {
			age = strings.TrimSpace(cells.Eq(4).Text())
		}

		if link == "" || title == "" {
			return
		}

		rowText := strings.ToLower(row.Text())
		closed := false
		for _, mark := range closedMarks {
			if strings.Contains(rowText, mark) {
				closed = true
				break
			}
		}

		out = append(out, job.Candidate{
			SourceURL: link,
			Hints:     job.Hints{Company: company, Title: title, Location: location},
			Origin:    job.OriginGithubFeed,
			Service:   g.name,
			AgeLabel:  age,
			Closed:    closed,
		})
	})

	return out
}

// parseMarkdown handles the raw README form: pipe-delimited rows with
// [text](url) links.
func (g *GithubFeed) parseMarkdown(text string) []job.Candidate {
	var out []job.Candidate
	lastCompany := ""

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "|") || strings.HasPrefix(line, "|--") || strings.HasPrefix(line, "| --") {
			continue
		}
		cols := strings.Split(strings.Trim(line, "|"), "|")
		if len(cols) < 4 {
			continue
		}

		company := cleanMarkdownCell(cols[0])
		if company == "" || company == "↳" {
			company = lastCompany
		} else {
			lastCompany = company
		}
		title := cleanMarkdownCell(cols[1])
		location := cleanMarkdownCell(cols[2])

		link := ""
		if m := mdLinkRe.FindStringSubmatch(cols[3]); m != nil {
			link = m[2]
		} else if m := mdHrefRe.FindString(cols[3]); m != "" {
			link = m
		}
		age := ""
		if len(cols) > 4 {
			age = cleanMarkdownCell(cols[4])
		}

		if link == "" || title == "" || strings.EqualFold(title, "role") {
			continue
		}

		lower := strings.ToLower(line)
		closed := strings.Contains(lower, "🔒") || strings.Contains(lower, "❌")

		out = append(out, job.Candidate{
			SourceURL: link,
			Hints:     job.Hints{Company: company, Title: title, Location: location},
			Origin:    job.OriginGithubFeed,
			Service:   g.name,
			AgeLabel:  age,
			Closed:    closed,
		})
	}
	return out
}

func cleanMarkdownCell(cell string) string {
	cell = strings.TrimSpace(cell)
	if m := mdLinkRe.FindStringSubmatch(cell); m != nil {
		cell = m[1]
	}
	return strings.TrimSpace(strings.Trim(cell, "*_` "))
}

// ParseAgeLabel converts a listing age cell to days: "5d", "2mo", or a
// calendar date like "Oct 15" (assumed this year, rolled back a year when
// that lands in the future).
func ParseAgeLabel(label string, now time.Time) (int, bool) {
	label = strings.TrimSpace(strings.ToLower(label))
	if label == "" {
		return 0, false
	}
	if m := ageDaysRe.FindStringSubmatch(label); m != nil {
		var d int
		fmt.Sscanf(m[1], "%d", &d)
		return d, true
	}
	if m := ageMonthsRe.FindStringSubmatch(label); m != nil {
		var mo int
		fmt.Sscanf(m[1], "%d", &mo)
		return mo * 30, true
	}

	t, err := dateparse.ParseAny(fmt.Sprintf("%s %d", label, now.Year()))
	if err != nil {
		return 0, false
	}
	if t.After(now) {
		t = t.AddDate(-1, 0, 0)
	}
	days := int(now.Sub(t).Hours() / 24)
	if days < 0 {
		return 0, false
	}
	return days, true
}
