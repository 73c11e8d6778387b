package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"internsift/app/job"
)

var skipLinkFragments = []string{
	"unsubscribe", "mailto:", "preferences", "privacy", "terms",
	"help.", "support.", "settings", "notifications/unsub",
}

// DirEmailSource reads saved job-alert messages (.eml or .html) from a
// directory. Mail retrieval itself lives behind the EmailSource contract;
// this implementation covers exported alerts.
type DirEmailSource struct {
	dir string
}

func NewDirEmailSource(dir string) *DirEmailSource {
	return &DirEmailSource{dir: dir}
}

func (s *DirEmailSource) Fetch(ctx context.Context) ([]Message, error) {
	if s.dir == "" {
		return nil, nil
	}
	if _, err := os.Stat(s.dir); os.IsNotExist(err) {
		return nil, nil
	}

	var files []string
	for _, pattern := range []string{"*.eml", "*.html"} {
		matched, err := filepath.Glob(filepath.Join(s.dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to list alert files: %w", err)
		}
		files = append(files, matched...)
	}
	sort.Strings(files)

	var out []Message
	for _, file := range files {
		select {
		case <-ctx.Done():
			return out, ctx.Err()
		default:
		}

		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		msg := parseAlertFile(filepath.Base(file), string(data))
		if len(msg.URLs) > 0 {
			out = append(out, msg)
		}
	}
	return out, nil
}

// parseAlertFile handles both raw HTML exports and simple eml dumps where
// headers precede the HTML body.
func parseAlertFile(name, content string) Message {
	msg := Message{Subject: strings.TrimSuffix(strings.TrimSuffix(name, ".eml"), ".html")}

	if i := strings.Index(content, "<"); i > 0 {
		headers := content[:i]
		for _, line := range strings.Split(headers, "\n") {
			if v, ok := strings.CutPrefix(line, "Subject: "); ok {
				msg.Subject = strings.TrimSpace(v)
			}
			if v, ok := strings.CutPrefix(line, "From: "); ok {
				msg.Sender = strings.TrimSpace(v)
			}
		}
		content = content[i:]
	}

	msg.HTML = content
	msg.URLs = ExtractURLs(content)
	return msg
}

// ExtractURLs pulls candidate job links out of an HTML body, dropping
// tracking and housekeeping links and deduplicating in order.
func ExtractURLs(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	seen := make(map[string]struct{})
	var out []string
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		href = strings.TrimSpace(href)
		if !strings.HasPrefix(href, "http") {
			return
		}
		lower := strings.ToLower(href)
		for _, frag := range skipLinkFragments {
			if strings.Contains(lower, frag) {
				return
			}
		}
		key := job.CleanURL(href)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		out = append(out, href)
	})
	return out
}

// EmailAdapter turns alert messages into pipeline candidates.
type EmailAdapter struct {
	source EmailSource
	name   string
}

func NewEmailAdapter(src EmailSource, name string) *EmailAdapter {
	return &EmailAdapter{source: src, name: name}
}

func (a *EmailAdapter) Name() string { return a.name }

func (a *EmailAdapter) Fetch(ctx context.Context) ([]job.Candidate, error) {
	messages, err := a.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	var out []job.Candidate
	for _, msg := range messages {
		for _, u := range msg.URLs {
			out = append(out, job.Candidate{
				SourceURL:   u,
				ResolvedURL: ResolveEmbedded(u),
				Hints:       job.Hints{Title: titleFromSubject(msg.Subject)},
				Origin:      job.OriginEmailAlert,
				Service:     ServiceFor(u),
			})
		}
	}
	return out, nil
}

// titleFromSubject salvages a weak title hint from alert subjects shaped
// like `New jobs for "software engineering intern"`.
func titleFromSubject(subject string) string {
	if i := strings.Index(subject, `"`); i >= 0 {
		if j := strings.Index(subject[i+1:], `"`); j > 0 {
			return subject[i+1 : i+1+j]
		}
	}
	return ""
}
