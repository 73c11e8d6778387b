package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// URLCompanyRule is a compiled url_company_patterns entry.
type URLCompanyRule struct {
	Re   *regexp.Regexp
	Name string
}

// IDRule is a compiled job_id_patterns entry.
type IDRule struct {
	Re         *regexp.Regexp
	Confidence float64
}

// Set is a Tables value with its regular expressions compiled and its
// membership lists turned into lookup maps. All consumers hold a *Set.
type Set struct {
	Tables

	URLCompany  []URLCompanyRule
	TitleSpam   []*regexp.Regexp
	JobID       []IDRule
	Clearance   []*regexp.Regexp
	Citizenship []*regexp.Regexp
	SponsorYes  []*regexp.Regexp
	SponsorNo   []*regexp.Regexp

	placeholders map[string]struct{}
	garbage      map[string]struct{}
	blacklist    map[string]struct{}
	acronyms     map[string]struct{}
	usStates     map[string]struct{}
	provinces    map[string]struct{}
	invalidIDs   map[string]struct{}
}

func Compile(t Tables) (*Set, error) {
	s := &Set{
		Tables:       t,
		placeholders: toSet(t.CompanyPlaceholders),
		garbage:      toSet(t.GarbageCompanies),
		blacklist:    toSet(t.CompanyBlacklist),
		acronyms:     toSet(t.Acronyms),
		usStates:     toSetUpper(t.USStates),
		provinces:    toSetUpper(t.CanadaProvinces),
		invalidIDs:   toSetUpper(t.InvalidIDWords),
	}

	for _, p := range t.URLCompanyPatterns {
		re, err := regexp.Compile(p.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid url company pattern %q: %w", p.Pattern, err)
		}
		s.URLCompany = append(s.URLCompany, URLCompanyRule{Re: re, Name: p.Name})
	}

	var err error
	if s.TitleSpam, err = compileAll(t.TitleSpamPatterns); err != nil {
		return nil, fmt.Errorf("title spam patterns: %w", err)
	}
	if s.Clearance, err = compileAll(t.ClearancePatterns); err != nil {
		return nil, fmt.Errorf("clearance patterns: %w", err)
	}
	if s.Citizenship, err = compileAll(t.CitizenshipPatterns); err != nil {
		return nil, fmt.Errorf("citizenship patterns: %w", err)
	}
	if s.SponsorYes, err = compileAll(t.SponsorYesPatterns); err != nil {
		return nil, fmt.Errorf("sponsor yes patterns: %w", err)
	}
	if s.SponsorNo, err = compileAll(t.SponsorNoPatterns); err != nil {
		return nil, fmt.Errorf("sponsor no patterns: %w", err)
	}

	for _, p := range t.JobIDPatterns {
		re, err := regexp.Compile(p.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid job id pattern %q: %w", p.Pattern, err)
		}
		s.JobID = append(s.JobID, IDRule{Re: re, Confidence: p.Confidence})
	}

	return s, nil
}

func compileAll(patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", p, err)
		}
		out = append(out, re)
	}
	return out, nil
}

func toSet(items []string) map[string]struct{} {
	m := make(map[string]struct{}, len(items))
	for _, it := range items {
		m[strings.ToLower(it)] = struct{}{}
	}
	return m
}

func toSetUpper(items []string) map[string]struct{} {
	m := make(map[string]struct{}, len(items))
	for _, it := range items {
		m[strings.ToUpper(it)] = struct{}{}
	}
	return m
}

func (s *Set) IsPlaceholder(name string) bool {
	_, ok := s.placeholders[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

func (s *Set) IsGarbageCompany(name string) bool {
	_, ok := s.garbage[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

func (s *Set) IsBlacklisted(name string) bool {
	_, ok := s.blacklist[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

func (s *Set) IsAcronym(name string) bool {
	_, ok := s.acronyms[strings.ToLower(name)]
	return ok
}

func (s *Set) IsUSState(code string) bool {
	_, ok := s.usStates[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

func (s *Set) IsCanadaProvince(code string) bool {
	_, ok := s.provinces[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

func (s *Set) IsInvalidIDWord(id string) bool {
	_, ok := s.invalidIDs[strings.ToUpper(strings.TrimSpace(id))]
	return ok
}
