package rules

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsCompile(t *testing.T) {
	set, err := Compile(Defaults())
	if err != nil {
		t.Fatal(err)
	}

	if len(set.URLCompany) == 0 {
		t.Error("no url company patterns compiled")
	}
	if len(set.JobID) == 0 {
		t.Error("no job id patterns compiled")
	}
	if !set.IsUSState("TX") || set.IsUSState("ZZ") {
		t.Error("state lookup broken")
	}
	if !set.IsCanadaProvince("ON") || set.IsCanadaProvince("TX") {
		t.Error("province lookup broken")
	}
	if !set.IsAcronym("IBM") {
		t.Error("acronym lookup broken")
	}
}

func TestLoader_NoRulesDirUsesDefaults(t *testing.T) {
	set, err := NewLoader("").Load()
	if err != nil {
		t.Fatal(err)
	}
	if !set.IsBlacklisted("Revature") {
		t.Error("default blacklist missing")
	}
}

func TestLoader_OverridesTables(t *testing.T) {
	dir := t.TempDir()
	override := `company_blacklist:
  - BadActor Staffing
seasons:
  - Summer
  - Winter
`
	if err := os.WriteFile(filepath.Join(dir, "10_custom.yml"), []byte(override), 0644); err != nil {
		t.Fatal(err)
	}

	set, err := NewLoader(dir).Load()
	if err != nil {
		t.Fatal(err)
	}

	if !set.IsBlacklisted("BadActor Staffing") {
		t.Error("override blacklist entry missing")
	}
	if set.IsBlacklisted("Revature") {
		t.Error("overridden table should replace the default list")
	}
	if len(set.Seasons) != 2 {
		t.Errorf("seasons = %v, want override applied", set.Seasons)
	}
	// Untouched tables keep their defaults.
	if len(set.USStates) == 0 {
		t.Error("untouched table lost its defaults")
	}
}

func TestLoader_BadYamlFails(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.yml"), []byte("seasons: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewLoader(dir).Load(); err == nil {
		t.Error("expected an error for malformed yaml")
	}
}
