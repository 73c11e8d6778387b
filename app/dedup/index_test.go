package dedup

import "testing"

func TestIndex_IsDuplicate_KnownURL(t *testing.T) {
	idx := NewIndex(nil, []string{"https://example.com/jobs/1?x=1"}, nil)

	if !idx.IsDuplicate("Acme", "Software Intern", "https://example.com/jobs/1", "") {
		t.Error("expected duplicate for known canonical URL")
	}
}

func TestIndex_IsDuplicate_KnownKeyUnresolvedID(t *testing.T) {
	idx := NewIndex(nil, nil, nil)
	idx.Commit("Acme", "Software Intern", "https://example.com/jobs/1", "")

	if !idx.IsDuplicate("Acme", "Software Intern", "https://example.com/jobs/2", "") {
		t.Error("expected duplicate: same identity key, no job id on either side")
	}
}

func TestIndex_IsDuplicate_SameKeyMatchingID(t *testing.T) {
	idx := NewIndex(nil, nil, nil)
	idx.Commit("Acme", "Software Intern", "https://example.com/jobs/1", "REQ-1234")

	if !idx.IsDuplicate("Acme", "Software Intern", "https://example.com/jobs/2", "req-1234") {
		t.Error("expected duplicate: job ids match case-insensitively")
	}
}

func TestIndex_IsDuplicate_SameKeyDistinctIDsNotDuplicate(t *testing.T) {
	idx := NewIndex(nil, nil, nil)
	idx.Commit("Acme", "Software Intern", "https://example.com/jobs/1", "REQ-1234")

	// Same company+title at a different requisition is a separate posting.
	if idx.IsDuplicate("Acme", "Software Intern", "https://example.com/jobs/2", "REQ-9999") {
		t.Error("distinct resolved job ids must not be deduplicated")
	}
}

func TestIndex_IsDuplicate_KnownIDUnderDifferentKey(t *testing.T) {
	idx := NewIndex(nil, nil, []string{"req-1234"})

	if !idx.IsDuplicate("Other Corp", "Data Intern", "https://example.com/jobs/3", "REQ-1234") {
		t.Error("expected duplicate: resolved job id already known under another key")
	}
}

func TestIndex_ClaimAndRelease(t *testing.T) {
	idx := NewIndex(nil, nil, nil)

	if !idx.Claim("https://example.com/jobs/1") {
		t.Fatal("first claim should succeed")
	}
	if idx.Claim("https://example.com/jobs/1?utm=x") {
		t.Error("second claim of the same canonical URL should fail")
	}

	idx.Release("https://example.com/jobs/1")
	if !idx.Claim("https://example.com/jobs/1") {
		t.Error("claim after release should succeed")
	}
}

func TestIndex_Claim_KnownURLFails(t *testing.T) {
	idx := NewIndex(nil, []string{"https://example.com/jobs/1"}, nil)
	if idx.Claim("https://example.com/jobs/1") {
		t.Error("claim of an already-known URL should fail")
	}
}

func TestIndex_NormalizedFormsCollide(t *testing.T) {
	idx := NewIndex(nil, nil, nil)
	idx.Commit("Acme Corp", "Software Intern", "", "")

	if !idx.IsDuplicate("ACME, CORP!!", "software intern", "", "") {
		t.Error("expected duplicate across normalization-equivalent forms")
	}
}
