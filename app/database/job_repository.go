package database

import (
	"fmt"
	"strings"

	"internsift/app/job"
)

var _ JobStore = (*JobRepository)(nil)

// JobRepository persists output rows in sqlite, one table per sheet.
type JobRepository struct {
	db *DB
}

func NewJobRepository(db *DB) *JobRepository {
	return &JobRepository{db: db}
}

// LoadExistingKeys reads both tables and derives the identity sets:
// normalized company+title keys, canonicalized URLs, and lowercased
// non-sentinel job ids. Transient fetch-failure rows are left out so their
// URLs stay claimable on the next run.
func (r *JobRepository) LoadExistingKeys() (*ExistingKeys, error) {
	keys := &ExistingKeys{}
	seen := make(map[string]struct{})

	for _, table := range []string{"valid_jobs", "discarded_jobs"} {
		rows, err := r.db.Query(fmt.Sprintf(
			`SELECT company, title, job_url, job_id FROM %s WHERE status != ?`, table),
			job.ReasonFetchFailed)
		if err != nil {
			return nil, fmt.Errorf("failed to load existing keys from %s: %w", table, err)
		}

		for rows.Next() {
			var company, title, url, jobID string
			if err := rows.Scan(&company, &title, &url, &jobID); err != nil {
				rows.Close()
				return nil, fmt.Errorf("failed to scan row from %s: %w", table, err)
			}

			key := job.IdentityKey(company, title)
			if _, dup := seen["k:"+key]; !dup {
				seen["k:"+key] = struct{}{}
				keys.IdentityKeys = append(keys.IdentityKeys, key)
			}
			if u := job.CleanURL(url); u != "" {
				if _, dup := seen["u:"+u]; !dup {
					seen["u:"+u] = struct{}{}
					keys.URLs = append(keys.URLs, u)
				}
			}
			id := strings.ToLower(strings.TrimSpace(jobID))
			if id != "" && id != strings.ToLower(job.SentinelNoID) && !strings.HasPrefix(id, "hash_") {
				if _, dup := seen["i:"+id]; !dup {
					seen["i:"+id] = struct{}{}
					keys.JobIDs = append(keys.JobIDs, id)
				}
			}
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to iterate %s: %w", table, err)
		}
		rows.Close()
	}

	return keys, nil
}

// AppendRows inserts the run's output. Sr.No continues from the current
// maximum per table.
func (r *JobRepository) AppendRows(valid, discarded []job.Row) (int, int, error) {
	validCount, err := r.appendTo("valid_jobs", valid)
	if err != nil {
		return 0, 0, err
	}
	discardedCount, err := r.appendTo("discarded_jobs", discarded)
	if err != nil {
		return validCount, 0, err
	}
	return validCount, discardedCount, nil
}

func (r *JobRepository) appendTo(table string, rows []job.Row) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var nextSrNo int
	err = tx.QueryRow(fmt.Sprintf(`SELECT COALESCE(MAX(sr_no), 0) + 1 FROM %s`, table)).Scan(&nextSrNo)
	if err != nil {
		return 0, fmt.Errorf("failed to read max sr_no from %s: %w", table, err)
	}

	stmt, err := tx.Prepare(fmt.Sprintf(`
		INSERT INTO %s (
			sr_no, status, company, title, date_applied, job_url, job_id,
			job_type, location, remote, entry_date, source, sponsorship
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, table))
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert for %s: %w", table, err)
	}
	defer stmt.Close()

	for i, row := range rows {
		_, err := stmt.Exec(
			nextSrNo+i, row.Status, row.Company, row.Title, row.DateApplied,
			row.JobURL, row.JobID, row.JobType, row.Location, row.Remote,
			row.EntryDate, row.Source, row.Sponsorship)
		if err != nil {
			return 0, fmt.Errorf("failed to insert row into %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit insert into %s: %w", table, err)
	}
	return len(rows), nil
}

// RecentRows returns the latest rows of one sheet, newest first.
func (r *JobRepository) RecentRows(sheet string, limit int) ([]job.Row, error) {
	table, err := tableFor(sheet)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(fmt.Sprintf(`
		SELECT sr_no, status, company, title, date_applied, job_url, job_id,
		       job_type, location, remote, entry_date, source, sponsorship
		FROM %s ORDER BY sr_no DESC LIMIT ?`, table), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	var out []job.Row
	for rows.Next() {
		var row job.Row
		if err := rows.Scan(
			&row.SrNo, &row.Status, &row.Company, &row.Title, &row.DateApplied,
			&row.JobURL, &row.JobID, &row.JobType, &row.Location, &row.Remote,
			&row.EntryDate, &row.Source, &row.Sponsorship); err != nil {
			return nil, fmt.Errorf("failed to scan row from %s: %w", table, err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *JobRepository) RowCounts() (int, int, error) {
	var valid, discarded int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM valid_jobs`).Scan(&valid); err != nil {
		return 0, 0, fmt.Errorf("failed to count valid rows: %w", err)
	}
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM discarded_jobs`).Scan(&discarded); err != nil {
		return 0, 0, fmt.Errorf("failed to count discarded rows: %w", err)
	}
	return valid, discarded, nil
}

func tableFor(sheet string) (string, error) {
	switch strings.ToLower(sheet) {
	case "valid", "valid_jobs":
		return "valid_jobs", nil
	case "discarded", "discarded_jobs":
		return "discarded_jobs", nil
	default:
		return "", fmt.Errorf("unknown sheet: %s", sheet)
	}
}
