package database

const (
	CreateBureauReportsTableQuery = `
		CREATE TABLE IF NOT EXISTS bureau_reports (
			report_id UUID PRIMARY KEY,
			bureau_name VARCHAR(64) NOT NULL,
			control_number VARCHAR(128) NOT NULL,
			report_date VARCHAR(10) NOT NULL,
			credit_score INTEGER,
			report JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`

	CreateReportPullsTableQuery = `
		CREATE TABLE IF NOT EXISTS report_pulls (
			pull_id UUID PRIMARY KEY,
			report_id UUID,
			bureau_name VARCHAR(64) NOT NULL,
			outcome VARCHAR(16) NOT NULL,
			credit_score INTEGER,
			error_message TEXT,
			pulled_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`

	InsertBureauReportQuery = `
		INSERT INTO bureau_reports
		(report_id, bureau_name, control_number, report_date, credit_score, report)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (report_id) DO NOTHING
	`

	GetBureauReportByIdQuery = `
		SELECT report_id, bureau_name, control_number, report_date, credit_score, report
		FROM bureau_reports WHERE report_id = $1
	`

	GetBureauReportsByControlNumberQuery = `
		SELECT report_id, bureau_name, control_number, report_date, credit_score, report
		FROM bureau_reports WHERE control_number = $1
		ORDER BY created_at DESC
	`

	InsertReportPullQuery = `
		INSERT INTO report_pulls
		(pull_id, report_id, bureau_name, outcome, credit_score, error_message)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	GetReportPullsByBureauQuery = `
		SELECT pull_id, report_id, bureau_name, outcome, credit_score, error_message, pulled_at
		FROM report_pulls WHERE bureau_name = $1
		ORDER BY pulled_at DESC
	`
)
