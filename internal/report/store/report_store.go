/*
 * Copyright (c) 2025, CreditDesk Pvt Ltd. (https://www.creditdesk.in).
 *
 * CreditDesk Pvt Ltd. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/creditdesk/bureau-data-service/internal/database"
	"github.com/creditdesk/bureau-data-service/internal/report/model"
	errors2 "github.com/creditdesk/bureau-data-service/internal/system/errors"
	"github.com/creditdesk/bureau-data-service/internal/system/log"
)

const queryTimeout = 5 * time.Second

// ReportRepository handles PostgreSQL operations for unified credit reports.
// Reports are stored as JSONB so the struct's JSON field names are the
// storage wire format and round-trip without transformation.
type ReportRepository struct {
	DB *sql.DB
}

// NewReportRepository creates a new repository instance
func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{
		DB: db,
	}
}

// EnsureSchema creates the report tables when they do not exist yet.
func (repo *ReportRepository) EnsureSchema() error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	for _, query := range []string{
		database.CreateBureauReportsTableQuery,
		database.CreateReportPullsTableQuery,
	} {
		if _, err := repo.DB.ExecContext(ctx, query); err != nil {
			return errors2.NewServerError(errors2.ErrDBClientInit, errors.Wrap(err, "create report tables"))
		}
	}
	return nil
}

// InsertReport persists a unified report row.
func (repo *ReportRepository) InsertReport(stored model.StoredReport) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	reportJSON, err := json.Marshal(stored.Report)
	if err != nil {
		return errors2.NewServerError(errors2.ErrMarshalJSON, errors.Wrap(err, "marshal unified report"))
	}

	_, err = repo.DB.ExecContext(ctx, database.InsertBureauReportQuery,
		stored.ReportID,
		stored.BureauName,
		stored.ControlNumber,
		stored.ReportDate,
		stored.CreditScore,
		reportJSON,
	)
	if err != nil {
		logger := log.GetLogger()
		logger.Debug("Failed to insert bureau report", log.String("report_id", stored.ReportID), log.Error(err))
		return errors2.NewServerError(errors2.ErrWhileSavingReport, errors.Wrap(err, "insert bureau_reports row"))
	}
	return nil
}

// GetReport loads one stored report by id. Returns (nil, nil) when no row
// exists; the caller decides whether that is a client error.
func (repo *ReportRepository) GetReport(reportID string) (*model.StoredReport, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	row := repo.DB.QueryRowContext(ctx, database.GetBureauReportByIdQuery, reportID)
	stored, err := scanReportRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileFetchingReport, errors.Wrap(err, "select bureau_reports row"))
	}
	return stored, nil
}

// GetReportsByControlNumber loads every stored report sharing a control
// number, newest first.
func (repo *ReportRepository) GetReportsByControlNumber(controlNumber string) ([]model.StoredReport, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	rows, err := repo.DB.QueryContext(ctx, database.GetBureauReportsByControlNumberQuery, controlNumber)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileFetchingReport, errors.Wrap(err, "select bureau_reports by control number"))
	}
	defer rows.Close()

	var reports []model.StoredReport
	for rows.Next() {
		stored, err := scanReportRows(rows)
		if err != nil {
			return nil, errors2.NewServerError(errors2.ErrWhileFetchingReport, errors.Wrap(err, "scan bureau_reports row"))
		}
		reports = append(reports, *stored)
	}
	if err := rows.Err(); err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileFetchingReport, errors.Wrap(err, "iterate bureau_reports rows"))
	}
	return reports, nil
}

// InsertPull records one bureau pull audit row.
func (repo *ReportRepository) InsertPull(pull model.ReportPull) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var reportID interface{}
	if pull.ReportID != "" {
		reportID = pull.ReportID
	}

	_, err := repo.DB.ExecContext(ctx, database.InsertReportPullQuery,
		pull.PullID,
		reportID,
		pull.BureauName,
		pull.Outcome,
		pull.CreditScore,
		pull.ErrorMessage,
	)
	if err != nil {
		return errors2.NewServerError(errors2.ErrWhileRecordingPull, errors.Wrap(err, "insert report_pulls row"))
	}
	return nil
}

// GetPullsByBureau returns the audit trail for one bureau, newest first.
func (repo *ReportRepository) GetPullsByBureau(bureauName string) ([]model.ReportPull, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	rows, err := repo.DB.QueryContext(ctx, database.GetReportPullsByBureauQuery, bureauName)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileFetchingReport, errors.Wrap(err, "select report_pulls rows"))
	}
	defer rows.Close()

	var pulls []model.ReportPull
	for rows.Next() {
		var (
			pull     model.ReportPull
			reportID sql.NullString
			errMsg   sql.NullString
		)
		if err := rows.Scan(&pull.PullID, &reportID, &pull.BureauName, &pull.Outcome, &pull.CreditScore, &errMsg, &pull.PulledAt); err != nil {
			return nil, errors2.NewServerError(errors2.ErrWhileFetchingReport, errors.Wrap(err, "scan report_pulls row"))
		}
		pull.ReportID = reportID.String
		pull.ErrorMessage = errMsg.String
		pulls = append(pulls, pull)
	}
	if err := rows.Err(); err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileFetchingReport, errors.Wrap(err, "iterate report_pulls rows"))
	}
	return pulls, nil
}

func scanReportRow(row *sql.Row) (*model.StoredReport, error) {
	var (
		stored     model.StoredReport
		reportJSON []byte
	)
	if err := row.Scan(&stored.ReportID, &stored.BureauName, &stored.ControlNumber, &stored.ReportDate, &stored.CreditScore, &reportJSON); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(reportJSON, &stored.Report); err != nil {
		return nil, errors2.NewServerError(errors2.ErrUnmarshalJSON, errors.Wrap(err, "unmarshal unified report"))
	}
	return &stored, nil
}

func scanReportRows(rows *sql.Rows) (*model.StoredReport, error) {
	var (
		stored     model.StoredReport
		reportJSON []byte
	)
	if err := rows.Scan(&stored.ReportID, &stored.BureauName, &stored.ControlNumber, &stored.ReportDate, &stored.CreditScore, &reportJSON); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(reportJSON, &stored.Report); err != nil {
		return nil, errors2.NewServerError(errors2.ErrUnmarshalJSON, errors.Wrap(err, "unmarshal unified report"))
	}
	return &stored, nil
}
