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

package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	archivestore "github.com/creditdesk/bureau-data-service/internal/archive/store"
	bureaumodel "github.com/creditdesk/bureau-data-service/internal/bureau/model"
	bureauservice "github.com/creditdesk/bureau-data-service/internal/bureau/service"
	"github.com/creditdesk/bureau-data-service/internal/database"
	mergemodel "github.com/creditdesk/bureau-data-service/internal/merge/model"
	mergeservice "github.com/creditdesk/bureau-data-service/internal/merge/service"
	"github.com/creditdesk/bureau-data-service/internal/report/model"
	"github.com/creditdesk/bureau-data-service/internal/report/store"
	riskmodel "github.com/creditdesk/bureau-data-service/internal/risk/model"
	riskservice "github.com/creditdesk/bureau-data-service/internal/risk/service"
	"github.com/creditdesk/bureau-data-service/internal/system/config"
	"github.com/creditdesk/bureau-data-service/internal/system/constants"
	errors2 "github.com/creditdesk/bureau-data-service/internal/system/errors"
	"github.com/creditdesk/bureau-data-service/internal/system/log"
)

// ReportServiceInterface defines the service interface.
type ReportServiceInterface interface {
	ParseReport(request model.ParseReportRequest) bureaumodel.ParseResult
	SaveReport(report *model.UnifiedCreditReport) (string, error)
	GetReport(reportID string) (*model.StoredReport, error)
	MergeReports(reports map[string]*model.UnifiedCreditReport) mergemodel.MergedReportSet
	BuildRiskSummary(reports map[string]*model.UnifiedCreditReport) riskmodel.UnifiedReportSummary
}

// ReportService is the default implementation.
type ReportService struct{}

// GetReportService returns a new instance.
func GetReportService() ReportServiceInterface {
	return &ReportService{}
}

// ParseReport runs a raw vendor payload through the dispatcher. When
// persistence is requested and a database is connected, the parse outcome is
// recorded and successful reports are stored; persistence problems are
// logged, never surfaced to the parse caller.
func (rs *ReportService) ParseReport(request model.ParseReportRequest) bureaumodel.ParseResult {
	ctx := toParserContext(request.Context)

	var result bureaumodel.ParseResult
	if strings.TrimSpace(request.Bureau) != "" {
		result = bureauservice.ParseByBureauName(request.Payload, ctx, request.Bureau)
	} else {
		result = bureauservice.ParseBureauResponse(request.Payload, ctx, bureaumodel.BureauUnknown)
	}

	if request.Persist {
		rs.persistParseOutcome(result, request.Payload)
	}
	return result
}

// SaveReport validates and persists a unified report, returning its id.
func (rs *ReportService) SaveReport(report *model.UnifiedCreditReport) (string, error) {
	if problems := bureauservice.ValidateUnifiedReport(report); len(problems) > 0 {
		msg := errors2.ErrInvalidReportStructure
		msg.Description = strings.Join(problems, "; ")
		return "", errors2.NewClientError(msg, http.StatusBadRequest)
	}

	pg := database.GetPostgresInstance()
	if pg == nil {
		return "", errors2.NewServerError(errors2.ErrDBClientInit, nil)
	}
	repo := store.NewReportRepository(pg.DB)

	reportID := uuid.NewString()
	stored := model.StoredReport{
		ReportID:      reportID,
		BureauName:    report.Header.BureauName,
		ControlNumber: report.Header.ControlNumber,
		ReportDate:    report.Header.ReportDate,
		CreditScore:   report.Header.CreditScore,
		Report:        report,
	}

	if err := rs.withControlNumberLock(pg, report.Header.ControlNumber, func() error {
		return repo.InsertReport(stored)
	}); err != nil {
		return "", err
	}

	pull := model.ReportPull{
		PullID:      uuid.NewString(),
		ReportID:    reportID,
		BureauName:  report.Header.BureauName,
		Outcome:     "success",
		CreditScore: report.Header.CreditScore,
	}
	if err := repo.InsertPull(pull); err != nil {
		log.GetLogger().Warn("Failed to record bureau pull", log.String("report_id", reportID), log.Error(err))
	}
	return reportID, nil
}

// GetReport loads one stored report by id.
func (rs *ReportService) GetReport(reportID string) (*model.StoredReport, error) {
	pg := database.GetPostgresInstance()
	if pg == nil {
		return nil, errors2.NewServerError(errors2.ErrDBClientInit, nil)
	}
	repo := store.NewReportRepository(pg.DB)

	stored, err := repo.GetReport(reportID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, errors2.NewClientError(errors2.ErrReportNotFound, http.StatusNotFound)
	}
	return stored, nil
}

// MergeReports consolidates per-bureau reports keyed by bureau code.
func (rs *ReportService) MergeReports(reports map[string]*model.UnifiedCreditReport) mergemodel.MergedReportSet {
	return mergeservice.MergeMultipleBureauReports(toBureauMap(reports))
}

// BuildRiskSummary rolls the per-bureau reports up and attaches the risk
// verdict using the runtime risk thresholds.
func (rs *ReportService) BuildRiskSummary(reports map[string]*model.UnifiedCreditReport) riskmodel.UnifiedReportSummary {
	return riskservice.BuildUnifiedReportSummary(config.GetRuntime().Risk, toBureauMap(reports))
}

// persistParseOutcome records the pull audit row, archives the raw payload
// and stores the unified report. All of it is best-effort relative to the
// parse itself.
func (rs *ReportService) persistParseOutcome(result bureaumodel.ParseResult, payload interface{}) {
	logger := log.GetLogger()

	reportID := ""
	if result.Success && result.Report != nil {
		id, err := rs.SaveReport(result.Report)
		if err != nil {
			logger.Warn("Failed to persist parsed report", log.String("bureau", result.BureauName), log.Error(err))
		} else {
			reportID = id
		}
	} else if pg := database.GetPostgresInstance(); pg != nil {
		repo := store.NewReportRepository(pg.DB)
		pull := model.ReportPull{
			PullID:       uuid.NewString(),
			BureauName:   result.BureauName,
			Outcome:      "failure",
			ErrorMessage: result.Error,
		}
		if err := repo.InsertPull(pull); err != nil {
			logger.Warn("Failed to record failed bureau pull", log.String("bureau", result.BureauName), log.Error(err))
		}
	}

	if mongoDB := database.GetMongoDBInstance(); mongoDB != nil {
		archiveRepo := archivestore.NewRawPayloadRepository(mongoDB.Database, constants.RawPayloadCollection)
		if err := archiveRepo.ArchivePayload(reportID, result.BureauName, result.Success, payload); err != nil {
			logger.Warn("Failed to archive raw payload", log.String("bureau", result.BureauName), log.Error(err))
		}
	}
}

// withControlNumberLock serializes persistence per control number with a
// Postgres advisory lock. Lock acquisition problems degrade to an unlocked
// insert; the ON CONFLICT clause still keeps the table consistent.
func (rs *ReportService) withControlNumberLock(pg *database.PostgresDB, controlNumber string, fn func() error) error {
	conn, err := pg.DB.Conn(context.Background())
	if err != nil {
		return fn()
	}
	defer conn.Close()

	lock := database.NewPostgresLock(conn)
	key := "bureau_report:" + controlNumber
	acquired, err := lock.Acquire(key)
	if err != nil || !acquired {
		return fn()
	}
	defer func() {
		if err := lock.Release(key); err != nil {
			log.GetLogger().Debug("Failed to release advisory lock", log.String("key", key), log.Error(err))
		}
	}()
	return fn()
}

func toParserContext(ctx model.ParseContext) bureaumodel.ParserContext {
	return bureaumodel.ParserContext{
		FullName:     ctx.FullName,
		PANNumber:    ctx.PANNumber,
		MobileNumber: ctx.MobileNumber,
		DateOfBirth:  ctx.DateOfBirth,
		Gender:       ctx.Gender,
	}
}

// toBureauMap resolves free-form bureau keys to bureau codes. Unrecognized
// keys are dropped rather than failing the whole request.
func toBureauMap(reports map[string]*model.UnifiedCreditReport) map[bureaumodel.BureauType]*model.UnifiedCreditReport {
	out := make(map[bureaumodel.BureauType]*model.UnifiedCreditReport, len(reports))
	for key, report := range reports {
		switch normalized := strings.ToLower(strings.TrimSpace(key)); {
		case strings.Contains(normalized, "cibil"), strings.Contains(normalized, "transunion"):
			out[bureaumodel.BureauCIBIL] = report
		case strings.Contains(normalized, "experian"):
			out[bureaumodel.BureauExperian] = report
		case strings.Contains(normalized, "equifax"):
			out[bureaumodel.BureauEquifax] = report
		case strings.Contains(normalized, "crif"), strings.Contains(normalized, "high mark"), strings.Contains(normalized, "highmark"):
			out[bureaumodel.BureauCRIF] = report
		default:
			log.GetLogger().Debug("Dropping unrecognized bureau key", log.String("key", key))
		}
	}
	return out
}
