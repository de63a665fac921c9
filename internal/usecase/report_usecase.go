package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"go-culturematch-backend/internal/domain"
	"go-culturematch-backend/pkg/apperror"

	"github.com/xuri/excelize/v2"
)

// exportRowLimit caps one report at 10,000 rows.
const exportRowLimit = 10000

type reportUsecase struct {
	matchRepo domain.MatchRepository
}

func NewReportUsecase(matchRepo domain.MatchRepository) domain.ReportUsecase {
	return &reportUsecase{matchRepo: matchRepo}
}

// ExportMatches renders persisted match results as xlsx or csv.
func (u *reportUsecase) ExportMatches(ctx context.Context, req domain.MatchExportRequest) ([]byte, string, error) {
	role, _ := ctx.Value(domain.KeyUserRole).(string)
	if role != "recruiter" && role != "admin" {
		return nil, "", apperror.Forbidden("Only recruiters can export match reports")
	}

	req.Filter.Page = 1
	req.Filter.PageSize = exportRowLimit

	records, _, err := u.matchRepo.Fetch(ctx, req.Filter)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch matches for export: %w", err)
	}

	columns := req.Columns
	if len(columns) == 0 {
		columns = domain.MatchExportColumns
	}
	valid := make(map[string]bool, len(domain.MatchExportColumns))
	for _, col := range domain.MatchExportColumns {
		valid[col] = true
	}
	for _, col := range columns {
		if !valid[col] {
			return nil, "", apperror.BadRequest(fmt.Sprintf("invalid export column: %s", col))
		}
	}

	switch req.Format {
	case "csv":
		return u.exportCSV(records, columns)
	case "xlsx", "":
		return u.exportExcel(records, columns)
	default:
		return nil, "", apperror.BadRequest(fmt.Sprintf("unsupported export format: %s", req.Format))
	}
}

var exportHeaderNames = map[string]string{
	"candidate_user_id":         "CANDIDATE",
	"job_title":                 "JOB",
	"overall_score":             "OVERALL SCORE",
	"harmony":                   "HARMONY",
	"improvement":               "IMPROVEMENT",
	"service":                   "SERVICE",
	"dedication":                "DEDICATION",
	"consensus":                 "CONSENSUS",
	"skills_match":              "SKILLS MATCH",
	"experience_match":          "EXPERIENCE MATCH",
	"integration_timeline_days": "INTEGRATION TIMELINE (DAYS)",
	"confidence":                "CONFIDENCE",
	"created_at":                "SCORED AT",
}

func (u *reportUsecase) exportExcel(records []domain.MatchRecord, columns []string) ([]byte, string, error) {
	f := excelize.NewFile()
	sheetName := "Matches"
	f.SetSheetName("Sheet1", sheetName)

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		name := exportHeaderNames[col]
		if name == "" {
			name = col
		}
		f.SetCellValue(sheetName, cell, name)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(columns), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, record := range records {
		for colIdx, col := range columns {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, matchFieldValue(record, col))
		}
	}

	for i := range columns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 22)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	filename := fmt.Sprintf("match_report_%s.xlsx", time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}

func (u *reportUsecase) exportCSV(records []domain.MatchRecord, columns []string) ([]byte, string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(columns); err != nil {
		return nil, "", err
	}
	for _, record := range records {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = fmt.Sprintf("%v", matchFieldValue(record, col))
		}
		if err := w.Write(row); err != nil {
			return nil, "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("match_report_%s.csv", time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}

func matchFieldValue(r domain.MatchRecord, field string) interface{} {
	switch field {
	case "candidate_user_id":
		return r.CandidateUserID
	case "job_title":
		if r.JobTitle != nil {
			return *r.JobTitle
		}
		return "PROFILE ONLY"
	case "overall_score":
		return round1(r.Result.OverallScore)
	case "harmony":
		return round1(r.Result.DimensionScores.Harmony)
	case "improvement":
		return round1(r.Result.DimensionScores.Improvement)
	case "service":
		return round1(r.Result.DimensionScores.Service)
	case "dedication":
		return round1(r.Result.DimensionScores.Dedication)
	case "consensus":
		return round1(r.Result.DimensionScores.Consensus)
	case "skills_match":
		return round1(r.Result.SkillsMatch)
	case "experience_match":
		return round1(r.Result.ExperienceMatch)
	case "integration_timeline_days":
		return r.Result.IntegrationTimelineDays
	case "confidence":
		return round1(r.Result.Confidence)
	case "created_at":
		return r.CreatedAt.Format("2006-01-02 15:04")
	default:
		return ""
	}
}

func round1(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
