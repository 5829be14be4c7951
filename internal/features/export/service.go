package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ews-reports/internal/features/archive"
	"ews-reports/internal/features/comment"
	"ews-reports/internal/features/report"
	"ews-reports/internal/features/task"
	"ews-reports/internal/features/template"
	"ews-reports/internal/features/user"

	"github.com/xuri/excelize/v2"
)

// Snapshot is the full database dump served by /api/export/json.
type Snapshot struct {
	Reports   []report.Report     `json:"reports"`
	Tasks     []task.Task         `json:"tasks"`
	Comments  []comment.Comment   `json:"comments"`
	Templates []template.Template `json:"templates"`
	Archive   []archive.Record    `json:"archive"`
	Users     []user.User         `json:"users"`
}

type ExportService interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
	// Excel renders the current reports and tasks into an xlsx workbook
	// and returns the file bytes plus a timestamped filename.
	Excel(ctx context.Context) ([]byte, string, error)
}

type ExportServiceImpl struct {
	reportRepo   report.ReportRepository
	taskRepo     task.TaskRepository
	commentRepo  comment.CommentRepository
	templateRepo template.TemplateRepository
	archiveRepo  archive.ArchiveRepository
	userRepo     user.UserRepository
}

func NewExportService(
	reportRepo report.ReportRepository,
	taskRepo task.TaskRepository,
	commentRepo comment.CommentRepository,
	templateRepo template.TemplateRepository,
	archiveRepo archive.ArchiveRepository,
	userRepo user.UserRepository,
) ExportService {
	return &ExportServiceImpl{
		reportRepo:   reportRepo,
		taskRepo:     taskRepo,
		commentRepo:  commentRepo,
		templateRepo: templateRepo,
		archiveRepo:  archiveRepo,
		userRepo:     userRepo,
	}
}

func (s *ExportServiceImpl) Snapshot(ctx context.Context) (*Snapshot, error) {
	reports, err := s.reportRepo.List(ctx, report.Filter{})
	if err != nil {
		return nil, err
	}
	tasks, err := s.taskRepo.List(ctx, task.Filter{})
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	templates, err := s.templateRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.archiveRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Reports:   reports,
		Tasks:     tasks,
		Comments:  comments,
		Templates: templates,
		Archive:   records,
		Users:     users,
	}, nil
}

var reportHeaders = []string{"ID", "Week", "Department", "Status", "KPIs", "Achievements", "Challenges", "Next Week Plans", "Created By", "Created At"}

var taskHeaders = []string{"ID", "Title", "Status", "Priority", "Assignee", "Department", "Due Date", "Completed At", "Report ID"}

func (s *ExportServiceImpl) Excel(ctx context.Context) ([]byte, string, error) {
	reports, err := s.reportRepo.List(ctx, report.Filter{})
	if err != nil {
		return nil, "", err
	}
	tasks, err := s.taskRepo.List(ctx, task.Filter{})
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	reportRows := make([][]any, len(reports))
	for i, rep := range reports {
		kpis, _ := json.Marshal(rep.KPIs)
		reportRows[i] = []any{
			rep.ID, rep.Week, rep.Department, string(rep.Status), string(kpis),
			rep.Achievements, rep.Challenges, rep.NextWeekPlans,
			rep.CreatedBy, rep.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}
	if err := writeSheet(f, "Reports", headerStyle, reportHeaders, reportRows); err != nil {
		return nil, "", err
	}

	taskRows := make([][]any, len(tasks))
	for i, t := range tasks {
		taskRows[i] = []any{
			t.ID, t.Title, string(t.Status), string(t.Priority),
			t.Assignee, t.Department,
			formatTime(t.DueDate), formatTime(t.CompletedAt), t.ReportID,
		}
	}
	if err := writeSheet(f, "Tasks", headerStyle, taskHeaders, taskRows); err != nil {
		return nil, "", err
	}

	// Drop the default sheet excelize creates.
	f.DeleteSheet("Sheet1")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("weekly_reports_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func writeSheet(f *excelize.File, name string, headerStyle int, headers []string, rows [][]any) error {
	index, err := f.NewSheet(name)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(name, cell, header)
		f.SetCellStyle(name, cell, cell, headerStyle)
	}

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(name, cell, value)
		}
	}
	return nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
