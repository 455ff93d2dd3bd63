package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/majoduan/poa-backend/internal/models"
	"github.com/majoduan/poa-backend/internal/repositories"
)

// ReportService builds the downloadable POA budget workbook: one row per
// task, grouped by activity, with the task's budget spread over the twelve
// months of the POA's execution year.
type ReportService struct {
	poaService      *POAService
	projectService  *ProjectService
	periodService   *PeriodService
	activityRepo    *repositories.ActivityRepository
	taskRepo        *repositories.TaskRepository
	scheduleRepo    *repositories.MonthlyScheduleRepository
}

func NewReportService(poaService *POAService, projectService *ProjectService, periodService *PeriodService,
	activityRepo *repositories.ActivityRepository, taskRepo *repositories.TaskRepository,
	scheduleRepo *repositories.MonthlyScheduleRepository) *ReportService {
	return &ReportService{
		poaService:     poaService,
		projectService: projectService,
		periodService:  periodService,
		activityRepo:   activityRepo,
		taskRepo:       taskRepo,
		scheduleRepo:   scheduleRepo,
	}
}

const reportSheet = "POA"

// BuildPOAWorkbook assembles the Excel report for a POA.
func (s *ReportService) BuildPOAWorkbook(poaID string) (*excelize.File, error) {
	poa, err := s.poaService.GetPOAByID(poaID)
	if err != nil {
		return nil, err
	}

	project, err := s.projectService.GetProjectByID(poa.ProjectID.String())
	if err != nil {
		return nil, err
	}

	period, err := s.periodService.GetPeriodByID(poa.PeriodID.String())
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", reportSheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DDEBF7"}},
	})
	if err != nil {
		return nil, err
	}

	f.SetCellValue(reportSheet, "A1", "Annual Operating Plan")
	f.SetCellValue(reportSheet, "A2", "POA code")
	f.SetCellValue(reportSheet, "B2", poa.Code)
	f.SetCellValue(reportSheet, "A3", "Project")
	f.SetCellValue(reportSheet, "B3", fmt.Sprintf("%s — %s", project.Code, project.Title))
	f.SetCellValue(reportSheet, "A4", "Period")
	f.SetCellValue(reportSheet, "B4", period.Name)
	f.SetCellValue(reportSheet, "A5", "Execution year")
	f.SetCellValue(reportSheet, "B5", poa.ExecutionYear)
	f.SetCellValue(reportSheet, "A6", "Assigned budget")
	f.SetCellValue(reportSheet, "B6", poa.AssignedBudget)

	headers := []string{"Activity", "Task", "Quantity", "Unit price", "Total"}
	for m := 1; m <= 12; m++ {
		headers = append(headers, fmt.Sprintf("%02d-%s", m, poa.ExecutionYear))
	}

	const tableStart = 8
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, tableStart)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(reportSheet, cell, header)
		f.SetCellStyle(reportSheet, cell, cell, headerStyle)
	}

	activities, err := s.activityRepo.GetByPOAID(poaID)
	if err != nil {
		return nil, err
	}

	row := tableStart + 1
	for _, activity := range activities {
		tasks, err := s.taskRepo.GetByActivityID(activity.ID.String())
		if err != nil {
			return nil, err
		}

		for _, task := range tasks {
			if err := s.writeTaskRow(f, row, poa.ExecutionYear, activity, task); err != nil {
				return nil, err
			}
			row++
		}

		totalCell, err := excelize.CoordinatesToCellName(5, row)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(reportSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("Total %s", activity.Description))
		f.SetCellValue(reportSheet, totalCell, activity.Total)
		f.SetCellStyle(reportSheet, fmt.Sprintf("A%d", row), totalCell, headerStyle)
		row += 2
	}

	f.SetColWidth(reportSheet, "A", "B", 40)
	f.SetColWidth(reportSheet, "C", "Q", 12)

	return f, nil
}

func (s *ReportService) writeTaskRow(f *excelize.File, row int, year string, activity *models.Activity, task *models.Task) error {
	f.SetCellValue(reportSheet, fmt.Sprintf("A%d", row), activity.Description)
	f.SetCellValue(reportSheet, fmt.Sprintf("B%d", row), task.Name)
	f.SetCellValue(reportSheet, fmt.Sprintf("C%d", row), task.Quantity)
	f.SetCellValue(reportSheet, fmt.Sprintf("D%d", row), task.UnitPrice)
	f.SetCellValue(reportSheet, fmt.Sprintf("E%d", row), task.Total)

	schedules, err := s.scheduleRepo.GetByTaskID(task.ID.String())
	if err != nil {
		return err
	}

	byMonth := make(map[string]float64, len(schedules))
	for _, schedule := range schedules {
		byMonth[schedule.Month] += schedule.Amount
	}

	for m := 1; m <= 12; m++ {
		amount, ok := byMonth[fmt.Sprintf("%02d-%s", m, year)]
		if !ok {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(5+m, row)
		if err != nil {
			return err
		}
		f.SetCellValue(reportSheet, cell, amount)
	}

	return nil
}
