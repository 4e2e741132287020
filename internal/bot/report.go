package bot

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/example/mlcoursebot/pkg/models"
)

// buildStatisticsReport renders the admin xlsx report: one row per user
// with their lesson pointer and aggregate statistics
func buildStatisticsReport(users []models.User, stats []models.UserStatistics) ([]byte, error) {
	byUser := make(map[int64]models.UserStatistics, len(stats))
	for _, s := range stats {
		byUser[s.UserID] = s
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	headers := []string{"Telegram ID", "Username", "Current lesson", "Completed lessons", "Average score", "Total attempts", "Last activity"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %v", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %v", err)
		}
	}

	for row, user := range users {
		s := byUser[user.ID]
		lastActivity := ""
		if !s.LastActivity.IsZero() {
			lastActivity = s.LastActivity.Format("2006-01-02 15:04:05")
		}
		values := []interface{}{
			user.TelegramID,
			user.Username,
			user.CurrentLesson,
			s.CompletedLessons,
			s.AverageScore,
			s.TotalAttempts,
			lastActivity,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write report row: %v", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize report: %v", err)
	}
	return buf.Bytes(), nil
}
