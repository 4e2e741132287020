package bot

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/example/mlcoursebot/pkg/models"
)

func TestBuildStatisticsReport(t *testing.T) {
	users := []models.User{
		{ID: 1, TelegramID: 100, Username: "alice", CurrentLesson: 3},
		{ID: 2, TelegramID: 200, Username: "bob", CurrentLesson: 1},
	}
	stats := []models.UserStatistics{
		{
			UserID:           1,
			CompletedLessons: 2,
			AverageScore:     95,
			TotalAttempts:    4,
			LastActivity:     time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	data, err := buildStatisticsReport(users, stats)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Telegram ID", rows[0][0])
	assert.Equal(t, "100", rows[1][0])
	assert.Equal(t, "alice", rows[1][1])
	assert.Equal(t, "2026-08-01 12:00:00", rows[1][6])

	// У пользователя без статистики колонка активности пустая
	assert.Equal(t, "bob", rows[2][1])
	assert.Equal(t, "0", rows[2][3])
	if len(rows[2]) > 6 {
		assert.Equal(t, "", rows[2][6])
	}
}
