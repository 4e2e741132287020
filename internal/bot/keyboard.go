package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Menu button labels. The router matches inbound text against these
// exactly, so they must stay in sync with the keyboards below.
const (
	btnLesson       = "📚 Урок"
	btnQuiz         = "❓ Тест"
	btnProgress     = "📊 Прогресс"
	btnHistory      = "📜 История"
	btnMeme         = "🎨 Мем"
	btnHelp         = "❓ Помощь"
	btnTakeQuiz     = "📝 Пройти тест"
	btnToLessonList = "📚 К списку уроков"
	btnToLessons    = "📚 К урокам"
	btnMoreHistory  = "🔄 Другая история"
)

func buildKeyboard(rows [][]string) tgbotapi.ReplyKeyboardMarkup {
	var keyboard [][]tgbotapi.KeyboardButton
	for _, row := range rows {
		var keyboardRow []tgbotapi.KeyboardButton
		for _, label := range row {
			keyboardRow = append(keyboardRow, tgbotapi.NewKeyboardButton(label))
		}
		keyboard = append(keyboard, keyboardRow)
	}

	markup := tgbotapi.NewReplyKeyboard(keyboard...)
	markup.ResizeKeyboard = true
	markup.OneTimeKeyboard = false
	markup.InputFieldPlaceholder = "Выберите действие"
	return markup
}

// mainKeyboard is the fixed menu shown with most replies
func mainKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return buildKeyboard([][]string{
		{btnLesson, btnQuiz},
		{btnProgress, btnHistory},
		{btnMeme, btnHelp},
	})
}

// lessonKeyboard is shown together with lesson content
func lessonKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return buildKeyboard([][]string{
		{btnTakeQuiz},
		{btnToLessonList},
		{btnHistory, btnHelp},
	})
}

// historyKeyboard is shown with a history trivia round
func historyKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return buildKeyboard([][]string{
		{btnToLessons},
		{btnMoreHistory},
	})
}
