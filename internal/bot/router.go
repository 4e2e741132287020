package bot

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handleText routes free-text input. Order matters: an exact menu-label
// match always wins and abandons any pending question, then the pending
// interaction (if any) consumes the text as an answer, otherwise the user
// gets the generic hint. Every branch sends exactly one reply.
func (b *Bot) handleText(ctx context.Context, message *tgbotapi.Message) error {
	text := strings.TrimSpace(message.Text)

	if action, ok := b.menuAction(text); ok {
		// Кнопка меню имеет приоритет: ожидающий вопрос отменяется
		b.tracker.Clear(message.Chat.ID)
		return action(ctx, message)
	}

	pending, ok := b.tracker.Get(message.Chat.ID)
	if !ok {
		msg := tgbotapi.NewMessage(message.Chat.ID,
			"Я вас не понял. Используйте /lesson, чтобы продолжить обучение, или /help для списка команд.")
		msg.ReplyMarkup = mainKeyboard()
		return b.send(msg)
	}

	// Сравнение ответа без учета регистра, точное совпадение метки
	correct := strings.EqualFold(text, pending.Correct)

	switch pending.Kind {
	case PendingTrivia:
		return b.resolveTrivia(message, pending, correct)
	case PendingLessonCheck:
		return b.resolveLessonCheck(ctx, message, pending, correct)
	case PendingQuiz:
		return b.resolveQuiz(ctx, message, pending, correct)
	}
	return nil
}

// menuAction maps an exact menu label to its handler
func (b *Bot) menuAction(label string) (func(context.Context, *tgbotapi.Message) error, bool) {
	switch label {
	case btnLesson, btnToLessonList, btnToLessons:
		return b.handleLesson, true
	case btnQuiz, btnTakeQuiz:
		return b.handleQuiz, true
	case btnProgress:
		return b.handleProgress, true
	case btnHistory, btnMoreHistory:
		return b.handleHistory, true
	case btnMeme:
		return b.handleMeme, true
	case btnHelp:
		return func(_ context.Context, m *tgbotapi.Message) error { return b.handleHelp(m) }, true
	}
	return nil, false
}

// resolveTrivia finishes a trivia round. Trivia does not allow a retry: the
// interaction is cleared and the explanation shown regardless of the answer.
func (b *Bot) resolveTrivia(message *tgbotapi.Message, pending PendingInteraction, correct bool) error {
	b.tracker.Clear(message.Chat.ID)

	var text string
	if correct {
		text = "✅ Правильно!\n\n" + pending.Explanation
	} else {
		text = fmt.Sprintf("❌ Неправильно. Правильный ответ: %s\n\n%s", pending.Correct, pending.Explanation)
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ReplyMarkup = historyKeyboard()
	return b.send(msg)
}

// resolveLessonCheck handles an answer to the lesson's comprehension
// question. A wrong answer keeps the question pending so the user can retry.
func (b *Bot) resolveLessonCheck(ctx context.Context, message *tgbotapi.Message, pending PendingInteraction, correct bool) error {
	if !correct {
		lesson := b.catalog.Lesson(pending.LessonID)
		text := "❌ Неправильно. Подсказка: перечитайте урок и попробуйте еще раз.\n\n"
		if lesson != nil {
			text += formatCheckQuestion(lesson)
		}
		return b.send(tgbotapi.NewMessage(message.Chat.ID, text))
	}

	b.tracker.Clear(message.Chat.ID)
	b.tracker.UnlockQuiz(message.Chat.ID, pending.LessonID)

	msg := tgbotapi.NewMessage(message.Chat.ID,
		"✅ Верно! Тест по уроку открыт. Нажмите \""+btnTakeQuiz+"\" или отправьте /quiz.")
	msg.ReplyMarkup = lessonKeyboard()
	return b.send(msg)
}

// resolveQuiz handles a quiz answer. On success progress is persisted and
// the lesson pointer advances by one; a storage failure leaves the question
// pending and the state untouched so the user can simply retry.
func (b *Bot) resolveQuiz(ctx context.Context, message *tgbotapi.Message, pending PendingInteraction, correct bool) error {
	if !correct {
		quiz := b.catalog.Quiz(pending.LessonID)
		text := "❌ Неправильно. Подсказка: вернитесь к материалам урока.\n\n"
		if quiz != nil {
			text += quiz.Question
		}
		return b.send(tgbotapi.NewMessage(message.Chat.ID, text))
	}

	user, err := b.users.GetOrCreate(ctx, message.From.ID, message.From.UserName)
	if err != nil {
		return b.storageFailure(message.Chat.ID, err)
	}
	if err := b.progress.RecordProgress(ctx, user.ID, pending.LessonID, 100); err != nil {
		return b.storageFailure(message.Chat.ID, err)
	}
	if err := b.users.AdvanceLesson(ctx, user, pending.LessonID+1); err != nil {
		return b.storageFailure(message.Chat.ID, err)
	}

	b.tracker.Clear(message.Chat.ID)

	text := "✅ Правильно! Можете переходить к следующему уроку — /lesson."
	if quiz := b.catalog.Quiz(pending.LessonID); quiz != nil && quiz.Explanation != "" {
		text += "\n\n💡 " + quiz.Explanation
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ReplyMarkup = mainKeyboard()
	return b.send(msg)
}

// storageFailure reports a failed write. The pending interaction is kept so
// the user can resend the answer; the error stops here.
func (b *Bot) storageFailure(chatID int64, err error) error {
	log.Printf("Storage error: %v", err)
	return b.send(tgbotapi.NewMessage(chatID, "Произошла ошибка при сохранении прогресса. Попробуйте позже."))
}
