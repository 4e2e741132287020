package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/mlcoursebot/internal/content"
	"github.com/example/mlcoursebot/pkg/models"
)

const historyApology = "Извините, произошла ошибка при получении исторической справки. Попробуйте позже."
const memeApology = "Извините, произошла ошибка при создании мема. Попробуйте позже."
const aiDisabledText = "Эта функция требует подключенного AI-провайдера и сейчас недоступна."

func (b *Bot) handleStart(ctx context.Context, message *tgbotapi.Message) error {
	_, err := b.users.GetOrCreate(ctx, message.From.ID, message.From.UserName)
	if err != nil {
		log.Printf("Error creating user %d: %v", message.From.ID, err)
		return b.send(tgbotapi.NewMessage(message.Chat.ID,
			"Извините, произошла ошибка при создании профиля. Попробуйте позже."))
	}

	welcome := "👋 Добро пожаловать в бот для изучения машинного обучения!\n\n" +
		"🎓 Здесь вы изучите основы ML:\n" +
		"- Базовые концепции\n" +
		"- Популярные алгоритмы\n" +
		"- Практические примеры\n\n" +
		"Используйте команды:\n" +
		"/lesson - начать урок\n" +
		"/quiz - пройти тест\n" +
		"/progress - посмотреть прогресс\n" +
		"/ask <вопрос> - задать вопрос по ML\n" +
		"/explain <тема> - получить объяснение темы"

	msg := tgbotapi.NewMessage(message.Chat.ID, welcome)
	msg.ReplyMarkup = mainKeyboard()
	return b.send(msg)
}

func (b *Bot) handleHelp(message *tgbotapi.Message) error {
	help := "📚 Доступные команды:\n\n" +
		"/start - начать обучение\n" +
		"/lesson - перейти к урокам\n" +
		"/quiz - пройти тест\n" +
		"/progress - ваш прогресс\n" +
		"/ask <вопрос> - задать вопрос по ML\n" +
		"/explain <тема> - получить объяснение темы\n" +
		"/history - историческая справка с вопросом\n" +
		"/meme [тема] - сгенерировать мем про ML\n" +
		"/help - показать это сообщение"
	return b.send(tgbotapi.NewMessage(message.Chat.ID, help))
}

// handleLesson shows the user's current lesson together with its
// comprehension question and arms the lesson-check interaction
func (b *Bot) handleLesson(ctx context.Context, message *tgbotapi.Message) error {
	user, err := b.users.GetOrCreate(ctx, message.From.ID, message.From.UserName)
	if err != nil {
		log.Printf("Error getting user %d: %v", message.From.ID, err)
		return b.send(tgbotapi.NewMessage(message.Chat.ID, "Произошла ошибка. Попробуйте позже."))
	}

	lesson := b.catalog.Lesson(user.CurrentLesson)
	if lesson == nil {
		// За последним уроком каталога курс считается пройденным
		msg := tgbotapi.NewMessage(message.Chat.ID, "Поздравляем! Вы прошли все уроки! 🎉")
		msg.ReplyMarkup = mainKeyboard()
		return b.send(msg)
	}

	var text strings.Builder
	fmt.Fprintf(&text, "📖 Урок %d: %s\n\n%s\n", lesson.Order, lesson.Title, lesson.Content)
	if len(lesson.Materials) > 0 {
		text.WriteString("\n📎 Дополнительные материалы:\n")
		for _, m := range lesson.Materials {
			text.WriteString("• " + m + "\n")
		}
	}
	text.WriteString("\n" + formatCheckQuestion(lesson))

	b.tracker.Set(message.Chat.ID, PendingInteraction{
		Kind:     PendingLessonCheck,
		LessonID: lesson.Order,
		Correct:  lesson.Check.Correct,
	})

	msg := tgbotapi.NewMessage(message.Chat.ID, text.String())
	msg.ReplyMarkup = lessonKeyboard()
	return b.send(msg)
}

// formatCheckQuestion renders the embedded check question with its options
func formatCheckQuestion(lesson *models.Lesson) string {
	var text strings.Builder
	text.WriteString("❓ Вопрос по уроку:\n" + lesson.Check.Question + "\n")
	for _, opt := range lesson.Check.Options {
		fmt.Fprintf(&text, "%s) %s\n", opt.Label, opt.Text)
	}
	text.WriteString("\nОтправьте букву ответа.")
	return text.String()
}

// handleQuiz arms the quiz for the user's current lesson. The quiz is
// reachable only after the lesson's check question has been answered.
func (b *Bot) handleQuiz(ctx context.Context, message *tgbotapi.Message) error {
	user, err := b.users.GetOrCreate(ctx, message.From.ID, message.From.UserName)
	if err != nil {
		log.Printf("Error getting user %d: %v", message.From.ID, err)
		return b.send(tgbotapi.NewMessage(message.Chat.ID, "Произошла ошибка. Попробуйте позже."))
	}

	quiz := b.catalog.Quiz(user.CurrentLesson)
	if quiz == nil {
		if b.catalog.Lesson(user.CurrentLesson) == nil {
			msg := tgbotapi.NewMessage(message.Chat.ID, "Поздравляем! Вы прошли все уроки! 🎉")
			msg.ReplyMarkup = mainKeyboard()
			return b.send(msg)
		}
		return b.send(tgbotapi.NewMessage(message.Chat.ID, "Нет доступных тестов."))
	}

	if !b.tracker.QuizUnlocked(message.Chat.ID, user.CurrentLesson) {
		return b.send(tgbotapi.NewMessage(message.Chat.ID,
			"Сначала прочитайте урок и ответьте на вопрос по нему — /lesson."))
	}

	b.tracker.Set(message.Chat.ID, PendingInteraction{
		Kind:     PendingQuiz,
		LessonID: user.CurrentLesson,
		Correct:  quiz.CorrectAnswer,
	})

	return b.send(tgbotapi.NewMessage(message.Chat.ID,
		fmt.Sprintf("❓ Тест по теме %s\n\n%s", quiz.Title, quiz.Question)))
}

func (b *Bot) handleProgress(ctx context.Context, message *tgbotapi.Message) error {
	user, err := b.users.GetOrCreate(ctx, message.From.ID, message.From.UserName)
	if err != nil {
		log.Printf("Error getting user %d: %v", message.From.ID, err)
		return b.send(tgbotapi.NewMessage(message.Chat.ID, "Произошла ошибка. Попробуйте позже."))
	}

	stats, err := b.stats.GetByUserID(ctx, user.ID)
	if err != nil {
		log.Printf("Error getting statistics for user %d: %v", user.ID, err)
		return b.send(tgbotapi.NewMessage(message.Chat.ID, "Произошла ошибка. Попробуйте позже."))
	}

	var completed int
	var average float64
	if stats != nil {
		completed = stats.CompletedLessons
		average = stats.AverageScore
	}

	text := fmt.Sprintf("📊 Ваш прогресс:\nТекущий урок: %d\nПройдено уроков: %d\nСредний балл: %.1f",
		user.CurrentLesson, completed, average)

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ReplyMarkup = mainKeyboard()
	return b.send(msg)
}

// topicArgument validates the free-text argument of /ask, /explain and
// /meme. An empty result with ok=false means a corrective reply was sent.
func (b *Bot) topicArgument(message *tgbotapi.Message, usage string) (string, bool, error) {
	topic := strings.TrimSpace(message.CommandArguments())
	if topic == "" {
		return "", false, b.send(tgbotapi.NewMessage(message.Chat.ID, usage))
	}
	if len([]rune(topic)) > b.config.TopicMaxLen {
		return "", false, b.send(tgbotapi.NewMessage(message.Chat.ID,
			fmt.Sprintf("Слишком длинный запрос: не больше %d символов.", b.config.TopicMaxLen)))
	}
	return topic, true, nil
}

func (b *Bot) handleAsk(ctx context.Context, message *tgbotapi.Message) error {
	question, ok, err := b.topicArgument(message, "Пожалуйста, укажите ваш вопрос после команды /ask")
	if !ok {
		return err
	}
	if b.ai == nil {
		return b.send(tgbotapi.NewMessage(message.Chat.ID, aiDisabledText))
	}
	return b.send(tgbotapi.NewMessage(message.Chat.ID, b.ai.AnswerQuestion(ctx, question)))
}

func (b *Bot) handleExplain(ctx context.Context, message *tgbotapi.Message) error {
	topic, ok, err := b.topicArgument(message, "Пожалуйста, укажите тему после команды /explain")
	if !ok {
		return err
	}
	if b.ai == nil {
		return b.send(tgbotapi.NewMessage(message.Chat.ID, aiDisabledText))
	}
	return b.send(tgbotapi.NewMessage(message.Chat.ID, b.ai.Explain(ctx, topic)))
}

// handleHistory sends a generated history fact and arms the one-shot trivia
// question. Without a provider the static overview is shown instead.
func (b *Bot) handleHistory(ctx context.Context, message *tgbotapi.Message) error {
	if b.ai == nil {
		msg := tgbotapi.NewMessage(message.Chat.ID, content.History)
		msg.ReplyMarkup = mainKeyboard()
		return b.send(msg)
	}

	fact, err := b.ai.RandomHistoryFact(ctx)
	if err != nil {
		log.Printf("Error getting history fact: %v", err)
		msg := tgbotapi.NewMessage(message.Chat.ID, historyApology)
		msg.ReplyMarkup = mainKeyboard()
		return b.send(msg)
	}

	b.tracker.Set(message.Chat.ID, PendingInteraction{
		Kind:        PendingTrivia,
		Correct:     fact.CorrectAnswer,
		Explanation: fact.Explanation,
	})

	msg := tgbotapi.NewMessage(message.Chat.ID,
		fmt.Sprintf("%s\n\n❓ %s\n\nОтправьте букву ответа (A, B или C).", fact.History, fact.Question))
	msg.ReplyMarkup = historyKeyboard()
	return b.send(msg)
}

func (b *Bot) handleMeme(ctx context.Context, message *tgbotapi.Message) error {
	if b.ai == nil {
		return b.send(tgbotapi.NewMessage(message.Chat.ID, aiDisabledText))
	}

	// Тема необязательна: без нее генерируется мем про ML в целом
	concept := strings.TrimSpace(message.CommandArguments())
	if len([]rune(concept)) > b.config.TopicMaxLen {
		return b.send(tgbotapi.NewMessage(message.Chat.ID,
			fmt.Sprintf("Слишком длинный запрос: не больше %d символов.", b.config.TopicMaxLen)))
	}

	url, err := b.ai.GenerateMeme(ctx, concept)
	if err != nil {
		log.Printf("Error generating meme: %v", err)
		return b.send(tgbotapi.NewMessage(message.Chat.ID, memeApology))
	}

	photo := tgbotapi.NewPhoto(message.Chat.ID, tgbotapi.FileURL(url))
	photo.Caption = "🎨 Ваш мем про машинное обучение"
	return b.send(photo)
}

// handleStats is the admin overview: a summary message plus an xlsx report
// with one row per user
func (b *Bot) handleStats(ctx context.Context, message *tgbotapi.Message) error {
	users, err := b.users.GetAll(ctx)
	if err != nil {
		log.Printf("Error getting users: %v", err)
		return b.send(tgbotapi.NewMessage(message.Chat.ID, "Произошла ошибка. Попробуйте позже."))
	}
	stats, err := b.stats.GetAll(ctx)
	if err != nil {
		log.Printf("Error getting statistics: %v", err)
		return b.send(tgbotapi.NewMessage(message.Chat.ID, "Произошла ошибка. Попробуйте позже."))
	}

	var totalCompleted int
	for _, s := range stats {
		totalCompleted += s.CompletedLessons
	}

	text := "📈 Статистика бота\n\n" +
		fmt.Sprintf("Всего пользователей: %d\n", len(users)) +
		fmt.Sprintf("Пользователей с прогрессом: %d\n", len(stats)) +
		fmt.Sprintf("Всего пройдено уроков: %d", totalCompleted)
	if err := b.send(tgbotapi.NewMessage(message.Chat.ID, text)); err != nil {
		return err
	}

	report, err := buildStatisticsReport(users, stats)
	if err != nil {
		log.Printf("Error building statistics report: %v", err)
		return nil
	}

	doc := tgbotapi.NewDocument(message.Chat.ID, tgbotapi.FileBytes{
		Name:  "statistics.xlsx",
		Bytes: report,
	})
	return b.send(doc)
}

// handleUserStats shows the statistics of a single user by Telegram ID
func (b *Bot) handleUserStats(ctx context.Context, message *tgbotapi.Message) error {
	arg := strings.TrimSpace(message.CommandArguments())
	if arg == "" {
		return b.send(tgbotapi.NewMessage(message.Chat.ID, "Использование: /user_stats <telegram id>"))
	}
	telegramID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return b.send(tgbotapi.NewMessage(message.Chat.ID, "Некорректный идентификатор пользователя."))
	}

	user, err := b.users.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return b.send(tgbotapi.NewMessage(message.Chat.ID, "Пользователь не найден."))
	}

	stats, err := b.stats.GetByUserID(ctx, user.ID)
	if err != nil {
		log.Printf("Error getting statistics for user %d: %v", user.ID, err)
		return b.send(tgbotapi.NewMessage(message.Chat.ID, "Произошла ошибка. Попробуйте позже."))
	}

	text := fmt.Sprintf("👤 Пользователь %d (@%s)\nТекущий урок: %d\n", user.TelegramID, user.Username, user.CurrentLesson)
	if stats != nil {
		text += fmt.Sprintf("Пройдено уроков: %d\nСредний балл: %.1f\nПопыток всего: %d\nПоследняя активность: %s",
			stats.CompletedLessons, stats.AverageScore, stats.TotalAttempts,
			stats.LastActivity.Format("2006-01-02 15:04:05"))
	} else {
		text += "Прогресса пока нет."
	}
	return b.send(tgbotapi.NewMessage(message.Chat.ID, text))
}
