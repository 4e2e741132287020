package bot

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jmoiron/sqlx"

	"github.com/example/mlcoursebot/internal/ai"
	"github.com/example/mlcoursebot/internal/content"
	"github.com/example/mlcoursebot/internal/database"
	"github.com/example/mlcoursebot/internal/scheduler"
)

// sender is the outbound slice of the Telegram API used by handlers
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// provider is the explanation/meme backend. All failures are absorbed here
// or converted to apology texts by the handlers; nothing propagates.
type provider interface {
	Explain(ctx context.Context, topic string) string
	AnswerQuestion(ctx context.Context, question string) string
	GenerateMeme(ctx context.Context, concept string) (string, error)
	RandomHistoryFact(ctx context.Context) (*ai.HistoryFact, error)
}

// Bot represents the Telegram bot application
type Bot struct {
	api              sender
	token            string
	users            *database.UserRepository
	progress         *database.ProgressRepository
	stats            *database.StatisticsRepository
	catalog          *content.Catalog
	ai               provider // nil when OPENAI_API_KEY is not set
	tracker          *pendingTracker
	adminID          int64
	config           *BotConfig
	schedulerEnabled bool
	scheduler        *scheduler.Scheduler
}

// New creates a new bot instance from environment configuration
func New(db *sqlx.DB) (*Bot, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is not set")
	}

	statsRepo := database.NewStatisticsRepository(db)
	b := &Bot{
		token:            token,
		users:            database.NewUserRepository(db),
		progress:         database.NewProgressRepository(db, statsRepo),
		stats:            statsRepo,
		catalog:          content.Default(),
		tracker:          newPendingTracker(),
		config:           DefaultConfig(),
		schedulerEnabled: os.Getenv("ENABLE_SCHEDULER") != "false",
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		b.ai = ai.New(key)
	} else {
		log.Println("OPENAI_API_KEY is not set, AI features are disabled")
	}

	if idStr := os.Getenv("ADMIN_USER_ID"); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ADMIN_USER_ID: %v", err)
		}
		b.adminID = id
	}

	return b, nil
}

// Start connects to Telegram and processes updates until ctx is cancelled.
// Each update is handled on its own goroutine so a blocking storage or
// provider call never stalls unrelated conversations.
func (b *Bot) Start(ctx context.Context) error {
	botAPI, err := tgbotapi.NewBotAPI(b.token)
	if err != nil {
		return fmt.Errorf("unable to create bot: %v", err)
	}
	b.api = botAPI
	log.Printf("Authorized on account %s", botAPI.Self.UserName)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := botAPI.GetUpdatesChan(updateConfig)

	if b.schedulerEnabled {
		b.scheduler = scheduler.New(b, b.users, b.catalog.Size(), b.config.ReminderAfter)
		b.scheduler.Start()
	}

	for {
		select {
		case <-ctx.Done():
			botAPI.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go b.handleUpdate(ctx, update)
		}
	}
}

// Stop gracefully stops the bot
func (b *Bot) Stop() {
	if b.scheduler != nil {
		b.scheduler.Stop()
	}
	log.Println("Bot stopped")
}

// isAdmin checks if a user is the configured administrator
func (b *Bot) isAdmin(userID int64) bool {
	return b.adminID != 0 && userID == b.adminID
}

// handleUpdate handles a single incoming update. Any error or panic from a
// handler is absorbed here: it is logged and turned into a generic reply,
// so the conversation stays usable.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	message := update.Message
	if message == nil || message.From == nil || message.Chat == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("Panic while handling message from %d: %v", message.From.ID, r)
			b.send(tgbotapi.NewMessage(message.Chat.ID, "Произошла ошибка. Попробуйте позже."))
		}
	}()

	var err error
	if message.IsCommand() {
		err = b.handleCommand(ctx, message)
	} else {
		err = b.handleText(ctx, message)
	}

	if err != nil {
		log.Printf("Error handling message from %d: %v", message.From.ID, err)
		b.send(tgbotapi.NewMessage(message.Chat.ID, "Произошла ошибка. Попробуйте позже."))
	}
}

// handleCommand dispatches bot commands
func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) error {
	switch message.Command() {
	case "start":
		return b.handleStart(ctx, message)
	case "help":
		return b.handleHelp(message)
	case "lesson":
		return b.handleLesson(ctx, message)
	case "quiz":
		return b.handleQuiz(ctx, message)
	case "progress":
		return b.handleProgress(ctx, message)
	case "ask":
		return b.handleAsk(ctx, message)
	case "explain":
		return b.handleExplain(ctx, message)
	case "history":
		return b.handleHistory(ctx, message)
	case "meme":
		return b.handleMeme(ctx, message)
	case "stats":
		if !b.isAdmin(message.From.ID) {
			return b.send(tgbotapi.NewMessage(message.Chat.ID, "⛔ Эта команда доступна только администратору."))
		}
		return b.handleStats(ctx, message)
	case "user_stats":
		if !b.isAdmin(message.From.ID) {
			return b.send(tgbotapi.NewMessage(message.Chat.ID, "⛔ Эта команда доступна только администратору."))
		}
		return b.handleUserStats(ctx, message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Неизвестная команда. Используйте /help для списка команд.")
		msg.ReplyMarkup = mainKeyboard()
		return b.send(msg)
	}
}

// send delivers a message and logs delivery failures; a failed send is not
// a handler error the user can do anything about
func (b *Bot) send(c tgbotapi.Chattable) error {
	if _, err := b.api.Send(c); err != nil {
		log.Printf("Error sending message: %v", err)
	}
	return nil
}

// SendReminder implements the scheduler.Notifier interface
func (b *Bot) SendReminder(telegramID int64) error {
	// Для личных чатов chat ID совпадает с user ID
	msg := tgbotapi.NewMessage(telegramID, "📚 Вы давно не занимались! Продолжите обучение — /lesson")
	_, err := b.api.Send(msg)
	return err
}
