package bot

import (
	"context"
	"strings"
	"sync"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/mlcoursebot/internal/ai"
	"github.com/example/mlcoursebot/internal/content"
	"github.com/example/mlcoursebot/internal/database"
)

type fakeSender struct {
	mu        sync.Mutex
	texts     []string
	photos    int
	documents int
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch m := c.(type) {
	case tgbotapi.MessageConfig:
		f.texts = append(f.texts, m.Text)
	case tgbotapi.PhotoConfig:
		f.photos++
	case tgbotapi.DocumentConfig:
		f.documents++
	}
	return tgbotapi.Message{}, nil
}

func (f *fakeSender) lastText() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.texts) == 0 {
		return ""
	}
	return f.texts[len(f.texts)-1]
}

type stubProvider struct {
	explainText string
	answerText  string
	memeURL     string
	memeErr     error
	fact        *ai.HistoryFact
	factErr     error
}

func (s *stubProvider) Explain(context.Context, string) string        { return s.explainText }
func (s *stubProvider) AnswerQuestion(context.Context, string) string { return s.answerText }
func (s *stubProvider) GenerateMeme(context.Context, string) (string, error) {
	return s.memeURL, s.memeErr
}
func (s *stubProvider) RandomHistoryFact(context.Context) (*ai.HistoryFact, error) {
	return s.fact, s.factErr
}

func newTestBot(t *testing.T) (*Bot, *fakeSender) {
	t.Helper()
	db, err := database.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	statsRepo := database.NewStatisticsRepository(db)
	sender := &fakeSender{}
	b := &Bot{
		api:      sender,
		users:    database.NewUserRepository(db),
		progress: database.NewProgressRepository(db, statsRepo),
		stats:    statsRepo,
		catalog:  content.Default(),
		tracker:  newPendingTracker(),
		config:   DefaultConfig(),
	}
	return b, sender
}

// command builds an inbound message; a leading slash gets the bot_command
// entity Telegram would attach
func command(userID int64, text string) *tgbotapi.Message {
	msg := &tgbotapi.Message{
		From: &tgbotapi.User{ID: userID, UserName: "student"},
		Chat: &tgbotapi.Chat{ID: userID},
		Text: text,
	}
	if strings.HasPrefix(text, "/") {
		cmd := text
		if i := strings.Index(text, " "); i >= 0 {
			cmd = text[:i]
		}
		msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(cmd)}}
	}
	return msg
}

func TestLessonCheckAcceptsLowercaseAnswer(t *testing.T) {
	b, sender := newTestBot(t)
	ctx := context.Background()

	require.NoError(t, b.handleLesson(ctx, command(10, "/lesson")))
	pending, ok := b.tracker.Get(10)
	require.True(t, ok)
	require.Equal(t, PendingLessonCheck, pending.Kind)
	require.Equal(t, "A", pending.Correct) // урок 1

	require.NoError(t, b.handleText(ctx, command(10, "a")))

	_, ok = b.tracker.Get(10)
	assert.False(t, ok, "pending must be cleared on a correct answer")
	assert.True(t, b.tracker.QuizUnlocked(10, 1))
	assert.Contains(t, sender.lastText(), "✅")
}

func TestLessonCheckWrongAnswerKeepsPending(t *testing.T) {
	b, sender := newTestBot(t)
	ctx := context.Background()

	require.NoError(t, b.handleLesson(ctx, command(11, "/lesson")))
	require.NoError(t, b.handleText(ctx, command(11, "B")))

	pending, ok := b.tracker.Get(11)
	assert.True(t, ok, "wrong answer must leave the question pending")
	assert.Equal(t, PendingLessonCheck, pending.Kind)
	assert.Contains(t, sender.lastText(), "Подсказка")
	assert.False(t, b.tracker.QuizUnlocked(11, 1))
}

func TestMenuLabelTakesPrecedenceOverPending(t *testing.T) {
	b, sender := newTestBot(t)
	ctx := context.Background()

	b.tracker.Set(12, PendingInteraction{Kind: PendingQuiz, LessonID: 1, Correct: "B"})

	require.NoError(t, b.handleText(ctx, command(12, btnProgress)))

	// Показан прогресс, вопрос теста отменен, а не решен
	_, ok := b.tracker.Get(12)
	assert.False(t, ok, "menu press abandons the pending question")
	assert.Contains(t, sender.lastText(), "Ваш прогресс")

	// Прежний ответ больше никуда не попадает
	require.NoError(t, b.handleText(ctx, command(12, "B")))
	assert.Contains(t, sender.lastText(), "/lesson")
}

func TestFreeTextWithoutPendingGetsGenericHint(t *testing.T) {
	b, sender := newTestBot(t)

	require.NoError(t, b.handleText(context.Background(), command(13, "A")))
	assert.Contains(t, sender.lastText(), "/lesson")
}

func TestQuizRequiresPassedLessonCheck(t *testing.T) {
	b, sender := newTestBot(t)

	require.NoError(t, b.handleQuiz(context.Background(), command(14, "/quiz")))

	_, ok := b.tracker.Get(14)
	assert.False(t, ok)
	assert.Contains(t, sender.lastText(), "Сначала")
}

func TestTriviaIsSingleShot(t *testing.T) {
	b, sender := newTestBot(t)
	b.ai = &stubProvider{fact: &ai.HistoryFact{
		History:       "В 1957 году Розенблатт создал персептрон.",
		Question:      "Кто создал персептрон?",
		CorrectAnswer: "B",
		Explanation:   "Персептрон создал Фрэнк Розенблатт.",
	}}
	ctx := context.Background()

	require.NoError(t, b.handleHistory(ctx, command(15, "/history")))
	pending, ok := b.tracker.Get(15)
	require.True(t, ok)
	require.Equal(t, PendingTrivia, pending.Kind)

	// Неверный ответ: раунд завершается, объяснение показывается
	require.NoError(t, b.handleText(ctx, command(15, "a")))
	_, ok = b.tracker.Get(15)
	assert.False(t, ok, "trivia does not allow a retry")
	assert.Contains(t, sender.lastText(), "Правильный ответ: B")
	assert.Contains(t, sender.lastText(), "Розенблатт")

	// Повторный ответ уже никуда не попадает
	require.NoError(t, b.handleText(ctx, command(15, "B")))
	assert.Contains(t, sender.lastText(), "/lesson")
}

func TestHistoryProviderErrorYieldsApology(t *testing.T) {
	b, sender := newTestBot(t)
	b.ai = &stubProvider{factErr: context.DeadlineExceeded}

	require.NoError(t, b.handleHistory(context.Background(), command(16, "/history")))
	assert.Equal(t, historyApology, sender.lastText())

	_, ok := b.tracker.Get(16)
	assert.False(t, ok)
}

func TestHistoryWithoutProviderSendsStaticText(t *testing.T) {
	b, sender := newTestBot(t)

	require.NoError(t, b.handleHistory(context.Background(), command(17, "/history")))
	assert.Equal(t, content.History, sender.lastText())
}

func TestAskValidatesArgument(t *testing.T) {
	b, sender := newTestBot(t)
	b.ai = &stubProvider{answerText: "ответ"}
	ctx := context.Background()

	require.NoError(t, b.handleAsk(ctx, command(18, "/ask")))
	assert.Contains(t, sender.lastText(), "укажите ваш вопрос")

	long := strings.Repeat("х", b.config.TopicMaxLen+1)
	require.NoError(t, b.handleAsk(ctx, command(18, "/ask "+long)))
	assert.Contains(t, sender.lastText(), "Слишком длинный")

	require.NoError(t, b.handleAsk(ctx, command(18, "/ask что такое ML?")))
	assert.Equal(t, "ответ", sender.lastText())
}

func TestMemeSendsPhoto(t *testing.T) {
	b, sender := newTestBot(t)
	b.ai = &stubProvider{memeURL: "https://example.com/meme.png"}

	require.NoError(t, b.handleMeme(context.Background(), command(19, "/meme overfitting")))
	assert.Equal(t, 1, sender.photos)
}

func TestMemeProviderErrorYieldsApology(t *testing.T) {
	b, sender := newTestBot(t)
	b.ai = &stubProvider{memeErr: context.DeadlineExceeded}

	require.NoError(t, b.handleMeme(context.Background(), command(20, "/meme")))
	assert.Equal(t, memeApology, sender.lastText())
	assert.Equal(t, 0, sender.photos)
}
