package bot

import (
	"errors"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"ogeprepbot/config"
	"ogeprepbot/database"
	"ogeprepbot/models"
	"ogeprepbot/session"
	"ogeprepbot/topics"
)

const (
	cmdStart   = "start"
	cmdHelp    = "help"
	cmdStop    = "stop"
	cmdTasks   = "tasks"
	cmdResults = "results"
	cmdAdmin   = "admin"
	cmdUsers   = "users"
	cmdStats   = "stats"
	cmdLogs    = "logs"
	cmdMyID    = "myid"
	cmdPing    = "ping"

	listLimit = 20
	topLimit  = 5
)

// Bot wires the Telegram API to the store, the session tracker and the
// topic bank.
type Bot struct {
	api     *tgbotapi.BotAPI
	db      *database.DB
	tracker *session.Tracker
	adminID int64
}

// New creates a new bot instance
func New(cfg *config.Config) (*Bot, error) {
	botAPI, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}
	botAPI.Debug = cfg.Debug

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Bot{
		api:     botAPI,
		db:      db,
		tracker: session.NewTracker(),
		adminID: cfg.AdminID,
	}, nil
}

// Close releases the bot's resources.
func (b *Bot) Close() error {
	return b.db.Close()
}

// Run polls for updates and dispatches them until the update channel
// closes. Panics inside a handler are confined to that update.
func (b *Bot) Run() error {
	log.Printf("Authorized on account %s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	for update := range updates {
		if update.Message == nil || update.Message.From == nil {
			continue
		}
		b.handleMessage(update.Message)
	}
	return errors.New("update channel closed")
}

// handleMessage classifies one incoming message and routes it through the
// Idle/InQuiz state machine. Fixed labels and commands always take
// priority over answer interpretation.
func (b *Bot) handleMessage(message *tgbotapi.Message) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic while handling update: %v", r)
		}
	}()

	userID := message.From.ID
	text := message.Text
	log.Printf("Message from %s (ID: %d): %s", message.From.FirstName, userID, text)

	// Every contact refreshes the profile. Persistence failures here must
	// not interrupt the user-facing flow.
	if err := b.db.UpsertUser(userID, message.From.FirstName, userID == b.adminID); err != nil {
		log.Printf("Error upserting user %d: %v", userID, err)
	}

	kind, payload := classify(text)

	// Single audit point for all dispatched events.
	if err := b.db.LogAction(userID, kind.String(), text); err != nil {
		log.Printf("Error logging action for user %d: %v", userID, err)
	}

	// Admin views share one gate; for everyone else they do not exist.
	if adminOnly(kind, payload) && !b.isAdmin(userID) {
		b.sendUnrecognized(message)
		return
	}

	switch kind {
	case inputCommand:
		b.handleCommand(message, payload)
	case inputMenu:
		b.handleMenu(message, payload)
	case inputTopic:
		b.startQuiz(message, payload)
	default:
		if _, ok := b.tracker.Get(userID); ok {
			b.handleAnswer(message)
		} else {
			b.sendUnrecognized(message)
		}
	}
}

func (b *Bot) handleCommand(message *tgbotapi.Message, cmd string) {
	userID := message.From.ID

	switch cmd {
	case cmdStart:
		text := fmt.Sprintf("👋 Привет, %s!\n\nЯ помогу тебе подготовиться к ОГЭ по информатике. Выбери действие:", message.From.FirstName)
		b.sendWithKeyboard(message.Chat.ID, text, mainMenu(b.isAdmin(userID)))
	case cmdHelp:
		b.sendHelp(message.Chat.ID, b.isAdmin(userID))
	case cmdStop:
		b.tracker.Terminate(userID)
		b.sendMessage(message.Chat.ID, fmt.Sprintf("👋 Пока, %s! Чтобы начать заново, нажми /start", message.From.FirstName))
	case cmdTasks:
		b.sendWithKeyboard(message.Chat.ID, "📝 Выбери тему:", topicsMenu())
	case cmdResults:
		b.sendResults(message)
	case cmdAdmin:
		b.sendWithKeyboard(message.Chat.ID, "👑 Админ-меню:", mainMenu(true))
	case cmdUsers:
		b.sendUserList(message.Chat.ID)
	case cmdStats:
		b.sendAggregateStats(message.Chat.ID)
	case cmdLogs:
		b.sendActionLog(message.Chat.ID)
	case cmdMyID:
		b.sendMessage(message.Chat.ID, fmt.Sprintf("Твой ID: %d", userID))
	case cmdPing:
		b.sendMessage(message.Chat.ID, "pong")
	default:
		b.sendUnrecognized(message)
	}
}

func (b *Bot) handleMenu(message *tgbotapi.Message, label string) {
	userID := message.From.ID

	switch label {
	case btnBack:
		b.exitQuiz(message)
	case btnReference:
		b.sendWithKeyboard(message.Chat.ID,
			"📚 Основные темы ОГЭ:\n\n"+
				"• Информация и ее кодирование\n"+
				"• Логические операции\n"+
				"• Алгоритмы и исполнители\n"+
				"• Файловая система\n"+
				"• Информационные модели\n\n"+
				"Подробнее можно изучить в разделе 'Задачи'!",
			mainMenu(b.isAdmin(userID)))
	case btnTasks:
		b.sendWithKeyboard(message.Chat.ID, "📝 Выбери тему:", topicsMenu())
	case btnResults:
		b.sendResults(message)
	case btnAbout:
		b.sendWithKeyboard(message.Chat.ID,
			"ℹ️ Бот для подготовки к ОГЭ по информатике\n\nВерсия: 1.0\n\nУдачи в подготовке! 🍀",
			mainMenu(b.isAdmin(userID)))
	case btnHelp:
		b.sendHelp(message.Chat.ID, b.isAdmin(userID))
	case btnAdminStats:
		b.sendAggregateStats(message.Chat.ID)
	case btnAdminUsers:
		b.sendUserList(message.Chat.ID)
	case btnAdminLogs:
		b.sendActionLog(message.Chat.ID)
	default:
		b.sendUnrecognized(message)
	}
}

// startQuiz opens a session on the selected topic and presents its first
// question. An in-progress session for the same user is overwritten.
func (b *Bot) startQuiz(message *tgbotapi.Message, topic string) {
	questions, ok := topics.Get(topic)
	if !ok || len(questions) == 0 {
		b.sendUnrecognized(message)
		return
	}

	b.tracker.Start(message.From.ID, topic)
	b.sendQuestion(message.Chat.ID, topic, questions[0], 0, len(questions))
}

// handleAnswer evaluates free text against the current question, records
// the result and either presents the next question or finishes the quiz.
func (b *Bot) handleAnswer(message *tgbotapi.Message) {
	userID := message.From.ID

	s, ok := b.tracker.Get(userID)
	if !ok {
		return
	}
	questions, ok := topics.Get(s.Topic)
	if !ok || s.Index >= len(questions) {
		b.tracker.Terminate(userID)
		b.sendUnrecognized(message)
		return
	}

	q := questions[s.Index]
	correct := q.Accepts(message.Text)

	if err := b.db.RecordResult(models.Result{
		UserID:        userID,
		Topic:         s.Topic,
		Question:      q.Prompt,
		Answer:        message.Text,
		CorrectAnswer: q.Answer,
		IsCorrect:     correct,
	}); err != nil {
		log.Printf("Error recording result for user %d: %v", userID, err)
	}

	var verdict string
	if correct {
		verdict = fmt.Sprintf("✅ Правильно!\n\n%s", q.Explain)
	} else {
		verdict = fmt.Sprintf("❌ Неправильно!\n\nПравильный ответ: %s\n\n%s", q.Answer, q.Explain)
	}

	next, more := b.tracker.Advance(userID, correct, len(questions))
	if more {
		b.sendMessage(message.Chat.ID, verdict)
		b.sendQuestion(message.Chat.ID, s.Topic, questions[next], next, len(questions))
		return
	}

	gotCorrect, total, _ := b.tracker.Terminate(userID)
	summary := fmt.Sprintf("%s\n\n🏁 Тема завершена! Результат: %d/%d", verdict, gotCorrect, total)
	b.sendMessage(message.Chat.ID, summary)
	b.sendWithKeyboard(message.Chat.ID, "📝 Выбери следующую тему:", topicsMenu())
}

// exitQuiz handles the back button: mid-quiz it terminates the session
// and reports a summary when at least one question was answered; outside
// a quiz it just returns to the main menu.
func (b *Bot) exitQuiz(message *tgbotapi.Message) {
	userID := message.From.ID

	correct, total, ok := b.tracker.Terminate(userID)
	if ok && total > 0 {
		b.sendMessage(message.Chat.ID, fmt.Sprintf("📊 Твой результат: %d/%d", correct, total))
	}
	b.sendWithKeyboard(message.Chat.ID, "Главное меню:", mainMenu(b.isAdmin(userID)))
}

// sendQuestion presents one question with the in-quiz keyboard.
func (b *Bot) sendQuestion(chatID int64, topic string, q topics.Question, index, total int) {
	text := fmt.Sprintf("❓ Вопрос %d/%d по теме %s:\n\n%s\n\n(Напиши ответ):", index+1, total, topic, q.Prompt)
	b.sendWithKeyboard(chatID, text, quizMenu())
}

func (b *Bot) sendResults(message *tgbotapi.Message) {
	userID := message.From.ID

	total, correct, byTopic, err := b.db.GetUserStats(userID)
	if err != nil {
		log.Printf("Error getting stats for user %d: %v", userID, err)
		b.sendUnrecognized(message)
		return
	}

	if total == 0 {
		b.sendWithKeyboard(message.Chat.ID, "📊 У тебя пока нет решенных задач!", mainMenu(b.isAdmin(userID)))
		return
	}

	var sb strings.Builder
	sb.WriteString("📊 Твои результаты:\n\n")
	for _, ts := range byTopic {
		sb.WriteString(fmt.Sprintf("• %s: %d/%d (%.0f%%)\n", ts.Topic, ts.Correct, ts.Total, percent(ts.Correct, ts.Total)))
	}
	sb.WriteString(fmt.Sprintf("\n✅ Всего: %d/%d (%.0f%%)", correct, total, percent(correct, total)))

	b.sendWithKeyboard(message.Chat.ID, sb.String(), mainMenu(b.isAdmin(userID)))
}

func (b *Bot) sendAggregateStats(chatID int64) {
	stats, err := b.db.GetAggregateStats(topLimit)
	if err != nil {
		log.Printf("Error getting aggregate stats: %v", err)
		return
	}

	var sb strings.Builder
	sb.WriteString("👑 Статистика бота:\n\n")
	sb.WriteString(fmt.Sprintf("Пользователей: %d\n", stats.Users))
	sb.WriteString(fmt.Sprintf("Решено задач: %d\n", stats.Results))
	sb.WriteString(fmt.Sprintf("Действий в логе: %d\n", stats.Actions))
	sb.WriteString(fmt.Sprintf("Активных пользователей: %d\n", stats.ActiveUsers))
	if len(stats.Top) > 0 {
		sb.WriteString("\nТоп по задачам:\n")
		for i, u := range stats.Top {
			sb.WriteString(fmt.Sprintf("%d. %s — %d задач (%d верно)\n", i+1, u.Name, u.TasksTotal, u.TasksCorrect))
		}
	}
	b.sendWithKeyboard(chatID, sb.String(), mainMenu(true))
}

func (b *Bot) sendUserList(chatID int64) {
	users, err := b.db.ListUsers(listLimit)
	if err != nil {
		log.Printf("Error listing users: %v", err)
		return
	}

	if len(users) == 0 {
		b.sendWithKeyboard(chatID, "👥 Пользователей пока нет.", mainMenu(true))
		return
	}

	var sb strings.Builder
	sb.WriteString("👥 Пользователи:\n\n")
	for _, u := range users {
		sb.WriteString(fmt.Sprintf("• %s (ID %d): %d задач, %d верно, был %s\n",
			u.Name, u.ID, u.TasksTotal, u.TasksCorrect, u.LastSeen.Format("02.01.2006 15:04")))
	}
	b.sendWithKeyboard(chatID, sb.String(), mainMenu(true))
}

func (b *Bot) sendActionLog(chatID int64) {
	entries, err := b.db.RecentActions(listLimit)
	if err != nil {
		log.Printf("Error reading action log: %v", err)
		return
	}

	if len(entries) == 0 {
		b.sendWithKeyboard(chatID, "📋 Лог пока пуст.", mainMenu(true))
		return
	}

	var sb strings.Builder
	sb.WriteString("📋 Последние действия:\n\n")
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("%s | %d | %s: %s\n",
			e.CreatedAt.Format("02.01 15:04"), e.UserID, e.Action, e.Details))
	}
	b.sendWithKeyboard(chatID, sb.String(), mainMenu(true))
}

func (b *Bot) sendHelp(chatID int64, admin bool) {
	text := "❓ Команды:\n/start - начать\n/help - помощь\n/stop - выход\n/tasks - задачи\n/results - результаты"
	if admin {
		text += "\n/stats - статистика\n/users - пользователи\n/logs - лог действий"
	}
	b.sendWithKeyboard(chatID, text, mainMenu(admin))
}

func (b *Bot) sendUnrecognized(message *tgbotapi.Message) {
	b.sendWithKeyboard(message.Chat.ID, "Я не понимаю эту команду. Используй кнопки меню!", mainMenu(b.isAdmin(message.From.ID)))
}

// isAdmin is the single authorization gate for all admin views.
func (b *Bot) isAdmin(userID int64) bool {
	return b.adminID != 0 && userID == b.adminID
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// sendMessage sends a plain text message
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}

// sendWithKeyboard sends a text message with a reply keyboard attached
func (b *Bot) sendWithKeyboard(chatID int64, text string, keyboard tgbotapi.ReplyKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}
