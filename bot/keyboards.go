package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"ogeprepbot/topics"
)

// Fixed reply-keyboard labels. The router matches on these literally, so
// they live in one place.
const (
	btnReference = "📚 Справочник"
	btnTasks     = "📝 Задачи"
	btnResults   = "📊 Результаты"
	btnAbout     = "ℹ️ О боте"
	btnHelp      = "❓ Помощь"
	btnBack      = "◀️ Назад в меню"

	btnAdminStats = "👑 Статистика"
	btnAdminUsers = "👥 Пользователи"
	btnAdminLogs  = "📋 Логи"

	topicPrefix = "🔹 "
)

// mainMenu builds the main reply keyboard. The administrator gets three
// extra buttons on a separate row.
func mainMenu(admin bool) tgbotapi.ReplyKeyboardMarkup {
	rows := [][]tgbotapi.KeyboardButton{
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnReference),
			tgbotapi.NewKeyboardButton(btnTasks),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnResults),
			tgbotapi.NewKeyboardButton(btnAbout),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnHelp),
		),
	}
	if admin {
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnAdminStats),
			tgbotapi.NewKeyboardButton(btnAdminUsers),
			tgbotapi.NewKeyboardButton(btnAdminLogs),
		))
	}
	return tgbotapi.NewReplyKeyboard(rows...)
}

// topicsMenu lists every topic from the bank plus a back button.
func topicsMenu() tgbotapi.ReplyKeyboardMarkup {
	names := topics.Names()
	var rows [][]tgbotapi.KeyboardButton
	for i := 0; i < len(names); i += 2 {
		row := []tgbotapi.KeyboardButton{tgbotapi.NewKeyboardButton(topicPrefix + names[i])}
		if i+1 < len(names) {
			row = append(row, tgbotapi.NewKeyboardButton(topicPrefix+names[i+1]))
		}
		rows = append(rows, row)
	}
	rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnBack)))
	return tgbotapi.NewReplyKeyboard(rows...)
}

// quizMenu is shown while a quiz is in progress: exit only.
func quizMenu() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnBack)),
	)
}
