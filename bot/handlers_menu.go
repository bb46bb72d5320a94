package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const helpText = `📋 Доступные команды и функции:

Основные:
/start - Главное меню
/register - Регистрация ребенка
/child_info - Информация о ребенке
/params - Внести параметры роста/веса
/stats - Статистика развития
/menu - Главное меню (inline)
/help - Справка

Функции для родителей:
• 💤 Сон - Трекер сна
• 🌞 Бодрствование - Трекер времени бодрствования
• 🩲 Подгузник - Трекер смены подгузников
• 📝 Заметка - Журнал для записей

Для кормлений:
/feeding - Начать кормление
/add_eaten [количество] - Добавить съеденное (например: /add_eaten 50)
/finish - Завершить кормление
/reset_feeding - Сбросить активное кормление (при багах)

Для отмены ввода:
/cancel - Отмена текущего действия`

func (b *Bot) cmdStart(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	text := "👶 Бот для отслеживания развития ребенка!\n\n"
	child, err := b.children.ByChat(chatID)
	if err != nil {
		b.fail("start", chatID, err)
		return
	}
	if child != nil {
		text += fmt.Sprintf("👶 Ребенок: %s\n", child.FullName())
		text += fmt.Sprintf("📅 Дата рождения: %s\n", b.fmtDate(child.BirthDate))
		text += fmt.Sprintf("🎂 Возраст: %s\n\n", b.ageOf(child))
	}

	b.reply(chatID, text)
	b.replyMenu(chatID, "🏠 Главное меню\nВыберите раздел:", mainMenuKeyboard())
}

func (b *Bot) cmdMenu(msg *tgbotapi.Message) {
	b.replyMenu(msg.Chat.ID, "🏠 Главное меню\nВыберите раздел:", mainMenuKeyboard())
}

func (b *Bot) cmdHelp(msg *tgbotapi.Message) {
	b.reply(msg.Chat.ID, helpText)
}

func (b *Bot) cmdCancel(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if b.steps.Current(chatID).Step == StepNone {
		b.reply(chatID, "Нет активных действий для отмены")
		return
	}
	b.steps.Clear(chatID)
	b.replyMenu(chatID, "❌ Действие отменено", mainMenuKeyboard())
}

// onMainMenu returns to the main menu and abandons any pending input flow.
func (b *Bot) onMainMenu(cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID
	b.steps.Clear(chatID)
	b.edit(cq, b.mainMenuText(chatID), mainMenuKeyboard())
	b.answer(cq.ID, "")
}

// onResetFeeding drops a stuck active feeding without recording it.
func (b *Bot) onResetFeeding(cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID
	deleted, err := b.feedings.ResetActive(chatID)
	if err != nil {
		b.answer(cq.ID, "")
		b.fail("reset_feeding", chatID, err)
		return
	}

	if deleted > 0 {
		b.alert(cq.ID, fmt.Sprintf("✅ Удалено %d активных кормлений", deleted))
	} else {
		b.alert(cq.ID, "⚠️ Активных кормлений не найдено")
	}
	b.edit(cq, b.mainMenuText(chatID), mainMenuKeyboard())
}

func (b *Bot) onCancelState(cq *tgbotapi.CallbackQuery) {
	b.steps.Clear(cq.Message.Chat.ID)
	b.edit(cq, "❌ Ввод отменен", mainMenuKeyboard())
	b.answer(cq.ID, "Ввод отменен")
}
