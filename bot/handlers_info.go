package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kennyonsig/FeedingMyBaby/models"
)

func (b *Bot) cmdChildInfo(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	child, err := b.children.ByChat(chatID)
	if err != nil {
		b.fail("child_info", chatID, err)
		return
	}
	if child == nil {
		b.reply(chatID, "Ребенок не зарегистрирован. Используйте /register")
		return
	}

	text, err := b.childInfoText(child)
	if err != nil {
		b.fail("child_info", chatID, err)
		return
	}
	b.replyMenu(chatID, text, backToMainKeyboard())
}

func (b *Bot) onChildInfo(cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID
	child, err := b.children.ByChat(chatID)
	if err != nil {
		b.answer(cq.ID, "")
		b.fail("child_info", chatID, err)
		return
	}
	if child == nil {
		b.alert(cq.ID, "Ребенок не зарегистрирован. Используйте /register")
		return
	}

	text, err := b.childInfoText(child)
	if err != nil {
		b.answer(cq.ID, "")
		b.fail("child_info", chatID, err)
		return
	}
	b.edit(cq, text, backToMainKeyboard())
	b.answer(cq.ID, "")
}

func (b *Bot) childInfoText(child *models.Child) (string, error) {
	text := "👶 Информация о ребенке\n\n"
	text += fmt.Sprintf("👶 Ребенок: %s\n", child.FullName())
	text += fmt.Sprintf("🚻 Пол: %s\n", child.GenderLabel())
	text += fmt.Sprintf("📅 Дата рождения: %s\n", b.fmtDate(child.BirthDate))
	text += fmt.Sprintf("🎂 Возраст: %s\n", b.ageOf(child))
	text += fmt.Sprintf("🤰 Срок беременности: %d нед. %d дн.\n", child.GestationWeeks, child.GestationDays)
	text += fmt.Sprintf("⚖️ Вес при рождении: %.0f г\n", child.BirthWeight)
	text += fmt.Sprintf("📏 Рост при рождении: %d см\n", child.BirthHeight)

	last, err := b.measurements.Last(child.ID)
	if err != nil {
		return "", err
	}
	if last != nil {
		text += "\n📊 Последние измерения:\n"
		text += fmt.Sprintf("⚖️ Вес: %.0f г (+%.0f г)\n", last.Weight, last.Weight-child.BirthWeight)
		text += fmt.Sprintf("📏 Рост: %d см (+%d см)\n", last.Height, last.Height-child.BirthHeight)
		text += fmt.Sprintf("📅 Дата: %s\n", b.fmtDate(last.MeasuredOn))
		text += fmt.Sprintf("🎂 Возраст на момент измерения: %d дней", last.AgeDays)
	}
	return text, nil
}
