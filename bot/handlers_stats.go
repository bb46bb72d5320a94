package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kennyonsig/FeedingMyBaby/models"
	"github.com/kennyonsig/FeedingMyBaby/utils"
)

func (b *Bot) cmdStats(msg *tgbotapi.Message) {
	child, err := b.children.ByChat(msg.Chat.ID)
	if err != nil {
		b.fail("stats", msg.Chat.ID, err)
		return
	}
	if child == nil {
		b.reply(msg.Chat.ID, "Сначала зарегистрируйте ребенка с помощью команды /register")
		return
	}
	b.sendStats(msg.Chat.ID, child)
}

func (b *Bot) onShowStats(cq *tgbotapi.CallbackQuery) {
	child := b.childForCallback(cq, "show_stats")
	if child == nil {
		return
	}
	b.sendStats(cq.Message.Chat.ID, child)
	b.answer(cq.ID, "")
}

func (b *Bot) sendStats(chatID int64, child *models.Child) {
	overview, err := b.stats.Overview(child.ID)
	if err != nil {
		b.fail("stats", chatID, err)
		return
	}

	text := fmt.Sprintf("📊 Статистика для %s\n\n", child.FirstName)

	if len(overview.TodayFeedings) > 0 {
		text += "🍼 Кормления сегодня:\n"
		for _, f := range overview.TodayFeedings {
			end := "…"
			if f.EndTime != nil {
				end = b.fmtTime(*f.EndTime)
			}
			text += fmt.Sprintf("  %s - %s: %d мл\n", b.fmtTime(f.StartTime), end, f.EatenML)
		}
		text += fmt.Sprintf("  Всего за сегодня: %d мл (%d корм.)\n\n",
			overview.TodayTotals.TotalML, overview.TodayTotals.Count)
	} else {
		text += "🍼 Сегодня кормлений не было.\n\n"
	}

	if len(overview.Week) > 0 {
		text += "🍼 Кормления за последние 7 дней:\n"
		for _, day := range overview.Week {
			text += fmt.Sprintf("  📅 %s: %d кормлений, %d мл\n",
				b.fmtDate(day.Day), day.Count, day.TotalML)
		}
		text += "\n"
	}

	if len(overview.Measurements) > 0 {
		text += "📈 Динамика параметров:\n"
		for i, m := range overview.Measurements {
			line := fmt.Sprintf("  📅 %s (%s): %.0f г, %d см",
				b.fmtDate(m.MeasuredOn), b.fmtTime(m.RecordedAt), m.Weight, m.Height)
			if i == 0 {
				line += " (последнее)"
			}
			text += line + "\n"
		}
	} else {
		text += "📏 Нет данных об измерениях\n"
	}

	if overview.Sleep.Count > 0 {
		text += fmt.Sprintf("\n💤 Сон сегодня: %d раз, %s",
			overview.Sleep.Count, utils.FormatMinutes(overview.Sleep.TotalMinutes))
	}
	if overview.Wake.Count > 0 {
		text += fmt.Sprintf("\n🌞 Бодрствование сегодня: %d раз, %s",
			overview.Wake.Count, utils.FormatMinutes(overview.Wake.TotalMinutes))
	}
	if len(overview.Diapers) > 0 {
		text += "\n🩲 Подгузники сегодня: "
		for _, c := range overview.Diapers {
			text += fmt.Sprintf("%s%d ", c.Kind.Emoji(), c.Count)
		}
	}

	if advice := b.formulaAdvice(child); advice != "" {
		text += "\n\n" + advice
	}

	b.reply(chatID, text)
	b.replyMenu(chatID, "🏠 Главное меню\nВыберите раздел:", mainMenuKeyboard())
}
