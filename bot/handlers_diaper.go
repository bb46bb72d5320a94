package bot

import (
	"fmt"
	"unicode"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kennyonsig/FeedingMyBaby/content"
	"github.com/kennyonsig/FeedingMyBaby/models"
)

func (b *Bot) onDiaperMenu(cq *tgbotapi.CallbackQuery) {
	child := b.childForCallback(cq, "diaper_menu")
	if child == nil {
		return
	}

	text := "🩲 Отслеживание подгузников\n\n"
	text += fmt.Sprintf("👶 Ребенок: %s\n", child.FirstName)
	text += fmt.Sprintf("📅 Дата: %s\n\n", b.fmtDate(b.now()))
	text += "Выберите тип:"
	b.edit(cq, text, diaperMenuKeyboard())
	b.answer(cq.ID, "")
}

func (b *Bot) onDiaper(cq *tgbotapi.CallbackQuery, kind models.DiaperKind) {
	child := b.childForCallback(cq, "diaper_log")
	if child == nil {
		return
	}

	change, err := b.diapers.Log(child.ID, kind)
	if err != nil {
		b.answer(cq.ID, "")
		b.fail("diaper_log", cq.Message.Chat.ID, err)
		return
	}

	text := "✅ Подгузник отмечен!\n\n"
	text += fmt.Sprintf("👶 Ребенок: %s\n", child.FirstName)
	text += fmt.Sprintf("📅 Дата: %s\n", b.fmtDate(change.HappenedAt))
	text += fmt.Sprintf("⏰ Время: %s\n", b.fmtTime(change.HappenedAt))
	text += fmt.Sprintf("🩲 Тип: %s\n\n", kind.Label())
	text += content.DiaperAdvice(kind)

	b.edit(cq, text, diaperMenuKeyboard())
	b.answer(cq.ID, "✅ Запись сохранена!")
}

func (b *Bot) onDiaperStats(cq *tgbotapi.CallbackQuery) {
	child := b.childForCallback(cq, "diaper_stats")
	if child == nil {
		return
	}

	counts, total, err := b.diapers.TodayCounts(child.ID)
	if err != nil {
		b.answer(cq.ID, "")
		b.fail("diaper_stats", cq.Message.Chat.ID, err)
		return
	}

	text := "📊 Статистика подгузников за сегодня:\n\n"
	text += fmt.Sprintf("👶 Ребенок: %s\n", child.FirstName)
	text += fmt.Sprintf("📅 Дата: %s\n\n", b.fmtDate(b.now()))

	if total > 0 {
		for _, c := range counts {
			text += fmt.Sprintf("%s %s: %d раз\n", c.Kind.Emoji(), titleRu(c.Kind.Label()), c.Count)
			if c.Recent > 0 {
				text += fmt.Sprintf("   (из них за последние 3 часа: %d)\n", c.Recent)
			}
		}
		text += "\n"
		text += content.DiaperDailyAssessment(total)
		text += "\n" + content.DiaperNormsFooter()
	} else {
		text += "🩲 Данных за сегодня пока нет\n"
		text += "Начните отслеживание с помощью кнопок выше"
	}

	b.edit(cq, text, diaperMenuKeyboard())
	b.answer(cq.ID, "")
}

// titleRu upper-cases the first letter, matching how the stats lines
// render kind names.
func titleRu(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
