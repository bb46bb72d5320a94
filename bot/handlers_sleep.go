package bot

import (
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kennyonsig/FeedingMyBaby/content"
	"github.com/kennyonsig/FeedingMyBaby/services"
	"github.com/kennyonsig/FeedingMyBaby/utils"
)

func (b *Bot) onSleepMenu(cq *tgbotapi.CallbackQuery) {
	child := b.childForCallback(cq, "sleep_menu")
	if child == nil {
		return
	}

	text := "💤 Отслеживание сна и бодрствования\n\n"
	text += fmt.Sprintf("👶 Ребенок: %s\n", child.FirstName)
	text += fmt.Sprintf("📅 Дата: %s\n\n", b.fmtDate(b.now()))
	text += "Выберите действие:"
	b.edit(cq, text, sleepMenuKeyboard())
	b.answer(cq.ID, "")
}

func (b *Bot) onStartSleep(cq *tgbotapi.CallbackQuery) {
	child := b.childForCallback(cq, "start_sleep")
	if child == nil {
		return
	}

	session, err := b.sleeps.StartSleep(child.ID)
	if errors.Is(err, services.ErrSleepActive) {
		b.alert(cq.ID, "Уже есть активный сон! Сначала завершите его.")
		return
	}
	if err != nil {
		b.answer(cq.ID, "")
		b.fail("start_sleep", cq.Message.Chat.ID, err)
		return
	}

	text := fmt.Sprintf("🛏️ Сон начат в %s\n", b.fmtTime(session.StartedAt))
	text += fmt.Sprintf("👶 Для: %s\n\n", child.FirstName)
	text += "Когда ребенок проснется, нажмите '🌅 Конец сна'"
	b.edit(cq, text, sleepMenuKeyboard())
	b.answer(cq.ID, "")
}

func (b *Bot) onEndSleep(cq *tgbotapi.CallbackQuery) {
	child := b.childForCallback(cq, "end_sleep")
	if child == nil {
		return
	}

	session, err := b.sleeps.EndSleep(child.ID)
	if errors.Is(err, services.ErrNoActiveSleep) {
		b.alert(cq.ID, "Нет активного сна! Начните сон сначала.")
		return
	}
	if err != nil {
		b.answer(cq.ID, "")
		b.fail("end_sleep", cq.Message.Chat.ID, err)
		return
	}

	minutes := 0
	if session.DurationMinutes != nil {
		minutes = *session.DurationMinutes
	}
	text := "🌅 Сон завершен!\n"
	text += fmt.Sprintf("👶 Для: %s\n", child.FirstName)
	text += fmt.Sprintf("🛏️ Начало: %s\n", b.fmtTime(session.StartedAt))
	if session.EndedAt != nil {
		text += fmt.Sprintf("🌅 Конец: %s\n", b.fmtTime(*session.EndedAt))
	}
	text += fmt.Sprintf("⏱️ Длительность: %s\n\n", utils.FormatMinutes(minutes))
	text += "✅ Отлично! Малыши нуждаются в 14-18 часах сна в сутки."
	b.edit(cq, text, sleepMenuKeyboard())
	b.answer(cq.ID, "")
}

func (b *Bot) onSleepStats(cq *tgbotapi.CallbackQuery) {
	child := b.childForCallback(cq, "sleep_stats")
	if child == nil {
		return
	}

	totals, err := b.sleeps.TodaySleepTotals(child.ID)
	if err != nil {
		b.answer(cq.ID, "")
		b.fail("sleep_stats", cq.Message.Chat.ID, err)
		return
	}

	var text string
	if totals.Count > 0 {
		text = "📊 Статистика сна за сегодня:\n\n"
		text += fmt.Sprintf("👶 Ребенок: %s\n", child.FirstName)
		text += fmt.Sprintf("📅 Дата: %s\n", b.fmtDate(b.now()))
		text += fmt.Sprintf("🛏️ Количество снов: %d\n", totals.Count)
		text += fmt.Sprintf("⏱️ Общее время сна: %s\n", utils.FormatMinutes(totals.TotalMinutes))
		text += fmt.Sprintf("📈 Средняя длительность: %s\n\n", utils.FormatMinutes(totals.AvgMinutes))
		text += content.SleepNorm(b.ageDaysOf(child))
	} else {
		text = "📊 Статистика сна за сегодня:\n\n"
		text += "😴 Данных о сне за сегодня пока нет\n"
		text += "Начните отслеживание с помощью кнопки '🛏️ Начало сна'"
	}
	b.edit(cq, text, sleepMenuKeyboard())
	b.answer(cq.ID, "")
}

func (b *Bot) onWakeMenu(cq *tgbotapi.CallbackQuery) {
	child := b.childForCallback(cq, "wake_menu")
	if child == nil {
		return
	}

	text := "🌞 Отслеживание бодрствования\n\n"
	text += fmt.Sprintf("👶 Ребенок: %s\n", child.FirstName)
	text += fmt.Sprintf("📅 Дата: %s\n\n", b.fmtDate(b.now()))
	text += "Выберите действие:"
	b.edit(cq, text, wakeMenuKeyboard())
	b.answer(cq.ID, "")
}

func (b *Bot) onStartWake(cq *tgbotapi.CallbackQuery) {
	child := b.childForCallback(cq, "start_wake")
	if child == nil {
		return
	}

	session, err := b.sleeps.StartWake(child.ID)
	if errors.Is(err, services.ErrWakeActive) {
		b.alert(cq.ID, "Уже есть активное бодрствование! Сначала завершите его.")
		return
	}
	if err != nil {
		b.answer(cq.ID, "")
		b.fail("start_wake", cq.Message.Chat.ID, err)
		return
	}

	text := fmt.Sprintf("🌞 Бодрствование начато в %s\n", b.fmtTime(session.StartedAt))
	text += fmt.Sprintf("👶 Для: %s\n\n", child.FirstName)
	text += "Когда ребенок начнет засыпать, нажмите '🌜 Конец бодрствования'"
	b.edit(cq, text, wakeMenuKeyboard())
	b.answer(cq.ID, "")
}

func (b *Bot) onEndWake(cq *tgbotapi.CallbackQuery) {
	child := b.childForCallback(cq, "end_wake")
	if child == nil {
		return
	}

	session, err := b.sleeps.EndWake(child.ID)
	if errors.Is(err, services.ErrNoActiveWake) {
		b.alert(cq.ID, "Нет активного бодрствования! Начните бодрствование сначала.")
		return
	}
	if err != nil {
		b.answer(cq.ID, "")
		b.fail("end_wake", cq.Message.Chat.ID, err)
		return
	}

	ageDays := b.ageDaysOf(child)
	minutes := 0
	if session.DurationMinutes != nil {
		minutes = *session.DurationMinutes
	}
	text := "🌜 Бодрствование завершено!\n"
	text += fmt.Sprintf("👶 Для: %s\n", child.FirstName)
	text += fmt.Sprintf("🌞 Начало: %s\n", b.fmtTime(session.StartedAt))
	if session.EndedAt != nil {
		text += fmt.Sprintf("🌜 Конец: %s\n", b.fmtTime(*session.EndedAt))
	}
	text += fmt.Sprintf("⏱️ Длительность: %s\n\n", utils.FormatMinutes(minutes))
	text += fmt.Sprintf("💡 Рекомендация: В возрасте %d дней оптимальное время бодрствования: %s",
		ageDays, content.WakeWindow(ageDays))
	b.edit(cq, text, wakeMenuKeyboard())
	b.answer(cq.ID, "")
}

func (b *Bot) onWakeStats(cq *tgbotapi.CallbackQuery) {
	child := b.childForCallback(cq, "wake_stats")
	if child == nil {
		return
	}

	totals, err := b.sleeps.TodayWakeTotals(child.ID)
	if err != nil {
		b.answer(cq.ID, "")
		b.fail("wake_stats", cq.Message.Chat.ID, err)
		return
	}

	var text string
	if totals.Count > 0 {
		ageDays := b.ageDaysOf(child)
		text = "📊 Статистика бодрствования за сегодня:\n\n"
		text += fmt.Sprintf("👶 Ребенок: %s\n", child.FirstName)
		text += fmt.Sprintf("📅 Дата: %s\n", b.fmtDate(b.now()))
		text += fmt.Sprintf("🌞 Количество периодов бодрствования: %d\n", totals.Count)
		text += fmt.Sprintf("⏱️ Общее время бодрствования: %s\n", utils.FormatMinutes(totals.TotalMinutes))
		text += fmt.Sprintf("📈 Средняя длительность: %s\n\n", utils.FormatMinutes(totals.AvgMinutes))
		text += fmt.Sprintf("💡 Рекомендации для возраста %d дней:\n", ageDays)
		text += fmt.Sprintf("• Время бодрствования: %s за раз\n", content.WakeWindow(ageDays))
		text += fmt.Sprintf("• Общий сон в сутки: %s\n", content.DailySleepForAge(ageDays))
		text += "• Обычно 3-4 дневных сна\n\n"
		if totals.AvgMinutes > content.OvertirednessThresholdMinutes {
			text += "⚠️ Внимание: Слишком долгое бодрствование может привести к переутомлению!"
		}
	} else {
		text = "📊 Статистика бодрствования за сегодня:\n\n"
		text += "🌞 Данных о бодрствовании за сегодня пока нет\n"
		text += "Начните отслеживание с помощью кнопки '🌞 Начало бодрствования'"
	}
	b.edit(cq, text, wakeMenuKeyboard())
	b.answer(cq.ID, "")
}
