package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kennyonsig/FeedingMyBaby/content"
	"github.com/kennyonsig/FeedingMyBaby/models"
	"github.com/kennyonsig/FeedingMyBaby/services"
	"github.com/kennyonsig/FeedingMyBaby/utils"
)

const noActiveFeeding = "Нет активного кормления!"

func (b *Bot) cmdFeeding(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	child := b.childForMessage(msg, "feeding")
	if child == nil {
		return
	}

	feeding, err := b.feedings.Start(chatID, child.ID)
	if errors.Is(err, services.ErrFeedingActive) {
		b.reply(chatID, "Уже есть активное кормление!")
		return
	}
	if err != nil {
		b.fail("feeding", chatID, err)
		return
	}

	text, err := b.feedingStartedText(child, feeding)
	if err != nil {
		b.fail("feeding", chatID, err)
		return
	}
	b.replyMenu(chatID, text, feedingControlKeyboard())
}

func (b *Bot) cmdAddEaten(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	args := strings.Fields(msg.CommandArguments())
	if len(args) < 1 {
		b.reply(chatID, "Использование: /add_eaten [количество в мл]\nНапример: /add_eaten 50")
		return
	}
	ml, err := strconv.Atoi(args[0])
	if err != nil {
		b.reply(chatID, "Введите число (например: /add_eaten 50)")
		return
	}

	feeding, err := b.feedings.AddEaten(chatID, ml)
	switch {
	case errors.Is(err, services.ErrNoActiveFeeding):
		b.reply(chatID, noActiveFeeding)
		return
	case errors.Is(err, services.ErrVolumeOutOfRange):
		b.reply(chatID, "Введите количество от 1 до 500 мл!")
		return
	case err != nil:
		b.fail("add_eaten", chatID, err)
		return
	}

	child := b.childForMessage(msg, "add_eaten")
	if child == nil {
		return
	}
	totals, err := b.feedings.TodayTotals(child.ID)
	if err != nil {
		b.fail("add_eaten", chatID, err)
		return
	}

	text := fmt.Sprintf("✅ Добавлено %d мл\n\n", ml)
	text += fmt.Sprintf("👶 Ребенок: %s\n", child.FirstName)
	text += fmt.Sprintf("🍶 Съедено сейчас: %d мл\n", feeding.EatenML)
	text += fmt.Sprintf("📊 За сегодня: %d кормлений, всего %d мл", totals.Count, totals.TotalML)
	b.reply(chatID, text)
}

func (b *Bot) cmdFinish(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	feeding, err := b.feedings.Finish(chatID)
	if errors.Is(err, services.ErrNoActiveFeeding) {
		b.reply(chatID, noActiveFeeding)
		return
	}
	if err != nil {
		b.fail("finish", chatID, err)
		return
	}

	child := b.childForMessage(msg, "finish")
	if child == nil {
		return
	}
	text, err := b.feedingFinishedText(child, feeding)
	if err != nil {
		b.fail("finish", chatID, err)
		return
	}
	b.reply(chatID, text)
	b.replyMenu(chatID, "🏠 Главное меню\nВыберите раздел:", mainMenuKeyboard())
}

func (b *Bot) cmdResetFeeding(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	deleted, err := b.feedings.ResetActive(chatID)
	if err != nil {
		b.fail("reset_feeding", chatID, err)
		return
	}
	if deleted > 0 {
		b.reply(chatID, fmt.Sprintf("✅ Удалено %d активных кормлений", deleted))
	} else {
		b.reply(chatID, "⚠️ Активных кормлений не найдено")
	}
}

func (b *Bot) onStartFeeding(cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID
	child := b.childForCallback(cq, "start_feeding")
	if child == nil {
		return
	}

	feeding, err := b.feedings.Start(chatID, child.ID)
	if errors.Is(err, services.ErrFeedingActive) {
		b.alert(cq.ID, "Уже есть активное кормление!")
		return
	}
	if err != nil {
		b.answer(cq.ID, "")
		b.fail("start_feeding", chatID, err)
		return
	}

	text, err := b.feedingStartedText(child, feeding)
	if err != nil {
		b.answer(cq.ID, "")
		b.fail("start_feeding", chatID, err)
		return
	}
	b.edit(cq, text, feedingControlKeyboard())
	b.answer(cq.ID, "")
}

func (b *Bot) onQuickAdd(cq *tgbotapi.CallbackQuery, ml int) {
	chatID := cq.Message.Chat.ID

	feeding, err := b.feedings.AddEaten(chatID, ml)
	if errors.Is(err, services.ErrNoActiveFeeding) {
		b.alert(cq.ID, noActiveFeeding)
		return
	}
	if err != nil {
		b.answer(cq.ID, "")
		b.fail("add_eaten_quick", chatID, err)
		return
	}

	child := b.childForCallback(cq, "add_eaten_quick")
	if child == nil {
		return
	}
	text, err := b.feedingProgressText(child, feeding, ml)
	if err != nil {
		b.answer(cq.ID, "")
		b.fail("add_eaten_quick", chatID, err)
		return
	}
	b.edit(cq, text, feedingControlKeyboard())
	b.answer(cq.ID, fmt.Sprintf("+%d мл", ml))
}

func (b *Bot) onAddCustom(cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID

	feeding, err := b.feedings.Active(chatID)
	if err != nil {
		b.answer(cq.ID, "")
		b.fail("add_custom", chatID, err)
		return
	}
	if feeding == nil {
		b.alert(cq.ID, noActiveFeeding)
		return
	}

	b.steps.Put(chatID, Flow{Step: StepCustomAmount})
	b.edit(cq,
		"📝 Введите количество мл, которое съел ребенок:\n\n"+
			"Введите число (например: 75):\n\n"+
			"Для отмены нажмите ❌ Отмена",
		cancelKeyboard())
	b.answer(cq.ID, "")
}

func (b *Bot) stepCustomAmount(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	ml, err := strconv.Atoi(strings.TrimSpace(msg.Text))
	if err != nil {
		b.reply(chatID, "Пожалуйста, введите число (например: 75):")
		return
	}
	if ml <= 0 {
		b.reply(chatID, "Введите положительное число!")
		return
	}
	if ml > services.MaxVolumeML {
		b.reply(chatID, fmt.Sprintf("Введите количество до %d мл!", services.MaxVolumeML))
		return
	}

	feeding, err := b.feedings.AddEaten(chatID, ml)
	if errors.Is(err, services.ErrNoActiveFeeding) {
		b.reply(chatID, noActiveFeeding)
		b.steps.Clear(chatID)
		return
	}
	if err != nil {
		b.fail("custom_amount", chatID, err)
		return
	}

	child := b.childForMessage(msg, "custom_amount")
	if child == nil {
		b.steps.Clear(chatID)
		return
	}
	text, err := b.feedingProgressText(child, feeding, ml)
	if err != nil {
		b.fail("custom_amount", chatID, err)
		return
	}
	b.replyMenu(chatID, text, feedingControlKeyboard())
	b.steps.Clear(chatID)
}

func (b *Bot) onFinishFeeding(cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID

	feeding, err := b.feedings.Finish(chatID)
	if errors.Is(err, services.ErrNoActiveFeeding) {
		b.alert(cq.ID, noActiveFeeding)
		return
	}
	if err != nil {
		b.answer(cq.ID, "")
		b.fail("finish_feeding", chatID, err)
		return
	}

	child := b.childForCallback(cq, "finish_feeding")
	if child == nil {
		return
	}
	text, err := b.feedingFinishedText(child, feeding)
	if err != nil {
		b.answer(cq.ID, "")
		b.fail("finish_feeding", chatID, err)
		return
	}
	b.edit(cq, text, backToMainKeyboard())
	b.answer(cq.ID, "")
}

func (b *Bot) onCancelFeeding(cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID

	err := b.feedings.Cancel(chatID)
	if errors.Is(err, services.ErrNoActiveFeeding) {
		b.alert(cq.ID, noActiveFeeding)
		return
	}
	if err != nil {
		b.answer(cq.ID, "")
		b.fail("cancel_feeding", chatID, err)
		return
	}

	b.edit(cq, "❌ Кормление отменено", backToMainKeyboard())
	b.answer(cq.ID, "")
}

// --- feeding texts ---

func (b *Bot) feedingStartedText(child *models.Child, feeding *models.Feeding) (string, error) {
	totals, err := b.feedings.TodayTotals(child.ID)
	if err != nil {
		return "", err
	}
	text := "🍼 Кормление начато!\n\n"
	text += fmt.Sprintf("👶 Ребенок: %s\n", child.FirstName)
	text += fmt.Sprintf("⏱️ Начало: %s\n", b.fmtTime(feeding.StartTime))
	text += fmt.Sprintf("🍶 Съедено сейчас: %d мл\n", feeding.EatenML)
	text += fmt.Sprintf("📊 За сегодня: %d кормлений, всего %d мл\n\n", totals.Count, totals.TotalML)
	if advice := b.formulaAdvice(child); advice != "" {
		text += advice + "\n\n"
	}
	text += "Добавляйте съеденное по мере кормления:"
	return text, nil
}

// formulaAdvice renders the daily formula volume line from the latest
// measurement, or "" when no weight is on record.
func (b *Bot) formulaAdvice(child *models.Child) string {
	m, err := b.measurements.Last(child.ID)
	if err != nil || m == nil {
		return ""
	}
	return content.FormulaAdvice(b.ageDaysOf(child), m.Weight)
}

func (b *Bot) feedingProgressText(child *models.Child, feeding *models.Feeding, added int) (string, error) {
	totals, err := b.feedings.TodayTotals(child.ID)
	if err != nil {
		return "", err
	}
	text := "🍼 Кормление продолжается\n\n"
	text += fmt.Sprintf("👶 Ребенок: %s\n", child.FirstName)
	text += fmt.Sprintf("⏱️ Начало: %s\n", b.fmtTime(feeding.StartTime))
	text += fmt.Sprintf("🍶 Съедено сейчас: %d мл\n", feeding.EatenML)
	text += fmt.Sprintf("📊 За сегодня: %d кормлений, всего %d мл\n\n", totals.Count, totals.TotalML)
	text += fmt.Sprintf("✅ Добавлено: %d мл\n\n", added)
	text += "Продолжайте кормить или завершите кормление"
	return text, nil
}

func (b *Bot) feedingFinishedText(child *models.Child, feeding *models.Feeding) (string, error) {
	totals, err := b.feedings.TodayTotals(child.ID)
	if err != nil {
		return "", err
	}
	today, err := b.feedings.TodayList(child.ID)
	if err != nil {
		return "", err
	}

	text := "✅ Кормление завершено!\n\n"
	text += fmt.Sprintf("👶 Ребенок: %s\n", child.FirstName)
	text += fmt.Sprintf("⏱️ Начало: %s\n", b.fmtTime(feeding.StartTime))
	if feeding.EndTime != nil {
		text += fmt.Sprintf("⏱️ Конец: %s\n", b.fmtTime(*feeding.EndTime))
	}
	text += fmt.Sprintf("⏳ Длительность: %s\n", utils.FormatDuration(feeding.Duration(b.now())))
	text += fmt.Sprintf("🍶 Съедено: %d мл\n", feeding.EatenML)
	text += fmt.Sprintf("📊 За сегодня: %d кормлений, всего %d мл", totals.Count, totals.TotalML)

	if len(today) > 0 {
		text += "\n\n📋 Кормления за сегодня:\n"
		for _, f := range today {
			end := "…"
			if f.EndTime != nil {
				end = b.fmtTime(*f.EndTime)
			}
			text += fmt.Sprintf("  %s - %s: %d мл\n", b.fmtTime(f.StartTime), end, f.EatenML)
		}
	}

	if feeding.PreparedML != nil {
		text += fmt.Sprintf("\n🍶 Приготовлено: %d мл", *feeding.PreparedML)
	}
	return text, nil
}
