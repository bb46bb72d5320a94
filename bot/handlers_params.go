package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kennyonsig/FeedingMyBaby/content"
	"github.com/kennyonsig/FeedingMyBaby/models"
)

// Plausibility bounds for entered measurements.
const (
	minWeightGrams = 1000
	maxWeightGrams = 30000
	minHeightCM    = 30
	maxHeightCM    = 120
)

func paramsPrompt(child *models.Child) string {
	text := "📊 Внесение параметров\n\n"
	text += fmt.Sprintf("👶 Ребенок: %s\n\n", child.FirstName)
	text += "Введите текущий вес ребенка в граммах (например: 4500):\n\n"
	text += "Для отмены нажмите ❌ Отмена"
	return text
}

func (b *Bot) cmdParams(msg *tgbotapi.Message) {
	child := b.childForMessage(msg, "params")
	if child == nil {
		return
	}
	b.steps.Put(msg.Chat.ID, Flow{Step: StepParamsWeight})
	b.replyMenu(msg.Chat.ID, paramsPrompt(child), cancelKeyboard())
}

func (b *Bot) onUpdateParams(cq *tgbotapi.CallbackQuery) {
	child := b.childForCallback(cq, "update_params")
	if child == nil {
		return
	}
	b.steps.Put(cq.Message.Chat.ID, Flow{Step: StepParamsWeight})
	b.edit(cq, paramsPrompt(child), cancelKeyboard())
	b.answer(cq.ID, "")
}

func (b *Bot) stepParams(msg *tgbotapi.Message, flow Flow) {
	chatID := msg.Chat.ID
	input := strings.TrimSpace(msg.Text)

	switch flow.Step {
	case StepParamsWeight:
		weight, err := strconv.ParseFloat(strings.ReplaceAll(input, ",", "."), 64)
		if err != nil {
			b.reply(chatID, "Пожалуйста, введите число (например: 4500):")
			return
		}
		if weight < minWeightGrams || weight > maxWeightGrams {
			b.reply(chatID, fmt.Sprintf("Введите вес от %d до %d грамм!", minWeightGrams, maxWeightGrams))
			return
		}
		flow.ParamsWeight = weight
		flow.Step = StepParamsHeight
		b.steps.Put(chatID, flow)
		b.reply(chatID, "Теперь введите рост ребенка в сантиметрах (например: 58):")

	case StepParamsHeight:
		height, err := strconv.Atoi(input)
		if err != nil {
			b.reply(chatID, "Пожалуйста, введите целое число (например: 58):")
			return
		}
		if height < minHeightCM || height > maxHeightCM {
			b.reply(chatID, fmt.Sprintf("Введите рост от %d до %d см!", minHeightCM, maxHeightCM))
			return
		}

		child := b.childForMessage(msg, "params")
		if child == nil {
			b.steps.Clear(chatID)
			return
		}
		m, err := b.measurements.Add(child.ID, flow.ParamsWeight, height)
		if err != nil {
			b.fail("params", chatID, err)
			return
		}
		b.steps.Clear(chatID)

		text := "✅ Параметры сохранены!\n\n"
		text += fmt.Sprintf("👶 Ребенок: %s\n", child.FirstName)
		text += fmt.Sprintf("📅 Дата: %s\n", b.fmtDate(m.MeasuredOn))
		text += fmt.Sprintf("⚖️ Вес: %.0f г (+%.0f г с рождения)\n", m.Weight, m.Weight-child.BirthWeight)
		text += fmt.Sprintf("📏 Рост: %d см (+%d см с рождения)\n", m.Height, m.Height-child.BirthHeight)
		text += fmt.Sprintf("🎂 Возраст: %d дней\n\n", m.AgeDays)
		text += fmt.Sprintf("📋 Рекомендуемая частота измерений: %s", content.MeasurementFrequency(m.AgeDays))
		if advice := content.FormulaAdvice(m.AgeDays, m.Weight); advice != "" {
			text += "\n\n" + advice
		}
		b.replyMenu(chatID, text, backToMainKeyboard())
	}
}
