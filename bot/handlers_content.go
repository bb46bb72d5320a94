package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kennyonsig/FeedingMyBaby/content"
	"github.com/kennyonsig/FeedingMyBaby/utils"
)

func (b *Bot) onDevelopmentTips(cq *tgbotapi.CallbackQuery) {
	child := b.childForCallback(cq, "development_tips")
	if child == nil {
		return
	}

	months := utils.AgeInMonths(child.BirthDate, b.now().In(b.loc))
	b.edit(cq, content.RenderDevelopmentTip(months), backToMainKeyboard())
	b.answer(cq.ID, "")
}

func (b *Bot) onVaccinationInfo(cq *tgbotapi.CallbackQuery) {
	child := b.childForCallback(cq, "vaccination_info")
	if child == nil {
		return
	}

	b.edit(cq, content.RenderVaccinationSchedule(b.ageDaysOf(child)), backToMainKeyboard())
	b.answer(cq.ID, "")
}

// onMedicationDose asks for the weight, preferring the last measurement as
// a default when one exists.
func (b *Bot) onMedicationDose(cq *tgbotapi.CallbackQuery) {
	child := b.childForCallback(cq, "medication_dose")
	if child == nil {
		return
	}

	chatID := cq.Message.Chat.ID
	text := "💊 Расчет дозировки жаропонижающих\n\n"
	text += fmt.Sprintf("👶 Ребенок: %s\n\n", child.FirstName)

	last, err := b.measurements.Last(child.ID)
	if err != nil {
		b.answer(cq.ID, "")
		b.fail("medication_dose", chatID, err)
		return
	}
	if last != nil {
		text += fmt.Sprintf("Последний известный вес: %.0f г\n\n", last.Weight)
	}
	text += "Введите текущий вес ребенка в граммах (например: 5500):\n\n"
	text += "Для отмены нажмите ❌ Отмена"

	b.steps.Put(chatID, Flow{Step: StepDoseWeight})
	b.edit(cq, text, cancelKeyboard())
	b.answer(cq.ID, "")
}

func (b *Bot) stepDoseWeight(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	weight, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(msg.Text), ",", "."), 64)
	if err != nil {
		b.reply(chatID, "Пожалуйста, введите число (например: 5500):")
		return
	}
	if weight < minWeightGrams || weight > maxWeightGrams {
		b.reply(chatID, fmt.Sprintf("Введите вес от %d до %d грамм!", minWeightGrams, maxWeightGrams))
		return
	}

	child := b.childForMessage(msg, "medication_dose")
	if child == nil {
		b.steps.Clear(chatID)
		return
	}
	b.steps.Clear(chatID)
	b.replyMenu(chatID, content.RenderAntipyreticDoses(b.ageDaysOf(child), weight), backToMainKeyboard())
}
