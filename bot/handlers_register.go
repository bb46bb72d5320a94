package bot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Registration input bounds.
const (
	minGestationWeeks = 20
	maxGestationWeeks = 45
	maxGestationDays  = 6
	minBirthWeight    = 500
	maxBirthWeight    = 7000
	minBirthHeight    = 25
	maxBirthHeight    = 65
	maxChildAgeYears  = 3
)

func (b *Bot) cmdRegister(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	text := "👶 Регистрация ребенка\n\n"
	child, err := b.children.ByChat(chatID)
	if err != nil {
		b.fail("register", chatID, err)
		return
	}
	if child != nil {
		text = "⚠️ Ребенок уже зарегистрирован. Новые данные заменят текущие.\n\n"
	}
	text += "Введите имя ребенка:"

	b.steps.Put(chatID, Flow{Step: StepRegisterFirstName})
	b.replyMenu(chatID, text, cancelKeyboard())
}

func (b *Bot) stepRegister(msg *tgbotapi.Message, flow Flow) {
	chatID := msg.Chat.ID
	input := strings.TrimSpace(msg.Text)

	switch flow.Step {
	case StepRegisterFirstName:
		if input == "" {
			b.reply(chatID, "Имя не может быть пустым. Введите имя ребенка:")
			return
		}
		flow.Registration.FirstName = input
		flow.Step = StepRegisterLastName
		b.steps.Put(chatID, flow)
		b.reply(chatID, "Введите фамилию ребенка (или '-' чтобы пропустить):")

	case StepRegisterLastName:
		if input != "-" {
			flow.Registration.LastName = input
		}
		flow.Step = StepRegisterGender
		b.steps.Put(chatID, flow)
		b.replyMenu(chatID, "Выберите пол ребенка:", genderKeyboard())

	case StepRegisterGender:
		// gender comes in via the inline keyboard
		b.replyMenu(chatID, "Пожалуйста, выберите пол кнопкой ниже:", genderKeyboard())

	case StepRegisterBirthDate:
		birthDate, err := b.parseBirthDate(input)
		if err != nil {
			b.reply(chatID, "Не понял дату. Введите в формате ДД.ММ.ГГГГ (например: 15.03.2024):")
			return
		}
		now := b.now().In(b.loc)
		if birthDate.After(now) {
			b.reply(chatID, "Дата рождения не может быть в будущем!")
			return
		}
		if birthDate.Before(now.AddDate(-maxChildAgeYears, 0, 0)) {
			b.reply(chatID, fmt.Sprintf("Проверьте дату: бот рассчитан на детей до %d лет.", maxChildAgeYears))
			return
		}
		flow.Registration.BirthDate = birthDate
		flow.Step = StepRegisterGestationWeeks
		b.steps.Put(chatID, flow)
		b.reply(chatID, fmt.Sprintf("Введите срок беременности в неделях (%d-%d):", minGestationWeeks, maxGestationWeeks))

	case StepRegisterGestationWeeks:
		weeks, err := strconv.Atoi(input)
		if err != nil || weeks < minGestationWeeks || weeks > maxGestationWeeks {
			b.reply(chatID, fmt.Sprintf("Введите число от %d до %d!", minGestationWeeks, maxGestationWeeks))
			return
		}
		flow.Registration.GestationWeeks = weeks
		flow.Step = StepRegisterGestationDays
		b.steps.Put(chatID, flow)
		b.reply(chatID, fmt.Sprintf("Введите дополнительные дни срока (0-%d):", maxGestationDays))

	case StepRegisterGestationDays:
		days, err := strconv.Atoi(input)
		if err != nil || days < 0 || days > maxGestationDays {
			b.reply(chatID, fmt.Sprintf("Введите число от 0 до %d!", maxGestationDays))
			return
		}
		flow.Registration.GestationDays = days
		flow.Step = StepRegisterBirthWeight
		b.steps.Put(chatID, flow)
		b.reply(chatID, "Введите вес при рождении в граммах (например: 3300):")

	case StepRegisterBirthWeight:
		weight, err := strconv.ParseFloat(strings.ReplaceAll(input, ",", "."), 64)
		if err != nil {
			b.reply(chatID, "Пожалуйста, введите число (например: 3300):")
			return
		}
		if weight < minBirthWeight || weight > maxBirthWeight {
			b.reply(chatID, fmt.Sprintf("Введите вес от %d до %d грамм!", minBirthWeight, maxBirthWeight))
			return
		}
		flow.Registration.BirthWeight = weight
		flow.Step = StepRegisterBirthHeight
		b.steps.Put(chatID, flow)
		b.reply(chatID, "Введите рост при рождении в сантиметрах (например: 51):")

	case StepRegisterBirthHeight:
		height, err := strconv.Atoi(input)
		if err != nil {
			b.reply(chatID, "Пожалуйста, введите целое число (например: 51):")
			return
		}
		if height < minBirthHeight || height > maxBirthHeight {
			b.reply(chatID, fmt.Sprintf("Введите рост от %d до %d см!", minBirthHeight, maxBirthHeight))
			return
		}
		flow.Registration.BirthHeight = height

		child, err := b.children.Register(chatID, flow.Registration)
		if err != nil {
			b.fail("register", chatID, err)
			return
		}
		b.steps.Clear(chatID)

		text := "✅ Ребенок зарегистрирован!\n\n"
		text += fmt.Sprintf("👶 Ребенок: %s\n", child.FullName())
		text += fmt.Sprintf("🚻 Пол: %s\n", child.GenderLabel())
		text += fmt.Sprintf("📅 Дата рождения: %s\n", b.fmtDate(child.BirthDate))
		text += fmt.Sprintf("🤰 Срок беременности: %d нед. %d дн.\n", child.GestationWeeks, child.GestationDays)
		text += fmt.Sprintf("⚖️ Вес при рождении: %.0f г\n", child.BirthWeight)
		text += fmt.Sprintf("📏 Рост при рождении: %d см\n\n", child.BirthHeight)
		text += "🔔 Напоминания об измерениях настроены.\n"
		text += "Используйте кнопку '📊 Параметры' для внесения данных."
		b.reply(chatID, text)
		b.replyMenu(chatID, "🏠 Главное меню\nВыберите раздел:", mainMenuKeyboard())
	}
}

// onGender accepts the gender keyboard press during registration. Stale
// presses outside the flow are acknowledged and ignored.
func (b *Bot) onGender(cq *tgbotapi.CallbackQuery, gender string) {
	chatID := cq.Message.Chat.ID
	flow := b.steps.Current(chatID)
	if flow.Step != StepRegisterGender {
		b.answer(cq.ID, "")
		return
	}

	flow.Registration.Gender = gender
	flow.Step = StepRegisterBirthDate
	b.steps.Put(chatID, flow)

	label := "👦 Мальчик"
	if gender == "f" {
		label = "👧 Девочка"
	}
	b.edit(cq,
		fmt.Sprintf("Пол: %s\n\nВведите дату рождения в формате ДД.ММ.ГГГГ (например: 15.03.2024):", label),
		cancelKeyboard())
	b.answer(cq.ID, "")
}

// parseBirthDate accepts DD.MM.YYYY and YYYY-MM-DD in the bot's location.
func (b *Bot) parseBirthDate(s string) (time.Time, error) {
	for _, layout := range []string{"02.01.2006", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, b.loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
