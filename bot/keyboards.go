package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Callback data values. Keyboard buttons and the dispatch switch share
// these.
const (
	cbMainMenu     = "main_menu"
	cbChildInfo    = "child_info"
	cbUpdateParams = "update_params"
	cbShowStats    = "show_stats"
	cbResetFeeding = "reset_active_feeding"
	cbCancelState  = "cancel_state"

	cbStartFeeding  = "start_feeding"
	cbAddCustom     = "add_custom"
	cbFinishFeeding = "finish_feeding"
	cbCancelFeeding = "cancel_feeding"
	addPrefix       = "add_"

	cbSleepMenu  = "sleep_menu"
	cbStartSleep = "start_sleep"
	cbEndSleep   = "end_sleep"
	cbSleepStats = "sleep_stats"
	cbWakeMenu   = "wake_menu"
	cbStartWake  = "start_wake"
	cbEndWake    = "end_wake"
	cbWakeStats  = "wake_stats"

	cbDiaperMenu  = "diaper_menu"
	cbDiaperUrine = "diaper_urine"
	cbDiaperPoop  = "diaper_poop"
	cbDiaperBoth  = "diaper_both"
	cbDiaperStats = "diaper_stats"

	cbNoteMenu = "note_menu"

	cbGenderM = "gender_m"
	cbGenderF = "gender_f"

	cbDevelopmentTips = "development_tips"
	cbVaccinationInfo = "vaccination_info"
	cbMedicationDose  = "medication_dose"
)

// placeholderCallbacks are menu entries that never got an implementation.
// They answer with a "coming soon" alert.
var placeholderCallbacks = map[string]bool{
	"temp_tracking":  true,
	"doctor_visit":   true,
	"medical_record": true,
	"general_stats":  true,
	"feeding_stats":  true,
	"weight_chart":   true,
	"height_chart":   true,
	"monthly_report": true,
	"daily_report":   true,
	"sleep_history":  true,
}

func mainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👶 Инфо о ребенке", cbChildInfo),
			tgbotapi.NewInlineKeyboardButtonData("📊 Параметры", cbUpdateParams),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🍼 Кормление", cbStartFeeding),
			tgbotapi.NewInlineKeyboardButtonData("💤 Сон", cbSleepMenu),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🩲 Подгузник", cbDiaperMenu),
			tgbotapi.NewInlineKeyboardButtonData("📝 Заметка", cbNoteMenu),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📈 Статистика", cbShowStats),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📚 Советы", cbDevelopmentTips),
			tgbotapi.NewInlineKeyboardButtonData("💉 Прививки", cbVaccinationInfo),
			tgbotapi.NewInlineKeyboardButtonData("💊 Дозировки", cbMedicationDose),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Сбросить активное кормление", cbResetFeeding),
		),
	)
}

func feedingControlKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ 5 мл", addPrefix+"5"),
			tgbotapi.NewInlineKeyboardButtonData("➕ 10 мл", addPrefix+"10"),
			tgbotapi.NewInlineKeyboardButtonData("➕ 20 мл", addPrefix+"20"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ 30 мл", addPrefix+"30"),
			tgbotapi.NewInlineKeyboardButtonData("➕ 50 мл", addPrefix+"50"),
			tgbotapi.NewInlineKeyboardButtonData("➕ 100 мл", addPrefix+"100"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📝 Ввести своё количество", cbAddCustom),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Завершить", cbFinishFeeding),
			tgbotapi.NewInlineKeyboardButtonData("❌ Отменить", cbCancelFeeding),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 В главное меню", cbMainMenu),
		),
	)
}

func sleepMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🛏️ Начало сна", cbStartSleep),
			tgbotapi.NewInlineKeyboardButtonData("🌅 Конец сна", cbEndSleep),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Статистика сна", cbSleepStats),
			tgbotapi.NewInlineKeyboardButtonData("🌞 Бодрствование", cbWakeMenu),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 В главное меню", cbMainMenu),
		),
	)
}

func wakeMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🌞 Начало бодрствования", cbStartWake),
			tgbotapi.NewInlineKeyboardButtonData("🌜 Конец бодрствования", cbEndWake),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Статистика бодрствования", cbWakeStats),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 В главное меню", cbMainMenu),
		),
	)
}

func diaperMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💦 Мочеиспускание", cbDiaperUrine),
			tgbotapi.NewInlineKeyboardButtonData("💩 Стул", cbDiaperPoop),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💦💩 Оба", cbDiaperBoth),
			tgbotapi.NewInlineKeyboardButtonData("📊 Статистика", cbDiaperStats),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 В главное меню", cbMainMenu),
		),
	)
}

func genderKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👦 Мальчик", cbGenderM),
			tgbotapi.NewInlineKeyboardButtonData("👧 Девочка", cbGenderF),
		),
	)
}

func cancelKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Отмена", cbCancelState),
		),
	)
}

func backToMainKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏠 В главное меню", cbMainMenu),
		),
	)
}
