package bot

import (
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kennyonsig/FeedingMyBaby/services"
)

func (b *Bot) onNoteMenu(cq *tgbotapi.CallbackQuery) {
	child := b.childForCallback(cq, "note_menu")
	if child == nil {
		return
	}

	text := "📝 Журнал заметок\n\n"
	text += fmt.Sprintf("👶 Ребенок: %s\n", child.FirstName)
	text += fmt.Sprintf("📅 Дата: %s\n\n", b.fmtDate(b.now()))
	text += "Введите заметку (температура, настроение, особенности поведения, питание и т.д.):\n\n"
	text += "Для отмены нажмите ❌ Отмена"

	b.steps.Put(cq.Message.Chat.ID, Flow{Step: StepNoteText})
	b.edit(cq, text, cancelKeyboard())
	b.answer(cq.ID, "")
}

func (b *Bot) stepNote(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	child, err := b.children.ByChat(chatID)
	if err != nil {
		b.fail("save_note", chatID, err)
		return
	}
	if child == nil {
		b.reply(chatID, "Ребенок не найден!")
		b.steps.Clear(chatID)
		return
	}

	note, err := b.notes.Add(child.ID, msg.Text, "")
	if errors.Is(err, services.ErrEmptyNote) {
		b.reply(chatID, "Заметка не может быть пустой. Введите текст:")
		return
	}
	if err != nil {
		b.fail("save_note", chatID, err)
		return
	}

	recent, err := b.notes.Recent(child.ID, 3)
	if err != nil {
		b.fail("save_note", chatID, err)
		return
	}

	text := "✅ Заметка сохранена!\n\n"
	text += fmt.Sprintf("📝 Текст: %s...\n\n", truncateRunes(note.Text, 100))
	if len(recent) > 1 {
		text += "📋 Последние заметки:\n"
		for i, n := range recent {
			text += fmt.Sprintf("%d. %s: %s...\n",
				i+1, n.CreatedAt.In(b.loc).Format("02.01 15:04"), truncateRunes(n.Text, 50))
		}
	}

	b.reply(chatID, text)
	b.replyMenu(chatID, "🏠 Главное меню\nВыберите раздел:", mainMenuKeyboard())
	b.steps.Clear(chatID)
}

// truncateRunes cuts the text at n runes so multi-byte characters never
// get split.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
