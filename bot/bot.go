package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kennyonsig/FeedingMyBaby/metrics"
	"github.com/kennyonsig/FeedingMyBaby/models"
	"github.com/kennyonsig/FeedingMyBaby/services"
	"github.com/kennyonsig/FeedingMyBaby/utils"
)

const registerPrompt = "Сначала зарегистрируйте ребенка с помощью /register"

// Bot wires the Telegram transport to the services. Updates are handled
// one at a time by the caller, either the polling loop or the webhook
// endpoint.
type Bot struct {
	api          API
	children     *services.ChildService
	feedings     *services.FeedingService
	sleeps       *services.SleepService
	diapers      *services.DiaperService
	notes        *services.NoteService
	measurements *services.MeasurementService
	stats        *services.StatsService
	steps        *StepStore
	loc          *time.Location
	now          func() time.Time
	logger       *log.Logger

	// mu serializes update handling. The polling loop is serial by itself,
	// but webhook requests arrive concurrently.
	mu sync.Mutex
}

// Deps are the pieces a Bot is built from.
type Deps struct {
	API          API
	Children     *services.ChildService
	Feedings     *services.FeedingService
	Sleeps       *services.SleepService
	Diapers      *services.DiaperService
	Notes        *services.NoteService
	Measurements *services.MeasurementService
	Stats        *services.StatsService
	Location     *time.Location
	Logger       *log.Logger // optional
}

func New(d Deps) *Bot {
	logger := d.Logger
	if logger == nil {
		logger = log.New(log.Writer(), "[bot] ", log.LstdFlags)
	}
	return &Bot{
		api:          d.API,
		children:     d.Children,
		feedings:     d.Feedings,
		sleeps:       d.Sleeps,
		diapers:      d.Diapers,
		notes:        d.Notes,
		measurements: d.Measurements,
		stats:        d.Stats,
		steps:        NewStepStore(),
		loc:          d.Location,
		now:          time.Now,
		logger:       logger,
	}
}

// Run receives updates by long polling until the context is canceled. Any
// registered webhook is removed first: Telegram rejects polling while one
// is set.
func (b *Bot) Run(ctx context.Context) error {
	if _, err := b.api.Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: true}); err != nil {
		b.logger.Printf("delete webhook failed: %v", err)
	} else {
		b.logger.Printf("webhook removed, starting long polling")
	}

	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := b.api.GetUpdatesChan(cfg)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.HandleUpdate(update)
		}
	}
}

// RegisterWebhook points Telegram at the given endpoint URL. The secret
// lives in the URL path, so possession of the URL is the credential.
func (b *Bot) RegisterWebhook(webhookURL string) error {
	wh, err := tgbotapi.NewWebhook(webhookURL)
	if err != nil {
		return fmt.Errorf("building webhook config: %w", err)
	}
	wh.DropPendingUpdates = true
	if _, err := b.api.Request(wh); err != nil {
		return fmt.Errorf("registering webhook: %w", err)
	}
	b.logger.Printf("webhook registered")
	return nil
}

// HandleUpdate dispatches one update. Both intake paths call it.
func (b *Bot) HandleUpdate(update tgbotapi.Update) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch {
	case update.Message != nil:
		metrics.RecordUpdate("message")
		b.handleMessage(update.Message)
	case update.CallbackQuery != nil:
		metrics.RecordUpdate("callback")
		b.handleCallback(update.CallbackQuery)
	default:
		metrics.RecordUpdate("other")
	}
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	if msg.IsCommand() {
		b.handleCommand(msg)
		return
	}

	flow := b.steps.Current(msg.Chat.ID)
	if flow.Step == StepNone {
		// plain text outside an input flow is ignored
		return
	}
	b.handleStepInput(msg, flow)
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.cmdStart(msg)
	case "menu":
		b.cmdMenu(msg)
	case "help":
		b.cmdHelp(msg)
	case "register":
		b.cmdRegister(msg)
	case "child_info":
		b.cmdChildInfo(msg)
	case "params":
		b.cmdParams(msg)
	case "stats":
		b.cmdStats(msg)
	case "feeding":
		b.cmdFeeding(msg)
	case "add_eaten":
		b.cmdAddEaten(msg)
	case "finish":
		b.cmdFinish(msg)
	case "reset_feeding":
		b.cmdResetFeeding(msg)
	case "cancel":
		b.cmdCancel(msg)
	default:
		b.reply(msg.Chat.ID, "Неизвестная команда. Используйте /help для списка команд.")
	}
}

func (b *Bot) handleCallback(cq *tgbotapi.CallbackQuery) {
	if cq.Message == nil {
		b.answer(cq.ID, "")
		return
	}

	switch cq.Data {
	case cbMainMenu:
		b.onMainMenu(cq)
	case cbChildInfo:
		b.onChildInfo(cq)
	case cbUpdateParams:
		b.onUpdateParams(cq)
	case cbShowStats:
		b.onShowStats(cq)
	case cbResetFeeding:
		b.onResetFeeding(cq)
	case cbCancelState:
		b.onCancelState(cq)
	case cbStartFeeding:
		b.onStartFeeding(cq)
	case cbAddCustom:
		b.onAddCustom(cq)
	case cbFinishFeeding:
		b.onFinishFeeding(cq)
	case cbCancelFeeding:
		b.onCancelFeeding(cq)
	case cbSleepMenu:
		b.onSleepMenu(cq)
	case cbStartSleep:
		b.onStartSleep(cq)
	case cbEndSleep:
		b.onEndSleep(cq)
	case cbSleepStats:
		b.onSleepStats(cq)
	case cbWakeMenu:
		b.onWakeMenu(cq)
	case cbStartWake:
		b.onStartWake(cq)
	case cbEndWake:
		b.onEndWake(cq)
	case cbWakeStats:
		b.onWakeStats(cq)
	case cbDiaperMenu:
		b.onDiaperMenu(cq)
	case cbDiaperUrine:
		b.onDiaper(cq, models.DiaperWet)
	case cbDiaperPoop:
		b.onDiaper(cq, models.DiaperStool)
	case cbDiaperBoth:
		b.onDiaper(cq, models.DiaperBoth)
	case cbDiaperStats:
		b.onDiaperStats(cq)
	case cbNoteMenu:
		b.onNoteMenu(cq)
	case cbGenderM:
		b.onGender(cq, "m")
	case cbGenderF:
		b.onGender(cq, "f")
	case cbDevelopmentTips:
		b.onDevelopmentTips(cq)
	case cbVaccinationInfo:
		b.onVaccinationInfo(cq)
	case cbMedicationDose:
		b.onMedicationDose(cq)
	default:
		if ml, ok := parseQuickAdd(cq.Data); ok {
			b.onQuickAdd(cq, ml)
			return
		}
		if placeholderCallbacks[cq.Data] {
			b.alert(cq.ID, "Эта функция скоро будет доступна! ⏳")
			return
		}
		b.answer(cq.ID, "")
	}
}

func (b *Bot) handleStepInput(msg *tgbotapi.Message, flow Flow) {
	switch flow.Step {
	case StepRegisterFirstName, StepRegisterLastName, StepRegisterGender,
		StepRegisterBirthDate, StepRegisterGestationWeeks, StepRegisterGestationDays,
		StepRegisterBirthWeight, StepRegisterBirthHeight:
		b.stepRegister(msg, flow)
	case StepParamsWeight, StepParamsHeight:
		b.stepParams(msg, flow)
	case StepNoteText:
		b.stepNote(msg)
	case StepCustomAmount:
		b.stepCustomAmount(msg)
	case StepDoseWeight:
		b.stepDoseWeight(msg)
	}
}

// parseQuickAdd extracts the volume from quick-add callback data like
// "add_50". Non-numeric suffixes ("add_custom") do not match.
func parseQuickAdd(data string) (int, bool) {
	rest, ok := strings.CutPrefix(data, addPrefix)
	if !ok {
		return 0, false
	}
	ml, err := strconv.Atoi(rest)
	if err != nil || ml <= 0 {
		return 0, false
	}
	return ml, true
}

// SendReminder implements services.Notifier.
func (b *Bot) SendReminder(chatID int64, text string) error {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return err
	}
	metrics.RecordReminderSent()
	return nil
}

// --- sending helpers ---

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.logger.Printf("send to %d failed: %v", chatID, err)
	}
}

func (b *Bot) replyMenu(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Printf("send to %d failed: %v", chatID, err)
	}
}

// edit replaces the callback's message in place. Messages without text
// (media) cannot be edited, those get a fresh message instead.
func (b *Bot) edit(cq *tgbotapi.CallbackQuery, text string, kb tgbotapi.InlineKeyboardMarkup) {
	chatID := cq.Message.Chat.ID
	if cq.Message.Text == "" {
		b.replyMenu(chatID, text, kb)
		return
	}
	msg := tgbotapi.NewEditMessageTextAndMarkup(chatID, cq.Message.MessageID, text, kb)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Printf("edit in %d failed: %v", chatID, err)
	}
}

func (b *Bot) answer(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		b.logger.Printf("answer callback failed: %v", err)
	}
}

func (b *Bot) alert(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallbackWithAlert(callbackID, text)); err != nil {
		b.logger.Printf("answer callback failed: %v", err)
	}
}

// fail logs a handler error and tells the user something went wrong.
func (b *Bot) fail(handler string, chatID int64, err error) {
	b.logger.Printf("%s: %v", handler, err)
	metrics.RecordHandlerError(handler)
	b.reply(chatID, "⚠️ Произошла ошибка, попробуйте еще раз позже.")
}

// --- child lookup helpers ---

// childForMessage loads the chat's child, replying with the registration
// prompt when there is none.
func (b *Bot) childForMessage(msg *tgbotapi.Message, handler string) *models.Child {
	child, err := b.children.ByChat(msg.Chat.ID)
	if err != nil {
		b.fail(handler, msg.Chat.ID, err)
		return nil
	}
	if child == nil {
		b.reply(msg.Chat.ID, registerPrompt)
		return nil
	}
	return child
}

// childForCallback loads the chat's child, answering the callback with a
// registration alert when there is none.
func (b *Bot) childForCallback(cq *tgbotapi.CallbackQuery, handler string) *models.Child {
	chatID := cq.Message.Chat.ID
	child, err := b.children.ByChat(chatID)
	if err != nil {
		b.answer(cq.ID, "")
		b.fail(handler, chatID, err)
		return nil
	}
	if child == nil {
		b.alert(cq.ID, registerPrompt)
		return nil
	}
	return child
}

// --- formatting helpers ---

func (b *Bot) fmtDate(t time.Time) string {
	return t.In(b.loc).Format("02.01.2006")
}

func (b *Bot) fmtTime(t time.Time) string {
	return t.In(b.loc).Format("15:04")
}

func (b *Bot) ageOf(child *models.Child) utils.Age {
	return utils.CalculateAge(child.BirthDate, b.now().In(b.loc))
}

func (b *Bot) ageDaysOf(child *models.Child) int {
	return utils.AgeInDays(child.BirthDate, b.now().In(b.loc))
}

func (b *Bot) mainMenuText(chatID int64) string {
	text := "🏠 Главное меню\n\n"
	child, err := b.children.ByChat(chatID)
	if err == nil && child != nil {
		text += fmt.Sprintf("👶 Ребенок: %s\n📅 Возраст: %s\n\n", child.FullName(), b.ageOf(child))
	}
	return text + "Выберите раздел:"
}
