package bot

import (
	"sync"

	"github.com/kennyonsig/FeedingMyBaby/services"
)

// Step is one state of a multi-message input flow.
type Step int

const (
	StepNone Step = iota

	// registration wizard
	StepRegisterFirstName
	StepRegisterLastName
	StepRegisterGender
	StepRegisterBirthDate
	StepRegisterGestationWeeks
	StepRegisterGestationDays
	StepRegisterBirthWeight
	StepRegisterBirthHeight

	// parameter update
	StepParamsWeight
	StepParamsHeight

	StepNoteText
	StepCustomAmount
	StepDoseWeight
)

// Flow is the per-chat input state: the current step plus everything the
// flow has collected so far.
type Flow struct {
	Step         Step
	Registration services.RegistrationInput
	ParamsWeight float64
}

// StepStore keeps the active flow per chat. A chat has at most one flow.
type StepStore struct {
	mu    sync.Mutex
	flows map[int64]Flow
}

func NewStepStore() *StepStore {
	return &StepStore{flows: make(map[int64]Flow)}
}

// Current returns the chat's flow; the zero Flow means no input is
// expected.
func (s *StepStore) Current(chatID int64) Flow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flows[chatID]
}

// Put replaces the chat's flow.
func (s *StepStore) Put(chatID int64, f Flow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.Step == StepNone {
		delete(s.flows, chatID)
		return
	}
	s.flows[chatID] = f
}

// Clear drops the chat's flow.
func (s *StepStore) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.flows, chatID)
}
