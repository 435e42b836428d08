package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"pathfinders/internal/models/db_models"
	"pathfinders/internal/quiz"
	"pathfinders/internal/repositories"
	"pathfinders/pkg/utils"
)

// FunnelServiceInterface drives the quiz state machine. Every mutation
// persists before the resulting state is handed back, so a reload mid-flow
// never loses the latest answer.
type FunnelServiceInterface interface {
	State(ctx context.Context, profileID uuid.UUID) (quiz.State, error)
	SetAnswer(ctx context.Context, profileID uuid.UUID, value quiz.AnswerValue) (quiz.State, error)
	Next(ctx context.Context, profileID uuid.UUID) (quiz.State, error)
	Back(ctx context.Context, profileID uuid.UUID) (quiz.State, error)
	Reset(ctx context.Context, profileID uuid.UUID) error
	// CompletedAnswers returns the stored answers once the funnel has been
	// submitted; before that it fails with ErrQuizNotCompleted.
	CompletedAnswers(ctx context.Context, profileID uuid.UUID) (quiz.Answers, error)
}

type FunnelService struct {
	stateRepo repositories.QuizStateRepository
}

func NewFunnelService(stateRepo repositories.QuizStateRepository) FunnelServiceInterface {
	return &FunnelService{
		stateRepo: stateRepo,
	}
}

// load resolves the persisted state for an identity. A row tagged with a
// different identity, or one whose answers no longer decode, is discarded and
// the empty state returned; stored-state problems never surface to the user.
func (f *FunnelService) load(ctx context.Context, profileID uuid.UUID) quiz.State {
	row, err := f.stateRepo.Get(ctx, profileID)
	if err != nil {
		log.Printf("quiz state load failed for %s: %v", profileID, err)
		return quiz.EmptyState()
	}
	if row == nil {
		return quiz.EmptyState()
	}
	if row.IdentityTag != profileID.String() {
		f.discard(ctx, profileID)
		return quiz.EmptyState()
	}

	var answers quiz.Answers
	if len(row.Answers) > 0 {
		if err := json.Unmarshal(row.Answers, &answers); err != nil {
			f.discard(ctx, profileID)
			return quiz.EmptyState()
		}
	}
	if answers == nil {
		answers = quiz.Answers{}
	}

	step := row.Step
	if step < 0 {
		step = 0
	}
	if step >= quiz.TotalSteps {
		step = quiz.TotalSteps - 1
	}

	return quiz.State{
		Step:        step,
		Answers:     answers,
		CompletedAt: row.CompletedAt,
	}
}

func (f *FunnelService) discard(ctx context.Context, profileID uuid.UUID) {
	if err := f.stateRepo.Delete(ctx, profileID); err != nil {
		log.Printf("quiz state discard failed for %s: %v", profileID, err)
	}
}

// persist writes the state back. Persistence failures degrade to a no-op:
// losing quiz progress is not fatal, so the caller never sees the error.
func (f *FunnelService) persist(ctx context.Context, profileID uuid.UUID, state quiz.State) {
	raw, err := json.Marshal(state.Answers)
	if err != nil {
		log.Printf("quiz state encode failed for %s: %v", profileID, err)
		return
	}
	row := &db_models.QuizState{
		ProfileID:   profileID,
		IdentityTag: profileID.String(),
		Step:        state.Step,
		Answers:     datatypes.JSON(raw),
		CompletedAt: state.CompletedAt,
	}
	if err := f.stateRepo.Save(ctx, row); err != nil {
		log.Printf("quiz state save failed for %s: %v", profileID, err)
	}
}

func (f *FunnelService) State(ctx context.Context, profileID uuid.UUID) (quiz.State, error) {
	return f.load(ctx, profileID), nil
}

func (f *FunnelService) SetAnswer(ctx context.Context, profileID uuid.UUID, value quiz.AnswerValue) (quiz.State, error) {
	state := f.load(ctx, profileID)
	state.Answers[state.Step] = value
	f.persist(ctx, profileID, state)
	return state, nil
}

func (f *FunnelService) Next(ctx context.Context, profileID uuid.UUID) (quiz.State, error) {
	state := f.load(ctx, profileID)
	if !state.CanProceed() {
		return state, utils.ErrCannotProceed
	}
	if state.Step == quiz.TotalSteps-1 {
		now := time.Now().Unix()
		state.CompletedAt = &now
		f.persist(ctx, profileID, state)
		return state, nil
	}
	state.Step++
	f.persist(ctx, profileID, state)
	return state, nil
}

func (f *FunnelService) Back(ctx context.Context, profileID uuid.UUID) (quiz.State, error) {
	state := f.load(ctx, profileID)
	if state.Step == 0 {
		// Leaving the funnel from the first step is the client's navigation
		// concern; the state is untouched.
		return state, nil
	}
	state.Step--
	f.persist(ctx, profileID, state)
	return state, nil
}

func (f *FunnelService) Reset(ctx context.Context, profileID uuid.UUID) error {
	if err := f.stateRepo.Delete(ctx, profileID); err != nil {
		log.Printf("quiz state reset failed for %s: %v", profileID, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (f *FunnelService) CompletedAnswers(ctx context.Context, profileID uuid.UUID) (quiz.Answers, error) {
	state := f.load(ctx, profileID)
	if state.CompletedAt == nil {
		return nil, utils.ErrQuizNotCompleted
	}
	return state.Answers, nil
}
