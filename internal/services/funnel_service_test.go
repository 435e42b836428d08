package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"pathfinders/internal/models/db_models"
	"pathfinders/internal/quiz"
	"pathfinders/pkg/utils"
)

type fakeQuizStateRepo struct {
	rows  map[uuid.UUID]*db_models.QuizState
	saves int
}

func newFakeQuizStateRepo() *fakeQuizStateRepo {
	return &fakeQuizStateRepo{rows: make(map[uuid.UUID]*db_models.QuizState)}
}

func (f *fakeQuizStateRepo) Get(_ context.Context, profileID uuid.UUID) (*db_models.QuizState, error) {
	row, ok := f.rows[profileID]
	if !ok {
		return nil, nil
	}
	copied := *row
	return &copied, nil
}

func (f *fakeQuizStateRepo) Save(_ context.Context, state *db_models.QuizState) error {
	f.saves++
	copied := *state
	f.rows[state.ProfileID] = &copied
	return nil
}

func (f *fakeQuizStateRepo) Delete(_ context.Context, profileID uuid.UUID) error {
	delete(f.rows, profileID)
	return nil
}

func validAnswers() []quiz.AnswerValue {
	return []quiz.AnswerValue{
		quiz.Answer("debug_debugger"),
		quiz.Answer("stuck_docs_first"),
		quiz.Answer("codebase_trace_flow"),
		quiz.AnswerList("habit_tests", "habit_code_review"),
		quiz.Answer("feedback_ask_why"),
		quiz.Answer("Become a backend lead"),
	}
}

func TestFunnelRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newFakeQuizStateRepo()
	svc := NewFunnelService(repo)
	userID := uuid.New()

	state, err := svc.State(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, quiz.EmptyState(), state)

	for i, answer := range validAnswers() {
		state, err = svc.SetAnswer(ctx, userID, answer)
		require.NoError(t, err)
		require.Equal(t, i, state.Step)

		state, err = svc.Next(ctx, userID)
		require.NoError(t, err)
	}

	require.NotNil(t, state.CompletedAt)
	require.Equal(t, quiz.TotalSteps-1, state.Step)

	answers, err := svc.CompletedAnswers(ctx, userID)
	require.NoError(t, err)
	require.Len(t, answers, quiz.TotalSteps)

	// State survives a "reload".
	reloaded, err := svc.State(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, state.Answers, reloaded.Answers)
	require.Equal(t, state.CompletedAt, reloaded.CompletedAt)
}

func TestFunnelNextBlockedWithoutAnswer(t *testing.T) {
	ctx := context.Background()
	svc := NewFunnelService(newFakeQuizStateRepo())
	userID := uuid.New()

	_, err := svc.Next(ctx, userID)
	require.ErrorIs(t, err, utils.ErrCannotProceed)

	// An invalid option blocks too.
	_, err = svc.SetAnswer(ctx, userID, quiz.Answer("not_an_option"))
	require.NoError(t, err)
	_, err = svc.Next(ctx, userID)
	require.ErrorIs(t, err, utils.ErrCannotProceed)
}

func TestFunnelBack(t *testing.T) {
	ctx := context.Background()
	svc := NewFunnelService(newFakeQuizStateRepo())
	userID := uuid.New()

	// Back on the first step leaves the state untouched.
	state, err := svc.Back(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 0, state.Step)

	_, err = svc.SetAnswer(ctx, userID, quiz.Answer("debug_console"))
	require.NoError(t, err)
	state, err = svc.Next(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 1, state.Step)

	state, err = svc.Back(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 0, state.Step)
	// The answer from before is still there.
	require.Equal(t, quiz.Answer("debug_console"), state.Answers[0])
}

func TestFunnelSetAnswerPersistsImmediately(t *testing.T) {
	ctx := context.Background()
	repo := newFakeQuizStateRepo()
	svc := NewFunnelService(repo)
	userID := uuid.New()

	before := repo.saves
	_, err := svc.SetAnswer(ctx, userID, quiz.Answer("debug_console"))
	require.NoError(t, err)
	require.Equal(t, before+1, repo.saves)
}

func TestFunnelDiscardsForeignIdentityState(t *testing.T) {
	ctx := context.Background()
	repo := newFakeQuizStateRepo()
	svc := NewFunnelService(repo)
	userID := uuid.New()

	// A row tagged with a different identity must be discarded, not resumed.
	repo.rows[userID] = &db_models.QuizState{
		ProfileID:   userID,
		IdentityTag: uuid.New().String(),
		Step:        3,
		Answers:     datatypes.JSON(`{"0":"debug_console"}`),
	}

	state, err := svc.State(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, quiz.EmptyState(), state)
	require.NotContains(t, repo.rows, userID)
}

func TestFunnelTreatsMalformedAnswersAsAbsent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeQuizStateRepo()
	svc := NewFunnelService(repo)
	userID := uuid.New()

	repo.rows[userID] = &db_models.QuizState{
		ProfileID:   userID,
		IdentityTag: userID.String(),
		Step:        2,
		Answers:     datatypes.JSON(`{"0":{"bad":"shape"}`),
	}

	state, err := svc.State(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, quiz.EmptyState(), state)
}

func TestFunnelResetClearsState(t *testing.T) {
	ctx := context.Background()
	repo := newFakeQuizStateRepo()
	svc := NewFunnelService(repo)
	userID := uuid.New()

	_, err := svc.SetAnswer(ctx, userID, quiz.Answer("debug_console"))
	require.NoError(t, err)
	require.NoError(t, svc.Reset(ctx, userID))

	state, err := svc.State(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, quiz.EmptyState(), state)
}

func TestCompletedAnswersRequiresCompletion(t *testing.T) {
	ctx := context.Background()
	svc := NewFunnelService(newFakeQuizStateRepo())
	userID := uuid.New()

	_, err := svc.CompletedAnswers(ctx, userID)
	require.ErrorIs(t, err, utils.ErrQuizNotCompleted)
}
