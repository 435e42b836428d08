package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"pathfinders/internal/models/db_models"
)

type fakeTransactionRepo struct {
	byProviderTxnID map[string]*db_models.Transaction
	markPaidCalls   int
	markFailedCalls int
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{byProviderTxnID: make(map[string]*db_models.Transaction)}
}

func (f *fakeTransactionRepo) Insert(_ context.Context, txn *db_models.Transaction) error {
	f.byProviderTxnID[txn.ProviderTxnID] = txn
	return nil
}

func (f *fakeTransactionRepo) FindByProviderTxnID(_ context.Context, providerTxnID string) (*db_models.Transaction, error) {
	return f.byProviderTxnID[providerTxnID], nil
}

func (f *fakeTransactionRepo) MarkPaid(_ context.Context, txn *db_models.Transaction) error {
	f.markPaidCalls++
	txn.Status = db_models.TxnStatusPaid
	return nil
}

func (f *fakeTransactionRepo) MarkFailed(_ context.Context, txn *db_models.Transaction) error {
	f.markFailedCalls++
	txn.Status = db_models.TxnStatusFailed
	return nil
}

type fakePlanRepo struct {
	plans []db_models.Plan
}

func (f *fakePlanRepo) FindActiveByCode(_ context.Context, code string) (*db_models.Plan, error) {
	for i := range f.plans {
		if f.plans[i].Code == code && f.plans[i].IsActive {
			return &f.plans[i], nil
		}
	}
	return nil, nil
}

func (f *fakePlanRepo) ListActive(_ context.Context) ([]db_models.Plan, error) {
	active := make([]db_models.Plan, 0, len(f.plans))
	for _, p := range f.plans {
		if p.IsActive {
			active = append(active, p)
		}
	}
	return active, nil
}

func newPaymentFixture() (*paymentService, *fakeTransactionRepo, *fakeProfileRepo, *fakeMailService) {
	txns := newFakeTransactionRepo()
	profiles := newFakeProfileRepo()
	mail := &fakeMailService{}
	svc := &paymentService{
		cfg:         StripeConfig{ProviderName: "stripe", SuccessURL: "https://app.example.com/offer"},
		txnRepo:     txns,
		profileRepo: profiles,
		mailService: mail,
	}
	return svc, txns, profiles, mail
}

func pendingCheckout(t *testing.T, txns *fakeTransactionRepo, profiles *fakeProfileRepo, sessionID string) *db_models.Profile {
	t.Helper()
	ctx := context.Background()

	profile := &db_models.Profile{Email: "buyer@example.com", Role: "user"}
	require.NoError(t, profiles.Insert(ctx, profile))
	require.NoError(t, txns.Insert(ctx, &db_models.Transaction{
		ProfileID:     profile.ID,
		Status:        db_models.TxnStatusPending,
		Provider:      "stripe",
		ProviderTxnID: providerTxnID(sessionID),
	}))
	return profile
}

func TestSettleIsIdempotent(t *testing.T) {
	svc, txns, profiles, mail := newPaymentFixture()
	ctx := context.Background()
	profile := pendingCheckout(t, txns, profiles, "cs_test_1")

	// Webhook delivery.
	require.NoError(t, svc.settle(ctx, "cs_test_1", profile.ID.String()))
	require.Equal(t, 1, txns.markPaidCalls)
	require.Equal(t, 1, mail.sends)
	require.True(t, profiles.byEmail["buyer@example.com"].IsPremium)

	// Webhook retry and the verify redirect racing it: entitlement stays, but
	// the transaction is not re-marked and the confirmation is not re-sent.
	require.NoError(t, svc.settle(ctx, "cs_test_1", profile.ID.String()))
	require.NoError(t, svc.settle(ctx, "cs_test_1", profile.ID.String()))
	require.Equal(t, 1, txns.markPaidCalls)
	require.Equal(t, 1, mail.sends)
	require.True(t, profiles.byEmail["buyer@example.com"].IsPremium)
}

func TestSettleAcksUnknownSession(t *testing.T) {
	svc, txns, _, mail := newPaymentFixture()

	require.NoError(t, svc.settle(context.Background(), "cs_unknown", uuid.New().String()))
	require.Zero(t, txns.markPaidCalls)
	require.Zero(t, mail.sends)
}

func TestFailPendingClosesOnlyPendingTransactions(t *testing.T) {
	svc, txns, profiles, _ := newPaymentFixture()
	ctx := context.Background()
	profile := pendingCheckout(t, txns, profiles, "cs_test_2")

	svc.failPending(ctx, "cs_test_2")
	require.Equal(t, 1, txns.markFailedCalls)
	require.Equal(t, db_models.TxnStatusFailed, txns.byProviderTxnID[providerTxnID("cs_test_2")].Status)

	// A paid transaction is never downgraded.
	require.NoError(t, txns.Insert(ctx, &db_models.Transaction{
		ProfileID:     profile.ID,
		Status:        db_models.TxnStatusPending,
		Provider:      "stripe",
		ProviderTxnID: providerTxnID("cs_test_3"),
	}))
	require.NoError(t, svc.settle(ctx, "cs_test_3", profile.ID.String()))
	svc.failPending(ctx, "cs_test_3")
	require.Equal(t, 1, txns.markFailedCalls)
	require.Equal(t, db_models.TxnStatusPaid, txns.byProviderTxnID[providerTxnID("cs_test_3")].Status)
}

func TestListPlansReturnsActiveOffers(t *testing.T) {
	desc := "Everything, forever"
	svc := &paymentService{planRepo: &fakePlanRepo{plans: []db_models.Plan{
		{Code: "starter", Name: "Starter", PriceMinor: 499, Currency: "usd", IsActive: true},
		{Code: "lifetime", Name: "Lifetime", Description: &desc, PriceMinor: 1999, Currency: "usd", IsActive: true},
		{Code: "legacy", Name: "Legacy", PriceMinor: 99, Currency: "usd", IsActive: false},
	}}}

	plans, err := svc.ListPlans(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 2)
	require.Equal(t, "starter", plans[0].Code)
	require.Equal(t, int64(499), plans[0].PriceMinor)
	require.Equal(t, "Everything, forever", plans[1].Description)
}
