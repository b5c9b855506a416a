package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/propscope/underwriter/gen/ent"
	entprofile "github.com/propscope/underwriter/gen/ent/profile"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Profile, error)
	GetOrCreateByEmail(ctx context.Context, email, name string) (*ent.Profile, error)
	CreditBalance(ctx context.Context, id uuid.UUID) (int, error)
	// DecrementCredits is the billing compare-and-swap: the decrement applies
	// only if the row's balance still equals observed. False means a lost race.
	DecrementCredits(ctx context.Context, id uuid.UUID, observed int) (bool, error)
	AddCredits(ctx context.Context, id uuid.UUID, amount int) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type profileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewProfileRepository(entc *ent.Client, logger *slog.Logger) ProfileRepository {
	return &profileRepo{ent: entc, logger: logger}
}

func (r *profileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Profile, error) {
	return r.ent.Profile.Get(ctx, id)
}

func (r *profileRepo) GetOrCreateByEmail(ctx context.Context, email, name string) (*ent.Profile, error) {
	row, err := r.ent.Profile.Query().
		Where(entprofile.EmailEQ(email)).
		Only(ctx)
	if err == nil {
		return row, nil
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("failed to look up profile", "email", email, "error", err)
		return nil, err
	}
	row, err = r.ent.Profile.Create().
		SetEmail(email).
		SetName(name).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create profile", "email", email, "error", err)
		return nil, err
	}
	r.logger.Info("profile created", "profile_id", row.ID, "email", email)
	return row, nil
}

func (r *profileRepo) CreditBalance(ctx context.Context, id uuid.UUID) (int, error) {
	row, err := r.ent.Profile.Get(ctx, id)
	if err != nil {
		r.logger.Error("failed to read credit balance", "profile_id", id, "error", err)
		return 0, err
	}
	return row.CreditBalance, nil
}

func (r *profileRepo) DecrementCredits(ctx context.Context, id uuid.UUID, observed int) (bool, error) {
	if observed < 1 {
		return false, nil
	}
	n, err := r.ent.Profile.Update().
		Where(entprofile.ID(id), entprofile.CreditBalanceEQ(observed)).
		SetCreditBalance(observed - 1).
		Save(ctx)
	if err != nil {
		r.logger.Error("credit decrement failed", "profile_id", id, "observed", observed, "error", err)
		return false, err
	}
	return n > 0, nil
}

func (r *profileRepo) AddCredits(ctx context.Context, id uuid.UUID, amount int) error {
	_, err := r.ent.Profile.UpdateOneID(id).
		AddCreditBalance(amount).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to add credits", "profile_id", id, "amount", amount, "error", err)
		return err
	}
	return nil
}

func (r *profileRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.ent.Profile.Query().Where(entprofile.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check profile existence", "profile_id", id, "error", err)
		return false, err
	}
	return exists, nil
}
