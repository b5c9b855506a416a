package billing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/propscope/underwriter/constants"
	"github.com/propscope/underwriter/internal/repository"
)

// Outcome of a consume attempt.
type Outcome string

const (
	OutcomeOK      Outcome = "ok"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

type creditEvent struct {
	Before int    `json:"before"`
	After  int    `json:"after"`
	Reason string `json:"reason,omitempty"`
}

// Ledger bills exactly one credit per completed job. The credit_consumed
// artifact is the idempotency marker; the balance decrement itself is a
// compare-and-swap so two concurrent consumers can never both bill.
type Ledger struct {
	profiles  repository.ProfileRepository
	artifacts repository.ArtifactRepository
	jobs      repository.JobRepository
	logger    *slog.Logger
}

func NewLedger(profiles repository.ProfileRepository, artifacts repository.ArtifactRepository, jobs repository.JobRepository, logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{profiles: profiles, artifacts: artifacts, jobs: jobs, logger: logger}
}

// ConsumeCreditOnce decrements the owner's balance for a job at most once.
// Re-delivery returns OutcomeSkipped; an empty balance fails the job and
// returns OutcomeFailed; a lost decrement race propagates as an error so the
// caller never retries past another consumer.
func (l *Ledger) ConsumeCreditOnce(ctx context.Context, jobID, ownerID uuid.UUID) (Outcome, error) {
	consumed, err := l.artifacts.ExistsByType(ctx, jobID, constants.ArtifactCreditConsumed)
	if err != nil {
		return OutcomeFailed, fmt.Errorf("check credit_consumed artifact: %w", err)
	}
	if consumed {
		l.logger.Info("credit already consumed, skipping", "job_id", jobID)
		return OutcomeSkipped, nil
	}

	balance, err := l.profiles.CreditBalance(ctx, ownerID)
	if err != nil {
		return OutcomeFailed, fmt.Errorf("read credit balance: %w", err)
	}
	if balance < 1 {
		if _, err := l.jobs.Fail(ctx, jobID, constants.ErrCodeInsufficientCredits, "Insufficient credits"); err != nil {
			return OutcomeFailed, fmt.Errorf("fail job on empty balance: %w", err)
		}
		if _, err := l.artifacts.Append(ctx, jobID, constants.ArtifactCreditFailed, creditEvent{
			Before: balance,
			After:  balance,
			Reason: "insufficient credits",
		}); err != nil {
			return OutcomeFailed, fmt.Errorf("write credit_failed artifact: %w", err)
		}
		l.logger.Warn("credit consume failed", "job_id", jobID, "owner_id", ownerID, "balance", balance)
		return OutcomeFailed, nil
	}

	applied, err := l.profiles.DecrementCredits(ctx, ownerID, balance)
	if err != nil {
		return OutcomeFailed, fmt.Errorf("decrement credits: %w", err)
	}
	if !applied {
		// Another consumer moved the balance between our read and our CAS.
		return OutcomeFailed, fmt.Errorf("credit balance changed concurrently for profile %s", ownerID)
	}

	if _, err := l.artifacts.Append(ctx, jobID, constants.ArtifactCreditConsumed, creditEvent{
		Before: balance,
		After:  balance - 1,
	}); err != nil {
		return OutcomeFailed, fmt.Errorf("write credit_consumed artifact: %w", err)
	}
	l.logger.Info("credit consumed", "job_id", jobID, "owner_id", ownerID, "before", balance, "after", balance-1)
	return OutcomeOK, nil
}
