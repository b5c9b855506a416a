package billing

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propscope/underwriter/constants"
	"github.com/propscope/underwriter/gen/ent"
	"github.com/propscope/underwriter/internal/repository"
)

type fakeArtifacts struct {
	rows []*ent.Artifact
}

func (f *fakeArtifacts) Append(_ context.Context, jobID uuid.UUID, artifactType string, payload any) (*ent.Artifact, error) {
	return f.AppendWithLocator(context.Background(), jobID, artifactType, "", payload)
}

func (f *fakeArtifacts) AppendWithLocator(_ context.Context, jobID uuid.UUID, artifactType, locator string, payload any) (*ent.Artifact, error) {
	row := &ent.Artifact{ID: uuid.New(), JobID: jobID, Type: artifactType, CreatedAt: time.Now()}
	if locator != "" {
		row.StorageLocator = &locator
	}
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		row.Payload = b
	}
	f.rows = append(f.rows, row)
	return row, nil
}

func (f *fakeArtifacts) ExistsByType(_ context.Context, jobID uuid.UUID, artifactType string) (bool, error) {
	for _, r := range f.rows {
		if r.JobID == jobID && r.Type == artifactType {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeArtifacts) LatestByType(_ context.Context, jobID uuid.UUID, artifactType string) (*ent.Artifact, error) {
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].JobID == jobID && f.rows[i].Type == artifactType {
			return f.rows[i], nil
		}
	}
	return nil, &ent.NotFoundError{}
}

func (f *fakeArtifacts) ListByType(_ context.Context, jobID uuid.UUID, artifactType string) ([]*ent.Artifact, error) {
	var out []*ent.Artifact
	for _, r := range f.rows {
		if r.JobID == jobID && r.Type == artifactType {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeArtifacts) ListByJob(_ context.Context, jobID uuid.UUID) ([]*ent.Artifact, error) {
	var out []*ent.Artifact
	for _, r := range f.rows {
		if r.JobID == jobID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeProfiles struct {
	balance   int
	raceOnCAS bool
}

func (f *fakeProfiles) GetByID(context.Context, uuid.UUID) (*ent.Profile, error) {
	return &ent.Profile{CreditBalance: f.balance}, nil
}

func (f *fakeProfiles) GetOrCreateByEmail(context.Context, string, string) (*ent.Profile, error) {
	return nil, nil
}

func (f *fakeProfiles) CreditBalance(context.Context, uuid.UUID) (int, error) {
	return f.balance, nil
}

func (f *fakeProfiles) DecrementCredits(_ context.Context, _ uuid.UUID, observed int) (bool, error) {
	if f.raceOnCAS || f.balance != observed || observed < 1 {
		return false, nil
	}
	f.balance--
	return true, nil
}

func (f *fakeProfiles) AddCredits(_ context.Context, _ uuid.UUID, amount int) error {
	f.balance += amount
	return nil
}

func (f *fakeProfiles) Exists(context.Context, uuid.UUID) (bool, error) { return true, nil }

type failCall struct {
	jobID uuid.UUID
	code  string
}

type fakeJobs struct {
	repository.JobRepository
	fails []failCall
}

func (f *fakeJobs) Fail(_ context.Context, id uuid.UUID, code, _ string) (bool, error) {
	f.fails = append(f.fails, failCall{jobID: id, code: code})
	return true, nil
}

func TestConsumeCreditOnce(t *testing.T) {
	jobID := uuid.New()
	ownerID := uuid.New()
	artifacts := &fakeArtifacts{}
	profiles := &fakeProfiles{balance: 3}
	jobs := &fakeJobs{}
	ledger := NewLedger(profiles, artifacts, jobs, nil)

	outcome, err := ledger.ConsumeCreditOnce(context.Background(), jobID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeOK, outcome)
	assert.Equal(t, 2, profiles.balance)

	consumed, err := artifacts.LatestByType(context.Background(), jobID, constants.ArtifactCreditConsumed)
	require.NoError(t, err)
	var ev creditEvent
	require.NoError(t, json.Unmarshal(consumed.Payload, &ev))
	assert.Equal(t, 3, ev.Before)
	assert.Equal(t, 2, ev.After)
}

func TestConsumeCreditOnceIsIdempotent(t *testing.T) {
	jobID := uuid.New()
	ownerID := uuid.New()
	artifacts := &fakeArtifacts{}
	profiles := &fakeProfiles{balance: 3}
	ledger := NewLedger(profiles, artifacts, &fakeJobs{}, nil)

	_, err := ledger.ConsumeCreditOnce(context.Background(), jobID, ownerID)
	require.NoError(t, err)

	outcome, err := ledger.ConsumeCreditOnce(context.Background(), jobID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, outcome)
	assert.Equal(t, 2, profiles.balance, "re-delivery must not bill twice")

	rows, err := artifacts.ListByType(context.Background(), jobID, constants.ArtifactCreditConsumed)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestConsumeCreditOnceInsufficientBalance(t *testing.T) {
	jobID := uuid.New()
	ownerID := uuid.New()
	artifacts := &fakeArtifacts{}
	profiles := &fakeProfiles{balance: 0}
	jobs := &fakeJobs{}
	ledger := NewLedger(profiles, artifacts, jobs, nil)

	outcome, err := ledger.ConsumeCreditOnce(context.Background(), jobID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailed, outcome)

	require.Len(t, jobs.fails, 1)
	assert.Equal(t, jobID, jobs.fails[0].jobID)
	assert.Equal(t, constants.ErrCodeInsufficientCredits, jobs.fails[0].code)

	exists, err := artifacts.ExistsByType(context.Background(), jobID, constants.ArtifactCreditFailed)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestConsumeCreditOnceLostRace(t *testing.T) {
	jobID := uuid.New()
	ownerID := uuid.New()
	artifacts := &fakeArtifacts{}
	profiles := &fakeProfiles{balance: 2, raceOnCAS: true}
	ledger := NewLedger(profiles, artifacts, &fakeJobs{}, nil)

	_, err := ledger.ConsumeCreditOnce(context.Background(), jobID, ownerID)
	require.Error(t, err)

	exists, _ := artifacts.ExistsByType(context.Background(), jobID, constants.ArtifactCreditConsumed)
	assert.False(t, exists, "a lost decrement race must not record consumption")
}
