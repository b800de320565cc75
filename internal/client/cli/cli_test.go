package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmatrack/visitador/internal/client/data"
	"github.com/farmatrack/visitador/internal/client/iocli"
	"github.com/farmatrack/visitador/internal/client/queue"
	"github.com/farmatrack/visitador/internal/models"
)

// recordingIO собирает весь вывод команды в буфер.
func recordingIO(out *strings.Builder, inputs ...string) *iocli.IOMock {
	inputIdx := 0

	return &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			fmt.Fprintln(out, a...)
		},
		PrintfFunc: func(format string, a ...any) {
			fmt.Fprintf(out, format, a...)
		},
		WriteFunc: func(p []byte) (int, error) {
			return out.Write(p)
		},
		ReadInputFunc: func(_ string) (string, error) {
			if inputIdx >= len(inputs) {
				return "", nil
			}

			input := inputs[inputIdx]
			inputIdx++

			return input, nil
		},
		ReadPasswordFunc: func(_ string) (string, error) {
			return "secret", nil
		},
	}
}

// dataStub реализует data.Service через настраиваемые поля.
type dataStub struct {
	profile     *models.UserProfile
	doctors     []models.Doctor
	doctorsErr  error
	stale       bool
	visits      []models.VisitRecord
	formResult  *data.MutationResult
	visitResult *data.MutationResult
}

func (s *dataStub) Profile(context.Context) (*models.UserProfile, bool, error) {
	if s.profile == nil {
		return &models.UserProfile{}, false, nil
	}

	return s.profile, s.stale, nil
}

func (s *dataStub) Doctors(context.Context) ([]models.Doctor, bool, error) {
	return s.doctors, s.stale, s.doctorsErr
}

func (s *dataStub) Doctor(_ context.Context, id string) (*models.Doctor, bool, error) {
	for i := range s.doctors {
		if s.doctors[i].ID == id {
			return &s.doctors[i], s.stale, nil
		}
	}

	return nil, false, fmt.Errorf("doctor %s not found", id)
}

func (s *dataStub) Plans(context.Context) ([]models.VisitPlan, bool, error) {
	return nil, s.stale, nil
}

func (s *dataStub) VisitHistory(context.Context) ([]models.VisitRecord, bool, error) {
	return s.visits, s.stale, nil
}

func (s *dataStub) RecordVisit(context.Context, *models.VisitRecord) (*data.MutationResult, error) {
	return s.visitResult, nil
}

func (s *dataStub) SubmitForm(context.Context, *models.SatisfactionForm) (*data.MutationResult, error) {
	return s.formResult, nil
}

func (s *dataStub) UpdatePlan(context.Context, string, models.PlanChange) (*data.MutationResult, error) {
	return &data.MutationResult{}, nil
}

func (s *dataStub) PendingSummary(context.Context) (*queue.Stats, error) {
	return &queue.Stats{}, nil
}

// queueStub реализует queue.Service поверх среза операций.
type queueStub struct {
	ops     []models.PendingOperation
	dropped []string
}

func (s *queueStub) Enqueue(context.Context, models.OperationKind, any) (string, error) {
	return "", nil
}

func (s *queueStub) PeekAll(context.Context) ([]models.PendingOperation, error) {
	return s.ops, nil
}

func (s *queueStub) MarkInFlight(context.Context, string) error { return nil }

func (s *queueStub) Requeue(context.Context, string) error { return nil }

func (s *queueStub) Remove(context.Context, string) error { return nil }

func (s *queueStub) RecordFailure(context.Context, string, error) error { return nil }

func (s *queueStub) Drop(_ context.Context, id string) error {
	s.dropped = append(s.dropped, id)

	return nil
}

func (s *queueStub) Stats(context.Context) (*queue.Stats, error) {
	return &queue.Stats{Total: len(s.ops)}, nil
}

func TestRunDoctors_ListsAssigned(t *testing.T) {
	var out strings.Builder

	c := &Cli{
		dataService: &dataStub{doctors: []models.Doctor{
			{ID: "doc-1", Name: "Dr. Rojas", Specialty: "cardiology"},
			{ID: "doc-2", Name: "Dr. Quispe"},
		}},
		io: recordingIO(&out),
	}

	require.NoError(t, c.runDoctors(context.Background(), nil))

	assert.Contains(t, out.String(), "Dr. Rojas")
	assert.Contains(t, out.String(), "cardiology")
	assert.Contains(t, out.String(), "Dr. Quispe")
}

func TestRunDoctors_StaleBanner(t *testing.T) {
	var out strings.Builder

	c := &Cli{
		dataService: &dataStub{
			doctors: []models.Doctor{{ID: "doc-1", Name: "Dr. Rojas"}},
			stale:   true,
		},
		io: recordingIO(&out),
	}

	require.NoError(t, c.runDoctors(context.Background(), nil))
	assert.Contains(t, out.String(), "offline: showing last known data")
}

func TestRunForm_QueuedReportsOperationID(t *testing.T) {
	var out strings.Builder

	c := &Cli{
		dataService: &dataStub{
			formResult: &data.MutationResult{Queued: true, OperationID: "op_1_abc"},
		},
		io: recordingIO(&out, "v1", "5", "muy bien", "firma=="),
	}

	require.NoError(t, c.runForm(context.Background()))
	assert.Contains(t, out.String(), "queued as op_1_abc")
}

func TestRunForm_RejectsNonNumericRating(t *testing.T) {
	var out strings.Builder

	c := &Cli{
		dataService: &dataStub{},
		io:          recordingIO(&out, "v1", "five"),
	}

	err := c.runForm(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rating must be a number")
}

func TestRunPending_ListsOperations(t *testing.T) {
	var out strings.Builder

	c := &Cli{
		queueService: &queueStub{ops: []models.PendingOperation{
			{
				ID:        "op_1_abc",
				Kind:      models.OpSubmitForm,
				Status:    models.StatusQuarantined,
				CreatedAt: time.Now(),
				LastError: "timeout",
			},
		}},
		io: recordingIO(&out),
	}

	require.NoError(t, c.runPending(context.Background(), nil))

	assert.Contains(t, out.String(), "op_1_abc")
	assert.Contains(t, out.String(), "timeout")
	assert.Contains(t, out.String(), "excluded from automatic retry")
}

func TestRunPendingDrop_RequiresConfirmation(t *testing.T) {
	var out strings.Builder

	stub := &queueStub{}

	c := &Cli{
		queueService: stub,
		io:           recordingIO(&out, "no"),
	}

	require.NoError(t, c.runPending(context.Background(), []string{"drop", "op_1"}))
	assert.Empty(t, stub.dropped)
	assert.Contains(t, out.String(), "Cancelled")
}

func TestRunPendingDrop_Confirmed(t *testing.T) {
	var out strings.Builder

	stub := &queueStub{}

	c := &Cli{
		queueService: stub,
		io:           recordingIO(&out, "yes"),
	}

	require.NoError(t, c.runPending(context.Background(), []string{"drop", "op_1"}))
	assert.Equal(t, []string{"op_1"}, stub.dropped)
}

func TestRunProfile_ShowsStaleBanner(t *testing.T) {
	var out strings.Builder

	c := &Cli{
		dataService: &dataStub{
			profile: &models.UserProfile{Name: "Ana Flores", Territory: "Lima Norte"},
			stale:   true,
		},
		io: recordingIO(&out),
	}

	require.NoError(t, c.runProfile(context.Background()))
	assert.Contains(t, out.String(), "offline: showing last known data")
	assert.Contains(t, out.String(), "Ana Flores")
	assert.Contains(t, out.String(), "Lima Norte")
}

func TestRun_UnknownCommand(t *testing.T) {
	var out strings.Builder

	c := &Cli{io: recordingIO(&out)}

	err := c.Run(context.Background(), "frobnicate", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
	assert.Contains(t, out.String(), "Usage:")
}
