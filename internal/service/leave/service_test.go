package leave

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	leave.LeaveRequestRepository
	createFn       func(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error)
	getByIDFn      func(ctx context.Context, id string) (leave.LeaveRequest, error)
	updateStatusFn func(ctx context.Context, id string, status string) (leave.LeaveRequest, error)
}

func (f *fakeRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	return f.createFn(ctx, req)
}
func (f *fakeRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeRepo) UpdateStatus(ctx context.Context, id string, status string) (leave.LeaveRequest, error) {
	return f.updateStatusFn(ctx, id, status)
}

func TestCreate_FilesPendingRequest(t *testing.T) {
	var saved leave.LeaveRequest
	repo := &fakeRepo{
		createFn: func(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
			req.ID = uuid.New().String()
			req.AppliedAt = time.Now()
			saved = req
			return req, nil
		},
	}
	svc := NewLeaveService(repo)

	resp, err := svc.Create(context.Background(), uuid.New().String(), leave.CreateLeaveRequest{
		LeaveType: leave.TypeSick,
		StartDate: "2026-03-02",
		EndDate:   "2026-03-04",
		Reason:    "flu",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, saved.Status)
	assert.Equal(t, 3, resp.Days)
}

func TestCreate_SingleDayCountsOne(t *testing.T) {
	repo := &fakeRepo{
		createFn: func(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
			return req, nil
		},
	}
	svc := NewLeaveService(repo)

	resp, err := svc.Create(context.Background(), uuid.New().String(), leave.CreateLeaveRequest{
		LeaveType: leave.TypeCasual,
		StartDate: "2026-03-02",
		EndDate:   "2026-03-02",
		Reason:    "errand",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Days)
}

func TestCreate_EndBeforeStartRejected(t *testing.T) {
	svc := NewLeaveService(&fakeRepo{})

	_, err := svc.Create(context.Background(), uuid.New().String(), leave.CreateLeaveRequest{
		LeaveType: leave.TypeCasual,
		StartDate: "2026-03-04",
		EndDate:   "2026-03-02",
		Reason:    "trip",
	})
	assert.Error(t, err)
}

func TestDecide_Approves(t *testing.T) {
	repo := &fakeRepo{
		updateStatusFn: func(ctx context.Context, id string, status string) (leave.LeaveRequest, error) {
			return leave.LeaveRequest{ID: id, Status: status, StartDate: time.Now(), EndDate: time.Now(), AppliedAt: time.Now()}, nil
		},
	}
	svc := NewLeaveService(repo)

	resp, err := svc.Decide(context.Background(), leave.DecideLeaveRequest{ID: uuid.New().String(), Status: leave.StatusApproved})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, resp.Status)
}

func TestDecide_SecondDecisionFails(t *testing.T) {
	id := uuid.New().String()
	repo := &fakeRepo{
		updateStatusFn: func(ctx context.Context, reqID string, status string) (leave.LeaveRequest, error) {
			return leave.LeaveRequest{}, pgx.ErrNoRows
		},
		getByIDFn: func(ctx context.Context, reqID string) (leave.LeaveRequest, error) {
			return leave.LeaveRequest{ID: reqID, Status: leave.StatusApproved}, nil
		},
	}
	svc := NewLeaveService(repo)

	_, err := svc.Decide(context.Background(), leave.DecideLeaveRequest{ID: id, Status: leave.StatusRejected})
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestDecide_UnknownRequest(t *testing.T) {
	repo := &fakeRepo{
		updateStatusFn: func(ctx context.Context, id string, status string) (leave.LeaveRequest, error) {
			return leave.LeaveRequest{}, pgx.ErrNoRows
		},
		getByIDFn: func(ctx context.Context, id string) (leave.LeaveRequest, error) {
			return leave.LeaveRequest{}, pgx.ErrNoRows
		},
	}
	svc := NewLeaveService(repo)

	_, err := svc.Decide(context.Background(), leave.DecideLeaveRequest{ID: uuid.New().String(), Status: leave.StatusApproved})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestDecide_InvalidStatus(t *testing.T) {
	svc := NewLeaveService(&fakeRepo{})
	_, err := svc.Decide(context.Background(), leave.DecideLeaveRequest{ID: uuid.New().String(), Status: "CANCELLED"})
	assert.Error(t, err)
}
