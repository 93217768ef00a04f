package claim_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jgkirkwood/claimtrack/internal/claim"
)

func period(t *testing.T, start, end string) claim.Period {
	t.Helper()

	s, err := time.Parse(time.DateOnly, start)
	require.NoError(t, err)

	e, err := time.Parse(time.DateOnly, end)
	require.NoError(t, err)

	return claim.Period{Start: s, End: e}
}

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    claim.CreateParams
		setupMock func(m *claim.MockRepository)
		wantErr   bool
	}

	projectID := uuid.New()

	tests := []testCase{
		{
			name: "Success",
			params: claim.CreateParams{
				CompanyName: "Acme Ltd",
				Amount:      50000,
			},
			setupMock: func(m *claim.MockRepository) {
				m.EXPECT().
					CreateClaim(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *claim.Claim) error {
						c.ID = uuid.New()
						c.CreatedAt = time.Now()
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "SuccessWithProjects",
			params: claim.CreateParams{
				CompanyName: "Acme Ltd",
				Amount:      50000,
				ProjectIDs:  []uuid.UUID{projectID},
			},
			setupMock: func(m *claim.MockRepository) {
				m.EXPECT().
					CreateClaim(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *claim.Claim) error {
						c.ID = uuid.New()
						return nil
					})
				m.EXPECT().
					LinkProjects(gomock.Any(), gomock.Any(), []uuid.UUID{projectID}).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:   "RepoError",
			params: claim.CreateParams{CompanyName: "Acme Ltd"},
			setupMock: func(m *claim.MockRepository) {
				m.EXPECT().
					CreateClaim(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := claim.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := claim.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, claim.StatusDraft, got.Status)
		})
	}
}

func TestService_Update_StampsSubmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := claim.NewMockRepository(ctrl)
	svc := claim.NewService(repo)

	id := uuid.New()
	existing := &claim.Claim{
		ID:          id,
		CompanyName: "Acme Ltd",
		Period:      period(t, "2024-01-01", "2024-12-31"),
		Amount:      50000,
		Status:      claim.StatusDraft,
	}

	repo.EXPECT().GetClaim(gomock.Any(), id).Return(existing, nil)
	repo.EXPECT().UpdateClaim(gomock.Any(), gomock.Any()).Return(nil)

	actor := "user-1"
	status := claim.StatusSubmitted

	got, err := svc.Update(context.Background(), id, claim.UpdateParams{Status: &status}, &actor)
	require.NoError(t, err)

	assert.Equal(t, claim.StatusSubmitted, got.Status)
	require.NotNil(t, got.SubmittedBy)
	assert.Equal(t, "user-1", *got.SubmittedBy)
	assert.NotNil(t, got.SubmittedAt)
	assert.Nil(t, got.ReviewedAt)
}

func TestService_Update_StampsReview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := claim.NewMockRepository(ctrl)
	svc := claim.NewService(repo)

	id := uuid.New()
	existing := &claim.Claim{ID: id, Status: claim.StatusSubmitted}

	repo.EXPECT().GetClaim(gomock.Any(), id).Return(existing, nil)
	repo.EXPECT().UpdateClaim(gomock.Any(), gomock.Any()).Return(nil)

	actor := "user-2"
	status := claim.StatusApproved

	got, err := svc.Update(context.Background(), id, claim.UpdateParams{Status: &status}, &actor)
	require.NoError(t, err)

	require.NotNil(t, got.ReviewedBy)
	assert.Equal(t, "user-2", *got.ReviewedBy)
	assert.NotNil(t, got.ReviewedAt)
}

func TestService_Update_SameStatusDoesNotRestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := claim.NewMockRepository(ctrl)
	svc := claim.NewService(repo)

	id := uuid.New()
	existing := &claim.Claim{ID: id, Status: claim.StatusSubmitted}

	repo.EXPECT().GetClaim(gomock.Any(), id).Return(existing, nil)
	repo.EXPECT().UpdateClaim(gomock.Any(), gomock.Any()).Return(nil)

	actor := "user-1"
	status := claim.StatusSubmitted
	name := "Acme Holdings Ltd"

	got, err := svc.Update(context.Background(), id, claim.UpdateParams{Status: &status, CompanyName: &name}, &actor)
	require.NoError(t, err)

	assert.Equal(t, "Acme Holdings Ltd", got.CompanyName)
	assert.Nil(t, got.SubmittedBy)
	assert.Nil(t, got.SubmittedAt)
}

func TestService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := claim.NewMockRepository(ctrl)
	svc := claim.NewService(repo)

	id := uuid.New()
	repo.EXPECT().GetClaim(gomock.Any(), id).Return(nil, claim.ErrNotFound)

	_, err := svc.Update(context.Background(), id, claim.UpdateParams{}, nil)
	assert.ErrorIs(t, err, claim.ErrNotFound)
}

func TestService_List(t *testing.T) {
	type testCase struct {
		name      string
		filter    claim.ListFilter
		setupMock func(m *claim.MockRepository)
		wantLen   int
		wantErr   bool
	}

	submitted := claim.StatusSubmitted

	tests := []testCase{
		{
			name:   "All",
			filter: claim.ListFilter{},
			setupMock: func(m *claim.MockRepository) {
				m.EXPECT().
					ListClaims(gomock.Any(), claim.ListFilter{}).
					Return([]*claim.Claim{{ID: uuid.New()}, {ID: uuid.New()}}, nil)
			},
			wantLen: 2,
		},
		{
			name:   "StatusFiltered",
			filter: claim.ListFilter{Status: &submitted},
			setupMock: func(m *claim.MockRepository) {
				m.EXPECT().
					ListClaims(gomock.Any(), claim.ListFilter{Status: &submitted}).
					Return([]*claim.Claim{{ID: uuid.New(), Status: claim.StatusSubmitted}}, nil)
			},
			wantLen: 1,
		},
		{
			name:   "Empty",
			filter: claim.ListFilter{},
			setupMock: func(m *claim.MockRepository) {
				m.EXPECT().
					ListClaims(gomock.Any(), claim.ListFilter{}).
					Return(nil, nil)
			},
			wantLen: 0,
		},
		{
			name:   "Error",
			filter: claim.ListFilter{},
			setupMock: func(m *claim.MockRepository) {
				m.EXPECT().
					ListClaims(gomock.Any(), claim.ListFilter{}).
					Return(nil, errors.New("list error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := claim.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := claim.NewService(repo)
			got, err := svc.List(context.Background(), tt.filter)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestService_LinkProjects_EmptyIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := claim.NewMockRepository(ctrl)
	svc := claim.NewService(repo)

	// No repo expectation: an empty link request never reaches the store.
	assert.NoError(t, svc.LinkProjects(context.Background(), uuid.New(), nil))
}
