package project_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jgkirkwood/claimtrack/internal/project"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    project.CreateParams
		setupMock func(m *project.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name:   "Success",
			params: project.CreateParams{Name: "Engine telemetry", Description: "Sensor pipeline"},
			setupMock: func(m *project.MockRepository) {
				m.EXPECT().
					CreateProject(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *project.Project) error {
						p.ID = uuid.New()
						p.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name:   "RepoError",
			params: project.CreateParams{Name: "Engine telemetry"},
			setupMock: func(m *project.MockRepository) {
				m.EXPECT().
					CreateProject(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := project.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := project.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestService_Update_PartialPatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := project.NewMockRepository(ctrl)
	svc := project.NewService(repo)

	id := uuid.New()
	existing := &project.Project{ID: id, Name: "Engine telemetry", Description: "Sensor pipeline"}

	repo.EXPECT().GetProject(gomock.Any(), id).Return(existing, nil)
	repo.EXPECT().UpdateProject(gomock.Any(), gomock.Any()).Return(nil)

	name := "Engine telemetry v2"

	got, err := svc.Update(context.Background(), id, project.UpdateParams{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Engine telemetry v2", got.Name)
	assert.Equal(t, "Sensor pipeline", got.Description)
}

func TestService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := project.NewMockRepository(ctrl)
	svc := project.NewService(repo)

	id := uuid.New()
	repo.EXPECT().GetProject(gomock.Any(), id).Return(nil, project.ErrNotFound)

	_, err := svc.Update(context.Background(), id, project.UpdateParams{})
	assert.ErrorIs(t, err, project.ErrNotFound)
}

func TestService_ListByIDs_EmptySkipsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := project.NewMockRepository(ctrl)
	svc := project.NewService(repo)

	got, err := svc.ListByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
