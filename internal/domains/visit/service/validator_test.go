package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "vetclinic/infras/otel/mocks"
	visitMocks "vetclinic/internal/domains/visit/mocks"
	"vetclinic/internal/domains/visit/model"
	"vetclinic/internal/domains/visit/service"
	"vetclinic/shared/timerange"
)

func TestConflictValidator_Validate(t *testing.T) {
	tests := []struct {
		name      string
		start     time.Time
		duration  time.Duration
		existing  []model.Visit
		repoErr   error
		queried   bool
		wantErr   error
		wantOther bool
	}{
		{name: "start before now", start: now.Add(-time.Hour), wantErr: service.ErrPastStart},
		{name: "start at now", start: now, wantErr: service.ErrPastStart},
		{name: "fifty nine minutes ahead", start: now.Add(59 * time.Minute), wantErr: service.ErrLeadTimeTooShort},
		{name: "sixty minutes ahead", start: now.Add(time.Hour), duration: 30 * time.Minute, queried: true},
		{
			name:     "existing visit overlaps",
			start:    now.Add(2 * time.Hour),
			duration: 30 * time.Minute,
			existing: []model.Visit{{ID: "taken"}},
			queried:  true,
			wantErr:  service.ErrSlotTaken,
		},
		{
			name:      "storage failure",
			start:     now.Add(2 * time.Hour),
			repoErr:   errors.New("database error"),
			queried:   true,
			wantOther: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			visits := visitMocks.NewMockVisit(ctrl)

			if tt.queried {
				visits.EXPECT().
					FindOverlappingForVet(gomock.Any(), vetID, timerange.New(tt.start, tt.duration)).
					Return(tt.existing, tt.repoErr)
			}

			err := service.NewConflictValidator(visits, otelMocks.NewOtel()).
				Validate(context.Background(), vetID, tt.start, tt.duration, now)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantOther:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
