package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"vetclinic/infras/otel/mocks"
	roomMocks "vetclinic/internal/domains/room/mocks"
	roomModel "vetclinic/internal/domains/room/model"
	"vetclinic/internal/domains/room/service"
	visitMocks "vetclinic/internal/domains/visit/mocks"
	visitModel "vetclinic/internal/domains/visit/model"
	"vetclinic/shared/timerange"
)

func TestAllocator_Allocate(t *testing.T) {
	start := time.Date(2021, 4, 15, 10, 0, 0, 0, time.UTC)
	rng := timerange.New(start, 30*time.Minute)

	rooms := []roomModel.TreatmentRoom{{ID: "room-1"}, {ID: "room-2"}, {ID: "room-3"}}

	tests := []struct {
		name        string
		rooms       []roomModel.TreatmentRoom
		roomsErr    error
		overlapping []visitModel.Visit
		visitsErr   error
		want        string
		wantErr     error
		wantAnyErr  bool
	}{
		{
			name:  "first room when nothing overlaps",
			rooms: rooms,
			want:  "room-1",
		},
		{
			name:  "skips rooms held by overlapping visits",
			rooms: rooms,
			overlapping: []visitModel.Visit{
				{ID: "a", TreatmentRoomID: "room-1", Status: visitModel.StatusScheduled},
				{ID: "b", TreatmentRoomID: "room-2", Status: visitModel.StatusCancelled},
			},
			want: "room-3",
		},
		{
			name:  "no free room when every room is held",
			rooms: rooms,
			overlapping: []visitModel.Visit{
				{ID: "a", TreatmentRoomID: "room-1"},
				{ID: "b", TreatmentRoomID: "room-2"},
				{ID: "c", TreatmentRoomID: "room-3"},
			},
			wantErr: service.ErrNoFreeRoom,
		},
		{
			name:    "no free room when the pool is empty",
			rooms:   []roomModel.TreatmentRoom{},
			wantErr: service.ErrNoFreeRoom,
		},
		{
			name:       "room lookup fails",
			roomsErr:   errors.New("database error"),
			wantAnyErr: true,
		},
		{
			name:       "visit lookup fails",
			rooms:      rooms,
			visitsErr:  errors.New("database error"),
			wantAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRooms := roomMocks.NewMockRoom(ctrl)
			mockVisits := visitMocks.NewMockVisit(ctrl)

			mockRooms.EXPECT().GetAll(gomock.Any()).Return(tt.rooms, tt.roomsErr)

			if tt.roomsErr == nil {
				mockVisits.EXPECT().FindOverlappingInRange(gomock.Any(), rng).Return(tt.overlapping, tt.visitsErr)
			}

			allocator := service.NewAllocator(mockRooms, mockVisits, mocks.NewOtel())

			got, err := allocator.Allocate(context.Background(), rng)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
			case tt.wantAnyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
