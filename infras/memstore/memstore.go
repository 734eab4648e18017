// Package memstore keeps clinic data in process memory behind the same repository
// interfaces as the postgres store. A single mutex serializes units of work.
package memstore

import (
	"context"
	"slices"
	"sync"

	clientModel "vetclinic/internal/domains/client/model"
	petModel "vetclinic/internal/domains/pet/model"
	roomModel "vetclinic/internal/domains/room/model"
	vetModel "vetclinic/internal/domains/vet/model"
	visitModel "vetclinic/internal/domains/visit/model"
)

type txKey struct{}

type Store struct {
	mu      sync.Mutex
	vets    []vetModel.Vet
	rooms   []roomModel.TreatmentRoom
	clients []clientModel.Client
	pets    []petModel.Pet
	visits  []visitModel.Visit
}

func New() *Store {
	return &Store{}
}

func (s *Store) AddVets(vets ...vetModel.Vet) {
	unlock := s.lock(context.Background())
	defer unlock()

	s.vets = append(s.vets, vets...)
}

func (s *Store) AddRooms(rooms ...roomModel.TreatmentRoom) {
	unlock := s.lock(context.Background())
	defer unlock()

	s.rooms = append(s.rooms, rooms...)
}

func (s *Store) AddClients(clients ...clientModel.Client) {
	unlock := s.lock(context.Background())
	defer unlock()

	s.clients = append(s.clients, clients...)
}

func (s *Store) AddPets(pets ...petModel.Pet) {
	unlock := s.lock(context.Background())
	defer unlock()

	s.pets = append(s.pets, pets...)
}

func (s *Store) AddVisits(visits ...visitModel.Visit) {
	unlock := s.lock(context.Background())
	defer unlock()

	s.visits = append(s.visits, visits...)
}

// AllVisits returns a copy of every stored visit in insertion order.
func (s *Store) AllVisits() []visitModel.Visit {
	unlock := s.lock(context.Background())
	defer unlock()

	return slices.Clone(s.visits)
}

// WithinTx runs fn holding the store lock. Lock keys are accepted for interface
// compatibility; the single lock already covers them. Visit writes made by fn are
// rolled back when it fails.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error, _ ...string) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := slices.Clone(s.visits)

	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.visits = snapshot

		return err
	}

	return nil
}

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)

	return owner == s
}

// lock takes the store lock unless ctx already runs inside WithinTx.
func (s *Store) lock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}

	s.mu.Lock()

	return s.mu.Unlock
}
