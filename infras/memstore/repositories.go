package memstore

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	clientModel "vetclinic/internal/domains/client/model"
	clientRepo "vetclinic/internal/domains/client/repository"
	petModel "vetclinic/internal/domains/pet/model"
	petRepo "vetclinic/internal/domains/pet/repository"
	roomModel "vetclinic/internal/domains/room/model"
	roomRepo "vetclinic/internal/domains/room/repository"
	vetModel "vetclinic/internal/domains/vet/model"
	vetRepo "vetclinic/internal/domains/vet/repository"
	visitModel "vetclinic/internal/domains/visit/model"
	visitRepo "vetclinic/internal/domains/visit/repository"
	"vetclinic/shared/constant"
	gDto "vetclinic/shared/dto"
	"vetclinic/shared/timerange"
)

type vets struct{ s *Store }

func (s *Store) Vets() vetRepo.Vet { return vets{s} }

func (r vets) Get(ctx context.Context, id string) (vetModel.Vet, error) {
	defer r.s.lock(ctx)()

	for _, vet := range r.s.vets {
		if vet.ID == id {
			return vet, nil
		}
	}

	return vetModel.Vet{}, nil
}

func (r vets) GetAll(ctx context.Context) ([]vetModel.Vet, error) {
	defer r.s.lock(ctx)()

	return slices.Clone(r.s.vets), nil
}

func (r vets) GetByIDs(ctx context.Context, ids []string) ([]vetModel.Vet, error) {
	defer r.s.lock(ctx)()

	res := []vetModel.Vet{}

	for _, vet := range r.s.vets {
		if slices.Contains(ids, vet.ID) {
			res = append(res, vet)
		}
	}

	return res, nil
}

type rooms struct{ s *Store }

func (s *Store) Rooms() roomRepo.Room { return rooms{s} }

func (r rooms) GetAll(ctx context.Context) ([]roomModel.TreatmentRoom, error) {
	defer r.s.lock(ctx)()

	return slices.Clone(r.s.rooms), nil
}

type pets struct{ s *Store }

func (s *Store) Pets() petRepo.Pet { return pets{s} }

func (r pets) Get(ctx context.Context, id string) (petModel.Pet, error) {
	defer r.s.lock(ctx)()

	for _, pet := range r.s.pets {
		if pet.ID == id {
			return pet, nil
		}
	}

	return petModel.Pet{}, nil
}

type clients struct{ s *Store }

func (s *Store) Clients() clientRepo.Client { return clients{s} }

func (r clients) Get(ctx context.Context, id string) (clientModel.Client, error) {
	defer r.s.lock(ctx)()

	for _, client := range r.s.clients {
		if client.ID == id {
			return client, nil
		}
	}

	return clientModel.Client{}, nil
}

type visits struct{ s *Store }

func (s *Store) Visits() visitRepo.Visit { return visits{s} }

func (r visits) filter(keep func(visitModel.Visit) bool) []visitModel.Visit {
	res := []visitModel.Visit{}

	for _, visit := range r.s.visits {
		if keep(visit) {
			res = append(res, visit)
		}
	}

	slices.SortStableFunc(res, func(a, b visitModel.Visit) int {
		return a.StartDateTime.Compare(b.StartDateTime)
	})

	return res
}

func (r visits) Get(ctx context.Context, id string) (visitModel.Visit, error) {
	defer r.s.lock(ctx)()

	for _, visit := range r.s.visits {
		if visit.ID == id {
			return visit, nil
		}
	}

	return visitModel.Visit{}, nil
}

// ownedBy mirrors the postgres ownership subquery.
func (r visits) ownedBy(owner string) func(visitModel.Visit) bool {
	return func(visit visitModel.Visit) bool {
		if owner == constant.Empty {
			return true
		}

		for _, pet := range r.s.pets {
			if pet.ID != visit.PetID {
				continue
			}

			for _, client := range r.s.clients {
				if client.ID == pet.ClientID && client.UserID.Valid && strings.EqualFold(client.UserID.String, owner) {
					return true
				}
			}
		}

		return false
	}
}

func (r visits) GetAll(ctx context.Context, params gDto.QueryParams, owner string) ([]visitModel.Visit, error) {
	defer r.s.lock(ctx)()

	res := r.filter(r.ownedBy(owner))

	if params.SortBy == visitModel.FieldEndDateTime {
		slices.SortStableFunc(res, func(a, b visitModel.Visit) int {
			return a.EndDateTime.Compare(b.EndDateTime)
		})
	}

	if params.SortBy == visitModel.FieldStatus {
		slices.SortStableFunc(res, func(a, b visitModel.Visit) int {
			return cmp.Compare(a.Status, b.Status)
		})
	}

	if params.SortDir == gDto.SortDirDesc {
		slices.Reverse(res)
	}

	if params.Limit <= 0 {
		return res, nil
	}

	from := 0
	if params.Page > 0 {
		from = min((params.Page-1)*params.Limit, len(res))
	}

	return res[from:min(from+params.Limit, len(res))], nil
}

func (r visits) Count(ctx context.Context, owner string) (int, error) {
	defer r.s.lock(ctx)()

	return len(r.filter(r.ownedBy(owner))), nil
}

func (r visits) FindOverlappingForVet(ctx context.Context, vetID string, rng timerange.Range) ([]visitModel.Visit, error) {
	defer r.s.lock(ctx)()

	return r.filter(func(v visitModel.Visit) bool {
		return v.VetID == vetID && v.Status != visitModel.StatusCancelled && v.Range().Overlaps(rng)
	}), nil
}

func (r visits) FindOverlappingInRange(ctx context.Context, rng timerange.Range) ([]visitModel.Visit, error) {
	defer r.s.lock(ctx)()

	return r.filter(func(v visitModel.Visit) bool {
		return v.Range().Overlaps(rng)
	}), nil
}

func (r visits) FindFullyWithinRange(ctx context.Context, rng timerange.Range, vetIDs []string) ([]visitModel.Visit, error) {
	defer r.s.lock(ctx)()

	return r.filter(func(v visitModel.Visit) bool {
		return slices.Contains(vetIDs, v.VetID) && v.Status != visitModel.StatusCancelled && v.Range().Within(rng)
	}), nil
}

func (r visits) FindExpiredScheduled(ctx context.Context, now time.Time) ([]visitModel.Visit, error) {
	defer r.s.lock(ctx)()

	return r.filter(func(v visitModel.Visit) bool {
		return v.Status == visitModel.StatusScheduled && v.EndDateTime.Before(now)
	}), nil
}

func (r visits) Insert(ctx context.Context, visit visitModel.Visit) error {
	defer r.s.lock(ctx)()

	r.s.visits = append(r.s.visits, visit)

	return nil
}

func (r visits) UpdateStatusAndDescription(ctx context.Context, visit visitModel.Visit) error {
	defer r.s.lock(ctx)()

	for i := range r.s.visits {
		if r.s.visits[i].ID == visit.ID {
			r.s.visits[i].Status = visit.Status
			r.s.visits[i].Description = visit.Description
			r.s.visits[i].ModifiedAt = visit.ModifiedAt
			r.s.visits[i].ModifiedBy = visit.ModifiedBy
		}
	}

	return nil
}

func (r visits) MarkExpired(ctx context.Context, ids []string, at time.Time, username string) (int64, error) {
	defer r.s.lock(ctx)()

	var changed int64

	for i := range r.s.visits {
		visit := &r.s.visits[i]
		if visit.Status != visitModel.StatusScheduled || !slices.Contains(ids, visit.ID) {
			continue
		}

		visit.Status = visitModel.StatusExpired
		visit.ModifiedAt = at
		visit.ModifiedBy = username
		changed++
	}

	return changed, nil
}

func (r visits) Delete(ctx context.Context, id string) (int64, error) {
	defer r.s.lock(ctx)()

	before := len(r.s.visits)

	r.s.visits = slices.DeleteFunc(r.s.visits, func(v visitModel.Visit) bool {
		return v.ID == id
	})

	return int64(before - len(r.s.visits)), nil
}
