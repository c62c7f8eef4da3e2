package appointments

import (
	"context"
	"errors"
	"testing"
)

// -------------------------
// Test doubles
// -------------------------

type testRepo struct {
	stored []Appointment
	saves  int
}

func (r *testRepo) Load(ctx context.Context) []Appointment {
	out := make([]Appointment, len(r.stored))
	copy(out, r.stored)
	return out
}

func (r *testRepo) Save(ctx context.Context, items []Appointment) {
	r.saves++
	r.stored = make([]Appointment, len(items))
	copy(r.stored, items)
}

type seqIDs struct{ next int64 }

func (g *seqIDs) Next() int64 {
	g.next++
	return g.next
}

type knownPets map[int64]string

func (k knownPets) Exists(ctx context.Context, id int64) bool {
	_, ok := k[id]
	return ok
}

func (k knownPets) Names(ctx context.Context) map[int64]string {
	return k
}

func newTestService(t *testing.T, seed ...Appointment) (*Service, *testRepo) {
	t.Helper()
	repo := &testRepo{stored: seed}
	svc := NewService(context.Background(), repo, &seqIDs{next: 500}, knownPets{1: "Fino", 2: "Pamuk"}, Options{})
	return svc, repo
}

// -------------------------
// Tests
// -------------------------

func TestService_Add_SortsAprilBeforeMay(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	may, err := svc.Add(ctx, Input{PetID: 1, Date: "2024-05-01", Time: "10:00", Type: "veterinary-checkup"})
	if err != nil {
		t.Fatalf("Add may: %v", err)
	}
	april, err := svc.Add(ctx, Input{PetID: 1, Date: "2024-04-20", Time: "09:00", Type: "vaccination"})
	if err != nil {
		t.Fatalf("Add april: %v", err)
	}
	if may.ID == april.ID {
		t.Fatalf("expected distinct ids")
	}
	if repo.saves != 2 || len(repo.stored) != 2 {
		t.Fatalf("expected full collection persisted twice, saves=%d stored=%d", repo.saves, len(repo.stored))
	}

	sorted := Sorted(svc.List(ctx))
	if sorted[0].ID != april.ID || sorted[1].ID != may.ID {
		t.Fatalf("expected April before May, got %#v", sorted)
	}
}

func TestService_Add_Validation(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   Input
		want error
	}{
		{"unknown pet", Input{PetID: 99, Date: "2024-05-01", Time: "10:00", Type: "grooming"}, ErrPetNotFound},
		{"unknown type", Input{PetID: 1, Date: "2024-05-01", Time: "10:00", Type: "surgery"}, ErrInvalidInput},
		{"bad date", Input{PetID: 1, Date: "01/05/2024", Time: "10:00", Type: "grooming"}, ErrInvalidInput},
		{"bad time", Input{PetID: 1, Date: "2024-05-01", Time: "25:00", Type: "grooming"}, ErrInvalidInput},
		{"empty time", Input{PetID: 1, Date: "2024-05-01", Type: "grooming"}, ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Add(ctx, tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
	if repo.saves != 0 {
		t.Fatalf("rejected input must not persist")
	}
}

func TestService_Add_NormalizesLegacyType(t *testing.T) {
	svc, _ := newTestService(t)

	a, err := svc.Add(context.Background(), Input{PetID: 2, Date: "2024-05-01", Time: "10:00:00", Type: "Asi"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if a.Type != TypeVaccination {
		t.Fatalf("expected vaccination, got %q", a.Type)
	}
}

func TestService_Load_NormalizesStoredLegacyTypes(t *testing.T) {
	svc, _ := newTestService(t,
		Appointment{ID: 1, PetID: 1, Date: "2024-05-01", Time: "10:00", Type: "veteriner"},
		Appointment{ID: 2, PetID: 1, Date: "2024-05-02", Time: "10:00", Type: "egzersiz"},
	)

	items := svc.List(context.Background())
	if items[0].Type != TypeVeterinaryCheckup || items[1].Type != TypeExercise {
		t.Fatalf("expected normalized types, got %q %q", items[0].Type, items[1].Type)
	}
}

func TestService_Update_PreservesID(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	a, _ := svc.Add(ctx, Input{PetID: 1, Date: "2024-05-01", Time: "10:00", Type: "grooming", Notes: "bath"})

	got, err := svc.Update(ctx, a.ID, Input{PetID: 2, Date: "2024-06-01", Time: "11:30", Type: "exercise", Notes: "park"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.ID != a.ID || got.PetID != 2 || got.Date != "2024-06-01" || got.Type != TypeExercise || got.Notes != "park" {
		t.Fatalf("unexpected updated appointment: %#v", got)
	}
	if len(repo.stored) != 1 || repo.stored[0] != got {
		t.Fatalf("expected replaced in place, stored=%#v", repo.stored)
	}
}

func TestService_Update_UnknownID(t *testing.T) {
	svc, repo := newTestService(t)

	_, err := svc.Update(context.Background(), 12345, Input{PetID: 1, Date: "2024-05-01", Time: "10:00", Type: "grooming"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if repo.saves != 0 {
		t.Fatalf("unknown id must not persist")
	}
}

func TestService_Delete(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	a, _ := svc.Add(ctx, Input{PetID: 1, Date: "2024-05-01", Time: "10:00", Type: "grooming"})
	b, _ := svc.Add(ctx, Input{PetID: 2, Date: "2024-05-02", Time: "10:00", Type: "grooming"})
	saves := repo.saves

	// no-op para id desconocido
	if svc.Delete(ctx, 777) {
		t.Fatalf("expected false for unknown id")
	}
	if repo.saves != saves {
		t.Fatalf("unknown id must not persist")
	}

	if !svc.Delete(ctx, a.ID) {
		t.Fatalf("expected delete to succeed")
	}
	items := svc.List(ctx)
	if len(items) != 1 || items[0].ID != b.ID {
		t.Fatalf("unexpected items after delete: %#v", items)
	}
	if _, err := svc.GetByID(ctx, a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected deleted appointment to be gone")
	}
}
