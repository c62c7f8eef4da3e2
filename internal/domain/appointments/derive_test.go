package appointments

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func apptIDs(items []Appointment) []int64 {
	out := make([]int64, 0, len(items))
	for _, a := range items {
		out = append(out, a.ID)
	}
	return out
}

func TestSorted_ChronologicalAndStable(t *testing.T) {
	in := []Appointment{
		{ID: 1, Date: "2024-05-01", Time: "10:00"},
		{ID: 2, Date: "2024-04-20", Time: "09:00"},
		{ID: 3, Date: "2024-05-01", Time: "10:00"}, // empate con 1
		{ID: 4, Date: "2024-05-01", Time: "08:15"},
		{ID: 5, Date: "not-a-date", Time: "10:00"},
		{ID: 6, Date: "2024-01-01", Time: "23:59:30"},
		{ID: 7, Date: "2024-01-01", Time: "??"},
	}

	got := apptIDs(Sorted(in))
	want := []int64{6, 2, 4, 1, 3, 5, 7}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Sorted mismatch (-want +got):\n%s", diff)
	}
	if in[0].ID != 1 || in[1].ID != 2 {
		t.Fatalf("input must not be reordered")
	}
}

func TestSorted_NonDecreasing(t *testing.T) {
	in := []Appointment{
		{ID: 1, Date: "2025-03-10", Time: "12:00"},
		{ID: 2, Date: "2024-12-31", Time: "23:00"},
		{ID: 3, Date: "2025-01-01", Time: "00:00"},
		{ID: 4, Date: "2025-03-10", Time: "11:59"},
		{ID: 5, Date: "2024-12-31", Time: "07:30"},
	}

	out := Sorted(in)
	var prev time.Time
	for i, a := range out {
		at, ok := a.StartsAt(time.UTC)
		if !ok {
			t.Fatalf("unexpected unparseable appointment %d", a.ID)
		}
		if i > 0 && at.Before(prev) {
			t.Fatalf("not non-decreasing at %d: %v", i, apptIDs(out))
		}
		prev = at
	}
}

func TestFilter(t *testing.T) {
	pet1 := int64(1)
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	in := []Appointment{
		{ID: 1, PetID: 1, Date: "2024-05-10", Time: "10:00", Type: TypeGrooming, Notes: "Kuaför"},
		{ID: 2, PetID: 2, Date: "2024-05-01", Time: "09:00", Type: TypeVaccination, Notes: "kuduz"},
		{ID: 3, PetID: 1, Date: "2024-05-31", Time: "18:00", Type: TypeVaccination, Notes: "Karma aşı"},
		{ID: 4, PetID: 1, Date: "2024-06-01", Time: "09:00", Type: TypeVaccination},
		{ID: 5, PetID: 1, Date: "2024-04-30", Time: "09:00", Type: TypeExercise},
	}

	cases := []struct {
		name string
		f    ListFilter
		want []int64
	}{
		{"no filter", ListFilter{}, []int64{5, 2, 1, 3, 4}},
		{"types", ListFilter{Types: []Type{TypeVaccination}}, []int64{2, 3, 4}},
		{"pet", ListFilter{PetID: &pet1}, []int64{5, 1, 3, 4}},
		{"inclusive range", ListFilter{From: &from, To: &to}, []int64{2, 1, 3}},
		{"query case-insensitive", ListFilter{Query: "KARMA"}, []int64{3}},
		{"query matches type", ListFilter{Query: "exercise"}, []int64{5}},
		{"limit", ListFilter{Limit: 2}, []int64{5, 2}},
		{"combined", ListFilter{Types: []Type{TypeVaccination}, PetID: &pet1, To: &to}, []int64{3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, apptIDs(Filter(in, tc.f))); diff != "" {
				t.Fatalf("Filter mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUpcoming(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	in := []Appointment{
		{ID: 1, Date: "2024-05-01", Time: "09:59"},
		{ID: 2, Date: "2024-05-02", Time: "08:00"},
		{ID: 3, Date: "2024-05-01", Time: "10:00"},
		{ID: 4, Date: "garbage", Time: "10:00"},
	}

	if diff := cmp.Diff([]int64{3, 2}, apptIDs(Upcoming(in, now, time.UTC))); diff != "" {
		t.Fatalf("Upcoming mismatch (-want +got):\n%s", diff)
	}

	// 09:59 en Estambul (UTC+3) ya pasó hace rato respecto de 10:00 UTC
	ist := time.FixedZone("TRT", 3*60*60)
	if diff := cmp.Diff([]int64{2}, apptIDs(Upcoming(in, now, ist))); diff != "" {
		t.Fatalf("Upcoming with location mismatch (-want +got):\n%s", diff)
	}
}

func TestViews_FlagsDanglingPet(t *testing.T) {
	in := []Appointment{{ID: 1, PetID: 1}, {ID: 2, PetID: 9}}

	got := Views(in, map[int64]string{1: "Fino"})
	if got[0].PetName != "Fino" || got[0].PetMissing {
		t.Fatalf("unexpected view for known pet: %#v", got[0])
	}
	if got[1].PetName != "" || !got[1].PetMissing {
		t.Fatalf("expected dangling pet flagged: %#v", got[1])
	}
}

func TestParseType(t *testing.T) {
	cases := map[string]Type{
		"veterinary-checkup": TypeVeterinaryCheckup,
		" Grooming ":         TypeGrooming,
		"veteriner":          TypeVeterinaryCheckup,
		"asi":                TypeVaccination,
		"bakim":              TypeGrooming,
		"egzersiz":           TypeExercise,
	}
	for in, want := range cases {
		got, ok := ParseType(in)
		if !ok || got != want {
			t.Fatalf("ParseType(%q) = %q, %v; want %q", in, got, ok, want)
		}
	}
	if _, ok := ParseType("surgery"); ok {
		t.Fatalf("expected unknown type to be rejected")
	}
}
