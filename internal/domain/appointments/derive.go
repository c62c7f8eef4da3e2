package appointments

import (
	"slices"
	"strings"
	"time"
)

// Sorted ordena por fecha+hora ascendente. Orden estable: empates y citas con
// fecha/hora inválida conservan el orden de inserción; las inválidas van al final.
func Sorted(items []Appointment) []Appointment {
	type keyed struct {
		a  Appointment
		at time.Time
		ok bool
	}

	tmp := make([]keyed, len(items))
	for i, a := range items {
		at, ok := a.StartsAt(time.UTC)
		tmp[i] = keyed{a: a, at: at, ok: ok}
	}

	slices.SortStableFunc(tmp, func(x, y keyed) int {
		switch {
		case x.ok && y.ok:
			return x.at.Compare(y.at)
		case x.ok:
			return -1
		case y.ok:
			return 1
		default:
			return 0
		}
	})

	out := make([]Appointment, len(tmp))
	for i := range tmp {
		out[i] = tmp[i].a
	}
	return out
}

// Filter aplica el filtro sobre Sorted(items).
func Filter(items []Appointment, f ListFilter) []Appointment {
	var types map[Type]struct{}
	if len(f.Types) > 0 {
		types = make(map[Type]struct{}, len(f.Types))
		for _, t := range f.Types {
			types[t] = struct{}{}
		}
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]Appointment, 0)
	for _, a := range Sorted(items) {
		if types != nil {
			if _, ok := types[a.Type]; !ok {
				continue
			}
		}
		if f.PetID != nil && a.PetID != *f.PetID {
			continue
		}
		if f.From != nil || f.To != nil {
			day, err := time.Parse(dateLayout, a.Date)
			if err != nil {
				continue
			}
			if f.From != nil && day.Before(truncDay(*f.From)) {
				continue
			}
			if f.To != nil && day.After(truncDay(*f.To)) {
				continue
			}
		}
		if q != "" && !strings.Contains(strings.ToLower(a.Notes), q) && !strings.Contains(string(a.Type), q) {
			continue
		}

		out = append(out, a)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out
}

// Upcoming son las citas (ordenadas) que empiezan en now o después, en loc.
func Upcoming(items []Appointment, now time.Time, loc *time.Location) []Appointment {
	out := make([]Appointment, 0)
	for _, a := range Sorted(items) {
		at, ok := a.StartsAt(loc)
		if !ok || at.Before(now) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// View es una cita con el nombre de su mascota. PetMissing marca referencias colgadas.
type View struct {
	Appointment
	PetName    string
	PetMissing bool
}

func Views(items []Appointment, petNames map[int64]string) []View {
	out := make([]View, 0, len(items))
	for _, a := range items {
		name, ok := petNames[a.PetID]
		out = append(out, View{Appointment: a, PetName: name, PetMissing: !ok})
	}
	return out
}

func truncDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
