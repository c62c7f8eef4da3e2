package health

import (
	"slices"
	"time"
)

// Latest es el registro de fecha máxima de la mascota. Fechas inválidas pierden contra
// cualquier fecha válida; con fechas iguales gana el primero guardado.
func Latest(records []HealthRecord, petID int64) (HealthRecord, bool) {
	var (
		best   HealthRecord
		bestAt time.Time
		bestOK bool
		found  bool
	)
	for _, r := range records {
		if r.PetID != petID {
			continue
		}
		at, err := time.Parse(dateLayout, r.Date)
		ok := err == nil
		switch {
		case !found:
		case ok && !bestOK:
		case ok && at.After(bestAt):
		default:
			continue
		}
		best, bestAt, bestOK, found = r, at, ok, true
	}
	return best, found
}

// History son los registros de la mascota, el día más reciente primero (estable).
func History(records []HealthRecord, petID int64) []HealthRecord {
	type keyed struct {
		r  HealthRecord
		at time.Time
		ok bool
	}

	tmp := make([]keyed, 0)
	for _, r := range records {
		if r.PetID != petID {
			continue
		}
		at, err := time.Parse(dateLayout, r.Date)
		tmp = append(tmp, keyed{r: r, at: at, ok: err == nil})
	}

	slices.SortStableFunc(tmp, func(x, y keyed) int {
		switch {
		case x.ok && y.ok:
			return y.at.Compare(x.at)
		case x.ok:
			return -1
		case y.ok:
			return 1
		default:
			return 0
		}
	})

	out := make([]HealthRecord, len(tmp))
	for i := range tmp {
		out[i] = tmp[i].r
	}
	return out
}

// OverallOf clasifica el último registro de cada mascota: gana el peor estado
// (critical > sick > recovering > el resto). Mascotas sin registros no cuentan;
// registros de mascotas que no están en petIDs tampoco.
func OverallOf(petIDs []int64, records []HealthRecord) Overall {
	counts := map[Status]int{}
	total := 0
	for _, id := range petIDs {
		r, ok := Latest(records, id)
		if !ok {
			continue
		}
		counts[r.Status]++
		total++
	}

	switch {
	case total == 0:
		return OverallNoData
	case counts[StatusCritical] > 0:
		return OverallCritical
	case counts[StatusSick] > 0:
		return OverallAttention
	case counts[StatusRecovering] > 0:
		return OverallRecovering
	default:
		return OverallGood
	}
}
