package appointments

import (
	"strings"
	"time"
)

// Type es el tipo de cita.
// @Enum veterinary-checkup, vaccination, grooming, exercise
type Type string

const (
	TypeVeterinaryCheckup Type = "veterinary-checkup"
	TypeVaccination       Type = "vaccination"
	TypeGrooming          Type = "grooming"
	TypeExercise          Type = "exercise"
)

// Valores que guardaba la versión web (en turco). Se aceptan y se normalizan.
var legacyTypes = map[string]Type{
	"veteriner": TypeVeterinaryCheckup,
	"asi":       TypeVaccination,
	"bakim":     TypeGrooming,
	"egzersiz":  TypeExercise,
}

func (t Type) Valid() bool {
	switch t {
	case TypeVeterinaryCheckup, TypeVaccination, TypeGrooming, TypeExercise:
		return true
	}
	return false
}

// ParseType acepta el valor canónico o el legacy, sin distinguir mayúsculas.
func ParseType(s string) (Type, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if t := Type(s); t.Valid() {
		return t, true
	}
	if t, ok := legacyTypes[s]; ok {
		return t, true
	}
	return "", false
}

func AllTypes() []Type {
	return []Type{TypeVeterinaryCheckup, TypeVaccination, TypeGrooming, TypeExercise}
}

const (
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04"
	timeLayoutSecs = "15:04:05"
)

// Appointment es una cita de una mascota. Los tags JSON son el formato
// persistido bajo la key "appointments".
type Appointment struct {
	ID    int64  `json:"id"`
	PetID int64  `json:"petId"`
	Date  string `json:"date"` // YYYY-MM-DD
	Time  string `json:"time"` // HH:MM
	Type  Type   `json:"type"`
	Notes string `json:"notes"`
}

// StartsAt combina fecha y hora en loc. ok=false si alguno no parsea
// (datos editados a mano o de versiones viejas).
func (a Appointment) StartsAt(loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	d, err := time.ParseInLocation(dateLayout, a.Date, loc)
	if err != nil {
		return time.Time{}, false
	}
	clock, ok := parseClock(a.Time)
	if !ok {
		return time.Time{}, false
	}
	return d.Add(clock), true
}

func parseClock(s string) (time.Duration, bool) {
	s = strings.TrimSpace(s)
	var (
		t   time.Time
		err error
	)
	if t, err = time.Parse(timeLayout, s); err != nil {
		if t, err = time.Parse(timeLayoutSecs, s); err != nil {
			return 0, false
		}
	}
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second, true
}
