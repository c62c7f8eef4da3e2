package health

// Status es el estado de salud registrado.
// @Enum healthy, sick, recovering, critical
type Status string

const (
	StatusHealthy    Status = "healthy"
	StatusSick       Status = "sick"
	StatusRecovering Status = "recovering"
	StatusCritical   Status = "critical"
)

func (s Status) Valid() bool {
	switch s {
	case StatusHealthy, StatusSick, StatusRecovering, StatusCritical:
		return true
	}
	return false
}

// TypeCheckup es el único tipo que escribe la UI.
const TypeCheckup = "checkup"

const dateLayout = "2006-01-02"

// HealthRecord es una foto diaria de la salud de una mascota: a lo sumo una por (petId, date).
// Los tags JSON son el formato persistido bajo la key "healthRecords".
type HealthRecord struct {
	ID          int64   `json:"id"`
	PetID       int64   `json:"petId"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Type        string  `json:"type"`
	Status      Status  `json:"status"`
	Temperature float64 `json:"temperature"` // °C
	Weight      float64 `json:"weight"`      // kg
	Notes       string  `json:"notes"`
}

// Overall es la clasificación agregada del dashboard.
type Overall string

const (
	OverallNoData     Overall = "NoData"
	OverallGood       Overall = "Good"
	OverallRecovering Overall = "Recovering"
	OverallAttention  Overall = "Attention"
	OverallCritical   Overall = "Critical"
)

// Tone es el color de la tarjeta de resumen en la UI.
func (o Overall) Tone() string {
	switch o {
	case OverallGood:
		return "emerald"
	case OverallRecovering:
		return "yellow"
	case OverallAttention:
		return "orange"
	case OverallCritical:
		return "red"
	default:
		return "gray"
	}
}
