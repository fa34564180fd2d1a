package domain

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleAbogado UserRole = "abogado"
)

type Priority string

const (
	PriorityCritica Priority = "Critica"
	PriorityAlta    Priority = "Alta"
	PriorityMedia   Priority = "Media"
	PriorityBaja    Priority = "Baja"
)

// priorityRank defines the fixed total order used for sorting:
// Critica < Alta < Media < Baja.
var priorityRank = map[Priority]int{
	PriorityCritica: 0,
	PriorityAlta:    1,
	PriorityMedia:   2,
	PriorityBaja:    3,
}

// Rank returns the sort position of p. Unknown priorities sort last.
func (p Priority) Rank() int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return len(priorityRank)
}

// AllPriorities lists priorities in rank order.
var AllPriorities = []Priority{PriorityCritica, PriorityAlta, PriorityMedia, PriorityBaja}

type TaskStatus string

const (
	TaskPendiente  TaskStatus = "Pendiente"
	TaskEnProgreso TaskStatus = "En Progreso"
	TaskCompletada TaskStatus = "Completada"
	TaskVencida    TaskStatus = "Vencida"
)

var AllTaskStatuses = []TaskStatus{TaskPendiente, TaskEnProgreso, TaskCompletada, TaskVencida}

type ProjectStatus string

const (
	ProjectActivo     ProjectStatus = "Activo"
	ProjectEnEspera   ProjectStatus = "En Espera"
	ProjectCompletado ProjectStatus = "Completado"
)

var AllProjectStatuses = []ProjectStatus{ProjectActivo, ProjectEnEspera, ProjectCompletado}

// Division is the top-level practice area of the firm.
type Division string

const (
	DivisionFiscal      Division = "Fiscal"
	DivisionCorporativo Division = "Corporativo"
)

// Category is the subcategory beneath a division.
type Category string

const (
	CategoryLitigioFiscal     Category = "Litigio Fiscal"
	CategoryConsultoriaFiscal Category = "Consultoria Fiscal"
	CategoryProcedimientosAdm Category = "Procedimientos Administrativos"
	CategoryMaterialidad      Category = "Materialidad"
	CategorySocietario        Category = "Societario"
	CategoryContractual       Category = "Contractual"
)

var divisionByCategory = map[Category]Division{
	CategoryLitigioFiscal:     DivisionFiscal,
	CategoryConsultoriaFiscal: DivisionFiscal,
	CategoryProcedimientosAdm: DivisionFiscal,
	CategoryMaterialidad:      DivisionFiscal,
	CategorySocietario:        DivisionCorporativo,
	CategoryContractual:       DivisionCorporativo,
}

// DivisionOf maps a category to its division. Unknown categories map to Fiscal,
// the firm's default practice.
func DivisionOf(c Category) Division {
	if d, ok := divisionByCategory[c]; ok {
		return d
	}
	return DivisionFiscal
}

// AllCategories lists categories grouped by division, Fiscal first.
var AllCategories = []Category{
	CategoryLitigioFiscal,
	CategoryConsultoriaFiscal,
	CategoryProcedimientosAdm,
	CategoryMaterialidad,
	CategorySocietario,
	CategoryContractual,
}

type NotificationType string

const (
	NotificationVencimiento  NotificationType = "vencimiento"
	NotificationAsignacion   NotificationType = "asignacion"
	NotificationRecordatorio NotificationType = "recordatorio"
)
