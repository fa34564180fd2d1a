// Package seed loads the demo dataset for Lopez Garcia Cano Abogados. The
// application starts from this data on every run; nothing persists between
// sessions.
package seed

import (
	"context"
	"fmt"

	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
	"github.com/DiegoRozo23/lexpro-abogados/internal/repository"
)

// Stores groups the repositories the demo dataset is written through.
type Stores struct {
	Users         repository.UserRepo
	Clients       repository.ClientRepo
	Projects      repository.ProjectRepo
	Tasks         repository.TaskRepo
	TimeEntries   repository.TimeEntryRepo
	Notifications repository.NotificationRepo
}

// Demo populates the stores with the firm's demo dataset: the partner
// directory, six clients, ten matters, their tasks, logged hours and the
// notification inbox.
func Demo(ctx context.Context, s Stores) error {
	for _, u := range demoUsers() {
		if err := s.Users.Create(ctx, u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
	}
	for _, c := range demoClients() {
		if err := s.Clients.Create(ctx, c); err != nil {
			return fmt.Errorf("seed client %s: %w", c.ID, err)
		}
	}
	for _, p := range demoProjects() {
		if err := s.Projects.Create(ctx, p); err != nil {
			return fmt.Errorf("seed project %s: %w", p.ID, err)
		}
	}
	for _, t := range demoTasks() {
		if err := s.Tasks.Create(ctx, t); err != nil {
			return fmt.Errorf("seed task %s: %w", t.ID, err)
		}
	}
	for _, te := range demoTimeEntries() {
		if err := s.TimeEntries.Create(ctx, te); err != nil {
			return fmt.Errorf("seed time entry %s: %w", te.ID, err)
		}
	}
	for _, n := range demoNotifications() {
		if err := s.Notifications.Create(ctx, n); err != nil {
			return fmt.Errorf("seed notification %s: %w", n.ID, err)
		}
	}
	return nil
}

func demoUsers() []*domain.User {
	return []*domain.User{
		{ID: "u1", Name: "Administrador", Email: "juanfernando@lopezgarciacano.com", Role: domain.RoleAdmin, Avatar: "AD"},
		{ID: "u2", Name: "Lic. Andoni Zurita Barrenechea", Email: "andoni@lopezgarciacano.com", Role: domain.RoleAdmin, Avatar: "AZ"},
		{ID: "u3", Name: "Abogado", Email: "arturo@lopezgarciacano.com", Role: domain.RoleAbogado, Avatar: "AB"},
		{ID: "u4", Name: "Lic. Maria Lopez Gutierrez", Email: "maria@lopezgarciacano.com", Role: domain.RoleAbogado, Avatar: "ML"},
		{ID: "u5", Name: "Lic. Fernando Reyes Cantu", Email: "fernando@lopezgarciacano.com", Role: domain.RoleAbogado, Avatar: "FR"},
	}
}

func demoClients() []*domain.Client {
	return []*domain.Client{
		{ID: "c1", Name: "Grupo Industrial del Norte S.A. de C.V.", ContactName: "Ing. Jorge Salinas", Email: "jsalinas@gin.com.mx", Phone: "+52 81 1234 5678", Address: "Av. Lazaro Cardenas 1200, Monterrey, NL", ProjectCount: 3},
		{ID: "c2", Name: "Tecnologias Avanzadas S. de R.L.", ContactName: "Lic. Patricia Morales", Email: "pmorales@tecav.com", Phone: "+52 81 2345 6789", Address: "Blvd. Diaz Ordaz 340, San Pedro, NL", ProjectCount: 2},
		{ID: "c3", Name: "Constructora Regiomontana S.A.", ContactName: "Arq. Miguel Trevino", Email: "mtrevino@conreg.mx", Phone: "+52 81 3456 7890", Address: "Calzada del Valle 500, Monterrey, NL", ProjectCount: 2},
		{ID: "c4", Name: "Alimentos del Pacifico S.A. de C.V.", ContactName: "C.P. Laura Ramirez", Email: "lramirez@alpac.com.mx", Phone: "+52 33 4567 8901", Address: "Av. Americas 1500, Guadalajara, JAL", ProjectCount: 1},
		{ID: "c5", Name: "Distribuidora Mexicana S.A.", ContactName: "Lic. Eduardo Flores", Email: "eflores@dismex.com", Phone: "+52 55 5678 9012", Address: "Paseo de la Reforma 222, CDMX", ProjectCount: 2},
		{ID: "c6", Name: "Farmaceutica Nacional S.A.", ContactName: "Dr. Ricardo Lozano", Email: "rlozano@farmnac.mx", Phone: "+52 81 6789 0123", Address: "Ave. Eugenio Garza Sada 2501, Monterrey, NL", ProjectCount: 1},
	}
}

func demoProjects() []*domain.Project {
	d := domain.MustDate
	return []*domain.Project{
		{
			ID: "p1", Name: "Recurso de Revocacion SAT 2025", ClientID: "c1", ClientName: "Grupo Industrial del Norte",
			Category: domain.CategoryLitigioFiscal, Status: domain.ProjectActivo, Priority: domain.PriorityCritica,
			AssignedTo: []string{"u3", "u4"}, DueDate: d("2026-02-20"), StartDate: d("2025-11-15"),
			Juzgado: "Tribunal Federal de Justicia Administrativa", Expediente: "RF-1234/2025",
			Description: "Recurso de revocacion ante el SAT por diferencias en creditos fiscales del ejercicio 2024.",
			Avance:      "Se presentaron agravios ante la autoridad. En espera de resolucion del recurso. Se integraron todas las pruebas documentales.",
			Progress:    65, Budget: 150000, Team: []string{"u3", "u4", "u2"},
		},
		{
			ID: "p2", Name: "Fusion Corporativa TecAv-SoftMex", ClientID: "c2", ClientName: "Tecnologias Avanzadas",
			Category: domain.CategorySocietario, Status: domain.ProjectActivo, Priority: domain.PriorityCritica,
			AssignedTo: []string{"u3", "u5"}, DueDate: d("2026-04-01"), StartDate: d("2025-12-01"),
			Description: "Proceso de fusion entre Tecnologias Avanzadas y SoftMex. Incluye due diligence y acta constitutiva.",
			Avance:      "Due diligence legal en curso. Se identificaron contingencias laborales menores. Pendiente revision financiera y redaccion de acta de fusion.",
			Progress:    40, Budget: 300000, Team: []string{"u3", "u5", "u1", "u4"},
		},
		{
			ID: "p3", Name: "Juicio Nulidad Multa Ambiental", ClientID: "c3", ClientName: "Constructora Regiomontana",
			Category: domain.CategoryProcedimientosAdm, Status: domain.ProjectActivo, Priority: domain.PriorityAlta,
			AssignedTo: []string{"u4"}, DueDate: d("2026-02-28"), StartDate: d("2026-01-10"),
			Juzgado: "TFJA - Sala Regional Norte", Expediente: "PA-0456/2025",
			Description: "Juicio de nulidad contra multa impuesta por PROFEPA por supuestas violaciones ambientales.",
			Avance:      "Demanda de nulidad presentada. Recopilando pruebas periciales y dictamenes ambientales. Audiencia preliminar programada para marzo.",
			Progress:    25, Budget: 85000, Team: []string{"u4", "u2"},
		},
		{
			ID: "p4", Name: "Consultoria Planeacion Fiscal", ClientID: "c4", ClientName: "Alimentos del Pacifico",
			Category: domain.CategoryConsultoriaFiscal, Status: domain.ProjectActivo, Priority: domain.PriorityMedia,
			AssignedTo: []string{"u5"}, DueDate: d("2026-03-30"), StartDate: d("2026-01-05"),
			Description: "Asesoria en planeacion fiscal y optimizacion de cargas tributarias para el ejercicio 2026.",
			Avance:      "Informe de planeacion fiscal entregado al cliente. Pendiente revision final de estrategias de optimizacion tributaria para cierre de ejercicio.",
			Progress:    80, Budget: 50000, Team: []string{"u5", "u1"},
		},
		{
			ID: "p5", Name: "Contrato Distribucion Nacional", ClientID: "c5", ClientName: "Distribuidora Mexicana",
			Category: domain.CategoryContractual, Status: domain.ProjectActivo, Priority: domain.PriorityAlta,
			AssignedTo: []string{"u3", "u4"}, DueDate: d("2026-03-20"), StartDate: d("2026-01-15"),
			Description: "Elaboracion y revision de contrato marco de distribucion a nivel nacional.",
			Avance:      "Borrador inicial del contrato marco elaborado. En revision de clausulas de exclusividad territorial y penalizaciones. Pendiente negociacion con contraparte.",
			Progress:    45, Budget: 45000, Team: []string{"u3", "u4"},
		},
		{
			ID: "p6", Name: "Revision Materialidad Operaciones", ClientID: "c1", ClientName: "Grupo Industrial del Norte",
			Category: domain.CategoryMaterialidad, Status: domain.ProjectActivo, Priority: domain.PriorityAlta,
			AssignedTo: []string{"u5", "u3"}, DueDate: d("2026-03-15"), StartDate: d("2026-01-20"),
			Description: "Revision y acreditacion de materialidad de operaciones con proveedores ante el SAT.",
			Avance:      "Analisis de CFDIs y contratos con proveedores en proceso. Se estan integrando las carpetas de evidencia documental para acreditar materialidad.",
			Progress:    30, Budget: 95000, Team: []string{"u5", "u3", "u2"},
		},
		{
			ID: "p7", Name: "Restructuracion Societaria", ClientID: "c2", ClientName: "Tecnologias Avanzadas",
			Category: domain.CategorySocietario, Status: domain.ProjectEnEspera, Priority: domain.PriorityMedia,
			AssignedTo: []string{"u5"}, DueDate: d("2026-05-15"), StartDate: d("2026-04-01"),
			Description: "Restructuracion de la sociedad y modificacion de estatutos sociales.",
			Avance:      "Proyecto en espera. Se realizara una vez concluida la fusion corporativa. Sin avance por el momento.",
			Progress:    0, Budget: 60000, Team: []string{"u5"},
		},
		{
			ID: "p8", Name: "Contrato Licencia de Marca", ClientID: "c6", ClientName: "Farmaceutica Nacional",
			Category: domain.CategoryContractual, Status: domain.ProjectActivo, Priority: domain.PriorityBaja,
			AssignedTo: []string{"u4"}, DueDate: d("2026-06-01"), StartDate: d("2026-01-25"),
			Description: "Elaboracion de contrato de licencia de uso de marca para mercados internacionales.",
			Avance:      "Investigacion de regulaciones de propiedad intelectual en mercados objetivo. Se inicio la redaccion del contrato de licencia.",
			Progress:    15, Budget: 35000, Team: []string{"u4", "u1"},
		},
		{
			ID: "p9", Name: "Defensa Credito Fiscal ISR", ClientID: "c1", ClientName: "Grupo Industrial del Norte",
			Category: domain.CategoryLitigioFiscal, Status: domain.ProjectActivo, Priority: domain.PriorityCritica,
			AssignedTo: []string{"u3"}, DueDate: d("2026-02-17"), StartDate: d("2025-10-01"),
			Juzgado: "TFJA - Sala Superior", Expediente: "LF-0789/2025",
			Description: "Defensa ante determinacion de credito fiscal por ISR del ejercicio 2023.",
			Avance:      "Recurso ante Sala Superior en preparacion final. Se presentaron argumentos de fondo y pruebas supervenientes. Fecha limite proxima.",
			Progress:    90, Budget: 220000, Team: []string{"u3", "u4", "u2", "u1"},
		},
		{
			ID: "p10", Name: "Procedimiento PRODECON", ClientID: "c5", ClientName: "Distribuidora Mexicana",
			Category: domain.CategoryProcedimientosAdm, Status: domain.ProjectActivo, Priority: domain.PriorityMedia,
			AssignedTo: []string{"u4", "u5"}, DueDate: d("2026-04-10"), StartDate: d("2026-02-01"),
			Description: "Acuerdo conclusivo ante PRODECON por diferencias en deducciones fiscales.",
			Avance:      "Solicitud de acuerdo conclusivo en preparacion. Recopilando documentacion soporte de deducciones cuestionadas por la autoridad.",
			Progress:    10, Budget: 40000, Team: []string{"u4", "u5"},
		},
	}
}

func demoTasks() []*domain.Task {
	d := domain.MustDate
	return []*domain.Task{
		{
			ID: "t1", Title: "Preparar escrito recurso de revocacion", ProjectID: "p1", ProjectName: "Recurso de Revocacion SAT 2025",
			AssignedTo: "u3", AssignedToName: "Abogado", Priority: domain.PriorityCritica, Status: domain.TaskEnProgreso,
			DueDate:     d("2026-02-15"),
			Description: "Compilar argumentos y redactar recurso de revocacion.", HoursLogged: 12,
			Alerts: []domain.TaskAlert{
				{Date: "2026-02-10", Time: "09:00"},
				{Date: "2026-02-13", Time: "09:00"},
				{Date: "2026-02-15", Time: "08:00"},
			},
			Avance: "Borrador inicial al 80%. Pendiente validar jurisprudencia reciente.",
			ProgressUpdates: []domain.ProgressUpdate{
				{ID: "1", Date: d("2024-02-10"), Content: "Revision inicial del expediente realizada.", Author: "Lic. Arturo"},
			},
		},
		{
			ID: "t2", Title: "Integrar expediente pruebas", ProjectID: "p1", ProjectName: "Recurso de Revocacion SAT 2025",
			AssignedTo: "u4", AssignedToName: "Lic. Maria Lopez", Priority: domain.PriorityAlta, Status: domain.TaskPendiente,
			DueDate:     d("2026-02-18"),
			Description: "Integrar todas las pruebas documentales del expediente.", HoursLogged: 4,
			Alerts: []domain.TaskAlert{
				{Date: "2026-02-13", Time: "09:00"},
				{Date: "2026-02-16", Time: "09:00"},
				{Date: "2026-02-18", Time: "08:00"},
			},
			Avance: "Recopilacion de pruebas iniciada. Faltan documentos del area contable.",
		},
		{
			ID: "t3", Title: "Due Diligence legal y financiero", ProjectID: "p2", ProjectName: "Fusion Corporativa TecAv-SoftMex",
			AssignedTo: "u3", AssignedToName: "Abogado", Priority: domain.PriorityCritica, Status: domain.TaskEnProgreso,
			DueDate:     d("2026-02-22"),
			Description: "Analisis legal y financiero completo de ambas sociedades.", HoursLogged: 24,
			Alerts: []domain.TaskAlert{
				{Date: "2026-02-17", Time: "09:00"},
				{Date: "2026-02-20", Time: "09:00"},
				{Date: "2026-02-22", Time: "08:00"},
			},
			Avance: "Revision de actas de asamblea completa. En espera de estados financieros auditados.",
		},
		{
			ID: "t4", Title: "Redactar acta de fusion", ProjectID: "p2", ProjectName: "Fusion Corporativa TecAv-SoftMex",
			AssignedTo: "u5", AssignedToName: "Fernando Reyes", Priority: domain.PriorityCritica, Status: domain.TaskPendiente,
			DueDate:     d("2026-03-01"),
			Description: "Elaboracion del acta constitutiva de la fusion.",
			Alerts: []domain.TaskAlert{
				{Date: "2026-02-24", Time: "09:00"},
				{Date: "2026-02-27", Time: "10:00"},
			},
		},
		{
			ID: "t5", Title: "Presentar demanda de nulidad", ProjectID: "p3", ProjectName: "Juicio Nulidad Multa Ambiental",
			AssignedTo: "u4", AssignedToName: "Maria Lopez", Priority: domain.PriorityAlta, Status: domain.TaskVencida,
			DueDate:     d("2026-02-10"),
			Description: "Redaccion y presentacion de demanda de nulidad ante TFJA.", HoursLogged: 8,
			Alerts: []domain.TaskAlert{
				{Date: "2026-02-05", Time: "09:00"},
				{Date: "2026-02-08", Time: "09:00"},
				{Date: "2026-02-10", Time: "08:00"},
			},
		},
		{
			ID: "t6", Title: "Recopilar pruebas periciales", ProjectID: "p3", ProjectName: "Juicio Nulidad Multa Ambiental",
			AssignedTo: "u4", AssignedToName: "Maria Lopez", Priority: domain.PriorityAlta, Status: domain.TaskEnProgreso,
			DueDate:     d("2026-02-25"),
			Description: "Recopilar dictamenes periciales y evidencia documental.", HoursLogged: 6,
			Alerts: []domain.TaskAlert{
				{Date: "2026-02-20", Time: "09:00"},
				{Date: "2026-02-23", Time: "10:00"},
			},
		},
		{
			ID: "t7", Title: "Informe de planeacion fiscal", ProjectID: "p4", ProjectName: "Consultoria Planeacion Fiscal",
			AssignedTo: "u5", AssignedToName: "Fernando Reyes", Priority: domain.PriorityMedia, Status: domain.TaskCompletada,
			DueDate:     d("2026-02-28"),
			Description: "Elaborar informe final de planeacion fiscal 2026.", HoursLogged: 10,
			Alerts: []domain.TaskAlert{{Date: "2026-02-23", Time: "09:00"}},
		},
		{
			ID: "t8", Title: "Revision clausulas contractuales", ProjectID: "p5", ProjectName: "Contrato Distribucion Nacional",
			AssignedTo: "u3", AssignedToName: "Arturo Flores", Priority: domain.PriorityAlta, Status: domain.TaskPendiente,
			DueDate:     d("2026-02-20"),
			Description: "Revisar y negociar clausulas clave del contrato marco.", HoursLogged: 3,
			Alerts: []domain.TaskAlert{
				{Date: "2026-02-15", Time: "09:00"},
				{Date: "2026-02-18", Time: "09:00"},
				{Date: "2026-02-20", Time: "08:00"},
			},
		},
		{
			ID: "t9", Title: "Recurso ante Sala Superior", ProjectID: "p9", ProjectName: "Defensa Credito Fiscal ISR",
			AssignedTo: "u3", AssignedToName: "Arturo Flores", Priority: domain.PriorityCritica, Status: domain.TaskEnProgreso,
			DueDate:     d("2026-02-17"),
			Description: "Presentar recurso ante la Sala Superior del TFJA.", HoursLogged: 18,
			Alerts: []domain.TaskAlert{
				{Date: "2026-02-12", Time: "09:00"},
				{Date: "2026-02-15", Time: "09:00"},
				{Date: "2026-02-17", Time: "08:00"},
			},
		},
		{
			ID: "t10", Title: "Audiencia preliminar TFJA", ProjectID: "p3", ProjectName: "Juicio Nulidad Multa Ambiental",
			AssignedTo: "u4", AssignedToName: "Maria Lopez", Priority: domain.PriorityAlta, Status: domain.TaskPendiente,
			DueDate:     d("2026-03-05"),
			Description: "Preparar y asistir a audiencia en TFJA.", HoursLogged: 2,
			Alerts: []domain.TaskAlert{
				{Date: "2026-02-28", Time: "09:00"},
				{Date: "2026-03-03", Time: "09:00"},
				{Date: "2026-03-05", Time: "07:00"},
			},
		},
		{
			ID: "t11", Title: "Preparar documentacion materialidad", ProjectID: "p6", ProjectName: "Revision Materialidad Operaciones",
			AssignedTo: "u5", AssignedToName: "Fernando Reyes", Priority: domain.PriorityAlta, Status: domain.TaskPendiente,
			DueDate:     d("2026-02-28"),
			Description: "Integrar documentacion para acreditar materialidad ante el SAT.",
			Alerts: []domain.TaskAlert{
				{Date: "2026-02-23", Time: "09:00"},
				{Date: "2026-02-26", Time: "10:00"},
			},
		},
		{
			ID: "t12", Title: "Capacitacion personal", ProjectID: "p7", ProjectName: "Implementacion Compliance Penal",
			AssignedTo: "u4", AssignedToName: "Maria Lopez", Priority: domain.PriorityBaja, Status: domain.TaskEnProgreso,
			DueDate:     d("2026-03-10"),
			Description: "Impartir curso de capacitacion sobre prevencion de lavado de dinero.", HoursLogged: 5,
		},
		{
			ID: "t13", Title: "Registro marca", ProjectID: "p8", ProjectName: "Registro Marca Internacional",
			AssignedTo: "u5", AssignedToName: "Fernando Reyes", Priority: domain.PriorityMedia, Status: domain.TaskPendiente,
			DueDate:     d("2026-03-15"),
			Description: "Presentar solicitud de registro de marca ante el IMPI.", HoursLogged: 1,
		},
		{
			ID: "t14", Title: "Contestacion requerimiento", ProjectID: "p3", ProjectName: "Juicio Nulidad Multa Ambiental",
			AssignedTo: "u3", AssignedToName: "Arturo Flores", Priority: domain.PriorityAlta, Status: domain.TaskEnProgreso,
			DueDate:     d("2026-02-20"),
			Description: "Contestar requerimiento de informacion de la autoridad ambiental.", HoursLogged: 4,
			Alerts: []domain.TaskAlert{{Date: "2026-02-18", Time: "09:00"}},
		},
	}
}

func demoTimeEntries() []*domain.TimeEntry {
	d := domain.MustDate
	return []*domain.TimeEntry{
		{ID: "te1", TaskID: "t1", TaskTitle: "Preparar escrito recurso de revocacion", ProjectName: "Recurso de Revocacion SAT 2025", UserID: "u3", UserName: "Arturo Flores", Date: d("2026-02-12"), Hours: 4, Billable: true, Description: "Compilacion de argumentos legales."},
		{ID: "te2", TaskID: "t1", TaskTitle: "Preparar escrito recurso de revocacion", ProjectName: "Recurso de Revocacion SAT 2025", UserID: "u3", UserName: "Arturo Flores", Date: d("2026-02-11"), Hours: 3.5, Billable: true, Description: "Revision de jurisprudencia aplicable."},
		{ID: "te3", TaskID: "t3", TaskTitle: "Due Diligence legal y financiero", ProjectName: "Fusion Corporativa TecAv-SoftMex", UserID: "u3", UserName: "Arturo Flores", Date: d("2026-02-12"), Hours: 6, Billable: true, Description: "Analisis de estados financieros y contratos."},
		{ID: "te4", TaskID: "t5", TaskTitle: "Presentar demanda de nulidad", ProjectName: "Juicio Nulidad Multa Ambiental", UserID: "u4", UserName: "Maria Lopez", Date: d("2026-02-10"), Hours: 5, Billable: true, Description: "Redaccion de demanda de nulidad."},
		{ID: "te5", TaskID: "t6", TaskTitle: "Recopilar pruebas periciales", ProjectName: "Juicio Nulidad Multa Ambiental", UserID: "u4", UserName: "Maria Lopez", Date: d("2026-02-12"), Hours: 3, Billable: true, Description: "Organizacion de pruebas periciales."},
		{ID: "te6", TaskID: "t9", TaskTitle: "Recurso ante Sala Superior", ProjectName: "Defensa Credito Fiscal ISR", UserID: "u3", UserName: "Arturo Flores", Date: d("2026-02-13"), Hours: 5, Billable: true, Description: "Preparacion de recurso legal."},
		{ID: "te7", TaskID: "t7", TaskTitle: "Informe de planeacion fiscal", ProjectName: "Consultoria Planeacion Fiscal", UserID: "u5", UserName: "Fernando Reyes", Date: d("2026-02-11"), Hours: 4, Billable: true, Description: "Redaccion del informe de planeacion."},
		{ID: "te8", TaskID: "t8", TaskTitle: "Revision clausulas contractuales", ProjectName: "Contrato Distribucion Nacional", UserID: "u3", UserName: "Arturo Flores", Date: d("2026-02-10"), Hours: 2, Billable: false, Description: "Reunion interna de revision."},
		{ID: "te9", TaskID: "t12", TaskTitle: "Redactar contrato de licencia", ProjectName: "Contrato Licencia de Marca", UserID: "u4", UserName: "Maria Lopez", Date: d("2026-02-13"), Hours: 2.5, Billable: true, Description: "Preparacion de documentos de licencia."},
		{ID: "te10", TaskID: "t4", TaskTitle: "Redactar acta de fusion", ProjectName: "Fusion Corporativa TecAv-SoftMex", UserID: "u5", UserName: "Fernando Reyes", Date: d("2026-02-12"), Hours: 3, Billable: true, Description: "Investigacion de actas similares."},
		{ID: "te11", TaskID: "t14", TaskTitle: "Analisis operaciones con proveedores", ProjectName: "Revision Materialidad Operaciones", UserID: "u3", UserName: "Arturo Flores", Date: d("2026-02-13"), Hours: 3.5, Billable: true, Description: "Revision de CFDIs y contratos."},
		{ID: "te12", TaskID: "t11", TaskTitle: "Preparar documentacion materialidad", ProjectName: "Revision Materialidad Operaciones", UserID: "u5", UserName: "Fernando Reyes", Date: d("2026-02-13"), Hours: 2, Billable: true, Description: "Integracion de expediente."},
	}
}

func demoNotifications() []*domain.Notification {
	d := domain.MustDate
	return []*domain.Notification{
		{ID: "n1", Type: domain.NotificationVencimiento, Title: "Tarea Vencida", Message: "Demanda de nulidad - Juicio Multa Ambiental ha vencido.", Date: d("2026-02-10"), TargetRole: domain.RoleAdmin, LinkTo: "tareas"},
		{ID: "n2", Type: domain.NotificationVencimiento, Title: "Vence en 2 dias", Message: "Recurso de revocacion SAT - Grupo Industrial vence el 15 Feb.", Date: d("2026-02-13"), LinkTo: "proyectos"},
		{ID: "n3", Type: domain.NotificationVencimiento, Title: "Vence en 4 dias", Message: "Recurso Sala Superior - Defensa Credito Fiscal vence el 17 Feb.", Date: d("2026-02-13"), LinkTo: "proyectos"},
		{ID: "n4", Type: domain.NotificationAsignacion, Title: "Nueva Tarea Asignada", Message: "Se te ha asignado: Revision clausulas contractuales.", Date: d("2026-02-12"), Read: true, TargetRole: domain.RoleAbogado, LinkTo: "tareas"},
		{ID: "n5", Type: domain.NotificationRecordatorio, Title: "Recordatorio Semanal", Message: "Tienes 7 tareas pendientes esta semana.", Date: d("2026-02-10"), Read: true, TargetRole: domain.RoleAbogado, LinkTo: "dashboard"},
		{ID: "n6", Type: domain.NotificationRecordatorio, Title: "Documentacion Entregada", Message: "Farmaceutica Nacional ha entregado los contratos firmados del proyecto #P-2024-001.", Date: d("2026-02-14"), TargetRole: domain.RoleAdmin, LinkTo: "documentos"},
		{ID: "n7", Type: domain.NotificationAsignacion, Title: "Revision de Horas", Message: "Favor de revisar las horas registradas por el equipo esta semana.", Date: d("2026-02-14"), TargetRole: domain.RoleAdmin, LinkTo: "tiempos"},
	}
}
