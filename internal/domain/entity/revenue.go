package entity

// Revenue muestra mensual de ingresos para el gráfico del dashboard (solo lectura).
type Revenue struct {
	Month   string // etiqueta del mes, ej. "Jan"
	Revenue int64
}
