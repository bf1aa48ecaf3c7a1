// Package format agrupa utilidades puras de presentación: moneda, fechas,
// etiquetas del eje Y del gráfico de ingresos y paginación con elipsis.
// Sin estado; los montos siempre entran en centavos (unidad menor).
package format

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Ellipsis marcador de páginas omitidas en la secuencia de paginación.
const Ellipsis = "..."

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency formatea centavos como moneda en-US con dos decimales: 150000 -> "$1,500.00".
// Trabaja con aritmética entera; nunca pasa por float.
func Currency(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	// %d pasa por el printer en-US, que agrega separadores de miles.
	return printer.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// DateToLocal formatea una fecha al estilo en-US corto: "Oct 4, 2023".
func DateToLocal(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// YAxis genera las etiquetas del eje Y del gráfico de ingresos y el tope del eje.
// El tope es el máximo redondeado hacia arriba al siguiente múltiplo de $1000 y
// las etiquetas bajan de a $1000 hasta $0K: ["$3K", "$2K", "$1K", "$0K"].
func YAxis(revenues []int64) (labels []string, topLabel int64) {
	var max int64
	for _, r := range revenues {
		if r > max {
			max = r
		}
	}
	topLabel = ((max + 999) / 1000) * 1000
	for i := topLabel; i >= 0; i -= 1000 {
		labels = append(labels, fmt.Sprintf("$%dK", i/1000))
	}
	return labels, topLabel
}

// Pagination devuelve la secuencia de páginas a mostrar, con Ellipsis donde se
// omiten rangos. Reglas:
//   - 7 páginas o menos: todas.
//   - página actual en las 3 primeras: 1 2 3 ... n-1 n
//   - página actual en las 3 últimas:  1 2 ... n-2 n-1 n
//   - en el medio: 1 ... p-1 p p+1 ... n
func Pagination(current, total int) []string {
	if total <= 7 {
		seq := make([]string, 0, total)
		for i := 1; i <= total; i++ {
			seq = append(seq, strconv.Itoa(i))
		}
		return seq
	}

	if current <= 3 {
		return []string{"1", "2", "3", Ellipsis, strconv.Itoa(total - 1), strconv.Itoa(total)}
	}

	if current >= total-2 {
		return []string{"1", "2", Ellipsis, strconv.Itoa(total - 2), strconv.Itoa(total - 1), strconv.Itoa(total)}
	}

	return []string{
		"1", Ellipsis,
		strconv.Itoa(current - 1), strconv.Itoa(current), strconv.Itoa(current + 1),
		Ellipsis, strconv.Itoa(total),
	}
}
