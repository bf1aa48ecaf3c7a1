package format_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Facturas-api/pkg/format"
)

func TestCurrency_FormateaCentavosConSeparadores(t *testing.T) {
	assert.Equal(t, "$1,500.00", format.Currency(150000))
	assert.Equal(t, "$0.00", format.Currency(0))
	assert.Equal(t, "$0.05", format.Currency(5))
	assert.Equal(t, "$12.34", format.Currency(1234))
	assert.Equal(t, "$1,234,567.89", format.Currency(123456789))
}

func TestCurrency_Negativos(t *testing.T) {
	assert.Equal(t, "-$1,500.00", format.Currency(-150000))
}

func TestDateToLocal(t *testing.T) {
	d := time.Date(2023, time.October, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Oct 4, 2023", format.DateToLocal(d))
}

func TestYAxis_TopeRedondeadoAlSiguienteMil(t *testing.T) {
	labels, top := format.YAxis([]int64{2000, 1800, 3200})
	assert.Equal(t, int64(4000), top)
	assert.Equal(t, []string{"$4K", "$3K", "$2K", "$1K", "$0K"}, labels)
}

func TestYAxis_SinDatos(t *testing.T) {
	labels, top := format.YAxis(nil)
	assert.Equal(t, int64(0), top)
	assert.Equal(t, []string{"$0K"}, labels)
}

func TestPagination_PocasPaginas(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, format.Pagination(2, 5))
}

func TestPagination_InicioConElipsis(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3", "...", "9", "10"}, format.Pagination(2, 10))
}

func TestPagination_FinalConElipsis(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "...", "8", "9", "10"}, format.Pagination(9, 10))
}

func TestPagination_MedioConDobleElipsis(t *testing.T) {
	assert.Equal(t, []string{"1", "...", "4", "5", "6", "...", "10"}, format.Pagination(5, 10))
}
