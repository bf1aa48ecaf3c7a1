package repository

import (
	"context"

	"github.com/jhoicas/Facturas-api/internal/domain/entity"
)

// RevenueRepository define el puerto de lectura de la tabla de ingresos mensuales.
type RevenueRepository interface {
	All(ctx context.Context) ([]*entity.Revenue, error)
}
