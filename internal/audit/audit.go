// Package audit define el puerto de bitácora que los servicios invocan tras
// cada transición de estado. Se inyecta explícitamente en lugar de un
// registrador global alcanzable desde cualquier parte.
package audit

import (
	"context"

	"go.uber.org/zap"

	"github.com/jmorillo/sanrifa/internal/domain"
)

type Registrador interface {
	Registrar(ctx context.Context, registro domain.RegistroSistema)
}

type Repo interface {
	Save(ctx context.Context, registro *domain.RegistroSistema) error
}

// Bitacora persiste registros de forma síncrona. Un fallo de bitácora se
// informa pero no revierte la operación de negocio ya confirmada.
type Bitacora struct {
	repo Repo
}

func New(repo Repo) *Bitacora {
	return &Bitacora{repo: repo}
}

func (b *Bitacora) Registrar(ctx context.Context, registro domain.RegistroSistema) {
	if registro.Nivel == "" {
		registro.Nivel = domain.NivelInfo
	}
	if err := b.repo.Save(ctx, &registro); err != nil {
		zap.L().Error("can't write audit registro",
			zap.String("accion", registro.Accion), zap.Error(err))
	}
}

// Nop descarta registros; útil en pruebas.
type Nop struct{}

func (Nop) Registrar(ctx context.Context, registro domain.RegistroSistema) {}
