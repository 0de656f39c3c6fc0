package authservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jmorillo/sanrifa/internal/audit"
	"github.com/jmorillo/sanrifa/internal/domain"
	"github.com/jmorillo/sanrifa/pkg/auth"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.Usuario, error)
	FindByID(ctx context.Context, id int) (*domain.Usuario, error)
	Create(ctx context.Context, usuario *domain.Usuario) (*domain.Usuario, error)
	Update(ctx context.Context, usuario *domain.Usuario) error
}

// Límite de intentos de login antes del bloqueo temporal.
const (
	maxIntentosFallidos = 5
	duracionBloqueo     = 15 * time.Minute
	duracionToken       = 24 * time.Hour
)

type Service struct {
	usuarioRepo Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	registrador audit.Registrador
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, registrador audit.Registrador) *Service {
	return &Service{
		usuarioRepo: repo,
		hashService: hashService,
		jwtService:  jwtService,
		registrador: registrador,
	}
}

func (s *Service) Register(ctx context.Context, usuario *domain.Usuario, password string) (*domain.Usuario, error) {
	existente, err := s.usuarioRepo.FindByEmail(ctx, usuario.Email)
	if err != nil {
		zap.L().Error("can't find usuario", zap.Error(err))
		return nil, err
	}
	if existente != nil {
		zap.L().Info("email already registered", zap.String("email", usuario.Email))
		return nil, domain.ErrEmailRegistrado
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}
	usuario.PasswordHash = hashedPassword
	if usuario.Rol == "" {
		usuario.Rol = domain.RolParticipante
	}
	usuario.Activo = true

	nuevo, err := s.usuarioRepo.Create(ctx, usuario)
	if err != nil {
		zap.L().Error("can't create usuario", zap.Error(err))
		return nil, err
	}

	s.registrador.Registrar(ctx, domain.RegistroSistema{
		UsuarioID:   &nuevo.ID,
		Accion:      "usuario_registrado",
		Descripcion: "alta de cuenta",
	})
	zap.L().Info("usuario successfully registered", zap.String("email", usuario.Email))
	return nuevo, nil
}

// Authenticate valida credenciales contando los fallos consecutivos. Al
// quinto fallo la cuenta queda bloqueada 15 minutos; un login correcto
// reinicia el contador.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.Usuario, error) {
	usuario, err := s.usuarioRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find usuario", zap.Error(err))
		return nil, err
	}
	if usuario == nil || !usuario.Activo {
		return nil, domain.ErrCredencialesInvalidas
	}

	if usuario.BloqueadoHasta != nil && usuario.BloqueadoHasta.After(time.Now()) {
		return nil, domain.ErrUsuarioBloqueado
	}

	if ok := s.hashService.ComparePassword(usuario.PasswordHash, password); !ok {
		usuario.IntentosFallidos++
		if usuario.IntentosFallidos >= maxIntentosFallidos {
			hasta := time.Now().Add(duracionBloqueo)
			usuario.BloqueadoHasta = &hasta
			usuario.IntentosFallidos = 0
			s.registrador.Registrar(ctx, domain.RegistroSistema{
				UsuarioID:   &usuario.ID,
				Accion:      "usuario_bloqueado",
				Nivel:       domain.NivelAlerta,
				Descripcion: "bloqueo temporal por intentos fallidos",
			})
		}
		if err := s.usuarioRepo.Update(ctx, usuario); err != nil {
			zap.L().Error("can't record failed attempt", zap.Error(err))
		}
		if usuario.BloqueadoHasta != nil && usuario.BloqueadoHasta.After(time.Now()) {
			return nil, domain.ErrUsuarioBloqueado
		}
		return nil, domain.ErrCredencialesInvalidas
	}

	if usuario.IntentosFallidos > 0 || usuario.BloqueadoHasta != nil {
		usuario.IntentosFallidos = 0
		usuario.BloqueadoHasta = nil
		if err := s.usuarioRepo.Update(ctx, usuario); err != nil {
			zap.L().Error("can't reset failed attempts", zap.Error(err))
		}
	}

	zap.L().Info("usuario successfully authenticated", zap.String("email", email))
	return usuario, nil
}

func (s *Service) GenerateToken(userID int, rol string) (string, error) {
	expirationTime := time.Now().Add(duracionToken)

	token, err := s.jwtService.GenerateJWT(userID, rol, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) GetUsuario(ctx context.Context, id int) (*domain.Usuario, error) {
	usuario, err := s.usuarioRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find usuario by id", zap.Error(err))
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrRecursoNoEncontrado
	}
	return usuario, nil
}
