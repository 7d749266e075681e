// seed crea la cuenta admin por defecto si no existe.
//
// Uso: go run ./cmd/seed
// Lee ADMIN_EMAIL y ADMIN_PASSWORD de la configuración; sin password no hace nada.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/eventos-api/internal/domain/entity"
	"github.com/tu-usuario/eventos-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/eventos-api/pkg/config"
	"github.com/tu-usuario/eventos-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Service: cfg.App.Name + "-seed", Env: cfg.App.Env, Level: "info"})

	if cfg.Admin.Password == "" {
		log.Fatal().Msg("ADMIN_PASSWORD no está definido, no se crea la cuenta admin")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)

	existing, err := userRepo.FindByEmail(cfg.Admin.Email)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar cuenta admin")
	}
	if existing != nil {
		log.Info().Str("email", cfg.Admin.Email).Msg("la cuenta admin ya existe")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password")
	}

	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Name:         "Administrador",
		Email:        cfg.Admin.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(admin); err != nil {
		log.Fatal().Err(err).Msg("crear cuenta admin")
	}

	log.Info().Str("email", admin.Email).Msg("cuenta admin creada")
}
