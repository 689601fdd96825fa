package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ggem_backend/internals/configs"
	curriculumModel "ggem_backend/internals/features/academy/curriculum/model"
	evaluationModel "ggem_backend/internals/features/academy/evaluations/model"
	instructorModel "ggem_backend/internals/features/academy/instructors/model"
	instrumentModel "ggem_backend/internals/features/academy/instruments/model"
	sessionModel "ggem_backend/internals/features/academy/sessions/model"
	studentModel "ggem_backend/internals/features/academy/students/model"
	theoryModel "ggem_backend/internals/features/academy/theory/model"
	authModel "ggem_backend/internals/features/users/auth/model"
	userModel "ggem_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() *gorm.DB {
	log.Println("🔌 Conectando ao PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=ggem&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // compatível com PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no banco: %v", err)
	}
	DB = db
	log.Println("✅ Banco conectado.")
	return db
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate sincroniza o schema com os models registrados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.UserModel{},
		&authModel.RefreshTokenModel{},
		&authModel.TokenBlacklistModel{},
		&instrumentModel.InstrumentoModel{},
		&instructorModel.InstrutorModel{},
		&studentModel.AlunoModel{},
		&theoryModel.FaseTeoricaModel{},
		&theoryModel.ConteudoFaseModel{},
		&sessionModel.AulaColetivaModel{},
		&sessionModel.PresencaModel{},
		&evaluationModel.AvaliacaoModel{},
		&curriculumModel.ProgramaMinimoModel{},
		&curriculumModel.ItemProgramaModel{},
	)
}

func WarmUp(db *gorm.DB) {
	// ping leve para encher o pool antes do primeiro request
	go func() {
		time.Sleep(500 * time.Millisecond)
		sqlDB, err := db.DB()
		if err != nil {
			log.Printf("warm-up err: %v", err)
			return
		}
		if err := sqlDB.Ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}
