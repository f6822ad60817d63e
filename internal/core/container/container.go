package container

import (
	"database/sql"

	auditLogRepo "github.com/muhryhan/be-aset-dlh/internal/auditlog"
	"github.com/muhryhan/be-aset-dlh/internal/config"
	"github.com/muhryhan/be-aset-dlh/internal/dashboard"
	"github.com/muhryhan/be-aset-dlh/internal/inventory/categories"
	"github.com/muhryhan/be-aset-dlh/internal/inventory/registry"
	"github.com/muhryhan/be-aset-dlh/internal/media"
	"github.com/muhryhan/be-aset-dlh/internal/repository"
	"github.com/muhryhan/be-aset-dlh/internal/scan"
	"github.com/muhryhan/be-aset-dlh/internal/servicing"
	"github.com/muhryhan/be-aset-dlh/internal/users"
	"github.com/muhryhan/be-aset-dlh/pkg/auditlog"
	"github.com/muhryhan/be-aset-dlh/pkg/models"
	"github.com/muhryhan/be-aset-dlh/pkg/security"

	"go.uber.org/zap"
)

// Container wires every repository and handler once at startup. Handlers
// only see each other through this struct, which keeps the registration
// order in routes trivial.
type Container struct {
	Repository      *repository.Repository
	AuditLog        *auditlog.Auditlog
	Media           *media.Store
	LoginHandler    *security.LoginHandler
	UserHandler     *users.UsersHandler
	AuditLogHandler *auditLogRepo.Handler

	Kendaraan     *registry.Handler[models.Kendaraan]
	AlatBerat     *registry.Handler[models.AlatBerat]
	AlatKerja     *registry.Handler[models.AlatKerja]
	AC            *registry.Handler[models.AC]
	Tanah         *registry.Handler[models.Tanah]
	Tanaman       *registry.Handler[models.Tanaman]
	TanamanMasuk  *registry.Handler[models.TanamanMasuk]
	TanamanKeluar *registry.Handler[models.TanamanKeluar]

	SerberKendaraan *registry.Handler[models.SerberKendaraan]
	SerberAlatBerat *registry.Handler[models.SerberAlatBerat]
	SerberAlatKerja *registry.Handler[models.SerberAlatKerja]
	SerberAC        *registry.Handler[models.SerberAC]

	ServisHandler    *servicing.ServisHandler
	PeriodicHandler  *servicing.PeriodicHandler
	ScanHandler      *scan.Handler
	DashboardHandler *dashboard.Handler
}

func NewAppContainer(db *sql.DB, cfg *config.Config, log *zap.Logger) (*Container, error) {
	repo := repository.NewRepository(db)
	auditRepo := auditLogRepo.NewRepository(repo)
	audit := auditlog.NewAuditLog(auditRepo, log)

	files, err := media.NewStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	periodic := servicing.NewPeriodicStore(repo)
	servisRepo := servicing.NewServisRepository(repo, periodic)

	c := &Container{
		Repository:       repo,
		AuditLog:         audit,
		Media:            files,
		LoginHandler:     security.NewLoginHandler(repo),
		UserHandler:      users.NewHandler(users.NewRepository(repo), log),
		AuditLogHandler:  auditLogRepo.NewHandler(auditRepo),
		ServisHandler:    servicing.NewServisHandler(servisRepo, files, audit, log),
		PeriodicHandler:  servicing.NewPeriodicHandler(periodic, log),
		ScanHandler:      scan.NewHandler(periodic, log),
		DashboardHandler: dashboard.NewHandler(repo, servisRepo, log),
	}

	if c.Kendaraan, err = newCategoryHandler[models.Kendaraan](repo, categories.Kendaraan, files, audit, log); err != nil {
		return nil, err
	}
	if c.AlatBerat, err = newCategoryHandler[models.AlatBerat](repo, categories.AlatBerat, files, audit, log); err != nil {
		return nil, err
	}
	if c.AlatKerja, err = newCategoryHandler[models.AlatKerja](repo, categories.AlatKerja, files, audit, log); err != nil {
		return nil, err
	}
	if c.AC, err = newCategoryHandler[models.AC](repo, categories.AC, files, audit, log); err != nil {
		return nil, err
	}
	if c.Tanah, err = newCategoryHandler[models.Tanah](repo, categories.Tanah, files, audit, log); err != nil {
		return nil, err
	}
	if c.Tanaman, err = newCategoryHandler[models.Tanaman](repo, categories.Tanaman, files, audit, log); err != nil {
		return nil, err
	}
	if c.TanamanMasuk, err = newCategoryHandler[models.TanamanMasuk](repo, categories.TanamanMasuk, files, audit, log); err != nil {
		return nil, err
	}
	if c.TanamanKeluar, err = newCategoryHandler[models.TanamanKeluar](repo, categories.TanamanKeluar, files, audit, log); err != nil {
		return nil, err
	}

	if c.SerberKendaraan, err = newCategoryHandler[models.SerberKendaraan](repo, servicing.SerberKendaraan, files, audit, log); err != nil {
		return nil, err
	}
	if c.SerberAlatBerat, err = newCategoryHandler[models.SerberAlatBerat](repo, servicing.SerberAlatBerat, files, audit, log); err != nil {
		return nil, err
	}
	if c.SerberAlatKerja, err = newCategoryHandler[models.SerberAlatKerja](repo, servicing.SerberAlatKerja, files, audit, log); err != nil {
		return nil, err
	}
	if c.SerberAC, err = newCategoryHandler[models.SerberAC](repo, servicing.SerberAC, files, audit, log); err != nil {
		return nil, err
	}

	// Registering an asset in a category with a periodic checklist also
	// opens its checklist row; deleting the asset closes it.
	seedPeriodic := func(def registry.Definition, key string) {
		if err := periodic.Seed(def, key); err != nil {
			log.Error("unable to seed periodic row", zap.String("table", def.Table), zap.Error(err))
		}
	}
	removePeriodic := func(def registry.Definition, key string) {
		if err := periodic.RemoveFor(def, key); err != nil {
			log.Error("unable to remove periodic row", zap.String("table", def.Table), zap.Error(err))
		}
	}

	c.Kendaraan.
		AfterCreate(func(item *models.Kendaraan) { seedPeriodic(servicing.SerberKendaraan, item.NoPolisi) }).
		AfterDelete(func(item *models.Kendaraan) { removePeriodic(servicing.SerberKendaraan, item.NoPolisi) })
	c.AlatBerat.
		AfterCreate(func(item *models.AlatBerat) { seedPeriodic(servicing.SerberAlatBerat, item.NoRegistrasi) }).
		AfterDelete(func(item *models.AlatBerat) { removePeriodic(servicing.SerberAlatBerat, item.NoRegistrasi) })
	c.AlatKerja.
		AfterCreate(func(item *models.AlatKerja) { seedPeriodic(servicing.SerberAlatKerja, item.NoRegistrasi) }).
		AfterDelete(func(item *models.AlatKerja) { removePeriodic(servicing.SerberAlatKerja, item.NoRegistrasi) })
	c.AC.
		AfterCreate(func(item *models.AC) { seedPeriodic(servicing.SerberAC, item.NoRegistrasi) }).
		AfterDelete(func(item *models.AC) { removePeriodic(servicing.SerberAC, item.NoRegistrasi) })

	return c, nil
}

func newCategoryHandler[T any](repo *repository.Repository, def registry.Definition, files *media.Store, audit *auditlog.Auditlog, log *zap.Logger) (*registry.Handler[T], error) {
	store, err := registry.NewRepository[T](repo, def)
	if err != nil {
		return nil, err
	}
	return registry.NewHandler[T](def, store, files, audit, log)
}
