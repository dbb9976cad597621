package v1

import (
	"hirechain/internal/config"
	"hirechain/internal/database"
	"hirechain/internal/delivery/http/handler"
	"hirechain/internal/delivery/http/middleware"
	"hirechain/internal/domain/skills"
	"hirechain/internal/extract"
	"hirechain/internal/infrastructure/cache"
	"hirechain/internal/infrastructure/ledger"
	"hirechain/internal/metrics"
	"hirechain/internal/pkg/jwt"
	"hirechain/internal/repository"
	"hirechain/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, rdb *cache.Redis, logger *zap.Logger) error {
	if r == nil {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	lexicon, err := skills.LoadLexicon(cfg.Skills.LexiconPath)
	if err != nil {
		return err
	}
	logger.Info("skill lexicon loaded",
		zap.Int("version", lexicon.Version),
		zap.Int("entries", len(lexicon.Entries)))

	jwtSvc := jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	jobRepo := repository.NewPostgresJobRepository(db)
	userRepo := repository.NewPostgresUserRepository(db)

	ledgerClient := ledger.NewRPCClient(cfg.Ledger.RPCURL, cfg.Ledger.RequestTimeout, logger)
	verifier := ledger.NewVerifier(ledgerClient, cfg.Ledger.RequestTimeout, logger, metrics.ObserveVerification)

	skillUC := usecase.NewSkillUsecase(skills.NewExtractor(lexicon), extract.NewPlainText())
	matchUC := usecase.NewMatchingUsecase(jobRepo, logger)
	listUC := usecase.NewJobListUsecase(jobRepo)
	submitUC := usecase.NewJobSubmitUsecase(
		jobRepo,
		userRepo,
		verifier,
		rdb,
		cfg.Ledger.AdminWallet,
		cfg.Ledger.MinimumLamports,
		logger,
		metrics.ObserveSubmission,
	)

	skillHandler := handler.NewSkillHandler(skillUC)
	resumeHandler := handler.NewResumeHandler(skillUC)
	matchHandler := handler.NewMatchHandler(matchUC)
	jobsHandler := handler.NewJobsHandler(listUC, submitUC)

	skillHandler.RegisterRoutes(r)
	resumeHandler.RegisterRoutes(r)
	matchHandler.RegisterRoutes(r)
	jobsHandler.RegisterPublicRoutes(r)

	protected := r.Group("", authMw.Middleware())
	jobsHandler.RegisterProtectedRoutes(protected)

	return nil
}
