package cmd

import (
	"log/slog"

	httpadapter "warehouse/internal/adapters/in/http"
	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/core/application/lifecycle"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/jobs"
	"warehouse/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	registry   *prometheus.Registry
	recorder   *metrics.Recorder
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	recorder, err := metrics.NewRecorder(registry)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		registry:   registry,
		recorder:   recorder,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateReceiveContainerCommandHandler() commands.ReceiveContainerCommandHandler {
	return commands.NewReceiveContainerCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateInspectContainerCommandHandler() commands.InspectContainerCommandHandler {
	return commands.NewInspectContainerCommandHandler(c.containerUoW())
}

func (c *CompositionRoot) CreatePutawayContainerCommandHandler() commands.PutawayContainerCommandHandler {
	return commands.NewPutawayContainerCommandHandler(c.uow())
}

func (c *CompositionRoot) CreatePickContainerCommandHandler() commands.PickContainerCommandHandler {
	return commands.NewPickContainerCommandHandler(c.containerUoW())
}

func (c *CompositionRoot) CreateAssembleProductCommandHandler() commands.AssembleProductCommandHandler {
	return commands.NewAssembleProductCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateReturnContainerCommandHandler() commands.ReturnContainerCommandHandler {
	return commands.NewReturnContainerCommandHandler(c.containerUoW())
}

func (c *CompositionRoot) CreateLifecycleEngine() *lifecycle.Engine {
	return lifecycle.NewEngine(lifecycle.Handlers{
		Receive:  c.CreateReceiveContainerCommandHandler(),
		Inspect:  c.CreateInspectContainerCommandHandler(),
		Putaway:  c.CreatePutawayContainerCommandHandler(),
		Pick:     c.CreatePickContainerCommandHandler(),
		Assemble: c.CreateAssembleProductCommandHandler(),
		Return:   c.CreateReturnContainerCommandHandler(),
	},
		lifecycle.WithLogger(c.logger),
		lifecycle.WithMetricsRecorder(c.recorder),
	)
}

func (c *CompositionRoot) CreateGetContainersQueryHandler() queries.GetContainersQueryHandler {
	return queries.NewGetContainersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetContainerQueryHandler() queries.GetContainerQueryHandler {
	return queries.NewGetContainerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatusSummaryQueryHandler() queries.GetStatusSummaryQueryHandler {
	return queries.NewGetStatusSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPRouter() (*echo.Echo, error) {
	server := httpadapter.NewServer(
		c.CreateLifecycleEngine(),
		c.CreateGetContainersQueryHandler(),
		c.CreateGetContainerQueryHandler(),
		c.CreateGetStatusSummaryQueryHandler(),
		c.logger,
	)
	return httpadapter.NewRouter(server, c.registry, c.logger.With("component", "http"))
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetStatusSummaryQueryHandler(),
		c.recorder,
		c.configs.SummarySchedule,
		c.logger,
	)
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) containerUoW() commands.ContainerUoWFactory {
	return FuncContainerUoWFactory(func() commands.ContainerUoW {
		return c.uowFactory.Create()
	})
}

type FuncContainerUoWFactory func() commands.ContainerUoW

func (f FuncContainerUoWFactory) Create() commands.ContainerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
