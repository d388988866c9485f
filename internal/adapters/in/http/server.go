package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"warehouse/internal/core/application/lifecycle"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/generated/servers"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// OperationExecutor runs lifecycle operations. *lifecycle.Engine implements it.
type OperationExecutor interface {
	Execute(ctx context.Context, req lifecycle.Request) lifecycle.Result
}

type ContainersQueryHandler interface {
	Handle(ctx context.Context, query queries.GetContainersQuery) ([]queries.ContainerView, error)
}

type ContainerQueryHandler interface {
	Handle(ctx context.Context, query queries.GetContainerQuery) (queries.ContainerView, error)
}

type StatusSummaryQueryHandler interface {
	Handle(ctx context.Context, query queries.GetStatusSummaryQuery) (queries.StatusSummary, error)
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	engine OperationExecutor

	// Query handlers
	getContainersHandler    ContainersQueryHandler
	getContainerHandler     ContainerQueryHandler
	getStatusSummaryHandler StatusSummaryQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the lifecycle engine and the query handlers.
func NewServer(
	engine OperationExecutor,
	getContainersHandler ContainersQueryHandler,
	getContainerHandler ContainerQueryHandler,
	getStatusSummaryHandler StatusSummaryQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		engine:                  engine,
		getContainersHandler:    getContainersHandler,
		getContainerHandler:     getContainerHandler,
		getStatusSummaryHandler: getStatusSummaryHandler,
		logger:                  logger.With("component", "http_server"),
	}
}

// ExecuteOperation handles POST /api/v1/operations/{operation}.
// The body is a flat JSON object of string or number fields; the response is
// always a result envelope whose status code follows the error kind.
func (s *Server) ExecuteOperation(ctx echo.Context, operation string) error {
	var body servers.OperationFields
	if err := (&echo.DefaultBinder{}).BindBody(ctx, &body); err != nil {
		return invalidBody(ctx, "Invalid request body: fields must be a JSON object of strings or numbers")
	}

	fields, err := textFields(body)
	if err != nil {
		return invalidBody(ctx, "Invalid request body: "+err.Error())
	}

	result := s.engine.Execute(ctx.Request().Context(), lifecycle.Request{
		Operation: operation,
		Fields:    fields,
	})

	if result.Success {
		return ctx.JSON(http.StatusOK, servers.OperationResult{Success: true})
	}

	kind := servers.OperationResultKind(result.Kind.String())
	msg := result.Error
	return ctx.JSON(statusOf(result.Kind), servers.OperationResult{
		Success: false,
		Error:   &msg,
		Kind:    &kind,
	})
}

// textFields converts the decoded body into the engine's text fields. Numbers
// keep their shortest decimal form and null counts as absent.
func textFields(body servers.OperationFields) (map[string]string, error) {
	fields := make(map[string]string, len(body))
	for name, value := range body {
		switch v := value.(type) {
		case nil:
		case string:
			fields[name] = v
		case float64:
			fields[name] = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			return nil, fmt.Errorf("field %q must be a string or a number", name)
		}
	}
	return fields, nil
}

func invalidBody(ctx echo.Context, msg string) error {
	kind := servers.Validation
	return ctx.JSON(http.StatusBadRequest, servers.OperationResult{
		Success: false,
		Error:   &msg,
		Kind:    &kind,
	})
}

// ListContainers handles GET /api/v1/containers.
func (s *Server) ListContainers(ctx echo.Context) error {
	views, err := s.getContainersHandler.Handle(ctx.Request().Context(), queries.NewGetContainersQuery())
	if err != nil {
		return s.queryError(ctx, "Failed to retrieve containers", err)
	}

	response := make([]servers.Container, len(views))
	for i, view := range views {
		response[i] = toContainer(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetContainer handles GET /api/v1/containers/{code}.
func (s *Server) GetContainer(ctx echo.Context, code string) error {
	query, err := queries.NewGetContainerQuery(code)
	if err != nil {
		return s.queryError(ctx, "Invalid container code", err)
	}

	view, err := s.getContainerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.queryError(ctx, "Failed to retrieve container", err)
	}

	return ctx.JSON(http.StatusOK, toContainer(view))
}

// GetContainerSummary handles GET /api/v1/containers/summary.
func (s *Server) GetContainerSummary(ctx echo.Context) error {
	summary, err := s.getStatusSummaryHandler.Handle(ctx.Request().Context(), queries.NewGetStatusSummaryQuery())
	if err != nil {
		return s.queryError(ctx, "Failed to retrieve status summary", err)
	}

	return ctx.JSON(http.StatusOK, servers.StatusSummary{
		Total:    summary.Total,
		Unknown:  summary.Unknown,
		ByStatus: summary.ByStatus,
	})
}

func (s *Server) queryError(ctx echo.Context, message string, err error) error {
	status := statusOf(errs.KindOf(err))
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), message, "error", err)
	} else {
		message += ": " + err.Error()
	}

	return ctx.JSON(status, servers.Error{
		Code:    int32(status),
		Message: message,
	})
}

func statusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindNone:
		return http.StatusOK
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func toContainer(view queries.ContainerView) servers.Container {
	return servers.Container{
		Code:     view.Code,
		Sku:      view.SKU,
		Quantity: view.Quantity,
		Status:   view.Status,
		Location: view.LocationCode,
		ItemName: view.ItemName,
	}
}
