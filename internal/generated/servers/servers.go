// Package servers holds the HTTP models, the ServerInterface and its echo
// wrapper for the API described in openapi.yaml. The file is maintained by
// hand in the layout oapi-codegen uses for echo servers; keep it in step with
// openapi.yaml when either changes.
package servers

import (
	_ "embed"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Defines values for OperationResultKind.
const (
	Backend            OperationResultKind = "backend"
	Conflict           OperationResultKind = "conflict"
	NotFound           OperationResultKind = "not_found"
	PartialApplication OperationResultKind = "partial_application"
	Validation         OperationResultKind = "validation"
)

// Container defines model for Container.
type Container struct {
	Code     string  `json:"code"`
	ItemName *string `json:"itemName"`
	Location *string `json:"location"`
	Quantity *int    `json:"quantity"`
	Sku      *string `json:"sku"`
	Status   *string `json:"status"`
}

// Error defines model for Error.
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// OperationFields Flat string or number fields of the operation, e.g. containerCode, sku, quantity, decision, locationCode, materialContainer, productContainer, productSku, productQty.
type OperationFields map[string]interface{}

// OperationResult defines model for OperationResult.
type OperationResult struct {
	Error   *string              `json:"error,omitempty"`
	Kind    *OperationResultKind `json:"kind,omitempty"`
	Success bool                 `json:"success"`
}

// OperationResultKind defines model for OperationResult.Kind.
type OperationResultKind string

// StatusSummary defines model for StatusSummary.
type StatusSummary struct {
	ByStatus map[string]int `json:"byStatus"`
	Total    int            `json:"total"`
	Unknown  int            `json:"unknown"`
}

// ExecuteOperationJSONRequestBody defines body for ExecuteOperation for application/json ContentType.
type ExecuteOperationJSONRequestBody = OperationFields

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List containers ordered by code
	// (GET /api/v1/containers)
	ListContainers(ctx echo.Context) error
	// Count containers per status
	// (GET /api/v1/containers/summary)
	GetContainerSummary(ctx echo.Context) error
	// Get one container
	// (GET /api/v1/containers/{code})
	GetContainer(ctx echo.Context, code string) error
	// Run one lifecycle operation
	// (POST /api/v1/operations/{operation})
	ExecuteOperation(ctx echo.Context, operation string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListContainers converts echo context to params.
func (w *ServerInterfaceWrapper) ListContainers(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListContainers(ctx)
	return err
}

// GetContainerSummary converts echo context to params.
func (w *ServerInterfaceWrapper) GetContainerSummary(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetContainerSummary(ctx)
	return err
}

// GetContainer converts echo context to params.
func (w *ServerInterfaceWrapper) GetContainer(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "code" -------------
	var code string

	err = runtime.BindStyledParameterWithOptions("simple", "code", ctx.Param("code"), &code, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter code: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetContainer(ctx, code)
	return err
}

// ExecuteOperation converts echo context to params.
func (w *ServerInterfaceWrapper) ExecuteOperation(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "operation" -------------
	var operation string

	err = runtime.BindStyledParameterWithOptions("simple", "operation", ctx.Param("operation"), &operation, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter operation: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ExecuteOperation(ctx, operation)
	return err
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/containers", wrapper.ListContainers)
	router.GET(baseURL+"/api/v1/containers/summary", wrapper.GetContainerSummary)
	router.GET(baseURL+"/api/v1/containers/:code", wrapper.GetContainer)
	router.POST(baseURL+"/api/v1/operations/:operation", wrapper.ExecuteOperation)

}

//go:embed openapi.yaml
var swaggerSpec []byte

// GetSwagger returns the Swagger specification corresponding to the generated code
// in this file. The external references of Swagger specification are resolved.
// The logic of resolving external references is tightly connected to "import-mapping" feature.
// Externally referenced files must be embedded in the corresponding golang packages.
// Urls can be supported but this task was out of the scope.
func GetSwagger() (swagger *openapi3.T, err error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true
	loader.ReadFromURIFunc = func(loader *openapi3.Loader, url *url.URL) ([]byte, error) {
		pathToFile := url.String()
		pathToFile = path.Clean(pathToFile)
		if strings.HasSuffix(pathToFile, "openapi.yaml") {
			return swaggerSpec, nil
		}
		return nil, fmt.Errorf("external reference %s is not embedded", pathToFile)
	}
	swagger, err = loader.LoadFromData(swaggerSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	return
}
