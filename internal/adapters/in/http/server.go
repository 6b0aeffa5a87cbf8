// Package http exposes the shipment tracking API over echo. The server
// translates between the JSON surface and the command and query handlers,
// including the callback endpoint the location oracle answers on.
package http

import (
	"errors"
	"net/http"
	"time"

	"shiptrack/internal/adapters/out/geo"
	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler          commands.CreateOrderCommandHandler
	requestDeliveryHandler      commands.RequestDeliveryCheckCommandHandler
	requestReceiptHandler       commands.RequestReceiptConfirmationCheckCommandHandler
	processResponseHandler      commands.ProcessLocationResponseCommandHandler
	setThresholdHandler         commands.SetDistanceThresholdCommandHandler
	getOrderHandler             queries.GetOrderQueryHandler
	getOrdersBySenderHandler    queries.GetOrdersBySenderQueryHandler
	getOrdersByReceiverHandler  queries.GetOrdersByReceiverQueryHandler
	getDistanceThresholdHandler queries.GetDistanceThresholdQueryHandler
}

// NewServer creates the HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	requestDeliveryHandler commands.RequestDeliveryCheckCommandHandler,
	requestReceiptHandler commands.RequestReceiptConfirmationCheckCommandHandler,
	processResponseHandler commands.ProcessLocationResponseCommandHandler,
	setThresholdHandler commands.SetDistanceThresholdCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersBySenderHandler queries.GetOrdersBySenderQueryHandler,
	getOrdersByReceiverHandler queries.GetOrdersByReceiverQueryHandler,
	getDistanceThresholdHandler queries.GetDistanceThresholdQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		requestDeliveryHandler:      requestDeliveryHandler,
		requestReceiptHandler:       requestReceiptHandler,
		processResponseHandler:      processResponseHandler,
		setThresholdHandler:         setThresholdHandler,
		getOrderHandler:             getOrderHandler,
		getOrdersBySenderHandler:    getOrdersBySenderHandler,
		getOrdersByReceiverHandler:  getOrdersByReceiverHandler,
		getDistanceThresholdHandler: getDistanceThresholdHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/delivery-checks", s.RequestDeliveryCheck)
	api.POST("/orders/:id/receipt-checks", s.RequestReceiptCheck)
	api.POST("/callbacks/location", s.LocationCallback)
	api.GET("/settings/distance-threshold", s.GetDistanceThreshold)
	api.PUT("/settings/distance-threshold", s.SetDistanceThreshold)
}

// ErrorResponse is the JSON body of every non-2xx answer.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CoordinateDTO carries a latitude/longitude pair in microdegrees.
type CoordinateDTO struct {
	Latitude  int32 `json:"latitude"`
	Longitude int32 `json:"longitude"`
}

// OrderDTO is the JSON view of one order.
type OrderDTO struct {
	ID                string         `json:"id"`
	Sender            string         `json:"sender"`
	Receiver          string         `json:"receiver"`
	Source            CoordinateDTO  `json:"source"`
	Destination       CoordinateDTO  `json:"destination"`
	ExpectedArrival   time.Time      `json:"expected_arrival"`
	Delivered         bool           `json:"delivered"`
	Confirmed         bool           `json:"confirmed"`
	LastKnownLocation *CoordinateDTO `json:"last_known_location,omitempty"`
	LastUpdatedAt     *time.Time     `json:"last_updated_at,omitempty"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body struct {
		Sender          string        `json:"sender"`
		Receiver        string        `json:"receiver"`
		Source          CoordinateDTO `json:"source"`
		Destination     CoordinateDTO `json:"destination"`
		ExpectedArrival time.Time     `json:"expected_arrival"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	sender, err := kernel.NewParty(body.Sender)
	if err != nil {
		return errorJSON(ctx, err)
	}

	receiver, err := kernel.NewParty(body.Receiver)
	if err != nil {
		return errorJSON(ctx, err)
	}

	source, err := kernel.NewCoordinate(
		kernel.Microdegrees(body.Source.Latitude), kernel.Microdegrees(body.Source.Longitude))
	if err != nil {
		return errorJSON(ctx, err)
	}

	destination, err := kernel.NewCoordinate(
		kernel.Microdegrees(body.Destination.Latitude), kernel.Microdegrees(body.Destination.Longitude))
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(sender, receiver, source, destination, body.ExpectedArrival)
	if err != nil {
		return errorJSON(ctx, err)
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderDTO(response))
}

// ListOrders handles GET /api/v1/orders?sender=X or ?receiver=Y.
// Exactly one of the two filters must be given.
func (s *Server) ListOrders(ctx echo.Context) error {
	sender := ctx.QueryParam("sender")
	receiver := ctx.QueryParam("receiver")

	switch {
	case sender != "" && receiver == "":
		party, err := kernel.NewParty(sender)
		if err != nil {
			return errorJSON(ctx, err)
		}
		query, err := queries.NewGetOrdersBySenderQuery(party)
		if err != nil {
			return errorJSON(ctx, err)
		}
		orders, err := s.getOrdersBySenderHandler.Handle(ctx.Request().Context(), query)
		if err != nil {
			return errorJSON(ctx, err)
		}
		return ctx.JSON(http.StatusOK, toOrderDTOs(orders))

	case receiver != "" && sender == "":
		party, err := kernel.NewParty(receiver)
		if err != nil {
			return errorJSON(ctx, err)
		}
		query, err := queries.NewGetOrdersByReceiverQuery(party)
		if err != nil {
			return errorJSON(ctx, err)
		}
		orders, err := s.getOrdersByReceiverHandler.Handle(ctx.Request().Context(), query)
		if err != nil {
			return errorJSON(ctx, err)
		}
		return ctx.JSON(http.StatusOK, toOrderDTOs(orders))

	default:
		return badRequest(ctx, "exactly one of sender or receiver is required")
	}
}

// RequestDeliveryCheck handles POST /api/v1/orders/:id/delivery-checks.
func (s *Server) RequestDeliveryCheck(ctx echo.Context) error {
	orderID, caller, err := bindCheckRequest(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewRequestDeliveryCheckCommand(orderID, caller)
	if err != nil {
		return errorJSON(ctx, err)
	}

	requestID, err := s.requestDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusAccepted, map[string]string{"request_id": requestID.String()})
}

// RequestReceiptCheck handles POST /api/v1/orders/:id/receipt-checks.
func (s *Server) RequestReceiptCheck(ctx echo.Context) error {
	orderID, caller, err := bindCheckRequest(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewRequestReceiptConfirmationCheckCommand(orderID, caller)
	if err != nil {
		return errorJSON(ctx, err)
	}

	requestID, err := s.requestReceiptHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusAccepted, map[string]string{"request_id": requestID.String()})
}

// LocationCallback handles POST /api/v1/callbacks/location, the endpoint the
// oracle answers on. The payload carries either a packed location encoded as
// a decimal string or an error description.
func (s *Server) LocationCallback(ctx echo.Context) error {
	var body struct {
		RequestID string `json:"request_id"`
		Location  string `json:"location"`
		Error     string `json:"error"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	requestID, err := kernel.UUIDFromString(body.RequestID)
	if err != nil {
		return badRequest(ctx, "invalid request id")
	}

	var cmd commands.ProcessLocationResponseCommand
	if body.Error != "" {
		cmd, err = commands.NewProcessLocationFailureCommand(requestID, body.Error)
	} else {
		var rawLocation kernel.PackedLocation
		rawLocation, err = geo.ParsePackedLocation(body.Location)
		if err != nil {
			return badRequest(ctx, "invalid location payload")
		}
		cmd, err = commands.NewProcessLocationResponseCommand(requestID, rawLocation)
	}
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.processResponseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDistanceThreshold handles GET /api/v1/settings/distance-threshold.
func (s *Server) GetDistanceThreshold(ctx echo.Context) error {
	meters, err := s.getDistanceThresholdHandler.Handle(
		ctx.Request().Context(), queries.NewGetDistanceThresholdQuery())
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]int64{"meters": meters})
}

// SetDistanceThreshold handles PUT /api/v1/settings/distance-threshold.
func (s *Server) SetDistanceThreshold(ctx echo.Context) error {
	var body struct {
		Caller string `json:"caller"`
		Meters int64  `json:"meters"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	caller, err := kernel.NewParty(body.Caller)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewSetDistanceThresholdCommand(caller, body.Meters)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.setThresholdHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func bindCheckRequest(ctx echo.Context) (kernel.UUID, kernel.Party, error) {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.Party{}, err
	}

	var body struct {
		Caller string `json:"caller"`
	}
	if err = ctx.Bind(&body); err != nil {
		return kernel.UUID{}, kernel.Party{}, errs.NewValueIsInvalidError("request body")
	}

	caller, err := kernel.NewParty(body.Caller)
	if err != nil {
		return kernel.UUID{}, kernel.Party{}, err
	}

	return orderID, caller, nil
}

func toOrderDTO(response queries.OrderResponse) OrderDTO {
	dto := OrderDTO{
		ID:       response.ID.String(),
		Sender:   response.Sender.String(),
		Receiver: response.Receiver.String(),
		Source: CoordinateDTO{
			Latitude:  int32(response.Source.Latitude()),
			Longitude: int32(response.Source.Longitude()),
		},
		Destination: CoordinateDTO{
			Latitude:  int32(response.Destination.Latitude()),
			Longitude: int32(response.Destination.Longitude()),
		},
		ExpectedArrival: response.ExpectedArrival,
		Delivered:       response.Delivered,
		Confirmed:       response.Confirmed,
	}

	if response.LastKnownLocation != nil {
		dto.LastKnownLocation = &CoordinateDTO{
			Latitude:  int32(response.LastKnownLocation.Latitude()),
			Longitude: int32(response.LastKnownLocation.Longitude()),
		}
		dto.LastUpdatedAt = response.LastUpdatedAt
	}

	return dto
}

func toOrderDTOs(responses []queries.OrderResponse) []OrderDTO {
	dtos := make([]OrderDTO, len(responses))
	for i, response := range responses {
		dtos[i] = toOrderDTO(response)
	}
	return dtos
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorJSON maps application errors onto HTTP statuses: validation failures
// to 400, authorization to 403, unknown objects to 404, lifecycle conflicts
// to 409, and oracle trouble to 502.
func errorJSON(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrNotAuthorized):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrStateConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrExternalFailure):
		status = http.StatusBadGateway
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
