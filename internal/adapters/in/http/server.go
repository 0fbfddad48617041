// Package http exposes the order workflow over a JSON API.
// It coordinates between HTTP handlers and application use cases, mapping
// domain error kinds onto status codes: unknown objects to 404, rejected
// lifecycle transitions to 409, unreadable CSV uploads to 422.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"pharmorders/internal/core/application/usecases/commands"
	"pharmorders/internal/core/application/usecases/queries"
	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/core/domain/model/order"
	"pharmorders/internal/core/domain/services"
	"pharmorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for orders, pharmacies, labs and statistics.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	reviewOrderHandler      commands.ReviewOrderCommandHandler
	scheduleDeliveryHandler commands.ScheduleDeliveryCommandHandler
	markDeliveredHandler    commands.MarkDeliveredCommandHandler
	removeOrderHandler      commands.RemoveOrderCommandHandler
	createPharmacyHandler   commands.CreatePharmacyCommandHandler
	createLabHandler        commands.CreateLabCommandHandler

	// Query handlers
	getOrdersHandler            queries.GetOrdersQueryHandler
	getOrderHandler             queries.GetOrderQueryHandler
	getLabStatisticsHandler     queries.GetLabStatisticsQueryHandler
	getAllLabsStatisticsHandler queries.GetAllLabsStatisticsQueryHandler
	getPharmaciesHandler        queries.GetPharmaciesQueryHandler
	getLabsHandler              queries.GetLabsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	reviewOrderHandler commands.ReviewOrderCommandHandler,
	scheduleDeliveryHandler commands.ScheduleDeliveryCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	removeOrderHandler commands.RemoveOrderCommandHandler,
	createPharmacyHandler commands.CreatePharmacyCommandHandler,
	createLabHandler commands.CreateLabCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getLabStatisticsHandler queries.GetLabStatisticsQueryHandler,
	getAllLabsStatisticsHandler queries.GetAllLabsStatisticsQueryHandler,
	getPharmaciesHandler queries.GetPharmaciesQueryHandler,
	getLabsHandler queries.GetLabsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		reviewOrderHandler:          reviewOrderHandler,
		scheduleDeliveryHandler:     scheduleDeliveryHandler,
		markDeliveredHandler:        markDeliveredHandler,
		removeOrderHandler:          removeOrderHandler,
		createPharmacyHandler:       createPharmacyHandler,
		createLabHandler:            createLabHandler,
		getOrdersHandler:            getOrdersHandler,
		getOrderHandler:             getOrderHandler,
		getLabStatisticsHandler:     getLabStatisticsHandler,
		getAllLabsStatisticsHandler: getAllLabsStatisticsHandler,
		getPharmaciesHandler:        getPharmaciesHandler,
		getLabsHandler:              getLabsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.GET("/orders/:orderId/download", s.DownloadOrder)
	api.POST("/orders/:orderId/review", s.ReviewOrder)
	api.POST("/orders/:orderId/delivery-date", s.SetDeliveryDate)
	api.POST("/orders/:orderId/delivered", s.MarkDelivered)
	api.DELETE("/orders/:orderId", s.RemoveOrder)

	api.POST("/pharmacies", s.CreatePharmacy)
	api.GET("/pharmacies", s.GetPharmacies)

	api.POST("/labs", s.CreateLab)
	api.GET("/labs", s.GetLabs)

	api.GET("/labs/:labId/statistics", s.GetLabStatistics)
	api.GET("/statistics", s.GetAllLabsStatistics)
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type createOrderRequest struct {
	LabID      string `json:"labId" validate:"required,uuid"`
	PharmacyID string `json:"pharmacyId" validate:"required,uuid"`
	FileName   string `json:"fileName" validate:"required"`
	RawText    string `json:"rawText" validate:"required"`
}

type createOrderResponse struct {
	ID              string   `json:"id"`
	Status          string   `json:"status"`
	ReferencesCount int      `json:"referencesCount"`
	BoxesCount      int      `json:"boxesCount"`
	Warnings        []string `json:"warnings"`
}

// CreateOrder handles POST /api/v1/orders - registers a new CSV upload.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request createOrderRequest
	if err := s.bind(ctx, &request); err != nil {
		return err
	}

	labID, err := kernel.UUIDFromString(request.LabID)
	if err != nil {
		return s.badRequest(ctx, "Invalid labId: "+err.Error())
	}
	pharmacyID, err := kernel.UUIDFromString(request.PharmacyID)
	if err != nil {
		return s.badRequest(ctx, "Invalid pharmacyId: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, labID, pharmacyID, request.FileName, request.RawText)
	if err != nil {
		return s.badRequest(ctx, "Invalid order data: "+err.Error())
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	warnings := result.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{
		ID:              orderID.String(),
		Status:          order.Pending.String(),
		ReferencesCount: result.ReferencesCount,
		BoxesCount:      result.BoxesCount,
		Warnings:        warnings,
	})
}

type orderSummaryJSON struct {
	ID                   string     `json:"id"`
	LabID                string     `json:"labId"`
	PharmacyID           string     `json:"pharmacyId"`
	PharmacyName         string     `json:"pharmacyName"`
	FileName             string     `json:"fileName"`
	CreatedAt            time.Time  `json:"createdAt"`
	Status               string     `json:"status"`
	ReferencesCount      int        `json:"referencesCount"`
	BoxesCount           int        `json:"boxesCount"`
	ReviewedAt           *time.Time `json:"reviewedAt,omitempty"`
	ReviewedBy           string     `json:"reviewedBy,omitempty"`
	ReviewNote           string     `json:"reviewNote,omitempty"`
	ExpectedDeliveryDate *time.Time `json:"expectedDeliveryDate,omitempty"`
	DeliveredAt          *time.Time `json:"deliveredAt,omitempty"`
}

type orderDetailJSON struct {
	orderSummaryJSON
	RawContent string                     `json:"rawContent"`
	Items      []queries.LineItemResponse `json:"items"`
}

func toOrderSummaryJSON(summary queries.OrderSummaryResponse) orderSummaryJSON {
	return orderSummaryJSON{
		ID:                   summary.ID.String(),
		LabID:                summary.LabID.String(),
		PharmacyID:           summary.PharmacyID.String(),
		PharmacyName:         summary.PharmacyName,
		FileName:             summary.FileName,
		CreatedAt:            summary.CreatedAt,
		Status:               summary.Status,
		ReferencesCount:      summary.ReferencesCount,
		BoxesCount:           summary.BoxesCount,
		ReviewedAt:           summary.ReviewedAt,
		ReviewedBy:           summary.ReviewedBy,
		ReviewNote:           summary.ReviewNote,
		ExpectedDeliveryDate: summary.ExpectedDeliveryDate,
		DeliveredAt:          summary.DeliveredAt,
	}
}

// GetOrders handles GET /api/v1/orders with optional labId, pharmacyId and
// status query filters.
func (s *Server) GetOrders(ctx echo.Context) error {
	var labID, pharmacyID *kernel.UUID
	var status *order.Status

	if raw := ctx.QueryParam("labId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return s.badRequest(ctx, "Invalid labId: "+err.Error())
		}
		labID = &id
	}
	if raw := ctx.QueryParam("pharmacyId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return s.badRequest(ctx, "Invalid pharmacyId: "+err.Error())
		}
		pharmacyID = &id
	}
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return s.badRequest(ctx, "Invalid status: "+err.Error())
		}
		status = &parsed
	}

	query, err := queries.NewGetOrdersQuery(labID, pharmacyID, status)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	response := make([]orderSummaryJSON, len(orders))
	for i, summary := range orders {
		response[i] = toOrderSummaryJSON(summary)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:orderId - full order detail.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := s.orderQueryFromPath(ctx)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	items := detail.Items
	if items == nil {
		items = []queries.LineItemResponse{}
	}

	return ctx.JSON(http.StatusOK, orderDetailJSON{
		orderSummaryJSON: toOrderSummaryJSON(detail.OrderSummaryResponse),
		RawContent:       detail.RawContent,
		Items:            items,
	})
}

// DownloadOrder handles GET /api/v1/orders/:orderId/download - returns the
// stored CSV content under the original file name.
func (s *Server) DownloadOrder(ctx echo.Context) error {
	query, err := s.orderQueryFromPath(ctx)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	ctx.Response().Header().Set(
		echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", detail.FileName),
	)
	return ctx.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(detail.RawContent))
}

type reviewOrderRequest struct {
	Decision   string `json:"decision" validate:"required,oneof=approved rejected"`
	ReviewedBy string `json:"reviewedBy"`
	ReviewNote string `json:"reviewNote"`
}

// ReviewOrder handles POST /api/v1/orders/:orderId/review.
func (s *Server) ReviewOrder(ctx echo.Context) error {
	orderID, err := s.orderIDFromPath(ctx)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	var request reviewOrderRequest
	if err = s.bind(ctx, &request); err != nil {
		return err
	}

	decision, err := order.DecisionFromString(request.Decision)
	if err != nil {
		return s.badRequest(ctx, "Invalid decision: "+err.Error())
	}

	cmd, err := commands.NewReviewOrderCommand(orderID, decision, request.ReviewedBy, request.ReviewNote)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err = s.reviewOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type setDeliveryDateRequest struct {
	ExpectedDeliveryDate time.Time `json:"expectedDeliveryDate" validate:"required"`
}

// SetDeliveryDate handles POST /api/v1/orders/:orderId/delivery-date.
func (s *Server) SetDeliveryDate(ctx echo.Context) error {
	orderID, err := s.orderIDFromPath(ctx)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	var request setDeliveryDateRequest
	if err = s.bind(ctx, &request); err != nil {
		return err
	}

	cmd, err := commands.NewScheduleDeliveryCommand(orderID, request.ExpectedDeliveryDate)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err = s.scheduleDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type markDeliveredRequest struct {
	DeliveredAt *time.Time `json:"deliveredAt"`
}

// MarkDelivered handles POST /api/v1/orders/:orderId/delivered. An absent
// deliveredAt means the current time.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	orderID, err := s.orderIDFromPath(ctx)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	var request markDeliveredRequest
	if err = s.bind(ctx, &request); err != nil {
		return err
	}

	var deliveredAt time.Time
	if request.DeliveredAt != nil {
		deliveredAt = *request.DeliveredAt
	}

	cmd, err := commands.NewMarkDeliveredCommand(orderID, deliveredAt)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err = s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrder handles DELETE /api/v1/orders/:orderId.
func (s *Server) RemoveOrder(ctx echo.Context) error {
	orderID, err := s.orderIDFromPath(ctx)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRemoveOrderCommand(orderID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err = s.removeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type createPharmacyRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address"`
}

// CreatePharmacy handles POST /api/v1/pharmacies.
func (s *Server) CreatePharmacy(ctx echo.Context) error {
	var request createPharmacyRequest
	if err := s.bind(ctx, &request); err != nil {
		return err
	}

	pharmacyID := kernel.NewUUID()
	cmd, err := commands.NewCreatePharmacyCommand(pharmacyID, request.Name, request.Email, request.Address)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err = s.createPharmacyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": pharmacyID.String()})
}

type pharmacyJSON struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// GetPharmacies handles GET /api/v1/pharmacies.
func (s *Server) GetPharmacies(ctx echo.Context) error {
	pharmacies, err := s.getPharmaciesHandler.Handle(ctx.Request().Context(), queries.NewGetPharmaciesQuery())
	if err != nil {
		return s.mapError(ctx, err)
	}

	response := make([]pharmacyJSON, len(pharmacies))
	for i, p := range pharmacies {
		response[i] = pharmacyJSON{
			ID:        p.ID.String(),
			Name:      p.Name,
			Email:     p.Email,
			Address:   p.Address,
			CreatedAt: p.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type createLabRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateLab handles POST /api/v1/labs.
func (s *Server) CreateLab(ctx echo.Context) error {
	var request createLabRequest
	if err := s.bind(ctx, &request); err != nil {
		return err
	}

	labID := kernel.NewUUID()
	cmd, err := commands.NewCreateLabCommand(labID, request.Name)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err = s.createLabHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": labID.String()})
}

type labJSON struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// GetLabs handles GET /api/v1/labs.
func (s *Server) GetLabs(ctx echo.Context) error {
	labs, err := s.getLabsHandler.Handle(ctx.Request().Context(), queries.NewGetLabsQuery())
	if err != nil {
		return s.mapError(ctx, err)
	}

	response := make([]labJSON, len(labs))
	for i, l := range labs {
		response[i] = labJSON{ID: l.ID.String(), Name: l.Name, CreatedAt: l.CreatedAt}
	}

	return ctx.JSON(http.StatusOK, response)
}

type pharmacyStatisticsJSON struct {
	PharmacyID   string `json:"pharmacyId"`
	PharmacyName string `json:"pharmacyName"`
	OrderCount   int    `json:"orderCount"`
}

type labStatisticsJSON struct {
	LabID           string                   `json:"labId"`
	LabName         string                   `json:"labName"`
	OrderCount      int                      `json:"orderCount"`
	FirstOrderDate  *time.Time               `json:"firstOrderDate"`
	LastOrderDate   *time.Time               `json:"lastOrderDate"`
	TotalReferences int                      `json:"totalReferences"`
	TotalBoxes      int                      `json:"totalBoxes"`
	PharmacyCount   int                      `json:"pharmacyCount"`
	Pharmacies      []pharmacyStatisticsJSON `json:"pharmacies"`
}

func toLabStatisticsJSON(stats queries.LabStatisticsResponse) labStatisticsJSON {
	response := labStatisticsJSON{
		LabID:           stats.LabID.String(),
		LabName:         stats.LabName,
		OrderCount:      stats.OrderCount,
		FirstOrderDate:  stats.FirstOrderDate,
		LastOrderDate:   stats.LastOrderDate,
		TotalReferences: stats.TotalReferences,
		TotalBoxes:      stats.TotalBoxes,
		PharmacyCount:   stats.PharmacyCount,
		Pharmacies:      []pharmacyStatisticsJSON{},
	}

	for _, entry := range stats.Pharmacies {
		response.Pharmacies = append(response.Pharmacies, pharmacyStatisticsJSON{
			PharmacyID:   entry.PharmacyID.String(),
			PharmacyName: entry.PharmacyName,
			OrderCount:   entry.OrderCount,
		})
	}

	return response
}

// GetLabStatistics handles GET /api/v1/labs/:labId/statistics.
func (s *Server) GetLabStatistics(ctx echo.Context) error {
	labID, err := kernel.UUIDFromString(ctx.Param("labId"))
	if err != nil {
		return s.badRequest(ctx, "Invalid labId: "+err.Error())
	}

	query, err := queries.NewGetLabStatisticsQuery(labID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	stats, err := s.getLabStatisticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toLabStatisticsJSON(stats))
}

// GetAllLabsStatistics handles GET /api/v1/statistics.
func (s *Server) GetAllLabsStatistics(ctx echo.Context) error {
	allStats, err := s.getAllLabsStatisticsHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllLabsStatisticsQuery(),
	)
	if err != nil {
		return s.mapError(ctx, err)
	}

	response := make([]labStatisticsJSON, len(allStats))
	for i, stats := range allStats {
		response[i] = toLabStatisticsJSON(stats)
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) orderIDFromPath(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("orderId"))
}

func (s *Server) orderQueryFromPath(ctx echo.Context) (queries.GetOrderQuery, error) {
	orderID, err := s.orderIDFromPath(ctx)
	if err != nil {
		return queries.GetOrderQuery{}, err
	}
	return queries.NewGetOrderQuery(orderID)
}

func (s *Server) bind(ctx echo.Context, request any) error {
	if err := ctx.Bind(request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(request); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return ctx.JSON(httpErr.Code, ErrorResponse{
				Code:    httpErr.Code,
				Message: fmt.Sprintf("%v", httpErr.Message),
			})
		}
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}
	return nil
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapError translates application errors into HTTP status codes.
func (s *Server) mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrInvalidTransition):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrParseFailed):
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
