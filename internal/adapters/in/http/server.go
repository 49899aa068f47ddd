// Package http provides the REST adapter. It translates echo requests into
// commands and queries, and maps domain failures onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/courier"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	checkoutOrderHandler commands.CheckoutOrderCommandHandler
	updateOrderHandler   commands.UpdateOrderCommandHandler
	deleteOrderHandler   commands.DeleteOrderCommandHandler
	assignCourierHandler commands.AssignCourierCommandHandler
	createCourierHandler commands.CreateCourierCommandHandler
	createUserHandler    commands.CreateUserCommandHandler
	createProductHandler commands.CreateProductCommandHandler

	// Query handlers
	getOrdersHandler            queries.GetOrdersQueryHandler
	getOrderHandler             queries.GetOrderQueryHandler
	getOrdersByStatusHandler    queries.GetOrdersByStatusQueryHandler
	getOrdersByDateRangeHandler queries.GetOrdersByDateRangeQueryHandler
	getOrdersByUserHandler      queries.GetOrdersByUserQueryHandler
	getPendingOrdersByUser      queries.GetPendingOrdersByUserQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	checkoutOrderHandler commands.CheckoutOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	createCourierHandler commands.CreateCourierCommandHandler,
	createUserHandler commands.CreateUserCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	getOrdersByDateRangeHandler queries.GetOrdersByDateRangeQueryHandler,
	getOrdersByUserHandler queries.GetOrdersByUserQueryHandler,
	getPendingOrdersByUser queries.GetPendingOrdersByUserQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		checkoutOrderHandler:        checkoutOrderHandler,
		updateOrderHandler:          updateOrderHandler,
		deleteOrderHandler:          deleteOrderHandler,
		assignCourierHandler:        assignCourierHandler,
		createCourierHandler:        createCourierHandler,
		createUserHandler:           createUserHandler,
		createProductHandler:        createProductHandler,
		getOrdersHandler:            getOrdersHandler,
		getOrderHandler:             getOrderHandler,
		getOrdersByStatusHandler:    getOrdersByStatusHandler,
		getOrdersByDateRangeHandler: getOrdersByDateRangeHandler,
		getOrdersByUserHandler:      getOrdersByUserHandler,
		getPendingOrdersByUser:      getPendingOrdersByUser,
	}
}

// RegisterRoutes wires every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/commandes", s.CreateOrder)
	api.GET("/commandes", s.GetOrders)
	api.GET("/commandes/periode", s.GetOrdersByDateRange)
	api.GET("/commandes/statut/:statut", s.GetOrdersByStatus)
	api.GET("/commandes/:id", s.GetOrder)
	api.PUT("/commandes/:id", s.UpdateOrder)
	api.DELETE("/commandes/:id", s.DeleteOrder)
	api.POST("/commandes/:id/checkout", s.CheckoutOrder)
	api.POST("/commandes/:id/livreur", s.AssignCourier)

	api.GET("/users/:id/commandes", s.GetOrdersByUser)
	api.GET("/users/:id/commandes/en-attente", s.GetPendingOrdersByUser)

	api.POST("/livreurs", s.CreateCourier)
	api.POST("/users", s.CreateUser)
	api.POST("/produits", s.CreateProduct)
}

// CreateOrder handles POST /api/v1/commandes.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	status := order.Unknown
	if req.Statut != "" {
		parsed, err := order.StatusFromString(req.Statut)
		if err != nil {
			return writeError(ctx, err)
		}
		status = parsed
	}

	lines := make([]commands.CreateOrderLine, 0, len(req.Lignes))
	for _, line := range req.Lignes {
		lines = append(lines, commands.CreateOrderLine{
			ProductID: line.ProduitID,
			Quantity:  line.Qte,
			UnitPrice: line.PrixUnitaire,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.ClientNom, req.Adresse, req.Telephone, req.Gouvernement,
		req.UserID, status, lines,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	saved, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(saved))
}

// GetOrders handles GET /api/v1/commandes.
func (s *Server) GetOrders(ctx echo.Context) error {
	result, err := s.getOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summariesToResponse(result))
}

// GetOrder handles GET /api/v1/commandes/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, detailToResponse(detail))
}

// UpdateOrder handles PUT /api/v1/commandes/:id.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	var status *order.Status
	if req.Statut != nil {
		parsed, statusErr := order.StatusFromString(*req.Statut)
		if statusErr != nil {
			return writeError(ctx, statusErr)
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateOrderCommand(
		id, req.ClientNom, req.Adresse, req.Telephone, req.Gouvernement, status,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// DeleteOrder handles DELETE /api/v1/commandes/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CheckoutOrder handles POST /api/v1/commandes/:id/checkout.
func (s *Server) CheckoutOrder(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCheckoutOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.checkoutOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AssignCourier handles POST /api/v1/commandes/:id/livreur.
func (s *Server) AssignCourier(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	var req AssignCourierRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignCourierCommand(id, req.LivreurID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.assignCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetOrdersByStatus handles GET /api/v1/commandes/statut/:statut.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.Param("statut"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summariesToResponse(result))
}

// GetOrdersByDateRange handles GET /api/v1/commandes/periode?debut=...&fin=...
// Bounds accept RFC 3339 timestamps or plain dates; a plain fin date covers
// its whole day.
func (s *Server) GetOrdersByDateRange(ctx echo.Context) error {
	start, err := parseTimeParam(ctx.QueryParam("debut"), false)
	if err != nil {
		return writeBadRequest(ctx, "Invalid debut date")
	}

	end, err := parseTimeParam(ctx.QueryParam("fin"), true)
	if err != nil {
		return writeBadRequest(ctx, "Invalid fin date")
	}

	query, err := queries.NewGetOrdersByDateRangeQuery(start, end)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getOrdersByDateRangeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summariesToResponse(result))
}

// GetOrdersByUser handles GET /api/v1/users/:id/commandes.
func (s *Server) GetOrdersByUser(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return writeBadRequest(ctx, "Invalid user id")
	}

	query, err := queries.NewGetOrdersByUserQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getOrdersByUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summariesToResponse(result))
}

// GetPendingOrdersByUser handles GET /api/v1/users/:id/commandes/en-attente.
func (s *Server) GetPendingOrdersByUser(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return writeBadRequest(ctx, "Invalid user id")
	}

	query, err := queries.NewGetPendingOrdersByUserQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getPendingOrdersByUser.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summariesToResponse(result))
}

// CreateCourier handles POST /api/v1/livreurs.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var req NewCourierRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateCourierCommand(req.Nom, req.Email, req.Telephone, req.UserID)
	if err != nil {
		return writeError(ctx, err)
	}

	saved, err := s.createCourierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, courierToResponse(saved))
}

// CreateUser handles POST /api/v1/users.
func (s *Server) CreateUser(ctx echo.Context) error {
	var req NewUserRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateUserCommand(
		req.Nom, req.Prenom, req.Email, req.Password, req.Phone, req.Role, req.Adresse,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	saved, err := s.createUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, userToResponse(saved))
}

// CreateProduct handles POST /api/v1/produits.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req NewProductRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateProductCommand(req.Libelle, req.Prix, req.Stock)
	if err != nil {
		return writeError(ctx, err)
	}

	saved, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productToResponse(saved))
}

func pathID(ctx echo.Context, name string) (int64, error) {
	return strconv.ParseInt(ctx.Param(name), 10, 64)
}

// parseTimeParam accepts RFC 3339 or a bare date. A bare date used as the
// end of a range is widened to the end of its day.
func parseTimeParam(value string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, err
	}

	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

// writeError maps a domain failure onto the HTTP contract: missing objects
// are 404, bad input and refused transitions are 400, storage trouble is 500.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrMissingReference),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrInvalidStateTransition):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrStorageUnavailable):
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: err.Error()})
}

func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func orderToResponse(aggregate *order.Order) OrderDetailResponse {
	lines := make([]OrderLineResponse, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineResponse{
			ID:           line.ID(),
			ProduitID:    line.ProductID(),
			Qte:          line.Quantity(),
			PrixUnitaire: line.UnitPrice(),
		})
	}

	resp := OrderDetailResponse{
		ID:           aggregate.ID(),
		Reference:    aggregate.Reference(),
		ClientNom:    aggregate.ClientName(),
		Statut:       aggregate.Status().String(),
		Adresse:      aggregate.Address(),
		Telephone:    aggregate.Phone(),
		Gouvernement: aggregate.Governorate(),
		UserID:       aggregate.UserID(),
		Lignes:       lines,
		Total:        aggregate.Total(),
		CreatedAt:    aggregate.CreatedAt(),
	}

	if courierID := aggregate.CourierID(); courierID != nil {
		resp.Livreur = &CourierResponse{ID: *courierID}
	}

	return resp
}

func detailToResponse(detail queries.OrderDetailResponse) OrderDetailResponse {
	lines := make([]OrderLineResponse, 0, len(detail.Lines))
	total := 0.0
	for _, line := range detail.Lines {
		lines = append(lines, OrderLineResponse{
			ID:           line.ID,
			ProduitID:    line.ProductID,
			Qte:          line.Quantity,
			PrixUnitaire: line.UnitPrice,
		})
		total += float64(line.Quantity) * line.UnitPrice
	}

	resp := OrderDetailResponse{
		ID:           detail.ID,
		Reference:    detail.Reference,
		ClientNom:    detail.ClientName,
		Statut:       detail.Status,
		Adresse:      detail.Address,
		Telephone:    detail.Phone,
		Gouvernement: detail.Governorate,
		UserID:       detail.UserID,
		Lignes:       lines,
		Total:        total,
		CreatedAt:    detail.CreatedAt,
	}

	if detail.Courier != nil {
		resp.Livreur = &CourierResponse{
			ID:        detail.Courier.ID,
			Nom:       detail.Courier.Name,
			Telephone: detail.Courier.Phone,
		}
	}

	return resp
}

func summariesToResponse(result []queries.OrderSummaryResponse) []OrderSummaryResponse {
	response := make([]OrderSummaryResponse, 0, len(result))
	for _, summary := range result {
		response = append(response, OrderSummaryResponse{
			ID:        summary.ID,
			ClientNom: summary.ClientName,
			Statut:    summary.Status,
			Adresse:   summary.Address,
			Telephone: summary.Phone,
			LivreurID: summary.CourierID,
		})
	}
	return response
}

func courierToResponse(aggregate *courier.Courier) CourierResponse {
	return CourierResponse{
		ID:        aggregate.ID(),
		Nom:       aggregate.Name(),
		Email:     aggregate.Email(),
		Telephone: aggregate.Phone(),
		UserID:    aggregate.UserID(),
	}
}

func userToResponse(aggregate *user.User) UserResponse {
	return UserResponse{
		ID:       aggregate.ID(),
		Nom:      aggregate.LastName(),
		Prenom:   aggregate.FirstName(),
		Email:    aggregate.Email(),
		Phone:    aggregate.Phone(),
		Role:     aggregate.Role(),
		Adresse:  aggregate.Address(),
		Verified: aggregate.IsVerified(),
	}
}

func productToResponse(aggregate *product.Product) ProductResponse {
	return ProductResponse{
		ID:      aggregate.ID(),
		Libelle: aggregate.Label(),
		Prix:    aggregate.Price(),
		Stock:   aggregate.Stock(),
	}
}
