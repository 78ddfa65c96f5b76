package handler

import (
	"strconv"

	"carbon-credit-exchange/internal/adapter/http/dto"
	"carbon-credit-exchange/internal/core/domain"
	"carbon-credit-exchange/internal/core/ports"
	"carbon-credit-exchange/pkg/apperror"
	"carbon-credit-exchange/pkg/response"

	"github.com/gin-gonic/gin"
)

// TradingHandler handles sell order and trade endpoints.
type TradingHandler struct {
	tradingSvc ports.TradingService
}

// NewTradingHandler creates a new TradingHandler.
func NewTradingHandler(tradingSvc ports.TradingService) *TradingHandler {
	return &TradingHandler{tradingSvc: tradingSvc}
}

// orderID parses the :id path parameter.
func orderID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.Validation("invalid order id")
	}
	return id, nil
}

// Create handles POST /api/v1/orders.
func (h *TradingHandler) Create(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	price, err := domain.ParseMoney(req.PricePerCredit)
	if err != nil {
		response.Error(c, apperror.ErrInvalidPrice())
		return
	}

	order, err := h.tradingSvc.CreateSellOrder(c.Request.Context(), caller, ports.CreateOrderRequest{
		ProjectID:      req.ProjectID,
		CreditsAmount:  req.CreditsAmount,
		PricePerCredit: price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewOrderResponse(order))
}

// Execute handles POST /api/v1/orders/:id/execute.
func (h *TradingHandler) Execute(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	id, err := orderID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.ExecuteTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	payment, err := domain.ParseMoney(req.Payment)
	if err != nil {
		response.Error(c, apperror.Validation("invalid payment amount"))
		return
	}

	order, err := h.tradingSvc.ExecuteTrade(c.Request.Context(), caller, id, payment)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewOrderResponse(order))
}

// Cancel handles DELETE /api/v1/orders/:id.
func (h *TradingHandler) Cancel(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	id, err := orderID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	order, err := h.tradingSvc.RemoveSellOrder(c.Request.Context(), caller, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewOrderResponse(order))
}

// CheckExpiration handles POST /api/v1/orders/:id/check-expiration.
// The probe is permissionless so expired escrow can be released by anyone.
func (h *TradingHandler) CheckExpiration(c *gin.Context) {
	id, err := orderID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	expired, err := h.tradingSvc.CheckOrderExpiration(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ExpirationCheckResponse{OrderID: id, Expired: expired})
}

// Get handles GET /api/v1/orders/:id.
func (h *TradingHandler) Get(c *gin.Context) {
	id, err := orderID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	order, err := h.tradingSvc.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewOrderResponse(order))
}

// ListOpen handles GET /api/v1/orders.
func (h *TradingHandler) ListOpen(c *gin.Context) {
	orders, err := h.tradingSvc.ListOpenOrders(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, dto.NewOrderResponse(&orders[i]))
	}
	response.OK(c, dto.OrderListResponse{Items: items, Total: len(items)})
}

// GetSettings handles GET /api/v1/market/settings.
func (h *TradingHandler) GetSettings(c *gin.Context) {
	settings, err := h.tradingSvc.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SettingsResponse{
		FeeBps: settings.FeeBps,
		Paused: settings.Paused,
	})
}
