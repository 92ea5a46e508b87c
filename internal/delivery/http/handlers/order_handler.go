package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/veyra-labs/veyra-risk-service/internal/delivery/http/dto/order/request"
	"github.com/veyra-labs/veyra-risk-service/internal/delivery/http/dto/order/response"
	"github.com/veyra-labs/veyra-risk-service/internal/domain"
	"github.com/veyra-labs/veyra-risk-service/internal/usecase"
	orderdto "github.com/veyra-labs/veyra-risk-service/internal/usecase/dto/order"
)

type OrderHandler struct {
	intakeUC usecase.IntakeUsecase
}

func NewOrderHandler(intakeUC usecase.IntakeUsecase) *OrderHandler {
	return &OrderHandler{intakeUC: intakeUC}
}

func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/orders", h.EnqueueOrder)
	router.GET("/merchants/:merchantId/orders", h.ListOrders)
	router.GET("/merchants/:merchantId/orders/:orderId", h.GetOrder)
	router.POST("/merchants/:merchantId/orders/:orderId/rescan", h.ReEnqueueFailed)
}

// EnqueueOrder is the webhook entry point for storefront platforms.
func (h *OrderHandler) EnqueueOrder(c *gin.Context) {
	var req request.EnqueueOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := &orderdto.EnqueueOrderInput{
		MerchantID:      req.MerchantID,
		Platform:        req.Platform,
		MerchantOrderID: req.OrderID,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		Amount:          req.Amount,
		IPAddress:       req.IPAddress,
	}
	if req.Signals != nil {
		input.Signals = domain.BehavioralSignals{
			TypingSpeedMs:     req.Signals.TypingSpeedMs,
			FormFillTimeMs:    req.Signals.FormFillTimeMs,
			FieldInteractions: req.Signals.FieldInteractions,
			CopyPasteCount:    req.Signals.CopyPasteCount,
			AutoFillDetected:  req.Signals.AutoFillDetected,
		}
	}

	output, err := h.intakeUC.Enqueue(input)
	if err != nil {
		abortWithError(c, err)
		return
	}

	code := http.StatusAccepted
	if output.Duplicate {
		code = http.StatusOK
	}
	c.JSON(code, response.EnqueueOrderResponse{
		Order:     response.FromDomainOrder(&output.Order),
		Duplicate: output.Duplicate,
	})
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	merchantID := c.Param("merchantId")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	filters := domain.OrderFilters{
		Status:          domain.OrderStatus(c.Query("status")),
		MerchantOrderID: c.Query("order_id"),
	}

	output, err := h.intakeUC.GetOrders(merchantID, filters, page, limit)
	if err != nil {
		abortWithError(c, err)
		return
	}

	resp := response.ListOrdersResponse{
		Orders: make([]response.OrderResponse, 0, len(output.Orders)),
		Total:  output.Total,
	}
	for _, order := range output.Orders {
		resp.Orders = append(resp.Orders, response.FromDomainOrder(order))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.intakeUC.GetOrderByID(c.Param("merchantId"), c.Param("orderId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDomainOrder(order))
}

// ReEnqueueFailed puts a FAILED order back on the queue for another scan.
func (h *OrderHandler) ReEnqueueFailed(c *gin.Context) {
	if err := h.intakeUC.ReEnqueueFailed(c.Param("merchantId"), c.Param("orderId")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "PENDING"})
}
