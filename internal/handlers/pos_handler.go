package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/imrishuroy/go-pos-terminal/internal/apperr"
	"github.com/imrishuroy/go-pos-terminal/internal/idempotency"
	"github.com/imrishuroy/go-pos-terminal/internal/orders"
	"github.com/imrishuroy/go-pos-terminal/internal/pos"
	"github.com/imrishuroy/go-pos-terminal/internal/validation"
)

// OrderMetrics receives completed orders. Failures are logged only.
type OrderMetrics interface {
	OrderCompleted(ctx context.Context, o orders.Order) error
}

// HandlerConfig groups dependencies for the terminal routes.
type HandlerConfig struct {
	Terminal       *pos.Terminal
	Idempotency    *idempotency.Store
	Metrics        OrderMetrics // nil disables metrics
	Logger         *zap.Logger
	CurrencySymbol string
}

type posHandler struct {
	HandlerConfig
}

// RegisterRoutes registers the terminal routes.
func RegisterRoutes(r *gin.Engine, cfg HandlerConfig) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Idempotency == nil {
		cfg.Idempotency = idempotency.NewStore(0)
	}
	h := &posHandler{HandlerConfig: cfg}
	v := validation.New()

	r.GET("/menu", h.menu)

	r.GET("/session", h.session)
	r.POST("/session/login", h.login)
	r.POST("/session/logout", h.logout)

	r.GET("/cart", h.cart)
	r.POST("/cart/items", func(c *gin.Context) {
		var req validation.AddItemRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}
		h.respondCart(c, h.Terminal.AddItem(req.ItemID))
	})
	r.PUT("/cart/items/:id", func(c *gin.Context) {
		id, ok := itemID(c)
		if !ok {
			return
		}
		var req validation.SetQuantityRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}
		h.respondCart(c, h.Terminal.SetQuantity(id, *req.Quantity))
	})
	r.DELETE("/cart/items/:id", func(c *gin.Context) {
		id, ok := itemID(c)
		if !ok {
			return
		}
		h.respondCart(c, h.Terminal.RemoveItem(id))
	})
	r.PUT("/cart/discount", func(c *gin.Context) {
		var req validation.DiscountRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}
		h.respondCart(c, h.Terminal.SetDiscount(string(req.Percent)))
	})
	r.POST("/cart/discount/apply", h.applyDiscount)

	r.POST("/orders", h.completeOrder)
	r.GET("/orders", h.listOrders)
	r.GET("/orders/:id", h.getOrder)

	r.GET("/receipt", h.receipt)
	r.DELETE("/receipt", h.closeReceipt)
	r.POST("/receipt/print", h.printReceipt)
}

func (h *posHandler) menu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"currency": h.CurrencySymbol, "items": menuView(h.Terminal.Menu())})
}

func (h *posHandler) session(c *gin.Context) {
	state, user, role := h.Terminal.Session()
	c.JSON(http.StatusOK, gin.H{"state": state, "username": user, "role": role})
}

func (h *posHandler) login(c *gin.Context) {
	var req validation.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request_body", "msg": err.Error()})
		return
	}
	out, err := h.Terminal.Login(req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	h.Logger.Info("login", zap.String("username", out.Username), zap.String("role", out.Role))
	c.JSON(http.StatusOK, gin.H{"success": true, "username": out.Username, "role": out.Role})
}

func (h *posHandler) logout(c *gin.Context) {
	_, user, _ := h.Terminal.Session()
	h.Terminal.Logout()
	if user != "" {
		h.Logger.Info("logout", zap.String("username", user))
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *posHandler) cart(c *gin.Context) {
	h.respondCart(c, nil)
}

// respondCart writes err if set, otherwise the current cart.
func (h *posHandler) respondCart(c *gin.Context, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	view, err := h.Terminal.CartView()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartView(h.CurrencySymbol, view.Lines, view.DiscountPercent, view.Totals))
}

func (h *posHandler) applyDiscount(c *gin.Context) {
	if err := h.Terminal.ApplyDiscount(); err != nil {
		writeError(c, err)
		return
	}
	view, err := h.Terminal.CartView()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Discount of %s%% has been applied", view.DiscountPercent.String()),
		"cart":    cartView(h.CurrencySymbol, view.Lines, view.DiscountPercent, view.Totals),
	})
}

func (h *posHandler) completeOrder(c *gin.Context) {
	ctx := c.Request.Context()

	// Replays are session-gated like every other cart route.
	if !h.Terminal.LoggedIn() {
		writeError(c, pos.ErrNotLoggedIn)
		return
	}

	// Optional idempotency key: a retried request replays the stored receipt.
	key := c.GetHeader("Idempotency-Key")
	if key != "" && !h.Idempotency.CreateIfNotExists(key) {
		rec := h.Idempotency.Get(key)
		switch {
		case rec == nil:
			// expired between the two calls
		case rec.Status == idempotency.StatusDone:
			c.Data(rec.ResponseStatus, "application/json; charset=utf-8", rec.ResponseBody)
			return
		case rec.Status == idempotency.StatusInProgress:
			c.JSON(http.StatusConflict, gin.H{"error": "request_in_progress"})
			return
		default:
			// previous attempt failed; let this one retry
			h.Idempotency.Release(key)
		}
		if !h.Idempotency.CreateIfNotExists(key) {
			c.JSON(http.StatusConflict, gin.H{"error": "request_in_progress"})
			return
		}
	}

	o, err := h.Terminal.CompleteOrder()
	if err != nil {
		if key != "" {
			_ = h.Idempotency.MarkFailed(key, apperr.Message(err))
		}
		writeError(c, err)
		return
	}

	h.Logger.Info("order completed",
		zap.String("order_id", o.ID),
		zap.Int("lines", len(o.Items)),
		zap.String("total", orders.FormatAmount(o.Total)))

	if h.Metrics != nil {
		if err := h.Metrics.OrderCompleted(ctx, o); err != nil {
			h.Logger.Warn("publish order metrics", zap.String("order_id", o.ID), zap.Error(err))
		}
	}

	body, err := json.Marshal(receiptView(h.CurrencySymbol, o))
	if err != nil {
		if key != "" {
			_ = h.Idempotency.MarkFailed(key, err.Error())
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "encode_failed", "detail": err.Error()})
		return
	}
	if key != "" {
		_ = h.Idempotency.MarkDone(key, o.ID, body, http.StatusCreated)
	}

	c.Header("Location", fmt.Sprintf("/orders/%s", o.ID))
	c.Data(http.StatusCreated, "application/json; charset=utf-8", body)
}

func (h *posHandler) listOrders(c *gin.Context) {
	list, err := h.Terminal.Orders()
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]ReceiptView, 0, len(list))
	for _, o := range list {
		out = append(out, receiptView(h.CurrencySymbol, o))
	}
	c.JSON(http.StatusOK, gin.H{"orders": out})
}

func (h *posHandler) getOrder(c *gin.Context) {
	o, err := h.Terminal.Order(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, receiptView(h.CurrencySymbol, o))
}

func (h *posHandler) receipt(c *gin.Context) {
	r, err := h.Terminal.Receipt()
	if err != nil {
		writeError(c, err)
		return
	}
	if r == nil {
		writeError(c, pos.ErrNoReceipt)
		return
	}
	c.JSON(http.StatusOK, receiptView(h.CurrencySymbol, *r))
}

func (h *posHandler) closeReceipt(c *gin.Context) {
	if err := h.Terminal.CloseReceipt(); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *posHandler) printReceipt(c *gin.Context) {
	ack, err := h.Terminal.PrintReceipt()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": ack})
}

func itemID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_item_id", "msg": c.Param("id")})
		return 0, false
	}
	return id, true
}

var statusByKind = map[apperr.Kind]int{
	apperr.KindValidation:      http.StatusBadRequest,
	apperr.KindAuth:            http.StatusUnauthorized,
	apperr.KindUnauthenticated: http.StatusUnauthorized,
	apperr.KindRange:           http.StatusUnprocessableEntity,
	apperr.KindEmptyCart:       http.StatusConflict,
	apperr.KindNotFound:        http.StatusNotFound,
}

func writeError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	status, ok := statusByKind[kind]
	if !ok {
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{"error": kind, "message": apperr.Message(err)})
}
