package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"restaurant-pos/internal/domain"
	"restaurant-pos/internal/service"
)

type Handler struct {
	Menu    service.MenuServiceInterface
	Coupons service.CouponServiceInterface
	Carts   service.CartServiceInterface
	Tables  service.TableServiceInterface
	Orders  service.OrderServiceInterface
}

func NewHandler(menu service.MenuServiceInterface, coupons service.CouponServiceInterface, carts service.CartServiceInterface, tables service.TableServiceInterface, orders service.OrderServiceInterface) *Handler {
	return &Handler{Menu: menu, Coupons: coupons, Carts: carts, Tables: tables, Orders: orders}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu", h.listMenu).Methods("GET")
	r.HandleFunc("/api/menu", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/menu/{id}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/menu/{id}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/menu/{id}", h.deleteMenuItem).Methods("DELETE")

	r.HandleFunc("/api/coupons", h.listCoupons).Methods("GET")
	r.HandleFunc("/api/coupons/validate", h.validateCoupon).Methods("POST")

	r.HandleFunc("/api/tables", h.listTables).Methods("GET")
	r.HandleFunc("/api/tables/{id}", h.getTable).Methods("GET")
	r.HandleFunc("/api/tables/{id}/status", h.updateTableStatus).Methods("PUT")
	r.HandleFunc("/api/tables/{id}/reserve", h.reserveTable).Methods("POST")
	r.HandleFunc("/api/tables/{id}/free", h.freeTable).Methods("POST")

	r.HandleFunc("/api/sessions", h.createSession).Methods("POST")
	r.HandleFunc("/api/sessions/{id}", h.getSession).Methods("GET")
	r.HandleFunc("/api/sessions/{id}", h.releaseSession).Methods("DELETE")
	r.HandleFunc("/api/sessions/{id}/items", h.addItem).Methods("POST")
	r.HandleFunc("/api/sessions/{id}/items", h.clearItems).Methods("DELETE")
	r.HandleFunc("/api/sessions/{id}/items/{key}", h.updateItemQuantity).Methods("PUT")
	r.HandleFunc("/api/sessions/{id}/items/{key}", h.removeItem).Methods("DELETE")
	r.HandleFunc("/api/sessions/{id}/coupon", h.applyCoupon).Methods("POST")
	r.HandleFunc("/api/sessions/{id}/coupon", h.removeCoupon).Methods("DELETE")
	r.HandleFunc("/api/sessions/{id}/tip", h.setTip).Methods("PUT")
	r.HandleFunc("/api/sessions/{id}/order-type", h.setOrderType).Methods("PUT")
	r.HandleFunc("/api/sessions/{id}/table", h.bindTable).Methods("PUT")
	r.HandleFunc("/api/sessions/{id}/totals", h.sessionTotals).Methods("GET")
	r.HandleFunc("/api/sessions/{id}/checkout", h.checkout).Methods("POST")

	r.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.updateOrder).Methods("PUT")
	r.HandleFunc("/api/orders/{id}", h.deleteOrder).Methods("DELETE")
	r.HandleFunc("/api/orders/{id}/send-to-kitchen", h.sendToKitchen).Methods("POST")
	r.HandleFunc("/api/orders/{id}/qrcode", h.orderQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "pos-server",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) listMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.Menu.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	created, err := h.Menu.Create(item)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.ID = mux.Vars(r)["id"]
	updated, err := h.Menu.Update(item)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Menu.Delete(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listCoupons(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.Coupons.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, coupons)
}

func (h *Handler) validateCoupon(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Code     string  `json:"code"`
		Subtotal float64 `json:"subtotal"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	coupon, err := h.Coupons.Validate(payload.Code, payload.Subtotal, time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, coupon)
}

func (h *Handler) listTables(w http.ResponseWriter, r *http.Request) {
	status := domain.TableStatus(r.URL.Query().Get("status"))
	tables, err := h.Tables.List(status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tables)
}

func tableID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid table id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *Handler) getTable(w http.ResponseWriter, r *http.Request) {
	id, ok := tableID(w, r)
	if !ok {
		return
	}
	table, err := h.Tables.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) updateTableStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := tableID(w, r)
	if !ok {
		return
	}
	var payload struct {
		Status  domain.TableStatus `json:"status"`
		OrderID string             `json:"orderId,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.Status == "" {
		http.Error(w, "status is required", http.StatusBadRequest)
		return
	}
	table, err := h.Tables.UpdateStatus(id, payload.Status, payload.OrderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) reserveTable(w http.ResponseWriter, r *http.Request) {
	id, ok := tableID(w, r)
	if !ok {
		return
	}
	var in service.ReservationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	table, err := h.Tables.Reserve(id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) freeTable(w http.ResponseWriter, r *http.Request) {
	id, ok := tableID(w, r)
	if !ok {
		return
	}
	table, err := h.Tables.Free(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		OrderType domain.OrderType `json:"orderType"`
		TableID   *int             `json:"tableId,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	session, err := h.Carts.Create(r.Context(), payload.OrderType, payload.TableID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.Carts.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) releaseSession(w http.ResponseWriter, r *http.Request) {
	if err := h.Carts.Release(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var in service.AddItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	session, err := h.Carts.AddItem(r.Context(), mux.Vars(r)["id"], in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) updateItemQuantity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	session, err := h.Carts.UpdateQuantity(r.Context(), vars["id"], vars["key"], payload.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	session, err := h.Carts.RemoveItem(r.Context(), vars["id"], vars["key"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) clearItems(w http.ResponseWriter, r *http.Request) {
	session, err := h.Carts.ClearItems(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) applyCoupon(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	session, err := h.Carts.ApplyCoupon(r.Context(), mux.Vars(r)["id"], payload.Code, time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) removeCoupon(w http.ResponseWriter, r *http.Request) {
	session, err := h.Carts.RemoveCoupon(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) setTip(w http.ResponseWriter, r *http.Request) {
	var tip domain.TipSpec
	if err := json.NewDecoder(r.Body).Decode(&tip); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	session, err := h.Carts.SetTip(r.Context(), mux.Vars(r)["id"], tip)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) setOrderType(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		OrderType domain.OrderType `json:"orderType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	session, err := h.Carts.SetOrderType(r.Context(), mux.Vars(r)["id"], payload.OrderType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) bindTable(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		TableID int `json:"tableId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	session, err := h.Carts.BindTable(r.Context(), mux.Vars(r)["id"], payload.TableID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) sessionTotals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.Carts.Totals(mux.Vars(r)["id"], time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, totals)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var in service.CheckoutInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	in.SessionID = mux.Vars(r)["id"]
	result, err := h.Orders.Checkout(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orderType := domain.OrderType(r.URL.Query().Get("orderType"))
	var tableID *int
	if raw := r.URL.Query().Get("tableId"); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil {
			tableID = &id
		}
	}
	orders, err := h.Orders.List(orderType, tableID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var in service.CreateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	order, err := h.Orders.Create(in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	var patch service.OrderPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	order, err := h.Orders.Update(mux.Vars(r)["id"], patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.Orders.Delete(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Order deleted successfully"})
}

func (h *Handler) sendToKitchen(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.SendToKitchen(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Order sent to kitchen successfully",
		"order":   order,
	})
}

func (h *Handler) orderQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Orders.ReceiptQR(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMenuItemNotFound),
		errors.Is(err, service.ErrTableNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrLineNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrTableConflict),
		errors.Is(err, service.ErrTableUnavailable),
		errors.Is(err, service.ErrBadTableTransition),
		errors.Is(err, service.ErrPaymentInFlight):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidCustomization),
		errors.Is(err, domain.ErrCouponExpired),
		errors.Is(err, domain.ErrMinimumOrderNotMet),
		errors.Is(err, service.ErrCouponNotFound),
		errors.Is(err, service.ErrEmptyCartCheckout),
		errors.Is(err, service.ErrInsufficientCash),
		errors.Is(err, service.ErrPartyTooLarge):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
