// Package http exposes the conversational webhook and the admin API over
// echo. The webhook speaks the Dialogflow fulfillment contract: one POST
// endpoint, an intent display name, a parameter bag, and a fulfillmentText
// answer. Parameter bags are validated into typed commands at this
// boundary; the core never sees raw webhook payloads.
package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"foodibot/internal/core/application/usecases/commands"
	"foodibot/internal/core/application/usecases/queries"
	"foodibot/internal/core/domain/model/kernel"
	"foodibot/internal/core/domain/model/order"
	"foodibot/internal/core/domain/services"
	"foodibot/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Intent display names, as configured in the conversational agent.
const (
	intentAddItems          = "order.add - context: ongoing-order"
	intentRemoveItems       = "order.remove - context: ongoing-order"
	intentCompleteOrder     = "order.complete - context: ongoing-order"
	intentTrackOrder        = "track.order - context: ongoing-tracking"
	intentOrderSummary      = "order.summary - context: ongoing-order"
	intentCollectPhone      = "collect.phone - context: ongoing-order"
	intentCollectEmail      = "collect.email - context: ongoing-order"
	intentSendNotifications = "send.notifications - context: ongoing-order"
)

// Response status codes carried next to fulfillmentText.
const (
	statusSuccess = "success"
	statusError   = "error"
	statusWarning = "warning"
)

// Server routes webhook intents and admin requests to the application
// use cases.
type Server struct {
	addItemsHandler          commands.AddItemsCommandHandler
	removeItemsHandler       commands.RemoveItemsCommandHandler
	completeOrderHandler     commands.CompleteOrderCommandHandler
	collectPhoneHandler      commands.CollectPhoneCommandHandler
	collectEmailHandler      commands.CollectEmailCommandHandler
	sendNotificationsHandler commands.SendNotificationsCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	cartSummaryHandler  queries.GetCartSummaryQueryHandler
	trackOrderHandler   queries.TrackOrderQueryHandler
	menuHandler         queries.GetMenuQueryHandler
	orderHistoryHandler queries.GetOrderHistoryQueryHandler

	logger *slog.Logger
}

// NewServer creates the HTTP server with the required command and query
// handlers.
func NewServer(
	addItemsHandler commands.AddItemsCommandHandler,
	removeItemsHandler commands.RemoveItemsCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	collectPhoneHandler commands.CollectPhoneCommandHandler,
	collectEmailHandler commands.CollectEmailCommandHandler,
	sendNotificationsHandler commands.SendNotificationsCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cartSummaryHandler queries.GetCartSummaryQueryHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	menuHandler queries.GetMenuQueryHandler,
	orderHistoryHandler queries.GetOrderHistoryQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		addItemsHandler:          addItemsHandler,
		removeItemsHandler:       removeItemsHandler,
		completeOrderHandler:     completeOrderHandler,
		collectPhoneHandler:      collectPhoneHandler,
		collectEmailHandler:      collectEmailHandler,
		sendNotificationsHandler: sendNotificationsHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		cartSummaryHandler:       cartSummaryHandler,
		trackOrderHandler:        trackOrderHandler,
		menuHandler:              menuHandler,
		orderHistoryHandler:      orderHistoryHandler,
		logger:                   logger.With("component", "http_server"),
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/", s.HandleWebhook)
	e.GET("/", s.Root)
	e.GET("/health", s.Health)
	e.GET("/api/menu", s.GetMenu)
	e.GET("/api/orders/history", s.GetOrderHistory)
	e.PUT("/api/orders/:id/status", s.UpdateOrderStatus)
}

// Root answers a liveness probe with a short identification message.
func (s *Server) Root(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"message": "FoodiBot webhook is running"})
}

// Health reports service health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// HandleWebhook dispatches a Dialogflow fulfillment request to the
// matching intent handler. The webhook always answers 200: the
// conversational agent surfaces errors through fulfillmentText, not
// through HTTP status codes.
func (s *Server) HandleWebhook(ctx echo.Context) error {
	var request WebhookRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, "Sorry, something went wrong. Please try again later.")
	}

	if len(request.QueryResult.OutputContexts) == 0 {
		return errorResponse(ctx, "Sorry, something went wrong. Please try again later.")
	}

	rawSessionID, err := ExtractSessionID(request.QueryResult.OutputContexts[0].Name)
	if err != nil {
		s.logger.Warn("Webhook request without session id", "error", err)
		return errorResponse(ctx, "Sorry, something went wrong. Please try again later.")
	}

	sessionID, err := kernel.NewSessionID(rawSessionID)
	if err != nil {
		return errorResponse(ctx, "Sorry, something went wrong. Please try again later.")
	}

	intent := request.QueryResult.Intent.DisplayName
	parameters := request.QueryResult.Parameters

	s.logger.Info("Processing intent", "intent", intent, "session_id", sessionID.String())

	switch intent {
	case intentAddItems:
		return s.addToOrder(ctx, parameters, sessionID)
	case intentRemoveItems:
		return s.removeFromOrder(ctx, parameters, sessionID)
	case intentCompleteOrder:
		return s.completeOrder(ctx, sessionID)
	case intentTrackOrder:
		return s.trackOrder(ctx, parameters)
	case intentOrderSummary:
		return s.orderSummary(ctx, sessionID)
	case intentCollectPhone:
		return s.collectPhone(ctx, parameters, sessionID)
	case intentCollectEmail:
		return s.collectEmail(ctx, parameters, sessionID)
	case intentSendNotifications:
		return s.sendNotifications(ctx, sessionID)
	default:
		s.logger.Warn("Unknown intent", "intent", intent)
		return errorResponse(ctx, "Sorry, I didn't understand your request.")
	}
}

func (s *Server) addToOrder(ctx echo.Context, parameters map[string]any, sessionID kernel.SessionID) error {
	names, ok := stringSliceParam(parameters, "food-item")
	if !ok {
		return errorResponse(ctx, "Please specify valid food items.")
	}
	quantities, ok := intSliceParam(parameters, "number")
	if !ok {
		return errorResponse(ctx, "Quantities must be numbers.")
	}

	cmd, err := commands.NewAddItemsCommand(sessionID, names, quantities)
	if err != nil {
		return errorResponse(ctx, addItemsValidationMessage(err))
	}

	result, err := s.addItemsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return errorResponse(ctx, fmt.Sprintf("Sorry, '%v' is not available in our menu.", notFound.ID))
		}
		s.logger.Error("Add to order failed", "session_id", sessionID.String(), "error", err)
		return errorResponse(ctx, "Sorry, an error occurred while adding to your order.")
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"fulfillmentText": fmt.Sprintf("So far you have: %s. Do you need anything else?", result.Summary),
		"order_summary":   result.Items,
		"status_code":     statusSuccess,
	})
}

func addItemsValidationMessage(err error) string {
	switch {
	case errors.Is(err, commands.ErrQuantityPerItemIsRequired):
		return "Please specify quantity for each food item."
	case errors.Is(err, commands.ErrQuantityMustBePositive):
		return "Quantities must be positive numbers."
	default:
		return "Please specify valid food items."
	}
}

func (s *Server) removeFromOrder(ctx echo.Context, parameters map[string]any, sessionID kernel.SessionID) error {
	names, ok := stringSliceParam(parameters, "food-item")
	if !ok {
		return errorResponse(ctx, "Please specify valid food items.")
	}
	quantities, ok := intSliceParam(parameters, "number")
	if !ok {
		return errorResponse(ctx, "Quantities must be numbers.")
	}

	cmd, err := commands.NewRemoveItemsCommand(sessionID, names, quantities)
	if err != nil {
		return errorResponse(ctx, addItemsValidationMessage(err))
	}

	result, err := s.removeItemsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		s.logger.Error("Remove from order failed", "session_id", sessionID.String(), "error", err)
		return errorResponse(ctx, "Sorry, an error occurred while removing from your order.")
	}

	var text strings.Builder
	if len(result.Removed) > 0 {
		fmt.Fprintf(&text, "Removed %s from your order!", strings.Join(result.Removed, ", "))
	}
	if len(result.NotInCart) > 0 {
		fmt.Fprintf(&text, " Your current order does not have %s.", strings.Join(result.NotInCart, ", "))
	}
	if result.CartEmptied {
		text.WriteString(" Your order is empty!")
	} else {
		fmt.Fprintf(&text, " Here is what is left in your order: %s", result.Summary)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"fulfillmentText": strings.TrimSpace(text.String()),
		"removed_items":   result.Removed,
		"remaining_items": result.Remaining,
		"status_code":     statusSuccess,
	})
}

func (s *Server) completeOrder(ctx echo.Context, sessionID kernel.SessionID) error {
	cmd, err := commands.NewCompleteOrderCommand(sessionID)
	if err != nil {
		return errorResponse(ctx, "Sorry, an error occurred while completing your order.")
	}

	result, err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorResponse(ctx,
				"I'm having trouble finding your order. Sorry! Can you place a new order please?")
		}
		s.logger.Error("Complete order failed", "session_id", sessionID.String(), "error", err)
		return errorResponse(ctx, "Sorry, an error occurred while completing your order.")
	}

	details := orderDetailsBlock(result.Order)
	response := echo.Map{
		"order_id":    result.Order.ID(),
		"total_price": result.Order.Total(),
		"status_code": statusSuccess,
	}

	switch {
	case !result.Contact.HasPhone() && !result.Contact.HasEmail():
		response["fulfillmentText"] = details +
			"\n\n📱 Please provide your phone number so I can send you SMS and WhatsApp updates about your order."
		response["ask_for_phone"] = true
	case !result.Contact.HasPhone():
		response["fulfillmentText"] = details +
			"\n\n📱 To receive SMS and WhatsApp updates, please provide your phone number."
		response["ask_for_phone"] = true
	case !result.Contact.HasEmail():
		response["fulfillmentText"] = details +
			"\n\n📧 To receive email notifications as well, please provide your email address."
		response["ask_for_email"] = true
	default:
		channels := successChannels(result.Outcome)
		if len(channels) > 0 {
			response["fulfillmentText"] = details + fmt.Sprintf(
				"\n\n✅ Order confirmation sent via %s! You'll receive updates about your order status.",
				strings.Join(channels, ", "))
		} else {
			response["fulfillmentText"] = details +
				"\n\n📱 Your order is confirmed! (Notification sending failed, but your order is saved!)"
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// orderDetailsBlock renders the confirmation block shared by all order
// completion answers.
func orderDetailsBlock(committed order.CommittedOrder) string {
	return fmt.Sprintf(`🎉 Excellent! Your order has been placed successfully!

📋 Order Details:
• Order ID: #%d
• Items: %s
• Total Amount: Rs. %.2f
• Payment: Pay at delivery
• Delivery Time: %s`,
		committed.ID(), committed.ItemsSummary(), committed.Total(), committed.ETA())
}

// successChannels lists the delivered channels in presentation order.
func successChannels(outcome services.Outcome) []string {
	labels := map[string]string{
		services.ChannelSMS:      "SMS",
		services.ChannelWhatsApp: "WhatsApp",
		services.ChannelEmail:    "Email",
	}

	channels := make([]string, 0, len(outcome))
	for _, channel := range []string{services.ChannelSMS, services.ChannelWhatsApp, services.ChannelEmail} {
		if outcome[channel].Success {
			channels = append(channels, labels[channel])
		}
	}
	return channels
}

func (s *Server) trackOrder(ctx echo.Context, parameters map[string]any) error {
	orderID, ok := toInt(parameters["order_id"])
	if !ok {
		return errorResponse(ctx, "Sorry, an error occurred while tracking your order.")
	}

	query, err := queries.NewTrackOrderQuery(int64(orderID))
	if err != nil {
		return errorResponse(ctx, "Sorry, an error occurred while tracking your order.")
	}

	response, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusOK, echo.Map{
				"fulfillmentText": fmt.Sprintf("No order found with order id: %d", orderID),
			})
		}
		s.logger.Error("Track order failed", "order_id", orderID, "error", err)
		return errorResponse(ctx, "Sorry, an error occurred while tracking your order.")
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"fulfillmentText": fmt.Sprintf("The order status for order id ( %d ) is: %s",
			response.OrderID, response.Status),
	})
}

func (s *Server) orderSummary(ctx echo.Context, sessionID kernel.SessionID) error {
	query, err := queries.NewGetCartSummaryQuery(sessionID)
	if err != nil {
		return errorResponse(ctx, "Sorry, I couldn't get your order summary.")
	}

	summary, err := s.cartSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorResponse(ctx, "You don't have any items in your order yet.")
		}
		s.logger.Error("Cart summary failed", "session_id", sessionID.String(), "error", err)
		return errorResponse(ctx, "Sorry, I couldn't get your order summary.")
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"fulfillmentText": fmt.Sprintf("Your order summary:\nTotal items: %d\nTotal amount: $%.2f",
			summary.TotalItems, summary.TotalAmount),
		"status_code": statusSuccess,
	})
}

func (s *Server) collectPhone(ctx echo.Context, parameters map[string]any, sessionID kernel.SessionID) error {
	phone := stringParam(parameters, "phone-number")
	if phone == "" {
		return errorResponse(ctx,
			"Please provide your phone number so I can send you order updates via SMS and WhatsApp.")
	}

	cmd, err := commands.NewCollectPhoneCommand(sessionID, phone)
	if err != nil {
		return errorResponse(ctx, "Sorry, I couldn't save your phone number. Please try again.")
	}

	result, err := s.collectPhoneHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		s.logger.Error("Collect phone failed", "session_id", sessionID.String(), "error", err)
		return errorResponse(ctx, "Sorry, I couldn't save your phone number. Please try again.")
	}

	text := fmt.Sprintf("Great! I've saved your phone number: %s. "+
		"Now I can send you SMS and WhatsApp updates about your order. "+
		"Please provide your email address for email notifications as well.", phone)
	if result.Contact.IsComplete() {
		text = fmt.Sprintf("Great! I've saved your phone number: %s. "+
			"Your contact information is complete! "+
			"I'll send you notifications via SMS, WhatsApp, and Email.", phone)
	}

	return successResponse(ctx, text)
}

func (s *Server) collectEmail(ctx echo.Context, parameters map[string]any, sessionID kernel.SessionID) error {
	email := stringParam(parameters, "email")
	if email == "" {
		return errorResponse(ctx,
			"Please provide your email address so I can send you order updates via email.")
	}

	cmd, err := commands.NewCollectEmailCommand(sessionID, email)
	if err != nil {
		return errorResponse(ctx, "Sorry, I couldn't save your email. Please try again.")
	}

	if _, err := s.collectEmailHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		s.logger.Error("Collect email failed", "session_id", sessionID.String(), "error", err)
		return errorResponse(ctx, "Sorry, I couldn't save your email. Please try again.")
	}

	return successResponse(ctx, fmt.Sprintf("Perfect! I've saved your email: %s. "+
		"Your contact information is complete! "+
		"I'll send you notifications via SMS, WhatsApp, and Email.", email))
}

func (s *Server) sendNotifications(ctx echo.Context, sessionID kernel.SessionID) error {
	cmd, err := commands.NewSendNotificationsCommand(sessionID)
	if err != nil {
		return errorResponse(ctx, "Sorry, I couldn't send notifications. Please try again later.")
	}

	result, err := s.sendNotificationsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNoContactInformation):
			return errorResponse(ctx,
				"I don't have your contact information yet. Please provide your phone number and email first.")
		case errors.Is(err, errs.ErrObjectNotFound):
			return errorResponse(ctx, "You don't have any items in your order yet.")
		default:
			s.logger.Error("Send notifications failed", "session_id", sessionID.String(), "error", err)
			return errorResponse(ctx, "Sorry, I couldn't send notifications. Please try again later.")
		}
	}

	channels := successChannels(result.Outcome)
	if len(channels) == 0 {
		return ctx.JSON(http.StatusOK, echo.Map{
			"fulfillmentText": "I tried to send notifications but there was an issue. Your order is still confirmed though!",
			"status_code":     statusWarning,
		})
	}

	return successResponse(ctx, fmt.Sprintf(
		"✅ Order confirmation sent successfully via %s! You'll receive updates about your order status.",
		strings.Join(channels, ", ")))
}

// GetMenu handles GET /api/menu and returns the full catalog.
func (s *Server) GetMenu(ctx echo.Context) error {
	menu, err := s.menuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		s.logger.Error("Menu query failed", "error", err)
		return ctx.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to load menu."})
	}

	rows := make([]echo.Map, 0, len(menu))
	for _, item := range menu {
		rows = append(rows, echo.Map{
			"item_id": item.ItemID,
			"name":    item.Name,
			"price":   item.Price,
		})
	}

	return ctx.JSON(http.StatusOK, echo.Map{"menu": rows})
}

// GetOrderHistory handles GET /api/orders/history?session_id=...&limit=N.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	sessionID, err := kernel.NewSessionID(ctx.QueryParam("session_id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"error": "session_id is required"})
	}

	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, echo.Map{"error": "limit must be a number"})
		}
	}

	query, err := queries.NewGetOrderHistoryQuery(sessionID, limit)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	history, err := s.orderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		s.logger.Error("Order history query failed", "session_id", sessionID.String(), "error", err)
		return ctx.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to load order history."})
	}

	orders := make([]echo.Map, 0, len(history))
	for _, entry := range history {
		orders = append(orders, echo.Map{
			"order_id":    entry.OrderID,
			"order":       entry.Items,
			"total_price": entry.TotalPrice,
			"created_at":  entry.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, echo.Map{"orders": orders})
}

// UpdateOrderStatus handles PUT /api/orders/:id/status. It only advances
// the tracking row; no customer notification is sent from here.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"error": "order id must be a number"})
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.Status(body.Status))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, echo.Map{
				"error": fmt.Sprintf("No order found with order id: %d", orderID),
			})
		}
		s.logger.Error("Update order status failed", "order_id", orderID, "error", err)
		return ctx.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update order status."})
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"order_id": orderID,
		"status":   body.Status,
	})
}

func successResponse(ctx echo.Context, text string) error {
	return ctx.JSON(http.StatusOK, echo.Map{
		"fulfillmentText": text,
		"status_code":     statusSuccess,
	})
}

func errorResponse(ctx echo.Context, text string) error {
	return ctx.JSON(http.StatusOK, echo.Map{
		"fulfillmentText": text,
		"status_code":     statusError,
	})
}
