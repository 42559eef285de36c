package checkin

import (
	"net/http"

	"inn/infras/otel"
	"inn/internal/domains/checkin/model"
	"inn/internal/domains/checkin/model/dto"
	"inn/internal/domains/checkin/service"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/validator"
	"inn/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.CheckIn
	otel    otel.Otel
}

func New(service service.CheckIn, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/checkins", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.ProcessCheckIn)
		routerGroup.Get("/", handler.GetCheckIns)
		routerGroup.Get("/{id}", handler.GetCheckInByID)
		routerGroup.Delete("/{id}", handler.DeleteCheckIn)
	})

	router.Post("/checkouts", handler.ProcessCheckOut)
}

// ProcessCheckIn opens a stay for a confirmed booking.
// @Summary Check a guest in
// @Description Open a stay for a Confirmed booking. The booking moves to CheckedIn and the room to Occupied in one transaction. The arrival is classified early, on time, or late against the booked check-in date.
// @Tags CheckIn
// @Accept json
// @Produce json
// @Param request body dto.CheckInRequest true "Check-In Request"
// @Success 201 {object} response.Data[dto.CheckInResponse] "Guest checked in"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Booking status does not permit check-in"
// @Failure 500 {object} response.Error
// @Router /v1/checkins [post]
// @Security BearerAuth
func (handler *Handler) ProcessCheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ProcessCheckIn")
	defer scope.End()

	req := dto.CheckInRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	checkIn, err := handler.service.ProcessCheckIn(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to process check-in")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyStaffID).(string)
	scope.AddEvent("Guest checked in successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, checkIn)
}

// ProcessCheckOut closes an open stay.
// @Summary Check a guest out
// @Description Close an open stay. The booking moves to CheckedOut, the room to Cleaning, a cleaning task is raised, and the payment handoff event is published.
// @Tags CheckIn
// @Accept json
// @Produce json
// @Param request body dto.CheckOutRequest true "Check-Out Request"
// @Success 201 {object} response.Data[dto.CheckOutResponse] "Guest checked out"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error "Booking not found or has no open check-in"
// @Failure 409 {object} response.Error "Stay already checked out"
// @Failure 500 {object} response.Error
// @Router /v1/checkouts [post]
// @Security BearerAuth
func (handler *Handler) ProcessCheckOut(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ProcessCheckOut")
	defer scope.End()

	req := dto.CheckOutRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	checkOut, err := handler.service.ProcessCheckOut(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to process check-out")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyStaffID).(string)
	scope.AddEvent("Guest checked out successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, checkOut)
}

// GetCheckIns retrieves check-in records.
// @Summary Get all check-ins
// @Description Retrieve check-in records with optional filtering and pagination.
// @Tags CheckIn
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param booking_id query string false "Filter by booking ID"
// @Param room_id query string false "Filter by room ID"
// @Success 200 {object} response.Data[dto.CheckInResponse] "List of check-ins"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/checkins [get]
func (handler *Handler) GetCheckIns(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCheckIns")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if bookingID := r.URL.Query().Get(model.FieldBookingID); bookingID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBookingID,
			Operator: gDto.FilterOperatorEq,
			Value:    bookingID,
			Table:    model.TableName,
		})
	}

	if roomID := r.URL.Query().Get(model.FieldRoomID); roomID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
			Table:    model.TableName,
		})
	}

	checkIns, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get check-ins")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Check-ins retrieved successfully")

	response.WithJSON(w, http.StatusOK, checkIns)
}

// GetCheckInByID retrieves a check-in by its ID.
// @Summary Get a check-in by ID
// @Tags CheckIn
// @Accept json
// @Produce json
// @Param id path string true "Check-In ID"
// @Success 200 {object} response.Data[dto.CheckInResponse] "Check-in details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/checkins/{id} [get]
func (handler *Handler) GetCheckInByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCheckInByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	checkIn, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get check-in by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Check-in retrieved successfully")

	response.WithJSON(w, http.StatusOK, checkIn)
}

// DeleteCheckIn removes a mistaken check-in record.
// @Summary Delete a check-in
// @Description Undo a mistaken arrival: the check-in record is removed, the booking reverts to Confirmed and the room is released. Refused once the stay has been checked out.
// @Tags CheckIn
// @Produce json
// @Param id path string true "Check-In ID"
// @Success 200 {object} response.Message "Check-in deleted"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Stay has already been checked out"
// @Failure 500 {object} response.Error
// @Router /v1/checkins/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCheckIn")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete check-in")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyStaffID).(string)
	scope.AddEvent("Check-in deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Check-in deleted successfully")
}
