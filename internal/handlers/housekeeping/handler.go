package housekeeping

import (
	"net/http"

	"inn/infras/otel"
	"inn/internal/domains/housekeeping/model"
	"inn/internal/domains/housekeeping/model/dto"
	"inn/internal/domains/housekeeping/service"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/validator"
	"inn/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Task
	otel    otel.Otel
}

func New(service service.Task, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/housekeeping/tasks", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTask)
		routerGroup.Get("/", handler.GetTasks)
		routerGroup.Get("/{id}", handler.GetTaskByID)
		routerGroup.Patch("/{id}", handler.UpdateTask)
		routerGroup.Delete("/{id}", handler.DeleteTask)
	})
}

// CreateTask handles the creation of a new housekeeping task.
// @Summary Create a new housekeeping task
// @Description Create a housekeeping task for a room.
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "Create Task Request"
// @Success 201 {object} response.Message "Task created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/housekeeping/tasks [post]
// @Security BearerAuth
func (handler *Handler) CreateTask(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTask")
	defer scope.End()

	req := dto.CreateTaskRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create housekeeping task")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyStaffID).(string)
	scope.AddEvent("Housekeeping task created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Task created successfully")
}

// GetTasks retrieves housekeeping tasks based on query parameters.
// @Summary Get all housekeeping tasks
// @Description Retrieve housekeeping tasks with optional filtering and pagination.
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_id query string false "Filter by room ID"
// @Param task_type query string false "Filter by task type"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.TaskResponse] "List of tasks"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/housekeeping/tasks [get]
func (handler *Handler) GetTasks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTasks")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if roomID := r.URL.Query().Get(model.FieldRoomID); roomID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
			Table:    model.TableName,
		})
	}

	if taskType := r.URL.Query().Get(model.FieldTaskType); taskType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldTaskType,
			Operator: gDto.FilterOperatorEq,
			Value:    taskType,
			Table:    model.TableName,
		})
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	tasks, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get housekeeping tasks")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Housekeeping tasks retrieved successfully")

	response.WithJSON(w, http.StatusOK, tasks)
}

// GetTaskByID retrieves a housekeeping task by its ID.
// @Summary Get a housekeeping task by ID
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.Data[dto.TaskResponse] "Task details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/housekeeping/tasks/{id} [get]
func (handler *Handler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTaskByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	task, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get housekeeping task by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Housekeeping task retrieved successfully")

	response.WithJSON(w, http.StatusOK, task)
}

// UpdateTask updates an existing housekeeping task by its ID.
// @Summary Update a housekeeping task by ID
// @Description Update a task. Marking a cleaning task done releases the room back to Available.
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.UpdateTaskRequest true "Update Task Request"
// @Success 200 {object} response.Message "Task updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/housekeeping/tasks/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTask")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTaskRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update housekeeping task")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyStaffID).(string)
	scope.AddEvent("Housekeeping task updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Task updated successfully")
}

// DeleteTask deletes a housekeeping task by its ID.
// @Summary Delete a housekeeping task by ID
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.Message "Task deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/housekeeping/tasks/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTask")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete housekeeping task")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyStaffID).(string)
	scope.AddEvent("Housekeeping task deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Task deleted successfully")
}
