package service

import (
	"context"
	"fmt"

	"inn/config"
	"inn/infras/otel"
	"inn/internal/domains/housekeeping/model"
	"inn/internal/domains/housekeeping/model/dto"
	"inn/internal/domains/housekeeping/repository"
	roomModel "inn/internal/domains/room/model"
	roomRepo "inn/internal/domains/room/repository"
	"inn/shared"
	"inn/shared/cache"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	"inn/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetTask    = "housekeeping:get"
	cacheGetAllTask = "housekeeping:gets"
	cacheCountTask  = "housekeeping:count"
)

type Task interface {
	Create(ctx context.Context, req dto.CreateTaskRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTasksResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.TaskResponse, error)
	Update(ctx context.Context, req dto.UpdateTaskRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Task
	roomRepo roomRepo.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Task, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Task {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTaskRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return failure.NotFound("room not found") //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create housekeeping task")

		return err //nolint:wrapcheck
	}

	s.invalidateListCaches(ctx)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTasksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTask, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for housekeeping tasks")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count housekeeping tasks")

		return res, fmt.Errorf("failed to count housekeeping tasks: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get housekeeping tasks")

		return res, fmt.Errorf("failed to get housekeeping tasks: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save housekeeping tasks to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountTask, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count housekeeping tasks")

		return res, fmt.Errorf("failed to count housekeeping tasks: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save housekeeping task count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTask, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for housekeeping task")

		return res, nil
	}

	task, err := s.getTask(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(task)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save housekeeping task to cache")
		}
	}()

	return res, nil
}

// Update patches a task. Completing a cleaning task puts its room back in
// the Available pool.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTaskRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateTaskRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	task, err := s.getTask(ctx, id)
	if err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, user)

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update housekeeping task")

		return fmt.Errorf("failed to update housekeeping task: %w", err)
	}

	completing := req.Status == model.StatusDone && task.Status != model.StatusDone
	if completing && task.TaskType == model.TaskTypeCleaning {
		fields := map[string]any{
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err = s.roomRepo.UpdateRoomStatus(ctx, task.RoomID, roomModel.StatusAvailable, fields); err != nil {
			log.Error().Err(err).Msg("failed to release room after cleaning")

			return fmt.Errorf("failed to release room after cleaning: %w", err)
		}

		scope.AddEvent("Room released after cleaning: " + task.RoomID)
	}

	s.invalidateTaskCaches(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getTask(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete housekeeping task")

		return fmt.Errorf("failed to delete housekeeping task: %w", err)
	}

	s.invalidateTaskCaches(ctx, id)

	return nil
}

func (s *serviceImpl) getTask(ctx context.Context, id string) (model.Task, error) {
	task, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get housekeeping task")

		return task, fmt.Errorf("failed to get housekeeping task: %w", err)
	}

	if task.ID == constant.Empty {
		return task, failure.NotFound("housekeeping task not found") //nolint:wrapcheck
	}

	return task, nil
}

func (s *serviceImpl) invalidateListCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTask)
		shared.InvalidateCaches(c, s.cache, cacheCountTask)
	}()
}

func (s *serviceImpl) invalidateTaskCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTask, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete housekeeping task from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTask)
		shared.InvalidateCaches(c, s.cache, cacheCountTask)
	}()
}
