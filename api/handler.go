package api

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/logging"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/store"
)

const defaultRunsLimit = 50

var errInvalidBody = errors.New("invalid request format")

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	PreemptivePriority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	ListRuns(ctx *fiber.Ctx) error
	GetRun(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	store  store.Store
	logger *slog.Logger
}

// NewSchedulerHandlerImpl returns a handler that persists every run in st.
// st may be nil, in which case runs are computed but not recorded.
func NewSchedulerHandlerImpl(config *config.SchedulerConfig, st store.Store, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, store: st, logger: logger.With("component", "api")}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmFCFS)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmSJF)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmPriority)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmSRTF)
}

func (s *SchedulerHandlerImpl) PreemptivePriority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmPreemptivePriority)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmRoundRobin)
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmMLFQ)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, workload, err := s.parse(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	results, err := schedulers.RunAll(workload, s.options(request))
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]responses.ScheduleResponse, 0, len(results))
	for _, res := range results {
		r := schedulers.GenerateResponse(res)
		if err := s.save(ctx, request, &r); err != nil {
			return s.fail(ctx, err)
		}
		response = append(response, r)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) ListRuns(ctx *fiber.Ctx) error {
	if s.store == nil {
		return ctx.JSON([]responses.RunResponse{})
	}
	runs, err := s.store.ListRuns(ctx.UserContext(), ctx.QueryInt("limit", defaultRunsLimit))
	if err != nil {
		return s.fail(ctx, err)
	}
	response := make([]responses.RunResponse, len(runs))
	for i, run := range runs {
		response[i] = runResponse(run, false)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) GetRun(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	var run *store.Run
	if s.store != nil {
		var err error
		if run, err = s.store.GetRun(ctx.UserContext(), id); err != nil {
			return s.fail(ctx, err)
		}
	}
	if run == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(responses.ErrorResponse{Error: "run " + id + " not found"})
	}
	return ctx.JSON(runResponse(run, true))
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm string) error {
	request, workload, err := s.parse(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	scheduler, err := schedulers.New(algorithm, s.options(request))
	if err != nil {
		return s.fail(ctx, err)
	}
	result, err := schedulers.Run(scheduler, workload)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := schedulers.GenerateResponse(result)
	if err := s.save(ctx, request, &response); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(response)
}

// parse decodes the body into a fresh workload.
func (s *SchedulerHandlerImpl) parse(ctx *fiber.Ctx) (*requests.ScheduleRequests, *core.Workload, error) {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		s.logger.Debug("bad request body", logging.ErrAttr(err))
		return nil, nil, errInvalidBody
	}
	workload, err := core.NewWorkload(request.Descriptors())
	if err != nil {
		return nil, nil, err
	}
	return request, workload, nil
}

func (s *SchedulerHandlerImpl) options(request *requests.ScheduleRequests) schedulers.Options {
	opts := s.config.SchedulerOptions()
	if request.TimeQuantum != nil {
		opts.TimeQuantum = *request.TimeQuantum
	}
	if len(request.LevelsTimeQuantum) > 0 {
		opts.LevelsTimeQuantum = request.LevelsTimeQuantum
	}
	opts.Logger = s.logger
	return opts
}

func (s *SchedulerHandlerImpl) save(ctx *fiber.Ctx, request *requests.ScheduleRequests, response *responses.ScheduleResponse) error {
	if s.store == nil {
		return nil
	}
	response.RunId = store.NewRunID()
	return s.store.SaveRun(ctx.UserContext(), &store.Run{
		ID:        response.RunId,
		Algorithm: response.Algorithm,
		Request:   *request,
		Response:  *response,
		CreatedAt: time.Now(),
	})
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, errInvalidBody),
		errors.Is(err, core.ErrInvalidWorkload),
		errors.Is(err, schedulers.ErrInvalidQuantum),
		errors.Is(err, schedulers.ErrUnknownAlgorithm):
		status = fiber.StatusBadRequest
	default:
		s.logger.Error("request failed", "path", ctx.Path(), logging.ErrAttr(err))
	}
	return ctx.Status(status).JSON(responses.ErrorResponse{Error: err.Error()})
}

func runResponse(run *store.Run, withResult bool) responses.RunResponse {
	r := responses.RunResponse{
		RunId:     run.ID,
		Algorithm: run.Algorithm,
		CreatedAt: run.CreatedAt,
		Jobs:      len(run.Request.Jobs),
	}
	if withResult {
		result := run.Response
		r.Result = &result
	}
	return r
}
