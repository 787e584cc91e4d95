package api

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"fcfs-simulator/config"
	"fcfs-simulator/internal/metrics"
	"fcfs-simulator/internal/requests"
	"fcfs-simulator/internal/responses"
	"fcfs-simulator/internal/samples"
	"fcfs-simulator/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	Samples(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config   *config.SchedulerConfig
	recorder *metrics.Recorder
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, recorder *metrics.Recorder) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, recorder: recorder}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		log.WithError(err).Warn("invalid fcfs request")
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}

	reports, err := schedulers.ScheduleFirstComeFirstServe(request.ToProcesses())
	if err != nil {
		reason := schedulers.ErrorReason(err)
		s.recorder.ObserveError(reason)
		log.WithError(err).WithField("reason", reason).Warn("can not schedule request")
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	response := schedulers.Analyze(reports)
	s.recorder.ObserveBatch(response)
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Samples(ctx *fiber.Ctx) error {
	batches := samples.Default()
	if s.config.BatchesFile != "" {
		loaded, err := samples.Load(s.config.BatchesFile)
		if err != nil {
			log.WithError(err).Error("can not load batches")
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		batches = loaded
	}

	result := make([]responses.ScheduleResponse, 0, len(batches))
	for _, batch := range batches {
		reports, err := schedulers.ScheduleFirstComeFirstServe(batch.ToProcesses())
		if err != nil {
			s.recorder.ObserveError(schedulers.ErrorReason(err))
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "batch " + batch.Name + ": " + err.Error(),
			})
		}
		response := schedulers.Analyze(reports)
		response.Name = batch.Name
		s.recorder.ObserveBatch(response)
		result = append(result, response)
	}
	return ctx.JSON(result)
}
