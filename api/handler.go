// HTTP surface over the scheduling engine: one endpoint per discipline plus
// a combined run. The handlers only translate JSON to and from the engine's
// types; every scheduling decision lives in the sim package.

package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/sched-sim/sched-sim/sim"
)

// Handler exposes the scheduling engine over HTTP.
type Handler struct {
	defaultQuantum int
}

// NewHandler creates a Handler. defaultQuantum is used for round-robin
// requests that omit time_quantum.
func NewHandler(defaultQuantum int) *Handler {
	return &Handler{defaultQuantum: defaultQuantum}
}

// Register mounts the schedule routes under /api/v1.
func (h *Handler) Register(app *fiber.App) {
	v1 := app.Group("/api/v1")
	v1.Post("/schedule/fcfs", h.FCFS)
	v1.Post("/schedule/sjf", h.SJF)
	v1.Post("/schedule/srtf", h.SRTF)
	v1.Post("/schedule/priority", h.Priority)
	v1.Post("/schedule/rr", h.RoundRobin)
	v1.Post("/schedule/all", h.All)
}

func (h *Handler) quantum(req *ScheduleRequest) int {
	if req.TimeQuantum == 0 {
		return h.defaultQuantum
	}
	return req.TimeQuantum
}

// schedule parses the request, builds a simulator, and runs fn over it.
func (h *Handler) schedule(ctx *fiber.Ctx, fn func(*sim.Simulator, *ScheduleRequest) (*sim.SchedulingResult, error)) error {
	var req ScheduleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}

	simulator, err := sim.NewSimulator(req.processes())
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := fn(simulator, &req)
	if err != nil {
		if errors.Is(err, sim.ErrInvalidInput) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		logrus.Errorf("schedule request failed: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(toResponse(result))
}

func (h *Handler) FCFS(ctx *fiber.Ctx) error {
	return h.schedule(ctx, func(s *sim.Simulator, _ *ScheduleRequest) (*sim.SchedulingResult, error) {
		return s.FCFS()
	})
}

func (h *Handler) SJF(ctx *fiber.Ctx) error {
	return h.schedule(ctx, func(s *sim.Simulator, _ *ScheduleRequest) (*sim.SchedulingResult, error) {
		return s.SJF()
	})
}

func (h *Handler) SRTF(ctx *fiber.Ctx) error {
	return h.schedule(ctx, func(s *sim.Simulator, _ *ScheduleRequest) (*sim.SchedulingResult, error) {
		return s.SRTF()
	})
}

func (h *Handler) Priority(ctx *fiber.Ctx) error {
	return h.schedule(ctx, func(s *sim.Simulator, req *ScheduleRequest) (*sim.SchedulingResult, error) {
		return s.Priority(req.Preemptive)
	})
}

func (h *Handler) RoundRobin(ctx *fiber.Ctx) error {
	return h.schedule(ctx, func(s *sim.Simulator, req *ScheduleRequest) (*sim.SchedulingResult, error) {
		return s.RoundRobin(h.quantum(req))
	})
}

// All runs every discipline over the request's process set and returns the
// results in engine order.
func (h *Handler) All(ctx *fiber.Ctx) error {
	var req ScheduleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}

	simulator, err := sim.NewSimulator(req.processes())
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	results, err := simulator.RunAll(h.quantum(&req))
	if err != nil {
		if errors.Is(err, sim.ErrInvalidInput) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		logrus.Errorf("schedule request failed: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	responses := make([]ScheduleResponse, 0, len(results))
	for _, res := range results {
		responses = append(responses, toResponse(res))
	}
	return ctx.JSON(responses)
}
