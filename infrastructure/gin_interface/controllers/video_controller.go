package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mulith/create-video-short/application/ports/inbound"
	"github.com/Mulith/create-video-short/application/ports/outbound"
	"github.com/Mulith/create-video-short/domain"
	"github.com/Mulith/create-video-short/infrastructure/gin_interface/dto"
)

type VideoController interface {
	RenderVideo(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type videoController struct {
	logger        outbound.LoggerPort
	dispatcher    outbound.TaskDispatcher
	videoPipeline inbound.VideoPipelinePort
}

func NewVideoController(logger outbound.LoggerPort, dispatcher outbound.TaskDispatcher,
	videoPipeline inbound.VideoPipelinePort) VideoController {
	return &videoController{
		logger:        logger,
		dispatcher:    dispatcher,
		videoPipeline: videoPipeline,
	}
}

type pipelineResult struct {
	outcome *domain.PipelineOutcome
	err     error
}

func (v *videoController) RenderVideo(c *gin.Context) {
	var req dto.RenderVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.RenderVideoErrorResponse{
			Success: false,
			Error:   "invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	// The pipeline runs on the worker pool so concurrent renders stay
	// bounded; the handler blocks until its run finishes.
	resultCh := make(chan pipelineResult, 1)
	err := v.dispatcher.Submit(func() {
		outcome, runErr := v.videoPipeline.Run(c.Request.Context(), inbound.RunVideoPipelineParams{
			ContentID: req.ContentID,
			Voice:     req.Voice,
		})
		resultCh <- pipelineResult{outcome: outcome, err: runErr}
	})
	if err != nil {
		v.logger.Error(err, "failed to dispatch pipeline run")
		c.JSON(http.StatusServiceUnavailable, dto.RenderVideoErrorResponse{
			Success: false,
			Error:   "server busy",
			Detail:  err.Error(),
		})
		return
	}

	result := <-resultCh
	if result.err != nil {
		status, message := classifyPipelineError(result.err)
		c.JSON(status, dto.RenderVideoErrorResponse{
			Success: false,
			Error:   message,
			Detail:  result.err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.RenderVideoResponse{
		Success:         true,
		ContentID:       result.outcome.ContentID,
		Title:           result.outcome.Title,
		VideoPath:       result.outcome.StoragePath,
		ScenesProcessed: result.outcome.ScenesProcessed,
		TotalDuration:   result.outcome.TotalDuration,
	})
}

func classifyPipelineError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "content item not found"
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidScript),
		errors.Is(err, domain.ErrInvalidSceneTiming):
		return http.StatusBadRequest, "content item not valid for rendering"
	case errors.Is(err, domain.ErrNoRenderableScenes),
		errors.Is(err, domain.ErrNoValidScenes):
		return http.StatusConflict, "content item has no renderable scenes"
	case errors.Is(err, domain.ErrUpstream), errors.Is(err, domain.ErrEmptyResult):
		return http.StatusBadGateway, "upstream rendering dependency failed"
	case errors.Is(err, domain.ErrConfigMissing):
		return http.StatusInternalServerError, "service misconfigured"
	default:
		return http.StatusInternalServerError, "video pipeline failed"
	}
}

func (v *videoController) RegisterRoutes(g *gin.Engine) {
	g.POST("/videos/render", v.RenderVideo)
	g.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
