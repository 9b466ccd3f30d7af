package statsapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/vinom-posemaze/service"
	"github.com/gin-gonic/gin"
)

const (
	defaultBins = 10
	maxBins     = 100
)

// Tracker is the completion tracker as seen by the controller.
type Tracker interface {
	Record(ctx context.Context, seconds float64) error
	LoadAll(ctx context.Context) []float64
}

// RunsController serves the run history.
type RunsController struct {
	tracker Tracker
}

func NewRunsController(tracker Tracker) *RunsController {
	return &RunsController{tracker: tracker}
}

// RegisterPublic registers public routes.
func (rc *RunsController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/runs", rc.list)
}

// RegisterProtected registers operator routes.
func (rc *RunsController) RegisterProtected(route *gin.RouterGroup) {
	route.POST("/runs", rc.record)
}

func (rc *RunsController) list(ctx *gin.Context) {
	bins := defaultBins
	if raw := ctx.Query("bins"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxBins {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "bins must be an integer between 1 and 100"})
			return
		}
		bins = n
	}

	runs := rc.tracker.LoadAll(ctx.Request.Context())
	ctx.JSON(http.StatusOK, &RunsResponse{
		Runs:      runs,
		Summary:   service.Summarize(runs),
		Histogram: service.Histogram(runs, bins),
	})
}

func (rc *RunsController) record(ctx *gin.Context) {
	var request RecordRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := rc.tracker.Record(ctx.Request.Context(), *request.Seconds); err != nil {
		if errors.Is(err, service.ErrInvalidRuntime) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while recording run"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "run recorded"})
}
