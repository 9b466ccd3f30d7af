// Package poseapi accepts pose frames from an external estimator over a websocket.
package poseapi

import (
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/beka-birhanu/vinom-posemaze/gesture"
	"github.com/beka-birhanu/vinom-posemaze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// PoseController feeds one pose stream at a time into the classifier.
type PoseController struct {
	classifier *gesture.Classifier
	logger     i.Logger
	upgrader   websocket.Upgrader
	streaming  atomic.Bool
}

func NewPoseController(classifier *gesture.Classifier, logger i.Logger) *PoseController {
	return &PoseController{
		classifier: classifier,
		logger:     logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// RegisterPublic registers public routes.
func (pc *PoseController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/pose/stream", pc.stream)
}

// RegisterProtected registers operator routes.
func (pc *PoseController) RegisterProtected(route *gin.RouterGroup) {}

func (pc *PoseController) stream(ctx *gin.Context) {
	if !pc.streaming.CompareAndSwap(false, true) {
		ctx.JSON(http.StatusConflict, gin.H{"error": "a pose stream is already connected"})
		return
	}
	defer pc.streaming.Store(false)

	conn, err := pc.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		pc.logger.Warning(fmt.Sprintf("upgrading pose stream: %v", err))
		return
	}

	src := gesture.NewWebSocketSource(conn)
	defer src.Close()

	pc.logger.Info(fmt.Sprintf("pose stream connected from %s", conn.RemoteAddr()))
	if err := gesture.NewPipeline(src, pc.classifier, pc.logger).Run(ctx.Request.Context()); err != nil {
		pc.logger.Warning(fmt.Sprintf("pose stream ended: %v", err))
		return
	}
	pc.logger.Info("pose stream closed")
}
