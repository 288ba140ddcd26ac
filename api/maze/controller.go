package mazeapi

import (
	"errors"
	"net/http"
	"strconv"

	dmn "github.com/beka-birhanu/mazegen/domain"
	"github.com/beka-birhanu/mazegen/maze"
	"github.com/beka-birhanu/mazegen/service"
	"github.com/beka-birhanu/mazegen/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController serves maze generation and lookup.
type MazeController struct {
	generator i.MazeGenerator
}

// NewMazeController initializes a MazeController.
func NewMazeController(g i.MazeGenerator) (*MazeController, error) {
	if g == nil {
		return nil, errors.New("maze generator is required")
	}
	return &MazeController{generator: g}, nil
}

// Register registers the maze routes.
func (mc *MazeController) Register(route *gin.RouterGroup) {
	route.GET("/algorithms", mc.algorithms)

	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.generate)
		mazes.GET("", mc.recent)
		mazes.GET("/:ID", mc.mazeInfo)
		mazes.GET("/:ID/text", mc.mazeText)
	}
}

// generate handles maze generation requests.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := mc.generator.Generate(ctx, i.GenerateRequest{
		Algorithm: request.Algorithm,
		Width:     request.Width,
		Height:    request.Height,
		Seed:      request.Seed,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidDimensions) || errors.Is(err, maze.ErrUnknownAlgorithm) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(record))
}

// mazeInfo retrieves an archived maze.
func (mc *MazeController) mazeInfo(ctx *gin.Context) {
	record, ok := mc.lookup(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newMazeResponse(record))
}

// mazeText retrieves the printable form of an archived maze.
func (mc *MazeController) mazeText(ctx *gin.Context) {
	record, ok := mc.lookup(ctx)
	if !ok {
		return
	}
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(record.Text))
}

// recent lists the newest archived mazes; ?limit bounds the count.
func (mc *MazeController) recent(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		var err error
		if limit, err = strconv.Atoi(raw); err != nil || limit < 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
	}

	records, err := mc.generator.Recent(ctx, limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while listing mazes"})
		return
	}

	response := &RecentResponse{Mazes: make([]*MazeResponse, 0, len(records))}
	for _, r := range records {
		response.Mazes = append(response.Mazes, newMazeResponse(r))
	}
	ctx.JSON(http.StatusOK, response)
}

// algorithms lists the algorithms accepted by generate.
func (mc *MazeController) algorithms(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, &AlgorithmsResponse{Algorithms: mc.generator.Algorithms()})
}

// lookup resolves the :ID parameter, writing the error response itself when it fails.
func (mc *MazeController) lookup(ctx *gin.Context) (*dmn.MazeRecord, bool) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return nil, false
	}

	record, err := mc.generator.ByID(ctx, ID)
	if err != nil {
		if errors.Is(err, service.ErrMazeNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
			return nil, false
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while loading maze"})
		return nil, false
	}
	return record, true
}
