package handler

import (
	"NatureNet/models"
	"NatureNet/pkg/context"
	"NatureNet/pkg/response"
	"NatureNet/pkg/utils"
	"NatureNet/service"
	"NatureNet/types"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type Note struct {
	NoteService     service.INoteService
	FeedbackService service.IFeedbackService
}

func (n *Note) RegisterRouter(r gin.IRouter) {
	g := r.Group("/note")
	g.POST("/new/:username", context.Wrap(n.CreateNote))
	g.GET("/:id", context.Wrap(n.GetNote))
	g.GET("/:id/feedbacks", context.Wrap(n.Feedbacks))
	g.POST("/:id/feedback/:username/new/comment", context.Wrap(n.AddComment))
}

// CreateNote 表单: content, context, kind; 可选 latitude, longitude
func (n *Note) CreateNote(c *gin.Context) error {
	var req types.CreateNoteRequest
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		return response.NewError(http.StatusBadRequest, "invalid form: "+err.Error())
	}
	req.Username = c.Param("username")

	note, err := n.NoteService.Create(c.Request.Context(), &req)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, utils.NoteToHash(note))
	return nil
}

func (n *Note) GetNote(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	note, err := n.NoteService.Get(c.Request.Context(), id)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, utils.NoteToHash(note))
	return nil
}

// Feedbacks table_name = Note 且 row_id = id 的反馈
func (n *Note) Feedbacks(c *gin.Context) error {
	return listFeedbacks(c, n.FeedbackService, models.TargetNote)
}

func (n *Note) AddComment(c *gin.Context) error {
	return addComment(c, n.FeedbackService, models.TargetNote)
}
