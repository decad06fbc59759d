package handler

import (
	"NatureNet/models"
	"NatureNet/pkg/context"
	"NatureNet/pkg/response"
	"NatureNet/pkg/utils"
	"NatureNet/service"
	"NatureNet/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
)

type Media struct {
	MediaService    service.IMediaService
	FeedbackService service.IFeedbackService
}

func (m *Media) RegisterRouter(r gin.IRouter) {
	g := r.Group("/media")
	g.POST("/new", context.Wrap(m.CreateMedia))
	g.GET("/:id/feedbacks", context.Wrap(m.Feedbacks))
	g.POST("/:id/feedback/:username/new/comment", context.Wrap(m.AddComment))
}

// CreateMedia JSON body: kind, title, note_id; 可选 link
func (m *Media) CreateMedia(c *gin.Context) error {
	body, err := c.GetRawData()
	if err != nil {
		return response.NewError(http.StatusBadRequest, "cannot read body: "+err.Error())
	}
	if !gjson.ValidBytes(body) {
		return response.NewError(http.StatusBadRequest, "some parameters are missing")
	}

	fields := gjson.GetManyBytes(body, "kind", "title", "note_id", "link")
	req := types.CreateMediaRequest{
		Kind:   fields[0].String(),
		Title:  fields[1].String(),
		NoteID: noteIDOf(fields[2]),
		Link:   fields[3].String(),
	}

	media, err := m.MediaService.Create(c.Request.Context(), &req)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, utils.MediaToHash(media))
	return nil
}

// noteIDOf note_id 兼容数字和数字字符串
func noteIDOf(v gjson.Result) uint64 {
	switch v.Type {
	case gjson.Number:
		if v.Num <= 0 || v.Num != float64(uint64(v.Num)) {
			return 0
		}
		return v.Uint()
	case gjson.String:
		id, err := strconv.ParseUint(v.Str, 10, 64)
		if err != nil {
			return 0
		}
		return id
	default:
		return 0
	}
}

func (m *Media) Feedbacks(c *gin.Context) error {
	return listFeedbacks(c, m.FeedbackService, models.TargetMedia)
}

func (m *Media) AddComment(c *gin.Context) error {
	return addComment(c, m.FeedbackService, models.TargetMedia)
}
