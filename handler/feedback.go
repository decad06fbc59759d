package handler

import (
	"NatureNet/models"
	"NatureNet/pkg/context"
	"NatureNet/pkg/response"
	"NatureNet/pkg/utils"
	"NatureNet/service"

	"github.com/gin-gonic/gin"
)

type Feedback struct {
	FeedbackService service.IFeedbackService
}

func (f *Feedback) RegisterRouter(r gin.IRouter) {
	r.GET("/feedback/:id", context.Wrap(f.GetFeedback))
}

func (f *Feedback) GetFeedback(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	feedback, err := f.FeedbackService.Get(c.Request.Context(), id)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, utils.FeedbackToHash(feedback))
	return nil
}

// listFeedbacks Note 与 Media 共用, kind 决定 table_name
func listFeedbacks(c *gin.Context, svc service.IFeedbackService, kind models.TargetKind) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	items, err := svc.ListForTarget(c.Request.Context(), models.Target{Kind: kind, ID: id})
	if err != nil {
		return bizError(err)
	}
	response.Success(c, utils.MapSlice(items, utils.FeedbackToHash))
	return nil
}

// addComment 表单: content
func addComment(c *gin.Context, svc service.IFeedbackService, kind models.TargetKind) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var content *string
	if v, ok := c.GetPostForm("content"); ok {
		content = &v
	}

	feedback, err := svc.AddComment(c.Request.Context(), models.Target{Kind: kind, ID: id}, c.Param("username"), content)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, utils.FeedbackToHash(feedback))
	return nil
}
