package handler

import (
	"NatureNet/models"
	"NatureNet/pkg/context"
	"NatureNet/pkg/response"
	"NatureNet/pkg/utils"
	"NatureNet/service"

	"github.com/gin-gonic/gin"
)

type Context struct {
	ContextService service.IContextService
}

func (h *Context) RegisterRouter(r gin.IRouter) {
	g := r.Group("/context")
	g.GET("/activities", context.Wrap(h.listKind(models.ContextActivity)))
	g.GET("/landmarks", context.Wrap(h.listKind(models.ContextLandmark)))
	g.GET("/:id", context.Wrap(h.GetContext))
	g.GET("/:id/notes", context.Wrap(h.Notes))
}

func (h *Context) GetContext(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.ContextService.Get(c.Request.Context(), id)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, utils.ContextToHash(item))
	return nil
}

func (h *Context) Notes(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	notes, err := h.ContextService.Notes(c.Request.Context(), id)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, utils.MapSlice(notes, utils.NoteToHash))
	return nil
}

func (h *Context) listKind(kind string) func(*gin.Context) error {
	return func(c *gin.Context) error {
		items, err := h.ContextService.ListByKind(c.Request.Context(), kind)
		if err != nil {
			return bizError(err)
		}
		response.Success(c, utils.MapSlice(items, utils.ContextToHash))
		return nil
	}
}
