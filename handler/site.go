package handler

import (
	"NatureNet/pkg/context"
	"NatureNet/pkg/response"
	"NatureNet/pkg/utils"
	"NatureNet/service"

	"github.com/gin-gonic/gin"
)

type Site struct {
	SiteService service.ISiteService
}

func (s *Site) RegisterRouter(r gin.IRouter) {
	r.GET("/sites", context.Wrap(s.List))
	r.GET("/site/:id", context.Wrap(s.GetSite))
	r.GET("/site/:id/contexts", context.Wrap(s.Contexts))
}

func (s *Site) List(c *gin.Context) error {
	items, err := s.SiteService.List(c.Request.Context())
	if err != nil {
		return bizError(err)
	}
	response.Success(c, utils.MapSlice(items, utils.SiteToHash))
	return nil
}

func (s *Site) GetSite(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	site, err := s.SiteService.Get(c.Request.Context(), id)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, utils.SiteToHash(site))
	return nil
}

func (s *Site) Contexts(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	items, err := s.SiteService.Contexts(c.Request.Context(), id)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, utils.MapSlice(items, utils.ContextToHash))
	return nil
}
