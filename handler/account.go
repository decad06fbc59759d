package handler

import (
	"NatureNet/pkg/context"
	"NatureNet/pkg/response"
	"NatureNet/pkg/utils"
	"NatureNet/service"

	"github.com/gin-gonic/gin"
)

type Account struct {
	AccountService service.IAccountService
}

func (a *Account) RegisterRouter(r gin.IRouter) {
	r.GET("/accounts/count", context.Wrap(a.Count))
	r.GET("/accounts", context.Wrap(a.List))

	g := r.Group("/account")
	g.POST("/new/:username", context.Wrap(a.Create))
	g.GET("/:username", context.Wrap(a.Get))
	g.GET("/:username/notes", context.Wrap(a.Notes))
	g.GET("/:username/feedbacks", context.Wrap(a.Feedbacks))
}

// Count 账号总数
func (a *Account) Count(c *gin.Context) error {
	n, err := a.AccountService.Count(c.Request.Context())
	if err != nil {
		return bizError(err)
	}
	response.Success(c, n)
	return nil
}

// Create 注册账号, 用户名重复返回 400
func (a *Account) Create(c *gin.Context) error {
	account, err := a.AccountService.Create(c.Request.Context(), c.Param("username"))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, utils.AccountToHash(account))
	return nil
}

func (a *Account) Get(c *gin.Context) error {
	account, err := a.AccountService.Get(c.Request.Context(), c.Param("username"))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, utils.AccountToHash(account))
	return nil
}

func (a *Account) List(c *gin.Context) error {
	items, err := a.AccountService.List(c.Request.Context())
	if err != nil {
		return bizError(err)
	}
	response.Success(c, utils.MapSlice(items, utils.AccountToHash))
	return nil
}

func (a *Account) Notes(c *gin.Context) error {
	notes, err := a.AccountService.Notes(c.Request.Context(), c.Param("username"))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, utils.MapSlice(notes, utils.NoteToHash))
	return nil
}

func (a *Account) Feedbacks(c *gin.Context) error {
	items, err := a.AccountService.Feedbacks(c.Request.Context(), c.Param("username"))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, utils.MapSlice(items, utils.FeedbackToHash))
	return nil
}
