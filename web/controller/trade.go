package controller

import (
	"errors"
	"fmt"
	"net/http"

	"poseidon/web/entity"
	"poseidon/web/service"
	"poseidon/web/session"

	"github.com/gin-gonic/gin"
)

// TradeController handles the trade vertical.
type TradeController struct {
	tradeService service.TradeService
}

// NewTradeController creates the controller and registers its routes.
func NewTradeController(g *gin.RouterGroup) *TradeController {
	a := &TradeController{}
	a.initRouter(g)
	return a
}

func (a *TradeController) initRouter(g *gin.RouterGroup) {
	g.GET("/trade/list", a.list)
	g.GET("/trade/add", a.addForm)
	g.POST("/trade/validate", a.create)
	g.GET("/trade/update/:id", a.editForm)
	g.POST("/trade/update/:id", a.update)
	g.GET("/trade/delete/:id", a.delete)
}

func (a *TradeController) list(c *gin.Context) {
	trades, err := a.tradeService.GetTrades()
	if err != nil {
		showError(c, http.StatusInternalServerError)
		return
	}
	html(c, "trade/list.html", "Trades", gin.H{"trades": trades})
}

func (a *TradeController) addForm(c *gin.Context) {
	html(c, "trade/add.html", "Add Trade", gin.H{"dto": &entity.TradeDto{}})
}

func (a *TradeController) create(c *gin.Context) {
	var dto entity.TradeDto
	if err := c.ShouldBind(&dto); err != nil {
		showError(c, http.StatusBadRequest)
		return
	}

	if errs := dto.Validate(); len(errs) > 0 {
		html(c, "trade/add.html", "Add Trade", gin.H{"dto": &dto, "errors": errs})
		return
	}

	trade, err := a.tradeService.ToEntity(&dto)
	if err != nil {
		errs := []entity.FieldError{{Field: "buyQuantity", Message: "Buy quantity must be a number"}}
		html(c, "trade/add.html", "Add Trade", gin.H{"dto": &dto, "errors": errs})
		return
	}

	if err := a.tradeService.CreateTrade(trade); err != nil {
		redirectWithFlash(c, "/trade/list", session.FlashWarning, err.Error())
		return
	}
	redirectWithFlash(c, "/trade/list", session.FlashPrimary,
		fmt.Sprintf("Trade with id '%d' was successfully created", trade.Id))
}

func (a *TradeController) editForm(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		redirectWithFlash(c, "/trade/list", session.FlashWarning, "Invalid trade id")
		return
	}

	trade, err := a.tradeService.GetTrade(id)
	if err != nil {
		redirectWithFlash(c, "/trade/list", session.FlashWarning, err.Error())
		return
	}
	html(c, "trade/update.html", "Update Trade", gin.H{"dto": a.tradeService.ToDto(trade)})
}

func (a *TradeController) update(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		redirectWithFlash(c, "/trade/list", session.FlashWarning, "Invalid trade id")
		return
	}

	var dto entity.TradeDto
	if err := c.ShouldBind(&dto); err != nil {
		showError(c, http.StatusBadRequest)
		return
	}
	dto.Id = id

	if errs := dto.Validate(); len(errs) > 0 {
		html(c, "trade/update.html", "Update Trade", gin.H{"dto": &dto, "errors": errs})
		return
	}

	trade, err := a.tradeService.ToEntity(&dto)
	if err != nil {
		errs := []entity.FieldError{{Field: "buyQuantity", Message: "Buy quantity must be a number"}}
		html(c, "trade/update.html", "Update Trade", gin.H{"dto": &dto, "errors": errs})
		return
	}

	if err := a.tradeService.UpdateTrade(id, trade); err != nil {
		redirectWithFlash(c, "/trade/list", session.FlashWarning, err.Error())
		return
	}
	redirectWithFlash(c, "/trade/list", session.FlashPrimary,
		fmt.Sprintf("Trade with id '%d' was successfully updated", id))
}

func (a *TradeController) delete(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		redirectWithFlash(c, "/trade/list", session.FlashWarning, "Invalid trade id")
		return
	}

	if err := a.tradeService.DeleteTrade(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			redirectWithFlash(c, "/trade/list", session.FlashWarning, err.Error())
			return
		}
		showError(c, http.StatusInternalServerError)
		return
	}
	redirectWithFlash(c, "/trade/list", session.FlashPrimary,
		fmt.Sprintf("Trade with id '%d' was successfully deleted", id))
}
