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

// BidController handles the bid list vertical.
type BidController struct {
	bidService service.BidService
}

// NewBidController creates the controller and registers its routes.
func NewBidController(g *gin.RouterGroup) *BidController {
	a := &BidController{}
	a.initRouter(g)
	return a
}

func (a *BidController) initRouter(g *gin.RouterGroup) {
	g.GET("/bidList/list", a.list)
	g.GET("/bidList/add", a.addForm)
	g.POST("/bidList/validate", a.create)
	g.GET("/bidList/update/:id", a.editForm)
	g.POST("/bidList/update/:id", a.update)
	g.GET("/bidList/delete/:id", a.delete)
}

func (a *BidController) list(c *gin.Context) {
	bids, err := a.bidService.GetBids()
	if err != nil {
		showError(c, http.StatusInternalServerError)
		return
	}
	html(c, "bid/list.html", "Bid List", gin.H{"bids": bids})
}

func (a *BidController) addForm(c *gin.Context) {
	html(c, "bid/add.html", "Add Bid", gin.H{"dto": &entity.BidDto{}})
}

func (a *BidController) create(c *gin.Context) {
	var dto entity.BidDto
	if err := c.ShouldBind(&dto); err != nil {
		showError(c, http.StatusBadRequest)
		return
	}

	if errs := dto.Validate(); len(errs) > 0 {
		html(c, "bid/add.html", "Add Bid", gin.H{"dto": &dto, "errors": errs})
		return
	}

	bid, err := a.bidService.ToEntity(&dto)
	if err != nil {
		errs := []entity.FieldError{{Field: "bidQuantity", Message: "Bid quantity must be a number"}}
		html(c, "bid/add.html", "Add Bid", gin.H{"dto": &dto, "errors": errs})
		return
	}

	if err := a.bidService.CreateBid(bid); err != nil {
		redirectWithFlash(c, "/bidList/list", session.FlashWarning, err.Error())
		return
	}
	redirectWithFlash(c, "/bidList/list", session.FlashPrimary,
		fmt.Sprintf("Bid with id '%d' was successfully created", bid.Id))
}

func (a *BidController) editForm(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		redirectWithFlash(c, "/bidList/list", session.FlashWarning, "Invalid bid id")
		return
	}

	bid, err := a.bidService.GetBid(id)
	if err != nil {
		redirectWithFlash(c, "/bidList/list", session.FlashWarning, err.Error())
		return
	}
	html(c, "bid/update.html", "Update Bid", gin.H{"dto": a.bidService.ToDto(bid)})
}

func (a *BidController) update(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		redirectWithFlash(c, "/bidList/list", session.FlashWarning, "Invalid bid id")
		return
	}

	var dto entity.BidDto
	if err := c.ShouldBind(&dto); err != nil {
		showError(c, http.StatusBadRequest)
		return
	}
	dto.Id = id

	if errs := dto.Validate(); len(errs) > 0 {
		html(c, "bid/update.html", "Update Bid", gin.H{"dto": &dto, "errors": errs})
		return
	}

	bid, err := a.bidService.ToEntity(&dto)
	if err != nil {
		errs := []entity.FieldError{{Field: "bidQuantity", Message: "Bid quantity must be a number"}}
		html(c, "bid/update.html", "Update Bid", gin.H{"dto": &dto, "errors": errs})
		return
	}

	if err := a.bidService.UpdateBid(id, bid); err != nil {
		redirectWithFlash(c, "/bidList/list", session.FlashWarning, err.Error())
		return
	}
	redirectWithFlash(c, "/bidList/list", session.FlashPrimary,
		fmt.Sprintf("Bid with id '%d' was successfully updated", id))
}

func (a *BidController) delete(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		redirectWithFlash(c, "/bidList/list", session.FlashWarning, "Invalid bid id")
		return
	}

	if err := a.bidService.DeleteBid(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			redirectWithFlash(c, "/bidList/list", session.FlashWarning, err.Error())
			return
		}
		showError(c, http.StatusInternalServerError)
		return
	}
	redirectWithFlash(c, "/bidList/list", session.FlashPrimary,
		fmt.Sprintf("Bid with id '%d' was successfully deleted", id))
}
