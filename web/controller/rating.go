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

// RatingController handles the rating vertical.
type RatingController struct {
	ratingService service.RatingService
}

// NewRatingController creates the controller and registers its routes.
func NewRatingController(g *gin.RouterGroup) *RatingController {
	a := &RatingController{}
	a.initRouter(g)
	return a
}

func (a *RatingController) initRouter(g *gin.RouterGroup) {
	g.GET("/rating/list", a.list)
	g.GET("/rating/add", a.addForm)
	g.POST("/rating/validate", a.create)
	g.GET("/rating/update/:id", a.editForm)
	g.POST("/rating/update/:id", a.update)
	g.GET("/rating/delete/:id", a.delete)
}

func (a *RatingController) list(c *gin.Context) {
	ratings, err := a.ratingService.GetRatings()
	if err != nil {
		showError(c, http.StatusInternalServerError)
		return
	}
	html(c, "rating/list.html", "Ratings", gin.H{"ratings": ratings})
}

func (a *RatingController) addForm(c *gin.Context) {
	html(c, "rating/add.html", "Add Rating", gin.H{"dto": &entity.RatingDto{}})
}

func (a *RatingController) create(c *gin.Context) {
	var dto entity.RatingDto
	if err := c.ShouldBind(&dto); err != nil {
		showError(c, http.StatusBadRequest)
		return
	}

	if errs := dto.Validate(); len(errs) > 0 {
		html(c, "rating/add.html", "Add Rating", gin.H{"dto": &dto, "errors": errs})
		return
	}

	rating, err := a.ratingService.ToEntity(&dto)
	if err != nil {
		errs := []entity.FieldError{{Field: "orderNumber", Message: "Order number must be an integer"}}
		html(c, "rating/add.html", "Add Rating", gin.H{"dto": &dto, "errors": errs})
		return
	}

	if err := a.ratingService.CreateRating(rating); err != nil {
		redirectWithFlash(c, "/rating/list", session.FlashWarning, err.Error())
		return
	}
	redirectWithFlash(c, "/rating/list", session.FlashPrimary,
		fmt.Sprintf("Rating with id '%d' was successfully created", rating.Id))
}

func (a *RatingController) editForm(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		redirectWithFlash(c, "/rating/list", session.FlashWarning, "Invalid rating id")
		return
	}

	rating, err := a.ratingService.GetRating(id)
	if err != nil {
		redirectWithFlash(c, "/rating/list", session.FlashWarning, err.Error())
		return
	}
	html(c, "rating/update.html", "Update Rating", gin.H{"dto": a.ratingService.ToDto(rating)})
}

func (a *RatingController) update(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		redirectWithFlash(c, "/rating/list", session.FlashWarning, "Invalid rating id")
		return
	}

	var dto entity.RatingDto
	if err := c.ShouldBind(&dto); err != nil {
		showError(c, http.StatusBadRequest)
		return
	}
	dto.Id = id

	if errs := dto.Validate(); len(errs) > 0 {
		html(c, "rating/update.html", "Update Rating", gin.H{"dto": &dto, "errors": errs})
		return
	}

	rating, err := a.ratingService.ToEntity(&dto)
	if err != nil {
		errs := []entity.FieldError{{Field: "orderNumber", Message: "Order number must be an integer"}}
		html(c, "rating/update.html", "Update Rating", gin.H{"dto": &dto, "errors": errs})
		return
	}

	if err := a.ratingService.UpdateRating(id, rating); err != nil {
		redirectWithFlash(c, "/rating/list", session.FlashWarning, err.Error())
		return
	}
	redirectWithFlash(c, "/rating/list", session.FlashPrimary,
		fmt.Sprintf("Rating with id '%d' was successfully updated", id))
}

func (a *RatingController) delete(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		redirectWithFlash(c, "/rating/list", session.FlashWarning, "Invalid rating id")
		return
	}

	if err := a.ratingService.DeleteRating(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			redirectWithFlash(c, "/rating/list", session.FlashWarning, err.Error())
			return
		}
		showError(c, http.StatusInternalServerError)
		return
	}
	redirectWithFlash(c, "/rating/list", session.FlashPrimary,
		fmt.Sprintf("Rating with id '%d' was successfully deleted", id))
}
