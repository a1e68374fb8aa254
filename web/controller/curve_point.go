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

// CurvePointController handles the curve point vertical.
type CurvePointController struct {
	curvePointService service.CurvePointService
}

// NewCurvePointController creates the controller and registers its routes.
func NewCurvePointController(g *gin.RouterGroup) *CurvePointController {
	a := &CurvePointController{}
	a.initRouter(g)
	return a
}

func (a *CurvePointController) initRouter(g *gin.RouterGroup) {
	g.GET("/curvePoint/list", a.list)
	g.GET("/curvePoint/add", a.addForm)
	g.POST("/curvePoint/validate", a.create)
	g.GET("/curvePoint/update/:id", a.editForm)
	g.POST("/curvePoint/update/:id", a.update)
	g.GET("/curvePoint/delete/:id", a.delete)
}

func (a *CurvePointController) list(c *gin.Context) {
	points, err := a.curvePointService.GetCurvePoints()
	if err != nil {
		showError(c, http.StatusInternalServerError)
		return
	}
	html(c, "curvePoint/list.html", "Curve Points", gin.H{"curvePoints": points})
}

func (a *CurvePointController) addForm(c *gin.Context) {
	html(c, "curvePoint/add.html", "Add Curve Point", gin.H{"dto": &entity.CurvePointDto{}})
}

func (a *CurvePointController) create(c *gin.Context) {
	var dto entity.CurvePointDto
	if err := c.ShouldBind(&dto); err != nil {
		showError(c, http.StatusBadRequest)
		return
	}

	if errs := dto.Validate(); len(errs) > 0 {
		html(c, "curvePoint/add.html", "Add Curve Point", gin.H{"dto": &dto, "errors": errs})
		return
	}

	point, err := a.curvePointService.ToEntity(&dto)
	if err != nil {
		errs := []entity.FieldError{{Field: "term", Message: "Term and value must be numbers"}}
		html(c, "curvePoint/add.html", "Add Curve Point", gin.H{"dto": &dto, "errors": errs})
		return
	}

	if err := a.curvePointService.CreateCurvePoint(point); err != nil {
		redirectWithFlash(c, "/curvePoint/list", session.FlashWarning, err.Error())
		return
	}
	redirectWithFlash(c, "/curvePoint/list", session.FlashPrimary,
		fmt.Sprintf("Curve point with id '%d' was successfully created", point.Id))
}

func (a *CurvePointController) editForm(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		redirectWithFlash(c, "/curvePoint/list", session.FlashWarning, "Invalid curve point id")
		return
	}

	point, err := a.curvePointService.GetCurvePoint(id)
	if err != nil {
		redirectWithFlash(c, "/curvePoint/list", session.FlashWarning, err.Error())
		return
	}
	html(c, "curvePoint/update.html", "Update Curve Point", gin.H{"dto": a.curvePointService.ToDto(point)})
}

func (a *CurvePointController) update(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		redirectWithFlash(c, "/curvePoint/list", session.FlashWarning, "Invalid curve point id")
		return
	}

	var dto entity.CurvePointDto
	if err := c.ShouldBind(&dto); err != nil {
		showError(c, http.StatusBadRequest)
		return
	}
	dto.Id = id

	if errs := dto.Validate(); len(errs) > 0 {
		html(c, "curvePoint/update.html", "Update Curve Point", gin.H{"dto": &dto, "errors": errs})
		return
	}

	point, err := a.curvePointService.ToEntity(&dto)
	if err != nil {
		errs := []entity.FieldError{{Field: "term", Message: "Term and value must be numbers"}}
		html(c, "curvePoint/update.html", "Update Curve Point", gin.H{"dto": &dto, "errors": errs})
		return
	}

	if err := a.curvePointService.UpdateCurvePoint(id, point); err != nil {
		redirectWithFlash(c, "/curvePoint/list", session.FlashWarning, err.Error())
		return
	}
	redirectWithFlash(c, "/curvePoint/list", session.FlashPrimary,
		fmt.Sprintf("Curve point with id '%d' was successfully updated", id))
}

func (a *CurvePointController) delete(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		redirectWithFlash(c, "/curvePoint/list", session.FlashWarning, "Invalid curve point id")
		return
	}

	if err := a.curvePointService.DeleteCurvePoint(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			redirectWithFlash(c, "/curvePoint/list", session.FlashWarning, err.Error())
			return
		}
		showError(c, http.StatusInternalServerError)
		return
	}
	redirectWithFlash(c, "/curvePoint/list", session.FlashPrimary,
		fmt.Sprintf("Curve point with id '%d' was successfully deleted", id))
}
