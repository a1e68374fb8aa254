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

// RuleNameController handles the rule definition vertical.
type RuleNameController struct {
	ruleNameService service.RuleNameService
}

// NewRuleNameController creates the controller and registers its routes.
func NewRuleNameController(g *gin.RouterGroup) *RuleNameController {
	a := &RuleNameController{}
	a.initRouter(g)
	return a
}

func (a *RuleNameController) initRouter(g *gin.RouterGroup) {
	g.GET("/ruleName/list", a.list)
	g.GET("/ruleName/add", a.addForm)
	g.POST("/ruleName/validate", a.create)
	g.GET("/ruleName/update/:id", a.editForm)
	g.POST("/ruleName/update/:id", a.update)
	g.GET("/ruleName/delete/:id", a.delete)
}

func (a *RuleNameController) list(c *gin.Context) {
	rules, err := a.ruleNameService.GetRuleNames()
	if err != nil {
		showError(c, http.StatusInternalServerError)
		return
	}
	html(c, "ruleName/list.html", "Rules", gin.H{"rules": rules})
}

func (a *RuleNameController) addForm(c *gin.Context) {
	html(c, "ruleName/add.html", "Add Rule", gin.H{"dto": &entity.RuleNameDto{}})
}

func (a *RuleNameController) create(c *gin.Context) {
	var dto entity.RuleNameDto
	if err := c.ShouldBind(&dto); err != nil {
		showError(c, http.StatusBadRequest)
		return
	}

	if errs := dto.Validate(); len(errs) > 0 {
		html(c, "ruleName/add.html", "Add Rule", gin.H{"dto": &dto, "errors": errs})
		return
	}

	rule := a.ruleNameService.ToEntity(&dto)
	if err := a.ruleNameService.CreateRuleName(rule); err != nil {
		redirectWithFlash(c, "/ruleName/list", session.FlashWarning, err.Error())
		return
	}
	redirectWithFlash(c, "/ruleName/list", session.FlashPrimary,
		fmt.Sprintf("Rule with id '%d' was successfully created", rule.Id))
}

func (a *RuleNameController) editForm(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		redirectWithFlash(c, "/ruleName/list", session.FlashWarning, "Invalid rule id")
		return
	}

	rule, err := a.ruleNameService.GetRuleName(id)
	if err != nil {
		redirectWithFlash(c, "/ruleName/list", session.FlashWarning, err.Error())
		return
	}
	html(c, "ruleName/update.html", "Update Rule", gin.H{"dto": a.ruleNameService.ToDto(rule)})
}

func (a *RuleNameController) update(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		redirectWithFlash(c, "/ruleName/list", session.FlashWarning, "Invalid rule id")
		return
	}

	var dto entity.RuleNameDto
	if err := c.ShouldBind(&dto); err != nil {
		showError(c, http.StatusBadRequest)
		return
	}
	dto.Id = id

	if errs := dto.Validate(); len(errs) > 0 {
		html(c, "ruleName/update.html", "Update Rule", gin.H{"dto": &dto, "errors": errs})
		return
	}

	rule := a.ruleNameService.ToEntity(&dto)
	if err := a.ruleNameService.UpdateRuleName(id, rule); err != nil {
		redirectWithFlash(c, "/ruleName/list", session.FlashWarning, err.Error())
		return
	}
	redirectWithFlash(c, "/ruleName/list", session.FlashPrimary,
		fmt.Sprintf("Rule with id '%d' was successfully updated", id))
}

func (a *RuleNameController) delete(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		redirectWithFlash(c, "/ruleName/list", session.FlashWarning, "Invalid rule id")
		return
	}

	if err := a.ruleNameService.DeleteRuleName(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			redirectWithFlash(c, "/ruleName/list", session.FlashWarning, err.Error())
			return
		}
		showError(c, http.StatusInternalServerError)
		return
	}
	redirectWithFlash(c, "/ruleName/list", session.FlashPrimary,
		fmt.Sprintf("Rule with id '%d' was successfully deleted", id))
}
